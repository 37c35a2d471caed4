package model

// BlockEvent is pushed to live feed subscribers when a block is recorded.
type BlockEvent struct {
	Number       string `json:"number"`
	Hash         string `json:"hash"`
	Timestamp    int64  `json:"timestamp"`
	Transactions int    `json:"transactions"`
}
