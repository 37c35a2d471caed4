package model

import "time"

// ArchivedBlock is a block row persisted to ClickHouse.
type ArchivedBlock struct {
	Hash       string
	Number     uint64
	Timestamp  time.Time
	GasUsed    uint64
	GasLimit   uint64
	ParentHash string
	TxCount    uint32
	ReceivedAt time.Time
}

// ArchivedTransaction is a transaction row persisted to ClickHouse.
type ArchivedTransaction struct {
	Hash        string
	BlockHash   string
	BlockNumber uint64
	TxIndex     uint32
	From        string
	To          *string
	Value       string
	Gas         uint64
	GasPrice    string
	Nonce       uint64
	Input       string
	Type        string
	Method      string
}
