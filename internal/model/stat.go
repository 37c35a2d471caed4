package model

// Transfer is one sender/recipient pair taken from a transaction. To is nil for
// contract creation.
type Transfer struct {
	From string  `json:"from"`
	To   *string `json:"to"`
}

// StatBlock is the per-block summary kept by the statistics buffer.
type StatBlock struct {
	Timestamp int64      `json:"timestamp"`
	Transfers []Transfer `json:"transactions"`
}

// Clone returns a deep copy.
func (b StatBlock) Clone() StatBlock {
	out := StatBlock{Timestamp: b.Timestamp}
	if b.Transfers == nil {
		return out
	}
	out.Transfers = make([]Transfer, len(b.Transfers))
	for i, tr := range b.Transfers {
		out.Transfers[i] = Transfer{From: tr.From}
		if tr.To != nil {
			to := *tr.To
			out.Transfers[i].To = &to
		}
	}
	return out
}

// AddressCount is one entry of a top-N ranking.
type AddressCount struct {
	Address string `json:"address"`
	Count   int    `json:"count"`
}

// TPSPoint is one minute of the transactions-per-second chart.
type TPSPoint struct {
	Time string `json:"time"`
	TPS  string `json:"tps"`
}

// BlocksPoint is one minute of the blocks-per-minute chart.
type BlocksPoint struct {
	Time   string `json:"time"`
	Blocks int    `json:"blocks"`
}
