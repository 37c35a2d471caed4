// Package model defines domain models shared by ingestion, statistics and storage.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Quantity is a numeric field as delivered by the node provider. Webhooks carry
// either a hex string ("0x65f1c2a0") or a plain JSON number; both are kept verbatim.
type Quantity string

// UnmarshalJSON accepts a JSON string, a JSON number or null.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*q = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode quantity string: %w", err)
		}
		*q = Quantity(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode quantity number: %w", err)
	}
	*q = Quantity(n.String())
	return nil
}

// String returns the raw textual form.
func (q Quantity) String() string {
	return string(q)
}

// Block is a full block as pushed by the block webhook.
type Block struct {
	Hash         string        `json:"hash"`
	ParentHash   string        `json:"parentHash"`
	Number       string        `json:"number"`
	Timestamp    Quantity      `json:"timestamp"`
	GasUsed      string        `json:"gasUsed"`
	GasLimit     string        `json:"gasLimit"`
	Miner        string        `json:"miner,omitempty"`
	Size         string        `json:"size,omitempty"`
	Transactions []Transaction `json:"transactions"`
}

// Transaction is a transaction as carried by block and transaction webhooks.
type Transaction struct {
	Hash                 string            `json:"hash"`
	Type                 string            `json:"type,omitempty"`
	ChainID              string            `json:"chainId,omitempty"`
	Nonce                string            `json:"nonce,omitempty"`
	Gas                  string            `json:"gas,omitempty"`
	GasPrice             string            `json:"gasPrice,omitempty"`
	MaxFeePerGas         string            `json:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas string            `json:"maxPriorityFeePerGas,omitempty"`
	From                 string            `json:"from"`
	To                   *string           `json:"to"`
	Value                string            `json:"value,omitempty"`
	Input                string            `json:"input,omitempty"`
	BlockHash            string            `json:"blockHash,omitempty"`
	BlockNumber          string            `json:"blockNumber,omitempty"`
	TransactionIndex     string            `json:"transactionIndex,omitempty"`
	AccessList           []json.RawMessage `json:"accessList,omitempty"`
	V                    string            `json:"v,omitempty"`
	R                    string            `json:"r,omitempty"`
	S                    string            `json:"s,omitempty"`
	YParity              string            `json:"yParity,omitempty"`
}

// Recipient returns the destination address, or nil for contract creation.
func (t Transaction) Recipient() *string {
	if t.To == nil || *t.To == "" {
		return nil
	}
	to := *t.To
	return &to
}

// Receipt is the subset of a transaction receipt the explorer merges into views.
type Receipt struct {
	TransactionHash   string            `json:"transactionHash"`
	TransactionIndex  string            `json:"transactionIndex,omitempty"`
	Type              string            `json:"type,omitempty"`
	Status            string            `json:"status"`
	CumulativeGasUsed string            `json:"cumulativeGasUsed"`
	ContractAddress   *string           `json:"contractAddress,omitempty"`
	Logs              []json.RawMessage `json:"logs,omitempty"`
}

// TransactionView is a transaction enriched with receipt data for the API.
type TransactionView struct {
	Transaction
	Status  string `json:"status,omitempty"`
	GasUsed string `json:"gasUsed,omitempty"`
}
