package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/blockpulse-backend/internal/model"
)

const pingMessage = "PING"

type blockEnvelope struct {
	Message string            `json:"message"`
	Data    []json.RawMessage `json:"data"`
}

type blockItem struct {
	Block        *model.Block    `json:"block"`
	Transactions json.RawMessage `json:"transactions"`
	Receipts     json.RawMessage `json:"receipts"`
}

type txEnvelope struct {
	Message  string            `json:"message"`
	JSONRPC  string            `json:"jsonrpc"`
	Result   json.RawMessage   `json:"result"`
	Receipts json.RawMessage   `json:"receipts"`
	Data     []json.RawMessage `json:"data"`
}

type blockPayload struct {
	ping     bool
	block    model.Block
	receipts []model.Receipt
}

type txPayload struct {
	ping     bool
	txs      []model.Transaction
	receipts []model.Receipt
}

// parseBlockPayload accepts {"data":[{"block":{...},"receipts":[...]}]} and
// {"data":[{...block fields, "transactions":[...], "receipts":[...]}]}.
func parseBlockPayload(body []byte) (blockPayload, error) {
	var env blockEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return blockPayload{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if env.Message == pingMessage {
		return blockPayload{ping: true}, nil
	}
	if len(env.Data) == 0 || isEmpty(env.Data[0]) {
		return blockPayload{}, fmt.Errorf("%w: missing data[0]", ErrInvalidPayload)
	}

	var item blockItem
	if err := json.Unmarshal(env.Data[0], &item); err != nil {
		return blockPayload{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	switch {
	case item.Block != nil:
		return blockPayload{block: *item.Block, receipts: decodeReceipts(item.Receipts)}, nil
	case !isEmpty(item.Transactions):
		var block model.Block
		if err := json.Unmarshal(env.Data[0], &block); err != nil {
			return blockPayload{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		return blockPayload{block: block, receipts: decodeReceipts(item.Receipts)}, nil
	default:
		return blockPayload{}, fmt.Errorf("%w: data[0] carries no block", ErrInvalidPayload)
	}
}

// parseTxPayload accepts a JSON-RPC style {"jsonrpc":"2.0","result":{tx}} or
// {"data":[[tx, ...]]}. Top-level receipts are returned even when the rest of
// the payload is rejected.
func parseTxPayload(body []byte) (txPayload, error) {
	var env txEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return txPayload{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if env.Message == pingMessage {
		return txPayload{ping: true}, nil
	}

	out := txPayload{receipts: decodeReceipts(env.Receipts)}

	if env.JSONRPC == "2.0" && !isEmpty(env.Result) {
		var tx model.Transaction
		if err := json.Unmarshal(env.Result, &tx); err != nil {
			return out, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		out.txs = []model.Transaction{tx}
		return out, nil
	}

	if len(env.Data) > 0 && isArray(env.Data[0]) {
		var txs []model.Transaction
		if err := json.Unmarshal(env.Data[0], &txs); err != nil {
			return out, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		out.txs = txs
		return out, nil
	}

	return out, fmt.Errorf("%w: no transactions", ErrInvalidPayload)
}

// decodeReceipts keeps the well-formed receipts of a JSON array and ignores
// anything else.
func decodeReceipts(raw json.RawMessage) []model.Receipt {
	if !isArray(raw) {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	out := make([]model.Receipt, 0, len(items))
	for _, item := range items {
		var r model.Receipt
		if err := json.Unmarshal(item, &r); err != nil || r.TransactionHash == "" {
			continue
		}
		out = append(out, r)
	}
	return out
}

func isEmpty(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null" || s == "false" || s == `""` || s == "0"
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
