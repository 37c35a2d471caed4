package archive

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/goodnatureofminers/blockpulse-backend/internal/model"
	"github.com/goodnatureofminers/blockpulse-backend/internal/stats"
	"github.com/goodnatureofminers/blockpulse-backend/pkg/safe"
)

const (
	// selectorLen is "0x" plus four bytes of calldata.
	selectorLen = 10

	// bounds of the ClickHouse DateTime column
	minDateTime = 0
	maxDateTime = 1<<32 - 1
)

// Convert maps a webhook block to its archive rows. A block timestamp that
// cannot be parsed, or falls outside the DateTime range, is replaced by
// receivedAt.
func Convert(block model.Block, receivedAt time.Time) (model.ArchivedBlock, []model.ArchivedTransaction, error) {
	number, err := decodeUint(block.Number)
	if err != nil {
		return model.ArchivedBlock{}, nil, fmt.Errorf("block %s number: %w", block.Hash, err)
	}
	gasUsed, err := decodeUint(block.GasUsed)
	if err != nil {
		return model.ArchivedBlock{}, nil, fmt.Errorf("block %s gasUsed: %w", block.Hash, err)
	}
	gasLimit, err := decodeUint(block.GasLimit)
	if err != nil {
		return model.ArchivedBlock{}, nil, fmt.Errorf("block %s gasLimit: %w", block.Hash, err)
	}
	txCount, err := safe.Uint32(len(block.Transactions))
	if err != nil {
		return model.ArchivedBlock{}, nil, fmt.Errorf("block %s tx count: %w", block.Hash, err)
	}

	ts := receivedAt.UTC()
	if unix, ok := stats.ParseTimestamp(block.Timestamp.String()); ok && unix >= minDateTime && unix <= maxDateTime {
		ts = time.Unix(unix, 0).UTC()
	}

	archived := model.ArchivedBlock{
		Hash:       block.Hash,
		Number:     number,
		Timestamp:  ts,
		GasUsed:    gasUsed,
		GasLimit:   gasLimit,
		ParentHash: block.ParentHash,
		TxCount:    txCount,
		ReceivedAt: receivedAt.UTC(),
	}

	txs := make([]model.ArchivedTransaction, 0, len(block.Transactions))
	for i, tx := range block.Transactions {
		row, err := convertTransaction(tx, archived, i)
		if err != nil {
			return model.ArchivedBlock{}, nil, err
		}
		txs = append(txs, row)
	}
	return archived, txs, nil
}

func convertTransaction(tx model.Transaction, block model.ArchivedBlock, position int) (model.ArchivedTransaction, error) {
	index := uint64(position)
	if tx.TransactionIndex != "" {
		v, err := decodeUint(tx.TransactionIndex)
		if err != nil {
			return model.ArchivedTransaction{}, fmt.Errorf("tx %s index: %w", tx.Hash, err)
		}
		index = v
	}
	txIndex, err := safe.Uint32(index)
	if err != nil {
		return model.ArchivedTransaction{}, fmt.Errorf("tx %s index: %w", tx.Hash, err)
	}
	gas, err := decodeUint(tx.Gas)
	if err != nil {
		return model.ArchivedTransaction{}, fmt.Errorf("tx %s gas: %w", tx.Hash, err)
	}
	nonce, err := decodeUint(tx.Nonce)
	if err != nil {
		return model.ArchivedTransaction{}, fmt.Errorf("tx %s nonce: %w", tx.Hash, err)
	}
	value, err := decodeBig(tx.Value)
	if err != nil {
		return model.ArchivedTransaction{}, fmt.Errorf("tx %s value: %w", tx.Hash, err)
	}
	gasPrice, err := decodeBig(tx.GasPrice)
	if err != nil {
		return model.ArchivedTransaction{}, fmt.Errorf("tx %s gasPrice: %w", tx.Hash, err)
	}

	blockHash := tx.BlockHash
	if blockHash == "" {
		blockHash = block.Hash
	}

	return model.ArchivedTransaction{
		Hash:        tx.Hash,
		BlockHash:   blockHash,
		BlockNumber: block.Number,
		TxIndex:     txIndex,
		From:        tx.From,
		To:          tx.Recipient(),
		Value:       value,
		Gas:         gas,
		GasPrice:    gasPrice,
		Nonce:       nonce,
		Input:       tx.Input,
		Type:        tx.Type,
		Method:      MethodSelector(tx.Input),
	}, nil
}

// MethodSelector returns the 4-byte function selector of calldata, or "" when
// the input is too short to carry one.
func MethodSelector(input string) string {
	if len(input) < selectorLen || !has0x(input) {
		return ""
	}
	return strings.ToLower(input[:selectorLen])
}

func decodeUint(s string) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	if !has0x(s) {
		return strconv.ParseUint(s, 10, 64)
	}
	v, err := hexutil.DecodeUint64(s)
	if errors.Is(err, hexutil.ErrLeadingZero) {
		return strconv.ParseUint(s[2:], 16, 64)
	}
	return v, err
}

// decodeBig renders a wei quantity as a base 10 string.
func decodeBig(s string) (string, error) {
	if s == "" {
		return "0", nil
	}
	if !has0x(s) {
		v, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return "", fmt.Errorf("invalid decimal quantity %q", s)
		}
		return v.String(), nil
	}
	v, err := hexutil.DecodeBig(s)
	if errors.Is(err, hexutil.ErrLeadingZero) {
		var ok bool
		if v, ok = new(big.Int).SetString(s[2:], 16); !ok {
			return "", fmt.Errorf("invalid hex quantity %q", s)
		}
		err = nil
	}
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

func has0x(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
