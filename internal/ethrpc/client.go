// Package ethrpc proxies block and receipt lookups to an upstream EVM JSON-RPC endpoint.
package ethrpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

var (
	// ErrNotFound is returned when the upstream node has no such block.
	ErrNotFound = errors.New("not found")
	// ErrInvalidNumber is returned for a block number that is neither a tag,
	// a hex quantity nor a decimal integer.
	ErrInvalidNumber = errors.New("invalid block number")
)

var blockTags = map[string]struct{}{
	"latest":    {},
	"earliest":  {},
	"pending":   {},
	"finalized": {},
	"safe":      {},
}

// Client wraps a go-ethereum rpc client with metrics instrumentation.
type Client struct {
	client  *rpc.Client
	metrics Metrics
}

// Dial connects to url over HTTP or websocket depending on its scheme.
func Dial(ctx context.Context, url string, metrics Metrics) (*Client, error) {
	if url == "" {
		return nil, errors.New("rpc url is required")
	}
	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("dial rpc: %w", err)
	}
	return NewClient(client, metrics), nil
}

// NewClient constructs an instrumented client.
func NewClient(client *rpc.Client, metrics Metrics) *Client {
	return &Client{client: client, metrics: metrics}
}

// Close shuts the underlying connection down.
func (c *Client) Close() {
	c.client.Close()
}

// BlockByNumber fetches a block without full transaction objects. number may
// be a block tag, a 0x quantity or a decimal integer.
func (c *Client) BlockByNumber(ctx context.Context, number string) (block json.RawMessage, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("eth_get_block_by_number", err, started)
	}()

	arg, err := blockArg(number)
	if err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err = c.client.CallContext(ctx, &raw, "eth_getBlockByNumber", arg, false); err != nil {
		if errors.Is(err, rpc.ErrNoResult) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("eth_getBlockByNumber %s: %w", arg, err)
	}
	if isNull(raw) {
		return nil, fmt.Errorf("block %s: %w", arg, ErrNotFound)
	}
	return raw, nil
}

// TransactionReceipt fetches a receipt. A receipt unknown upstream is returned
// as JSON null.
func (c *Client) TransactionReceipt(ctx context.Context, hash string) (receipt json.RawMessage, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("eth_get_transaction_receipt", err, started)
	}()

	var raw json.RawMessage
	if err = c.client.CallContext(ctx, &raw, "eth_getTransactionReceipt", hash); err != nil {
		if errors.Is(err, rpc.ErrNoResult) {
			return json.RawMessage("null"), nil
		}
		return nil, fmt.Errorf("eth_getTransactionReceipt %s: %w", hash, err)
	}
	if len(raw) == 0 {
		return json.RawMessage("null"), nil
	}
	return raw, nil
}

func blockArg(number string) (string, error) {
	n := strings.ToLower(strings.TrimSpace(number))
	if _, ok := blockTags[n]; ok {
		return n, nil
	}
	if strings.HasPrefix(n, "0x") {
		v, err := strconv.ParseUint(n[2:], 16, 64)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidNumber, number)
		}
		return hexutil.EncodeUint64(v), nil
	}
	v, err := strconv.ParseUint(n, 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidNumber, number)
	}
	return hexutil.EncodeUint64(v), nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
