package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockpulse-backend/internal/model"
)

const insertTransactionsQuery = `
INSERT INTO explorer_transactions (
	hash,
	block_hash,
	block_number,
	tx_index,
	from_address,
	to_address,
	value,
	gas,
	gas_price,
	nonce,
	input,
	type,
	method
) VALUES`

// InsertTransactions stores transaction rows in ClickHouse.
func (r *Repository) InsertTransactions(ctx context.Context, txs []model.ArchivedTransaction) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transactions", len(txs), err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertTransactionsQuery)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	for _, tx := range txs {
		if err = batch.Append(
			tx.Hash,
			tx.BlockHash,
			tx.BlockNumber,
			tx.TxIndex,
			tx.From,
			tx.To,
			tx.Value,
			tx.Gas,
			tx.GasPrice,
			tx.Nonce,
			tx.Input,
			tx.Type,
			tx.Method,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append transaction %s: %w", tx.Hash, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}
