package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockpulse-backend/internal/model"
)

const insertBlocksQuery = `
INSERT INTO explorer_blocks (
	hash,
	number,
	timestamp,
	gas_used,
	gas_limit,
	parent_hash,
	tx_count,
	received_at
) VALUES`

// InsertBlocks stores block rows in ClickHouse.
func (r *Repository) InsertBlocks(ctx context.Context, blocks []model.ArchivedBlock) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_blocks", len(blocks), err, start)
	}()

	if len(blocks) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertBlocksQuery)
	if err != nil {
		return fmt.Errorf("prepare blocks batch: %w", err)
	}

	for _, block := range blocks {
		if err = batch.Append(
			block.Hash,
			block.Number,
			block.Timestamp,
			block.GasUsed,
			block.GasLimit,
			block.ParentHash,
			block.TxCount,
			block.ReceivedAt,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append block %s: %w", block.Hash, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert blocks: %w", err)
	}
	return nil
}
