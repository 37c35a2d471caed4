// Package archive buffers received blocks and writes them to the ClickHouse archive.
package archive

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockpulse-backend/internal/clock"
	"github.com/goodnatureofminers/blockpulse-backend/internal/model"
	"github.com/goodnatureofminers/blockpulse-backend/pkg/batcher"
	"github.com/goodnatureofminers/blockpulse-backend/pkg/workerpool"
)

type received struct {
	rows model.ArchivedBlock
	txs  []model.ArchivedTransaction
}

// Writer archives blocks in batches. Rows are converted when a block is
// accepted so malformed blocks are rejected at the call site.
type Writer struct {
	repo    Repository
	batcher *batcher.Batcher[received]
	logger  *zap.Logger
	now     clock.Func
}

// NewWriter creates a Writer flushing to repo according to cfg.
func NewWriter(logger *zap.Logger, repo Repository, cfg batcher.Config, now clock.Func) *Writer {
	w := &Writer{
		repo:   repo,
		logger: logger,
		now:    now,
	}
	w.batcher = batcher.New(logger, cfg, w.flush)
	return w
}

// Start launches the background flush loop.
func (w *Writer) Start(ctx context.Context) {
	w.batcher.Start(ctx)
}

// Stop flushes buffered blocks and stops the loop.
func (w *Writer) Stop() {
	w.batcher.Stop()
}

// WriteBlock queues block for archiving without waiting on the flush loop. A
// stalled archive surfaces as batcher.ErrQueueFull and the block is skipped.
func (w *Writer) WriteBlock(ctx context.Context, block model.Block) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rows, txs, err := Convert(block, w.now.Now())
	if err != nil {
		return fmt.Errorf("convert block: %w", err)
	}
	if err := w.batcher.TryAdd(received{rows: rows, txs: txs}); err != nil {
		return fmt.Errorf("queue block %s: %w", block.Hash, err)
	}
	return nil
}

func (w *Writer) flush(ctx context.Context, items []received) error {
	blocks := make([]model.ArchivedBlock, 0, len(items))
	var txs []model.ArchivedTransaction
	for _, item := range items {
		blocks = append(blocks, item.rows)
		txs = append(txs, item.txs...)
	}

	inserts := []func(context.Context) error{
		func(ctx context.Context) error {
			return w.repo.InsertBlocks(ctx, blocks)
		},
		func(ctx context.Context) error {
			return w.repo.InsertTransactions(ctx, txs)
		},
	}
	err := workerpool.Process(ctx, len(inserts), inserts,
		func(ctx context.Context, insert func(context.Context) error) error {
			return insert(ctx)
		},
		func(err error) {
			w.logger.Warn("archive insert failed", zap.Int("blocks", len(blocks)), zap.Error(err))
		},
	)
	if err != nil {
		return fmt.Errorf("archive %d blocks: %w", len(blocks), err)
	}
	return nil
}
