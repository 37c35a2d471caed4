// Package batcher provides a generic buffered batch processor with rate limiting.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

var (
	// ErrStopped is returned by Add once Stop has been called.
	ErrStopped = errors.New("batcher stopped")
	// ErrQueueFull is returned by TryAdd when the queue has no free slot.
	ErrQueueFull = errors.New("batcher queue full")
)

const (
	defaultSize     = 100
	defaultInterval = time.Second
)

// FlushFunc persists one batch. The slice is owned by the callee.
type FlushFunc[T any] func(context.Context, []T) error

// Config controls when a batch is flushed. RPS limits flushes per second; zero
// means unlimited.
type Config struct {
	Size     int
	Interval time.Duration
	RPS      int
}

// Batcher buffers items and flushes them either by size or interval.
type Batcher[T any] struct {
	flush    FlushFunc[T]
	itemsCh  chan T
	size     int
	interval time.Duration
	rl       ratelimit.Limiter
	logger   *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// New constructs a Batcher. Zero config fields take package defaults.
func New[T any](logger *zap.Logger, cfg Config, flush FlushFunc[T]) *Batcher[T] {
	if cfg.Size <= 0 {
		cfg.Size = defaultSize
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	rl := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		rl = ratelimit.New(cfg.RPS)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Batcher[T]{
		logger:   logger,
		flush:    flush,
		itemsCh:  make(chan T, cfg.Size*2),
		size:     cfg.Size,
		interval: cfg.Interval,
		rl:       rl,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop drains queued items, flushes them and waits for the loop to exit.
// It is safe to call more than once.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.wg.Wait()
}

// Add queues an item for batching, respecting context cancellation.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	case <-b.done:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return ErrStopped
	case <-b.done:
		return ErrStopped
	case b.itemsCh <- item:
		return nil
	}
}

// TryAdd queues an item without waiting. It returns ErrQueueFull when the
// flush loop is behind.
func (b *Batcher[T]) TryAdd(item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	case <-b.done:
		return ErrStopped
	default:
	}

	select {
	case b.itemsCh <- item:
		return nil
	default:
		return ErrQueueFull
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()
	defer close(b.done)

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	buf := make([]T, 0, b.size)

	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		batch := buf
		buf = make([]T, 0, b.size)
		if err := b.flush(ctx, batch); err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(batch)), zap.Error(err))
			return
		}
		b.logger.Debug("batch flushed", zap.Int("size", len(batch)))
	}

	// the tail is flushed even if the run context is already cancelled
	final := func() {
		for {
			select {
			case item := <-b.itemsCh:
				buf = append(buf, item)
				if len(buf) >= b.size {
					flush(context.WithoutCancel(ctx))
				}
			default:
				flush(context.WithoutCancel(ctx))
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			final()
			return

		case <-b.stop:
			final()
			return

		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.size {
				flush(ctx)
			}

		case <-ticker.C:
			flush(ctx)
		}
	}
}
