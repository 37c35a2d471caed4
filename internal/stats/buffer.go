// Package stats keeps a trailing 24 hour history of per-block transfer
// summaries and derives rolling throughput and ranking metrics from it.
package stats

import (
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/blockpulse-backend/internal/clock"
	"github.com/goodnatureofminers/blockpulse-backend/internal/model"
	"go.uber.org/zap"
)

const (
	// RetentionSeconds is the horizon past which summaries are pruned.
	RetentionSeconds int64 = 86400
	// DefaultWindowSeconds is the window used by the dashboard queries.
	DefaultWindowSeconds int64 = 60
	// DefaultTopN is the ranking length used by the dashboard queries.
	DefaultTopN = 5
)

// Buffer is an append-only, time-ordered sequence of block summaries pruned to
// RetentionSeconds. Entries are immutable once recorded. All methods are safe
// for concurrent use.
type Buffer struct {
	mu    sync.RWMutex
	items []model.StatBlock

	now     clock.Func
	loc     *time.Location
	logger  *zap.Logger
	metrics BufferMetrics
}

// Option configures a Buffer.
type Option func(*Buffer)

// WithClock overrides the source of "now".
func WithClock(now clock.Func) Option {
	return func(b *Buffer) {
		b.now = now
	}
}

// WithLocation sets the zone used for history bucket labels.
func WithLocation(loc *time.Location) Option {
	return func(b *Buffer) {
		if loc != nil {
			b.loc = loc
		}
	}
}

// WithLogger sets the buffer logger.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Buffer) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithMetrics sets the buffer metrics collector.
func WithMetrics(m BufferMetrics) Option {
	return func(b *Buffer) {
		b.metrics = m
	}
}

// NewBuffer returns an empty Buffer.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		now:    time.Now,
		loc:    time.Local,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Record summarizes block and appends it. A timestamp that cannot be parsed is
// replaced by the receive time. The appended summary is returned.
func (b *Buffer) Record(block model.Block) model.StatBlock {
	sb, parsed := Summarize(block, b.now.Unix())
	if !parsed {
		b.logger.Warn("malformed block timestamp, using receive time",
			zap.String("hash", block.Hash),
			zap.String("timestamp", block.Timestamp.String()),
			zap.Int64("receive_time", sb.Timestamp),
		)
		if b.metrics != nil {
			b.metrics.ObserveMalformedTimestamp()
		}
	}
	b.Append(sb)
	return sb
}

// Append adds an already summarized block and prunes the front of the buffer.
func (b *Buffer) Append(sb model.StatBlock) {
	now := b.now.Unix()

	b.mu.Lock()
	b.items = append(b.items, sb.Clone())
	pruned := b.pruneLocked(now)
	size := len(b.items)
	b.mu.Unlock()

	b.observe(size, pruned)
}

// Prune drops summaries older than the retention horizon and returns how many
// were removed.
func (b *Buffer) Prune() int {
	now := b.now.Unix()

	b.mu.Lock()
	pruned := b.pruneLocked(now)
	size := len(b.items)
	b.mu.Unlock()

	b.observe(size, pruned)
	return pruned
}

func (b *Buffer) pruneLocked(now int64) int {
	cutoff := now - RetentionSeconds
	n := 0
	for n < len(b.items) && b.items[n].Timestamp < cutoff {
		n++
	}
	if n == 0 {
		return 0
	}
	remaining := copy(b.items, b.items[n:])
	clear(b.items[remaining:])
	b.items = b.items[:remaining]
	return n
}

// Snapshot returns a deep copy of the current contents.
func (b *Buffer) Snapshot() []model.StatBlock {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]model.StatBlock, len(b.items))
	for i, item := range b.items {
		out[i] = item.Clone()
	}
	return out
}

// Load replaces the buffer contents with a copy of items. No pruning is done;
// call Prune afterwards to apply the horizon.
func (b *Buffer) Load(items []model.StatBlock) {
	loaded := make([]model.StatBlock, len(items))
	for i, item := range items {
		loaded[i] = item.Clone()
	}

	b.mu.Lock()
	b.items = loaded
	size := len(b.items)
	b.mu.Unlock()

	b.observe(size, 0)
}

// Window returns the summaries with timestamp >= now-seconds, in insertion order.
func (b *Buffer) Window(seconds int64) ([]model.StatBlock, error) {
	if seconds <= 0 {
		return nil, fmt.Errorf("%w: window must be positive, got %d", ErrInvalidArgument, seconds)
	}
	cutoff := b.now.Unix() - seconds

	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]model.StatBlock, 0, len(b.items))
	for _, item := range b.items {
		if item.Timestamp >= cutoff {
			out = append(out, item)
		}
	}
	return out, nil
}

// Len returns the number of retained summaries.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.items)
}

func (b *Buffer) observe(size, pruned int) {
	if b.metrics == nil {
		return
	}
	b.metrics.ObserveSize(size)
	b.metrics.ObservePruned(pruned)
}
