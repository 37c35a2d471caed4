// Package ingest accepts block and transaction webhooks, keeps the recent
// blocks and transactions in memory and fans recorded blocks out to the
// optional archive, publisher and live feed.
package ingest

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/goodnatureofminers/blockpulse-backend/internal/model"
	"go.uber.org/zap"
)

const (
	maxBlocks       = 100
	maxTransactions = 1000
	maxViews        = 100
	maxReceipts     = 20000

	defaultSinkTimeout = 2 * time.Second

	kindBlocks       = "blocks"
	kindTransactions = "transactions"

	sinkArchive   = "archive"
	sinkPublisher = "publisher"
)

// Result is the outcome of one webhook delivery.
type Result struct {
	Pong     bool
	Received int
}

// Service owns the in-memory explorer state fed by webhooks.
type Service struct {
	logger      *zap.Logger
	recorder    Recorder
	metrics     Metrics
	archive     Archive
	publisher   Publisher
	broadcaster Broadcaster
	sinkTimeout time.Duration

	mu           sync.RWMutex
	blocks       []model.Block
	transactions []model.Transaction
	receipts     map[string]model.Receipt
	receiptOrder []string
}

// Option configures optional Service collaborators.
type Option func(*Service)

// WithArchive persists every recorded block.
func WithArchive(a Archive) Option {
	return func(s *Service) {
		s.archive = a
	}
}

// WithPublisher publishes the summary of every recorded block.
func WithPublisher(p Publisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

// WithBroadcaster pushes a new-block event for every recorded block.
func WithBroadcaster(b Broadcaster) Option {
	return func(s *Service) {
		s.broadcaster = b
	}
}

// WithSinkTimeout bounds how long each archive or publisher call may hold up
// a delivery. Non-positive values keep the default.
func WithSinkTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.sinkTimeout = d
		}
	}
}

// NewService builds a Service around the stats recorder.
func NewService(recorder Recorder, metrics Metrics, logger *zap.Logger, opts ...Option) (*Service, error) {
	if recorder == nil {
		return nil, errors.New("ingest recorder is required")
	}
	if metrics == nil {
		return nil, errors.New("ingest metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Service{
		logger:      logger,
		recorder:    recorder,
		metrics:     metrics,
		receipts:    make(map[string]model.Receipt),
		sinkTimeout: defaultSinkTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// HandleBlocks processes one block webhook delivery.
func (s *Service) HandleBlocks(ctx context.Context, payload []byte) (res Result, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveWebhook(kindBlocks, res.Received, err, started)
	}()

	p, err := parseBlockPayload(payload)
	if err != nil {
		s.logger.Warn("block webhook rejected", deliveryField(ctx), zap.Error(err))
		return Result{}, err
	}
	if p.ping {
		return Result{Pong: true}, nil
	}

	s.mu.Lock()
	s.storeReceiptsLocked(p.receipts)
	s.blocks = append(s.blocks, p.block)
	if len(s.blocks) > maxBlocks {
		s.blocks = append(s.blocks[:0:0], s.blocks[len(s.blocks)-maxBlocks:]...)
	}
	s.mu.Unlock()

	sb := s.recorder.Record(p.block)
	s.logger.Debug("block recorded",
		deliveryField(ctx),
		zap.String("number", p.block.Number),
		zap.String("hash", p.block.Hash),
		zap.Int("transactions", len(p.block.Transactions)),
		zap.Int("receipts", len(p.receipts)),
	)

	s.fanOut(context.WithoutCancel(ctx), p.block, sb)

	return Result{Received: 1}, nil
}

// fanOut hands the block to the optional sinks. Sink failures are logged and
// counted but never fail the delivery; each sink call is bounded by sinkTimeout.
func (s *Service) fanOut(ctx context.Context, block model.Block, sb model.StatBlock) {
	if s.archive != nil {
		err := s.withSinkTimeout(ctx, func(ctx context.Context) error {
			return s.archive.WriteBlock(ctx, block)
		})
		s.metrics.ObserveSink(sinkArchive, err)
		if err != nil {
			s.logger.Warn("archive write failed", deliveryField(ctx), zap.String("hash", block.Hash), zap.Error(err))
		}
	}
	if s.publisher != nil {
		err := s.withSinkTimeout(ctx, func(ctx context.Context) error {
			return s.publisher.Publish(ctx, sb)
		})
		s.metrics.ObserveSink(sinkPublisher, err)
		if err != nil {
			s.logger.Warn("publish failed", deliveryField(ctx), zap.String("hash", block.Hash), zap.Error(err))
		}
	}
	if s.broadcaster != nil {
		s.broadcaster.Broadcast(model.BlockEvent{
			Number:       block.Number,
			Hash:         block.Hash,
			Timestamp:    sb.Timestamp,
			Transactions: len(block.Transactions),
		})
	}
}

func (s *Service) withSinkTimeout(ctx context.Context, call func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.sinkTimeout)
	defer cancel()
	return call(ctx)
}

// HandleTransactions processes one transaction webhook delivery.
func (s *Service) HandleTransactions(ctx context.Context, payload []byte) (res Result, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveWebhook(kindTransactions, res.Received, err, started)
	}()

	p, err := parseTxPayload(payload)

	s.mu.Lock()
	s.storeReceiptsLocked(p.receipts)
	if err == nil {
		s.transactions = append(s.transactions, p.txs...)
		if len(s.transactions) > maxTransactions {
			s.transactions = append(s.transactions[:0:0], s.transactions[len(s.transactions)-maxTransactions:]...)
		}
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("transaction webhook rejected", deliveryField(ctx), zap.Error(err))
		return Result{}, err
	}
	if p.ping {
		return Result{Pong: true}, nil
	}

	s.logger.Debug("transactions stored",
		deliveryField(ctx),
		zap.Int("transactions", len(p.txs)),
		zap.Int("receipts", len(p.receipts)),
	)
	return Result{Received: len(p.txs)}, nil
}

// storeReceiptsLocked indexes receipts by lower-cased hash. The oldest
// entries are evicted past maxReceipts.
func (s *Service) storeReceiptsLocked(receipts []model.Receipt) {
	for _, r := range receipts {
		key := strings.ToLower(r.TransactionHash)
		if _, ok := s.receipts[key]; !ok {
			s.receiptOrder = append(s.receiptOrder, key)
		}
		s.receipts[key] = r
	}
	if overflow := len(s.receiptOrder) - maxReceipts; overflow > 0 {
		for _, key := range s.receiptOrder[:overflow] {
			delete(s.receipts, key)
		}
		s.receiptOrder = append(s.receiptOrder[:0:0], s.receiptOrder[overflow:]...)
	}
}

// RecentBlocks returns up to the last 100 blocks, oldest first.
func (s *Service) RecentBlocks() []model.Block {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Block, len(s.blocks))
	copy(out, s.blocks)
	return out
}

// BlockByID resolves a block tag, a hex number or a decimal number against
// the recent blocks.
func (s *Service) BlockByID(id string) (model.Block, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sel, err := parseBlockID(id)
	if err != nil {
		return model.Block{}, err
	}

	if len(s.blocks) > 0 {
		switch sel.tag {
		case tagNewest:
			return s.blocks[len(s.blocks)-1], nil
		case tagOldest:
			return s.blocks[0], nil
		default:
			for _, b := range s.blocks {
				if strings.ToLower(b.Number) == sel.number {
					return b, nil
				}
			}
		}
	}
	return model.Block{}, ErrNotFound
}

// RecentTransactions returns up to the last 100 transactions merged with
// their receipts, oldest first.
func (s *Service) RecentTransactions() []model.TransactionView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	txs := s.transactions
	if len(txs) > maxViews {
		txs = txs[len(txs)-maxViews:]
	}
	out := make([]model.TransactionView, 0, len(txs))
	for _, tx := range txs {
		out = append(out, s.viewLocked(tx))
	}
	return out
}

// TransactionByHash finds a stored transaction by hash, ignoring case.
func (s *Service) TransactionByHash(hash string) (model.TransactionView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, tx := range s.transactions {
		if strings.EqualFold(tx.Hash, hash) {
			return s.viewLocked(tx), nil
		}
	}
	return model.TransactionView{}, ErrNotFound
}

func (s *Service) viewLocked(tx model.Transaction) model.TransactionView {
	view := model.TransactionView{Transaction: tx}
	if r, ok := s.receipts[strings.ToLower(tx.Hash)]; ok {
		view.Status = r.Status
		view.GasUsed = r.CumulativeGasUsed
	}
	return view
}
