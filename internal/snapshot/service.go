// Package snapshot persists the statistics buffer between restarts.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockpulse-backend/internal/clock"
)

const (
	defaultInterval  = 30 * time.Second
	finalSaveTimeout = 5 * time.Second
)

// Service restores the buffer on startup and saves it periodically.
type Service struct {
	logger   *zap.Logger
	buffer   Buffer
	store    Store
	sleep    clock.Sleeper
	interval time.Duration
}

// NewService builds a Service. A non-positive interval uses the default.
func NewService(buffer Buffer, store Store, interval time.Duration, logger *zap.Logger) (*Service, error) {
	if buffer == nil {
		return nil, errors.New("snapshot buffer is required")
	}
	if store == nil {
		return nil, errors.New("snapshot store is required")
	}
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Service{
		logger:   logger,
		buffer:   buffer,
		store:    store,
		sleep:    clock.SleepWithContext,
		interval: interval,
	}, nil
}

// Restore loads the stored snapshot into the buffer and applies the horizon.
func (s *Service) Restore(ctx context.Context) error {
	items, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("restore snapshot: %w", err)
	}
	s.buffer.Load(items)
	pruned := s.buffer.Prune()
	s.logger.Info("stats buffer restored",
		zap.Int("loaded", len(items)),
		zap.Int("expired", pruned),
	)
	return nil
}

// Run saves the buffer every interval until ctx is done, then saves once more.
func (s *Service) Run(ctx context.Context) error {
	for {
		if err := s.sleep(ctx, s.interval); err != nil {
			s.finalSave(ctx)
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
		s.buffer.Prune()
		if err := s.save(ctx); err != nil {
			s.logger.Warn("snapshot save failed", zap.Error(err))
		}
	}
}

func (s *Service) finalSave(ctx context.Context) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), finalSaveTimeout)
	defer cancel()

	if err := s.save(ctx); err != nil {
		s.logger.Error("final snapshot save failed", zap.Error(err))
		return
	}
	s.logger.Info("final snapshot saved")
}

func (s *Service) save(ctx context.Context) error {
	items := s.buffer.Snapshot()
	if err := s.store.Save(ctx, items); err != nil {
		return err
	}
	s.logger.Debug("snapshot saved", zap.Int("items", len(items)))
	return nil
}
