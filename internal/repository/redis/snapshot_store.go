// Package redis keeps a snapshot of the statistics buffer in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/goodnatureofminers/blockpulse-backend/internal/model"
)

const (
	// DefaultKey holds the JSON encoded buffer contents.
	DefaultKey = "blockpulse:stats:snapshot"
	// DefaultTTL matches the statistics horizon; an older snapshot is useless.
	DefaultTTL = 24 * time.Hour
)

// SnapshotStore saves and loads buffer snapshots under a single key.
type SnapshotStore struct {
	client  goredis.UniversalClient
	key     string
	ttl     time.Duration
	metrics Metrics
}

// NewSnapshotStore connects to a single Redis node.
func NewSnapshotStore(addr, password string, db int, metrics Metrics) *SnapshotStore {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return NewSnapshotStoreWithClient(client, DefaultKey, DefaultTTL, metrics)
}

// NewSnapshotStoreWithClient wraps an existing client.
func NewSnapshotStoreWithClient(client goredis.UniversalClient, key string, ttl time.Duration, metrics Metrics) *SnapshotStore {
	if key == "" {
		key = DefaultKey
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SnapshotStore{client: client, key: key, ttl: ttl, metrics: metrics}
}

// Ping checks that Redis is reachable.
func (s *SnapshotStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	return nil
}

// Close releases the client.
func (s *SnapshotStore) Close() error {
	return s.client.Close()
}

// Save replaces the stored snapshot.
func (s *SnapshotStore) Save(ctx context.Context, items []model.StatBlock) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("save", len(items), err, started)
	}()

	if items == nil {
		items = []model.StatBlock{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err = s.client.Set(ctx, s.key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Load returns the stored snapshot. A missing key yields an empty snapshot.
func (s *SnapshotStore) Load(ctx context.Context) (items []model.StatBlock, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("load", len(items), err, started)
	}()

	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return []model.StatBlock{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	if err = json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return items, nil
}
