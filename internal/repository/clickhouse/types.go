package clickhouse

//go:generate mockgen -source=types.go -destination=mocks_test.go -package=clickhouse

import (
	"context"
	"time"
)

type (
	// Metrics records repository operation outcomes.
	Metrics interface {
		Observe(operation string, rows int, err error, started time.Time)
	}

	// Conn is the subset of a ClickHouse connection used by the repository.
	Conn interface {
		PrepareBatch(ctx context.Context, query string) (Batch, error)
		Ping(ctx context.Context) error
		Close() error
	}

	// Batch is a prepared insert.
	Batch interface {
		Append(v ...any) error
		Send() error
		Abort() error
	}
)
