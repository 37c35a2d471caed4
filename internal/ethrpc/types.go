package ethrpc

//go:generate mockgen -source=types.go -destination=mocks_test.go -package=ethrpc

import "time"

type (
	// Metrics records metrics for upstream calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
