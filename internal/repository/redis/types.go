package redis

//go:generate mockgen -source=types.go -destination=mocks_test.go -package=redis

import "time"

type (
	// Metrics records snapshot store operations.
	Metrics interface {
		Observe(operation string, items int, err error, started time.Time)
	}
)
