package publisher

//go:generate mockgen -source=types.go -destination=mocks_test.go -package=publisher

import "time"

type (
	// Metrics records publish outcomes.
	Metrics interface {
		Observe(err error, started time.Time)
	}
)
