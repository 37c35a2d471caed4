// Package clock abstracts the wall clock for the stats buffer, the archive
// writer and the snapshot loop.
package clock

import (
	"context"
	"time"
)

// Func reports the current instant. The zero value falls back to time.Now.
type Func func() time.Time

// Now returns the current instant.
func (f Func) Now() time.Time {
	if f == nil {
		return time.Now()
	}
	return f()
}

// Unix returns the current instant in whole seconds since the epoch.
func (f Func) Unix() int64 {
	return f.Now().Unix()
}

// Sleeper blocks for d or until ctx is done, whichever comes first.
type Sleeper func(ctx context.Context, d time.Duration) error

// SleepWithContext is the real Sleeper. It returns ctx.Err() when the context
// ends first; a non-positive d only reports the context state.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
