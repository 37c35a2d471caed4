package stats

import "errors"

// ErrInvalidArgument is returned when a query is called with a non-positive window or topN.
var ErrInvalidArgument = errors.New("invalid argument")
