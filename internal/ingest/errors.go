package ingest

import "errors"

var (
	ErrInvalidPayload = errors.New("invalid payload format")
	ErrInvalidBlockID = errors.New("invalid block id format")
	ErrNotFound       = errors.New("not found")
)
