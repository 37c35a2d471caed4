package archive

//go:generate mockgen -source=types.go -destination=mocks_test.go -package=archive

import (
	"context"

	"github.com/goodnatureofminers/blockpulse-backend/internal/model"
)

type (
	// Repository persists archive rows.
	Repository interface {
		InsertBlocks(ctx context.Context, blocks []model.ArchivedBlock) error
		InsertTransactions(ctx context.Context, txs []model.ArchivedTransaction) error
	}
)
