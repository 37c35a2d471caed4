package snapshot

import (
	"context"

	"github.com/goodnatureofminers/blockpulse-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Buffer interface {
		Snapshot() []model.StatBlock
		Load(items []model.StatBlock)
		Prune() int
	}
	Store interface {
		Save(ctx context.Context, items []model.StatBlock) error
		Load(ctx context.Context) ([]model.StatBlock, error)
	}
)
