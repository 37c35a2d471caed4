package transport

import (
	"context"
	"encoding/json"

	"github.com/goodnatureofminers/blockpulse-backend/internal/ingest"
	"github.com/goodnatureofminers/blockpulse-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Ingest interface {
		HandleBlocks(ctx context.Context, payload []byte) (ingest.Result, error)
		HandleTransactions(ctx context.Context, payload []byte) (ingest.Result, error)
		RecentBlocks() []model.Block
		BlockByID(id string) (model.Block, error)
		RecentTransactions() []model.TransactionView
		TransactionByHash(hash string) (model.TransactionView, error)
	}
	Stats interface {
		ThroughputPerSecond(windowSec int64) (float64, error)
		BlocksPerMinute(windowSec int64) (float64, error)
		TopSenders(windowSec int64, topN int) ([]model.AddressCount, error)
		TopRecipients(windowSec int64, topN int) ([]model.AddressCount, error)
		BlocksPer24h() (float64, error)
		TopSenders24h(topN int) ([]model.AddressCount, error)
		TopRecipients24h(topN int) ([]model.AddressCount, error)
		TPSHistory() []model.TPSPoint
		BlocksHistory() []model.BlocksPoint
	}
	Upstream interface {
		BlockByNumber(ctx context.Context, number string) (json.RawMessage, error)
		TransactionReceipt(ctx context.Context, hash string) (json.RawMessage, error)
	}
	FeedMetrics interface {
		ObserveClients(n int)
		ObserveWrite(err error)
	}
)
