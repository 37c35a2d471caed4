package ingest

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockpulse-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Recorder interface {
		Record(block model.Block) model.StatBlock
	}
	Archive interface {
		WriteBlock(ctx context.Context, block model.Block) error
	}
	Publisher interface {
		Publish(ctx context.Context, block model.StatBlock) error
	}
	Broadcaster interface {
		Broadcast(event model.BlockEvent)
	}
	Metrics interface {
		ObserveWebhook(kind string, items int, err error, started time.Time)
		ObserveSink(sink string, err error)
	}
)
