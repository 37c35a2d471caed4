package stats

import (
	"strconv"
	"time"

	"github.com/goodnatureofminers/blockpulse-backend/internal/model"
)

const (
	historyPoints = 60
	bucketSeconds = 60
	historyLayout = "15:04"
	tpsPrecision  = 4
)

type minuteBucket struct {
	blocks    int
	transfers int
}

// TPSHistory returns transactions per second for each of the trailing 60
// one-minute buckets ending at the current minute, oldest first.
func (b *Buffer) TPSHistory() []model.TPSPoint {
	minutes, buckets := b.history()
	out := make([]model.TPSPoint, 0, len(minutes))
	for _, minute := range minutes {
		tps := float64(buckets[minute].transfers) / bucketSeconds
		out = append(out, model.TPSPoint{
			Time: b.label(minute),
			TPS:  strconv.FormatFloat(tps, 'f', tpsPrecision, 64),
		})
	}
	return out
}

// BlocksHistory returns the block count for each of the trailing 60 one-minute
// buckets ending at the current minute, oldest first.
func (b *Buffer) BlocksHistory() []model.BlocksPoint {
	minutes, buckets := b.history()
	out := make([]model.BlocksPoint, 0, len(minutes))
	for _, minute := range minutes {
		out = append(out, model.BlocksPoint{
			Time:   b.label(minute),
			Blocks: buckets[minute].blocks,
		})
	}
	return out
}

func (b *Buffer) history() ([]int64, map[int64]minuteBucket) {
	now := b.now.Unix()

	b.mu.RLock()
	buckets := make(map[int64]minuteBucket)
	for _, item := range b.items {
		minute := floorDiv(item.Timestamp, bucketSeconds)
		bucket := buckets[minute]
		bucket.blocks++
		bucket.transfers += len(item.Transfers)
		buckets[minute] = bucket
	}
	b.mu.RUnlock()

	minutes := make([]int64, 0, historyPoints)
	for i := int64(historyPoints - 1); i >= 0; i-- {
		minutes = append(minutes, floorDiv(now-i*bucketSeconds, bucketSeconds))
	}
	return minutes, buckets
}

func (b *Buffer) label(minute int64) string {
	return time.Unix(minute*bucketSeconds, 0).In(b.loc).Format(historyLayout)
}

func floorDiv(a, n int64) int64 {
	q := a / n
	if a%n != 0 && a < 0 {
		q--
	}
	return q
}
