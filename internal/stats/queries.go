package stats

import "github.com/goodnatureofminers/blockpulse-backend/internal/model"

const minutesPerDay = 1440

// ThroughputPerSecond returns transfers in the window divided by windowSec.
func (b *Buffer) ThroughputPerSecond(windowSec int64) (float64, error) {
	blocks, err := b.Window(windowSec)
	if err != nil {
		return 0, err
	}
	return float64(TransferCount(blocks)) / float64(windowSec), nil
}

// BlocksPerMinute returns blocks in the window divided by the window length in minutes.
func (b *Buffer) BlocksPerMinute(windowSec int64) (float64, error) {
	blocks, err := b.Window(windowSec)
	if err != nil {
		return 0, err
	}
	return float64(len(blocks)) / (float64(windowSec) / 60), nil
}

// TopSenders ranks senders within the window.
func (b *Buffer) TopSenders(windowSec int64, topN int) ([]model.AddressCount, error) {
	if err := validateTopN(topN); err != nil {
		return nil, err
	}
	blocks, err := b.Window(windowSec)
	if err != nil {
		return nil, err
	}
	return RankSenders(blocks, topN), nil
}

// TopRecipients ranks recipients within the window.
func (b *Buffer) TopRecipients(windowSec int64, topN int) ([]model.AddressCount, error) {
	if err := validateTopN(topN); err != nil {
		return nil, err
	}
	blocks, err := b.Window(windowSec)
	if err != nil {
		return nil, err
	}
	return RankRecipients(blocks, topN), nil
}

// BlocksPer24h extrapolates the per-minute block rate over the full horizon to
// a day. The count is scaled before dividing so the result is exactly the
// number of blocks in the horizon.
func (b *Buffer) BlocksPer24h() (float64, error) {
	blocks, err := b.Window(RetentionSeconds)
	if err != nil {
		return 0, err
	}
	return float64(len(blocks)) * minutesPerDay / (float64(RetentionSeconds) / 60), nil
}

// TopSenders24h ranks senders over the full horizon.
func (b *Buffer) TopSenders24h(topN int) ([]model.AddressCount, error) {
	return b.TopSenders(RetentionSeconds, topN)
}

// TopRecipients24h ranks recipients over the full horizon.
func (b *Buffer) TopRecipients24h(topN int) ([]model.AddressCount, error) {
	return b.TopRecipients(RetentionSeconds, topN)
}
