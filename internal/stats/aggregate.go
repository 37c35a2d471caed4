package stats

import (
	"fmt"
	"sort"

	"github.com/goodnatureofminers/blockpulse-backend/internal/model"
)

// TransferCount returns the number of transfers across blocks.
func TransferCount(blocks []model.StatBlock) int {
	total := 0
	for _, b := range blocks {
		total += len(b.Transfers)
	}
	return total
}

// RankSenders counts transfers per sender and returns the topN busiest.
// Ties keep the order in which the addresses were first seen.
func RankSenders(blocks []model.StatBlock, topN int) []model.AddressCount {
	return rank(blocks, topN, func(tr model.Transfer) (string, bool) {
		return tr.From, tr.From != ""
	})
}

// RankRecipients counts transfers per recipient, skipping contract creations.
func RankRecipients(blocks []model.StatBlock, topN int) []model.AddressCount {
	return rank(blocks, topN, func(tr model.Transfer) (string, bool) {
		if tr.To == nil || *tr.To == "" {
			return "", false
		}
		return *tr.To, true
	})
}

func rank(blocks []model.StatBlock, topN int, key func(model.Transfer) (string, bool)) []model.AddressCount {
	index := make(map[string]int)
	counts := make([]model.AddressCount, 0)
	for _, b := range blocks {
		for _, tr := range b.Transfers {
			addr, ok := key(tr)
			if !ok {
				continue
			}
			if i, seen := index[addr]; seen {
				counts[i].Count++
				continue
			}
			index[addr] = len(counts)
			counts = append(counts, model.AddressCount{Address: addr, Count: 1})
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if len(counts) > topN {
		counts = counts[:topN]
	}
	return counts
}

func validateTopN(topN int) error {
	if topN <= 0 {
		return fmt.Errorf("%w: topN must be positive, got %d", ErrInvalidArgument, topN)
	}
	return nil
}
