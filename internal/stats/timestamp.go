package stats

import (
	"math"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/blockpulse-backend/internal/model"
	"github.com/goodnatureofminers/blockpulse-backend/pkg/safe"
)

// ParseTimestamp converts a webhook timestamp to seconds since the epoch.
// A "0x" prefix selects base 16, anything else is read as a decimal integer and
// then as a decimal float truncated toward zero. ok is false for input that is
// neither.
func ParseTimestamp(raw string) (ts int64, ok bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return 0, false
		}
		n, err := safe.Int64(v)
		if err != nil {
			return 0, false
		}
		return n, true
	}

	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

// Summarize reduces a full block to its statistics summary. Transaction order
// is preserved; a missing or empty recipient is recorded as nil.
func Summarize(block model.Block, fallback int64) (sb model.StatBlock, parsed bool) {
	ts, parsed := ParseTimestamp(block.Timestamp.String())
	if !parsed {
		ts = fallback
	}

	transfers := make([]model.Transfer, 0, len(block.Transactions))
	for _, tx := range block.Transactions {
		transfers = append(transfers, model.Transfer{From: tx.From, To: tx.Recipient()})
	}

	return model.StatBlock{Timestamp: ts, Transfers: transfers}, parsed
}
