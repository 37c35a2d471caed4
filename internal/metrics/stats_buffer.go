package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	statsBufferSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "stats_buffer",
		Name:      "blocks",
		Help:      "Block summaries retained in the statistics buffer.",
	})

	statsBufferPruned = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "stats_buffer",
		Name:      "pruned_total",
		Help:      "Block summaries dropped past the retention horizon.",
	})

	statsBufferMalformed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "stats_buffer",
		Name:      "malformed_timestamps_total",
		Help:      "Blocks whose timestamp could not be parsed and was defaulted to receive time.",
	})
)

// StatsBuffer tracks metrics for the statistics buffer.
type StatsBuffer struct{}

// NewStatsBuffer creates a StatsBuffer metrics collector.
func NewStatsBuffer() *StatsBuffer {
	return &StatsBuffer{}
}

// ObserveSize records the current number of retained summaries.
func (m StatsBuffer) ObserveSize(n int) {
	statsBufferSize.Set(float64(n))
}

// ObservePruned records summaries removed by horizon pruning.
func (m StatsBuffer) ObservePruned(n int) {
	if n > 0 {
		statsBufferPruned.Add(float64(n))
	}
}

// ObserveMalformedTimestamp records a defaulted timestamp.
func (m StatsBuffer) ObserveMalformedTimestamp() {
	statsBufferMalformed.Inc()
}
