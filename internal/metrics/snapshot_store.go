package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	snapshotStoreTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "snapshot_store",
		Name:      "operations_total",
		Help:      "Count of snapshot store operations.",
	}, []string{"operation", "status"})
	snapshotStoreDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "snapshot_store",
		Name:      "operation_duration_seconds",
		Help:      "Duration of snapshot store operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
	snapshotStoreItems = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "snapshot_store",
		Name:      "last_items",
		Help:      "Block summaries moved by the last successful operation.",
	}, []string{"operation"})
)

// SnapshotStore tracks metrics for the Redis snapshot store.
type SnapshotStore struct{}

// NewSnapshotStore creates a SnapshotStore metrics collector.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// Observe records duration, status and size of a snapshot operation.
func (m SnapshotStore) Observe(operation string, items int, err error, started time.Time) {
	status := statusOf(err)
	snapshotStoreTotal.WithLabelValues(operation, status).Inc()
	snapshotStoreDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
	if err == nil {
		snapshotStoreItems.WithLabelValues(operation).Set(float64(items))
	}
}
