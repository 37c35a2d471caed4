package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	webhookRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ingest",
		Name:      "webhooks_total",
		Help:      "Count of webhook deliveries by kind.",
	}, []string{"kind", "status"})

	webhookDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ingest",
		Name:      "webhook_duration_seconds",
		Help:      "Duration of webhook payload handling.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind", "status"})

	webhookItems = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ingest",
		Name:      "items_total",
		Help:      "Blocks or transactions accepted from webhooks.",
	}, []string{"kind"})

	sinkTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ingest",
		Name:      "sink_total",
		Help:      "Outcome of best-effort forwarding of ingested blocks.",
	}, []string{"sink", "status"})
)

// Ingest tracks metrics for the webhook ingestion adapter.
type Ingest struct{}

// NewIngest creates an Ingest metrics collector.
func NewIngest() *Ingest {
	return &Ingest{}
}

// ObserveWebhook records one webhook delivery.
func (m Ingest) ObserveWebhook(kind string, items int, err error, started time.Time) {
	status := statusOf(err)
	webhookRequestsTotal.WithLabelValues(kind, status).Inc()
	webhookDuration.WithLabelValues(kind, status).Observe(time.Since(started).Seconds())
	if err == nil && items > 0 {
		webhookItems.WithLabelValues(kind).Add(float64(items))
	}
}

// ObserveSink records forwarding of a block to a downstream sink.
func (m Ingest) ObserveSink(sink string, err error) {
	sinkTotal.WithLabelValues(sink, statusOf(err)).Inc()
}
