package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	publisherMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "publisher",
		Name:      "messages_total",
		Help:      "Count of block summaries published to Kafka.",
	}, []string{"topic", "status"})
	publisherDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "publisher",
		Name:      "publish_duration_seconds",
		Help:      "Duration of a synchronous Kafka publish.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"topic", "status"})
)

// Publisher tracks metrics for the Kafka publisher.
type Publisher struct {
	topic string
}

// NewPublisher creates a Publisher metrics collector for topic.
func NewPublisher(topic string) *Publisher {
	if topic == "" {
		topic = "unknown"
	}
	return &Publisher{topic: topic}
}

// Observe records one publish attempt.
func (m Publisher) Observe(err error, started time.Time) {
	status := statusOf(err)
	publisherMessagesTotal.WithLabelValues(m.topic, status).Inc()
	publisherDuration.WithLabelValues(m.topic, status).Observe(time.Since(started).Seconds())
}
