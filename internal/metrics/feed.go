package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	feedClients = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "feed",
		Name:      "clients",
		Help:      "Connected websocket feed clients.",
	})
	feedMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "feed",
		Name:      "messages_total",
		Help:      "Websocket feed writes by status.",
	}, []string{"status"})
)

// Feed tracks metrics for the websocket block feed.
type Feed struct{}

// NewFeed creates a Feed metrics collector.
func NewFeed() *Feed {
	return &Feed{}
}

// ObserveClients records the number of connected clients.
func (m Feed) ObserveClients(n int) {
	feedClients.Set(float64(n))
}

// ObserveWrite records one message write to a client.
func (m Feed) ObserveWrite(err error) {
	feedMessagesTotal.WithLabelValues(statusOf(err)).Inc()
}
