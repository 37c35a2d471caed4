package transport

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/goodnatureofminers/blockpulse-backend/internal/model"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	feedWriteTimeout = 5 * time.Second
	feedQueueSize    = 16
)

// feedClient owns one connection. Only its writer goroutine writes data
// frames; send is closed when the client is dropped.
type feedClient struct {
	conn *websocket.Conn
	send chan []byte
}

// Feed pushes new-block events to websocket subscribers.
type Feed struct {
	logger   *zap.Logger
	metrics  FeedMetrics
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*feedClient]struct{}
}

// NewFeed returns a Feed accepting connections from any origin.
func NewFeed(metrics FeedMetrics, logger *zap.Logger) *Feed {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Feed{
		logger:   logger,
		metrics:  metrics,
		upgrader: websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
		clients:  make(map[*feedClient]struct{}),
	}
}

// ServeHTTP upgrades the request and registers the subscriber. Incoming
// messages are discarded; a read error unregisters the client.
func (f *Feed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		f.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &feedClient{conn: conn, send: make(chan []byte, feedQueueSize)}

	f.mu.Lock()
	f.clients[c] = struct{}{}
	f.observeClientsLocked()
	f.mu.Unlock()

	go f.writeLoop(c)
	go func() {
		defer f.drop(c)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Broadcast queues event for every subscriber without waiting on the network.
// A subscriber whose queue is full is dropped.
func (f *Feed) Broadcast(event model.BlockEvent) {
	msg, err := json.Marshal(event)
	if err != nil {
		f.logger.Error("marshal block event", zap.Error(err))
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for c := range f.clients {
		select {
		case c.send <- msg:
		default:
			f.logger.Debug("dropping slow websocket client")
			f.dropLocked(c)
		}
	}
	f.observeClientsLocked()
}

func (f *Feed) writeLoop(c *feedClient) {
	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(feedWriteTimeout))
		err := c.conn.WriteMessage(websocket.TextMessage, msg)
		f.metrics.ObserveWrite(err)
		if err != nil {
			f.logger.Debug("dropping websocket client", zap.Error(err))
			f.drop(c)
			return
		}
	}
}

// Clients returns the number of connected subscribers.
func (f *Feed) Clients() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.clients)
}

// Close disconnects every subscriber.
func (f *Feed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for c := range f.clients {
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
			time.Now().Add(time.Second))
		f.dropLocked(c)
	}
	f.observeClientsLocked()
}

func (f *Feed) drop(c *feedClient) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.clients[c]; ok {
		f.dropLocked(c)
		f.observeClientsLocked()
	}
}

func (f *Feed) dropLocked(c *feedClient) {
	delete(f.clients, c)
	close(c.send)
	_ = c.conn.Close()
}

func (f *Feed) observeClientsLocked() {
	f.metrics.ObserveClients(len(f.clients))
}
