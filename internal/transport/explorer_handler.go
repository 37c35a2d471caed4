// Package transport exposes the explorer over HTTP, a websocket feed and gRPC health.
package transport

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/goodnatureofminers/blockpulse-backend/internal/ethrpc"
	"github.com/goodnatureofminers/blockpulse-backend/internal/ingest"
	"github.com/goodnatureofminers/blockpulse-backend/internal/stats"
	"github.com/google/uuid"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

// MaxWebhookBody caps the accepted webhook payload size.
const MaxWebhookBody = 50 << 20

// ExplorerHandler serves the webhook, explorer and stats routes.
type ExplorerHandler struct {
	logger   *zap.Logger
	ingest   Ingest
	stats    Stats
	upstream Upstream
	feed     http.Handler
	started  time.Time
	now      func() time.Time
}

// HandlerOption configures optional ExplorerHandler collaborators.
type HandlerOption func(*ExplorerHandler)

// WithUpstream enables the JSON-RPC proxy routes.
func WithUpstream(u Upstream) HandlerOption {
	return func(h *ExplorerHandler) {
		h.upstream = u
	}
}

// WithFeed serves the websocket block feed.
func WithFeed(feed http.Handler) HandlerOption {
	return func(h *ExplorerHandler) {
		h.feed = feed
	}
}

// NewExplorerHandler returns an ExplorerHandler instance.
func NewExplorerHandler(in Ingest, st Stats, logger *zap.Logger, opts ...HandlerOption) (*ExplorerHandler, error) {
	if in == nil {
		return nil, errors.New("ingest service is required")
	}
	if st == nil {
		return nil, errors.New("stats buffer is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &ExplorerHandler{
		logger:  logger,
		ingest:  in,
		stats:   st,
		started: time.Now(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

type route struct {
	method  string
	pattern string
	handler gwruntime.HandlerFunc
}

// Register mounts every route on mux.
func (h *ExplorerHandler) Register(mux *gwruntime.ServeMux) error {
	routes := []route{
		{http.MethodPost, "/webhook/blocks", h.webhookBlocks},
		{http.MethodPost, "/webhook/transactions", h.webhookTransactions},
		{http.MethodGet, "/blocks", h.blocks},
		{http.MethodGet, "/block/{id}", h.blockByID},
		{http.MethodGet, "/block-by-number/{number}", h.blockByNumber},
		{http.MethodGet, "/transactions", h.transactions},
		{http.MethodGet, "/transactions/{hash}", h.transactionByHash},
		{http.MethodGet, "/transaction-receipt/{hash}", h.transactionReceipt},
		{http.MethodGet, "/stats/uptime", h.uptime},
		{http.MethodGet, "/stats/tps", h.tps},
		{http.MethodGet, "/stats/blocks-per-minute", h.blocksPerMinute},
		{http.MethodGet, "/stats/top-senders", h.topSenders},
		{http.MethodGet, "/stats/top-contracts", h.topContracts},
		{http.MethodGet, "/stats/blocks-per-24hrs", h.blocksPer24h},
		{http.MethodGet, "/stats/top-senders-24hrs", h.topSenders24h},
		{http.MethodGet, "/stats/top-contracts-24hrs", h.topContracts24h},
		{http.MethodGet, "/stats/tps-history", h.tpsHistory},
		{http.MethodGet, "/stats/blocks-history", h.blocksHistory},
		{http.MethodGet, "/health", h.health},
	}
	if h.feed != nil {
		routes = append(routes, route{http.MethodGet, "/ws/blocks", func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
			h.feed.ServeHTTP(w, r)
		}})
	}

	for _, rt := range routes {
		if err := mux.HandlePath(rt.method, rt.pattern, rt.handler); err != nil {
			return err
		}
	}
	return nil
}

func (h *ExplorerHandler) webhookBlocks(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	h.webhook(w, r, h.ingest.HandleBlocks)
}

func (h *ExplorerHandler) webhookTransactions(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	h.webhook(w, r, h.ingest.HandleTransactions)
}

type webhookFunc func(ctx context.Context, payload []byte) (ingest.Result, error)

func (h *ExplorerHandler) webhook(w http.ResponseWriter, r *http.Request, handle webhookFunc) {
	deliveryID := uuid.NewString()
	ctx := ingest.WithDeliveryID(r.Context(), deliveryID)
	w.Header().Set("X-Delivery-Id", deliveryID)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxWebhookBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "payload too large")
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid payload format")
		return
	}

	res, err := handle(ctx, body)
	if err != nil {
		h.writeErr(w, err)
		return
	}
	if res.Pong {
		writeJSON(w, http.StatusOK, statusResponse{Status: "pong"})
		return
	}
	writeJSON(w, http.StatusOK, receivedResponse{Status: "ok", Received: res.Received})
}

func (h *ExplorerHandler) blocks(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	writeJSON(w, http.StatusOK, h.ingest.RecentBlocks())
}

func (h *ExplorerHandler) blockByID(w http.ResponseWriter, _ *http.Request, params map[string]string) {
	block, err := h.ingest.BlockByID(params["id"])
	if err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, block)
}

func (h *ExplorerHandler) transactions(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	writeJSON(w, http.StatusOK, h.ingest.RecentTransactions())
}

func (h *ExplorerHandler) transactionByHash(w http.ResponseWriter, _ *http.Request, params map[string]string) {
	tx, err := h.ingest.TransactionByHash(params["hash"])
	if err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

func (h *ExplorerHandler) blockByNumber(w http.ResponseWriter, r *http.Request, params map[string]string) {
	if h.upstream == nil {
		writeError(w, http.StatusServiceUnavailable, "upstream rpc is not configured")
		return
	}
	raw, err := h.upstream.BlockByNumber(r.Context(), params["number"])
	if err != nil {
		h.writeErr(w, err)
		return
	}
	writeRaw(w, raw)
}

func (h *ExplorerHandler) transactionReceipt(w http.ResponseWriter, r *http.Request, params map[string]string) {
	if h.upstream == nil {
		writeError(w, http.StatusServiceUnavailable, "upstream rpc is not configured")
		return
	}
	raw, err := h.upstream.TransactionReceipt(r.Context(), params["hash"])
	if err != nil {
		h.writeErr(w, err)
		return
	}
	writeRaw(w, raw)
}

func (h *ExplorerHandler) health(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

// writeErr maps domain errors to status codes.
func (h *ExplorerHandler) writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, stats.ErrInvalidArgument),
		errors.Is(err, ingest.ErrInvalidPayload),
		errors.Is(err, ingest.ErrInvalidBlockID),
		errors.Is(err, ethrpc.ErrInvalidNumber):
		writeError(w, http.StatusBadRequest, errorMessage(err))
	case errors.Is(err, ingest.ErrNotFound), errors.Is(err, ethrpc.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.logger.Error("request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, ingest.ErrInvalidPayload):
		return ingest.ErrInvalidPayload.Error()
	case errors.Is(err, ingest.ErrInvalidBlockID):
		return ingest.ErrInvalidBlockID.Error()
	default:
		return err.Error()
	}
}
