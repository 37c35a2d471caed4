package transport

import (
	"net/http"

	"github.com/goodnatureofminers/blockpulse-backend/internal/model"
	"github.com/goodnatureofminers/blockpulse-backend/internal/stats"
)

func (h *ExplorerHandler) uptime(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	seconds := int64(h.now().Sub(h.started).Seconds())
	writeJSON(w, http.StatusOK, map[string]int64{"uptimeSeconds": seconds})
}

func (h *ExplorerHandler) tps(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	h.writeRate(w, "tps", func() (float64, error) {
		return h.stats.ThroughputPerSecond(stats.DefaultWindowSeconds)
	})
}

func (h *ExplorerHandler) blocksPerMinute(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	h.writeRate(w, "blocksPerMinute", func() (float64, error) {
		return h.stats.BlocksPerMinute(stats.DefaultWindowSeconds)
	})
}

func (h *ExplorerHandler) blocksPer24h(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	h.writeRate(w, "blocksPer24hrs", h.stats.BlocksPer24h)
}

func (h *ExplorerHandler) topSenders(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	h.writeRanking(w, "topSenders", func() ([]model.AddressCount, error) {
		return h.stats.TopSenders(stats.DefaultWindowSeconds, stats.DefaultTopN)
	})
}

func (h *ExplorerHandler) topContracts(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	h.writeRanking(w, "topContracts", func() ([]model.AddressCount, error) {
		return h.stats.TopRecipients(stats.DefaultWindowSeconds, stats.DefaultTopN)
	})
}

func (h *ExplorerHandler) topSenders24h(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	h.writeRanking(w, "topSenders24hrs", func() ([]model.AddressCount, error) {
		return h.stats.TopSenders24h(stats.DefaultTopN)
	})
}

func (h *ExplorerHandler) topContracts24h(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	h.writeRanking(w, "topContracts24hrs", func() ([]model.AddressCount, error) {
		return h.stats.TopRecipients24h(stats.DefaultTopN)
	})
}

func (h *ExplorerHandler) tpsHistory(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	writeJSON(w, http.StatusOK, h.stats.TPSHistory())
}

func (h *ExplorerHandler) blocksHistory(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	writeJSON(w, http.StatusOK, h.stats.BlocksHistory())
}

func (h *ExplorerHandler) writeRate(w http.ResponseWriter, key string, query func() (float64, error)) {
	v, err := query()
	if err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{key: v})
}

func (h *ExplorerHandler) writeRanking(w http.ResponseWriter, key string, query func() ([]model.AddressCount, error)) {
	v, err := query()
	if err != nil {
		h.writeErr(w, err)
		return
	}
	if v == nil {
		v = []model.AddressCount{}
	}
	writeJSON(w, http.StatusOK, map[string][]model.AddressCount{key: v})
}
