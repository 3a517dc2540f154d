package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/rookgm/phoenixbot/internal/logger"
	"github.com/rookgm/phoenixbot/internal/service"
	"go.uber.org/zap"
)

type StatsService interface {
	Stats(ctx context.Context) (*service.Stats, error)
}

// StatsHandler represents HTTP handler for statistics requests
type StatsHandler struct {
	svc StatsService
}

// NewStatsHandler creates new StatsHandler instance
func NewStatsHandler(svc StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

type statsResponse struct {
	Offerings   int            `json:"offerings"`
	Orders      int            `json:"orders"`
	ByCategory  map[string]int `json:"by_category"`
	GeneratedAt string         `json:"generated_at"`
}

// GetStats returns offering and order counts
// 200 - ok
// 500 - internal server error
func (sh *StatsHandler) GetStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := sh.svc.Stats(r.Context())
		if err != nil {
			logger.Log.Error("get stats", zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp := statsResponse{
			Offerings:   stats.Offerings,
			Orders:      stats.Orders,
			ByCategory:  make(map[string]int, len(stats.ByCategory)),
			GeneratedAt: stats.GeneratedAt.Format(time.RFC3339),
		}
		for _, c := range stats.ByCategory {
			resp.ByCategory[c.Category.Label] = c.Count
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// Health reports liveness
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
