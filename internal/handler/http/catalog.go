package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rookgm/phoenixbot/internal/logger"
	"github.com/rookgm/phoenixbot/internal/models"
	"go.uber.org/zap"
)

type CatalogService interface {
	// CategoryByKey maps category key to category
	CategoryByKey(key string) (models.Category, error)
	// GetOffering returns offering by id, (nil, nil) if absent
	GetOffering(ctx context.Context, id int64) (*models.Offering, error)
	// ListOfferingsByCategory returns offerings of category label
	ListOfferingsByCategory(ctx context.Context, label string) ([]models.Offering, error)
	// ListOfferings returns all offerings
	ListOfferings(ctx context.Context) ([]models.Offering, error)
}

// CatalogHandler represents HTTP handler for catalog read requests
type CatalogHandler struct {
	svc CatalogService
}

// NewCatalogHandler creates new CatalogHandler instance
func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

type offeringResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	CreatedAt   string `json:"created_at"`
}

func toOfferingResponse(o models.Offering) offeringResponse {
	return offeringResponse{
		ID:          o.ID,
		Name:        o.Name,
		Description: o.Description,
		Price:       o.Price,
		Category:    o.Category,
		CreatedAt:   o.CreatedAt.Format(time.RFC3339),
	}
}

// ListOfferings returns offerings, optionally of one category
// 200 - offerings found
// 204 - no offerings
// 400 - unknown category key
// 500 - internal server error
func (ch *CatalogHandler) ListOfferings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			offerings []models.Offering
			err       error
		)

		if key := r.URL.Query().Get("category"); key != "" {
			category, cerr := ch.svc.CategoryByKey(key)
			if cerr != nil {
				http.Error(w, "unknown category", http.StatusBadRequest)
				return
			}
			offerings, err = ch.svc.ListOfferingsByCategory(r.Context(), category.Label)
		} else {
			offerings, err = ch.svc.ListOfferings(r.Context())
		}
		if err != nil {
			logger.Log.Error("list offerings", zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if len(offerings) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		resp := make([]offeringResponse, 0, len(offerings))
		for _, o := range offerings {
			resp = append(resp, toOfferingResponse(o))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// GetOffering returns one offering
// 200 - offering found
// 400 - malformed id
// 404 - no such offering
// 500 - internal server error
func (ch *CatalogHandler) GetOffering() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		offering, err := ch.svc.GetOffering(r.Context(), id)
		if err != nil {
			logger.Log.Error("get offering", zap.Int64("offering_id", id), zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if offering == nil {
			http.Error(w, models.ErrOfferingNotFound.Error(), http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toOfferingResponse(*offering))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Debug("encode response", zap.Error(err))
	}
}
