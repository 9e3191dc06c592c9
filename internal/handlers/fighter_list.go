package handlers

import (
	"context"
	"net/http"

	"github.com/temmu/temmu-api/internal/logger"
	"github.com/temmu/temmu-api/internal/models"
)

//go:generate mockgen -source=fighter_list.go -destination=mock_fighter_list.go -package=handlers

// FighterLister defines the interface that the service must implement.
type FighterLister interface {
	List(ctx context.Context) ([]models.FighterRead, error)
}

// NewListFightersHandler returns an HTTP handler listing all fighters.
// @Summary List fighters
// @Description Returns every fighter with its derived win rate
// @Tags fighters
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.FighterRead "Fighters"
// @Failure 401 "Unauthorized"
// @Failure 500 "Internal server error"
// @Router /api/fighters [get]
func NewListFightersHandler(svc FighterLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fighters, err := svc.List(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Errorw("failed to list fighters", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, fighters)
	}
}
