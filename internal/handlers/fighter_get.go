package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/temmu/temmu-api/internal/logger"
	"github.com/temmu/temmu-api/internal/models"
	"github.com/temmu/temmu-api/internal/services"
)

//go:generate mockgen -source=fighter_get.go -destination=mock_fighter_get.go -package=handlers

// FighterGetter defines the interface that the service must implement.
type FighterGetter interface {
	Get(ctx context.Context, id int64) (*models.FighterRead, error)
}

// NewGetFighterHandler returns an HTTP handler fetching one fighter by id.
// @Summary Get fighter
// @Description Returns the fighter with the given id
// @Tags fighters
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fighter id"
// @Success 200 {object} models.FighterRead "Fighter"
// @Failure 400 {object} models.ValidationErrorResponse "Invalid id"
// @Failure 401 "Unauthorized"
// @Failure 404 "Fighter not found"
// @Failure 500 "Internal server error"
// @Router /api/fighters/{id} [get]
func NewGetFighterHandler(svc FighterGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := fighterIDParam(w, r)
		if !ok {
			return
		}

		fighter, err := svc.Get(r.Context(), id)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, fighter)
		case errors.Is(err, services.ErrFighterNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			logger.FromContext(r.Context()).Errorw("failed to get fighter", "id", id, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
		}
	}
}
