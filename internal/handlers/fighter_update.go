package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/temmu/temmu-api/internal/logger"
	"github.com/temmu/temmu-api/internal/models"
	"github.com/temmu/temmu-api/internal/services"
)

//go:generate mockgen -source=fighter_update.go -destination=mock_fighter_update.go -package=handlers

// FighterUpdater defines the interface that the service must implement.
type FighterUpdater interface {
	Update(ctx context.Context, id int64, req models.FighterWriteRequest) error
}

// NewUpdateFighterHandler returns an HTTP handler updating a fighter.
// @Summary Update fighter
// @Description Overwrites the provided fields of the fighter. The id in the path always wins over the body.
// @Tags fighters
// @Accept json
// @Security BearerAuth
// @Param id path int true "Fighter id"
// @Param fighter body models.FighterWriteRequest true "Fighter fields"
// @Success 204 "Updated"
// @Failure 400 {object} models.ValidationErrorResponse "Validation failed"
// @Failure 401 "Unauthorized"
// @Failure 404 "Fighter not found"
// @Failure 500 "Internal server error"
// @Router /api/fighters/{id} [put]
func NewUpdateFighterHandler(svc FighterUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := fighterIDParam(w, r)
		if !ok {
			return
		}

		req, ok := decodeFighterRequest(w, r)
		if !ok {
			return
		}

		err := svc.Update(r.Context(), id, req)
		switch {
		case err == nil:
			w.WriteHeader(http.StatusNoContent)
		case errors.Is(err, services.ErrFighterNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			logger.FromContext(r.Context()).Errorw("failed to update fighter", "id", id, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
		}
	}
}
