package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/temmu/temmu-api/internal/logger"
	"github.com/temmu/temmu-api/internal/services"
)

//go:generate mockgen -source=fighter_delete.go -destination=mock_fighter_delete.go -package=handlers

// FighterDeleter defines the interface that the service must implement.
type FighterDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// NewDeleteFighterHandler returns an HTTP handler deleting a fighter.
// @Summary Delete fighter
// @Tags fighters
// @Security BearerAuth
// @Param id path int true "Fighter id"
// @Success 204 "Deleted"
// @Failure 400 {object} models.ValidationErrorResponse "Invalid id"
// @Failure 401 "Unauthorized"
// @Failure 404 "Fighter not found"
// @Failure 500 "Internal server error"
// @Router /api/fighters/{id} [delete]
func NewDeleteFighterHandler(svc FighterDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := fighterIDParam(w, r)
		if !ok {
			return
		}

		err := svc.Delete(r.Context(), id)
		switch {
		case err == nil:
			w.WriteHeader(http.StatusNoContent)
		case errors.Is(err, services.ErrFighterNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			logger.FromContext(r.Context()).Errorw("failed to delete fighter", "id", id, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
		}
	}
}
