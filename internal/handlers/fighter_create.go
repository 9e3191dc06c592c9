package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/temmu/temmu-api/internal/logger"
	"github.com/temmu/temmu-api/internal/models"
)

//go:generate mockgen -source=fighter_create.go -destination=mock_fighter_create.go -package=handlers

// FighterCreator defines the interface that the service must implement.
type FighterCreator interface {
	Create(ctx context.Context, req models.FighterWriteRequest) (*models.FighterRead, error)
}

// NewCreateFighterHandler returns an HTTP handler creating a fighter.
// @Summary Create fighter
// @Description Creates a fighter. healthBase defaults to 1000 when omitted.
// @Tags fighters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param fighter body models.FighterWriteRequest true "Fighter to create"
// @Success 201 {object} models.FighterRead "Created fighter"
// @Header 201 {string} Location "/api/fighters/{id}"
// @Failure 400 {object} models.ValidationErrorResponse "Validation failed"
// @Failure 401 "Unauthorized"
// @Failure 500 "Internal server error"
// @Router /api/fighters [post]
func NewCreateFighterHandler(svc FighterCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeFighterRequest(w, r)
		if !ok {
			return
		}

		fighter, err := svc.Create(r.Context(), req)
		if err != nil {
			logger.FromContext(r.Context()).Errorw("failed to create fighter", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Set("Location", fmt.Sprintf("/api/fighters/%d", fighter.ID))
		writeJSON(w, http.StatusCreated, fighter)
	}
}
