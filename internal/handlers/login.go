package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/temmu/temmu-api/internal/logger"
	"github.com/temmu/temmu-api/internal/models"
	"github.com/temmu/temmu-api/internal/services"
)

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

// Loginer defines the interface that the service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Log in
// @Description Authenticates by email and password and returns a bearer token valid for 7 days.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "User login request"
// @Success 200 {object} models.AuthResponse "Token issued"
// @Failure 400 {object} models.AuthResponse "Invalid login data"
// @Failure 401 {object} models.AuthResponse "Invalid credentials"
// @Failure 500 {object} models.AuthResponse "Internal server error"
// @Router /api/auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warnw("failed to decode login request", "error", err)
			writeJSON(w, http.StatusBadRequest, models.AuthResponse{
				ErrorMessage: "Invalid login data.",
				Errors:       map[string][]string{"body": {"The request body is not valid JSON."}},
			})
			return
		}

		if errs := validateStruct(req); errs != nil {
			log.Warnw("invalid login request", "errors", errs)
			writeJSON(w, http.StatusBadRequest, models.AuthResponse{
				ErrorMessage: "Invalid login data.",
				Errors:       errs,
			})
			return
		}

		token, err := svc.Login(r.Context(), req.Email, req.Password)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, models.AuthResponse{IsSuccess: true, Token: token})
		case errors.Is(err, services.ErrInvalidCredentials):
			writeJSON(w, http.StatusUnauthorized, models.AuthResponse{
				ErrorMessage: "Invalid credentials.",
			})
		default:
			log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, models.AuthResponse{
				ErrorMessage: "Internal server error",
			})
		}
	}
}
