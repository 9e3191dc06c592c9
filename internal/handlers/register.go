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

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password string) error
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Username and email must be unique and the password must satisfy the password policy. No token is issued.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "User registration request"
// @Success 200 {object} models.AuthResponse "User successfully registered"
// @Failure 400 {object} models.AuthResponse "Invalid registration data / registration failed"
// @Failure 500 {object} models.AuthResponse "Internal server error"
// @Router /api/auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req models.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warnw("failed to decode register request", "error", err)
			writeJSON(w, http.StatusBadRequest, models.AuthResponse{
				ErrorMessage: "Invalid registration data.",
				Errors:       map[string][]string{"body": {"The request body is not valid JSON."}},
			})
			return
		}

		if errs := validateStruct(req); errs != nil {
			log.Warnw("invalid register request", "errors", errs)
			writeJSON(w, http.StatusBadRequest, models.AuthResponse{
				ErrorMessage: "Invalid registration data.",
				Errors:       errs,
			})
			return
		}

		err := svc.Register(r.Context(), req.Username, req.Email, req.Password)

		var regErr *services.RegistrationError
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, models.AuthResponse{IsSuccess: true})
		case errors.As(err, &regErr):
			writeJSON(w, http.StatusBadRequest, models.AuthResponse{
				ErrorMessage: "Registration failed: " + regErr.Error(),
			})
		default:
			log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, models.AuthResponse{
				ErrorMessage: "Internal server error",
			})
		}
	}
}
