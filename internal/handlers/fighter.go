package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/temmu/temmu-api/internal/logger"
	"github.com/temmu/temmu-api/internal/models"
)

// fighterIDParam reads the {id} route segment. It writes the 400 response itself
// and returns false when the segment is not an integer.
func fighterIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.FromContext(r.Context()).Warnw("invalid fighter id", "id", raw, "error", err)
		writeValidationError(w, map[string][]string{
			"id": {fmt.Sprintf("The value '%s' is not valid.", raw)},
		})
		return 0, false
	}
	return id, true
}

// decodeFighterRequest decodes and validates a create or update body. It writes the
// 400 response itself and returns false on failure.
func decodeFighterRequest(w http.ResponseWriter, r *http.Request) (models.FighterWriteRequest, bool) {
	log := logger.FromContext(r.Context())

	var req models.FighterWriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warnw("failed to decode fighter request", "error", err)
		writeValidationError(w, map[string][]string{
			"body": {"The request body is not valid JSON."},
		})
		return req, false
	}

	if errs := validateStruct(req); errs != nil {
		log.Warnw("invalid fighter request", "errors", errs)
		writeValidationError(w, errs)
		return req, false
	}

	return req, true
}
