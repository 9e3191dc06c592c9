package middlewares

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/temmu/temmu-api/internal/logger"
	"github.com/temmu/temmu-api/internal/uow"
)

// TxMiddleware opens a unit of work for the request. Handlers commit it through the
// repositories; whatever is left uncommitted when the handler returns is rolled back.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, err := uow.Begin(r.Context(), db)
			if err != nil {
				logger.FromContext(r.Context()).Errorw("failed to begin transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					u.Rollback()
					panic(rec)
				}
			}()

			next.ServeHTTP(w, r.WithContext(uow.NewContext(r.Context(), u)))

			if !u.Active() {
				return
			}
			if err := u.Rollback(); err != nil {
				logger.FromContext(r.Context()).Errorw("failed to roll back transaction", "error", err)
			}
		})
	}
}
