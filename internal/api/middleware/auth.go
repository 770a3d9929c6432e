package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/api/handlers"
)

type ctxKey struct{}

var userIDKey ctxKey

// Auth requires a numeric X-User-ID header on protected routes and makes
// it available through UserIDFromContext. Authentication itself happens
// at the edge; this service only needs the authenticated identity.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-User-ID")
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "missing X-User-ID header")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "invalid X-User-ID header")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}

// UserIDFromContext returns the authenticated user ID set by Auth.
func UserIDFromContext(ctx context.Context) int64 {
	id, _ := ctx.Value(userIDKey).(int64)
	return id
}
