package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/ivmart/tracker-service/internal/auth"
	"github.com/ivmart/tracker-service/internal/config"
)

type contextKey string

const userIDKey contextKey = "userID"

const bearerPrefix = "Bearer "

// AuthMiddleware verifies the bearer token and places the caller's numeric
// user id in the request context. Requests without a valid token, or with a
// token missing the id claim, are rejected with 401.
func AuthMiddleware(cfg *config.Config) mux.MiddlewareFunc {
	secret := []byte(cfg.JWTSecret)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				unauthorized(w, "missing bearer token")
				return
			}

			claims, err := auth.ParseToken(strings.TrimPrefix(header, bearerPrefix), secret)
			if err != nil {
				unauthorized(w, "invalid or expired token")
				return
			}
			if claims.UserID == 0 {
				unauthorized(w, "user id not found in token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the caller id stored by AuthMiddleware. A missing
// id means the handler ran outside the middleware and is a fatal per-request
// error.
func UserIDFromContext(ctx context.Context) (int64, error) {
	id, ok := ctx.Value(userIDKey).(int64)
	if !ok || id == 0 {
		return 0, errors.New("user id not found in request context")
	}
	return id, nil
}

// WithUserID returns a context carrying the caller id, for tests and internal
// callers.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
