package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivmart/tracker-service/internal/auth"
	"github.com/ivmart/tracker-service/internal/config"
	"github.com/ivmart/tracker-service/internal/models"
)

func newRouter(t *testing.T, cfg *config.Config) (*mux.Router, *int64) {
	t.Helper()
	var seen int64
	r := mux.NewRouter()
	r.Use(AuthMiddleware(cfg))
	r.HandleFunc("/protected", func(w http.ResponseWriter, r *http.Request) {
		id, err := UserIDFromContext(r.Context())
		require.NoError(t, err)
		seen = id
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")
	return r, &seen
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	r, _ := newRouter(t, cfg)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/protected", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"missing bearer token"}`, rec.Body.String())
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	r, _ := newRouter(t, cfg)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MissingIDClaim(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	token, err := auth.GenerateToken(&models.User{ID: 0, Username: "ghost"}, []byte(cfg.JWTSecret), time.Hour)
	require.NoError(t, err)

	r, _ := newRouter(t, cfg)
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"user id not found in token"}`, rec.Body.String())
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	token, err := auth.GenerateToken(&models.User{ID: 42, Username: "alice"}, []byte(cfg.JWTSecret), time.Hour)
	require.NoError(t, err)

	r, seen := newRouter(t, cfg)
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), *seen)
}

func TestUserIDFromContext_Missing(t *testing.T) {
	_, err := UserIDFromContext(httptest.NewRequest("GET", "/", nil).Context())
	assert.Error(t, err)
}
