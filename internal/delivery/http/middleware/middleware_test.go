package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"doctor-profile-service/config"
	"doctor-profile-service/internal/delivery/http/middleware"
	"doctor-profile-service/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func TestAuthMiddleware_Authenticate(t *testing.T) {
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "secret", AccessExpiry: time.Minute})
	auth := middleware.NewAuthMiddleware(jwtService)

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Token abc")
		rr := httptest.NewRecorder()

		auth.Authenticate(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("stores claims in context", func(t *testing.T) {
		token, err := jwtService.GenerateAccessToken("admin-1", "admin@example.com", middleware.RoleAdmin)
		require.NoError(t, err)

		var actorID, role string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actorID, _ = middleware.GetActorIDFromContext(r.Context())
			role, _ = middleware.GetRoleFromContext(r.Context())
			w.WriteHeader(http.StatusNoContent)
		})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		auth.Authenticate(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, "admin-1", actorID)
		assert.Equal(t, middleware.RoleAdmin, role)
	})
}

func TestRequireRole(t *testing.T) {
	withRole := func(role string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		return req.WithContext(context.WithValue(req.Context(), middleware.RoleKey, role))
	}

	tests := []struct {
		name string
		req  *http.Request
		want int
	}{
		{"admin", withRole("ADMIN"), http.StatusNoContent},
		{"admin lower case", withRole("admin"), http.StatusNoContent},
		{"doctor", withRole("DOCTOR"), http.StatusForbidden},
		{"no role", httptest.NewRequest(http.MethodGet, "/", nil), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			middleware.RequireAdmin(okHandler).ServeHTTP(rr, tt.req)
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/doctor", nil)

	middleware.NewCORSMiddleware("").Handle(okHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
