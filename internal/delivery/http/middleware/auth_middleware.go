package middleware

import (
	"context"
	"net/http"
	"strings"

	"doctor-profile-service/pkg/jwt"
	"doctor-profile-service/pkg/response"
)

type contextKey string

const (
	ActorIDKey    contextKey = "actor_id"
	ActorEmailKey contextKey = "actor_email"
	RoleKey       contextKey = "role"
)

type AuthMiddleware struct {
	jwtService *jwt.JWTService
}

func NewAuthMiddleware(jwtService *jwt.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), ActorIDKey, claims.UserID)
		ctx = context.WithValue(ctx, ActorEmailKey, claims.Email)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetActorIDFromContext extracts the authenticated user's ID from context
func GetActorIDFromContext(ctx context.Context) (string, bool) {
	actorID, ok := ctx.Value(ActorIDKey).(string)
	return actorID, ok
}

// GetRoleFromContext extracts role from context
func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok
}
