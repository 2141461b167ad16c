package http

import (
	"context"
	"net"
	"net/http"

	"github.com/stockpile-io/stockpile/internal/auth"
	rl "github.com/stockpile-io/stockpile/internal/http/rate_limiter"
)

type contextKey string

const (
	userIDKey = contextKey("user_id")
	emailKey  = contextKey("email")
	roleKey   = contextKey("role")
)

// AuthMiddleware resolves the bearer token into the request's session
// identity. There is no process-wide current user; identity travels on the
// request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := auth.TokenClaims(r.Header.Get("Authorization"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		if sub, ok := claims["sub"].(string); ok {
			ctx = context.WithValue(ctx, userIDKey, sub)
		}
		if email, ok := claims["email"].(string); ok {
			ctx = context.WithValue(ctx, emailKey, email)
		}
		if role, ok := claims["role"].(string); ok {
			ctx = context.WithValue(ctx, roleKey, role)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a route group on the session role. The gate lives here,
// in the calling layer; the repositories do not re-check it.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if GetRole(r) != role {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitMiddleware applies a per-IP token bucket, used on the auth routes.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !rl.GetVisitor(ip).Allow() {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetUserID(r *http.Request) string {
	if val, ok := r.Context().Value(userIDKey).(string); ok {
		return val
	}
	return ""
}

func GetEmail(r *http.Request) string {
	if val, ok := r.Context().Value(emailKey).(string); ok {
		return val
	}
	return ""
}

func GetRole(r *http.Request) string {
	if val, ok := r.Context().Value(roleKey).(string); ok {
		return val
	}
	return ""
}
