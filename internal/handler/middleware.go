package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"

	"github.com/fitsched/booking-platform/internal/model"
	"github.com/fitsched/booking-platform/internal/repository"
)

type ctxKey int

const (
	tenantKey ctxKey = iota + 1
	sessionEmailKey
)

// TenantFromContext returns the tenant resolved for the current request.
func TenantFromContext(ctx context.Context) (*model.Tenant, bool) {
	t, ok := ctx.Value(tenantKey).(*model.Tenant)
	return t, ok
}

// SessionEmail returns the authenticated caller's email, if any.
func SessionEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(sessionEmailKey).(string)
	return email, ok
}

// ResolveTenant loads the caller's tenant from the X-Tenant-Slug header
// and stores it in the request context. Every API route runs behind it.
func ResolveTenant(tenants repository.TenantRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slug := strings.TrimSpace(r.Header.Get("X-Tenant-Slug"))
			if slug == "" {
				writeError(w, http.StatusBadRequest, "missing X-Tenant-Slug header")
				return
			}

			tenant, err := tenants.GetBySlug(r.Context(), slug)
			if err != nil {
				writeError(w, http.StatusNotFound, "unknown tenant")
				return
			}

			ctx := context.WithValue(r.Context(), tenantKey, tenant)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Session extracts an optional bearer token and, when it verifies, puts
// the caller's email in the context. A missing or invalid token means
// "no session", never a request failure.
func Session(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authStr := r.Header.Get("Authorization")
			parts := strings.SplitN(authStr, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || secret == "" {
				next.ServeHTTP(w, r)
				return
			}

			var claims sessionClaims
			token, err := jwt.ParseWithClaims(parts[1], &claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid || claims.Email == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), sessionEmailKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestLogger logs one line per request with status and duration.
func RequestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
			)
		})
	}
}
