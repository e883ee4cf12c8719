package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/boddenberg/casa-cashflow-go/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type contextKey string

const (
	memberIDKey    contextKey = "memberID"
	householdIDKey contextKey = "householdID"
)

// JWTAuthMiddleware validates Bearer tokens and injects the member and
// household IDs into the request context.
func JWTAuthMiddleware(authSvc *service.AuthService, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("auth: missing token",
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
				)
				writeError(w, http.StatusUnauthorized, "missing authentication token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Warn("auth: invalid token format",
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
				)
				writeError(w, http.StatusUnauthorized, "invalid token format")
				return
			}

			claims, err := authSvc.ValidateAccessToken(parts[1])
			if err != nil {
				logger.Warn("auth: invalid or expired token",
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
					zap.Error(err),
				)
				writeError(w, http.StatusUnauthorized, err.Error())
				return
			}

			ctx := context.WithValue(r.Context(), memberIDKey, claims.Subject)
			ctx = context.WithValue(ctx, householdIDKey, claims.HouseholdID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// HouseholdScopeMiddleware rejects requests whose {householdId} path param
// does not match the household in the token. A member only ever sees their
// own household's data.
func HouseholdScopeMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pathHousehold := chi.URLParam(r, "householdId")
			tokenHousehold := HouseholdIDFromContext(r.Context())
			if pathHousehold == "" || pathHousehold != tokenHousehold {
				logger.Warn("household scope mismatch",
					zap.String("path_household", pathHousehold),
					zap.String("token_household", tokenHousehold),
				)
				writeError(w, http.StatusForbidden, "household does not match credentials")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// MemberIDFromContext extracts the authenticated member ID from context.
func MemberIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(memberIDKey).(string)
	return v
}

// HouseholdIDFromContext extracts the authenticated household ID from context.
func HouseholdIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(householdIDKey).(string)
	return v
}
