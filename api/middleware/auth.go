package middleware

import (
	"context"
	"net/http"

	"giftingstudio_server/lib"
	"giftingstudio_server/structs"
	"giftingstudio_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

// Context keys for storing user data in request context
type contextKey string

const (
	UserContextKey   contextKey = "user"
	ClaimsContextKey contextKey = "claims"
)

// UserAuthMiddleware protects routes to only logged-in users
func (mw *Middleware) UserAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := lib.ExtractClaims(r, mw.cfg.Auth.AccessTokenSecret)
		if err != nil {
			mw.logger.Warn("Failed to extract claims from request", gecho.Field("error", err))
			gecho.Unauthorized(w, gecho.WithMessage("error.auth.invalidOrMissingAccessToken"), gecho.Send())
			return
		}

		// Revoked tokens are rejected even before they expire
		if blacklisted, err := mw.cacheService.IsTokenBlacklisted(claims.Jti); err == nil && blacklisted {
			mw.logger.Warn("Blacklisted token used", gecho.Field("jti", claims.Jti), gecho.Field("user_id", claims.Sub))
			gecho.Unauthorized(w, gecho.WithMessage("error.auth.tokenRevoked"), gecho.Send())
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminAuthMiddleware protects routes to only admin users
func (mw *Middleware) AdminAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := lib.ExtractClaims(r, mw.cfg.Auth.AccessTokenSecret)
		if err != nil {
			mw.logger.Warn("Failed to extract claims from request", gecho.Field("error", err))
			gecho.Forbidden(w, gecho.WithMessage("error.auth.accessDenied"), gecho.Send())
			return
		}

		if claims.Role != tables.RoleAdmin {
			mw.logger.Warn("Non-admin user attempted to access admin route", gecho.Field("user_id", claims.Sub), gecho.Field("role", claims.Role))
			gecho.Forbidden(w, gecho.WithMessage("error.auth.adminAccessRequired"), gecho.Send())
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserFromContext is a helper function to extract the user from request context
func GetUserFromContext(ctx context.Context) (*tables.User, bool) {
	user, ok := ctx.Value(UserContextKey).(*tables.User)
	return user, ok
}

// GetClaimsFromContext is a helper function to extract the claims from request context
func GetClaimsFromContext(ctx context.Context) (*structs.AuthClaims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*structs.AuthClaims)
	return claims, ok
}
