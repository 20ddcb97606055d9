package auth

import (
	"errors"
	"net/http"

	"giftingstudio_server/api/middleware"
	"giftingstudio_server/lib"
	"giftingstudio_server/structs"

	"github.com/MonkyMars/gecho"
)

// HandleRefresh handles POST /auth/refresh by rotating both tokens
func (arm *AuthRoutesManager) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	refreshToken, err := lib.GetCookieValue(lib.RefreshCookieName, r)
	if err != nil {
		gecho.Unauthorized(w,
			gecho.WithMessage("error.auth.missingRefreshToken"),
			gecho.Send(),
		)
		return
	}

	resp, err := arm.authService.RefreshAccessToken(refreshToken)
	if err != nil {
		if errors.Is(err, lib.ErrInvalidToken) || errors.Is(err, lib.ErrExpiredToken) {
			lib.ClearCookie(lib.AccessCookieName, w)
			lib.ClearCookie(lib.RefreshCookieName, w)
			gecho.Unauthorized(w,
				gecho.WithMessage("error.auth.invalidRefreshToken"),
				gecho.Send(),
			)
			return
		}

		arm.logger.Error("Token refresh failed", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.auth.refreshFailed"),
			gecho.Send(),
		)
		return
	}

	lib.SetCookie(lib.RefreshCookieName, resp.RefreshToken, arm.authService.GetRefreshTokenExpiration(), w)
	lib.SetCookie(lib.AccessCookieName, resp.AccessToken, arm.authService.GetAccessTokenExpiration(), w)

	gecho.Success(w,
		gecho.WithMessage("success.auth.refreshed"),
		gecho.WithData(resp.User),
		gecho.Send(),
	)
}

// HandleLogout handles POST /auth/logout. Missing or malformed cookies
// still log the client out; there is nothing to revoke.
func (arm *AuthRoutesManager) HandleLogout(w http.ResponseWriter, r *http.Request) {
	accessClaims := arm.claimsFromCookie(r, lib.AccessCookieName, arm.cfg.Auth.AccessTokenSecret)
	refreshClaims := arm.claimsFromCookie(r, lib.RefreshCookieName, arm.cfg.Auth.RefreshTokenSecret)

	if accessClaims != nil || refreshClaims != nil {
		if err := arm.authService.Logout(accessClaims, refreshClaims); err != nil {
			arm.logger.Error("Failed to revoke tokens during logout", gecho.Field("error", err))
			gecho.InternalServerError(w,
				gecho.WithMessage("error.auth.logoutFailed"),
				gecho.Send(),
			)
			return
		}
	}

	lib.ClearCookie(lib.AccessCookieName, w)
	lib.ClearCookie(lib.RefreshCookieName, w)

	gecho.Success(w,
		gecho.WithMessage("success.auth.loggedOut"),
		gecho.Send(),
	)
}

func (arm *AuthRoutesManager) claimsFromCookie(r *http.Request, cookieName, secret string) *structs.AuthClaims {
	token, err := lib.GetCookieValue(cookieName, r)
	if err != nil {
		return nil
	}

	claims, err := lib.ParseToken(token, secret)
	if err != nil {
		arm.logger.Debug("Unparseable token during logout", gecho.Field("cookie", cookieName), gecho.Field("error", err))
		return nil
	}

	return claims
}

// HandleMe handles GET /auth/me for the authenticated user
func (arm *AuthRoutesManager) HandleMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w,
			gecho.WithMessage("error.auth.invalidOrMissingAccessToken"),
			gecho.Send(),
		)
		return
	}

	user, err := arm.authService.GetUserByID(claims.Sub)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.auth.userNotFound"),
				gecho.Send(),
			)
			return
		}

		arm.logger.Error("Failed to load user", gecho.Field("error", err), gecho.Field("user_id", claims.Sub))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.auth.failedToLoadUser"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(user),
		gecho.Send(),
	)
}
