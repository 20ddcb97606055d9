package auth

import (
	"errors"
	"net/http"

	"giftingstudio_server/lib"
	"giftingstudio_server/structs"

	"github.com/MonkyMars/gecho"
)

// HandleRequestCode handles POST /auth/request-code. The response never
// reveals whether the identity maps to an existing account.
func (arm *AuthRoutesManager) HandleRequestCode(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.RequestCodeRequest](r)
	if err != nil {
		arm.logger.Warn("Failed to extract request body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("error.auth.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	if body.Email == "" && body.Phone == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("error.auth.identityRequired"),
			gecho.Send(),
		)
		return
	}

	if err := arm.authService.RequestCode(body); err != nil {
		arm.logger.Warn("Passcode request failed", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("error.auth.codeDeliveryFailed"),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.auth.codeSent"),
		gecho.Send(),
	)
}

// HandleVerifyCode handles POST /auth/verify and establishes the session
func (arm *AuthRoutesManager) HandleVerifyCode(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.VerifyCodeRequest](r)
	if err != nil {
		arm.logger.Warn("Failed to extract request body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("error.auth.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	resp, err := arm.authService.VerifyCode(body)
	if err != nil {
		switch {
		case errors.Is(err, lib.ErrTooManyTries):
			gecho.Forbidden(w,
				gecho.WithMessage("error.auth.tooManyAttempts"),
				gecho.Send(),
			)
		case errors.Is(err, lib.ErrCodeExpired):
			gecho.Unauthorized(w,
				gecho.WithMessage("error.auth.codeExpired"),
				gecho.Send(),
			)
		case errors.Is(err, lib.ErrInvalidCode):
			gecho.Unauthorized(w,
				gecho.WithMessage("error.auth.invalidCode"),
				gecho.Send(),
			)
		default:
			arm.logger.Error("Passcode verification failed", gecho.Field("error", err))
			gecho.InternalServerError(w,
				gecho.WithMessage("error.auth.verificationFailed"),
				gecho.Send(),
			)
		}
		return
	}

	lib.SetCookie(lib.RefreshCookieName, resp.RefreshToken, arm.authService.GetRefreshTokenExpiration(), w)
	lib.SetCookie(lib.AccessCookieName, resp.AccessToken, arm.authService.GetAccessTokenExpiration(), w)

	gecho.Success(w,
		gecho.WithMessage("success.auth.signedIn"),
		gecho.WithData(resp.User),
		gecho.Send(),
	)
}
