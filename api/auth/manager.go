package auth

import (
	"giftingstudio_server/api/middleware"
	"giftingstudio_server/services"
	"giftingstudio_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AuthRoutesManager struct {
	logger      *gecho.Logger
	authService *services.AuthService
	cfg         *structs.Config
	mw          *middleware.Middleware
}

func NewAuthRoutesManager(
	logger *gecho.Logger,
	authService *services.AuthService,
	cfg *structs.Config,
	mw *middleware.Middleware,
) *AuthRoutesManager {
	return &AuthRoutesManager{
		logger:      logger,
		authService: authService,
		cfg:         cfg,
		mw:          mw,
	}
}

func (arm *AuthRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		// OTP requests send outbound email, so this one fails closed when
		// the limiter's backing store is down
		r.Group(func(r chi.Router) {
			r.Use(arm.mw.StrictRateLimitMiddleware(arm.cfg.RateLimit.AuthLimit, arm.cfg.RateLimit.AuthWindow))
			r.Post("/request-code", arm.HandleRequestCode)
		})

		r.Post("/verify", arm.HandleVerifyCode)
		r.Post("/refresh", arm.HandleRefresh)
		r.Post("/logout", arm.HandleLogout)

		r.Group(func(r chi.Router) {
			r.Use(arm.mw.UserAuthMiddleware)
			r.Get("/me", arm.HandleMe)
		})
	})
}
