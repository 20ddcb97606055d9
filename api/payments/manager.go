package payments

import (
	"giftingstudio_server/api/middleware"
	"giftingstudio_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type PaymentRoutesManager struct {
	logger         *gecho.Logger
	paymentService *services.PaymentService
	mw             *middleware.Middleware
}

func NewPaymentRoutesManager(logger *gecho.Logger, paymentService *services.PaymentService, mw *middleware.Middleware) *PaymentRoutesManager {
	return &PaymentRoutesManager{
		logger:         logger,
		paymentService: paymentService,
		mw:             mw,
	}
}

func (prm *PaymentRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/payments", func(r chi.Router) {
		r.Use(prm.mw.UserAuthMiddleware)
		r.Post("/orders", prm.CreatePaymentOrder)
		r.Post("/verify", prm.VerifyPayment)
	})
}
