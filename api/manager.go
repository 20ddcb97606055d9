package api

import (
	"giftingstudio_server/api/admin"
	"giftingstudio_server/api/auth"
	"giftingstudio_server/api/cart"
	"giftingstudio_server/api/debug"
	"giftingstudio_server/api/health"
	"giftingstudio_server/api/middleware"
	"giftingstudio_server/api/orders"
	"giftingstudio_server/api/payments"
	"giftingstudio_server/api/products"
	"giftingstudio_server/api/reviews"
	"giftingstudio_server/services"
	"giftingstudio_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	productRoutes *products.ProductRoutesManager
	cartRoutes    *cart.CartRoutesManager
	orderRoutes   *orders.OrderRoutesManager
	paymentRoutes *payments.PaymentRoutesManager
	reviewRoutes  *reviews.ReviewRoutesManager
	authRoutes    *auth.AuthRoutesManager
	adminRoutes   *admin.AdminRoutesManager
	healthRoutes  *health.HealthRoutesManager
	debugRoutes   *debug.DebugRoutesManager
}

func NewRouterManager(logger *gecho.Logger, cfg *structs.Config, sm *services.ServiceManager, mw *middleware.Middleware) *routerManager {
	return &routerManager{
		productRoutes: products.NewProductRoutesManager(logger, sm.CatalogService, sm.ReviewService),
		cartRoutes:    cart.NewCartRoutesManager(logger, sm.CartService, mw),
		orderRoutes:   orders.NewOrderRoutesManager(logger, sm.OrderService, sm.AuthService, mw),
		paymentRoutes: payments.NewPaymentRoutesManager(logger, sm.PaymentService, mw),
		reviewRoutes:  reviews.NewReviewRoutesManager(logger, sm.ReviewService, mw),
		authRoutes:    auth.NewAuthRoutesManager(logger, sm.AuthService, cfg, mw),
		adminRoutes:   admin.NewAdminRoutesManager(logger, sm.CatalogService, sm.OrderService, sm.StorageService, mw),
		healthRoutes:  health.NewHealthRoutesManager(sm.HealthService),
		debugRoutes:   debug.NewDebugRoutesManager(sm.CacheService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.productRoutes.RegisterRoutes(r)
	rm.cartRoutes.RegisterRoutes(r)
	rm.orderRoutes.RegisterRoutes(r)
	rm.paymentRoutes.RegisterRoutes(r)
	rm.reviewRoutes.RegisterRoutes(r)
	rm.authRoutes.RegisterRoutes(r)
	rm.adminRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
	rm.debugRoutes.RegisterRoutes(r)
}
