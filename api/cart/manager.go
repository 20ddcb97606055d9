package cart

import (
	"giftingstudio_server/api/middleware"
	"giftingstudio_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type CartRoutesManager struct {
	logger      *gecho.Logger
	cartService *services.CartService
	mw          *middleware.Middleware
}

func NewCartRoutesManager(logger *gecho.Logger, cartService *services.CartService, mw *middleware.Middleware) *CartRoutesManager {
	return &CartRoutesManager{
		logger:      logger,
		cartService: cartService,
		mw:          mw,
	}
}

func (crm *CartRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/cart", func(r chi.Router) {
		r.Use(crm.mw.UserAuthMiddleware)
		r.Get("/", crm.GetCart)
		r.Post("/", crm.AddToCart)
		r.Patch("/{id}", crm.UpdateQuantity)
		r.Delete("/{id}", crm.RemoveFromCart)
		r.Delete("/", crm.ClearCart)
	})

	r.Route("/wishlist", func(r chi.Router) {
		r.Use(crm.mw.UserAuthMiddleware)
		r.Get("/", crm.GetWishlist)
		r.Post("/", crm.AddToWishlist)
		r.Delete("/{productId}", crm.RemoveFromWishlist)
		r.Get("/{productId}", crm.CheckWishlist)
	})
}
