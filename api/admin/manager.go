package admin

import (
	"giftingstudio_server/api/middleware"
	"giftingstudio_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AdminRoutesManager struct {
	logger         *gecho.Logger
	catalogService *services.CatalogService
	orderService   *services.OrderService
	storageService *services.StorageService
	mw             *middleware.Middleware
}

func NewAdminRoutesManager(
	logger *gecho.Logger,
	catalogService *services.CatalogService,
	orderService *services.OrderService,
	storageService *services.StorageService,
	mw *middleware.Middleware,
) *AdminRoutesManager {
	return &AdminRoutesManager{
		logger:         logger,
		catalogService: catalogService,
		orderService:   orderService,
		storageService: storageService,
		mw:             mw,
	}
}

func (arm *AdminRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(arm.mw.UserAuthMiddleware)
		r.Use(arm.mw.AdminAuthMiddleware)

		// Catalog management
		r.Post("/products", arm.CreateProduct)
		r.Patch("/products/{id}", arm.UpdateProduct)
		r.Delete("/products/{id}", arm.DeleteProduct)
		r.Post("/products/{id}/stock", arm.AdjustStock)
		r.Post("/products/images", arm.UploadProductImage)
		r.Get("/inventory/low-stock", arm.ListLowStock)

		// Taxonomy management
		r.Post("/categories", arm.CreateCategory)
		r.Post("/categories/{id}/subcategories", arm.CreateSubcategory)
		r.Delete("/categories/{id}", arm.DeleteCategory)

		// Order management
		r.Get("/orders", arm.ListOrders)
		r.Patch("/orders/{id}/status", arm.UpdateOrderStatus)
	})
}
