package products

import (
	"giftingstudio_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ProductRoutesManager struct {
	logger         *gecho.Logger
	catalogService *services.CatalogService
	reviewService  *services.ReviewService
}

func NewProductRoutesManager(logger *gecho.Logger, catalogService *services.CatalogService, reviewService *services.ReviewService) *ProductRoutesManager {
	return &ProductRoutesManager{
		logger:         logger,
		catalogService: catalogService,
		reviewService:  reviewService,
	}
}

func (prm *ProductRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/products", prm.ListProducts)
	r.Get("/products/{id}", prm.GetProduct)
	r.Get("/products/{id}/reviews", prm.ListReviews)
	r.Get("/categories", prm.ListCategories)
}
