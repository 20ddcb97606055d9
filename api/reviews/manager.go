package reviews

import (
	"giftingstudio_server/api/middleware"
	"giftingstudio_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ReviewRoutesManager struct {
	logger        *gecho.Logger
	reviewService *services.ReviewService
	mw            *middleware.Middleware
}

func NewReviewRoutesManager(logger *gecho.Logger, reviewService *services.ReviewService, mw *middleware.Middleware) *ReviewRoutesManager {
	return &ReviewRoutesManager{
		logger:        logger,
		reviewService: reviewService,
		mw:            mw,
	}
}

func (rrm *ReviewRoutesManager) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(rrm.mw.UserAuthMiddleware)
		r.Post("/products/{id}/reviews", rrm.CreateReview)
		r.Delete("/reviews/{id}", rrm.DeleteReview)
	})
}
