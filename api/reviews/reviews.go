package reviews

import (
	"errors"
	"net/http"

	"giftingstudio_server/api/middleware"
	"giftingstudio_server/lib"
	"giftingstudio_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CreateReview handles POST /products/{id}/reviews
func (rrm *ReviewRoutesManager) CreateReview(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w,
			gecho.WithMessage("error.auth.invalidOrMissingAccessToken"),
			gecho.Send(),
		)
		return
	}

	productIdStr := chi.URLParam(r, "id")
	productId, err := uuid.Parse(productIdStr)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidProductId"),
			gecho.Send(),
		)
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CreateReviewRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.reviews.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	review, err := rrm.reviewService.CreateReview(r.Context(), claims.Sub, productId, body)
	if err != nil {
		if errors.Is(err, lib.ErrConflict) {
			gecho.Conflict(w,
				gecho.WithMessage("error.reviews.alreadyReviewed"),
				gecho.Send(),
			)
			return
		}

		rrm.logger.Error("Failed to create review",
			gecho.Field("user_id", claims.Sub),
			gecho.Field("product_id", productId),
			gecho.Field("error", err),
		)
		gecho.InternalServerError(w,
			gecho.WithMessage("error.reviews.failedToCreate"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.reviews.created"),
		gecho.WithData(map[string]any{
			"review": review,
		}),
		gecho.Send(),
	)
}

// DeleteReview handles DELETE /reviews/{id} for the review's author
func (rrm *ReviewRoutesManager) DeleteReview(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w,
			gecho.WithMessage("error.auth.invalidOrMissingAccessToken"),
			gecho.Send(),
		)
		return
	}

	reviewIdStr := chi.URLParam(r, "id")
	reviewId, err := uuid.Parse(reviewIdStr)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.reviews.invalidReviewId"),
			gecho.Send(),
		)
		return
	}

	if err := rrm.reviewService.DeleteReview(r.Context(), claims.Sub, reviewId); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.reviews.notFound"),
				gecho.Send(),
			)
			return
		}

		rrm.logger.Error("Failed to delete review",
			gecho.Field("user_id", claims.Sub),
			gecho.Field("review_id", reviewId),
			gecho.Field("error", err),
		)
		gecho.InternalServerError(w,
			gecho.WithMessage("error.reviews.failedToDelete"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.reviews.deleted"),
		gecho.Send(),
	)
}
