package services

import (
	"context"
	"giftingstudio_server/database"
	"giftingstudio_server/lib"
	"giftingstudio_server/structs"
	"giftingstudio_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type ReviewService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewReviewService(logger *gecho.Logger, db *database.DB) *ReviewService {
	return &ReviewService{
		logger: logger,
		db:     db,
	}
}

// GetReviewsByProduct lists a product's reviews, newest first
func (rs *ReviewService) GetReviewsByProduct(ctx context.Context, productID uuid.UUID) ([]tables.Review, error) {
	reviews, err := database.Query[tables.Review](rs.db).
		Where("product_id", productID).
		OrderBy("created_at", database.DESC).
		Timeout(5 * time.Second).
		All(ctx)
	if err != nil {
		rs.logger.Error("Failed to fetch reviews", gecho.Field("error", err), gecho.Field("product_id", productID))
		return nil, lib.MapPgError(err)
	}
	return reviews, nil
}

// CreateReview stores a review. One review per (product, user): a second
// submission hits the unique constraint and maps to a conflict.
func (rs *ReviewService) CreateReview(ctx context.Context, userID, productID uuid.UUID, req *structs.CreateReviewRequest) (*tables.Review, error) {
	review := &tables.Review{
		ProductID: productID,
		UserID:    userID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Photos:    req.Photos,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	created, err := database.Query[tables.Review](rs.db).Insert(ctx, review)
	if err != nil {
		mappedErr := lib.MapPgError(err)
		if lib.IsUniqueViolation(mappedErr) {
			rs.logger.Warn("Duplicate review rejected",
				gecho.Field("user_id", userID),
				gecho.Field("product_id", productID),
			)
		} else {
			rs.logger.Error("Failed to create review",
				gecho.Field("error", mappedErr),
				gecho.Field("product_id", productID),
			)
		}
		return nil, mappedErr
	}

	return created, nil
}

// DeleteReview removes a user's own review
func (rs *ReviewService) DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error {
	affected, err := database.Query[tables.Review](rs.db).
		Where("id", reviewID).
		Where("user_id", userID).
		Delete(ctx)
	if err != nil {
		rs.logger.Error("Failed to delete review", gecho.Field("error", err), gecho.Field("review_id", reviewID))
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}
	return nil
}
