package cart

import (
	"net/http"

	"giftingstudio_server/api/middleware"
	"giftingstudio_server/lib"
	"giftingstudio_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// GetWishlist handles GET /wishlist for the authenticated user
func (crm *CartRoutesManager) GetWishlist(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w,
			gecho.WithMessage("error.auth.invalidOrMissingAccessToken"),
			gecho.Send(),
		)
		return
	}

	entries, err := crm.cartService.GetWishlist(r.Context(), claims.Sub)
	if err != nil {
		crm.logger.Error("Failed to fetch wishlist", gecho.Field("user_id", claims.Sub), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.wishlist.failedToFetch"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"items": entries,
			"count": len(entries),
		}),
		gecho.Send(),
	)
}

// AddToWishlist handles POST /wishlist. Adding a product that is already
// saved is a no-op and still returns the full list.
func (crm *CartRoutesManager) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w,
			gecho.WithMessage("error.auth.invalidOrMissingAccessToken"),
			gecho.Send(),
		)
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.AddToWishlistRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.wishlist.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	entries, err := crm.cartService.AddToWishlist(r.Context(), claims.Sub, body.ProductID)
	if err != nil {
		crm.logger.Error("Failed to add to wishlist",
			gecho.Field("user_id", claims.Sub),
			gecho.Field("product_id", body.ProductID),
			gecho.Field("error", err),
		)
		gecho.InternalServerError(w,
			gecho.WithMessage("error.wishlist.failedToAdd"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.wishlist.added"),
		gecho.WithData(map[string]any{
			"items": entries,
			"count": len(entries),
		}),
		gecho.Send(),
	)
}

// RemoveFromWishlist handles DELETE /wishlist/{productId}
func (crm *CartRoutesManager) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w,
			gecho.WithMessage("error.auth.invalidOrMissingAccessToken"),
			gecho.Send(),
		)
		return
	}

	productIdStr := chi.URLParam(r, "productId")
	productId, err := uuid.Parse(productIdStr)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidProductId"),
			gecho.Send(),
		)
		return
	}

	entries, err := crm.cartService.RemoveFromWishlist(r.Context(), claims.Sub, productId)
	if err != nil {
		crm.logger.Error("Failed to remove from wishlist",
			gecho.Field("user_id", claims.Sub),
			gecho.Field("product_id", productId),
			gecho.Field("error", err),
		)
		gecho.InternalServerError(w,
			gecho.WithMessage("error.wishlist.failedToRemove"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.wishlist.removed"),
		gecho.WithData(map[string]any{
			"items": entries,
			"count": len(entries),
		}),
		gecho.Send(),
	)
}

// CheckWishlist handles GET /wishlist/{productId} membership checks
func (crm *CartRoutesManager) CheckWishlist(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w,
			gecho.WithMessage("error.auth.invalidOrMissingAccessToken"),
			gecho.Send(),
		)
		return
	}

	productIdStr := chi.URLParam(r, "productId")
	productId, err := uuid.Parse(productIdStr)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidProductId"),
			gecho.Send(),
		)
		return
	}

	saved, err := crm.cartService.IsInWishlist(r.Context(), claims.Sub, productId)
	if err != nil {
		crm.logger.Error("Failed to check wishlist",
			gecho.Field("user_id", claims.Sub),
			gecho.Field("product_id", productId),
			gecho.Field("error", err),
		)
		gecho.InternalServerError(w,
			gecho.WithMessage("error.wishlist.failedToCheck"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"product_id": productId,
			"saved":      saved,
		}),
		gecho.Send(),
	)
}
