package cart

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

// GetCart handles GET /cart for the authenticated user
func (crm *CartRoutesManager) GetCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w,
			gecho.WithMessage("error.auth.invalidOrMissingAccessToken"),
			gecho.Send(),
		)
		return
	}

	lines, err := crm.cartService.GetCart(r.Context(), claims.Sub)
	if err != nil {
		crm.logger.Error("Failed to fetch cart", gecho.Field("user_id", claims.Sub), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.cart.failedToFetch"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"items": lines,
			"count": len(lines),
		}),
		gecho.Send(),
	)
}

// AddToCart handles POST /cart. Adding a (product, color) pair that is
// already in the cart bumps that line's quantity instead of inserting a
// duplicate row.
func (crm *CartRoutesManager) AddToCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w,
			gecho.WithMessage("error.auth.invalidOrMissingAccessToken"),
			gecho.Send(),
		)
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.AddToCartRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.cart.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	lines, err := crm.cartService.AddToCart(r.Context(), claims.Sub, body.ProductID, body.Color)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.cart.lineNotFound"),
				gecho.Send(),
			)
			return
		}

		crm.logger.Error("Failed to add to cart",
			gecho.Field("user_id", claims.Sub),
			gecho.Field("product_id", body.ProductID),
			gecho.Field("error", err),
		)
		gecho.InternalServerError(w,
			gecho.WithMessage("error.cart.failedToAdd"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.cart.added"),
		gecho.WithData(map[string]any{
			"items": lines,
			"count": len(lines),
		}),
		gecho.Send(),
	)
}

// UpdateQuantity handles PATCH /cart/{id}. A quantity below one is ignored
// and the current cart comes back unchanged.
func (crm *CartRoutesManager) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w,
			gecho.WithMessage("error.auth.invalidOrMissingAccessToken"),
			gecho.Send(),
		)
		return
	}

	lineIdStr := chi.URLParam(r, "id")
	lineId, err := uuid.Parse(lineIdStr)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.cart.invalidLineId"),
			gecho.Send(),
		)
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateQuantityRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.cart.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	lines, err := crm.cartService.UpdateQuantity(r.Context(), claims.Sub, lineId, body.Quantity)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.cart.lineNotFound"),
				gecho.Send(),
			)
			return
		}

		crm.logger.Error("Failed to update cart line",
			gecho.Field("user_id", claims.Sub),
			gecho.Field("line_id", lineId),
			gecho.Field("error", err),
		)
		gecho.InternalServerError(w,
			gecho.WithMessage("error.cart.failedToUpdate"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"items": lines,
			"count": len(lines),
		}),
		gecho.Send(),
	)
}

// RemoveFromCart handles DELETE /cart/{id}
func (crm *CartRoutesManager) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w,
			gecho.WithMessage("error.auth.invalidOrMissingAccessToken"),
			gecho.Send(),
		)
		return
	}

	lineIdStr := chi.URLParam(r, "id")
	lineId, err := uuid.Parse(lineIdStr)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.cart.invalidLineId"),
			gecho.Send(),
		)
		return
	}

	lines, err := crm.cartService.RemoveFromCart(r.Context(), claims.Sub, lineId)
	if err != nil {
		crm.logger.Error("Failed to remove cart line",
			gecho.Field("user_id", claims.Sub),
			gecho.Field("line_id", lineId),
			gecho.Field("error", err),
		)
		gecho.InternalServerError(w,
			gecho.WithMessage("error.cart.failedToRemove"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.cart.removed"),
		gecho.WithData(map[string]any{
			"items": lines,
			"count": len(lines),
		}),
		gecho.Send(),
	)
}

// ClearCart handles DELETE /cart
func (crm *CartRoutesManager) ClearCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w,
			gecho.WithMessage("error.auth.invalidOrMissingAccessToken"),
			gecho.Send(),
		)
		return
	}

	if err := crm.cartService.Clear(r.Context(), claims.Sub); err != nil {
		crm.logger.Error("Failed to clear cart", gecho.Field("user_id", claims.Sub), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.cart.failedToClear"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.cart.cleared"),
		gecho.WithData(map[string]any{
			"items": []any{},
			"count": 0,
		}),
		gecho.Send(),
	)
}
