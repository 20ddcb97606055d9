package orders

import (
	"errors"
	"net/http"

	"giftingstudio_server/api/health"
	"giftingstudio_server/api/middleware"
	"giftingstudio_server/lib"
	"giftingstudio_server/structs"

	"github.com/MonkyMars/gecho"
)

// Checkout handles POST /orders. Address validation happens before any
// database or network work, so a missing field costs nothing.
func (orm *OrderRoutesManager) Checkout(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w,
			gecho.WithMessage("error.auth.invalidOrMissingAccessToken"),
			gecho.Send(),
		)
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CheckoutRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.order.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	user, err := orm.authService.GetUserByID(claims.Sub)
	if err != nil {
		orm.logger.Error("Failed to load user for checkout", gecho.Field("user_id", claims.Sub), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.order.creationFailed"),
			gecho.Send(),
		)
		return
	}

	order, err := orm.orderService.Checkout(r.Context(), user, body)
	if err != nil {
		var ve *lib.ValidationError
		if errors.As(err, &ve) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.order.incompleteAddress"),
				gecho.WithData(ve),
				gecho.Send(),
			)
			return
		}

		if errors.Is(err, lib.ErrEmptyCart) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.order.emptyCart"),
				gecho.Send(),
			)
			return
		}

		orm.logger.Error("Checkout failed", gecho.Field("user_id", claims.Sub), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.order.creationFailed"),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
		return
	}

	health.OrdersPlaced.Inc()

	gecho.Success(w,
		gecho.WithMessage("success.order.created"),
		gecho.WithData(map[string]any{
			"order_number": order.OrderNumber,
			"order_id":     order.Id,
			"status":       order.Status,
			"total_amount": order.TotalAmount,
		}),
		gecho.Send(),
	)
}
