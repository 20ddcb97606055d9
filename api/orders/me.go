package orders

import (
	"errors"
	"net/http"

	"giftingstudio_server/api/middleware"
	"giftingstudio_server/lib"
	"giftingstudio_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// GetMyOrders returns all orders for the authenticated user
func (orm *OrderRoutesManager) GetMyOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w,
			gecho.WithMessage("error.auth.invalidOrMissingAccessToken"),
			gecho.Send(),
		)
		return
	}

	orders, err := orm.orderService.GetOrdersByUserId(r.Context(), claims.Sub)
	if err != nil {
		gecho.InternalServerError(w,
			gecho.WithMessage("error.order.fetchingOrders"),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"orders": orders,
			"count":  len(orders),
		}),
		gecho.Send(),
	)
}

// GetMyOrderById returns one order with its lines for the authenticated user
func (orm *OrderRoutesManager) GetMyOrderById(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w,
			gecho.WithMessage("error.auth.invalidOrMissingAccessToken"),
			gecho.Send(),
		)
		return
	}

	orderIdStr := chi.URLParam(r, "id")
	orderId, err := uuid.Parse(orderIdStr)
	if err != nil {
		orm.logger.Warn("Invalid order ID format", gecho.Field("order_id", orderIdStr))
		gecho.BadRequest(w,
			gecho.WithMessage("error.order.invalidOrderId"),
			gecho.Send(),
		)
		return
	}

	order, err := orm.orderService.GetOrderById(r.Context(), orderId)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.order.notFound"),
				gecho.Send(),
			)
			return
		}

		orm.logger.Error("Failed to get order", gecho.Field("error", err), gecho.Field("order_id", orderId))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.order.fetchingOrder"),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
		return
	}

	// Admins see every order, shoppers only their own
	if order.UserId != claims.Sub && claims.Role != tables.RoleAdmin {
		orm.logger.Warn("User attempted to access order they don't own",
			gecho.Field("user_id", claims.Sub),
			gecho.Field("order_id", orderId),
		)
		gecho.Forbidden(w,
			gecho.WithMessage("error.auth.accessDenied"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"order": order,
		}),
		gecho.Send(),
	)
}
