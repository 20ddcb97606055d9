package admin

import (
	"errors"
	"net/http"

	"giftingstudio_server/handling"
	"giftingstudio_server/lib"
	"giftingstudio_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending paid shipped delivered cancelled"`
}

// ListOrders handles GET /admin/orders with optional ?status= filtering
func (arm *AdminRoutesManager) ListOrders(w http.ResponseWriter, r *http.Request) {
	page, pageSize := handling.ParsePagination(r)

	var status *tables.OrderStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := tables.OrderStatus(raw)
		switch s {
		case tables.OrderStatusPending, tables.OrderStatusPaid, tables.OrderStatusShipped,
			tables.OrderStatusDelivered, tables.OrderStatusCancelled:
			status = &s
		default:
			gecho.BadRequest(w,
				gecho.WithMessage("error.admin.invalidOrderStatus"),
				gecho.Send(),
			)
			return
		}
	}

	result, err := arm.orderService.GetAllOrders(r.Context(), status, page, pageSize)
	if err != nil {
		arm.logger.Error("Failed to list orders", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.order.fetchingOrders"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}

// UpdateOrderStatus handles PATCH /admin/orders/{id}/status. Only forward
// transitions are allowed; a delivered or cancelled order is final.
func (arm *AdminRoutesManager) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderIdStr := chi.URLParam(r, "id")
	orderId, err := uuid.Parse(orderIdStr)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.order.invalidOrderId"),
			gecho.Send(),
		)
		return
	}

	body, err := lib.ExtractAndValidateBody[UpdateOrderStatusRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.order.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	err = arm.orderService.UpdateOrderStatus(r.Context(), orderId, tables.OrderStatus(body.Status))
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.order.notFound"),
				gecho.Send(),
			)
			return
		}
		if errors.Is(err, lib.ErrConflict) {
			gecho.Conflict(w,
				gecho.WithMessage("error.admin.invalidStatusTransition"),
				gecho.Send(),
			)
			return
		}

		arm.logger.Error("Failed to update order status",
			gecho.Field("error", err),
			gecho.Field("order_id", orderId),
			gecho.Field("status", body.Status),
		)
		gecho.InternalServerError(w,
			gecho.WithMessage("error.admin.statusUpdateFailed"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.admin.orderStatusUpdated"),
		gecho.WithData(map[string]any{
			"order_id": orderId,
			"status":   body.Status,
		}),
		gecho.Send(),
	)
}
