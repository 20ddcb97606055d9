package services

import (
	"context"
	"fmt"
	"giftingstudio_server/database"
	"giftingstudio_server/lib"
	"giftingstudio_server/structs"
	"giftingstudio_server/structs/tables"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type OrderService struct {
	logger          *gecho.Logger
	cfg             *structs.Config
	db              *database.DB
	cartService     *CartService
	orderLogService *OrderLogService
	emailService    *EmailService
}

func NewOrderService(
	logger *gecho.Logger,
	cfg *structs.Config,
	db *database.DB,
	cartService *CartService,
	orderLogService *OrderLogService,
	emailService *EmailService,
) *OrderService {
	return &OrderService{
		logger:          logger,
		cfg:             cfg,
		db:              db,
		cartService:     cartService,
		orderLogService: orderLogService,
		emailService:    emailService,
	}
}

// ValidateAddress checks the six required address fields. It runs before
// any database or network call; a miss fails the whole submission.
func ValidateAddress(addr *structs.ShippingAddress) error {
	out := &lib.ValidationError{}

	check := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			out.Errors = append(out.Errors, lib.FieldError{
				Field:   field,
				Message: "is required",
			})
		}
	}

	check("full_name", addr.FullName)
	check("phone", addr.Phone)
	check("street", addr.Street)
	check("city", addr.City)
	check("state", addr.State)
	check("pincode", addr.Pincode)

	if len(out.Errors) > 0 {
		return out
	}
	return nil
}

// ComputeTotal sums unit price times quantity over the cart and adds the
// flat shipping fee. Lines must carry their product.
func ComputeTotal(lines []tables.CartLine, shippingFee int64) int64 {
	var subtotal int64
	for _, line := range lines {
		if line.Product == nil {
			continue
		}
		subtotal += line.Product.Price * int64(line.Quantity)
	}
	return subtotal + shippingFee
}

// BuildOrderSummary renders the cart as one human-readable line per entry,
// the format the audit relay stores
func BuildOrderSummary(lines []tables.CartLine) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		if line.Product == nil {
			continue
		}
		label := line.Product.Name
		if line.Color != "" {
			label = fmt.Sprintf("%s (%s)", label, line.Color)
		}
		parts = append(parts, fmt.Sprintf("%dx %s", line.Quantity, label))
	}
	return strings.Join(parts, ", ")
}

// Checkout runs the order submission sequence:
//
//  1. validate the address, failing fast with no calls issued
//  2. create the order row; a failure here aborts everything
//  3. create one order line per cart line with the price snapshotted;
//     a failure here is fatal to the order but the row from step 2 is
//     deliberately not rolled back
//  4. forward the order to the audit relay, best effort
//  5. clear the cart
//
// None of the steps are retried; the shopper resubmits the form on failure.
func (os *OrderService) Checkout(ctx context.Context, user *tables.User, req *structs.CheckoutRequest) (*tables.Order, error) {
	startTime := time.Now()

	if err := ValidateAddress(&req.Address); err != nil {
		return nil, err
	}

	lines, err := os.cartService.GetCart(ctx, user.Id)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, lib.ErrEmptyCart
	}

	shippingFee := os.cfg.Checkout.ShippingFee
	total := ComputeTotal(lines, shippingFee)

	order := &tables.Order{
		OrderNumber:   lib.GenerateOrderNumber(),
		UserId:        user.Id,
		TotalAmount:   total,
		ShippingFee:   shippingFee,
		PaymentMethod: req.PaymentMethod,
		ShipName:      req.Address.FullName,
		ShipPhone:     req.Address.Phone,
		ShipStreet:    req.Address.Street,
		ShipCity:      req.Address.City,
		ShipState:     req.Address.State,
		ShipPincode:   req.Address.Pincode,
		Status:        tables.OrderStatusPending,
		CreatedAt:     time.Now(),
	}

	order, err = database.Query[tables.Order](os.db).Insert(ctx, order)
	if err != nil {
		mappedErr := lib.MapPgError(err)
		os.logger.Error("Failed to create order",
			gecho.Field("error", mappedErr),
			gecho.Field("user_id", user.Id),
		)
		return nil, mappedErr
	}

	orderLines := make([]tables.OrderLine, 0, len(lines))
	for _, line := range lines {
		if line.Product == nil {
			os.logger.Warn("Cart line without product skipped at checkout",
				gecho.Field("line_id", line.ID),
				gecho.Field("order_id", order.Id),
			)
			continue
		}
		orderLines = append(orderLines, tables.OrderLine{
			OrderId:     order.Id,
			ProductId:   line.ProductID,
			Quantity:    line.Quantity,
			UnitPrice:   line.Product.Price,
			ProductName: line.Product.Name,
			Color:       line.Color,
		})
	}

	orderLines, err = database.CreateMany(os.db, ctx, orderLines)
	if err != nil {
		// The order row survives without lines. Rolling it back would hide
		// the failure from the admin panel, so it stays for manual review.
		mappedErr := lib.MapPgError(err)
		os.logger.Error("Failed to create order lines, order row kept",
			gecho.Field("error", mappedErr),
			gecho.Field("order_id", order.Id),
			gecho.Field("order_number", order.OrderNumber),
		)
		return nil, mappedErr
	}
	order.Lines = orderLines

	// Audit relay is best effort; a failure is logged and swallowed
	os.orderLogService.LogOrder(ctx, &structs.OrderLogPayload{
		OrderDetails:  BuildOrderSummary(lines),
		Address:       req.Address,
		Total:         float64(total) / 100,
		PaymentMethod: req.PaymentMethod,
	})

	if err := os.cartService.Clear(ctx, user.Id); err != nil {
		os.logger.Error("Failed to clear cart after checkout",
			gecho.Field("error", err),
			gecho.Field("order_id", order.Id),
		)
		return nil, err
	}

	if user.Email != "" {
		if err := os.emailService.SendOrderConfirmationEmail(user.Email, order); err != nil {
			os.logger.Warn("Failed to send order confirmation",
				gecho.Field("error", err),
				gecho.Field("order_id", order.Id),
			)
		}
	}

	os.logger.Info("Order placed",
		gecho.Field("order_id", order.Id),
		gecho.Field("order_number", order.OrderNumber),
		gecho.Field("user_id", user.Id),
		gecho.Field("total", total),
		gecho.Field("lines", len(orderLines)),
		gecho.Field("duration", time.Since(startTime)),
	)

	return order, nil
}

// GetOrderById fetches one order with its lines
func (os *OrderService) GetOrderById(ctx context.Context, orderId uuid.UUID) (*tables.Order, error) {
	order, err := database.Query[tables.Order](os.db).
		Where("id", orderId).
		Relation("Lines").
		Timeout(5 * time.Second).
		First(ctx)
	if err != nil {
		os.logger.Error("Failed to fetch order", gecho.Field("error", err), gecho.Field("order_id", orderId))
		return nil, lib.MapPgError(err)
	}
	if order == nil {
		return nil, lib.ErrNotFound
	}
	return order, nil
}

// GetOrdersByUserId lists a shopper's order history, newest first
func (os *OrderService) GetOrdersByUserId(ctx context.Context, userId uuid.UUID) ([]tables.Order, error) {
	orders, err := database.Query[tables.Order](os.db).
		Where("user_id", userId).
		Relation("Lines").
		OrderBy("created_at", database.DESC).
		Timeout(10 * time.Second).
		All(ctx)
	if err != nil {
		os.logger.Error("Failed to fetch user orders", gecho.Field("error", err), gecho.Field("user_id", userId))
		return nil, lib.MapPgError(err)
	}
	return orders, nil
}

// GetAllOrders lists orders for the admin panel, optionally filtered by status
func (os *OrderService) GetAllOrders(ctx context.Context, status *tables.OrderStatus, page, pageSize int) (*database.PaginationResult[tables.Order], error) {
	query := database.Query[tables.Order](os.db).
		Relation("Lines").
		OrderBy("created_at", database.DESC).
		Timeout(10 * time.Second)

	if status != nil {
		query = query.Where("status", *status)
	}

	result, err := database.Paginate(query, ctx, page, pageSize)
	if err != nil {
		os.logger.Error("Failed to fetch orders", gecho.Field("error", err))
		return nil, lib.MapPgError(err)
	}
	return result, nil
}

// UpdateOrderStatus moves an order along the fulfilment path
func (os *OrderService) UpdateOrderStatus(ctx context.Context, orderId uuid.UUID, newStatus tables.OrderStatus) error {
	order, err := os.GetOrderById(ctx, orderId)
	if err != nil {
		return err
	}

	if !isValidStatusTransition(order.Status, newStatus) {
		return fmt.Errorf("%w: invalid status transition %s -> %s", lib.ErrConflict, order.Status, newStatus)
	}

	affected, err := database.Query[tables.Order](os.db).
		Where("id", orderId).
		Update(ctx, map[string]any{"status": newStatus})
	if err != nil {
		os.logger.Error("Failed to update order status",
			gecho.Field("error", err),
			gecho.Field("order_id", orderId),
			gecho.Field("status", string(newStatus)),
		)
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}

	os.logger.Info("Order status updated",
		gecho.Field("order_id", orderId),
		gecho.Field("from", string(order.Status)),
		gecho.Field("to", string(newStatus)),
	)
	return nil
}

func isValidStatusTransition(current, next tables.OrderStatus) bool {
	transitions := map[tables.OrderStatus][]tables.OrderStatus{
		tables.OrderStatusPending:   {tables.OrderStatusPaid, tables.OrderStatusCancelled},
		tables.OrderStatusPaid:      {tables.OrderStatusShipped, tables.OrderStatusCancelled},
		tables.OrderStatusShipped:   {tables.OrderStatusDelivered},
		tables.OrderStatusDelivered: {},
		tables.OrderStatusCancelled: {},
	}

	for _, allowed := range transitions[current] {
		if allowed == next {
			return true
		}
	}
	return false
}
