package tables

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	tableName   struct{}  `bun:"table:orders,alias:o"`
	Id          uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	OrderNumber string    `bun:"order_number,notnull,unique" json:"order_number"`
	UserId      uuid.UUID `bun:"user_id,notnull,type:uuid" json:"user_id"`

	// Totals in minor units; shipping is folded into TotalAmount at creation.
	TotalAmount   int64  `bun:"total_amount,notnull" json:"total_amount"`
	ShippingFee   int64  `bun:"shipping_fee,notnull" json:"shipping_fee"`
	PaymentMethod string `bun:"payment_method,notnull" json:"payment_method"`

	// Structured shipping address, captured at checkout.
	ShipName    string `bun:"ship_name,notnull" json:"ship_name"`
	ShipPhone   string `bun:"ship_phone,notnull" json:"ship_phone"`
	ShipStreet  string `bun:"ship_street,notnull" json:"ship_street"`
	ShipCity    string `bun:"ship_city,notnull" json:"ship_city"`
	ShipState   string `bun:"ship_state,notnull" json:"ship_state"`
	ShipPincode string `bun:"ship_pincode,notnull" json:"ship_pincode"`

	Status    OrderStatus `bun:"status,notnull,default:'pending'" json:"status"`
	CreatedAt time.Time   `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`

	Lines []OrderLine `bun:"rel:has-many,join:id=order_id" json:"lines,omitempty"`
}

// OrderLine snapshots one cart line at checkout. UnitPrice is the product
// price at order time and never tracks later price changes.
type OrderLine struct {
	tableName struct{}  `bun:"table:order_lines,alias:ol"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	OrderId   uuid.UUID `bun:"order_id,notnull,type:uuid" json:"order_id"`
	ProductId uuid.UUID `bun:"product_id,notnull,type:uuid" json:"product_id"`
	Quantity  int       `bun:"quantity,notnull" json:"quantity"`
	UnitPrice int64     `bun:"unit_price,notnull" json:"unit_price"`

	ProductName string `bun:"product_name,notnull" json:"product_name"`
	Color       string `bun:"color,nullzero" json:"color,omitempty"`
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)
