package structs

// ShippingAddress is the structured delivery address collected at checkout.
// All six fields must be non-empty before any order row is created.
type ShippingAddress struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
}

type CheckoutRequest struct {
	Address       ShippingAddress `json:"address"`
	PaymentMethod string          `json:"payment_method" validate:"required,oneof=cod upi card"`
}

// OrderLogPayload is the body forwarded to the external order-logging relay.
// The relay is a best-effort audit side channel; its failures never surface
// to the shopper.
type OrderLogPayload struct {
	OrderDetails  string          `json:"orderDetails"`
	Address       ShippingAddress `json:"address"`
	Total         float64         `json:"total"`
	PaymentMethod string          `json:"paymentMethod"`
}
