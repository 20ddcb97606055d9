package structs

// CreatePaymentOrderRequest carries the amount in major currency units as the
// storefront sends it; the relay converts to minor units for the provider.
type CreatePaymentOrderRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// PaymentOrder mirrors the provider's order object as returned to the client.
type PaymentOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // minor units
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type VerifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id" validate:"required"`
	PaymentID string `json:"razorpay_payment_id" validate:"required"`
	Signature string `json:"razorpay_signature" validate:"required"`
}
