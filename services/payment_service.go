package services

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"giftingstudio_server/lib"
	"giftingstudio_server/structs"
	"math"
	"net/http"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// PaymentService is the thin relay in front of the hosted payment provider:
// it creates provider-side payment orders and verifies the signature the
// provider hands back after a completed payment.
type PaymentService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *http.Client
}

func NewPaymentService(logger *gecho.Logger, cfg *structs.Config) *PaymentService {
	return &PaymentService{
		logger: logger,
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// ToMinorUnits converts a major-unit amount to the provider's integer minor
// units (rupees to paise)
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// SignPayment computes the hex HMAC-SHA256 digest the provider signs
// completed payments with: keyed over "order_id|payment_id"
func SignPayment(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s|%s", orderID, paymentID)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyPaymentSignature recomputes the digest and compares it against the
// submitted signature. The comparison is exact on the hex string.
func VerifyPaymentSignature(orderID, paymentID, signature, secret string) bool {
	expected := SignPayment(orderID, paymentID, secret)
	return lib.SecureCompare([]byte(expected), []byte(signature))
}

// CreateOrder creates a provider-hosted payment order for the given
// major-unit amount
func (ps *PaymentService) CreateOrder(ctx context.Context, amount float64) (*structs.PaymentOrder, error) {
	receipt := fmt.Sprintf("rcpt_%s", uuid.New().String()[:18])

	payload := map[string]any{
		"amount":   ToMinorUnits(amount),
		"currency": ps.cfg.Payment.Currency,
		"receipt":  receipt,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/orders", ps.cfg.Payment.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(ps.cfg.Payment.KeyID, ps.cfg.Payment.KeySecret)

	resp, err := ps.client.Do(req)
	if err != nil {
		ps.logger.Error("Payment provider unreachable", gecho.Field("error", err))
		return nil, fmt.Errorf("payment provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		ps.logger.Error("Payment order creation rejected",
			gecho.Field("status", resp.StatusCode),
			gecho.Field("amount", amount),
		)
		return nil, fmt.Errorf("payment order creation failed with status %d", resp.StatusCode)
	}

	var order structs.PaymentOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		ps.logger.Error("Failed to decode payment order", gecho.Field("error", err))
		return nil, err
	}

	ps.logger.Info("Payment order created",
		gecho.Field("provider_order_id", order.ID),
		gecho.Field("amount", order.Amount),
		gecho.Field("currency", order.Currency),
	)
	return &order, nil
}

// VerifyPayment checks a completed payment's signature
func (ps *PaymentService) VerifyPayment(req *structs.VerifyPaymentRequest) error {
	if !VerifyPaymentSignature(req.OrderID, req.PaymentID, req.Signature, ps.cfg.Payment.KeySecret) {
		ps.logger.Warn("Payment signature mismatch",
			gecho.Field("provider_order_id", req.OrderID),
			gecho.Field("payment_id", req.PaymentID),
		)
		return lib.ErrInvalidSignature
	}

	ps.logger.Info("Payment verified",
		gecho.Field("provider_order_id", req.OrderID),
		gecho.Field("payment_id", req.PaymentID),
	)
	return nil
}
