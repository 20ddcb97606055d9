package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"giftingstudio_server/structs"
	"net/http"
	"time"

	"github.com/MonkyMars/gecho"
)

// OrderLogService forwards placed orders to an external spreadsheet-style
// audit relay. The relay is strictly best effort: every failure is logged
// and swallowed, never surfaced to the shopper, never retried.
type OrderLogService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *http.Client
}

func NewOrderLogService(logger *gecho.Logger, cfg *structs.Config) *OrderLogService {
	return &OrderLogService{
		logger: logger,
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// LogOrder posts the payload to the relay. The return value exists for
// tests; checkout ignores it.
func (ols *OrderLogService) LogOrder(ctx context.Context, payload *structs.OrderLogPayload) bool {
	url := ols.cfg.Checkout.OrderLogURL
	if url == "" {
		ols.logger.Debug("Order log relay not configured, skipping")
		return false
	}

	body, err := json.Marshal(payload)
	if err != nil {
		ols.logger.Warn("Failed to encode order log payload", gecho.Field("error", err))
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		ols.logger.Warn("Failed to build order log request", gecho.Field("error", err))
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	if token := ols.cfg.Checkout.OrderLogToken; token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}

	resp, err := ols.client.Do(req)
	if err != nil {
		ols.logger.Warn("Order log relay unreachable", gecho.Field("error", err))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		ols.logger.Warn("Order log relay rejected payload", gecho.Field("status", resp.StatusCode))
		return false
	}

	var result struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		ols.logger.Warn("Order log relay returned unreadable body", gecho.Field("error", err))
		return false
	}
	if !result.Success {
		ols.logger.Warn("Order log relay reported failure")
		return false
	}

	ols.logger.Debug("Order forwarded to audit relay")
	return true
}
