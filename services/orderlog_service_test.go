package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"giftingstudio_server/services"
	"giftingstudio_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderLogConfig(url, token string) *structs.Config {
	return &structs.Config{
		Checkout: &structs.CheckoutConfig{
			OrderLogURL:   url,
			OrderLogToken: token,
		},
	}
}

func samplePayload() *structs.OrderLogPayload {
	return &structs.OrderLogPayload{
		OrderDetails:  "2x Brass Mug (gold), 1x Greeting Card",
		Address:       structs.ShippingAddress{FullName: "Asha Verma", Phone: "+919876543210", Street: "12 MG Road", City: "Pune", State: "Maharashtra", Pincode: "411001"},
		Total:         1098.99,
		PaymentMethod: "cod",
	}
}

func TestLogOrderSuccess(t *testing.T) {
	var received map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Equal(t, "Bearer relay-token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(map[string]bool{"success": true})
	}))
	defer srv.Close()

	ols := services.NewOrderLogService(gecho.NewDefaultLogger(), orderLogConfig(srv.URL, "relay-token"))

	ok := ols.LogOrder(context.Background(), samplePayload())
	assert.True(t, ok)

	// The relay contract uses these exact key names
	assert.Contains(t, received, "orderDetails")
	assert.Contains(t, received, "address")
	assert.Contains(t, received, "total")
	assert.Contains(t, received, "paymentMethod")
	assert.Equal(t, "cod", received["paymentMethod"])
}

func TestLogOrderRelayReportsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]bool{"success": false})
	}))
	defer srv.Close()

	ols := services.NewOrderLogService(gecho.NewDefaultLogger(), orderLogConfig(srv.URL, ""))
	assert.False(t, ols.LogOrder(context.Background(), samplePayload()))
}

func TestLogOrderRelayRejects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	ols := services.NewOrderLogService(gecho.NewDefaultLogger(), orderLogConfig(srv.URL, ""))
	assert.False(t, ols.LogOrder(context.Background(), samplePayload()))
}

func TestLogOrderRelayUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	ols := services.NewOrderLogService(gecho.NewDefaultLogger(), orderLogConfig(srv.URL, ""))
	assert.False(t, ols.LogOrder(context.Background(), samplePayload()))
}

func TestLogOrderUnconfigured(t *testing.T) {
	ols := services.NewOrderLogService(gecho.NewDefaultLogger(), orderLogConfig("", ""))
	assert.False(t, ols.LogOrder(context.Background(), samplePayload()))
}
