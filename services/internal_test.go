package services

import (
	"testing"

	"giftingstudio_server/structs/tables"
)

func TestIdentityKey(t *testing.T) {
	cases := []struct {
		email, phone, want string
	}{
		{"Asha@Example.COM", "", "asha@example.com"},
		{"  asha@example.com  ", "", "asha@example.com"},
		{"", "+919876543210", "+919876543210"},
		{"asha@example.com", "+919876543210", "asha@example.com"},
		{"", "", ""},
	}

	for _, tc := range cases {
		if got := identityKey(tc.email, tc.phone); got != tc.want {
			t.Errorf("identityKey(%q, %q) = %q, want %q", tc.email, tc.phone, got, tc.want)
		}
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	allowed := []struct{ from, to tables.OrderStatus }{
		{tables.OrderStatusPending, tables.OrderStatusPaid},
		{tables.OrderStatusPending, tables.OrderStatusCancelled},
		{tables.OrderStatusPaid, tables.OrderStatusShipped},
		{tables.OrderStatusPaid, tables.OrderStatusCancelled},
		{tables.OrderStatusShipped, tables.OrderStatusDelivered},
	}
	for _, tc := range allowed {
		if !isValidStatusTransition(tc.from, tc.to) {
			t.Errorf("transition %s -> %s should be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to tables.OrderStatus }{
		{tables.OrderStatusPending, tables.OrderStatusShipped},
		{tables.OrderStatusPaid, tables.OrderStatusPending},
		{tables.OrderStatusShipped, tables.OrderStatusCancelled},
		{tables.OrderStatusDelivered, tables.OrderStatusPending},
		{tables.OrderStatusCancelled, tables.OrderStatusPaid},
		{tables.OrderStatusPending, tables.OrderStatusPending},
	}
	for _, tc := range denied {
		if isValidStatusTransition(tc.from, tc.to) {
			t.Errorf("transition %s -> %s should be rejected", tc.from, tc.to)
		}
	}
}
