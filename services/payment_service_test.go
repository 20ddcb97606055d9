package services_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"

	"giftingstudio_server/services"
)

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{0, 0},
		{1, 100},
		{99.99, 9999},
		{149.5, 14950},
		{599, 59900},
	}

	for _, tc := range cases {
		if got := services.ToMinorUnits(tc.amount); got != tc.want {
			t.Errorf("ToMinorUnits(%v) = %d, want %d", tc.amount, got, tc.want)
		}
	}
}

func TestSignPaymentMatchesReference(t *testing.T) {
	orderID := "order_ABC123"
	paymentID := "pay_XYZ789"
	secret := "test_secret"

	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s|%s", orderID, paymentID)
	want := hex.EncodeToString(mac.Sum(nil))

	if got := services.SignPayment(orderID, paymentID, secret); got != want {
		t.Fatalf("SignPayment = %s, want %s", got, want)
	}
}

func TestSignPaymentDeterministic(t *testing.T) {
	a := services.SignPayment("order_1", "pay_1", "s")
	b := services.SignPayment("order_1", "pay_1", "s")
	if a != b {
		t.Fatal("same inputs produced different signatures")
	}

	if services.SignPayment("order_1", "pay_2", "s") == a {
		t.Fatal("different payment id produced the same signature")
	}
	if services.SignPayment("order_1", "pay_1", "other") == a {
		t.Fatal("different secret produced the same signature")
	}
}

func TestVerifyPaymentSignature(t *testing.T) {
	sig := services.SignPayment("order_1", "pay_1", "s")

	if !services.VerifyPaymentSignature("order_1", "pay_1", sig, "s") {
		t.Fatal("valid signature rejected")
	}

	// Flip one hex character
	mutated := []byte(sig)
	if mutated[0] == 'a' {
		mutated[0] = 'b'
	} else {
		mutated[0] = 'a'
	}
	if services.VerifyPaymentSignature("order_1", "pay_1", string(mutated), "s") {
		t.Fatal("mutated signature accepted")
	}

	if services.VerifyPaymentSignature("order_1", "pay_1", "", "s") {
		t.Fatal("empty signature accepted")
	}
}
