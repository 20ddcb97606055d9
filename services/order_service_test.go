package services_test

import (
	"strings"
	"testing"

	"giftingstudio_server/lib"
	"giftingstudio_server/services"
	"giftingstudio_server/structs"
	"giftingstudio_server/structs/tables"

	"github.com/google/uuid"
)

func completeAddress() structs.ShippingAddress {
	return structs.ShippingAddress{
		FullName: "Asha Verma",
		Phone:    "+919876543210",
		Street:   "12 MG Road",
		City:     "Pune",
		State:    "Maharashtra",
		Pincode:  "411001",
	}
}

func TestValidateAddressComplete(t *testing.T) {
	addr := completeAddress()
	if err := services.ValidateAddress(&addr); err != nil {
		t.Fatalf("complete address rejected: %v", err)
	}
}

func TestValidateAddressMissingField(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*structs.ShippingAddress)
	}{
		{"full_name", func(a *structs.ShippingAddress) { a.FullName = "" }},
		{"phone", func(a *structs.ShippingAddress) { a.Phone = "" }},
		{"street", func(a *structs.ShippingAddress) { a.Street = "" }},
		{"city", func(a *structs.ShippingAddress) { a.City = "" }},
		{"state", func(a *structs.ShippingAddress) { a.State = "" }},
		{"pincode", func(a *structs.ShippingAddress) { a.Pincode = "" }},
	}

	for _, tc := range cases {
		addr := completeAddress()
		tc.mutate(&addr)

		err := services.ValidateAddress(&addr)
		if err == nil {
			t.Errorf("missing %s accepted", tc.field)
			continue
		}

		ve, ok := err.(*lib.ValidationError)
		if !ok {
			t.Errorf("missing %s: got %T, want *lib.ValidationError", tc.field, err)
			continue
		}
		if len(ve.Errors) != 1 || ve.Errors[0].Field != tc.field {
			t.Errorf("missing %s: got errors %v", tc.field, ve.Errors)
		}
	}
}

func TestValidateAddressWhitespaceOnly(t *testing.T) {
	addr := completeAddress()
	addr.City = "   "

	if err := services.ValidateAddress(&addr); err == nil {
		t.Fatal("whitespace-only city accepted")
	}
}

func TestValidateAddressAllMissing(t *testing.T) {
	err := services.ValidateAddress(&structs.ShippingAddress{})
	if err == nil {
		t.Fatal("empty address accepted")
	}

	ve := err.(*lib.ValidationError)
	if len(ve.Errors) != 6 {
		t.Fatalf("got %d field errors, want 6", len(ve.Errors))
	}
}

func TestComputeTotal(t *testing.T) {
	mug := &tables.Product{ID: uuid.New(), Name: "Brass Mug", Price: 49900}
	card := &tables.Product{ID: uuid.New(), Name: "Greeting Card", Price: 9900}

	lines := []tables.CartLine{
		{ProductID: mug.ID, Quantity: 2, Product: mug},
		{ProductID: card.ID, Quantity: 1, Product: card},
	}

	got := services.ComputeTotal(lines, 99)
	want := int64(2*49900 + 9900 + 99)
	if got != want {
		t.Fatalf("ComputeTotal = %d, want %d", got, want)
	}
}

func TestComputeTotalEmptyCart(t *testing.T) {
	if got := services.ComputeTotal(nil, 99); got != 99 {
		t.Fatalf("ComputeTotal(nil) = %d, want shipping fee only", got)
	}
}

func TestComputeTotalSkipsLinesWithoutProduct(t *testing.T) {
	mug := &tables.Product{ID: uuid.New(), Name: "Brass Mug", Price: 49900}

	lines := []tables.CartLine{
		{ProductID: mug.ID, Quantity: 1, Product: mug},
		{ProductID: uuid.New(), Quantity: 3, Product: nil},
	}

	got := services.ComputeTotal(lines, 99)
	want := int64(49900 + 99)
	if got != want {
		t.Fatalf("ComputeTotal = %d, want %d (orphan line must not count)", got, want)
	}
}

func TestBuildOrderSummary(t *testing.T) {
	mug := &tables.Product{ID: uuid.New(), Name: "Brass Mug", Price: 49900}
	card := &tables.Product{ID: uuid.New(), Name: "Greeting Card", Price: 9900}

	lines := []tables.CartLine{
		{ProductID: mug.ID, Quantity: 2, Color: "gold", Product: mug},
		{ProductID: card.ID, Quantity: 1, Product: card},
	}

	summary := services.BuildOrderSummary(lines)
	if !strings.Contains(summary, "2x Brass Mug (gold)") {
		t.Errorf("summary %q missing colored line", summary)
	}
	if !strings.Contains(summary, "1x Greeting Card") {
		t.Errorf("summary %q missing plain line", summary)
	}
	if strings.Contains(summary, "Greeting Card (") {
		t.Errorf("summary %q shows a color for a colorless line", summary)
	}
}
