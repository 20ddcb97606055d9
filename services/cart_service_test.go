package services_test

import (
	"testing"

	"giftingstudio_server/services"
	"giftingstudio_server/structs/tables"

	"github.com/google/uuid"
)

func TestLineMatches(t *testing.T) {
	productID := uuid.New()
	line := &tables.CartLine{ProductID: productID, Color: "gold"}

	if !services.LineMatches(line, productID, "gold") {
		t.Error("exact match rejected")
	}
	if services.LineMatches(line, productID, "Gold") {
		t.Error("color comparison must be exact, not case-folded")
	}
	if services.LineMatches(line, productID, "") {
		t.Error("empty color matched a colored line")
	}
	if services.LineMatches(line, uuid.New(), "gold") {
		t.Error("different product matched")
	}

	colorless := &tables.CartLine{ProductID: productID}
	if !services.LineMatches(colorless, productID, "") {
		t.Error("colorless line did not match empty color")
	}
}

func TestFindMatchingLine(t *testing.T) {
	productA := uuid.New()
	productB := uuid.New()

	lines := []tables.CartLine{
		{ID: uuid.New(), ProductID: productA, Color: "gold", Quantity: 1},
		{ID: uuid.New(), ProductID: productA, Color: "silver", Quantity: 2},
		{ID: uuid.New(), ProductID: productB, Quantity: 1},
	}

	got := services.FindMatchingLine(lines, productA, "silver")
	if got == nil {
		t.Fatal("existing line not found")
	}
	if got.Quantity != 2 {
		t.Fatalf("found wrong line: %+v", got)
	}

	if services.FindMatchingLine(lines, productA, "rose") != nil {
		t.Error("nonexistent color variant found")
	}
	if services.FindMatchingLine(nil, productA, "gold") != nil {
		t.Error("match found in empty cart")
	}
}
