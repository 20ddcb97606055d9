package catalog_test

import (
	"testing"

	"giftingstudio_server/catalog"
	"giftingstudio_server/structs/tables"
)

func TestFirstToken(t *testing.T) {
	cases := map[string]string{
		"Festive Gift":   "Festive",
		"Festive":        "Festive",
		"  Rings  ":      "Rings",
		"":               "",
		"   ":            "",
		"Gold\tBracelet": "Gold",
	}
	for in, want := range cases {
		if got := catalog.FirstToken(in); got != want {
			t.Errorf("FirstToken(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMatchesCategoryLeadingToken(t *testing.T) {
	// Stored labels are inconsistent, so "Festive Gift" must be found
	// when the request is "Festive Collection" and vice versa.
	if !catalog.MatchesCategory("Festive Gift", "Festive Collection") {
		t.Error("expected leading token match against longer stored label")
	}
	if !catalog.MatchesCategory("festive gift", "FESTIVE") {
		t.Error("expected case-insensitive match")
	}
	if catalog.MatchesCategory("Rings", "Festive") {
		t.Error("expected no match for unrelated labels")
	}
}

func TestMatchesCategoryEmptyRequestMatchesAll(t *testing.T) {
	if !catalog.MatchesCategory("Anything", "") {
		t.Error("empty request should match any stored category")
	}
	if !catalog.MatchesCategory("", "   ") {
		t.Error("whitespace-only request should match any stored category")
	}
}

func TestMatchesSubcategorySubstring(t *testing.T) {
	if !catalog.MatchesSubcategory("Adjustable Rings", "ring") {
		t.Error("expected case-insensitive substring match")
	}
	if catalog.MatchesSubcategory("Earrings", "necklace") {
		t.Error("expected no match")
	}
	if !catalog.MatchesSubcategory("", "") {
		t.Error("empty request should match")
	}
}

func TestMatchesCategoryUnicodeFold(t *testing.T) {
	if !catalog.MatchesCategory("SCHMUCKSTÜCK", "schmuckstück") {
		t.Error("expected Unicode case fold match")
	}
}

func TestFilter(t *testing.T) {
	products := []tables.Product{
		{Name: "Ruby Ring", Category: "Festive Gift", Subcategory: "Rings"},
		{Name: "Gold Chain", Category: "Everyday", Subcategory: "Chains"},
		{Name: "Star Pendant", Category: "Festive Collection", Subcategory: "Pendants"},
	}

	got := catalog.Filter(products, "Festive", "")
	if len(got) != 2 {
		t.Fatalf("expected 2 festive products, got %d", len(got))
	}

	got = catalog.Filter(products, "Festive", "pend")
	if len(got) != 1 || got[0].Name != "Star Pendant" {
		t.Fatalf("expected only the pendant, got %+v", got)
	}

	// Empty category returns the unfiltered set
	got = catalog.Filter(products, "", "")
	if len(got) != 3 {
		t.Fatalf("expected unfiltered set, got %d", len(got))
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	products := []tables.Product{
		{Name: "B", Category: "Festive"},
		{Name: "A", Category: "Festive"},
	}
	_ = catalog.Filter(products, "Festive", "")
	if products[0].Name != "B" || products[1].Name != "A" {
		t.Error("input slice was mutated")
	}
}
