package catalog_test

import (
	"testing"

	"giftingstudio_server/catalog"
	"giftingstudio_server/structs/tables"
)

func names(products []tables.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func sampleProducts() []tables.Product {
	return []tables.Product{
		{Name: "Pearl Drops", Price: 49900},
		{Name: "amber ring", Price: 19900},
		{Name: "Zircon Stud", Price: 19900},
		{Name: "Brass Cuff", Price: 89900},
	}
}

func assertOrder(t *testing.T, got []tables.Product, want ...string) {
	t.Helper()
	gotNames := names(got)
	if len(gotNames) != len(want) {
		t.Fatalf("got %d products, want %d", len(gotNames), len(want))
	}
	for i := range want {
		if gotNames[i] != want[i] {
			t.Fatalf("order mismatch at %d: got %v, want %v", i, gotNames, want)
		}
	}
}

func TestSortProductsDefaultKeepsOrder(t *testing.T) {
	got := catalog.SortProducts(sampleProducts(), catalog.SortDefault)
	assertOrder(t, got, "Pearl Drops", "amber ring", "Zircon Stud", "Brass Cuff")
}

func TestSortProductsPriceLowIsStable(t *testing.T) {
	// amber ring and Zircon Stud share a price; input order must hold
	got := catalog.SortProducts(sampleProducts(), catalog.SortPriceLow)
	assertOrder(t, got, "amber ring", "Zircon Stud", "Pearl Drops", "Brass Cuff")
}

func TestSortProductsPriceHigh(t *testing.T) {
	got := catalog.SortProducts(sampleProducts(), catalog.SortPriceHigh)
	assertOrder(t, got, "Brass Cuff", "Pearl Drops", "amber ring", "Zircon Stud")
}

func TestSortProductsNameAscIgnoresCase(t *testing.T) {
	// Locale-aware compare puts "amber ring" before "Brass Cuff" even
	// though 'a' > 'B' in raw byte order
	got := catalog.SortProducts(sampleProducts(), catalog.SortNameAsc)
	assertOrder(t, got, "amber ring", "Brass Cuff", "Pearl Drops", "Zircon Stud")
}

func TestSortProductsNameDesc(t *testing.T) {
	got := catalog.SortProducts(sampleProducts(), catalog.SortNameDesc)
	assertOrder(t, got, "Zircon Stud", "Pearl Drops", "Brass Cuff", "amber ring")
}

func TestSortProductsDoesNotMutateInput(t *testing.T) {
	in := sampleProducts()
	_ = catalog.SortProducts(in, catalog.SortPriceHigh)
	assertOrder(t, in, "Pearl Drops", "amber ring", "Zircon Stud", "Brass Cuff")
}

func TestSortProductsIsPure(t *testing.T) {
	in := sampleProducts()
	first := catalog.SortProducts(in, catalog.SortNameAsc)
	second := catalog.SortProducts(in, catalog.SortNameAsc)
	assertOrder(t, second, names(first)...)
}

func TestParseSortKeyUnknownFallsBack(t *testing.T) {
	if got := catalog.ParseSortKey("price-banana"); got != catalog.SortDefault {
		t.Errorf("unknown key should parse as default, got %q", got)
	}
	if got := catalog.ParseSortKey("price-low"); got != catalog.SortPriceLow {
		t.Errorf("expected price-low, got %q", got)
	}
	if got := catalog.ParseSortKey(""); got != catalog.SortDefault {
		t.Errorf("empty key should parse as default, got %q", got)
	}
}
