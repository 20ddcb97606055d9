package handling_test

import (
	"net/http/httptest"
	"testing"

	"giftingstudio_server/catalog"
	"giftingstudio_server/handling"
)

func TestParseCatalogListOptions(t *testing.T) {
	r := httptest.NewRequest("GET", "/products?category=Festive&subcategory=Diyas&sort=price-low", nil)

	opts := handling.ParseCatalogListOptions(r)
	if opts.Category != "Festive" {
		t.Errorf("Category = %q", opts.Category)
	}
	if opts.Subcategory != "Diyas" {
		t.Errorf("Subcategory = %q", opts.Subcategory)
	}
	if opts.Sort != catalog.SortPriceLow {
		t.Errorf("Sort = %q", opts.Sort)
	}
}

func TestParseCatalogListOptionsDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/products", nil)

	opts := handling.ParseCatalogListOptions(r)
	if opts.Category != "" || opts.Subcategory != "" {
		t.Errorf("expected empty filters, got %+v", opts)
	}
	if opts.Sort != catalog.SortDefault {
		t.Errorf("Sort = %q, want default", opts.Sort)
	}
}

func TestParseCatalogListOptionsUnknownSort(t *testing.T) {
	r := httptest.NewRequest("GET", "/products?sort=cheapest-first", nil)

	if opts := handling.ParseCatalogListOptions(r); opts.Sort != catalog.SortDefault {
		t.Errorf("unknown sort key did not fall back to default: %q", opts.Sort)
	}
}

func TestParsePagination(t *testing.T) {
	cases := []struct {
		query        string
		wantPage     int
		wantPageSize int
	}{
		{"", 1, 20},
		{"?page=3&page_size=50", 3, 50},
		{"?page=0&page_size=-5", 1, 20},
		{"?page=abc&page_size=xyz", 1, 20},
	}

	for _, tc := range cases {
		r := httptest.NewRequest("GET", "/admin/orders"+tc.query, nil)
		page, pageSize := handling.ParsePagination(r)
		if page != tc.wantPage || pageSize != tc.wantPageSize {
			t.Errorf("ParsePagination(%q) = (%d, %d), want (%d, %d)", tc.query, page, pageSize, tc.wantPage, tc.wantPageSize)
		}
	}
}
