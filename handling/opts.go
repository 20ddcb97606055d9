package handling

import (
	"giftingstudio_server/catalog"
	"giftingstudio_server/services"
	"net/http"
	"strconv"
)

// ParseCatalogListOptions parses the catalog page query parameters. All
// three are optional; an absent sort key (or an unrecognized one) falls
// back to the default ordering.
func ParseCatalogListOptions(r *http.Request) *services.CatalogListOptions {
	query := r.URL.Query()

	return &services.CatalogListOptions{
		Category:    query.Get("category"),
		Subcategory: query.Get("subcategory"),
		Sort:        catalog.ParseSortKey(query.Get("sort")),
	}
}

// ParsePagination parses page/page_size with sane fallbacks
func ParsePagination(r *http.Request) (page, pageSize int) {
	query := r.URL.Query()

	page = 1
	pageSize = 20

	if raw := query.Get("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page = v
		}
	}
	if raw := query.Get("page_size"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			pageSize = v
		}
	}

	return page, pageSize
}
