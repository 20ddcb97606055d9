package catalog

import (
	"sort"

	"giftingstudio_server/structs/tables"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects a product list ordering
type SortKey string

const (
	SortDefault   SortKey = "default"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
)

// ParseSortKey maps a raw query value to a SortKey. Unknown values fall
// back to SortDefault.
func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortPriceLow, SortPriceHigh, SortNameAsc, SortNameDesc:
		return SortKey(raw)
	default:
		return SortDefault
	}
}

// SortProducts returns a new slice ordered per the given key. The input
// slice is never modified. All orderings are stable: ties keep their
// original relative order, and SortDefault keeps the input order as is.
func SortProducts(products []tables.Product, key SortKey) []tables.Product {
	out := make([]tables.Product, len(products))
	copy(out, products)

	switch key {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price < out[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price > out[j].Price
		})
	case SortNameAsc:
		c := newNameCollator()
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortNameDesc:
		c := newNameCollator()
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Name, out[j].Name) > 0
		})
	}

	return out
}

// newNameCollator builds a locale-aware collator for product names.
// A Collator is not safe for concurrent use, so each sort gets its own.
func newNameCollator() *collate.Collator {
	return collate.New(language.English, collate.Loose)
}
