package catalog

import (
	"strings"

	"giftingstudio_server/structs/tables"

	"golang.org/x/text/cases"
)

// Category labels are stored inconsistently ("Festive" vs "Festive Gift"),
// so lookups match on a case-insensitive contains of the label's leading
// token instead of exact equality.

// FirstToken returns the first whitespace-delimited token of a label,
// or "" when the label is empty or all whitespace.
func FirstToken(label string) string {
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// containsFold reports whether s contains substr under Unicode case folding
func containsFold(s, substr string) bool {
	folder := cases.Fold()
	return strings.Contains(folder.String(s), folder.String(substr))
}

// MatchesCategory reports whether a stored category field matches a
// requested category label. An empty request matches everything.
func MatchesCategory(stored, requested string) bool {
	token := FirstToken(requested)
	if token == "" {
		return true
	}
	return containsFold(stored, token)
}

// MatchesSubcategory reports whether a stored subcategory field contains
// the requested subcategory label. An empty request matches everything.
func MatchesSubcategory(stored, requested string) bool {
	if strings.TrimSpace(requested) == "" {
		return true
	}
	return containsFold(stored, requested)
}

// Filter returns the products matching the requested category and, when
// given, subcategory. The input slice is not modified. A subcategory
// request only narrows the set when a category was also requested.
func Filter(products []tables.Product, category, subcategory string) []tables.Product {
	out := make([]tables.Product, 0, len(products))
	for _, p := range products {
		if !MatchesCategory(p.Category, category) {
			continue
		}
		if category != "" && !MatchesSubcategory(p.Subcategory, subcategory) {
			continue
		}
		out = append(out, p)
	}
	return out
}
