package chart

import (
	"strings"

	"SiliconMeter/internal/model"
)

// FilterByType returns the products whose type matches the selected filter
// exactly, ignoring case. An empty filter selects everything. Order is
// preserved and the input slice is never mutated.
func FilterByType(products []model.Product, filter string) []model.Product {
	if filter == "" {
		return products
	}
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if strings.EqualFold(p.Type, filter) {
			out = append(out, p)
		}
	}
	return out
}
