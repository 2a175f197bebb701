package catalog

import (
	"strings"

	"github.com/Sherlinsilvia14/MKV-co/internal/domain/product"
)

// CategoryAll matches every category.
const CategoryAll = "All"

// FilterSpec narrows the visible catalog. Price bounds are inclusive; callers
// pass math.Inf(1) for an open upper bound. Fabric keywords match
// case-insensitively against name or description, any one suffices.
type FilterSpec struct {
	Category string
	PriceMin float64
	PriceMax float64
	Fabrics  []string
}

// Filter applies spec as a conjunction over items, preserving input order.
// PriceMin > PriceMax is a valid, if useless, spec: the result is empty.
func Filter(items []product.Product, spec FilterSpec) []product.Product {
	out := make([]product.Product, 0, len(items))
	for _, p := range items {
		if !matchesCategory(p, spec) {
			continue
		}
		if p.Price < spec.PriceMin || p.Price > spec.PriceMax {
			continue
		}
		if !matchesFabric(p, spec.Fabrics) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesCategory(p product.Product, spec FilterSpec) bool {
	return spec.Category == "" || spec.Category == CategoryAll || p.Category == spec.Category
}

func matchesFabric(p product.Product, fabrics []string) bool {
	if len(fabrics) == 0 {
		return true
	}
	name := strings.ToLower(p.Name)
	desc := strings.ToLower(p.Description)
	for _, f := range fabrics {
		f = strings.ToLower(f)
		if strings.Contains(name, f) || strings.Contains(desc, f) {
			return true
		}
	}
	return false
}
