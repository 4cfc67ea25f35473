package catalog

import "sort"

// ProductByID looks a product up by id
func ProductByID(id int) (Product, bool) {
	for _, p := range Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// ByCategory returns all products in a category
func ByCategory(category string) []Product {
	out := make([]Product, 0)
	for _, p := range Products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the sorted distinct product categories
func Categories() []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, p := range Products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out
}
