package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
)

type SortKey string

const (
	SortName      SortKey = "name"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
)

// ParseSortKey falls back to SortName for anything it does not recognise.
func ParseSortKey(s string) SortKey {
	switch SortKey(strings.TrimSpace(s)) {
	case SortPriceLow:
		return SortPriceLow
	case SortPriceHigh:
		return SortPriceHigh
	default:
		return SortName
	}
}

// ProductsByCategory returns every product whose path passes through
// categoryID at any level. An empty id returns the full catalog.
func (c *Catalog) ProductsByCategory(categoryID string) []*Product {
	return filterByCategory(c.products, categoryID)
}

// ProductsByCategoryPath returns the products whose category path starts
// with pathIDs. An empty prefix returns the full catalog.
func (c *Catalog) ProductsByCategoryPath(pathIDs []string) []*Product {
	return filterByPathPrefix(c.products, pathIDs)
}

// CountByCategory is len(ProductsByCategory(categoryID)).
func (c *Catalog) CountByCategory(categoryID string) int {
	return len(c.ProductsByCategory(categoryID))
}

// CategoryCounts reports the product count of every category in the tree,
// including categories with no products.
func (c *Catalog) CategoryCounts() map[string]int {
	counts := make(map[string]int, c.tree.Len())
	for _, f := range c.tree.Flatten() {
		counts[f.Node.ID] = 0
	}
	for _, p := range c.products {
		for _, id := range p.CategoryPath {
			counts[id]++
		}
	}
	return counts
}

// Search matches term case-insensitively against name and description.
// A blank term returns the full catalog.
func (c *Catalog) Search(term string) []*Product {
	return filterBySearch(c.products, term)
}

// Sort returns a sorted copy of products. Names are compared with the
// catalog's locale collation; ties keep their input order.
func (c *Catalog) Sort(products []*Product, key SortKey) []*Product {
	out := append([]*Product(nil), products...)
	switch key {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	default:
		// Collator keeps internal buffers, one per call.
		col := collate.New(c.locale)
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[i].Name, out[j].Name) < 0
		})
	}
	return out
}

// Query is the storefront listing filter.
type Query struct {
	Search       string
	CategoryID   string
	CategoryPath []string
	Sort         SortKey
}

// Find applies the search term, then the category filters, then sorts.
func (c *Catalog) Find(q Query) []*Product {
	products := filterBySearch(c.products, q.Search)
	products = filterByCategory(products, q.CategoryID)
	products = filterByPathPrefix(products, q.CategoryPath)
	return c.Sort(products, q.Sort)
}

func filterByCategory(products []*Product, categoryID string) []*Product {
	if categoryID == "" {
		return append([]*Product(nil), products...)
	}
	var out []*Product
	for _, p := range products {
		for _, id := range p.CategoryPath {
			if id == categoryID {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

func filterByPathPrefix(products []*Product, prefix []string) []*Product {
	if len(prefix) == 0 {
		return append([]*Product(nil), products...)
	}
	var out []*Product
	for _, p := range products {
		if hasPrefix(p.CategoryPath, prefix) {
			out = append(out, p)
		}
	}
	return out
}

func hasPrefix(path, prefix []string) bool {
	if len(prefix) > len(path) {
		return false
	}
	for i := range prefix {
		if path[i] != prefix[i] {
			return false
		}
	}
	return true
}

func filterBySearch(products []*Product, term string) []*Product {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return append([]*Product(nil), products...)
	}
	var out []*Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) {
			out = append(out, p)
		}
	}
	return out
}
