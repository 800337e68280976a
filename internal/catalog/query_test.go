package catalog

import (
	"testing"
)

func ids(products []*Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func sameIDs(a, b []*Product) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}

func TestProductsByCategoryMatchesAnyAncestor(t *testing.T) {
	c := mustCatalog(t)

	if got := c.ProductsByCategory(""); len(got) != c.Len() {
		t.Errorf("empty category returned %d of %d", len(got), c.Len())
	}

	pens := c.ProductsByCategory("wi-pens")
	if len(pens) != 5 {
		t.Errorf("wi-pens: got %v, want 5 products", ids(pens))
	}
	for _, p := range pens {
		if p.CategoryPath[1] != "wi-pens" {
			t.Errorf("product %d outside wi-pens: %v", p.ID, p.CategoryPath)
		}
	}

	if got := c.ProductsByCategory("acc-watch"); len(got) != 3 {
		t.Errorf("acc-watch should include the internal-node product: got %v", ids(got))
	}
	if got := c.ProductsByCategory("missing"); len(got) != 0 {
		t.Errorf("unknown category returned %v", ids(got))
	}
}

func TestPathPrefixNarrows(t *testing.T) {
	c := mustCatalog(t)

	full := PathIDs(c.Tree().GetCategoryPath("lg-bags-brief-sart-slim"))
	if got := c.ProductsByCategoryPath(nil); len(got) != c.Len() {
		t.Errorf("empty prefix returned %d of %d", len(got), c.Len())
	}

	root := c.ProductsByCategory(full[0])
	if !sameIDs(root, c.ProductsByCategoryPath(full[:1])) {
		t.Errorf("root category and single-element prefix disagree")
	}

	prev := len(root)
	for n := 1; n <= len(full); n++ {
		got := len(c.ProductsByCategoryPath(full[:n]))
		if got > prev {
			t.Errorf("prefix length %d grew the result from %d to %d", n, prev, got)
		}
		prev = got
	}
	if prev != 2 {
		t.Errorf("leaf prefix returned %d products, want 2", prev)
	}

	if got := c.ProductsByCategoryPath([]string{"lg-bags"}); len(got) != 0 {
		t.Errorf("prefix must start at the root, got %v", ids(got))
	}
}

func TestCountByCategory(t *testing.T) {
	c := mustCatalog(t)
	counts := c.CategoryCounts()
	for _, f := range c.Tree().Flatten() {
		if got, want := c.CountByCategory(f.Node.ID), counts[f.Node.ID]; got != want {
			t.Errorf("%s: CountByCategory %d, CategoryCounts %d", f.Node.ID, got, want)
		}
	}
	if counts["lg"]+counts["wi"]+counts["acc"]+counts["fr"]+counts["gift"] != c.Len() {
		t.Errorf("root counts do not add up to %d: %v", c.Len(), counts)
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	c := mustCatalog(t)

	got := c.Search("starwalker")
	if len(got) != 2 {
		t.Fatalf("starwalker: got %v", ids(got))
	}
	if got := c.Search("  "); len(got) != c.Len() {
		t.Errorf("blank search returned %d", len(got))
	}
	if got := c.Search("自動上鍊"); len(got) != 3 {
		t.Errorf("description match: got %v", ids(got))
	}
}

func TestSortPriceReversesAndIsIdempotent(t *testing.T) {
	c := mustCatalog(t)

	// Distinct prices only, so the two orders must mirror each other.
	seen := make(map[int]bool)
	var input []*Product
	for _, p := range c.Products() {
		if !seen[p.Price] {
			seen[p.Price] = true
			input = append(input, p)
		}
	}

	low := c.Sort(input, SortPriceLow)
	high := c.Sort(input, SortPriceHigh)
	for i := range low {
		if low[i].ID != high[len(high)-1-i].ID {
			t.Fatalf("price-low and price-high are not mirrored at %d", i)
		}
	}

	for _, key := range []SortKey{SortName, SortPriceLow, SortPriceHigh} {
		once := c.Sort(c.Products(), key)
		twice := c.Sort(once, key)
		if !sameIDs(once, twice) {
			t.Errorf("%s: sort is not idempotent", key)
		}
	}
}

func TestSortByNameIsStableAndDoesNotMutate(t *testing.T) {
	c := mustCatalog(t)
	input := c.Products()
	before := ids(input)

	sorted := c.Sort(input, SortName)
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Name == sorted[i].Name && sorted[i-1].ID > sorted[i].ID {
			t.Errorf("equal names out of input order: %d before %d", sorted[i-1].ID, sorted[i].ID)
		}
	}
	after := ids(input)
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("Sort mutated its input")
		}
	}
}

func TestParseSortKey(t *testing.T) {
	tests := map[string]SortKey{
		"price-low":  SortPriceLow,
		"price-high": SortPriceHigh,
		"name":       SortName,
		"":           SortName,
		"bogus":      SortName,
	}
	for in, want := range tests {
		if got := ParseSortKey(in); got != want {
			t.Errorf("ParseSortKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFindComposesFilters(t *testing.T) {
	c := mustCatalog(t)

	got := c.Find(Query{Search: "鋼筆", CategoryID: "wi", Sort: SortPriceHigh})
	if len(got) == 0 {
		t.Fatal("expected matches")
	}
	for i, p := range got {
		if p.CategoryPath[0] != "wi" {
			t.Errorf("product %d outside writing instruments", p.ID)
		}
		if i > 0 && got[i-1].Price < p.Price {
			t.Errorf("not sorted by price desc at %d", i)
		}
	}

	// Search and category are both restrictive, so their order is irrelevant.
	a := c.Sort(filterByCategory(c.Search("禮盒"), "gift"), SortName)
	b := c.Sort(filterBySearch(c.ProductsByCategory("gift"), "禮盒"), SortName)
	if !sameIDs(a, b) {
		t.Errorf("filter order changed the result: %v vs %v", ids(a), ids(b))
	}
}
