package catalog

import (
	"errors"
	"strings"
	"testing"
)

func mustCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Build(Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return c
}

func TestURLKeysAreUnique(t *testing.T) {
	c := mustCatalog(t)
	seen := make(map[string]int)
	for _, p := range c.Products() {
		if p.URLKey == "" {
			t.Errorf("product %d has empty url key", p.ID)
		}
		if p.Slug != p.URLKey {
			t.Errorf("product %d: slug %q != url key %q", p.ID, p.Slug, p.URLKey)
		}
		if other, ok := seen[strings.ToLower(p.URLKey)]; ok {
			t.Errorf("url key %q shared by %d and %d", p.URLKey, other, p.ID)
		}
		seen[strings.ToLower(p.URLKey)] = p.ID
	}
}

func TestCategoryPathRoundTrip(t *testing.T) {
	c := mustCatalog(t)
	for _, p := range c.Products() {
		want := PathIDs(c.Tree().GetCategoryPath(p.CategoryID))
		if len(want) == 0 {
			t.Fatalf("product %d: category %q not in tree", p.ID, p.CategoryID)
		}
		if strings.Join(p.CategoryPath, ",") != strings.Join(want, ",") {
			t.Errorf("product %d: path %v, tree says %v", p.ID, p.CategoryPath, want)
		}
		if len(p.CategoryNames) != len(want) || len(p.CategorySlugs) != len(want) {
			t.Errorf("product %d: names/slugs not parallel to path", p.ID)
		}
	}
}

func TestDeriveURLKey(t *testing.T) {
	tests := []struct {
		slug, image, want string
	}{
		{"146", "mb146g-gold", "146mb146g"},
		{"check-in-69", "NF69T-black", "69nf69t"},
		{"0124", "w1858a-bronze", "0124w1858a"},
		{"slim", "sart-slim-brief-black", "sartslimbriefblack"},
		{"black", "MB01 Headphones_Black", "mb01headphonesblack"},
	}
	for _, tc := range tests {
		if got := deriveURLKey(tc.slug, tc.image); got != tc.want {
			t.Errorf("deriveURLKey(%q, %q) = %q, want %q", tc.slug, tc.image, got, tc.want)
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	a := mustCatalog(t).Products()
	b := mustCatalog(t).Products()
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].URLKey != b[i].URLKey || a[i].InStock != b[i].InStock || len(a[i].Tags) != len(b[i].Tags) {
			t.Fatalf("product %d differs between builds", a[i].ID)
		}
		for j := range a[i].Tags {
			if a[i].Tags[j] != b[i].Tags[j] {
				t.Fatalf("product %d tags differ: %v vs %v", a[i].ID, a[i].Tags, b[i].Tags)
			}
		}
	}
}

func TestPromotionFields(t *testing.T) {
	c := mustCatalog(t)
	for _, p := range c.Products() {
		onSale := containsTag(p.Tags, TagSale)
		if onSale != (p.OriginalPrice != nil) {
			t.Errorf("product %d: sale=%v original=%v", p.ID, onSale, p.OriginalPrice)
			continue
		}
		if !onSale {
			continue
		}
		if *p.OriginalPrice <= p.Price {
			t.Errorf("product %d: original %d <= price %d", p.ID, *p.OriginalPrice, p.Price)
		}
		if *p.DiscountPercent < 1 {
			t.Errorf("product %d: discount %d", p.ID, *p.DiscountPercent)
		}
	}

	orig, pct := promotion(1000)
	if orig != 1300 || pct != 23 {
		t.Errorf("promotion(1000) = %d, %d; want 1300, 23", orig, pct)
	}
}

func TestBuildRejectsUnmarkableSalePrice(t *testing.T) {
	// The fourth template lands on the sale rotation.
	templates := []ProductTemplate{
		{Name: "A", Price: 100, CategoryID: "lg-bags-brief", Image: "brief-a"},
		{Name: "B", Price: 100, CategoryID: "lg-bags-brief", Image: "brief-b"},
		{Name: "C", Price: 100, CategoryID: "lg-bags-brief", Image: "brief-c"},
		{Name: "D", Price: 1, CategoryID: "lg-bags-brief", Image: "brief-d"},
	}
	_, err := Build(Options{Templates: templates})
	if !errors.Is(err, ErrInvalidPromotion) {
		t.Fatalf("got %v, want ErrInvalidPromotion", err)
	}

	_, err = Build(Options{Templates: []ProductTemplate{
		{Name: "Tagged", Price: 1, CategoryID: "lg-bags-brief", Image: "brief-x", Tags: []string{"sale"}},
	}})
	if !errors.Is(err, ErrInvalidPromotion) {
		t.Fatalf("explicit sale tag: got %v, want ErrInvalidPromotion", err)
	}

	templates[3].Price = 2
	if _, err := Build(Options{Templates: templates}); err != nil {
		t.Fatalf("price 2 on sale: %v", err)
	}
}

func TestBuildFailsOnUnknownCategory(t *testing.T) {
	_, err := Build(Options{Templates: []ProductTemplate{
		{Name: "Ghost", Price: 100, CategoryID: "nope", Image: "ghost"},
	}})
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("got %v, want ErrUnknownCategory", err)
	}
}

func TestBuildFailsOnURLKeyCollision(t *testing.T) {
	_, err := Build(Options{Templates: []ProductTemplate{
		{Name: "A", Price: 100, CategoryID: "wi-pens-fp-mst-146", Image: "mb146-gold"},
		{Name: "B", Price: 100, CategoryID: "wi-pens-fp-mst-146", Image: "mb146-black"},
	}})
	if !errors.Is(err, ErrDuplicateURLKey) {
		t.Fatalf("got %v, want ErrDuplicateURLKey", err)
	}
}

func TestBuildValidatesTemplates(t *testing.T) {
	_, err := Build(Options{Templates: []ProductTemplate{
		{Name: "", Price: 0, CategoryID: "lg", Image: "x"},
	}})
	if err == nil {
		t.Fatal("expected validation error")
	}

	_, err = Build(Options{Templates: []ProductTemplate{
		{Name: "Bad tag", Price: 10, CategoryID: "lg", Image: "x", Tags: []string{"clearance"}},
	}})
	if err == nil || !strings.Contains(err.Error(), "clearance") {
		t.Fatalf("got %v, want unknown tag error", err)
	}
}

func TestLookups(t *testing.T) {
	c := mustCatalog(t)
	for _, p := range c.Products() {
		if got := c.GetProductByID(p.ID); got != p {
			t.Errorf("GetProductByID(%d) mismatch", p.ID)
		}
		if got := c.GetProductByURLKey(strings.ToUpper(p.URLKey)); got != p {
			t.Errorf("GetProductByURLKey(%q) mismatch", strings.ToUpper(p.URLKey))
		}
	}
	if c.GetProductByID(0) != nil || c.GetProductByURLKey("missing") != nil {
		t.Error("expected nil for unknown lookups")
	}
}

func TestStaticImages(t *testing.T) {
	got := StaticImages{BaseURL: "https://cdn.example.com/img/"}.ImageURL("mb146g-gold")
	if got != "https://cdn.example.com/img/mb146g-gold.jpg" {
		t.Errorf("got %q", got)
	}
}
