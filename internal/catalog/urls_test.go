package catalog

import (
	"strings"
	"testing"
)

func TestTruncateCategorySegments(t *testing.T) {
	tests := []struct {
		href string
		want string
	}{
		{"leather-goods/bags/briefcases/sartorial/slim", "leather-goods/bags/briefcases"},
		{"leather-goods/travel/luggage/nightflight/cabin-55", "leather-goods/travel"},
		{"leather-goods/small-leather-goods/wallets/sartorial/6cc", "leather-goods/small-leather-goods"},
		{"leather-goods", "leather-goods"},
		{"writing-instruments/pens/fountain-pens/meisterstuck/146", "writing-instruments/pens/fountain-pens"},
		{"writing-instruments/refills/notebooks/a5/lined", "writing-instruments/refills/notebooks"},
		{"writing-instruments/refills/ink/bottles/50ml", "writing-instruments/refills/ink/bottles"},
		{"writing-instruments/refills", "writing-instruments/refills"},
		{"writing-instruments/gift-wrap/boxes", "writing-instruments/gift-wrap"},
		{"accessories/watches/automatic/1858/0124", "accessories/watches"},
		{"accessories/audio/headphones/mb-01/black", "accessories/audio/headphones"},
		{"accessories/belts/reversible/35mm/pin-buckle", "accessories/belts"},
		{"fragrance/men/eau-de-toilette/legend/100ml", "fragrance/men/eau-de-toilette"},
		{"fragrance/men", "fragrance/men"},
		{"gifts/sets/pen-sets/holiday/2024", "gifts/sets/pen-sets/holiday"},
		{"gifts/sets/pen-sets/holiday", "gifts/sets/pen-sets/holiday"},
	}
	for _, tc := range tests {
		got := strings.Join(TruncateCategorySegments(strings.Split(tc.href, "/")), "/")
		if got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.href, got, tc.want)
		}
	}
}

func TestBuildProductDetailURL(t *testing.T) {
	c := mustCatalog(t)

	slim := c.ProductsByCategory("lg-bags-brief-sart-slim")[0]
	want := "/products/leather-goods/bags/briefcases/" + slim.URLKey
	if got := BuildProductDetailURL(slim); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	for _, p := range c.Products() {
		u := BuildProductDetailURL(p)
		if !strings.HasPrefix(u, RootHref+"/") {
			t.Errorf("product %d: %q lacks %s prefix", p.ID, u, RootHref)
		}
		if !strings.HasSuffix(u, "/"+p.URLKey) {
			t.Errorf("product %d: %q does not end with its url key", p.ID, u)
		}
		if got := c.GetProductByURLKey(p.URLKey); got != p {
			t.Errorf("product %d: url key lookup returned %v", p.ID, got)
		}
		if got := c.ResolveDetailPath(u); got != p {
			t.Errorf("product %d: %q resolved to %v", p.ID, u, got)
		}
	}

	if BuildProductDetailURL(nil) != "" {
		t.Error("nil product should produce an empty URL")
	}
}

func TestResolveDetailPathIgnoresPrefix(t *testing.T) {
	c := mustCatalog(t)
	p := c.GetProductByID(12)
	if got := c.ResolveDetailPath("/products/anything/at/all/" + strings.ToUpper(p.URLKey) + "/"); got != p {
		t.Errorf("got %v, want product %d", got, p.ID)
	}
	if got := c.ResolveDetailPath("/products/leather-goods/bags"); got != nil {
		t.Errorf("category path resolved to product %d", got.ID)
	}
}
