package catalog

import (
	"strings"
)

// truncationRule keeps the first Keep segments of a category path whose
// leading segments equal Prefix. A trailing "*" in Prefix matches any
// segment at that position.
type truncationRule struct {
	Prefix []string
	Keep   int
}

// detailPathRules lists the per-branch depth of product detail URLs, most
// specific prefix first. Branches not listed keep every segment except a
// purely numeric last one.
var detailPathRules = []truncationRule{
	{Prefix: []string{"leather-goods", "travel"}, Keep: 2},
	{Prefix: []string{"leather-goods", "bags"}, Keep: 3},
	{Prefix: []string{"leather-goods", "*"}, Keep: 2},
	{Prefix: []string{"writing-instruments", "pens"}, Keep: 3},
	{Prefix: []string{"writing-instruments", "refills", "notebooks"}, Keep: 3},
	{Prefix: []string{"writing-instruments", "refills", "*"}, Keep: 4},
	{Prefix: []string{"writing-instruments", "*"}, Keep: 2},
	{Prefix: []string{"accessories", "watches"}, Keep: 2},
	{Prefix: []string{"accessories", "audio"}, Keep: 3},
	{Prefix: []string{"accessories", "*"}, Keep: 2},
	{Prefix: []string{"fragrance", "*"}, Keep: 3},
}

func (r truncationRule) matches(segments []string) bool {
	if len(segments) < len(r.Prefix) {
		// A shallower path still belongs to the branch when every segment
		// it has agrees and only wildcards are left over.
		for i := len(segments); i < len(r.Prefix); i++ {
			if r.Prefix[i] != "*" {
				return false
			}
		}
	}
	for i, want := range r.Prefix {
		if i >= len(segments) {
			break
		}
		if want != "*" && segments[i] != want {
			return false
		}
	}
	return true
}

// TruncateCategorySegments applies the detail URL depth policy to the
// segments of a category href below /products.
func TruncateCategorySegments(segments []string) []string {
	for _, rule := range detailPathRules {
		if rule.matches(segments) {
			keep := rule.Keep
			if keep > len(segments) {
				keep = len(segments)
			}
			return segments[:keep]
		}
	}
	if n := len(segments); n > 0 && isNumeric(segments[n-1]) {
		return segments[:n-1]
	}
	return segments
}

// BuildProductDetailURL renders the storefront detail path of p. The
// category prefix is cosmetic; pages resolve by the trailing url key.
func BuildProductDetailURL(p *Product) string {
	if p == nil {
		return ""
	}
	rest := strings.TrimPrefix(p.CategoryHref, RootHref)
	rest = strings.Trim(rest, "/")

	var segments []string
	if rest != "" {
		segments = strings.Split(rest, "/")
	}
	segments = TruncateCategorySegments(segments)

	var b strings.Builder
	b.WriteString(RootHref)
	b.WriteByte('/')
	for _, s := range segments {
		b.WriteString(s)
		b.WriteByte('/')
	}
	b.WriteString(p.URLKey)
	return b.String()
}

// URLKeyFromDetailPath returns the last segment of a detail path.
func URLKeyFromDetailPath(path string) string {
	path = strings.TrimRight(path, "/")
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// ResolveDetailPath finds the product a detail URL points at, ignoring the
// category prefix entirely.
func (c *Catalog) ResolveDetailPath(path string) *Product {
	return c.GetProductByURLKey(URLKeyFromDetailPath(path))
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
