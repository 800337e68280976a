package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Catalog is the generated product list together with the tree it was
// generated from. It is built once and never mutated afterwards, so it is
// safe to share between goroutines.
type Catalog struct {
	tree     *Tree
	products []*Product
	byID     map[int]*Product
	byURLKey map[string]*Product
	locale   language.Tag
}

// Options configures Build. Zero values pick the storefront defaults.
type Options struct {
	Categories []*CategoryNode
	Templates  []ProductTemplate
	Images     ImageResolver
	Locale     language.Tag
}

// Build validates the category tree and generates every product.
func Build(opts Options) (*Catalog, error) {
	roots := opts.Categories
	if roots == nil {
		roots = DefaultCategories()
	}
	templates := opts.Templates
	if templates == nil {
		templates = DefaultTemplates()
	}
	locale := opts.Locale
	if locale == language.Und {
		locale = language.TraditionalChinese
	}

	tree, err := NewTree(roots)
	if err != nil {
		return nil, err
	}

	products, err := generateProducts(tree, templates, opts.Images)
	if err != nil {
		return nil, fmt.Errorf("generate catalog: %w", err)
	}

	c := &Catalog{
		tree:     tree,
		products: products,
		byID:     make(map[int]*Product, len(products)),
		byURLKey: make(map[string]*Product, len(products)),
		locale:   locale,
	}
	for _, p := range products {
		c.byID[p.ID] = p
		c.byURLKey[strings.ToLower(p.URLKey)] = p
	}
	return c, nil
}

func (c *Catalog) Tree() *Tree {
	return c.tree
}

// Products returns a copy of the full catalog in generation order.
func (c *Catalog) Products() []*Product {
	return append([]*Product(nil), c.products...)
}

func (c *Catalog) Len() int {
	return len(c.products)
}

// GetProductByID returns nil when no product has id.
func (c *Catalog) GetProductByID(id int) *Product {
	return c.byID[id]
}

// GetProductByURLKey matches key case-insensitively. It returns nil when no
// product carries key.
func (c *Catalog) GetProductByURLKey(key string) *Product {
	return c.byURLKey[strings.ToLower(strings.TrimSpace(key))]
}
