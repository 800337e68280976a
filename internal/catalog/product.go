package catalog

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrUnknownCategory  = errors.New("unknown category id")
	ErrDuplicateURLKey  = errors.New("duplicate product url key")
	// ErrInvalidPromotion means a sale price is too low to mark up.
	ErrInvalidPromotion = errors.New("promotion original price not above price")
)

var (
	digitRun = regexp.MustCompile(`[0-9]+`)
	nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]+`)
)

// Product is a storefront catalog entry. CategoryPath, CategoryNames and
// CategorySlugs are parallel and run from the root to CategoryID.
type Product struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Price           int       `json:"price"`
	OriginalPrice   *int      `json:"original_price,omitempty"`
	DiscountPercent *int      `json:"discount_percent,omitempty"`
	CategoryID      string    `json:"category_id"`
	CategoryPath    []string  `json:"category_path"`
	CategoryNames   []string  `json:"category_names"`
	CategorySlugs   []string  `json:"category_slugs"`
	CategoryHref    string    `json:"category_href"`
	URLKey          string    `json:"url_key"`
	Slug            string    `json:"slug"`
	InStock         bool      `json:"in_stock"`
	Tags            []TagType `json:"tags"`
	Image           string    `json:"image"`
	Description     string    `json:"description"`
	Rating          float64   `json:"rating"`
	Reviews         int       `json:"reviews"`
}

// ProductTemplate is the authored input a Product is generated from.
type ProductTemplate struct {
	Name        string   `validate:"required"`
	Price       int      `validate:"gt=0"`
	CategoryID  string   `validate:"required"`
	Image       string   `validate:"required"`
	Description string
	Tags        []string `validate:"dive,required"`
}

// ImageResolver turns an image token into a fetchable URL.
type ImageResolver interface {
	ImageURL(token string) string
}

// DefaultImageBaseURL is where the storefront serves bundled product images.
const DefaultImageBaseURL = "/images/products"

// StaticImages serves tokens from a path prefix.
type StaticImages struct {
	BaseURL string
}

func (s StaticImages) ImageURL(token string) string {
	return strings.TrimSuffix(s.BaseURL, "/") + "/" + token + ".jpg"
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// generateProducts builds one Product per template. It fails on the first
// template that does not validate or that references a category missing
// from the tree, and on any url key collision.
func generateProducts(tree *Tree, templates []ProductTemplate, images ImageResolver) ([]*Product, error) {
	if images == nil {
		images = StaticImages{BaseURL: DefaultImageBaseURL}
	}

	products := make([]*Product, 0, len(templates))
	seen := make(map[string]int, len(templates))

	for i, tpl := range templates {
		if err := validate.Struct(tpl); err != nil {
			return nil, fmt.Errorf("template %d (%q): %w", i, tpl.Name, err)
		}

		path := tree.GetCategoryPath(tpl.CategoryID)
		if path == nil {
			return nil, fmt.Errorf("template %d (%q): %w: %q", i, tpl.Name, ErrUnknownCategory, tpl.CategoryID)
		}

		p, err := buildProduct(i, tpl, path, images)
		if err != nil {
			return nil, fmt.Errorf("template %d (%q): %w", i, tpl.Name, err)
		}

		if prev, dup := seen[p.URLKey]; dup {
			return nil, fmt.Errorf("%w: %q shared by products %d and %d", ErrDuplicateURLKey, p.URLKey, prev, p.ID)
		}
		seen[p.URLKey] = p.ID
		products = append(products, p)
	}
	return products, nil
}

func buildProduct(index int, tpl ProductTemplate, path []*CategoryNode, images ImageResolver) (*Product, error) {
	n := index + 1
	inStock := n%11 != 0

	tags := assignTags(index, inStock)
	for _, raw := range tpl.Tags {
		t, err := parseTagType(raw)
		if err != nil {
			return nil, err
		}
		if !containsTag(tags, t) {
			tags = append(tags, t)
		}
	}

	leaf := path[len(path)-1]
	key := deriveURLKey(leaf.Slug, tpl.Image)

	p := &Product{
		ID:            n,
		Name:          tpl.Name,
		Price:         tpl.Price,
		CategoryID:    tpl.CategoryID,
		CategoryPath:  make([]string, len(path)),
		CategoryNames: make([]string, len(path)),
		CategorySlugs: make([]string, len(path)),
		CategoryHref:  leaf.Href,
		URLKey:        key,
		Slug:          key,
		InStock:       inStock,
		Tags:          tags,
		Image:         images.ImageURL(tpl.Image),
		Description:   tpl.Description,
		Rating:        4.0 + float64(n%10)/10,
		Reviews:       (n*37)%500 + 5,
	}
	for i, node := range path {
		p.CategoryPath[i] = node.ID
		p.CategoryNames[i] = node.Name
		p.CategorySlugs[i] = node.Slug
	}

	if containsTag(tags, TagSale) {
		orig, pct := promotion(tpl.Price)
		if orig <= tpl.Price {
			return nil, fmt.Errorf("%w: price %d", ErrInvalidPromotion, tpl.Price)
		}
		p.OriginalPrice = &orig
		p.DiscountPercent = &pct
	}
	return p, nil
}

// promotion marks price up by 30% and reports the resulting whole-number discount.
func promotion(price int) (originalPrice, discountPercent int) {
	originalPrice = int(math.Round(float64(price) * 1.3))
	discountPercent = int(math.Round(float64(originalPrice-price) / float64(originalPrice) * 100))
	if discountPercent < 1 {
		discountPercent = 1
	}
	return originalPrice, discountPercent
}

// deriveURLKey combines the first digit run of the category slug with the
// first dash-delimited token of the image. Without digits the whole image
// token is used, stripped to alphanumerics.
func deriveURLKey(categorySlug, image string) string {
	if digits := digitRun.FindString(categorySlug); digits != "" {
		base, _, _ := strings.Cut(image, "-")
		return strings.ToLower(digits + base)
	}
	return strings.ToLower(nonAlnum.ReplaceAllString(image, ""))
}

func containsTag(tags []TagType, t TagType) bool {
	for _, x := range tags {
		if x == t {
			return true
		}
	}
	return false
}
