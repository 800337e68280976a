package products

import "time"

// ListFilter narrows the storefront product page. A nil CategoryID means
// no category filter and an empty Search means no text filter.
type ListFilter struct {
	CategoryID *int64
	Search     string
	Limit      int
	Offset     int
}

// ProductRow is one visible row of backend_products.
type ProductRow struct {
	ID                 int64
	Name               *string
	Title              *string
	Slug               *string
	RouteSlug          *string
	Visibility         string
	Tags               []string
	PromotionLabel     *string
	PromotionBgColor   *string
	PromotionTextColor *string
	TagBgColor         *string
	TagTextColor       *string
	AutoHideWhenOOS    bool
	EnablePreorder     bool
	PreorderStartAt    *time.Time
	PreorderEndAt      *time.Time
}

type InventoryRow struct {
	ProductID         int64
	CurrentStock      int
	LowStockThreshold int
}

// PriceRow is a base price when SKUKey is nil and a variant price otherwise.
type PriceRow struct {
	ProductID      int64
	SKUKey         *string
	SalePrice      *float64
	CompareAtPrice *float64
}

// Item is one product card returned by the storefront listing endpoint.
type Item struct {
	ID                 int64      `json:"id"`
	Name               string     `json:"name"`
	Slug               string     `json:"slug"`
	Href               string     `json:"href"`
	Image              string     `json:"image"`
	Price              *float64   `json:"price"`
	OriginalPrice      *float64   `json:"originalPrice"`
	InStock            bool       `json:"inStock"`
	Visibility         string     `json:"visibility"`
	Tags               []string   `json:"tags"`
	PromotionLabel     *string    `json:"promotionLabel"`
	PromotionBgColor   *string    `json:"promotionBgColor"`
	PromotionTextColor *string    `json:"promotionTextColor"`
	TagBgColor         *string    `json:"tagBgColor"`
	TagTextColor       *string    `json:"tagTextColor"`
	IsLowStock         bool       `json:"isLowStock"`
	AutoHideWhenOOS    bool       `json:"autoHideWhenOOS"`
	EnablePreorder     bool       `json:"enablePreorder"`
	PreorderStartAt    *time.Time `json:"preorderStartAt"`
	PreorderEndAt      *time.Time `json:"preorderEndAt"`
	PreorderActive     bool       `json:"preorderActive"`
	PreorderEnded      bool       `json:"preorderEnded"`
	ForceSoldOutTag    bool       `json:"forceSoldOutTag"`
}

type ListResult struct {
	Items []*Item `json:"items"`
}
