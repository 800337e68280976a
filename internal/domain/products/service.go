package products

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// PlaceholderImage is a transparent 1x1 gif used when a product has no photo.
const PlaceholderImage = "data:image/gif;base64,R0lGODlhAQABAIAAAAAAAP///yH5BAEAAAAALAAAAAABAAEAAAIBRAA7"

const (
	DefaultLimit = 40
	MaxLimit     = 100
)

var (
	// ErrMisconfigured is returned when the service has no database behind it.
	ErrMisconfigured = errors.New("server misconfigured")
	// ErrListProducts wraps failures of the main product query.
	ErrListProducts = errors.New("failed to list products")
)

type ListQuery struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}

type Service struct {
	store  Store
	logger *zap.SugaredLogger
	now    func() time.Time
}

// NewService accepts a nil store; List then reports ErrMisconfigured.
func NewService(store Store, logger *zap.SugaredLogger) *Service {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Service{store: store, logger: logger, now: time.Now}
}

// List returns one page of visible products with price, stock and
// preorder state resolved.
func (s *Service) List(ctx context.Context, q ListQuery) (*ListResult, error) {
	if s.store == nil {
		return nil, ErrMisconfigured
	}
	q = clampQuery(q)

	filter := ListFilter{Search: q.Search, Limit: q.Limit, Offset: q.Offset}
	if slug := lastSegment(q.Category); slug != "" {
		id, err := s.store.ResolveCategoryID(ctx, slug)
		if err != nil {
			return nil, err
		}
		if id == nil {
			s.logger.Debugw("category not found, listing without category filter", "category", q.Category)
		}
		filter.CategoryID = id
	}

	rows, err := s.store.ListVisibleProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListProducts, err)
	}
	if len(rows) == 0 {
		return &ListResult{Items: []*Item{}}, nil
	}

	ids := make([]int64, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}

	var (
		photos    map[int64]string
		inventory []*InventoryRow
		prices    []*PriceRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		photos, err = s.store.PrimaryPhotos(gctx, ids)
		return err
	})
	g.Go(func() error {
		var err error
		inventory, err = s.store.Inventory(gctx, ids)
		return err
	})
	g.Go(func() error {
		var err error
		prices, err = s.store.Prices(gctx, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	invByProduct := make(map[int64][]*InventoryRow, len(ids))
	for _, inv := range inventory {
		invByProduct[inv.ProductID] = append(invByProduct[inv.ProductID], inv)
	}
	pricesByProduct := make(map[int64][]*PriceRow, len(ids))
	for _, p := range prices {
		pricesByProduct[p.ProductID] = append(pricesByProduct[p.ProductID], p)
	}

	now := s.now()
	items := make([]*Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, buildItem(r, photos[r.ID], invByProduct[r.ID], pricesByProduct[r.ID], now))
	}
	return &ListResult{Items: items}, nil
}

func clampQuery(q ListQuery) ListQuery {
	switch {
	case q.Limit <= 0:
		q.Limit = DefaultLimit
	case q.Limit > MaxLimit:
		q.Limit = MaxLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	q.Search = strings.TrimSpace(q.Search)
	return q
}

// lastSegment picks the category slug out of a path like "a/b/c".
func lastSegment(path string) string {
	parts := strings.Split(strings.Trim(strings.TrimSpace(path), "/"), "/")
	return strings.TrimSpace(parts[len(parts)-1])
}

func buildItem(r *ProductRow, photo string, inventory []*InventoryRow, prices []*PriceRow, now time.Time) *Item {
	slug := firstNonEmpty(r.Slug, r.RouteSlug)
	image := photo
	if image == "" {
		image = PlaceholderImage
	}
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}

	price, original := resolvePrices(prices)
	inStock, lowStock := stockState(inventory)
	active, ended := preorderState(r.EnablePreorder, r.PreorderStartAt, r.PreorderEndAt, now)

	return &Item{
		ID:                 r.ID,
		Name:               firstNonEmpty(r.Name, r.Title, r.Slug),
		Slug:               slug,
		Href:               "/product/" + slug,
		Image:              image,
		Price:              price,
		OriginalPrice:      original,
		InStock:            inStock,
		Visibility:         r.Visibility,
		Tags:               tags,
		PromotionLabel:     r.PromotionLabel,
		PromotionBgColor:   r.PromotionBgColor,
		PromotionTextColor: r.PromotionTextColor,
		TagBgColor:         r.TagBgColor,
		TagTextColor:       r.TagTextColor,
		IsLowStock:         lowStock,
		AutoHideWhenOOS:    r.AutoHideWhenOOS,
		EnablePreorder:     r.EnablePreorder,
		PreorderStartAt:    r.PreorderStartAt,
		PreorderEndAt:      r.PreorderEndAt,
		PreorderActive:     active,
		PreorderEnded:      ended,
		ForceSoldOutTag:    !active && lowStock,
	}
}

// resolvePrices takes the base row's prices when set, otherwise the lowest
// variant sale price and the highest variant compare-at price.
func resolvePrices(rows []*PriceRow) (price, original *float64) {
	var base *PriceRow
	var minSale, maxCompare *float64
	for _, p := range rows {
		if p.SKUKey == nil {
			if base == nil {
				base = p
			}
			continue
		}
		if p.SalePrice != nil && (minSale == nil || *p.SalePrice < *minSale) {
			minSale = p.SalePrice
		}
		if p.CompareAtPrice != nil && (maxCompare == nil || *p.CompareAtPrice > *maxCompare) {
			maxCompare = p.CompareAtPrice
		}
	}

	price, original = minSale, maxCompare
	if base != nil && base.SalePrice != nil {
		price = base.SalePrice
	}
	if base != nil && base.CompareAtPrice != nil {
		original = base.CompareAtPrice
	}
	return price, original
}

// stockState reports whether any row has stock and whether every row is at
// or below its low-stock threshold. No rows is neither in stock nor low.
func stockState(rows []*InventoryRow) (inStock, lowStock bool) {
	if len(rows) == 0 {
		return false, false
	}
	lowStock = true
	for _, inv := range rows {
		if inv.CurrentStock > 0 {
			inStock = true
		}
		if inv.CurrentStock > inv.LowStockThreshold {
			lowStock = false
		}
	}
	return inStock, lowStock
}

// preorderState evaluates the window against now. A window that has not
// opened yet is neither active nor ended.
func preorderState(enabled bool, start, end *time.Time, now time.Time) (active, ended bool) {
	if !enabled {
		return false, false
	}
	started := start == nil || !now.Before(*start)
	notOver := end == nil || !now.After(*end)
	return started && notOver, end != nil && now.After(*end)
}

func firstNonEmpty(values ...*string) string {
	for _, v := range values {
		if v != nil && strings.TrimSpace(*v) != "" {
			return *v
		}
	}
	return ""
}
