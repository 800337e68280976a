package products

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Category tables in lookup order. The first one carries the legacy
// misspelling and wins when both know a slug.
var categoryTables = []string{
	"backend_products_cetegory",
	"backend_product_categories",
}

// Store is the data access abstraction for the storefront listing.
// Implemented by Repository (which uses pgxpool.Pool).
type Store interface {
	// ResolveCategoryID returns nil when no category table knows slug.
	ResolveCategoryID(ctx context.Context, slug string) (*int64, error)
	ListVisibleProducts(ctx context.Context, f ListFilter) ([]*ProductRow, error)

	// Batch lookups for one page of product ids
	PrimaryPhotos(ctx context.Context, productIDs []int64) (map[int64]string, error)
	Inventory(ctx context.Context, productIDs []int64) ([]*InventoryRow, error)
	Prices(ctx context.Context, productIDs []int64) ([]*PriceRow, error)
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Store {
	return &Repository{db: db}
}

// ------------------------------------
// Categories
// ------------------------------------
func (r *Repository) ResolveCategoryID(ctx context.Context, slug string) (*int64, error) {
	for _, table := range categoryTables {
		query := fmt.Sprintf(`SELECT id FROM %s WHERE slug = $1 LIMIT 1`, table)

		var id int64
		err := r.db.QueryRow(ctx, query, slug).Scan(&id)
		switch {
		case err == nil:
			return &id, nil
		case errors.Is(err, pgx.ErrNoRows), isUndefinedTable(err):
			continue
		default:
			return nil, fmt.Errorf("resolve category %q in %s: %w", slug, table, err)
		}
	}
	return nil, nil
}

// isUndefinedTable lets the lookup skip a category table that a
// deployment has already dropped.
func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "42P01"
}

// ------------------------------------
// Products
// ------------------------------------
const listVisibleProductsSQL = `
SELECT id, name, title, slug, route_slug, visibility,
       COALESCE(tags, '{}'),
       promotion_label, promotion_bg_color, promotion_text_color,
       tag_bg_color, tag_text_color,
       COALESCE(auto_hide_when_oos, false),
       COALESCE(enable_preorder, false),
       preorder_start_at, preorder_end_at
FROM backend_products
WHERE visibility = 'visible'
  AND ($1::bigint IS NULL OR category_id = $1 OR $1 = ANY(category_ids))
  AND ($2::text = '' OR name ILIKE $2 OR slug ILIKE $2)
ORDER BY id DESC
LIMIT $3 OFFSET $4
`

// listArgs binds f to the placeholders of listVisibleProductsSQL.
func listArgs(f ListFilter) []any {
	return []any{f.CategoryID, searchPattern(f.Search), f.Limit, f.Offset}
}

// searchPattern is the ILIKE argument for a search term; empty disables
// the name/slug filter.
func searchPattern(search string) string {
	s := strings.TrimSpace(search)
	if s == "" {
		return ""
	}
	return "%" + escapeLike(s) + "%"
}

func (r *Repository) ListVisibleProducts(ctx context.Context, f ListFilter) ([]*ProductRow, error) {
	rows, err := r.db.Query(ctx, listVisibleProductsSQL, listArgs(f)...)
	if err != nil {
		return nil, fmt.Errorf("list visible products: %w", err)
	}
	defer rows.Close()

	var out []*ProductRow
	for rows.Next() {
		p := &ProductRow{}
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Title, &p.Slug, &p.RouteSlug, &p.Visibility,
			&p.Tags,
			&p.PromotionLabel, &p.PromotionBgColor, &p.PromotionTextColor,
			&p.TagBgColor, &p.TagTextColor,
			&p.AutoHideWhenOOS,
			&p.EnablePreorder,
			&p.PreorderStartAt, &p.PreorderEndAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

// escapeLike makes user input match literally inside an ILIKE pattern.
// Postgres uses backslash as the default LIKE escape character.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// ------------------------------------
// Batch lookups
// ------------------------------------

// PrimaryPhotos returns one url per product, preferring the photo flagged
// primary and then the lowest sort order.
func (r *Repository) PrimaryPhotos(ctx context.Context, productIDs []int64) (map[int64]string, error) {
	query := `
SELECT DISTINCT ON (product_id) product_id, url
FROM backend_product_photos
WHERE product_id = ANY($1) AND url IS NOT NULL AND url <> ''
ORDER BY product_id, is_primary DESC NULLS LAST, sort_order ASC NULLS LAST, id ASC
`
	rows, err := r.db.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list primary photos: %w", err)
	}
	defer rows.Close()

	out := make(map[int64]string, len(productIDs))
	for rows.Next() {
		var (
			id  int64
			url string
		)
		if err := rows.Scan(&id, &url); err != nil {
			return nil, fmt.Errorf("scan photo: %w", err)
		}
		out[id] = url
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

func (r *Repository) Inventory(ctx context.Context, productIDs []int64) ([]*InventoryRow, error) {
	query := `
SELECT product_id, COALESCE(current_stock, 0), COALESCE(low_stock_threshold, 0)
FROM backend_product_inventory
WHERE product_id = ANY($1)
`
	rows, err := r.db.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	var out []*InventoryRow
	for rows.Next() {
		inv := &InventoryRow{}
		if err := rows.Scan(&inv.ProductID, &inv.CurrentStock, &inv.LowStockThreshold); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		out = append(out, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

func (r *Repository) Prices(ctx context.Context, productIDs []int64) ([]*PriceRow, error) {
	query := `
SELECT product_id, sku_key, sale_price::float8, compare_at_price::float8
FROM backend_product_prices
WHERE product_id = ANY($1)
`
	rows, err := r.db.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list prices: %w", err)
	}
	defer rows.Close()

	var out []*PriceRow
	for rows.Next() {
		p := &PriceRow{}
		if err := rows.Scan(&p.ProductID, &p.SKUKey, &p.SalePrice, &p.CompareAtPrice); err != nil {
			return nil, fmt.Errorf("scan price: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}
