package main

import (
	"fmt"
	"net/http"
	"strconv"

	"storefront/internal/catalog"
	"storefront/internal/params"

	"github.com/go-chi/chi/v5"
)

type flatCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Href        string `json:"href"`
	Level       int    `json:"level"`
	HasChildren bool   `json:"has_children"`
}

type categoryDetail struct {
	Category     *catalog.CategoryNode `json:"category"`
	Breadcrumbs  []catalog.Crumb       `json:"breadcrumbs"`
	ProductCount int                   `json:"product_count"`
}

type productDetail struct {
	Product     *catalog.Product    `json:"product"`
	URL         string              `json:"url"`
	Tags        []catalog.TagConfig `json:"tags"`
	PrimaryTag  *catalog.TagConfig  `json:"primary_tag,omitempty"`
	Breadcrumbs []catalog.Crumb     `json:"breadcrumbs"`
}

type productPage struct {
	Products   []*catalog.Product `json:"products"`
	Pagination params.Pagination  `json:"pagination"`
}

// getCategoryTreeHandler godoc
//
//	@Summary		Category tree
//	@Description	Returns the full category tree starting at the top-level categories
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{array}	catalog.CategoryNode
//	@Router			/catalog/categories [get]
func (app *application) getCategoryTreeHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.jsonResponse(w, http.StatusOK, app.catalog.Tree().Roots()); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getFlatCategoriesHandler godoc
//
//	@Summary		Flattened categories
//	@Description	Pre-order list of every category with its depth (0 for top-level)
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{array}	flatCategory
//	@Router			/catalog/categories/flat [get]
func (app *application) getFlatCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	flat := app.catalog.Tree().Flatten()
	out := make([]flatCategory, len(flat))
	for i, f := range flat {
		out[i] = flatCategory{
			ID:          f.Node.ID,
			Name:        f.Node.Name,
			Slug:        f.Node.Slug,
			Href:        f.Node.Href,
			Level:       f.Level,
			HasChildren: f.HasChildren,
		}
	}

	if err := app.jsonResponse(w, http.StatusOK, out); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getCategoryHandler godoc
//
//	@Summary		Get category
//	@Description	Returns a category with its breadcrumb trail and the number of products beneath it
//	@Tags			catalog
//	@Produce		json
//	@Param			categoryID	path		string	true	"Category ID"
//	@Success		200			{object}	categoryDetail
//	@Failure		404			{object}	error
//	@Router			/catalog/categories/{categoryID} [get]
func (app *application) getCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "categoryID")

	node := app.catalog.Tree().FindCategoryByID(id)
	if node == nil {
		app.notFoundResponse(w, r, fmt.Errorf("category %q: %w", id, catalog.ErrUnknownCategory))
		return
	}

	detail := categoryDetail{
		Category:     node,
		Breadcrumbs:  app.catalog.Breadcrumbs(id),
		ProductCount: app.catalog.CountByCategory(id),
	}
	if err := app.jsonResponse(w, http.StatusOK, detail); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getMegaMenuHandler godoc
//
//	@Summary		Navigation menu
//	@Description	Top-level categories with their second-level columns and third-level links, each with a product count
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{array}	catalog.MenuEntry
//	@Router			/catalog/menu [get]
func (app *application) getMegaMenuHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.jsonResponse(w, http.StatusOK, app.catalog.MegaMenu()); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listCatalogProductsHandler godoc
//
//	@Summary		Query catalog products
//	@Description	Filters by search term, category (any ancestor) and category path prefix, then sorts and paginates
//	@Tags			catalog
//	@Produce		json
//	@Param			q			query		string	false	"Case-insensitive substring of name or description"
//	@Param			category	query		string	false	"Category ID matched against every level of the product's path"
//	@Param			path		query		string	false	"Comma separated category IDs, matched as a path prefix"
//	@Param			sort		query		string	false	"name, price-low or price-high"	Enums(name, price-low, price-high)
//	@Param			page		query		int		false	"Page number (default 1)"
//	@Param			limit		query		int		false	"Page size (default 24, max 60)"
//	@Success		200			{object}	productPage
//	@Router			/catalog/products [get]
func (app *application) listCatalogProductsHandler(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	pagination := params.ParsePagination(qs)

	found := app.catalog.Find(catalog.Query{
		Search:       qs.Get("q"),
		CategoryID:   qs.Get("category"),
		CategoryPath: params.SplitPath(qs.Get("path")),
		Sort:         catalog.ParseSortKey(qs.Get("sort")),
	})

	pagination.ComputeMeta(len(found))
	start, end := pagination.Window(len(found))

	page := productPage{
		Products:   found[start:end],
		Pagination: pagination,
	}
	if page.Products == nil {
		page.Products = []*catalog.Product{}
	}
	if err := app.jsonResponse(w, http.StatusOK, page); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getCatalogProductHandler godoc
//
//	@Summary		Get product by url key
//	@Description	Resolves a product detail page by its url key, case-insensitively
//	@Tags			catalog
//	@Produce		json
//	@Param			urlKey	path		string	true	"Product url key"
//	@Success		200		{object}	productDetail
//	@Failure		404		{object}	error
//	@Router			/catalog/products/{urlKey} [get]
func (app *application) getCatalogProductHandler(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "urlKey")

	p := app.catalog.GetProductByURLKey(key)
	if p == nil {
		app.notFoundResponse(w, r, fmt.Errorf("no product with url key %q", key))
		return
	}
	app.writeProductDetail(w, r, p)
}

// getCatalogProductByIDHandler godoc
//
//	@Summary		Get product by id
//	@Tags			catalog
//	@Produce		json
//	@Param			productID	path		int	true	"Product ID"
//	@Success		200			{object}	productDetail
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Router			/catalog/products/id/{productID} [get]
func (app *application) getCatalogProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid product ID"))
		return
	}

	p := app.catalog.GetProductByID(id)
	if p == nil {
		app.notFoundResponse(w, r, fmt.Errorf("no product with id %d", id))
		return
	}
	app.writeProductDetail(w, r, p)
}

func (app *application) writeProductDetail(w http.ResponseWriter, r *http.Request, p *catalog.Product) {
	detail := productDetail{
		Product:     p,
		URL:         catalog.BuildProductDetailURL(p),
		Tags:        catalog.ProductTags(p),
		Breadcrumbs: app.catalog.ProductBreadcrumbs(p),
	}
	if primary, ok := catalog.PrimaryTag(p); ok {
		detail.PrimaryTag = &primary
	}

	if err := app.jsonResponse(w, http.StatusOK, detail); err != nil {
		app.internalServerError(w, r, err)
	}
}
