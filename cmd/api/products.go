package main

import (
	"errors"
	"net/http"

	"storefront/internal/domain/products"
	"storefront/internal/params"
)

// listFrontendProductsHandler godoc
//
//	@Summary		List storefront products
//	@Description	Visible products ordered by id descending, with price, stock and preorder state resolved. Errors use a bare {"error": "..."} body.
//	@Tags			frontend
//	@Produce		json
//	@Param			category	query		string	false	"Category path, the last segment is matched by slug"
//	@Param			q			query		string	false	"Case-insensitive substring of name or slug"
//	@Param			limit		query		int		false	"Page size (1-100, default 40)"
//	@Param			offset		query		int		false	"Rows to skip (default 0)"
//	@Success		200			{object}	products.ListResult
//	@Failure		500			{object}	map[string]string
//	@Router			/frontend/products [get]
func (app *application) listFrontendProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := params.ParseListing(r.URL.Query())

	res, err := app.listing.List(r.Context(), products.ListQuery{
		Category: q.Category,
		Search:   q.Search,
		Limit:    q.Limit,
		Offset:   q.Offset,
	})
	if err != nil {
		switch {
		case errors.Is(err, products.ErrMisconfigured):
			app.frontendError(w, r, "Server misconfigured", err)
		case errors.Is(err, products.ErrListProducts):
			app.frontendError(w, r, "Failed to list products", err)
		default:
			app.frontendError(w, r, err.Error(), err)
		}
		return
	}

	if err := writeJSON(w, http.StatusOK, res); err != nil {
		app.logger.Errorw("write frontend products", "error", err)
	}
}
