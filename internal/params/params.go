package params

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// URL: /v1/catalog/products?page=2&limit=12
// → ParsePagination() → Pagination{Limit:12, Page:2, Offset:12}
// → slice the filtered catalog with Window(total)
// → ComputeMeta(total) → fills TotalPages, HasNext, etc.
type Pagination struct {
	Limit      int  `json:"limit"`
	Offset     int  `json:"offset"`
	Page       int  `json:"page"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

const (
	defaultPageLimit = 24
	maxPageLimit     = 60
)

// ParsePagination parses ?limit=...&page=... safely. Keys are case sensitive.
func ParsePagination(q url.Values) Pagination {
	p := Pagination{
		Limit: defaultPageLimit,
		Page:  1,
	}

	if limitStr := strings.TrimSpace(q.Get("limit")); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			switch {
			case limit <= 0:
				p.Limit = defaultPageLimit
			case limit > maxPageLimit:
				p.Limit = maxPageLimit
			default:
				p.Limit = limit
			}
		}
	}

	if pageStr := strings.TrimSpace(q.Get("page")); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page > 0 {
			p.Page = page
		}
	}

	p.Offset = (p.Page - 1) * p.Limit
	return p
}

// ComputeMeta updates pagination after the total is known.
func (p *Pagination) ComputeMeta(total int) {
	p.Total = total
	if p.Limit > 0 {
		p.TotalPages = int(math.Ceil(float64(total) / float64(p.Limit)))
	}
	p.HasPrev = p.Page > 1
	p.HasNext = (p.Page * p.Limit) < total
}

// Window returns the [start, end) bounds of the page inside n items.
func (p Pagination) Window(n int) (int, int) {
	start := min(p.Offset, n)
	end := min(start+p.Limit, n)
	return start, end
}

// Listing holds the storefront product listing query:
// ?category=a/b&q=...&limit=...&offset=...
type Listing struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}

const (
	defaultListingLimit = 40
	maxListingLimit     = 100
)

// ParseListing reads the listing query. Limit defaults to 40, caps at 100,
// and a non-positive or unparseable limit means the default, matching the
// listing service. Offset never goes below zero.
func ParseListing(q url.Values) Listing {
	l := Listing{
		Category: strings.TrimSpace(q.Get("category")),
		Search:   strings.TrimSpace(q.Get("q")),
		Limit:    defaultListingLimit,
	}

	if limitStr := strings.TrimSpace(q.Get("limit")); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			l.Limit = min(limit, maxListingLimit)
		}
	}

	if offsetStr := strings.TrimSpace(q.Get("offset")); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil && offset > 0 {
			l.Offset = offset
		}
	}
	return l
}

// SplitPath turns "a,b" or "a/b" into its non-empty segments.
func SplitPath(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '/' })
	out := fields[:0]
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
