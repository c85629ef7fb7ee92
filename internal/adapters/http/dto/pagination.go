package dto

import "github.com/plazasales/storefront/internal/domain"

// MaxLimit is the maximum allowed items per page.
const MaxLimit = 100

// PageRequest represents page-number pagination parameters from the query string.
type PageRequest struct {
	// Page is 1-based; zero means the first page.
	Page int `form:"page" json:"page" validate:"omitempty,gte=1"`

	// Limit is the page size (1-100); zero means the endpoint's default.
	Limit int `form:"limit" json:"limit" validate:"omitempty,gte=1,lte=100"`
}

// Query converts the request to a domain page query. Defaults are applied
// by the application services.
func (p PageRequest) Query() domain.PageQuery {
	limit := p.Limit
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return domain.PageQuery{Page: p.Page, Limit: limit}
}

// Pagination describes where a page sits in the full listing.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit,omitempty"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasMore    bool `json:"hasMore"`
}

// NewPagination builds pagination metadata. totalPages is computed from
// total and limit when the caller passes zero.
func NewPagination(page, limit, total, totalPages int) Pagination {
	if page < 1 {
		page = 1
	}

	if totalPages == 0 && limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	}
}

// PaginatedResponse is a page of items with its position.
type PaginatedResponse[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// NewPaginatedResponse maps items with fn. The result's items are never nil.
func NewPaginatedResponse[S, T any](items []S, p Pagination, fn func(S) T) *PaginatedResponse[T] {
	return &PaginatedResponse[T]{
		Items:      mapSlice(items, fn),
		Pagination: p,
	}
}

func mapSlice[S, T any](in []S, fn func(S) T) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}

	return out
}
