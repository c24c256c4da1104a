package models

import (
	"math"
	"strings"
)

// Sort directions accepted in [PageRequest.SortDir].
const (
	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// Default page values used when the query string omits them.
const (
	DefaultPageNumber = 1
	DefaultPageSize   = 20
	MaxPageSize       = 100
	MaxPageNumber     = math.MaxInt32
)

// PageRequest describes one page of a sorted listing.
// PageNumber is 1-based.
type PageRequest struct {
	PageNumber int    `json:"pageNumber"`
	PageSize   int    `json:"pageSize"`
	OrderBy    string `json:"orderBy"`
	SortDir    string `json:"sortDir"`
}

// Offset returns the number of rows to skip. PageNumber is clamped to
// MaxPageNumber.
func (p PageRequest) Offset() uint64 {
	if p.PageNumber < 1 || p.PageSize < 1 {
		return 0
	}
	return uint64(min(p.PageNumber, MaxPageNumber)-1) * uint64(p.PageSize)
}

// Limit returns the page size.
func (p PageRequest) Limit() uint64 {
	if p.PageSize < 1 {
		return 0
	}
	return uint64(p.PageSize)
}

// Descending reports whether SortDir asks for descending order.
// Anything other than "DESC" (case-insensitive) sorts ascending.
func (p PageRequest) Descending() bool {
	return strings.EqualFold(strings.TrimSpace(p.SortDir), SortDesc)
}

// PaginationResponse is one page of a listing together with the total
// number of matching rows.
type PaginationResponse[T any] struct {
	Page         int   `json:"page"`
	Total        int64 `json:"total"`
	ItemsPerPage int   `json:"itemsPerPage"`
	Data         []T   `json:"data"`
}

// NewPaginationResponse maps items with fn and wraps them in a page.
func NewPaginationResponse[E, T any](page PageRequest, total int64, items []E, fn func(E) T) PaginationResponse[T] {
	data := make([]T, 0, len(items))
	for _, item := range items {
		data = append(data, fn(item))
	}

	return PaginationResponse[T]{
		Page:         page.PageNumber,
		Total:        total,
		ItemsPerPage: page.PageSize,
		Data:         data,
	}
}
