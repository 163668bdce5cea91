package domain

import (
	"math"
	"strings"
)

const (
	DefaultPageNumber = 0
	DefaultPageSize   = 10
	MaxPageSize       = 100
	DefaultSortBy     = "id"

	// MaxPageNumber keeps Number*Size inside an int32 for every valid size.
	MaxPageNumber = math.MaxInt32 / MaxPageSize

	SortAscending  = "ASC"
	SortDescending = "DESC"
)

// sortColumns maps the public attribute names to table columns.
var sortColumns = map[string]string{
	"id":          "id",
	"productName": "product_name",
	"description": "description",
	"price":       "price",
	"category":    "category",
	"brand":       "brand",
	"imageUrl":    "image_url",
}

// PageRequest selects one page of products. Number is zero based.
type PageRequest struct {
	Number    int
	Size      int
	SortBy    string
	Direction string
}

// DefaultPageRequest returns the first page of ten items sorted by id.
func DefaultPageRequest() PageRequest {
	return PageRequest{
		Number:    DefaultPageNumber,
		Size:      DefaultPageSize,
		SortBy:    DefaultSortBy,
		Direction: SortAscending,
	}
}

// Normalize fills empty sort settings and upper-cases the direction.
func (r PageRequest) Normalize() PageRequest {
	if r.SortBy == "" {
		r.SortBy = DefaultSortBy
	}
	r.Direction = strings.ToUpper(strings.TrimSpace(r.Direction))
	if r.Direction == "" {
		r.Direction = SortAscending
	}
	return r
}

// Validate reports ErrInvalidPageRequest for out of range or unknown values.
func (r PageRequest) Validate() error {
	if r.Number < 0 || r.Number > MaxPageNumber || r.Size < 1 || r.Size > MaxPageSize {
		return ErrInvalidPageRequest
	}
	if _, ok := sortColumns[r.SortBy]; !ok {
		return ErrInvalidPageRequest
	}
	if r.Direction != SortAscending && r.Direction != SortDescending {
		return ErrInvalidPageRequest
	}
	return nil
}

// SortColumn returns the column for SortBy, or "id" when it is unknown.
func (r PageRequest) SortColumn() string {
	if col, ok := sortColumns[r.SortBy]; ok {
		return col
	}
	return "id"
}

func (r PageRequest) Descending() bool {
	return r.Direction == SortDescending
}

func (r PageRequest) Offset() int {
	return r.Number * r.Size
}

// Page is one slice of a sorted product listing.
type Page struct {
	Items         []Product
	Number        int
	Size          int
	TotalElements int64
	TotalPages    int
	Last          bool
}

// NewPage derives the page totals from the request and total row count.
func NewPage(items []Product, req PageRequest, total int64) *Page {
	totalPages := 0
	if req.Size > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}

	return &Page{
		Items:         items,
		Number:        req.Number,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    totalPages,
		Last:          req.Number >= totalPages-1,
	}
}

// LastPageNumber is the index of the final page; zero for an empty listing.
func (p *Page) LastPageNumber() int {
	if p.TotalPages == 0 {
		return 0
	}
	return p.TotalPages - 1
}

func (p *Page) HasPrevious() bool {
	return p.Number > 0
}
