package domain

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestPageRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     PageRequest
		wantErr bool
	}{
		{name: "defaults", req: DefaultPageRequest()},
		{name: "descending by price", req: PageRequest{Number: 2, Size: 100, SortBy: "price", Direction: "DESC"}},
		{name: "last addressable page", req: PageRequest{Number: MaxPageNumber, Size: MaxPageSize, SortBy: "id", Direction: "ASC"}},
		{name: "page beyond addressable range", req: PageRequest{Number: MaxPageNumber + 1, Size: 1, SortBy: "id", Direction: "ASC"}, wantErr: true},
		{name: "huge page", req: PageRequest{Number: math.MaxInt, Size: 1, SortBy: "id", Direction: "ASC"}, wantErr: true},
		{name: "negative page", req: PageRequest{Number: -1, Size: 10, SortBy: "id", Direction: "ASC"}, wantErr: true},
		{name: "zero size", req: PageRequest{Size: 0, SortBy: "id", Direction: "ASC"}, wantErr: true},
		{name: "oversized page", req: PageRequest{Size: 101, SortBy: "id", Direction: "ASC"}, wantErr: true},
		{name: "unknown sort field", req: PageRequest{Size: 10, SortBy: "product_name; DROP TABLE", Direction: "ASC"}, wantErr: true},
		{name: "unknown direction", req: PageRequest{Size: 10, SortBy: "id", Direction: "UP"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPageRequest)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPageRequest_Normalize(t *testing.T) {
	req := PageRequest{Size: 5, Direction: " desc "}.Normalize()

	assert.Equal(t, "id", req.SortBy)
	assert.Equal(t, SortDescending, req.Direction)
	assert.True(t, req.Descending())
	assert.Equal(t, "product_name", PageRequest{SortBy: "productName"}.SortColumn())
}

func TestNewPage(t *testing.T) {
	page := NewPage(nil, PageRequest{Number: 1, Size: 10}, 25)
	assert.Equal(t, 3, page.TotalPages)
	assert.False(t, page.Last)
	assert.True(t, page.HasPrevious())
	assert.Equal(t, 2, page.LastPageNumber())

	pastEnd := NewPage(nil, PageRequest{Number: MaxPageNumber, Size: 1}, 3)
	assert.True(t, pastEnd.Last)

	empty := NewPage(nil, PageRequest{Number: 0, Size: 10}, 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.True(t, empty.Last)
	assert.Equal(t, 0, empty.LastPageNumber())
}

func TestNewPage_Properties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("pages cover every element exactly", prop.ForAll(
		func(total int64, size int) bool {
			page := NewPage(nil, PageRequest{Size: size}, total)
			return int64(page.TotalPages)*int64(size) >= total &&
				int64(page.TotalPages-1)*int64(size) < total || (total == 0 && page.TotalPages == 0)
		},
		gen.Int64Range(0, 1_000_000),
		gen.IntRange(1, MaxPageSize),
	))

	properties.Property("only the final page is last", prop.ForAll(
		func(total int64, size int, number int) bool {
			page := NewPage(nil, PageRequest{Number: number, Size: size}, total)
			return page.Last == (number >= page.LastPageNumber())
		},
		gen.Int64Range(1, 10_000),
		gen.IntRange(1, MaxPageSize),
		gen.IntRange(0, 200),
	))

	properties.TestingRun(t)
}
