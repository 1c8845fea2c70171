package pagination

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i + 1)
	}
	return out
}

func TestSlice_KnownPages(t *testing.T) {
	items := ids(25)

	tests := []struct {
		name           string
		req            Request
		wantData       []string
		wantTotalPages int
	}{
		{
			name:           "first page of twelve",
			req:            Request{Page: 1, PageSize: 12},
			wantData:       ids(12),
			wantTotalPages: 3,
		},
		{
			name:           "last partial page",
			req:            Request{Page: 3, PageSize: 12},
			wantData:       []string{"25"},
			wantTotalPages: 3,
		},
		{
			name:           "past the end",
			req:            Request{Page: 10, PageSize: 12},
			wantData:       []string{},
			wantTotalPages: 3,
		},
		{
			name:           "page size two",
			req:            Request{Page: 2, PageSize: 2},
			wantData:       []string{"3", "4"},
			wantTotalPages: 13,
		},
		{
			name:           "largest page number",
			req:            Request{Page: math.MaxInt, PageSize: 12},
			wantData:       []string{},
			wantTotalPages: 3,
		},
		{
			name:           "page number whose offset overflows",
			req:            Request{Page: math.MaxInt/12 + 2, PageSize: 12},
			wantData:       []string{},
			wantTotalPages: 3,
		},
		{
			name:           "largest page size",
			req:            Request{Page: 1, PageSize: math.MaxInt},
			wantData:       ids(25),
			wantTotalPages: 1,
		},
		{
			name:           "second page of largest page size",
			req:            Request{Page: 2, PageSize: math.MaxInt},
			wantData:       []string{},
			wantTotalPages: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := Slice(items, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantData, page.Data)
			assert.Equal(t, 25, page.Total)
			assert.Equal(t, tt.wantTotalPages, page.TotalPages)
			assert.Equal(t, tt.req.Page, page.Page)
			assert.Equal(t, tt.req.PageSize, page.PageSize)
		})
	}
}

func TestSlice_Defaults(t *testing.T) {
	page, err := Slice(ids(25), Request{})
	require.NoError(t, err)

	assert.Equal(t, DefaultPage, page.Page)
	assert.Equal(t, DefaultPageSize, page.PageSize)
	assert.Equal(t, ids(12), page.Data)
}

func TestSlice_EmptyCollection(t *testing.T) {
	page, err := Slice([]string{}, Request{})
	require.NoError(t, err)

	assert.Empty(t, page.Data)
	assert.NotNil(t, page.Data, "data should serialise as [] rather than null")
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 0, page.TotalPages)
}

func TestSlice_DoesNotAliasInput(t *testing.T) {
	items := ids(5)
	page, err := Slice(items, Request{Page: 1, PageSize: 2})
	require.NoError(t, err)

	page.Data[0] = "changed"
	assert.Equal(t, "1", items[0])
}

func TestSlice_Properties(t *testing.T) {
	for total := 0; total <= 30; total++ {
		items := ids(total)
		for pageSize := 1; pageSize <= 13; pageSize++ {
			for p := 1; p <= 32; p++ {
				page, err := Slice(items, Request{Page: p, PageSize: pageSize})
				require.NoError(t, err)

				assert.LessOrEqual(t, len(page.Data), pageSize)
				want := int(math.Ceil(float64(total) / float64(pageSize)))
				assert.Equal(t, want, page.TotalPages, "total=%d pageSize=%d", total, pageSize)
				assert.Equal(t, total, page.Total)
			}
		}
	}
}

func TestCompute_InvalidRequests(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{name: "negative page", req: Request{Page: -1, PageSize: 12}},
		{name: "negative page size", req: Request{Page: 1, PageSize: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(25, tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidPageRequest))
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 12))
	assert.Equal(t, 1, TotalPages(1, 12))
	assert.Equal(t, 1, TotalPages(12, 12))
	assert.Equal(t, 2, TotalPages(13, 12))
	assert.Equal(t, 0, TotalPages(10, 0))
	assert.Equal(t, 1, TotalPages(25, math.MaxInt))
	assert.Equal(t, 1, TotalPages(math.MaxInt, math.MaxInt))
}

func TestCompute_LargeValues(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want Bounds
	}{
		{name: "max page", req: Request{Page: math.MaxInt, PageSize: 12}, want: Bounds{Start: 25, End: 25, TotalPages: 3}},
		{name: "max page and size", req: Request{Page: math.MaxInt, PageSize: math.MaxInt}, want: Bounds{Start: 25, End: 25, TotalPages: 1}},
		{name: "half max page", req: Request{Page: math.MaxInt / 2, PageSize: 12}, want: Bounds{Start: 25, End: 25, TotalPages: 3}},
		{name: "max size", req: Request{Page: 1, PageSize: math.MaxInt}, want: Bounds{Start: 0, End: 25, TotalPages: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(25, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
