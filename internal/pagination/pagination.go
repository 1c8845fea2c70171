// Package pagination slices an ordered collection into pages and computes the
// page metadata returned alongside each slice. Everything here is pure: no
// state, no side effects, the same inputs always give the same outputs.
package pagination

import (
	"errors"
	"fmt"
)

// Defaults applied when a page request leaves a field unset (zero).
const (
	DefaultPage     = 1
	DefaultPageSize = 12
)

// ErrInvalidPageRequest is returned for a negative page or page size.
var ErrInvalidPageRequest = errors.New("invalid page request")

// Request selects one page. A zero field means "not provided" and is replaced
// by the corresponding default.
type Request struct {
	Page     int
	PageSize int
}

// Normalize fills defaults and rejects values outside the contract.
func (r Request) Normalize() (Request, error) {
	if r.Page == 0 {
		r.Page = DefaultPage
	}
	if r.PageSize == 0 {
		r.PageSize = DefaultPageSize
	}
	if r.Page < 1 {
		return r, fmt.Errorf("%w: page must be >= 1, got %d", ErrInvalidPageRequest, r.Page)
	}
	if r.PageSize < 1 {
		return r, fmt.Errorf("%w: page size must be >= 1, got %d", ErrInvalidPageRequest, r.PageSize)
	}
	return r, nil
}

// Bounds is the half-open slice range [Start, End) for a page together with
// the derived page count. Start == End means the page is empty.
type Bounds struct {
	Start      int
	End        int
	TotalPages int
}

// Compute maps a collection length and a normalized request to slice bounds.
// A page past the end yields empty bounds; it is never clamped to the last page.
func Compute(total int, req Request) (Bounds, error) {
	req, err := req.Normalize()
	if err != nil {
		return Bounds{}, err
	}

	totalPages := TotalPages(total, req.PageSize)
	if req.Page > totalPages {
		return Bounds{Start: total, End: total, TotalPages: totalPages}, nil
	}

	// Page is within range here, so the products below stay under total.
	start := (req.Page - 1) * req.PageSize
	end := start + min(req.PageSize, total-start)

	return Bounds{
		Start:      start,
		End:        end,
		TotalPages: totalPages,
	}, nil
}

// TotalPages returns ceil(total / pageSize), which is 0 for an empty collection.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total-1)/pageSize + 1
}

// Page is a bounded, ordered slice of a collection plus its counts.
type Page[T any] struct {
	Data       []T `json:"data"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Slice builds the requested page from items. The returned Data is a fresh
// slice; mutating it does not touch items.
func Slice[T any](items []T, req Request) (*Page[T], error) {
	req, err := req.Normalize()
	if err != nil {
		return nil, err
	}

	b, err := Compute(len(items), req)
	if err != nil {
		return nil, err
	}

	data := make([]T, b.End-b.Start)
	copy(data, items[b.Start:b.End])

	return &Page[T]{
		Data:       data,
		Page:       req.Page,
		PageSize:   req.PageSize,
		Total:      len(items),
		TotalPages: b.TotalPages,
	}, nil
}
