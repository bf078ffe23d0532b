// Package pagination implements page-based slicing of ordered collections
// for the v2 API surface. It is pure: no state, no mutation of its input.
package pagination

// Defaults applied by callers when a query parameter is absent or unparsable.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Meta describes the position of one page within the full collection.
type Meta struct {
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	TotalPages      int  `json:"totalPages"`
	TotalItems      int  `json:"totalItems"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// Result wraps one page of a source collection plus navigation metadata.
type Result[T any] struct {
	Items []T
	Meta  Meta
}

// Paginate slices items for page-based display. A page below 1 is clamped to 1.
// limit == 0 is preserved as a degenerate case: totalPages is 1 and the page is
// empty. Pages past the end of the collection yield an empty Items slice, never
// an error. Items is always non-nil so it marshals as a JSON array.
func Paginate[T any](items []T, page, limit int) Result[T] {
	if page < 1 {
		page = 1
	}
	if limit < 0 {
		limit = 0
	}

	totalItems := len(items)
	totalPages := 1
	if limit > 0 {
		totalPages = (totalItems + limit - 1) / limit
	}

	start := (page - 1) * limit
	end := start + limit
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	pageItems := make([]T, end-start)
	copy(pageItems, items[start:end])

	return Result[T]{
		Items: pageItems,
		Meta: Meta{
			Page:            page,
			Limit:           limit,
			TotalPages:      totalPages,
			TotalItems:      totalItems,
			HasNextPage:     page < totalPages,
			HasPreviousPage: page > 1,
		},
	}
}
