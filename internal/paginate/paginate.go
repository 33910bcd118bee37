// Package paginate slices ordered sequences into fixed-size pages.
package paginate

// DefaultPageSize is used when callers do not specify a page size.
const DefaultPageSize = 10

// Page is a view over one page of an ordered sequence plus the metadata
// describing its position within the whole. Derived on demand, never stored.
type Page[T any] struct {
	// Items holds the slice of the sequence for the served page.
	Items []T

	// CurrentPage is the page actually served after clamping, 1-indexed.
	CurrentPage int

	// TotalPages is ceil(TotalItems / pageSize), minimum 1. An empty
	// sequence reports "page 1 of 1", never "page 1 of 0".
	TotalPages int

	// TotalItems counts the full sequence across all pages.
	TotalItems int
}

// Paginate returns the requested page of items. The requested page may be any
// integer; it is clamped into [1, TotalPages]. pageSize values below 1 fall
// back to DefaultPageSize. The input slice is not mutated; Items aliases it.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	totalItems := len(items)
	totalPages := totalItems / pageSize
	if totalItems%pageSize != 0 {
		totalPages++
	}
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return Page[T]{
		Items:       items[start:end],
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
	}
}
