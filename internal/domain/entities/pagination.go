package entities

// DefaultPageSize is the number of creatures shown per browse page.
const DefaultPageSize = 12

// Pagination tracks the browse position. Offset is always (Page-1)*PageSize;
// the only way to move is through Next, Prev and At, which keep that true.
type Pagination struct {
	Page     int `json:"page"`
	Offset   int `json:"offset"`
	PageSize int `json:"page_size"`
}

// NewPagination returns the first page for the given page size.
// A non-positive size falls back to DefaultPageSize.
func NewPagination(pageSize int) Pagination {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return Pagination{Page: 1, Offset: 0, PageSize: pageSize}
}

// Next returns the following page. There is no upper bound.
func (p Pagination) Next() Pagination {
	return p.At(p.Page + 1)
}

// Prev returns the previous page, or p unchanged on the first page.
func (p Pagination) Prev() Pagination {
	if p.IsFirst() {
		return p
	}
	return p.At(p.Page - 1)
}

// At returns the given page, clamped to the first page.
func (p Pagination) At(page int) Pagination {
	if page < 1 {
		page = 1
	}
	return Pagination{
		Page:     page,
		Offset:   (page - 1) * p.PageSize,
		PageSize: p.PageSize,
	}
}

// IsFirst reports whether p is the first page.
func (p Pagination) IsFirst() bool {
	return p.Page <= 1
}
