package models

// PaginationParams carries the page number and page size requested by a
// caller. Zero values are replaced with defaults by Validated.
type PaginationParams struct {
	PageNumber int `json:"page_number" query:"page_number"`
	PageSize   int `json:"page_size" query:"page_size"`
}

// Validated clamps the pagination parameters to sane bounds: the page number
// is at least 1, the page size is between 1 and 50 and defaults to 10.
func (p PaginationParams) Validated() (pageNumber, pageSize int) {
	pageNumber = p.PageNumber
	if pageNumber < 1 {
		pageNumber = 1
	}

	pageSize = p.PageSize
	switch {
	case pageSize < 1:
		pageSize = 10
	case pageSize > 50:
		pageSize = 50
	}
	return pageNumber, pageSize
}

// PaginatedResponse is the common envelope for paginated listings.
type PaginatedResponse[T any] struct {
	Items           []T  `json:"items"`
	TotalItems      int  `json:"total_items"`
	PageNumber      int  `json:"page_number"`
	PageSize        int  `json:"page_size"`
	TotalPages      int  `json:"total_pages"`
	HasNextPage     bool `json:"has_next_page"`
	HasPreviousPage bool `json:"has_previous_page"`
}

// NewPaginatedResponse assembles a PaginatedResponse from a page of items
// and the total item count.
func NewPaginatedResponse[T any](items []T, totalItems, pageNumber, pageSize int) PaginatedResponse[T] {
	totalPages := (totalItems + pageSize - 1) / pageSize
	return PaginatedResponse[T]{
		Items:           items,
		TotalItems:      totalItems,
		PageNumber:      pageNumber,
		PageSize:        pageSize,
		TotalPages:      totalPages,
		HasNextPage:     pageNumber*pageSize < totalItems,
		HasPreviousPage: pageNumber > 1,
	}
}
