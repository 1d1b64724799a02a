package pagination

// OffsetResult is one page of a listing with enough totals to render a pager.
type OffsetResult[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalPages int   `json:"total_pages"`
	HasMore    bool  `json:"has_more"`
}

// NewOffsetResult never returns nil Items so empty pages encode as [].
func NewOffsetResult[T any](items []T, total int64, page int, size int) *OffsetResult[T] {
	if items == nil {
		items = []T{}
	}

	var pages int
	if size > 0 {
		pages = int((total + int64(size) - 1) / int64(size))
	}

	return &OffsetResult[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: pages,
		HasMore:    page < pages,
	}
}
