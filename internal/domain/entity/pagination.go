package entity

const (
	// DefaultPageLimit is used when a caller omits the page size.
	DefaultPageLimit = 10
	// MinPageLimit is the smallest accepted page size.
	MinPageLimit = 5
)

// Page is one page of items with its metadata.
type Page[T any] struct {
	Items []T      `json:"items"`
	Meta  PageMeta `json:"meta"`
}

// ClampPageRequest normalizes a requested page and limit. The page is at least 1;
// a non-positive limit becomes DefaultPageLimit and the result lies in [MinPageLimit, maxLimit].
func ClampPageRequest(page, limit, maxLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}

	return page, min(maxLimit, max(MinPageLimit, limit))
}

// NewPageMeta computes page metadata for total rows. The page is clamped to the
// last page so an out-of-range request returns the final page instead of nothing.
func NewPageMeta(page, limit int, total int64) PageMeta {
	totalPages := 1
	if total > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	page = min(page, totalPages)

	return PageMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}

// Offset returns the row offset of the page.
func (m PageMeta) Offset() int {
	return (m.Page - 1) * m.Limit
}
