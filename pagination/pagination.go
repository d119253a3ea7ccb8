// Package pagination windows ordered or unordered sequences. It never
// re-orders: a page is whatever slice of the caller's ordering falls inside
// the window.
package pagination

// DefaultPageSize is used when a request carries no pageSize parameter.
const DefaultPageSize = 24

// Window skips page*pageSize items and takes up to pageSize. A window past
// the end of items yields an empty (non-nil) slice. page must be >= 0 and
// pageSize >= 1; validation of raw request values happens at the HTTP
// boundary before this is called.
func Window[T any](items []T, page, pageSize int) []T {
	if page < 0 || pageSize < 1 {
		return []T{}
	}
	start := page * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
