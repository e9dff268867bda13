package pagination

// DefaultPageSize is the standard grid size when a page size is not configured.
const DefaultPageSize = 6

// NormalizeSize enforces the configured default when the size is unusable.
func NormalizeSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}
	return size
}

// TotalPages returns ceil(count/size), and 0 for an empty collection.
func TotalPages(count, size int) int {
	size = NormalizeSize(size)
	if count <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// Window slices one 1-based page out of items and reports the total page
// count. Pages outside [1, totalPages] yield an empty window; callers are
// expected to clamp the cursor before changing pagination state.
func Window[T any](items []T, page, size int) ([]T, int) {
	size = NormalizeSize(size)
	total := TotalPages(len(items), size)
	if page < 1 || page > total {
		return nil, total
	}
	start := (page - 1) * size
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], total
}
