package utils

// TotalPages is the number of pages of pageSize needed for total items.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize < 1 {
		return 0
	}
	pages := total / pageSize
	if total%pageSize != 0 {
		pages++
	}
	return pages
}

// PageBounds returns the [start, end) range of page within total items.
// Pages past the end give an empty range at total.
func PageBounds(page, pageSize, total int) (start, end int) {
	if total <= 0 || pageSize < 1 {
		return 0, 0
	}
	if page < 1 {
		page = 1
	}
	if page > TotalPages(total, pageSize) {
		return total, total
	}

	start = (page - 1) * pageSize
	if pageSize > total-start {
		return start, total
	}
	return start, start + pageSize
}
