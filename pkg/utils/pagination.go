package utils

func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// ClampPerPage falls back to def for non-positive values and caps at max.
func ClampPerPage(perPage, def, max int) int {
	if perPage < 1 {
		return def
	}
	if perPage > max {
		return max
	}
	return perPage
}
