package search

// Paginate returns the page-th slice of size items and the total length of list.
// Pages past the end yield an empty, non-nil slice.
func Paginate[T any](list []T, page, size int) ([]T, int) {
	total := len(list)
	if size <= 0 || page < 0 || page > total/size {
		return []T{}, total
	}
	start := page * size
	if start >= total {
		return []T{}, total
	}
	end := min(start+size, total)
	return list[start:end], total
}

// TotalPages is ceil(total/size); zero when size is not positive.
func TotalPages(total, size int) int {
	if size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}
