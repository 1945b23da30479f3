package domain

// PageWindow computes the visible page buttons for a paginated table: a
// sliding window of at most 5 page numbers centered on current, clamped
// to the edges near the first and last pages.
func PageWindow(current, totalPages int) []int {
	if totalPages < 1 {
		return nil
	}

	size := 5
	if totalPages < size {
		size = totalPages
	}

	window := make([]int, size)
	for i := range window {
		switch {
		case totalPages <= 5:
			window[i] = i + 1
		case current <= 3:
			window[i] = i + 1
		case current >= totalPages-2:
			window[i] = totalPages - 4 + i
		default:
			window[i] = current - 2 + i
		}
	}
	return window
}
