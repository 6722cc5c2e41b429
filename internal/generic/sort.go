package generic

import (
	"golang.org/x/exp/slices"
)

// SortedCopyFunc returns a copy of the slice ordered by less, leaving the
// original intact.
func SortedCopyFunc[T any](arr []T, less func(a, b T) bool) []T {
	res := slices.Clone(arr)
	slices.SortFunc(res, less)

	return res
}

// MinFunc returns the smallest element according to less. The second return
// value is false if the slice is empty.
func MinFunc[T any](arr []T, less func(a, b T) bool) (T, bool) {
	var zero T

	if len(arr) == 0 {
		return zero, false
	}

	best := arr[0]
	for _, v := range arr[1:] {
		if less(v, best) {
			best = v
		}
	}

	return best, true
}
