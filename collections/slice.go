package collections

import (
	"sort"

	"github.com/Invicton-Labs/go-circularlist/constraints"
)

// CopySlice will create a copy of the given slice.
func CopySlice[T any](src []T) []T {
	if src == nil {
		return nil
	}
	dst := make([]T, len(src))
	copy(dst, src)
	return dst
}

// SliceUnique will get a new slice containing all unique/distinct values in the input slice,
// in the order that they first appear.
func SliceUnique[T comparable](in []T) (out []T) {
	if in == nil {
		return nil
	}
	seen := NewHashMapPreallocated[T](len(in))
	out = make([]T, 0, len(in))
	for _, v := range in {
		if seen.StoreIfAbsent(v) {
			out = append(out, v)
		}
	}
	return out
}

// SortSliceAscendingInPlace will sort the given slice in ascending order, leaving
// elements with equal values where they are (stable sort).
func SortSliceAscendingInPlace[SliceType constraints.Ordered](in []SliceType) {
	if in == nil {
		return
	}
	sort.SliceStable(in, func(i, j int) bool { return in[i] < in[j] })
}

// SortSliceAscendingCopy will return a sorted (in ascending order) copy of the given slice, leaving
// elements with equal values where they are (stable sort). The original slice will not be modified.
func SortSliceAscendingCopy[SliceType constraints.Ordered](in []SliceType) (sorted []SliceType) {
	if in == nil {
		return nil
	}
	sorted = CopySlice(in)
	SortSliceAscendingInPlace(sorted)
	return sorted
}

// ReverseSliceInPlace reverses the order of the elements in the given slice.
func ReverseSliceInPlace[T any](in []T) {
	for i, j := 0, len(in)-1; i < j; i, j = i+1, j-1 {
		in[i], in[j] = in[j], in[i]
	}
}
