package util

// InsertSlice returns a new slice with element(s) inserted at position pos,
// leaving both inputs unmodified. Parse states alias the caller's argument
// slice, so a splice must never write through its spare capacity.
func InsertSlice[T any](arr []T, pos int, element ...T) []T {
	merged := make([]T, 0, len(arr)+len(element))
	merged = append(merged, arr[:pos]...)
	merged = append(merged, element...)
	merged = append(merged, arr[pos:]...)
	return merged
}
