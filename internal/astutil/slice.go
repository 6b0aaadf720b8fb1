// Package astutil holds the small generic slice helpers the parser and
// resolver lean on, adapted from the teacher's internal/utils/slice.go.
package astutil

import "golang.org/x/exp/constraints"

// SliceContains reports whether v occurs in slice, used for small
// membership checks (e.g. an active label stack) where a map would be
// overkill.
func SliceContains[T constraints.Ordered](slice []T, v T) bool {
	for _, e := range slice {
		if e == v {
			return true
		}
	}
	return false
}

// MapSlice applies mapper to every element of s and returns the results,
// preserving order.
func MapSlice[T, U any](s []T, mapper func(e T) U) []U {
	result := make([]U, len(s))
	for i, e := range s {
		result[i] = mapper(e)
	}
	return result
}
