package util

import (
	"cmp"
	"maps"
	"slices"
)

// Set is a generic unordered collection of unique values
type Set[T comparable] map[T]struct{}

// SetOf creates a Set containing the provided values
func SetOf[T comparable](values ...T) Set[T] {
	res := make(Set[T], len(values))
	for _, v := range values {
		res.Add(v)
	}
	return res
}

// Add inserts a value into the Set. Adding a present value is a no-op
func (s Set[T]) Add(v T) {
	s[v] = struct{}{}
}

// Remove deletes a value from the Set if it is present
func (s Set[T]) Remove(v T) {
	delete(s, v)
}

// Contains reports whether the value is a member of the Set
func (s Set[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

func (s Set[T]) Len() int {
	return len(s)
}

func (s Set[T]) IsEmpty() bool {
	return len(s) == 0
}

// Clone returns an independent copy of the Set. Mutating either Set after
// the call never affects the other
func (s Set[T]) Clone() Set[T] {
	res := make(Set[T], len(s))
	maps.Copy(res, s)
	return res
}

// Equal reports whether both Sets contain exactly the same values
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s) != len(other) {
		return false
	}
	for v := range s {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

// Sorted returns the members of an ordered Set as an ascending slice
func Sorted[T cmp.Ordered](s Set[T]) []T {
	res := make([]T, 0, len(s))
	for v := range s {
		res = append(res, v)
	}
	slices.Sort(res)
	return res
}
