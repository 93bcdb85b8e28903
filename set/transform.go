package set

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Map applies f to every element of s and collects the images into a
// Set over the image type's hash and equals collaborators. Duplicate
// images collapse, keeping the later one in scan order.
func Map[K1 comparable, V1 any, K2 comparable, V2 any](
	s *Set[K1, V1],
	hash HashFunc[K2, V2],
	equals EqualsFunc[V2],
	f func(V1) V2,
) *Set[K2, V2] {
	entries := make(map[K2]V2, s.Size())
	for _, v := range s.entries {
		mapped := f(v)
		entries[hash(mapped)] = mapped
	}
	return &Set[K2, V2]{
		entries: entries,
		hash:    hash,
		equals:  equals,
	}
}

// MapComparable is Map for a comparable image type, keyed by the image
// itself.
func MapComparable[K1 comparable, V1 any, V2 comparable](s *Set[K1, V1], f func(V1) V2) *Set[V2, V2] {
	return Map(
		s,
		func(v V2) V2 { return v },
		func(a, b V2) bool { return a == b },
		f,
	)
}

// Reduce left-folds the elements of s onto initial. The fold visits the
// set's unspecified element order, so combine must not depend on the
// order it sees elements in.
func Reduce[K comparable, V any, B any](s *Set[K, V], initial B, combine func(B, V) B) B {
	acc := initial
	for _, v := range s.entries {
		acc = combine(acc, v)
	}
	return acc
}

// SortedEntries returns the elements in ascending order. It exists for
// stable diagnostic output and tests, not as an ordering guarantee on
// the set itself.
func SortedEntries[K comparable, V constraints.Ordered](s *Set[K, V]) []V {
	arr := s.Entries()
	slices.Sort(arr)
	return arr
}
