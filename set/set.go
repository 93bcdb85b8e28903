package set

import "fmt"

// HashFunc maps an element to its comparable hash key. Elements whose
// keys are equal belong to the same equivalence class and occupy one
// slot in the set.
type HashFunc[K comparable, V any] func(V) K

// EqualsFunc reports whether two elements are equivalent. It must be
// consistent with the set's HashFunc: equivalent elements hash equal.
type EqualsFunc[V any] func(a, b V) bool

// Set is an immutable hash-backed set. No operation modifies the
// receiver; anything that looks like a mutation returns a new Set, so
// any number of holders can share one instance without coordination.
type Set[K comparable, V any] struct {
	entries map[K]V
	hash    HashFunc[K, V]
	equals  EqualsFunc[V]
}

// New returns an empty Set over the given hash and equals collaborators.
func New[K comparable, V any](hash HashFunc[K, V], equals EqualsFunc[V]) *Set[K, V] {
	return &Set[K, V]{
		entries: make(map[K]V),
		hash:    hash,
		equals:  equals,
	}
}

// FromSlice builds a Set from elems in a single scan. When two elements
// hash equal, the later one in elems is the representative kept.
func FromSlice[K comparable, V any](hash HashFunc[K, V], equals EqualsFunc[V], elems []V) *Set[K, V] {
	entries := make(map[K]V, len(elems))
	for _, v := range elems {
		entries[hash(v)] = v
	}
	return &Set[K, V]{
		entries: entries,
		hash:    hash,
		equals:  equals,
	}
}

// Of is FromSlice for a fixed argument list.
func Of[K comparable, V any](hash HashFunc[K, V], equals EqualsFunc[V], elems ...V) *Set[K, V] {
	return FromSlice(hash, equals, elems)
}

// NewComparable builds a Set over a comparable element type, using the
// element itself as its hash key and == as equivalence.
func NewComparable[V comparable](elems ...V) *Set[V, V] {
	return FromSlice(
		func(v V) V { return v },
		func(a, b V) bool { return a == b },
		elems,
	)
}

func (s *Set[K, V]) derive(entries map[K]V) *Set[K, V] {
	return &Set[K, V]{
		entries: entries,
		hash:    s.hash,
		equals:  s.equals,
	}
}

func (s *Set[K, V]) copyEntries(extra int) map[K]V {
	entries := make(map[K]V, len(s.entries)+extra)
	for k, v := range s.entries {
		entries[k] = v
	}
	return entries
}

// Size returns the number of distinct elements.
func (s *Set[K, V]) Size() int {
	return len(s.entries)
}

// Entries returns the elements in unspecified order. The slice is a
// fresh copy on every call; relative order may differ between calls.
func (s *Set[K, V]) Entries() []V {
	arr := make([]V, 0, s.Size())
	for _, v := range s.entries {
		arr = append(arr, v)
	}
	return arr
}

// Contains reports whether an element equivalent to v is present.
func (s *Set[K, V]) Contains(v V) bool {
	if _, ok := s.entries[s.hash(v)]; ok {
		return true
	}
	return false
}

// Member returns the stored representative equivalent to v. The stored
// value may differ from v in fields the hash does not cover.
func (s *Set[K, V]) Member(v V) (V, bool) {
	stored, ok := s.entries[s.hash(v)]
	return stored, ok
}

// Any returns an arbitrary element, or false when the set is empty. The
// selection policy is whatever order the backing map ranges in.
func (s *Set[K, V]) Any() (v V, ok bool) {
	for _, e := range s.entries {
		return e, true
	}
	return v, false
}

// IsSubsetOf reports whether every element of s has an equivalent
// member in other.
func (s *Set[K, V]) IsSubsetOf(other *Set[K, V]) bool {
	found := 0
	for _, v := range s.entries {
		if stored, ok := other.Member(v); ok && s.equals(stored, v) {
			found++
		}
	}
	return found == s.Size()
}

// Intersects reports whether at least one element of other is in s.
func (s *Set[K, V]) Intersects(other *Set[K, V]) bool {
	for _, v := range other.entries {
		if s.Contains(v) {
			return true
		}
	}
	return false
}

// Intersect returns the elements of s that also appear in other. The
// representatives kept are the ones stored in other.
func (s *Set[K, V]) Intersect(other *Set[K, V]) *Set[K, V] {
	entries := make(map[K]V)
	for k, v := range s.entries {
		if stored, ok := other.Member(v); ok {
			entries[k] = stored
		}
	}
	return s.derive(entries)
}

// Minus returns the elements of s with no equivalent member in other.
func (s *Set[K, V]) Minus(other *Set[K, V]) *Set[K, V] {
	entries := make(map[K]V)
	for k, v := range s.entries {
		if !other.Contains(v) {
			entries[k] = v
		}
	}
	return s.derive(entries)
}

// Union returns all elements of s and other. On a conflict the
// representative stored in other wins.
func (s *Set[K, V]) Union(other *Set[K, V]) *Set[K, V] {
	entries := s.copyEntries(other.Size())
	for k, v := range other.entries {
		entries[k] = v
	}
	return s.derive(entries)
}

// Add returns a Set that also contains v. When an equivalent element is
// already present the receiver itself is returned, keeping the stored
// representative.
func (s *Set[K, V]) Add(v V) *Set[K, V] {
	if s.Contains(v) {
		return s
	}
	entries := s.copyEntries(1)
	entries[s.hash(v)] = v
	return s.derive(entries)
}

// Remove returns a Set without v. The stored element is checked with
// the equals func before it is dropped, so a hash-colliding but unequal
// element stays in place and the receiver is returned unchanged.
func (s *Set[K, V]) Remove(v V) *Set[K, V] {
	k := s.hash(v)
	stored, ok := s.entries[k]
	if !ok || !s.equals(stored, v) {
		return s
	}
	entries := s.copyEntries(0)
	delete(entries, k)
	return s.derive(entries)
}

// Filter returns the elements of s satisfying pred.
func (s *Set[K, V]) Filter(pred func(V) bool) *Set[K, V] {
	entries := make(map[K]V)
	for k, v := range s.entries {
		if pred(v) {
			entries[k] = v
		}
	}
	return s.derive(entries)
}

// Partition splits s into the elements satisfying pred and the rest.
// Every element lands in exactly one of the two results.
func (s *Set[K, V]) Partition(pred func(V) bool) (*Set[K, V], *Set[K, V]) {
	yes := make(map[K]V)
	no := make(map[K]V)
	for k, v := range s.entries {
		if pred(v) {
			yes[k] = v
		} else {
			no[k] = v
		}
	}
	return s.derive(yes), s.derive(no)
}

// Equal reports set equality, mutual containment independent of any
// storage order.
func (s *Set[K, V]) Equal(other *Set[K, V]) bool {
	return s.IsSubsetOf(other) && other.IsSubsetOf(s)
}

func (s *Set[K, V]) String() string {
	return fmt.Sprint(s.Entries())
}
