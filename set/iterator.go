package set

// Iterator is a one-shot cursor over a snapshot of a Set's elements.
// The snapshot belongs to the iterator alone, so sets derived from the
// source after creation have no effect on it. An exhausted iterator
// keeps returning false; to traverse again, call Iterator again.
type Iterator[V any] struct {
	snapshot []V
	pos      int
}

// Iterator snapshots the current elements and returns a cursor over
// them.
func (s *Set[K, V]) Iterator() *Iterator[V] {
	return &Iterator[V]{snapshot: s.Entries()}
}

// Next returns the next unseen element of the snapshot, or false once
// the snapshot is spent.
func (it *Iterator[V]) Next() (v V, ok bool) {
	if it.pos >= len(it.snapshot) {
		return v, false
	}
	v = it.snapshot[it.pos]
	it.pos++
	return v, true
}
