package set

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIteratorExhaustion(t *testing.T) {
	s := NewComparable(1, 2, 3)
	it := s.Iterator()
	seen := NewComparable[int]()
	for i := 0; i < 3; i++ {
		v, ok := it.Next()
		require.Equal(t, true, ok)
		seen = seen.Add(v)
	}
	require.Equal(t, true, seen.Equal(s))
	for i := 0; i < 5; i++ {
		_, ok := it.Next()
		require.Equal(t, false, ok)
	}
}

func TestIteratorEmpty(t *testing.T) {
	it := NewComparable[string]().Iterator()
	_, ok := it.Next()
	require.Equal(t, false, ok)
}

func TestIteratorSnapshot(t *testing.T) {
	s := NewComparable("a", "b")
	it := s.Iterator()
	_ = s.Add("c")
	_ = s.Remove("a")
	seen := NewComparable[string]()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		seen = seen.Add(v)
	}
	require.Equal(t, true, seen.Equal(NewComparable("a", "b")))
}

func TestIteratorRecreate(t *testing.T) {
	s := NewComparable(7)
	first := s.Iterator()
	v, ok := first.Next()
	require.Equal(t, true, ok)
	require.Equal(t, 7, v)
	_, ok = first.Next()
	require.Equal(t, false, ok)

	second := s.Iterator()
	v, ok = second.Next()
	require.Equal(t, true, ok)
	require.Equal(t, 7, v)
}
