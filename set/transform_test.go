package set

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	s := Of(mockHash, mockEquals,
		&Mock{A: "aa", B: 22},
		&Mock{A: "bb", B: 55},
	)
	labels := Map(
		s,
		func(v string) string { return v },
		func(a, b string) bool { return a == b },
		func(v *Mock) string { return v.A },
	)
	require.Equal(t, true, labels.Equal(NewComparable("aa", "bb")))
}

func TestMapCollapsesDuplicateImages(t *testing.T) {
	s := NewComparable(1, 2, 3, 4)
	parity := MapComparable(s, func(v int) int { return v % 2 })
	require.Equal(t, true, parity.Equal(NewComparable(0, 1)))
}

func TestMapComparable(t *testing.T) {
	s := NewComparable(1, 10, 100)
	strs := MapComparable(s, strconv.Itoa)
	require.Equal(t, true, strs.Equal(NewComparable("1", "10", "100")))
}

func TestReduce(t *testing.T) {
	s := NewComparable(1, 2, 3, 4)
	sum := Reduce(s, 0, func(acc int, v int) int { return acc + v })
	require.Equal(t, 10, sum)
}

func TestReduceEmptyReturnsInitial(t *testing.T) {
	s := NewComparable[int]()
	sum := Reduce(s, 42, func(acc int, v int) int { return acc + v })
	require.Equal(t, 42, sum)
}

func TestSortedEntries(t *testing.T) {
	s := NewComparable(3, 1, 2)
	require.Equal(t, []int{1, 2, 3}, SortedEntries(s))
	require.Equal(t, []int{}, SortedEntries(NewComparable[int]()))
}
