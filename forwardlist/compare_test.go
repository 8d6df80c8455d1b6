package forwardlist_test

import (
	"strings"
	"testing"

	"forward-list/forwardlist"

	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	require.True(t, forwardlist.Equal(forwardlist.New[int](), forwardlist.New[int]()))
	require.True(t, forwardlist.Equal(forwardlist.Of(1, 2, 3), forwardlist.Of(1, 2, 3)))
	require.False(t, forwardlist.Equal(forwardlist.Of(1, 2, 3), forwardlist.Of(1, 2, 4)))

	// identical prefix, different length
	require.False(t, forwardlist.Equal(forwardlist.Of(1, 2), forwardlist.Of(1, 2, 3)))
	require.False(t, forwardlist.Equal(forwardlist.Of(1), forwardlist.New[int]()))
}

func TestEqualFunc(t *testing.T) {
	a := forwardlist.Of("GO", "Lists")
	b := forwardlist.Of("go", "lists")

	require.True(t, forwardlist.EqualFunc(a, b, strings.EqualFold))
	require.False(t, forwardlist.Equal(a, b))
}

func TestCompare_Lexicographic(t *testing.T) {
	cases := []struct {
		a, b []int
		want int
	}{
		{[]int{}, []int{}, 0},
		{[]int{}, []int{1}, -1},
		{[]int{1, 2}, []int{1, 2, 3}, -1},
		{[]int{1, 2, 3}, []int{1, 3}, -1},
		{[]int{1, 2}, []int{1, 2}, 0},
		{[]int{2}, []int{1, 9, 9}, +1},
	}
	for _, c := range cases {
		got := forwardlist.Compare(forwardlist.Of(c.a...), forwardlist.Of(c.b...))
		if got != c.want {
			t.Errorf("Compare(%v, %v): expected %d, got %d", c.a, c.b, c.want, got)
		}
		// antisymmetry
		if rev := forwardlist.Compare(forwardlist.Of(c.b...), forwardlist.Of(c.a...)); rev != -c.want {
			t.Errorf("Compare(%v, %v): expected %d, got %d", c.b, c.a, -c.want, rev)
		}
	}
}

func TestOrderingOperators(t *testing.T) {
	a := forwardlist.Of(1, 2)
	b := forwardlist.Of(1, 2, 3)

	require.True(t, forwardlist.Less(a, b))
	require.True(t, forwardlist.LessOrEqual(a, b))
	require.False(t, forwardlist.Greater(a, b))
	require.False(t, forwardlist.GreaterOrEqual(a, b))

	require.True(t, forwardlist.Greater(b, a))
	require.True(t, forwardlist.GreaterOrEqual(b, a))

	eq := forwardlist.Of(1, 2)
	require.False(t, forwardlist.Less(a, eq))
	require.True(t, forwardlist.LessOrEqual(a, eq))
	require.True(t, forwardlist.GreaterOrEqual(a, eq))

	require.True(t, forwardlist.Less(forwardlist.New[int](), forwardlist.Of(1)))
	require.True(t, forwardlist.Less(forwardlist.Of(1, 2, 3), forwardlist.Of(1, 3)))
}

func TestCompareFunc(t *testing.T) {
	desc := func(a, b int) int { return b - a }

	a := forwardlist.Of(3, 1)
	b := forwardlist.Of(2, 9)
	if got := forwardlist.CompareFunc(a, b, desc); got >= 0 {
		t.Errorf("expected a before b under descending order, got %d", got)
	}
}
