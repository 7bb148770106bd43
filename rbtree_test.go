package rbtree

import (
	"errors"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	tree := MakeOrderedMap[int, struct{}]()
	tree.Insert(2, struct{}{})
	tree.Insert(12, struct{}{})
	tree.Insert(1, struct{}{})

	require.Equal(t, []int{1, 2, 12}, tree.Keys())
	require.Equal(t, 3, tree.Len())
	require.Equal(t, "(1:{})2:{}(12:{})", tree.String())
	_, err := tree.Validate()
	require.NoError(t, err)
}

func TestAscendingInsert(t *testing.T) {
	tree := MakeOrderedMap[int, int]()
	for i := 0; i < 8; i++ {
		tree.Insert(i, i)
	}
	stats, err := tree.Validate()
	require.NoError(t, err)
	require.Equal(t, Stats{Len: 8, Height: 4, BlackHeight: 3}, stats)
	require.Equal(t, []Entry[int, int]{
		{Key: 3, Value: 3, Color: Black, Depth: 0},
		{Key: 1, Value: 1, Color: Red, Depth: 1},
		{Key: 0, Value: 0, Color: Black, Depth: 2},
		{Key: 2, Value: 2, Color: Black, Depth: 2},
		{Key: 5, Value: 5, Color: Red, Depth: 1},
		{Key: 4, Value: 4, Color: Black, Depth: 2},
		{Key: 6, Value: 6, Color: Black, Depth: 2},
		{Key: 7, Value: 7, Color: Red, Depth: 3},
	}, tree.Dump())
}

func TestRemoveFromSeven(t *testing.T) {
	tree := MakeOrderedMap[int, int]()
	for _, k := range []int{10, 20, 30, 40, 50, 60, 70} {
		tree.Insert(k, k)
	}
	old, removed := tree.Remove(20)
	require.True(t, removed)
	require.Equal(t, 20, old)
	_, err := tree.Validate()
	require.NoError(t, err)
	require.Equal(t, []int{10, 30, 40, 50, 60, 70}, tree.Keys())
	require.Equal(t, "(10:10)30:30((()40:40(50:50))60:60(70:70))", tree.String())
}

func TestEmpty(t *testing.T) {
	tree := MakeOrderedMap[string, int]()
	require.Equal(t, ";", tree.String())
	require.Empty(t, tree.Keys())
	require.Empty(t, tree.Dump())
	require.Zero(t, tree.Height())

	_, removed := tree.Remove("missing")
	require.False(t, removed)

	stats, err := tree.Validate()
	require.NoError(t, err)
	require.Equal(t, Stats{BlackHeight: 1}, stats)

	var b strings.Builder
	require.NoError(t, tree.Fprint(&b))
	require.Equal(t, "nil\n", b.String())
}

// TestRandomOperations compares the tree against a builtin map over a
// random mix of inserts and removes, with full validation after each one.
func TestRandomOperations(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 20; round++ {
		tree := MakeOrderedMap[int, int](WithInvariantChecks())
		ref := map[int]int{}
		n := rng.Intn(500) + 1
		for i := 0; i < 4*n; i++ {
			k := rng.Intn(n)
			if rng.Float64() < .6 {
				old, replaced := tree.Insert(k, i)
				prev, ok := ref[k]
				require.Equal(t, ok, replaced)
				require.Equal(t, prev, old)
				ref[k] = i
			} else {
				old, removed := tree.Remove(k)
				prev, ok := ref[k]
				require.Equal(t, ok, removed)
				require.Equal(t, prev, old)
				delete(ref, k)
			}
		}
		require.Equal(t, len(ref), tree.Len())
		expKeys := make([]int, 0, len(ref))
		for k, v := range ref {
			expKeys = append(expKeys, k)
			got, ok := tree.Get(k)
			require.True(t, ok)
			require.Equal(t, v, got)
		}
		sort.Ints(expKeys)
		if len(expKeys) == 0 {
			require.Empty(t, tree.Keys())
		} else {
			require.Equal(t, expKeys, tree.Keys())
		}
	}
}

func TestViolationIsInvariantError(t *testing.T) {
	var err error = &Violation{Kind: RedRedAdjacency, Path: "L", Key: 1, Color: Red}
	require.True(t, errors.Is(err, ErrInvariantViolated))
	var v *Violation
	require.True(t, errors.As(err, &v))
	require.Equal(t, RedRedAdjacency, v.Kind)
	require.Equal(t, `red-red adjacency at "L" (key 1, color RED)`, err.Error())
}
