package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matrixCompat(rows [][]bool) func(i, j int) bool {
	return func(i, j int) bool { return rows[i][j] }
}

func TestMaximumMatchingPerfect(t *testing.T) {
	// 0-0, 1-1, 2-2 is reachable only through augmentation: left 0 and 1
	// both prefer right 0 first.
	rows := [][]bool{
		{true, true, false},
		{true, false, false},
		{false, false, true},
	}
	l2r, r2l := maximumMatching(3, 3, matrixCompat(rows))
	assert.Equal(t, 3, matchingSize(l2r))
	assert.Equal(t, 3, matchingSize(r2l))
	for i, j := range l2r {
		require.NotEqual(t, -1, j)
		assert.Equal(t, i, r2l[j])
		assert.True(t, rows[i][j])
	}
}

func TestMaximumMatchingPartial(t *testing.T) {
	// Left 0 and 1 compete for the single compatible right node.
	rows := [][]bool{
		{true},
		{true},
	}
	l2r, r2l := maximumMatching(2, 1, matrixCompat(rows))
	assert.Equal(t, 1, matchingSize(l2r))

	unmatchedLeft := 0
	for _, j := range l2r {
		if j == -1 {
			unmatchedLeft++
		}
	}
	assert.Equal(t, 1, unmatchedLeft)
	assert.Equal(t, 0, r2l[0]) // first-found tie-break is deterministic
}

func TestMaximumMatchingNoEdges(t *testing.T) {
	l2r, r2l := maximumMatching(2, 2, func(i, j int) bool { return false })
	assert.Equal(t, 0, matchingSize(l2r))
	assert.Equal(t, []int{-1, -1}, l2r)
	assert.Equal(t, []int{-1, -1}, r2l)
}

func TestMaximumMatchingEmptySides(t *testing.T) {
	l2r, r2l := maximumMatching(0, 3, func(i, j int) bool { return true })
	assert.Empty(t, l2r)
	assert.Equal(t, []int{-1, -1, -1}, r2l)

	l2r, r2l = maximumMatching(2, 0, func(i, j int) bool { return true })
	assert.Equal(t, []int{-1, -1}, l2r)
	assert.Empty(t, r2l)
}

func TestMaximumMatchingRequiresAugmentingPaths(t *testing.T) {
	// Greedy assignment gets stuck at size 2 here; the augmenting-path
	// search must rearrange earlier pairs to reach 3.
	rows := [][]bool{
		{true, true, false},
		{true, false, true},
		{true, false, false},
	}
	l2r, _ := maximumMatching(3, 3, matrixCompat(rows))
	assert.Equal(t, 3, matchingSize(l2r))
}

func TestMaximumMatchingDeterministic(t *testing.T) {
	rows := [][]bool{
		{true, true},
		{true, true},
	}
	first, _ := maximumMatching(2, 2, matrixCompat(rows))
	for i := 0; i < 10; i++ {
		again, _ := maximumMatching(2, 2, matrixCompat(rows))
		assert.Equal(t, first, again)
	}
}
