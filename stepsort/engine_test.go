package stepsort

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(buf []int) *engine[int] {
	return &engine[int]{
		buf:   buf,
		less:  cmp.Less[int],
		yield: func([]int) bool { return true },
	}
}

func TestPartition_Invariant(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(11, 13)) //nolint:gosec

	for range 200 {
		n := 2 + rng.IntN(20)
		buf := make([]int, n)

		for i := range buf {
			buf[i] = rng.IntN(6)
		}

		start := rng.IntN(n - 1)
		end := start + 1 + rng.IntN(n-start-1)
		pivot := buf[end]

		pivotIdx, ok := newTestEngine(buf).partition(start, end)
		require.True(t, ok)
		require.Equal(t, pivot, buf[pivotIdx])

		for i := start; i < pivotIdx; i++ {
			assert.Less(t, buf[i], buf[pivotIdx], "left of pivot in %v", buf)
		}

		for i := pivotIdx + 1; i <= end; i++ {
			assert.GreaterOrEqual(t, buf[i], buf[pivotIdx], "right of pivot in %v", buf)
		}
	}
}

func TestPartition_EmitsPerScanStep(t *testing.T) {
	t.Parallel()

	buf := []int{4, 8, 1, 9, 5}
	e := newTestEngine(buf)

	var emitted int

	e.yield = func([]int) bool {
		emitted++

		return true
	}

	pivotIdx, ok := e.partition(0, len(buf)-1)
	require.True(t, ok)

	assert.Equal(t, 2, pivotIdx)
	assert.Equal(t, []int{4, 1, 5, 9, 8}, buf)
	assert.Equal(t, len(buf), emitted, "one per scanned element plus the pivot")
}

func TestMerge_WritesInPlace(t *testing.T) {
	t.Parallel()

	buf := []int{0, 2, 5, 9, 1, 3, 4, 0}
	e := newTestEngine(buf)

	var emitted [][]int

	e.yield = func(s []int) bool {
		emitted = append(emitted, slices.Clone(s))

		return true
	}

	require.True(t, e.merge(1, 3, 6))

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 9, 0}, buf)
	require.Len(t, emitted, 6)

	// After k writes the first k slots of the range hold the merged prefix.
	merged := []int{1, 2, 3, 4, 5, 9}
	for k, s := range emitted {
		assert.Equal(t, merged[:k+1], s[1:k+2])
		assert.ElementsMatch(t, []int{0, 2, 5, 9, 1, 3, 4, 0}, s)
	}
}

func TestMerge_StopMidway(t *testing.T) {
	t.Parallel()

	buf := []int{7, 8, 9, 1, 2, 3}
	e := newTestEngine(buf)

	writes := 0
	e.yield = func([]int) bool {
		writes++

		return writes < 2
	}

	assert.False(t, e.merge(0, 2, 5))
	assert.Equal(t, 2, writes)
	assert.Equal(t, []int{1, 2}, buf[:2])
	assert.ElementsMatch(t, []int{1, 2, 3, 7, 8, 9}, buf)
}
