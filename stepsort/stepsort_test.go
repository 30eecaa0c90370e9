package stepsort_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/amp-labs/stepsort/compare"
	"github.com/amp-labs/stepsort/errors"
	"github.com/amp-labs/stepsort/sortable"
	"github.com/amp-labs/stepsort/stepsort"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect drains seq and returns a copy of every snapshot.
func collect[T any](t *testing.T, seq *stepsort.Sequence[T]) [][]T {
	t.Helper()

	var out [][]T

	for snapshot := range seq.All() {
		out = append(out, slices.Clone(snapshot))
	}

	return out
}

func run(t *testing.T, kind stepsort.Kind, input []int) ([]int, [][]int) {
	t.Helper()

	buf := slices.Clone(input)

	seq, err := stepsort.New(kind, buf)
	require.NoError(t, err)

	return buf, collect(t, seq)
}

func randomInput(rng *rand.Rand, n, maxVal int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = rng.IntN(maxVal)
	}

	return out
}

func TestSwap(t *testing.T) {
	t.Parallel()

	buf := []int{1, 2, 3}

	stepsort.Swap(buf, 0, 2)
	assert.Equal(t, []int{3, 2, 1}, buf)

	for i := range buf {
		before := slices.Clone(buf)
		stepsort.Swap(buf, i, i)
		assert.Equal(t, before, buf)
	}
}

func TestSnapshots_ExactOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		kind     stepsort.Kind
		input    []int
		expected [][]int
	}{
		{
			name:     "bubble swaps then stops after a clean pass",
			kind:     stepsort.Bubble,
			input:    []int{3, 1, 2},
			expected: [][]int{{1, 3, 2}, {1, 2, 3}},
		},
		{
			name:     "insertion emits per swap",
			kind:     stepsort.Insertion,
			input:    []int{3, 1, 2},
			expected: [][]int{{1, 3, 2}, {1, 2, 3}},
		},
		{
			name:  "selection emits per comparison and per swap",
			kind:  stepsort.Selection,
			input: []int{2, 1},
			expected: [][]int{
				{2, 1}, {2, 1}, {1, 2}, // i=0: two comparisons, one swap
				{1, 2}, {1, 2}, // i=1: one comparison, no-op swap
			},
		},
		{
			name:  "merge emits per placed element and per level",
			kind:  stepsort.Merge,
			input: []int{3, 1, 2},
			expected: [][]int{
				{3, 1, 2}, {3, 1, 2}, {3, 1, 2}, // merge [1,2] then its level
				{1, 3, 2}, {1, 2, 3}, {1, 2, 3}, // merge [0,2]
				{1, 2, 3}, // level [0,2]
			},
		},
		{
			name:  "quick emits per scan step and per pivot placement",
			kind:  stepsort.Quick,
			input: []int{3, 1, 2},
			expected: [][]int{
				{3, 1, 2}, // 3 < 2 is false
				{1, 3, 2}, // 1 < 2, swapped to the front
				{1, 2, 3}, // pivot placed
			},
		},
		{
			name:  "quick on sorted input degrades to a full scan per level",
			kind:  stepsort.Quick,
			input: []int{1, 2, 3},
			expected: [][]int{
				{1, 2, 3}, {1, 2, 3}, {1, 2, 3},
				{1, 2, 3}, {1, 2, 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf, snapshots := run(t, tt.kind, tt.input)

			assert.Equal(t, tt.expected, snapshots)
			assert.True(t, slices.IsSorted(buf))
		})
	}
}

func TestSelection_FirstPassSwapsMinimumToFront(t *testing.T) {
	t.Parallel()

	_, snapshots := run(t, stepsort.Selection, []int{5, 4, 3, 2, 1})

	// Five comparisons of the first scan, then the swap.
	require.Greater(t, len(snapshots), 5)

	for _, s := range snapshots[:5] {
		assert.Equal(t, []int{5, 4, 3, 2, 1}, s)
	}

	assert.Equal(t, []int{1, 4, 3, 2, 5}, snapshots[5])

	// n(n+1)/2 comparisons plus n swaps.
	assert.Len(t, snapshots, 5*6/2+5)
}

func TestBubble_EarlyExit(t *testing.T) {
	t.Parallel()

	for n := 2; n <= 32; n++ {
		input := make([]int, n)
		for i := range input {
			input[i] = i
		}

		_, snapshots := run(t, stepsort.Bubble, input)
		assert.Empty(t, snapshots, "n=%d", n)
	}
}

func TestBubble_ReversedInputSwapsEveryPair(t *testing.T) {
	t.Parallel()

	n := 10
	input := make([]int, n)

	for i := range input {
		input[i] = n - i
	}

	buf, snapshots := run(t, stepsort.Bubble, input)

	assert.Len(t, snapshots, n*(n-1)/2)
	assert.True(t, slices.IsSorted(buf))
}

func TestTrivialBuffers(t *testing.T) {
	t.Parallel()

	for _, kind := range stepsort.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			t.Parallel()

			for _, input := range [][]int{nil, {}, {42}} {
				buf, snapshots := run(t, kind, input)

				assert.Empty(t, snapshots)
				assert.Equal(t, len(input), len(buf))
			}
		})
	}
}

func TestAllKinds_SortAndPermute(t *testing.T) {
	t.Parallel()

	for _, kind := range stepsort.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			t.Parallel()

			rng := rand.New(rand.NewPCG(1, uint64(kind))) //nolint:gosec

			for n := range 40 {
				input := randomInput(rng, n, 10)

				buf, snapshots := run(t, kind, input)

				assert.True(t, slices.IsSorted(buf), "kind=%s input=%v", kind, input)
				assert.True(t, compare.SameElements(input, buf), "kind=%s input=%v", kind, input)

				for _, s := range snapshots {
					require.True(t, compare.SameElements(input, s),
						"kind=%s snapshot %v is not a permutation of %v", kind, s, input)
				}
			}
		})
	}
}

func TestSnapshotCountBounds(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 7)) //nolint:gosec
	n := 64
	input := randomInput(rng, n, 1000)

	quadratic := map[stepsort.Kind]int{
		stepsort.Bubble:    n * (n - 1) / 2,
		stepsort.Insertion: n * (n - 1) / 2,
		stepsort.Selection: n*(n+1)/2 + n,
	}

	for kind, limit := range quadratic {
		_, snapshots := run(t, kind, input)
		assert.LessOrEqual(t, len(snapshots), limit, kind.String())
	}

	// Merge writes n elements on each of the log2(n) levels, plus one
	// snapshot per merge call (n-1 of them).
	_, merged := run(t, stepsort.Merge, input)
	assert.Equal(t, n*6+n-1, len(merged))

	// Quick on random input stays far below its quadratic worst case.
	_, quick := run(t, stepsort.Quick, input)
	assert.Less(t, len(quick), n*(n+1)/2-1)
}

type keyed struct {
	key int
	id  int
}

func TestMerge_Stable(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 5)) //nolint:gosec

	for n := range 50 {
		buf := make([]keyed, n)
		for i := range buf {
			buf[i] = keyed{key: rng.IntN(4), id: i}
		}

		seq, err := stepsort.NewFunc(stepsort.Merge, buf, func(a, b keyed) bool {
			return a.key < b.key
		})
		require.NoError(t, err)

		collect(t, seq)

		for i := 1; i < len(buf); i++ {
			require.LessOrEqual(t, buf[i-1].key, buf[i].key)

			if buf[i-1].key == buf[i].key {
				require.Less(t, buf[i-1].id, buf[i].id, "equal keys reordered: %v", buf)
			}
		}
	}
}

func TestCancellation_LeavesPermutation(t *testing.T) {
	t.Parallel()

	input := []int{9, 3, 7, 3, 1, 8, 2, 2, 6, 0, 5}

	for _, kind := range stepsort.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			t.Parallel()

			_, full := run(t, kind, input)

			for pulls := 0; pulls <= len(full); pulls++ {
				buf := slices.Clone(input)

				seq, err := stepsort.New(kind, buf)
				require.NoError(t, err)

				for range pulls {
					_, ok := seq.Next()
					require.True(t, ok)
				}

				seq.Stop()

				assert.True(t, compare.SameElements(input, buf), "stopped after %d pulls: %v", pulls, buf)

				if pulls > 0 {
					assert.Equal(t, full[pulls-1], buf, "buffer must match the last snapshot")
				}

				_, ok := seq.Next()
				assert.False(t, ok, "a stopped sequence stays done")
			}
		})
	}
}

func TestSequence_PullPastExhaustion(t *testing.T) {
	t.Parallel()

	seq, err := stepsort.New(stepsort.Insertion, []int{2, 1})
	require.NoError(t, err)

	snapshot, ok := seq.Next()
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, snapshot)

	for range 3 {
		snapshot, ok = seq.Next()
		assert.False(t, ok)
		assert.Nil(t, snapshot)
	}

	seq.Stop()
	seq.Stop()
}

func TestSequence_AllBreakStops(t *testing.T) {
	t.Parallel()

	buf := []int{5, 4, 3, 2, 1}

	seq, err := stepsort.New(stepsort.Bubble, buf)
	require.NoError(t, err)

	count := 0

	for range seq.All() {
		count++
		if count == 2 {
			break
		}
	}

	assert.Equal(t, 2, count)
	assert.Equal(t, []int{4, 3, 5, 2, 1}, buf)

	_, ok := seq.Next()
	assert.False(t, ok)
	assert.Equal(t, stepsort.Bubble, seq.Kind())
}

func TestSnapshotIsLiveView(t *testing.T) {
	t.Parallel()

	buf := []int{2, 1}

	seq, err := stepsort.New(stepsort.Quick, buf)
	require.NoError(t, err)

	defer seq.Stop()

	snapshot, ok := seq.Next()
	require.True(t, ok)

	assert.Same(t, &buf[0], &snapshot[0])
}

func TestNewRange(t *testing.T) {
	t.Parallel()

	for _, kind := range []stepsort.Kind{stepsort.Merge, stepsort.Quick} {
		t.Run(kind.String(), func(t *testing.T) {
			t.Parallel()

			buf := []int{9, 5, 4, 3, 0}

			seq, err := stepsort.NewRange(kind, buf, 1, 3)
			require.NoError(t, err)

			collect(t, seq)

			assert.Equal(t, []int{9, 3, 4, 5, 0}, buf)
		})
	}
}

func TestNewRange_EmptyRange(t *testing.T) {
	t.Parallel()

	buf := []int{3, 2, 1}

	seq, err := stepsort.NewRange(stepsort.Quick, buf, 2, 1)
	require.NoError(t, err)

	assert.Empty(t, collect(t, seq))
	assert.Equal(t, []int{3, 2, 1}, buf)
}

func TestConstruction_InvalidArgument(t *testing.T) {
	t.Parallel()

	buf := []int{3, 2, 1}

	tests := []struct {
		name  string
		build func() error
	}{
		{
			name: "zero kind",
			build: func() error {
				_, err := stepsort.New(stepsort.Kind(0), buf)

				return err
			},
		},
		{
			name: "out of range kind",
			build: func() error {
				_, err := stepsort.New(stepsort.Kind(99), buf)

				return err
			},
		},
		{
			name: "nil less",
			build: func() error {
				_, err := stepsort.NewFunc[int](stepsort.Merge, buf, nil)

				return err
			},
		},
		{
			name: "range with a non-ranged kind",
			build: func() error {
				_, err := stepsort.NewRange(stepsort.Bubble, buf, 0, 2)

				return err
			},
		},
		{
			name: "negative start",
			build: func() error {
				_, err := stepsort.NewRange(stepsort.Merge, buf, -1, 2)

				return err
			},
		},
		{
			name: "start past the end",
			build: func() error {
				_, err := stepsort.NewRange(stepsort.Quick, buf, 3, 2)

				return err
			},
		},
		{
			name: "end past the end",
			build: func() error {
				_, err := stepsort.NewRange(stepsort.Merge, buf, 0, 3)

				return err
			},
		},
		{
			name: "range over an empty buffer",
			build: func() error {
				_, err := stepsort.NewRange(stepsort.Merge, []int{}, 0, -1)

				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.build()
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrInvalidArgument)
		})
	}

	assert.Equal(t, []int{3, 2, 1}, buf, "failed construction must not touch the buffer")
}

func TestNewSortable(t *testing.T) {
	t.Parallel()

	buf := []sortable.String{"pear", "apple", "fig", "banana"}

	seq, err := stepsort.NewSortable(stepsort.Selection, buf)
	require.NoError(t, err)

	collect(t, seq)

	assert.Equal(t, []sortable.String{"apple", "banana", "fig", "pear"}, buf)
}

func TestFloatsAndStrings(t *testing.T) {
	t.Parallel()

	floats := []float64{2.5, -1, 0, 2.25}

	seq, err := stepsort.New(stepsort.Quick, floats)
	require.NoError(t, err)
	collect(t, seq)
	assert.Equal(t, []float64{-1, 0, 2.25, 2.5}, floats)

	words := []string{"b", "c", "a"}

	seq2, err := stepsort.New(stepsort.Merge, words)
	require.NoError(t, err)
	collect(t, seq2)
	assert.Equal(t, []string{"a", "b", "c"}, words)
}
