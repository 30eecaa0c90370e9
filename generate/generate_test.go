package generate

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermutation(t *testing.T) {
	t.Parallel()

	got := Permutation(50, 7)

	assert.Len(t, got, 50)
	assert.Equal(t, got, Permutation(50, 7), "same seed must give the same order")
	assert.NotEqual(t, got, Permutation(50, 8))
	assert.NotEqual(t, Sorted(50), got)

	sorted := slices.Clone(got)
	slices.Sort(sorted)
	assert.Equal(t, Sorted(50), sorted)
}

func TestShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  []int
		want []int
	}{
		{"sorted", Sorted(4), []int{1, 2, 3, 4}},
		{"reversed", Reversed(4), []int{4, 3, 2, 1}},
		{"empty permutation", Permutation(0, 1), []int{}},
		{"negative sorted", Sorted(-1), []int{}},
		{"negative reversed", Reversed(-3), []int{}},
		{"single", Permutation(1, 99), []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.got)
		})
	}
}
