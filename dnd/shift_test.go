package dnd

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftForward(t *testing.T) {
	seq := []int{1, 2, 3, 4}
	require.NoError(t, Shift(0, 2, seq))
	assert.Equal(t, []int{2, 1, 3, 4}, seq)
}

func TestShiftBackward(t *testing.T) {
	seq := []int{2, 1, 3, 4}
	require.NoError(t, Shift(2, 0, seq))
	assert.Equal(t, []int{3, 2, 1, 4}, seq)
}

func TestShiftIdentity(t *testing.T) {
	seq := []int{1, 2, 3, 4}
	for _, i := range []int{0, 1, 3, 4} {
		require.NoError(t, Shift(i, i, seq))
		assert.Equal(t, []int{1, 2, 3, 4}, seq)
	}
}

func TestShiftInvalidIndices(t *testing.T) {
	tests := []struct {
		name           string
		source, target int
	}{
		{"source past end", 5, 2},
		{"target past end", 0, 5},
		{"negative source", -1, 2},
		{"negative target", 2, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := []int{1, 2, 3}
			err := Shift(tt.source, tt.target, seq)
			require.Error(t, err)

			var indexErr *IndexError
			require.ErrorAs(t, err, &indexErr)
			assert.Equal(t, tt.source, indexErr.Source)
			assert.Equal(t, tt.target, indexErr.Target)
			assert.Equal(t, 3, indexErr.Len)
			assert.Equal(t, []int{1, 2, 3}, seq, "failed shift must not touch the sequence")
		})
	}
}

func TestShiftErrorMessage(t *testing.T) {
	err := Shift(5, 2, []int{1, 2, 3})
	require.Error(t, err)
	assert.Equal(t, "draglist: invalid drag indices (source 5, target 2, len 3)", err.Error())
}

// Every forward rotation must land the source element at target-1, shift the
// elements between them left by one, and leave everything else untouched.
func TestShiftForwardProperties(t *testing.T) {
	orig := []int{10, 11, 12, 13, 14, 15}
	n := len(orig)
	for source := 0; source < n; source++ {
		for target := source + 1; target <= n; target++ {
			seq := slices.Clone(orig)
			require.NoError(t, Shift(source, target, seq))

			assert.Equal(t, orig[source], seq[target-1], "Shift(%d, %d)", source, target)
			for i := source; i < target-1; i++ {
				assert.Equal(t, orig[i+1], seq[i], "Shift(%d, %d) at %d", source, target, i)
			}
			for i := 0; i < source; i++ {
				assert.Equal(t, orig[i], seq[i])
			}
			for i := target; i < n; i++ {
				assert.Equal(t, orig[i], seq[i])
			}
		}
	}
}

func TestShiftBackwardProperties(t *testing.T) {
	orig := []int{10, 11, 12, 13, 14, 15}
	n := len(orig)
	for source := 0; source < n; source++ {
		for target := 0; target < source; target++ {
			seq := slices.Clone(orig)
			require.NoError(t, Shift(source, target, seq))

			assert.Equal(t, orig[source], seq[target], "Shift(%d, %d)", source, target)
			for i := target; i < source; i++ {
				assert.Equal(t, orig[i], seq[i+1], "Shift(%d, %d) at %d", source, target, i)
			}
			for i := 0; i < target; i++ {
				assert.Equal(t, orig[i], seq[i])
			}
			for i := source + 1; i < n; i++ {
				assert.Equal(t, orig[i], seq[i])
			}
		}
	}
}

func TestMove(t *testing.T) {
	seq := []int{1, 2, 3, 4}

	Move(1, 1, seq)
	assert.Equal(t, []int{1, 2, 3, 4}, seq)

	Move(0, 2, seq)
	assert.Equal(t, []int{2, 1, 3, 4}, seq)

	Move(2, 0, seq)
	assert.Equal(t, []int{3, 2, 1, 4}, seq)
}

func TestMoveIdentity(t *testing.T) {
	orig := []string{"a", "b", "c", "d", "e"}
	for i := 0; i <= len(orig); i++ {
		seq := slices.Clone(orig)
		Move(i, i, seq)
		assert.Equal(t, orig, seq, "Move(%d, %d)", i, i)
	}
}

func TestMoveOutOfRangeIsNoOp(t *testing.T) {
	orig := []int{1, 2, 3}
	tests := []struct {
		name           string
		source, target int
	}{
		{"source at end", 3, 0},
		{"source past end", 7, 1},
		{"target past end", 0, 4},
		{"negative source", -2, 1},
		{"negative target", 1, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := slices.Clone(orig)
			Move(tt.source, tt.target, seq)
			assert.Equal(t, orig, seq)
		})
	}
}

// Moving an element and then moving it back restores the original order. The
// inverse target has to account for the post-move shift rather than reusing
// the forward target verbatim.
func TestMoveInverse(t *testing.T) {
	orig := []int{20, 21, 22, 23, 24}
	n := len(orig)
	for source := 0; source < n; source++ {
		for target := 0; target <= n; target++ {
			seq := slices.Clone(orig)
			Move(source, target, seq)

			pos := slices.Index(seq, orig[source])
			back := source
			if pos < back {
				back++
			}
			Move(pos, back, seq)
			assert.Equal(t, orig, seq, "Move(%d, %d) then Move(%d, %d)", source, target, pos, back)
		}
	}
}

// Move and Shift agree on every semantically valid pair.
func TestMoveMatchesShift(t *testing.T) {
	orig := []int{30, 31, 32, 33, 34}
	n := len(orig)
	for source := 0; source < n; source++ {
		for target := 0; target <= n; target++ {
			moved := slices.Clone(orig)
			Move(source, target, moved)

			shifted := slices.Clone(orig)
			require.NoError(t, Shift(source, target, shifted))
			assert.Equal(t, shifted, moved, "source %d target %d", source, target)
		}
	}
}

func TestIndicesApply(t *testing.T) {
	orig := []int{0, 1, 2, 3, 4}
	for source := 0; source < len(orig); source++ {
		for target := 0; target <= len(orig); target++ {
			seq := slices.Clone(orig)
			Move(source, target, seq)

			in := Indices{Source: source, Target: target}
			for i, v := range orig {
				assert.Equal(t, v, seq[in.Apply(i)], "Apply(%d) after Move(%d, %d)", i, source, target)
			}
		}
	}
}

func TestIndicesMoved(t *testing.T) {
	assert.False(t, Indices{Source: 2, Target: 2}.Moved())
	assert.True(t, Indices{Source: 2, Target: 3}.Moved())
}

func TestIndexErrorUnwrap(t *testing.T) {
	err := Shift(9, 0, []int{1})
	var indexErr *IndexError
	assert.True(t, errors.As(err, &indexErr))
}
