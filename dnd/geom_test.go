package dnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointArithmetic(t *testing.T) {
	assert.Equal(t, Pt(5, 7), Pt(2, 3).Add(Pt(3, 4)))
	assert.Equal(t, Pt(-1, -1), Pt(2, 3).Sub(Pt(3, 4)))
}

func TestRectAccessors(t *testing.T) {
	r := R(2, 3, 10, 4)
	assert.Equal(t, 3, r.Top())
	assert.Equal(t, 7, r.Bottom())
	assert.Equal(t, Pt(2, 3), r.TopLeft())
}

func TestRectContains(t *testing.T) {
	r := R(2, 3, 10, 4)

	assert.True(t, r.Contains(Pt(2, 3)))
	assert.True(t, r.Contains(Pt(11, 6)))
	assert.False(t, r.Contains(Pt(12, 3)), "right edge is exclusive")
	assert.False(t, r.Contains(Pt(2, 7)), "bottom edge is exclusive")
	assert.False(t, r.Contains(Pt(1, 3)))
	assert.False(t, r.Contains(Pt(2, 2)))
}

func TestRectInLowerHalf(t *testing.T) {
	// A one-row rect has no lower half.
	one := R(0, 5, 10, 1)
	assert.False(t, one.InLowerHalf(5))
	assert.True(t, one.InLowerHalf(6))

	// The bottom row of a two-row rect is its lower half.
	two := R(0, 5, 10, 2)
	assert.False(t, two.InLowerHalf(5))
	assert.True(t, two.InLowerHalf(6))

	// Odd heights keep the middle row in the upper half.
	three := R(0, 5, 10, 3)
	assert.False(t, three.InLowerHalf(5))
	assert.False(t, three.InLowerHalf(6))
	assert.True(t, three.InLowerHalf(7))
}
