package dnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashStringDeterministic(t *testing.T) {
	assert.Equal(t, HashString("alpha"), HashString("alpha"))
	assert.NotEqual(t, HashString("alpha"), HashString("beta"))
	assert.NotEqual(t, ItemID(0), HashString("alpha"))
}

func TestHashUint64(t *testing.T) {
	assert.Equal(t, HashUint64(42), HashUint64(42))
	assert.NotEqual(t, HashUint64(42), HashUint64(43))
}

func TestMixIsOrderSensitive(t *testing.T) {
	ab := HashString("a").MixString("b")
	ba := HashString("b").MixString("a")
	assert.NotEqual(t, ab, ba)

	assert.Equal(t, HashString("a").MixUint64(1), HashString("a").MixUint64(1))
	assert.NotEqual(t, HashString("a").MixUint64(1), HashString("a").MixUint64(2))
}

func TestMixExtendsHash(t *testing.T) {
	// Mixing continues the running hash, so a mixed ID differs from the
	// hash of either part alone.
	id := HashString("list").MixUint64(7)
	assert.NotEqual(t, HashString("list"), id)
	assert.NotEqual(t, HashUint64(7), id)
}
