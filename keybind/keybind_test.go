package keybind

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"j", "j"},
		{" j ", "j"},
		{"J", "J"},
		{"Shift+J", "shift+j"},
		{"CTRL+C", "ctrl+c"},
		{"ctrl-c", "ctrl+c"},
		{"Ctrl-X", "ctrl+x"},
		{"Control+N", "ctrl+n"},
		{"backtab", "shift+tab"},
		{"Escape", "esc"},
		{"Return", "enter"},
		{"PageUp", "pgup"},
		{"PageDown", "pgdn"},
		{"space", " "},
		{"ctrl+space", "ctrl+ "},
		{"Rune[x]", "x"},
		{"Rune[ ]", " "},
		{"alt+shift+p", "alt+shift+p"},
		{"ctrl+ctrl+c", "ctrl+c"},
		{"", ""},
		{"+", ""},
		{"shift", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, normalizeKey(tc.in), "normalizeKey(%q)", tc.in)
	}
}

func TestWithKeysNormalizesAndDropsEmpty(t *testing.T) {
	kb := NewKeybind(WithKeys("J", "Shift+Down", "", "backtab"))
	assert.Equal(t, []string{"J", "shift+down", "shift+tab"}, kb.Keys())

	kb.SetKeys("Ctrl+N")
	assert.Equal(t, []string{"ctrl+n"}, kb.Keys())
}

func TestHelpAccessors(t *testing.T) {
	kb := NewKeybind(WithKeys("j"), WithHelp("j/↓", "move down"))
	assert.Equal(t, Help{Key: "j/↓", Desc: "move down"}, kb.Help())

	kb.SetHelp("k", "move up")
	assert.Equal(t, Help{Key: "k", Desc: "move up"}, kb.Help())
}

func TestMatchesEvents(t *testing.T) {
	down := NewKeybind(WithKeys("j", "down"))
	moveDown := NewKeybind(WithKeys("J", "shift+down"))
	quit := NewKeybind(WithKeys("q", "ctrl-c"))
	confirm := NewKeybind(WithKeys("enter", "space"))

	assert.True(t, Matches(tcell.NewEventKey(tcell.KeyRune, "j", tcell.ModNone), down))
	assert.True(t, Matches(tcell.NewEventKey(tcell.KeyDown, "", tcell.ModNone), down))
	assert.False(t, Matches(tcell.NewEventKey(tcell.KeyRune, "J", tcell.ModNone), down),
		"rune bindings are case sensitive")

	assert.True(t, Matches(tcell.NewEventKey(tcell.KeyRune, "J", tcell.ModNone), moveDown))
	assert.True(t, Matches(tcell.NewEventKey(tcell.KeyDown, "", tcell.ModShift), moveDown))

	assert.True(t, Matches(tcell.NewEventKey(tcell.KeyCtrlC, "", tcell.ModCtrl), quit))
	assert.True(t, Matches(tcell.NewEventKey(tcell.KeyRune, "q", tcell.ModNone), quit))

	assert.True(t, Matches(tcell.NewEventKey(tcell.KeyEnter, "", tcell.ModNone), confirm))
	assert.True(t, Matches(tcell.NewEventKey(tcell.KeyRune, " ", tcell.ModNone), confirm))

	assert.True(t, Matches(tcell.NewEventKey(tcell.KeyBacktab, "", tcell.ModNone), NewKeybind(WithKeys("backtab"))))

	alt := NewKeybind(WithKeys("Alt+X"))
	assert.True(t, Matches(tcell.NewEventKey(tcell.KeyRune, "x", tcell.ModAlt), alt))
	assert.False(t, Matches(tcell.NewEventKey(tcell.KeyRune, "x", tcell.ModNone), alt))

	// Any of the given keybinds may match.
	assert.True(t, Matches(tcell.NewEventKey(tcell.KeyRune, "q", tcell.ModNone), down, quit))
	assert.False(t, Matches(tcell.NewEventKey(tcell.KeyRune, "z", tcell.ModNone), down, quit))

	assert.False(t, Matches(nil, down))
}

func TestDisabledKeybindsNeverMatch(t *testing.T) {
	kb := NewKeybind(WithKeys("j"), WithDisabled())
	assert.False(t, kb.Enabled())

	event := tcell.NewEventKey(tcell.KeyRune, "j", tcell.ModNone)
	assert.False(t, Matches(event, kb))

	kb.SetEnabled(true)
	assert.True(t, kb.Enabled())
	assert.True(t, Matches(event, kb))

	kb.SetEnabled(false)
	assert.False(t, Matches(event, kb))
}
