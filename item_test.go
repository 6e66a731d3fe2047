package draglist

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"

	"github.com/xqrs/draglist/dnd"
)

func TestTextItemHeight(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		secondary string
		wrap      bool
		width     int
		want      int
	}{
		{name: "single line", text: "hello", width: 10, want: 1},
		{name: "truncation does not add rows", text: "a very long line of text", width: 10, want: 1},
		{name: "wrapped", text: "the quick brown fox", wrap: true, width: 10, want: 2},
		{name: "secondary adds a row", text: "hello", secondary: "note", width: 10, want: 2},
		{name: "wrapped with secondary", text: "the quick brown fox", secondary: "note", wrap: true, width: 10, want: 3},
		{name: "empty text still occupies a row", text: "", width: 10, want: 1},
		{name: "zero width", text: "hello", width: 0, want: 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			item := NewTextItem(test.text).SetSecondary(test.secondary).SetWrap(test.wrap)
			assert.Equal(t, test.want, item.Height(test.width))
		})
	}
}

func TestTextItemDrawStates(t *testing.T) {
	screen := simScreen(t)
	base := tcell.StyleDefault.Foreground(Styles.PrimaryTextColor)

	item := NewTextItem("task")

	item.Draw(screen, 0, 0, 10, ItemState{})
	assert.Equal(t, "task", rowText(screen, 0, 10))
	assert.Equal(t, base, cellStyle(screen, 0, 0))

	item.Draw(screen, 0, 1, 10, ItemState{Selected: true})
	assert.Equal(t, base.Reverse(true), cellStyle(screen, 0, 1))

	item.Draw(screen, 0, 2, 10, ItemState{Dragging: true})
	assert.Equal(t, base.Bold(true), cellStyle(screen, 0, 2))

	item.Draw(screen, 0, 3, 10, ItemState{Placeholder: true})
	assert.Equal(t, base.Foreground(Styles.PlaceholderColor).Dim(true), cellStyle(screen, 0, 3))

	// While dragging, the floating row ignores the selection styling.
	item.Draw(screen, 0, 4, 10, ItemState{Selected: true, Dragging: true})
	assert.Equal(t, base.Bold(true), cellStyle(screen, 0, 4))
}

func TestTextItemDrawWrapAndSecondary(t *testing.T) {
	screen := simScreen(t)

	item := NewTextItem("the quick brown fox").SetWrap(true).SetSecondary("2 subtasks")
	item.Draw(screen, 0, 0, 10, ItemState{})

	assert.Equal(t, "the quick", rowText(screen, 0, 10))
	assert.Equal(t, "brown fox", rowText(screen, 1, 10))
	assert.Equal(t, "2 subtasks", rowText(screen, 2, 10))

	secondary := tcell.StyleDefault.Foreground(Styles.SecondaryTextColor)
	assert.Equal(t, secondary, cellStyle(screen, 0, 2))
}

func TestTextItemDragIdentity(t *testing.T) {
	first := NewTextItem("a")
	second := NewTextItem("b")
	assert.NotEqual(t, first.DragID(), second.DragID(), "generated identities are unique")

	first.SetDragID(dnd.HashString("task-42"))
	assert.Equal(t, dnd.HashString("task-42"), first.DragID())

	first.SetText("renamed")
	assert.Equal(t, "renamed", first.GetText())
	assert.Equal(t, dnd.HashString("task-42"), first.DragID(), "renaming does not change identity")
}
