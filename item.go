package draglist

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v3"

	"github.com/xqrs/draglist/dnd"
)

// ItemState describes how a list item should render itself for one draw call.
// At most one of Dragging and Placeholder is set; Selected may combine with
// either.
type ItemState struct {
	// Selected is set when the item is the list's keyboard selection.
	Selected bool

	// Dragging is set when the item is rendered as the floating row that
	// follows the pointer.
	Dragging bool

	// Placeholder is set when the item is rendered dimmed at the slot it
	// would occupy if the drag were dropped here.
	Placeholder bool
}

// Item is a single row of a [List]. Items render their own content so lists
// can mix heights and looks. The drag identity keeps an in-flight drag
// attached to its item when the backing slice changes underneath it.
type Item interface {
	dnd.Identifiable

	// Height returns the number of rows the item occupies at the given
	// width. It must be at least 1 for the item to be visible.
	Height(width int) int

	// Draw renders the item into the rows [y, y+Height(width)) starting at
	// column x. The list clips drawing to its inner rectangle.
	Draw(screen tcell.Screen, x, y, width int, state ItemState)
}

var textItemSeq atomic.Uint64

// TextItem is a basic [Item] with a main text and an optional secondary text
// line. Main text can wrap over multiple rows.
type TextItem struct {
	id             dnd.ItemID
	text           string
	secondary      string
	wrap           bool
	style          tcell.Style
	secondaryStyle tcell.Style
}

// NewTextItem returns a new text item with a process-unique drag identity.
func NewTextItem(text string) *TextItem {
	return &TextItem{
		id:             dnd.HashUint64(textItemSeq.Add(1)),
		text:           text,
		style:          tcell.StyleDefault.Foreground(Styles.PrimaryTextColor),
		secondaryStyle: tcell.StyleDefault.Foreground(Styles.SecondaryTextColor),
	}
}

// DragID returns the item's drag identity.
func (t *TextItem) DragID() dnd.ItemID {
	return t.id
}

// SetDragID overrides the generated drag identity, letting callers derive it
// from their own stable keys, e.g. dnd.HashString of a database ID.
func (t *TextItem) SetDragID(id dnd.ItemID) *TextItem {
	t.id = id
	return t
}

// GetText returns the main text.
func (t *TextItem) GetText() string {
	return t.text
}

// SetText sets the main text.
func (t *TextItem) SetText(text string) *TextItem {
	t.text = text
	return t
}

// GetSecondary returns the secondary text.
func (t *TextItem) GetSecondary() string {
	return t.secondary
}

// SetSecondary sets an optional secondary text shown below the main text.
func (t *TextItem) SetSecondary(secondary string) *TextItem {
	t.secondary = secondary
	return t
}

// SetWrap sets whether the main text wraps over multiple rows instead of
// being truncated.
func (t *TextItem) SetWrap(wrap bool) *TextItem {
	t.wrap = wrap
	return t
}

// SetStyle sets the style of the main text.
func (t *TextItem) SetStyle(style tcell.Style) *TextItem {
	t.style = style
	return t
}

// SetSecondaryStyle sets the style of the secondary text.
func (t *TextItem) SetSecondaryStyle(style tcell.Style) *TextItem {
	t.secondaryStyle = style
	return t
}

func (t *TextItem) mainLines(width int) []string {
	if !t.wrap {
		return []string{t.text}
	}
	return WordWrap(t.text, width)
}

// Height returns the number of rows needed at the given width.
func (t *TextItem) Height(width int) int {
	if width <= 0 {
		return 0
	}
	height := len(t.mainLines(width))
	if height < 1 {
		height = 1
	}
	if t.secondary != "" {
		height++
	}
	return height
}

// Draw renders the item.
func (t *TextItem) Draw(screen tcell.Screen, x, y, width int, state ItemState) {
	if width <= 0 {
		return
	}

	style, secondaryStyle := t.style, t.secondaryStyle
	switch {
	case state.Placeholder:
		style = style.Foreground(Styles.PlaceholderColor).Dim(true)
		secondaryStyle = secondaryStyle.Foreground(Styles.PlaceholderColor).Dim(true)
	case state.Dragging:
		style = style.Bold(true)
		secondaryStyle = secondaryStyle.Bold(true)
	case state.Selected:
		style = style.Reverse(true)
		secondaryStyle = secondaryStyle.Reverse(true)
	}

	row := y
	for _, line := range t.mainLines(width) {
		PrintWithStyle(screen, line, x, row, width, AlignmentLeft, style)
		row++
	}
	if t.secondary != "" {
		PrintWithStyle(screen, t.secondary, x, row, width, AlignmentLeft, secondaryStyle)
	}
}

var _ Item = &TextItem{}
