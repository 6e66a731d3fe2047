package draglist

import (
	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"

	"github.com/xqrs/draglist/dnd"
	"github.com/xqrs/draglist/keybind"
)

// DefaultDragHandle is the glyph drawn in the handle gutter when handles are
// enabled.
const DefaultDragHandle = "≡"

// ListKeybinds bundles the key bindings of a [List]. Its help methods make it
// usable as a key map for the help package.
type ListKeybinds struct {
	Up       keybind.Keybind
	Down     keybind.Keybind
	MoveUp   keybind.Keybind
	MoveDown keybind.Keybind
	Select   keybind.Keybind
}

// DefaultListKeybinds returns the default list bindings.
func DefaultListKeybinds() ListKeybinds {
	return ListKeybinds{
		Up: keybind.NewKeybind(
			keybind.WithKeys("up", "k"),
			keybind.WithHelp("↑/k", "up"),
		),
		Down: keybind.NewKeybind(
			keybind.WithKeys("down", "j"),
			keybind.WithHelp("↓/j", "down"),
		),
		MoveUp: keybind.NewKeybind(
			keybind.WithKeys("shift+up", "K"),
			keybind.WithHelp("shift+↑/K", "move item up"),
		),
		MoveDown: keybind.NewKeybind(
			keybind.WithKeys("shift+down", "J"),
			keybind.WithHelp("shift+↓/J", "move item down"),
		),
		Select: keybind.NewKeybind(
			keybind.WithKeys("enter"),
			keybind.WithHelp("enter", "select"),
		),
	}
}

// ShortHelp returns the bindings for single-line help.
func (k ListKeybinds) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.Up, k.Down, k.MoveUp, k.MoveDown}
}

// FullHelp returns the binding columns for full help.
func (k ListKeybinds) FullHelp() [][]keybind.Keybind {
	return [][]keybind.Keybind{
		{k.Up, k.Down, k.Select},
		{k.MoveUp, k.MoveDown},
	}
}

// List displays rows of items that can be reordered by dragging them with the
// mouse or moving them with the keyboard. While a row is dragged it floats
// under the pointer; the remaining rows shift live to show where it would
// land, and the vacated slot shows a dimmed placeholder.
//
// Dropping commits the move to the backing items and reports it through the
// moved handler. Items may have different heights; rows scroll when they do
// not fit.
type List struct {
	*Box

	items []Item

	cursor int // Index of the selected item, -1 when none.
	offset int // Scroll offset in rows, clamped during Draw.
	gap    int // Blank rows between items.

	session    dnd.Session
	pointer    dnd.Point
	pointerIn  bool
	cursorHint dnd.Cursor

	showPlaceholder bool
	showHandles     bool
	handle          string
	handleStyle     tcell.Style
	showScrollBar   bool
	scrollBar       *ScrollBar

	keybinds ListKeybinds

	// Geometry of the previous draw. Mouse events resolve against what was
	// actually on screen, not against a layout that has not been shown yet.
	lastRects []dnd.ItemRect
	lastRect  listRect

	changed  func(index int)
	selected func(index int)
	moved    func(from, to int)
	hint     func(cursor dnd.Cursor)
}

type listRect struct {
	x      int
	y      int
	width  int
	height int
}

// NewList returns a new drag-reorderable list.
func NewList() *List {
	l := &List{
		Box:             NewBox(),
		cursor:          -1,
		showPlaceholder: true,
		showScrollBar:   true,
		handle:          DefaultDragHandle,
		handleStyle:     tcell.StyleDefault.Foreground(Styles.DragHandleColor),
		scrollBar:       NewScrollBar(),
		keybinds:        DefaultListKeybinds(),
	}
	bindDirtyParent(l.scrollBar, l.Box)
	return l
}

// SetItems replaces all items. An in-flight drag follows its item to the
// item's new index; if the dragged item is gone, the drag is dropped.
func (l *List) SetItems(items []Item) *List {
	l.mutate(func([]Item) []Item {
		return items
	})
	return l
}

// AddItem appends an item.
func (l *List) AddItem(item Item) *List {
	l.mutate(func(items []Item) []Item {
		return append(items, item)
	})
	return l
}

// InsertItem inserts an item before the given index. The index is clamped to
// the valid range.
func (l *List) InsertItem(index int, item Item) *List {
	l.mutate(func(items []Item) []Item {
		index := min(max(index, 0), len(items))
		items = append(items, nil)
		copy(items[index+1:], items[index:])
		items[index] = item
		return items
	})
	return l
}

// RemoveItem removes the item at the given index, if it exists.
func (l *List) RemoveItem(index int) *List {
	l.mutate(func(items []Item) []Item {
		if index < 0 || index >= len(items) {
			return items
		}
		return append(items[:index], items[index+1:]...)
	})
	return l
}

// Clear removes all items.
func (l *List) Clear() *List {
	l.mutate(func([]Item) []Item {
		return nil
	})
	return l
}

// mutate applies fn to the backing items while keeping the cursor in range
// and an in-flight drag attached to its item. The drag identity decides: if
// the dragged item is still present it keeps being dragged at its new index,
// otherwise the session ends without a move.
func (l *List) mutate(fn func(items []Item) []Item) {
	var sourceID dnd.ItemID
	hadDrag := false
	if in, ok := l.session.Current(); ok && in.Source >= 0 && in.Source < len(l.items) {
		sourceID = l.items[in.Source].DragID()
		hadDrag = true
	}

	l.items = fn(l.items)

	if l.cursor >= len(l.items) {
		l.cursor = len(l.items) - 1
	}
	if hadDrag {
		if index, ok := l.indexOf(sourceID); ok {
			l.session.Rebase(index)
		} else {
			l.session.Release()
		}
	}
	l.MarkDirty()
}

func (l *List) indexOf(id dnd.ItemID) (int, bool) {
	for i, item := range l.items {
		if item.DragID() == id {
			return i, true
		}
	}
	return 0, false
}

// GetItem returns the item at the given index, or nil if out of range.
func (l *List) GetItem(index int) Item {
	if index < 0 || index >= len(l.items) {
		return nil
	}
	return l.items[index]
}

// GetItems returns a snapshot of the items in their current order.
func (l *List) GetItems() []Item {
	items := make([]Item, len(l.items))
	copy(items, l.items)
	return items
}

// ItemCount returns the number of items.
func (l *List) ItemCount() int {
	return len(l.items)
}

// MoveItem moves the item at from so it sits before position to, using the
// same insertion semantics as a completed drag. Out-of-range indices and
// no-op positions are ignored.
func (l *List) MoveItem(from, to int) *List {
	l.commitMove(from, to)
	return l
}

// commitMove relocates an item and keeps the cursor on the item it was on.
// It is the single commit path shared by drags, keyboard moves, and MoveItem.
func (l *List) commitMove(from, to int) {
	if from < 0 || to < 0 || from >= len(l.items) || to > len(l.items) {
		return
	}
	// Inserting an element directly behind itself leaves the order as is.
	if from == to || to == from+1 {
		return
	}

	dnd.Move(from, to, l.items)
	if l.cursor >= 0 {
		l.cursor = dnd.Indices{Source: from, Target: to}.Apply(l.cursor)
	}
	l.MarkDirty()
	if l.moved != nil {
		l.moved(from, to)
	}
}

// SetDragSource re-points an in-flight drag at the given backing index, for
// callers that rearrange items themselves while a drag is active. It does
// nothing when no drag is active.
func (l *List) SetDragSource(index int) *List {
	if index >= 0 && index < len(l.items) {
		l.session.Rebase(index)
		l.MarkDirty()
	}
	return l
}

// DragActive reports whether a drag is in progress.
func (l *List) DragActive() bool {
	return l.session.Active()
}

// DragIndices returns the in-flight drag's source index and the index the
// item would land on if dropped now. It reports false when no drag is active.
func (l *List) DragIndices() (dnd.Indices, bool) {
	return l.session.Current()
}

// CursorHint returns the current pointer hint.
func (l *List) CursorHint() dnd.Cursor {
	return l.cursorHint
}

// SetCursor sets the selected item index. Use -1 to clear the selection.
func (l *List) SetCursor(index int) *List {
	if index < -1 {
		index = -1
	}
	if index >= len(l.items) {
		index = len(l.items) - 1
	}
	l.setCursor(index, true)
	return l
}

// Cursor returns the selected item index, or -1 when none is selected.
func (l *List) Cursor() int {
	return l.cursor
}

func (l *List) setCursor(index int, ensure bool) {
	if l.cursor != index {
		l.cursor = index
		l.MarkDirty()
		if l.changed != nil {
			l.changed(l.cursor)
		}
	}
	if ensure {
		l.ensureVisible()
	}
}

// SetGap sets the number of blank rows between items.
func (l *List) SetGap(gap int) *List {
	if gap < 0 {
		gap = 0
	}
	if l.gap != gap {
		l.gap = gap
		l.MarkDirty()
	}
	return l
}

// SetShowPlaceholder sets whether the slot the dragged item would drop into
// shows a dimmed preview of the item. When disabled, the slot stays blank but
// still occupies the item's rows.
func (l *List) SetShowPlaceholder(show bool) *List {
	if l.showPlaceholder != show {
		l.showPlaceholder = show
		l.MarkDirty()
	}
	return l
}

// SetShowHandles sets whether items show a handle gutter. With handles, drags
// start only on the gutter; without, the whole row is draggable.
func (l *List) SetShowHandles(show bool) *List {
	if l.showHandles != show {
		l.showHandles = show
		l.MarkDirty()
	}
	return l
}

// SetHandle sets the handle glyph.
func (l *List) SetHandle(handle string) *List {
	if handle == "" {
		handle = DefaultDragHandle
	}
	if l.handle != handle {
		l.handle = handle
		l.MarkDirty()
	}
	return l
}

// SetHandleStyle sets the style of the handle glyph.
func (l *List) SetHandleStyle(style tcell.Style) *List {
	if l.handleStyle != style {
		l.handleStyle = style
		l.MarkDirty()
	}
	return l
}

// SetShowScrollBar sets whether a scroll bar is reserved and drawn along the
// right edge.
func (l *List) SetShowScrollBar(show bool) *List {
	if l.showScrollBar != show {
		l.showScrollBar = show
		l.MarkDirty()
	}
	return l
}

// ScrollBar returns the embedded scroll bar for customization.
func (l *List) ScrollBar() *ScrollBar {
	return l.scrollBar
}

// SetKeybinds replaces the list's key bindings.
func (l *List) SetKeybinds(keybinds ListKeybinds) *List {
	l.keybinds = keybinds
	return l
}

// Keybinds returns the list's key bindings, e.g. to feed a help bar.
func (l *List) Keybinds() ListKeybinds {
	return l.keybinds
}

// SetChangedFunc sets a handler called when the selection moves to a
// different item.
func (l *List) SetChangedFunc(handler func(index int)) *List {
	l.changed = handler
	return l
}

// SetSelectedFunc sets a handler called when an item is chosen, via the
// select key or a double click.
func (l *List) SetSelectedFunc(handler func(index int)) *List {
	l.selected = handler
	return l
}

// SetMovedFunc sets a handler called after an item was moved, by drag and
// drop, keyboard, or MoveItem. from and to use the insertion semantics of
// [dnd.Indices]: the item that was at from now sits before the old position
// to.
func (l *List) SetMovedFunc(handler func(from, to int)) *List {
	l.moved = handler
	return l
}

// SetCursorHintFunc sets a handler called when the suggested pointer shape
// changes, e.g. to render a grab hint in a status line.
func (l *List) SetCursorHintFunc(handler func(cursor dnd.Cursor)) *List {
	l.hint = handler
	return l
}

// ScrollToStart scrolls to the top without changing the selection.
func (l *List) ScrollToStart() *List {
	if l.offset != 0 {
		l.offset = 0
		l.MarkDirty()
	}
	return l
}

// ScrollToEnd scrolls so the last rows are visible, without changing the
// selection.
func (l *List) ScrollToEnd() *List {
	_, _, width, height := l.GetInnerRect()
	total := l.totalRows(l.contentWidth(width))
	offset := max(total-height, 0)
	if l.offset != offset {
		l.offset = offset
		l.MarkDirty()
	}
	return l
}

func (l *List) scrollBy(rows int) {
	offset := max(l.offset+rows, 0)
	if l.offset != offset {
		l.offset = offset
		l.MarkDirty()
	}
}

func (l *List) itemHeight(item Item, width int) int {
	if item == nil {
		return 0
	}
	return max(item.Height(width), 1)
}

func (l *List) gutterWidth() int {
	if !l.showHandles {
		return 0
	}
	return TaggedStringWidth(l.handle) + 1
}

// contentWidth returns the width available to item content for a given inner
// width, after the scroll bar column and the handle gutter.
func (l *List) contentWidth(innerWidth int) int {
	width := innerWidth
	if l.showScrollBar && width > 1 {
		width--
	}
	return max(width-l.gutterWidth(), 0)
}

func (l *List) totalRows(contentWidth int) int {
	total := 0
	for i, item := range l.items {
		if i > 0 {
			total += l.gap
		}
		total += l.itemHeight(item, contentWidth)
	}
	return total
}

func (l *List) ensureVisible() {
	if l.cursor < 0 || l.cursor >= len(l.items) {
		return
	}
	_, _, width, height := l.GetInnerRect()
	contentWidth := l.contentWidth(width)
	if contentWidth <= 0 || height <= 0 {
		return
	}

	top := 0
	for i := 0; i < l.cursor; i++ {
		top += l.itemHeight(l.items[i], contentWidth) + l.gap
	}
	itemHeight := l.itemHeight(l.items[l.cursor], contentWidth)

	if top < l.offset {
		l.offset = top
		l.MarkDirty()
	} else if top+itemHeight > l.offset+height {
		l.offset = top + itemHeight - height
		l.MarkDirty()
	}
}

// IsDirty returns whether this primitive or its scroll bar needs redrawing.
func (l *List) IsDirty() bool {
	return l.Box.IsDirty() || l.scrollBar.IsDirty()
}

// MarkClean marks this primitive and its scroll bar as clean.
func (l *List) MarkClean() {
	l.Box.MarkClean()
	l.scrollBar.MarkClean()
}

// Draw draws this primitive onto the screen.
func (l *List) Draw(screen tcell.Screen) {
	l.DrawForSubclass(screen, l)

	x, y, width, height := l.GetInnerRect()
	l.lastRect = listRect{x: x, y: y, width: width, height: height}
	if width <= 0 || height <= 0 || len(l.items) == 0 {
		l.lastRects = nil
		return
	}

	itemWidth := width
	if l.showScrollBar && width > 1 {
		itemWidth--
	}
	gutter := l.gutterWidth()
	contentWidth := max(itemWidth-gutter, 0)

	l.session.Repair(len(l.items))
	order := l.session.DisplayOrder(len(l.items))

	heights := make([]int, len(l.items))
	total := 0
	for i, item := range l.items {
		if i > 0 {
			total += l.gap
		}
		heights[i] = l.itemHeight(item, contentWidth)
		total += heights[i]
	}

	maxOffset := max(total-height, 0)
	l.offset = min(max(l.offset, 0), maxOffset)

	// Lay out every slot in display order, including the clipped ones; mouse
	// events between draws hit-test against these rectangles.
	rects := make([]dnd.ItemRect, 0, len(l.items))
	row := y - l.offset
	for _, index := range order {
		rects = append(rects, dnd.ItemRect{
			Index: index,
			Rect:  dnd.R(x, row, itemWidth, heights[index]),
		})
		row += heights[index] + l.gap
	}
	l.lastRects = rects

	clipped := newClippedScreen(screen, x, y, itemWidth, height)
	for _, ir := range rects {
		if ir.Rect.Bottom() <= y || ir.Rect.Top() >= y+height {
			continue
		}
		state := ItemState{Selected: ir.Index == l.cursor}
		if l.session.Dragging(ir.Index) {
			// This is the vacated slot. It keeps the item's rows but shows
			// either a dimmed preview or nothing.
			if l.showPlaceholder {
				state.Placeholder = true
				l.drawItem(clipped, l.items[ir.Index], ir.Rect, state)
			}
			continue
		}
		l.drawItem(clipped, l.items[ir.Index], ir.Rect, state)
	}

	// The floating row is drawn last, at the pointer adjusted by the grab
	// offset, so it stays attached where it was picked up.
	if in, ok := l.session.Current(); ok && in.Source >= 0 && in.Source < len(l.items) {
		pos := l.pointer.Sub(l.session.Delta())
		overlay := dnd.R(x, pos.Y, itemWidth, heights[in.Source])
		l.fillRows(clipped, overlay)
		l.drawItem(clipped, l.items[in.Source], overlay, ItemState{Dragging: true})
	}

	if l.showScrollBar && width > 1 {
		l.scrollBar.SetRect(x+itemWidth, y, 1, height)
		l.scrollBar.SetLengths(ScrollLengths{ContentLen: total, ViewportLen: height})
		l.scrollBar.SetOffset(l.offset)
		l.scrollBar.Draw(screen)
	}
}

func (l *List) drawItem(screen tcell.Screen, item Item, r dnd.Rect, state ItemState) {
	gutter := l.gutterWidth()
	if gutter > 0 {
		style := l.handleStyle
		if state.Placeholder {
			style = style.Dim(true)
		}
		screen.Put(r.X, r.Y, l.handle, style)
	}
	item.Draw(screen, r.X+gutter, r.Y, r.Width-gutter, state)
}

func (l *List) fillRows(screen tcell.Screen, r dnd.Rect) {
	style := tcell.StyleDefault.Background(l.GetBackgroundColor())
	for row := r.Y; row < r.Bottom(); row++ {
		for col := r.X; col < r.X+r.Width; col++ {
			screen.Put(col, row, " ", style)
		}
	}
}

// rowAt returns the backing index and rectangle of the displayed slot under
// the point.
func (l *List) rowAt(p dnd.Point) (int, dnd.Rect, bool) {
	for _, ir := range l.lastRects {
		if ir.Rect.Contains(p) {
			return ir.Index, ir.Rect, true
		}
	}
	return 0, dnd.Rect{}, false
}

// grabZone reports whether a press at p may start a drag.
func (l *List) grabZone(p dnd.Point, r dnd.Rect) bool {
	if !l.showHandles {
		return true
	}
	return p.X < r.X+l.gutterWidth()
}

// hovering reports whether the pointer rests on a draggable spot. It feeds
// the cursor hint only.
func (l *List) hovering() bool {
	if !l.pointerIn {
		return false
	}
	_, rect, ok := l.rowAt(l.pointer)
	if !ok {
		return false
	}
	return l.grabZone(l.pointer, rect)
}

// frame assembles what the last draw showed plus the pointer state for one
// protocol step.
func (l *List) frame() dnd.Frame {
	return dnd.Frame{
		Len:       len(l.items),
		Pointer:   l.pointer,
		PointerOK: l.pointerIn,
		Rects:     l.lastRects,
		Hovering:  l.hovering(),
	}
}

// step runs one protocol frame and reacts to its outcome.
func (l *List) step(f dnd.Frame) {
	r := l.session.Update(f)

	if r.Cursor != l.cursorHint {
		l.cursorHint = r.Cursor
		if l.hint != nil {
			l.hint(r.Cursor)
		}
	}

	switch r.Phase {
	case dnd.Completed:
		l.commitMove(r.Indices.Source, r.Indices.Target)
		l.MarkDirty()
	case dnd.CurrentDrag:
		l.MarkDirty()
	}
}

// autoScroll nudges the viewport when a drag reaches its edges.
func (l *List) autoScroll(p dnd.Point) {
	if l.lastRect.height <= 0 {
		return
	}
	if p.Y <= l.lastRect.y {
		l.scrollBy(-1)
	} else if p.Y >= l.lastRect.y+l.lastRect.height-1 {
		l.scrollBy(1)
	}
}

func (l *List) captureTarget() Primitive {
	if l.session.Active() {
		return l
	}
	return nil
}

// InputHandler handles key events for this primitive.
func (l *List) InputHandler(event *tcell.EventKey) Command {
	switch event.Key() {
	case tcell.KeyPgDn:
		_, _, _, height := l.GetInnerRect()
		l.scrollBy(max(height, 1))
		return ConsumeEventCommand{}
	case tcell.KeyPgUp:
		_, _, _, height := l.GetInnerRect()
		l.scrollBy(-max(height, 1))
		return ConsumeEventCommand{}
	case tcell.KeyHome:
		if len(l.items) > 0 {
			l.setCursor(0, true)
		}
		return ConsumeEventCommand{}
	case tcell.KeyEnd:
		if len(l.items) > 0 {
			l.setCursor(len(l.items)-1, true)
		}
		return ConsumeEventCommand{}
	}

	kb := l.keybinds
	switch {
	case keybind.Matches(event, kb.Up):
		if l.cursor > 0 {
			l.setCursor(l.cursor-1, true)
		} else if l.cursor < 0 && len(l.items) > 0 {
			l.setCursor(0, true)
		}
	case keybind.Matches(event, kb.Down):
		if l.cursor < 0 && len(l.items) > 0 {
			l.setCursor(0, true)
		} else if l.cursor >= 0 && l.cursor < len(l.items)-1 {
			l.setCursor(l.cursor+1, true)
		}
	case keybind.Matches(event, kb.MoveUp):
		// Keyboard moves stay out of the way of an in-flight drag.
		if !l.session.Active() && l.cursor > 0 {
			l.commitMove(l.cursor, l.cursor-1)
			l.ensureVisible()
		}
	case keybind.Matches(event, kb.MoveDown):
		if !l.session.Active() && l.cursor >= 0 && l.cursor < len(l.items)-1 {
			l.commitMove(l.cursor, l.cursor+2)
			l.ensureVisible()
		}
	case keybind.Matches(event, kb.Select):
		if l.cursor >= 0 && l.selected != nil {
			l.selected(l.cursor)
		}
	default:
		return nil
	}
	return ConsumeEventCommand{}
}

// MouseHandler handles mouse events for this primitive. Drag gestures start
// on a press in the grab zone; while a drag is active the list captures all
// mouse events so the gesture survives the pointer leaving its rectangle.
func (l *List) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	p := dnd.Pt(x, y)

	switch action {
	case MouseLeftDown:
		if !l.InRect(x, y) {
			// An active drag keeps its capture even when a press lands
			// elsewhere; Begin ignores presses while a session runs.
			return l.captureTarget(), nil
		}
		l.pointer = p
		l.pointerIn = l.InInnerRect(x, y)

		f := l.frame()
		if index, rect, ok := l.rowAt(p); ok {
			l.setCursor(index, false)
			if l.grabZone(p, rect) {
				f.Pressed = index
				f.PressedOK = true
				f.Grab = p.Sub(rect.TopLeft())
			}
		}
		l.step(f)
		return l.captureTarget(), SetFocusCommand{Target: l}

	case MouseMove:
		l.pointer = p
		l.pointerIn = l.InInnerRect(x, y)
		if l.session.Active() {
			l.autoScroll(p)
		}
		l.step(l.frame())
		return l.captureTarget(), nil

	case MouseLeftUp:
		if !l.session.Active() && !l.InRect(x, y) {
			return nil, nil
		}
		l.pointer = p
		l.pointerIn = l.InInnerRect(x, y)
		f := l.frame()
		f.Released = true
		l.step(f)
		return nil, nil

	case MouseLeftDoubleClick:
		if !l.InRect(x, y) {
			return l.captureTarget(), nil
		}
		if index, _, ok := l.rowAt(p); ok {
			l.setCursor(index, false)
			if l.selected != nil {
				l.selected(index)
			}
		}
		return nil, nil

	case MouseScrollUp:
		// Wheel input also scrolls mid-drag, when the pointer may sit
		// outside the rectangle.
		if !l.session.Active() && !l.InRect(x, y) {
			return nil, nil
		}
		l.scrollBy(-3)
		return l.captureTarget(), nil

	case MouseScrollDown:
		if !l.session.Active() && !l.InRect(x, y) {
			return nil, nil
		}
		l.scrollBy(3)
		return l.captureTarget(), nil
	}

	return l.captureTarget(), nil
}

var _ Primitive = &List{}

type clippedScreen struct {
	tcell.Screen
	x      int
	y      int
	width  int
	height int
}

func newClippedScreen(screen tcell.Screen, x, y, width, height int) *clippedScreen {
	return &clippedScreen{
		Screen: screen,
		x:      x,
		y:      y,
		width:  width,
		height: height,
	}
}

func (s *clippedScreen) inBounds(x, y int) bool {
	return x >= s.x && x < s.x+s.width && y >= s.y && y < s.y+s.height
}

func (s *clippedScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	if !s.inBounds(x, y) {
		return
	}
	s.Screen.SetContent(x, y, primary, combining, style)
}

func (s *clippedScreen) Put(x int, y int, str string, style tcell.Style) (string, int) {
	if !s.inBounds(x, y) {
		return str, 0
	}
	return s.Screen.Put(x, y, str, style)
}

func (s *clippedScreen) PutStr(x int, y int, str string) {
	s.PutStrStyled(x, y, str, tcell.StyleDefault)
}

func (s *clippedScreen) PutStrStyled(x int, y int, str string, style tcell.Style) {
	if y < s.y || y >= s.y+s.height {
		return
	}

	gr := uniseg.NewGraphemes(str)
	for gr.Next() {
		cluster := gr.Str()
		width := max(uniseg.StringWidth(cluster), 1)
		if x >= s.x+s.width {
			return
		}
		if x >= s.x && x+width <= s.x+s.width {
			s.Screen.Put(x, y, cluster, style)
		}
		x += width
	}
}

func (s *clippedScreen) ShowCursor(x int, y int) {
	if !s.inBounds(x, y) {
		s.Screen.ShowCursor(-1, -1)
		return
	}
	s.Screen.ShowCursor(x, y)
}
