package draglist

import (
	"strings"

	"github.com/gdamore/tcell/v3"
)

// InputField is a one-line box into which the user can enter text. Use
// [InputField.SetChangedFunc] to listen for changes and
// [InputField.SetDoneFunc] to learn when the user finished or aborted the
// input.
//
// The following keys finish editing and are reported through the done
// callback: Enter, Escape, Tab, Backtab. Ctrl-V requests the system clipboard;
// its contents arrive as pasted text. Pasted line breaks and tabs are replaced
// with spaces.
type InputField struct {
	*Box

	label       string
	text        string
	placeholder string

	labelStyle       tcell.Style
	fieldStyle       tcell.Style
	placeholderStyle tcell.Style

	// The screen width of the input area. A value of 0 means extend to the
	// remaining inner width.
	fieldWidth int

	// cursor is a byte offset into text, always on a grapheme boundary.
	cursor int

	// offset is the number of cells scrolled off the left edge so the cursor
	// stays visible in narrow fields.
	offset int

	changed func(text string)
	done    func(key tcell.Key)
}

// NewInputField returns a new input field.
func NewInputField() *InputField {
	return &InputField{
		Box:              NewBox(),
		labelStyle:       tcell.StyleDefault.Foreground(Styles.SecondaryTextColor),
		fieldStyle:       tcell.StyleDefault.Foreground(Styles.PrimaryTextColor).Background(Styles.ContrastBackgroundColor),
		placeholderStyle: tcell.StyleDefault.Foreground(Styles.ContrastSecondaryTextColor).Background(Styles.ContrastBackgroundColor),
	}
}

// SetText sets the current text of the input field and moves the cursor to its
// end. The changed callback fires if the text differs from the current one.
func (i *InputField) SetText(text string) *InputField {
	if i.text == text {
		return i
	}
	i.text = text
	i.cursor = len(text)
	i.MarkDirty()
	if i.changed != nil {
		i.changed(i.text)
	}
	return i
}

// GetText returns the current text of the input field.
func (i *InputField) GetText() string {
	return i.text
}

// SetLabel sets the text to be displayed before the input area.
func (i *InputField) SetLabel(label string) *InputField {
	if i.label != label {
		i.label = label
		i.MarkDirty()
	}
	return i
}

// GetLabel returns the text to be displayed before the input area.
func (i *InputField) GetLabel() string {
	return i.label
}

// SetPlaceholder sets the text to be displayed when the input text is empty.
func (i *InputField) SetPlaceholder(text string) *InputField {
	if i.placeholder != text {
		i.placeholder = text
		i.MarkDirty()
	}
	return i
}

// SetLabelStyle sets the style of the label.
func (i *InputField) SetLabelStyle(style tcell.Style) *InputField {
	if i.labelStyle != style {
		i.labelStyle = style
		i.MarkDirty()
	}
	return i
}

// SetFieldStyle sets the style of the input area when text is shown.
func (i *InputField) SetFieldStyle(style tcell.Style) *InputField {
	if i.fieldStyle != style {
		i.fieldStyle = style
		i.MarkDirty()
	}
	return i
}

// SetPlaceholderStyle sets the style of the input area when the placeholder is
// shown.
func (i *InputField) SetPlaceholderStyle(style tcell.Style) *InputField {
	if i.placeholderStyle != style {
		i.placeholderStyle = style
		i.MarkDirty()
	}
	return i
}

// SetFieldWidth sets the screen width of the input area. A value of 0 means
// extend to the remaining inner width.
func (i *InputField) SetFieldWidth(width int) *InputField {
	if i.fieldWidth != width {
		i.fieldWidth = width
		i.MarkDirty()
	}
	return i
}

// SetChangedFunc sets a handler which is called whenever the text of the input
// field has changed. It receives the current text (after the change).
func (i *InputField) SetChangedFunc(handler func(text string)) *InputField {
	i.changed = handler
	return i
}

// SetDoneFunc sets a handler which is called when the user is done entering
// text. The callback function is provided with the key that was pressed, which
// is one of the following:
//
//   - KeyEnter: Done entering text.
//   - KeyEscape: Abort text input.
//   - KeyTab, KeyBacktab: Move away from the field.
func (i *InputField) SetDoneFunc(handler func(key tcell.Key)) *InputField {
	i.done = handler
	return i
}

// CursorOffset returns the cursor position as a byte offset into the text.
func (i *InputField) CursorOffset() int {
	return i.cursor
}

func (i *InputField) setText(text string, cursor int) {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(text) {
		cursor = len(text)
	}
	changed := i.text != text
	i.text = text
	i.cursor = cursor
	i.MarkDirty()
	if changed && i.changed != nil {
		i.changed(i.text)
	}
}

func (i *InputField) insert(s string) {
	if s == "" {
		return
	}
	i.setText(i.text[:i.cursor]+s+i.text[i.cursor:], i.cursor+len(s))
}

// prevBoundary returns the byte offset of the grapheme boundary before the
// cursor.
func (i *InputField) prevBoundary() int {
	prev, pos := 0, 0
	var state *stepState
	str := i.text
	for len(str) > 0 && pos < i.cursor {
		_, str, state = step(str, state)
		prev = pos
		pos += state.GrossLength()
	}
	return prev
}

// nextBoundary returns the byte offset of the grapheme boundary after the
// cursor.
func (i *InputField) nextBoundary() int {
	if i.cursor >= len(i.text) {
		return len(i.text)
	}
	_, _, state := step(i.text[i.cursor:], nil)
	return i.cursor + state.GrossLength()
}

// wordStart returns the byte offset of the start of the word before the
// cursor, skipping trailing spaces first.
func (i *InputField) wordStart() int {
	head := strings.TrimRight(i.text[:i.cursor], " ")
	if idx := strings.LastIndex(head, " "); idx >= 0 {
		return idx + 1
	}
	return 0
}

func (i *InputField) moveCursor(to int) {
	if to < 0 {
		to = 0
	}
	if to > len(i.text) {
		to = len(i.text)
	}
	if to != i.cursor {
		i.cursor = to
		i.MarkDirty()
	}
}

// InputHandler handles key events for this primitive.
func (i *InputField) InputHandler(event *tcell.EventKey) Command {
	switch key := event.Key(); key {
	case tcell.KeyEnter, tcell.KeyEscape, tcell.KeyTab, tcell.KeyBacktab:
		if i.done != nil {
			i.done(key)
		}
		return ConsumeEventCommand{}
	case tcell.KeyRune:
		i.insert(event.Str())
		return ConsumeEventCommand{}
	case tcell.KeyLeft:
		i.moveCursor(i.prevBoundary())
		return ConsumeEventCommand{}
	case tcell.KeyRight:
		i.moveCursor(i.nextBoundary())
		return ConsumeEventCommand{}
	case tcell.KeyHome, tcell.KeyCtrlA:
		i.moveCursor(0)
		return ConsumeEventCommand{}
	case tcell.KeyEnd, tcell.KeyCtrlE:
		i.moveCursor(len(i.text))
		return ConsumeEventCommand{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if i.cursor > 0 {
			p := i.prevBoundary()
			i.setText(i.text[:p]+i.text[i.cursor:], p)
		}
		return ConsumeEventCommand{}
	case tcell.KeyDelete, tcell.KeyCtrlD:
		if i.cursor < len(i.text) {
			i.setText(i.text[:i.cursor]+i.text[i.nextBoundary():], i.cursor)
		}
		return ConsumeEventCommand{}
	case tcell.KeyCtrlW:
		if i.cursor > 0 {
			p := i.wordStart()
			i.setText(i.text[:p]+i.text[i.cursor:], p)
		}
		return ConsumeEventCommand{}
	case tcell.KeyCtrlU:
		i.setText("", 0)
		return ConsumeEventCommand{}
	case tcell.KeyCtrlK:
		if i.cursor < len(i.text) {
			i.setText(i.text[:i.cursor], i.cursor)
		}
		return ConsumeEventCommand{}
	case tcell.KeyCtrlV:
		return GetClipboardCommand{}
	}
	return nil
}

// PasteHandler inserts pasted text at the cursor. Line breaks and tabs become
// spaces so the field stays a single line.
func (i *InputField) PasteHandler(text string) Command {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "\t", " ")
	if text == "" {
		return nil
	}
	i.insert(text)
	return ConsumeEventCommand{}
}

// MouseHandler handles mouse events for this primitive. A left click moves the
// cursor to the clicked column and focuses the field.
func (i *InputField) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	if action != MouseLeftDown || !i.InRect(x, y) {
		return nil, nil
	}

	fieldX, fieldY, fieldWidth := i.fieldRect()
	if fieldWidth > 0 && y == fieldY && x >= fieldX {
		i.moveCursor(i.byteOffsetForColumn(x - fieldX + i.offset))
	}
	return nil, SetFocusCommand{Target: i}
}

// byteOffsetForColumn maps a cell column within the text to the byte offset of
// the grapheme covering it.
func (i *InputField) byteOffsetForColumn(column int) int {
	pos, cells := 0, 0
	var state *stepState
	str := i.text
	for len(str) > 0 {
		_, str, state = step(str, state)
		if cells+state.Width() > column {
			return pos
		}
		cells += state.Width()
		pos += state.GrossLength()
	}
	return len(i.text)
}

// fieldRect returns the screen position and width of the input area.
func (i *InputField) fieldRect() (x, y, width int) {
	innerX, innerY, innerWidth, innerHeight := i.GetInnerRect()
	if innerWidth < 1 || innerHeight < 1 {
		return 0, 0, 0
	}
	labelWidth := TaggedStringWidth(i.label)
	if labelWidth > innerWidth {
		labelWidth = innerWidth
	}
	width = innerWidth - labelWidth
	if i.fieldWidth > 0 && i.fieldWidth < width {
		width = i.fieldWidth
	}
	return innerX + labelWidth, innerY, width
}

// Draw draws this primitive onto the screen.
func (i *InputField) Draw(screen tcell.Screen) {
	i.DrawForSubclass(screen, i)

	innerX, innerY, innerWidth, innerHeight := i.GetInnerRect()
	if innerWidth < 1 || innerHeight < 1 {
		return
	}

	if i.label != "" {
		printWithStyle(screen, i.label, innerX, innerY, 0, innerWidth, AlignmentLeft, i.labelStyle, true)
	}

	fieldX, fieldY, fieldWidth := i.fieldRect()
	if fieldWidth < 1 {
		return
	}

	fill := i.fieldStyle
	if i.text == "" && i.placeholder != "" {
		fill = i.placeholderStyle
	}
	for x := fieldX; x < fieldX+fieldWidth; x++ {
		screen.Put(x, fieldY, " ", fill)
	}

	// Keep the cursor inside the visible span.
	cursorCells := TaggedStringWidth(i.text[:i.cursor])
	if cursorCells-i.offset >= fieldWidth {
		i.offset = cursorCells - fieldWidth + 1
	}
	if cursorCells < i.offset {
		i.offset = cursorCells
	}

	if i.text == "" {
		if i.placeholder != "" {
			printWithStyle(screen, i.placeholder, fieldX, fieldY, 0, fieldWidth, AlignmentLeft, i.placeholderStyle, true)
		}
	} else {
		printWithStyle(screen, i.text, fieldX, fieldY, i.offset, fieldWidth, AlignmentLeft, i.fieldStyle, true)
	}

	if i.HasFocus() {
		screen.ShowCursor(fieldX+cursorCells-i.offset, fieldY)
	}
}
