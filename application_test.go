package draglist

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/vt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quitOnKey quits on the first key event and remembers what it saw.
type quitOnKey struct {
	*Box
	last string
}

func (q *quitOnKey) InputHandler(event *tcell.EventKey) Command {
	q.last = event.Str()
	return QuitCommand{}
}

// pasteRecorder remembers pasted text.
type pasteRecorder struct {
	*Box
	text string
}

func (r *pasteRecorder) PasteHandler(text string) Command {
	r.text = text
	return ConsumeEventCommand{}
}

func TestApplicationExecuteCommands(t *testing.T) {
	screen := simScreen(t)
	app := NewApplication().SetScreen(screen)

	assert.False(t, app.executeCommand(nil))
	assert.True(t, app.executeCommand(RedrawCommand{}))
	assert.False(t, app.executeCommand(ConsumeEventCommand{}))
	assert.False(t, app.executeCommand(SetTitleCommand("tasks")))

	assert.True(t, app.executeCommand(BatchCommand{nil, RedrawCommand{}}))
	assert.False(t, app.executeCommand(BatchCommand{nil, ConsumeEventCommand{}}))
}

func TestApplicationSetFocusCommand(t *testing.T) {
	app := NewApplication()
	first := NewBox()
	second := NewBox()

	assert.False(t, app.executeCommand(SetFocusCommand{}), "nil target changes nothing")

	assert.True(t, app.executeCommand(SetFocusCommand{Target: first}))
	assert.Same(t, first, app.GetFocus())
	assert.True(t, first.HasFocus())

	// Focusing the already focused primitive asks for no redraw.
	assert.False(t, app.executeCommand(SetFocusCommand{Target: first}))

	assert.True(t, app.executeCommand(SetFocusCommand{Target: second}))
	assert.Same(t, second, app.GetFocus())
	assert.False(t, first.HasFocus(), "previous focus is blurred")
	assert.True(t, second.HasFocus())
}

func TestApplicationDispatchDrawsDirtyRoot(t *testing.T) {
	screen := simScreen(t)
	width, height := screen.Size()

	box := NewBox()
	app := NewApplication().SetScreen(screen).SetRoot(box)

	// A fresh box is dirty, so even a nil command produces a frame.
	app.dispatch(nil)
	x, y, w, h := box.GetRect()
	assert.Equal(t, []int{0, 0, width, height}, []int{x, y, w, h}, "draw sizes the root to the screen")
	assert.False(t, box.IsDirty(), "draw marks the root clean")

	// A clean root and a nil command produce no frame.
	box.SetRect(1, 2, 3, 4)
	box.MarkClean()
	app.dispatch(nil)
	x, y, w, h = box.GetRect()
	assert.Equal(t, []int{1, 2, 3, 4}, []int{x, y, w, h})

	// A dirty root is enough, no command needed.
	box.MarkDirty()
	app.dispatch(nil)
	_, _, w, h = box.GetRect()
	assert.Equal(t, []int{width, height}, []int{w, h})
}

func TestApplicationHandleKeyRequiresFocusedRoot(t *testing.T) {
	app := NewApplication()
	assert.Nil(t, app.handleKey(keyEvent(tcell.KeyRune, "x", tcell.ModNone)), "no root")

	root := &quitOnKey{Box: NewBox()}
	app.SetRoot(root)
	assert.IsType(t, QuitCommand{}, app.handleKey(keyEvent(tcell.KeyRune, "x", tcell.ModNone)))
	assert.Equal(t, "x", root.last)

	root.Blur()
	assert.Nil(t, app.handleKey(keyEvent(tcell.KeyRune, "y", tcell.ModNone)), "unfocused root sees nothing")
	assert.Equal(t, "x", root.last)
}

func TestApplicationCollectsPastedKeys(t *testing.T) {
	var buffer strings.Builder
	collectPasteKey(&buffer, keyEvent(tcell.KeyRune, "a", tcell.ModNone))
	collectPasteKey(&buffer, keyEvent(tcell.KeyEnter, "", tcell.ModNone))
	collectPasteKey(&buffer, keyEvent(tcell.KeyTab, "", tcell.ModNone))
	collectPasteKey(&buffer, keyEvent(tcell.KeyLeft, "", tcell.ModNone))
	collectPasteKey(&buffer, keyEvent(tcell.KeyRune, "b", tcell.ModNone))
	assert.Equal(t, "a\n\tb", buffer.String(), "only runes, enter, and tab are collected")
}

func TestApplicationHandlePaste(t *testing.T) {
	app := NewApplication()
	assert.Nil(t, app.handlePaste("text"), "no root")

	root := &pasteRecorder{Box: NewBox()}
	app.SetRoot(root)
	assert.Nil(t, app.handlePaste(""), "empty paste is dropped")
	assert.IsType(t, ConsumeEventCommand{}, app.handlePaste("two words"))
	assert.Equal(t, "two words", root.text)
}

func TestApplicationHandleMouseBookkeeping(t *testing.T) {
	box := NewBox()
	box.SetRect(0, 0, 10, 10)
	app := NewApplication()
	app.root = box

	cmd := app.handleMouse(tcell.NewEventMouse(3, 4, tcell.ButtonPrimary, tcell.ModNone))
	assert.IsType(t, RedrawCommand{}, cmd, "the focus change on left down asks for a redraw")
	assert.Same(t, box, app.GetFocus())
	assert.Equal(t, tcell.ButtonPrimary, app.lastMouseButtons)
	assert.Equal(t, []int{3, 4}, []int{app.mouseDownX, app.mouseDownY})

	// Releasing in place yields up and click actions the box ignores.
	cmd = app.handleMouse(tcell.NewEventMouse(3, 4, tcell.ButtonNone, tcell.ModNone))
	assert.Nil(t, cmd)
	assert.Equal(t, tcell.ButtonNone, app.lastMouseButtons)
}

func TestApplicationRunExecutesQueuedUpdates(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())

	app := NewApplication().SetScreen(screen).SetRoot(NewBox())
	defer app.Stop()

	done := make(chan error, 1)
	go func() {
		done <- app.Run()
	}()

	var ran bool
	app.QueueUpdate(func() {
		ran = true
	})
	assert.True(t, ran, "QueueUpdate returns after the update executed")
	app.QueueUpdateDraw(func() {})

	app.Stop()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
}

func TestApplicationRunStopsOnQuitCommand(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())

	root := &quitOnKey{Box: NewBox()}
	app := NewApplication().SetScreen(screen).SetRoot(root)
	defer app.Stop()

	done := make(chan error, 1)
	go func() {
		done <- app.Run()
	}()

	// Once an update has executed, the event loop is live and the event
	// queue is wired up.
	app.QueueUpdate(func() {})
	app.QueueEvent(keyEvent(tcell.KeyRune, "q", tcell.ModNone))

	select {
	case err := <-done:
		assert.NoError(t, err)
		assert.Equal(t, "q", root.last)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after the quit command")
	}
}
