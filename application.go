package draglist

import (
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v3"
)

const (
	// The size of the queued updates channel.
	updatesQueueSize = 100
	// The minimum time between two consecutive redraws.
	redrawPause = 50 * time.Millisecond
)

// queuedUpdate represents the execution of f queued by
// Application.QueueUpdate(). If "done" is not nil, it receives exactly one
// element after f has executed.
type queuedUpdate struct {
	f    func()
	done chan struct{}
}

// Application drives the event loop: it reads terminal events, routes them to
// the root primitive, executes the commands handlers return, and redraws when
// a primitive marked itself dirty.
//
// The following displays a primitive p on the screen until the application is
// stopped (for example via QuitCommand):
//
//	if err := draglist.NewApplication().SetRoot(p).EnableMouse(true).Run(); err != nil {
//	    panic(err)
//	}
type Application struct {
	sync.RWMutex

	// The application's screen. Apart from Run(), this variable should never
	// be set directly.
	screen tcell.Screen

	// The primitive which currently has the keyboard focus.
	focus Primitive

	// The root primitive to be seen on the screen.
	root Primitive

	events chan tcell.Event

	// Functions queued from goroutines, used to serialize updates to
	// primitives.
	updates chan queuedUpdate

	// Whether to forward mouse events (including motion, needed for drag
	// gestures) to primitives.
	enableMouse bool

	mouseCapturingPrimitive Primitive        // A Primitive returned by a MouseHandler which will capture future mouse events.
	lastMouseX, lastMouseY  int              // The last position of the mouse.
	mouseDownX, mouseDownY  int              // The position of the mouse when its button was last pressed.
	lastMouseClick          time.Time        // The time when a mouse button was last clicked.
	lastMouseButtons        tcell.ButtonMask // The last mouse button state.

	// forceRedraw requests a full clear before the next frame.
	forceRedraw bool
}

// NewApplication creates and returns a new application.
func NewApplication() *Application {
	return &Application{
		updates: make(chan queuedUpdate, updatesQueueSize),
	}
}

// SetScreen sets the application's screen. Run() creates one when none was
// set; tests pass a simulation screen here.
func (a *Application) SetScreen(screen tcell.Screen) *Application {
	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		a.screen = screen
		a.forceRedraw = true
	}
	return a
}

// EnableMouse enables or disables the handling of mouse events. While
// disabled, mouse events are dropped before they reach any primitive.
func (a *Application) EnableMouse(enable bool) *Application {
	a.Lock()
	defer a.Unlock()
	a.enableMouse = enable
	return a
}

func (a *Application) mouseEnabled() bool {
	a.RLock()
	defer a.RUnlock()
	return a.enableMouse
}

// Run starts the application and thus the event loop. This function returns
// when [Application.Stop] was called.
//
// Note that while an application is running, it fully claims stdin, stdout,
// and stderr. If you use these standard streams, they may not work as
// expected.
func (a *Application) Run() error {
	a.Lock()

	// Make a screen if there is none yet.
	if a.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			a.Unlock()
			return err
		}
		if err = screen.Init(); err != nil {
			a.Unlock()
			return err
		}
		a.screen = screen
	}

	// We catch panics to clean up because they mess up the terminal.
	defer func() {
		if p := recover(); p != nil {
			a.Stop()
			panic(p)
		}
	}()

	// Draw the screen for the first time.
	a.Unlock()
	a.draw()

	a.RLock()
	screen := a.screen
	a.RUnlock()
	a.Lock()
	a.events = screen.EventQ()
	a.Unlock()

	var (
		appErr error

		// Paste key events are collected until the closing paste event.
		pasteBuffer strings.Builder
		pasting     bool

		// Resize events are rate limited; the timer re-queues the trailing
		// event so the final size is never lost.
		lastResize  time.Time
		resizeTimer *time.Timer
	)
EventLoop:
	for {
		select {
		case event := <-a.events:
			if event == nil {
				break EventLoop
			}

			switch event := event.(type) {
			case *tcell.EventKey:
				if pasting {
					collectPasteKey(&pasteBuffer, event)
					break
				}
				a.dispatch(a.handleKey(event))
			case *tcell.EventPaste:
				if event.Start() {
					pasting = true
					pasteBuffer.Reset()
				} else if event.End() {
					pasting = false
					a.dispatch(a.handlePaste(pasteBuffer.String()))
				}
			case *tcell.EventResize:
				a.Lock()
				// Resize events can imply terminal state changes even when
				// the size reports unchanged, so force one redraw pass.
				a.forceRedraw = true
				a.Unlock()
				if time.Since(lastResize) < redrawPause {
					if resizeTimer != nil {
						resizeTimer.Stop()
					}
					resizeTimer = time.AfterFunc(redrawPause, func() {
						a.QueueEvent(event)
					})
				}
				lastResize = time.Now()
				a.draw()
			case *tcell.EventMouse:
				if a.mouseEnabled() {
					a.dispatch(a.handleMouse(event))
				}
			case *tcell.EventError:
				appErr = event
				a.Stop()
			}

		case update := <-a.updates:
			update.f()
			if update.done != nil {
				update.done <- struct{}{}
			}
		}
	}

	return appErr
}

// collectPasteKey appends one key event received between paste start and end
// to the buffer.
func collectPasteKey(buffer *strings.Builder, event *tcell.EventKey) {
	switch event.Key() {
	case tcell.KeyRune:
		buffer.WriteString(event.Str())
	case tcell.KeyEnter:
		buffer.WriteRune('\n')
	case tcell.KeyTab:
		buffer.WriteRune('\t')
	}
}

// handleKey routes a key event to the focused root primitive.
func (a *Application) handleKey(event *tcell.EventKey) Command {
	root := a.focusedRoot()
	if root == nil {
		return nil
	}
	return root.InputHandler(event)
}

// handlePaste routes collected pasted text to the focused root primitive.
func (a *Application) handlePaste(text string) Command {
	if text == "" {
		return nil
	}
	root := a.focusedRoot()
	if root == nil {
		return nil
	}
	return root.PasteHandler(text)
}

// handleMouse fires the mouse actions derived from the event and keeps the
// button and press-position bookkeeping that click detection depends on.
func (a *Application) handleMouse(event *tcell.EventMouse) Command {
	handled, isMouseDownAction := a.fireMouseActions(event)
	a.lastMouseButtons = event.Buttons()
	if isMouseDownAction {
		a.mouseDownX, a.mouseDownY = event.Position()
	}
	if handled {
		return RedrawCommand{}
	}
	return nil
}

// focusedRoot returns the root primitive if it holds focus, nil otherwise.
func (a *Application) focusedRoot() Primitive {
	a.RLock()
	defer a.RUnlock()
	if a.root == nil || !a.root.HasFocus() {
		return nil
	}
	return a.root
}

// dispatch executes a command returned by an event handler and redraws if the
// command or a dirty primitive asks for it.
func (a *Application) dispatch(cmd Command) {
	if a.executeCommand(cmd) || a.rootNeedsRedraw() {
		a.draw()
	}
}

// Stop stops the application, causing Run() to return.
func (a *Application) Stop() {
	a.Lock()
	defer a.Unlock()
	screen := a.screen
	if screen == nil {
		return
	}
	screen.Fini()
	a.screen = nil
}

// Draw refreshes the screen (during the next update cycle). It calls the
// Draw() function of the application's root primitive and then syncs the
// screen buffer. It is almost never necessary to call this function. It can
// actually deadlock your application if you call it from the main thread
// (e.g. in a callback function of a widget).
func (a *Application) Draw() *Application {
	a.QueueUpdate(func() {
		a.draw()
	})
	return a
}

// ForceDraw refreshes the screen immediately. Use this function with caution
// as it may lead to race conditions with updates to primitives in other
// goroutines. It is always preferable to call [Application.Draw] instead.
// Never call this function from a goroutine.
//
// It is safe to call this function during queued updates and direct event
// handling.
func (a *Application) ForceDraw() *Application {
	return a.draw()
}

// rootNeedsRedraw reports whether the root primitive marked itself dirty
// during event handling. Handlers that mutate widget state through setters do
// not have to return a RedrawCommand; the dirty flag covers them.
func (a *Application) rootNeedsRedraw() bool {
	a.RLock()
	defer a.RUnlock()
	if dp, ok := a.root.(dirtyPrimitive); ok {
		return dp.IsDirty()
	}
	return false
}

// draw actually does what Draw() promises to do.
func (a *Application) draw() *Application {
	a.Lock()
	screen := a.screen
	root := a.root
	forceRedraw := a.forceRedraw
	a.Unlock()

	// Maybe we're not ready yet or not anymore.
	if screen == nil || root == nil {
		return a
	}

	drawWidth, drawHeight := screen.Size()
	root.SetRect(0, 0, drawWidth, drawHeight)

	// tcell already keeps a logical back buffer and emits only visual deltas
	// in Show(). Avoid clearing on regular redraws so we don't rewrite the
	// full logical screen every frame; keep full clears for forced redraws.
	if forceRedraw {
		screen.Clear()
	}
	root.Draw(screen)
	screen.Show()
	if dp, ok := root.(dirtyPrimitive); ok {
		dp.MarkClean()
	}

	a.Lock()
	a.forceRedraw = false
	a.Unlock()

	return a
}

// Sync forces a full re-sync of the screen buffer with the actual screen
// during the next event cycle. This is useful for when the terminal screen is
// corrupted so you may want to offer your users a keyboard shortcut to
// refresh the screen.
func (a *Application) Sync() *Application {
	a.updates <- queuedUpdate{f: func() {
		a.Lock()
		screen := a.screen
		a.forceRedraw = true
		a.Unlock()
		if screen == nil {
			return
		}
		screen.Sync()
	}}
	return a
}

// SetRoot sets the root primitive for this application. This function must be
// called at least once or nothing will be displayed when the application
// starts.
//
// It also calls SetFocus() on the primitive.
func (a *Application) SetRoot(root Primitive) *Application {
	a.Lock()
	a.root = root
	if a.screen != nil {
		a.forceRedraw = true
	}
	a.Unlock()

	a.SetFocus(root)
	return a
}

// SetFocus sets the focus to a new primitive. All key events will be directed
// down the hierarchy (starting at the root) until a primitive handles them,
// which per default goes towards the focused primitive.
//
// Blur() will be called on the previously focused primitive. Focus() will be
// called on the new primitive.
func (a *Application) SetFocus(p Primitive) *Application {
	a.Lock()
	if a.focus != nil {
		a.focus.Blur()
	}
	a.focus = p
	if a.screen != nil {
		a.screen.HideCursor()
	}
	a.Unlock()
	if p != nil {
		p.Focus(func(p Primitive) {
			a.SetFocus(p)
		})
	}

	return a
}

// GetFocus returns the primitive which has the current focus. If none has it,
// nil is returned.
func (a *Application) GetFocus() Primitive {
	a.RLock()
	defer a.RUnlock()
	return a.focus
}

// QueueUpdate is used to synchronize access to primitives from non-main
// goroutines. The provided function will be executed as part of the event
// loop and thus will not cause race conditions with other such update
// functions or the Draw() function.
//
// Note that Draw() is not implicitly called after the execution of f as that
// may not be desirable. You can call Draw() from f if the screen should be
// refreshed after each update. Alternatively, use QueueUpdateDraw() to follow
// up with an immediate refresh of the screen.
//
// This function returns after f has executed.
func (a *Application) QueueUpdate(f func()) *Application {
	ch := make(chan struct{})
	a.updates <- queuedUpdate{f: f, done: ch}
	<-ch
	return a
}

// QueueUpdateDraw works like QueueUpdate() except it refreshes the screen
// immediately after executing f.
func (a *Application) QueueUpdateDraw(f func()) *Application {
	a.QueueUpdate(func() {
		f()
		a.draw()
	})
	return a
}

// QueueEvent sends an event to the Application event loop.
//
// It is not recommended for event to be nil.
func (a *Application) QueueEvent(event tcell.Event) *Application {
	a.RLock()
	events := a.events
	a.RUnlock()
	if events == nil {
		return a
	}
	events <- event
	return a
}

func (a *Application) executeCommand(cmd Command) bool {
	if cmd == nil {
		return false
	}

	a.RLock()
	screen := a.screen
	a.RUnlock()

	switch c := cmd.(type) {
	case BatchCommand:
		handled := false
		for _, item := range c {
			if a.executeCommand(item) {
				handled = true
			}
		}
		return handled
	case RedrawCommand:
		return true
	case QuitCommand:
		a.Stop()
		return false
	case SetFocusCommand:
		if c.Target == nil {
			return false
		}
		a.RLock()
		changed := a.focus != c.Target
		a.RUnlock()
		a.SetFocus(c.Target)
		return changed
	case SetClipboardCommand:
		if screen != nil && screen.HasClipboard() {
			screen.SetClipboard([]byte(string(c)))
			return true
		}
	case SetTitleCommand:
		if screen == nil {
			return false
		}
		screen.SetTitle(string(c))
		return false
	case GetClipboardCommand:
		if screen == nil || !screen.HasClipboard() {
			return false
		}
		// The clipboard contents will arrive as terminal paste input events.
		screen.GetClipboard()
		return true
	case ConsumeEventCommand:
		return false
	}

	return false
}
