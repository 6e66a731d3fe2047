package dnd

// Phase is the per-frame outcome of a Session update.
type Phase int

const (
	// NoDrag means no session is active.
	NoDrag Phase = iota
	// CurrentDrag means a drag is in progress; the host may react live but
	// must not mutate its backing sequence yet.
	CurrentDrag
	// Completed means the pointer was released this frame. The host commits
	// the response indices with Move. Source == Target is a no-op
	// completion, distinguishable from an in-progress drag only by this
	// phase, not by the index values.
	Completed
)

func (p Phase) String() string {
	switch p {
	case NoDrag:
		return "no drag"
	case CurrentDrag:
		return "dragging"
	case Completed:
		return "completed"
	}
	return "unknown"
}

// Cursor hints how the host should present the pointer.
type Cursor int

const (
	CursorNone Cursor = iota
	// CursorGrab: the pointer rests on something that can be dragged.
	CursorGrab
	// CursorGrabbing: a drag is in progress.
	CursorGrabbing
)

func (c Cursor) String() string {
	switch c {
	case CursorGrab:
		return "grab"
	case CursorGrabbing:
		return "grabbing"
	}
	return "none"
}

// Frame carries what the renderer observed during one displayed frame.
type Frame struct {
	// Len is the current length of the backing sequence.
	Len int

	// Pointer is the pointer position; PointerOK reports whether one is
	// available this frame. Without a pointer there is no valid drop target
	// and the session's target collapses back to its source.
	Pointer   Point
	PointerOK bool

	// Rects lists every displayed item's rectangle in display order.
	Rects []ItemRect

	// Pressed is the backing index on which a drag gesture started this
	// frame; PressedOK reports whether one did. Grab is the pointer offset
	// from that item's top-left corner.
	Pressed   int
	PressedOK bool
	Grab      Point

	// Hovering reports that the pointer rests on a draggable spot. It only
	// feeds the cursor hint.
	Hovering bool

	// Released reports that the pointer was released this frame.
	Released bool
}

// Response is the outcome of one frame. Indices are valid for CurrentDrag
// and Completed. Cursor is a side channel the host may use to set a pointer
// icon.
type Response struct {
	Phase   Phase
	Indices Indices
	Cursor  Cursor
}

// Update runs the whole frame protocol in one call, in the required order:
// repair stale indices, begin a reported gesture, resolve the hover target,
// then handle a release. Callers that need finer control can invoke the
// individual Session methods instead, in that same order.
func (s *Session) Update(f Frame) Response {
	s.Repair(f.Len)

	if f.PressedOK {
		s.Begin(f.Pressed, f.Grab)
	}

	if s.active {
		if f.PointerOK {
			target, ok := s.Hover(f.Pointer, f.Rects)
			s.UpdateTarget(target, ok)
		} else {
			s.UpdateTarget(0, false)
		}
	}

	if f.Released {
		if in, ok := s.Release(); ok {
			return Response{Phase: Completed, Indices: in, Cursor: cursorFor(false, f.Hovering)}
		}
	}

	in, ok := s.Current()
	if !ok {
		return Response{Phase: NoDrag, Cursor: cursorFor(false, f.Hovering)}
	}
	return Response{Phase: CurrentDrag, Indices: in, Cursor: cursorFor(true, f.Hovering)}
}

func cursorFor(active, hovering bool) Cursor {
	switch {
	case active:
		return CursorGrabbing
	case hovering:
		return CursorGrab
	}
	return CursorNone
}

// DisplayOrder returns the backing indices 0..n-1 in display order: with a
// session active, the dragged element's position is shifted from its source
// to the current target so the renderer can vacate the right visual slot.
// Run Repair before calling this.
func (s *Session) DisplayOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if !s.active {
		return order
	}
	// Indices clamped against a shrunken sequence can still fall outside a
	// constructible range; the order then stays unshifted for this frame.
	_ = Shift(s.source, s.target, order)
	return order
}
