// Package dnd implements the state machine and index arithmetic behind
// drag-to-reorder lists: which item is being dragged, which position it would
// land in if released now, and how to relocate an element without disturbing
// the relative order of the rest. It is host-agnostic; rendering, rectangle
// geometry and pointer input are supplied by the caller each frame.
package dnd

// Indices is a (source, target) pair of positions in the backing sequence,
// i.e. the current, unshifted sequence at the moment they are read. While a
// drag is active, 0 <= Source < len and 0 <= Target <= len. Target means
// "insert before this backing position".
type Indices struct {
	Source, Target int
}

// Moved reports whether committing the pair would change the sequence.
func (in Indices) Moved() bool {
	return in.Source != in.Target
}

// Apply maps a backing index through the completed move, returning the
// position the element at i occupies after Move(in.Source, in.Target, seq).
func (in Indices) Apply(i int) int {
	target := in.Target
	if in.Source < in.Target {
		target--
	}
	switch {
	case i == in.Source:
		return target
	case in.Source < i && i <= target:
		return i - 1
	case target <= i && i < in.Source:
		return i + 1
	}
	return i
}

// Session tracks one drag interaction across frames: the source and target
// indices and the pointer offset grabbed at drag start. The zero value is an
// idle session ready for use.
//
// A Session is exclusively owned by one list instance; its indices are
// meaningless outside the originating sequence. All methods are meant to be
// called from the single goroutine that owns the frame loop.
type Session struct {
	active bool
	source int
	target int
	delta  Point
}

// Begin activates a session for the item at the backing index source. The
// grab point is the vector from the item's top-left corner to the pointer,
// captured once so the dragged visual stays glued to the same relative spot.
//
// If a session is already active, Begin does nothing; the active drag's
// source stays authoritative even when the gesture fires again mid-drag.
func (s *Session) Begin(source int, grab Point) {
	if s.active {
		return
	}
	s.active = true
	s.source = source
	s.target = source
	s.delta = grab
}

// UpdateTarget records this frame's drop candidate. Without a valid
// candidate (ok false) the target collapses back to the source, so releasing
// now would change nothing.
func (s *Session) UpdateTarget(target int, ok bool) {
	if !s.active {
		return
	}
	if ok {
		s.target = target
	} else {
		s.target = s.source
	}
}

// Rebase re-points an active session at a new source index, keeping the grab
// offset. Hosts call it when the backing sequence was rearranged externally
// mid-drag and the dragged item now lives elsewhere. The target collapses to
// the new source; the next Update recomputes it from the pointer.
func (s *Session) Rebase(source int) {
	if !s.active {
		return
	}
	s.source = source
	s.target = source
}

// Release ends the session and returns its final indices. It reports false
// when no session is active.
func (s *Session) Release() (Indices, bool) {
	if !s.active {
		return Indices{}, false
	}
	in := Indices{Source: s.source, Target: s.target}
	*s = Session{}
	return in, true
}

// Repair clamps stale indices after the sequence shrank externally between
// frames. It must run before any other per-frame read of the indices.
func (s *Session) Repair(n int) {
	if !s.active {
		return
	}
	s.source = min(s.source, n)
	s.target = min(s.target, n)
}

// Active reports whether a drag session is in progress.
func (s *Session) Active() bool {
	return s.active
}

// Dragging reports whether the item at the backing index is the one being
// dragged. Hosts use this to draw the item as a floating overlay instead of
// in its inline slot.
func (s *Session) Dragging(index int) bool {
	return s.active && s.source == index
}

// Current returns the session's indices, or false when idle.
func (s *Session) Current() (Indices, bool) {
	if !s.active {
		return Indices{}, false
	}
	return Indices{Source: s.source, Target: s.target}, true
}

// Delta returns the grab offset captured at drag start.
func (s *Session) Delta() Point {
	return s.delta
}
