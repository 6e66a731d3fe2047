package dnd

// ItemRect pairs an item's backing index with its on-screen rectangle. A
// slice of ItemRect is ordered by display position and is expected to cover
// the whole display sequence, including rows currently clipped from view.
// The slice is ephemeral; it is produced by the renderer and consumed within
// the same frame.
type ItemRect struct {
	Index int
	Rect  Rect
}

// Hover resolves the insertion index the dragged item would occupy if
// released now. The pointer is first adjusted by the grab delta so the
// comparison point corresponds to the origin of the dragged visual rather
// than the raw pointer location. The winning rectangle is the one whose top
// edge is vertically nearest; ties resolve to the first in display order.
// A pointer in the winner's lower half inserts after it instead of before.
//
// The result is a backing-sequence insertion position in [0, len(rects)].
// It reports false when the session is idle or nothing is displayed.
//
// Resolving against rectangle tops rather than centers keeps targets stable
// while items shift live during the same frame they are measured in.
func (s *Session) Hover(pointer Point, rects []ItemRect) (int, bool) {
	if !s.active || len(rects) == 0 {
		return 0, false
	}

	adj := pointer.Sub(s.delta)

	best, bestDist := 0, abs(rects[0].Rect.Top()-adj.Y)
	for i := 1; i < len(rects); i++ {
		if d := abs(rects[i].Rect.Top() - adj.Y); d < bestDist {
			best, bestDist = i, d
		}
	}

	idx := best
	if rects[best].Rect.InLowerHalf(adj.Y) {
		idx++
	}

	// The dragged item is conceptually already removed from the sequence for
	// layout purposes; targets past it move up by one so they keep meaning
	// "insert before this position in the unshifted sequence".
	if s.source < idx && idx < len(rects) {
		idx++
	}

	return idx, true
}
