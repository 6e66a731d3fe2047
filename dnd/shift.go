package dnd

import "fmt"

// IndexError reports a Shift whose indices fit neither rotation direction.
// It always indicates a caller bug in frame sequencing, never user input.
type IndexError struct {
	Source, Target, Len int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("draglist: invalid drag indices (source %d, target %d, len %d)", e.Source, e.Target, e.Len)
}

// Shift relocates the element at source so it sits before position target,
// rotating the smallest sub-range in place. Elements outside the rotated
// range keep their positions; elements inside shift by exactly one.
//
// This is the strict primitive: indices out of bounds for both possible
// sub-ranges return an *IndexError rather than being fixed up silently.
// source == target is the identity and always succeeds.
func Shift[S ~[]E, E any](source, target int, seq S) error {
	switch {
	case source < target:
		if source < 0 || target > len(seq) {
			return &IndexError{Source: source, Target: target, Len: len(seq)}
		}
		rotateLeft(seq[source:target])
	case target < source:
		if target < 0 || source >= len(seq) {
			return &IndexError{Source: source, Target: target, Len: len(seq)}
		}
		rotateRight(seq[target : source+1])
	}
	return nil
}

// Move relocates the element at source so it sits before position target,
// tolerating out-of-range input as a silent no-op. This is the convenience
// primitive for committing a completed drag: out-of-range indices there mean
// the drag was cancelled mid-frame, not a bug.
//
// For the same semantically valid pair, Move and Shift produce identical
// orderings.
func Move[S ~[]E, E any](source, target int, seq S) {
	if source == target || source < 0 || target < 0 || source >= len(seq) || target > len(seq) {
		return
	}
	// Removing the source element shifts everything after it left by one
	// before reinsertion.
	if source < target {
		target--
	}
	if source < target {
		rotateLeft(seq[source : target+1])
	} else {
		rotateRight(seq[target : source+1])
	}
}

func rotateLeft[E any](s []E) {
	if len(s) < 2 {
		return
	}
	first := s[0]
	copy(s, s[1:])
	s[len(s)-1] = first
}

func rotateRight[E any](s []E) {
	if len(s) < 2 {
		return
	}
	last := s[len(s)-1]
	copy(s[1:], s)
	s[0] = last
}
