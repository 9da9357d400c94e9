package view

import "errors"

// ErrNoGames is returned when a navigator is built over an empty collection.
var ErrNoGames = errors.New("view: no games to navigate")

// EventKind classifies an input event.
type EventKind int

const (
	EventClose EventKind = iota + 1
	EventNext
	EventPrevious
	EventClick
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventClose:
		return "close"
	case EventNext:
		return "next"
	case EventPrevious:
		return "previous"
	case EventClick:
		return "click"
	default:
		return "unknown"
	}
}

// Event is one discrete input event. X and Y are set for clicks only.
type Event struct {
	Kind EventKind
	X, Y int
}

// Navigator tracks which game of a fixed-size collection is displayed.
// The current index is always valid and wraps in both directions.
type Navigator struct {
	n       int
	current int
}

// NewNavigator creates a navigator over n games starting at start.
// Out-of-range start values are clamped to the nearest valid index.
func NewNavigator(n, start int) (*Navigator, error) {
	if n <= 0 {
		return nil, ErrNoGames
	}
	return &Navigator{n: n, current: clamp(start, 0, n-1)}, nil
}

// Current returns the selected index.
func (nv *Navigator) Current() int {
	return nv.current
}

// Len returns the collection size.
func (nv *Navigator) Len() int {
	return nv.n
}

// Next selects the following game, wrapping to the first.
func (nv *Navigator) Next() {
	nv.current = (nv.current + 1) % nv.n
}

// Previous selects the preceding game, wrapping to the last.
func (nv *Navigator) Previous() {
	nv.current = (nv.current - 1 + nv.n) % nv.n
}

// Apply performs at most one transition for ev and reports whether the
// index changed. Clicks must already be resolved to next/previous by the
// caller; close and unresolved clicks are ignored here.
func (nv *Navigator) Apply(ev Event) bool {
	before := nv.current
	switch ev.Kind {
	case EventNext:
		nv.Next()
	case EventPrevious:
		nv.Previous()
	}
	return nv.current != before
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
