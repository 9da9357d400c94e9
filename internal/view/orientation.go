// Package view holds the display logic shared by every front end: board
// orientation, the screen/board coordinate mapping, the board and side
// panel renderers, and game navigation.
//
// Nothing in this package talks to a window system. Renderers issue draw
// calls against a Canvas, which the ebiten front end implements for the
// real window and tests implement as a recorder.
package view

import "strings"

// Side is the color the viewing player has in a game.
type Side int

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

// ParseSide parses a color indicator such as "white" or "Black".
// Anything other than white or black yields SideUnknown.
func ParseSide(s string) Side {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white":
		return SideWhite
	case "black":
		return SideBlack
	default:
		return SideUnknown
	}
}

// String returns the lowercase indicator for the side.
func (s Side) String() string {
	switch s {
	case SideWhite:
		return "white"
	case SideBlack:
		return "black"
	default:
		return "unknown"
	}
}

// WhiteBottom reports whether white occupies the bottom screen row.
// Only an explicit black side flips the board.
func (s Side) WhiteBottom() bool {
	return s != SideBlack
}

// ResolveOrientation maps a color indicator to the white-at-bottom flag.
// Unrecognized or empty indicators resolve to true.
func ResolveOrientation(indicator string) bool {
	return ParseSide(indicator).WhiteBottom()
}
