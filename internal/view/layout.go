package view

import (
	"image"
)

// Default dimensions, in logical pixels.
const (
	DefaultSquareSize = 100
	DefaultPanelWidth = 600
	DefaultPieceScale = 0.80

	buttonWidth   = 100
	buttonHeight  = 36
	buttonMargin  = 20
	buttonSpacing = 20
	buttonBottom  = 50
)

// Layout holds the window geometry: an 8x8 board on the left and the
// side panel on the right.
type Layout struct {
	SquareSize int
	PanelWidth int
	PieceScale float64
}

// DefaultLayout returns the default window geometry.
func DefaultLayout() Layout {
	return Layout{
		SquareSize: DefaultSquareSize,
		PanelWidth: DefaultPanelWidth,
		PieceScale: DefaultPieceScale,
	}
}

// BoardSize returns the board edge length in pixels.
func (l Layout) BoardSize() int {
	return 8 * l.SquareSize
}

// ScreenSize returns the window size in pixels.
func (l Layout) ScreenSize() (int, int) {
	return l.BoardSize() + l.PanelWidth, l.BoardSize()
}

// GlyphSize returns the edge length of a piece sprite.
func (l Layout) GlyphSize() int {
	return int(float64(l.SquareSize) * l.PieceScale)
}

// GlyphOffset returns the inset that centers a glyph inside its cell.
func (l Layout) GlyphOffset() int {
	return (l.SquareSize - l.GlyphSize()) / 2
}

// CellOrigin returns the top-left pixel of a screen cell.
func (l Layout) CellOrigin(c Cell) (x, y int) {
	return c.Col * l.SquareSize, c.Row * l.SquareSize
}

// PrevButton returns the bounds of the "previous game" control.
func (l Layout) PrevButton() image.Rectangle {
	x := l.BoardSize() + l.PanelWidth - buttonMargin - 2*buttonWidth - buttonSpacing
	y := l.BoardSize() - buttonBottom
	return image.Rect(x, y, x+buttonWidth, y+buttonHeight)
}

// NextButton returns the bounds of the "next game" control.
func (l Layout) NextButton() image.Rectangle {
	x := l.BoardSize() + l.PanelWidth - buttonMargin - buttonWidth
	y := l.BoardSize() - buttonBottom
	return image.Rect(x, y, x+buttonWidth, y+buttonHeight)
}

// ResolveClick maps a pointer click to a navigation event. Clicks outside
// both buttons report false.
func (l Layout) ResolveClick(x, y int) (EventKind, bool) {
	pt := image.Pt(x, y)
	switch {
	case pt.In(l.PrevButton()):
		return EventPrevious, true
	case pt.In(l.NextButton()):
		return EventNext, true
	default:
		return 0, false
	}
}
