package view

import (
	"github.com/Kaerdin/ChessTalk/internal/board"
)

// Label font size relative to the square size, and the inset from the
// cell edge.
const (
	labelScale = 0.30
	labelInset = 4
)

// SpriteSource looks up the image for a piece identity. A false result
// means no image is available and the renderer draws a placeholder.
type SpriteSource interface {
	Sprite(p board.Piece) (Sprite, bool)
}

// BoardRenderer draws the 64 squares, the edge coordinates and the pieces.
type BoardRenderer struct {
	layout  Layout
	theme   *Theme
	sprites SpriteSource
}

// NewBoardRenderer creates a board renderer. sprites may be nil, in which
// case every piece is drawn as a placeholder.
func NewBoardRenderer(layout Layout, theme *Theme, sprites SpriteSource) *BoardRenderer {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &BoardRenderer{layout: layout, theme: theme, sprites: sprites}
}

// Render draws a full board. It reads b but never modifies it, so two
// calls with the same arguments issue the same draw calls.
func (r *BoardRenderer) Render(c Canvas, b BoardState, whiteBottom bool) {
	for sq := board.A1; sq <= board.H8; sq++ {
		r.drawSquare(c, sq, whiteBottom)
	}

	// Pieces go on top of every label.
	for sq := board.A1; sq <= board.H8; sq++ {
		p, ok := b.PieceAt(sq)
		if !ok {
			continue
		}
		r.drawPiece(c, p, LogicalToScreen(sq.File(), sq.Rank(), whiteBottom))
	}
}

// drawSquare fills one cell and draws its coordinate labels, if any.
func (r *BoardRenderer) drawSquare(c Canvas, sq board.Square, whiteBottom bool) {
	cell := LogicalToScreen(sq.File(), sq.Rank(), whiteBottom)
	file, rank := ScreenToLogical(cell, whiteBottom)
	dark := IsDark(file, rank)

	x, y := r.layout.CellOrigin(cell)
	size := float32(r.layout.SquareSize)
	c.FillRect(float32(x), float32(y), size, size, r.theme.SquareColor(dark))

	style := TextStyle{
		Size:  float64(r.layout.SquareSize) * labelScale,
		Color: r.theme.LabelColor(dark),
	}

	// File letter: bottom-left corner of the bottom row.
	if HasFileLabel(cell) {
		style.HAlign, style.VAlign = AlignStart, AlignEnd
		c.DrawText(FileLabel(file),
			float64(x+labelInset), float64(y+r.layout.SquareSize-labelInset), style)
	}

	// Rank digit: top-right corner of the right column.
	if HasRankLabel(cell) {
		style.HAlign, style.VAlign = AlignEnd, AlignStart
		c.DrawText(RankLabel(rank),
			float64(x+r.layout.SquareSize-labelInset), float64(y+labelInset), style)
	}
}

// drawPiece draws the sprite for p, or a filled circle when none exists.
func (r *BoardRenderer) drawPiece(c Canvas, p board.Piece, cell Cell) {
	x, y := r.layout.CellOrigin(cell)

	if r.sprites != nil {
		if img, ok := r.sprites.Sprite(p); ok && img != nil {
			off := r.layout.GlyphOffset()
			c.DrawImage(img, float32(x+off), float32(y+off), float32(r.layout.GlyphSize()))
			return
		}
	}

	half := float32(r.layout.SquareSize) / 2
	c.FillCircle(float32(x)+half, float32(y)+half, float32(r.layout.SquareSize/4), r.theme.Placeholder)
}
