package board

import (
	"github.com/notnil/chess"
)

// Position is a read-only snapshot of a parsed FEN position.
// Piece placement is copied out of the parser once, so queries never
// touch the underlying game object again.
type Position struct {
	squares    [64]Piece
	sideToMove Color
	fen        string
}

// PieceAt returns the piece on sq, or false when the square is empty.
func (p *Position) PieceAt(sq Square) (Piece, bool) {
	if !sq.IsValid() {
		return NoPiece, false
	}
	pc := p.squares[sq]
	return pc, pc != NoPiece
}

// Turn returns the side to move.
func (p *Position) Turn() Color {
	return p.sideToMove
}

// FEN returns the position in Forsyth-Edwards Notation.
func (p *Position) FEN() string {
	return p.fen
}

// Count returns the number of occupied squares.
func (p *Position) Count() int {
	n := 0
	for _, pc := range p.squares {
		if pc != NoPiece {
			n++
		}
	}
	return n
}

// fromChessPiece converts a parser piece into the local encoding.
func fromChessPiece(cp chess.Piece) Piece {
	var c Color
	switch cp.Color() {
	case chess.White:
		c = White
	case chess.Black:
		c = Black
	default:
		return NoPiece
	}

	var pt PieceType
	switch cp.Type() {
	case chess.Pawn:
		pt = Pawn
	case chess.Knight:
		pt = Knight
	case chess.Bishop:
		pt = Bishop
	case chess.Rook:
		pt = Rook
	case chess.Queen:
		pt = Queen
	case chess.King:
		pt = King
	default:
		return NoPiece
	}
	return NewPiece(pt, c)
}
