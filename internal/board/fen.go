package board

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string and returns a Position.
// Validation of the notation is left to the chess parser.
func ParseFEN(fen string) (*Position, error) {
	fen = strings.TrimSpace(fen)
	if fen == "" {
		return nil, fmt.Errorf("invalid FEN: empty string")
	}

	opt, err := chess.FEN(completeFEN(fen))
	if err != nil {
		return nil, fmt.Errorf("invalid FEN %q: %w", fen, err)
	}
	cp := chess.NewGame(opt).Position()

	pos := &Position{
		sideToMove: White,
		fen:        cp.String(),
	}
	if cp.Turn() == chess.Black {
		pos.sideToMove = Black
	}

	b := cp.Board()
	for sq := A1; sq <= H8; sq++ {
		pos.squares[sq] = fromChessPiece(b.Piece(chess.Square(sq)))
	}

	return pos, nil
}

// MustParseFEN is like ParseFEN but panics on error. Intended for tests
// and compile-time constants.
func MustParseFEN(fen string) *Position {
	pos, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

// fenDefaults fills the trailing fields a bare piece placement omits.
var fenDefaults = []string{"w", "-", "-", "0", "1"}

// completeFEN pads a partial FEN (piece placement only, or placement and
// side to move) with the default fields so the parser accepts it.
func completeFEN(fen string) string {
	parts := strings.Fields(fen)
	if len(parts) >= 6 {
		return strings.Join(parts[:6], " ")
	}
	parts = append(parts, fenDefaults[len(parts)-1:]...)
	return strings.Join(parts, " ")
}
