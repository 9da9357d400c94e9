package view

import "github.com/Kaerdin/ChessTalk/internal/board"

// BoardState is the read-only position a renderer draws.
// *board.Position implements it.
type BoardState interface {
	PieceAt(sq board.Square) (board.Piece, bool)
	Turn() board.Color
	FEN() string
}

// GameView is one tracked game as shown to the user. It is built once
// per fetched game and never modified afterwards.
type GameView struct {
	ID          string
	Board       BoardState
	PlayerColor Side
	Opponent    string
	IsMyTurn    bool
	LastMove    string
}

// WhiteBottom reports the board orientation for this game.
func (g *GameView) WhiteBottom() bool {
	return g.PlayerColor.WhiteBottom()
}

// TurnText returns "White to move" or "Black to move".
func (g *GameView) TurnText() string {
	return g.Board.Turn().String() + " to move"
}

// Title returns the window title for this game.
func (g *GameView) Title() string {
	return "ChessTalk - vs " + g.Opponent + " - " + g.TurnText()
}
