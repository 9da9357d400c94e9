// Package termview prints games as colored text boards.
package termview

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/Kaerdin/ChessTalk/internal/board"
	"github.com/Kaerdin/ChessTalk/internal/view"
)

var (
	lightSquare = color.New(color.BgYellow, color.FgBlack)
	darkSquare  = color.New(color.BgRed, color.FgBlack)
	whitePiece  = color.New(color.Bold, color.FgHiWhite)
	header      = color.New(color.Bold)
)

// PrintGame writes g's header and board to w, oriented for the player.
func PrintGame(w io.Writer, g *view.GameView, index, total int) {
	header.Fprintf(w, "Game %d/%d vs %s", index+1, total, g.Opponent)
	fmt.Fprintf(w, " (you: %s) - %s\n", g.PlayerColor, g.TurnText())
	PrintBoard(w, g.Board, g.WhiteBottom())
	fmt.Fprintf(w, "FEN: %s\n\n", g.Board.FEN())
}

// PrintBoard writes an 8x8 board with the rank digits on the right and the
// file letters underneath.
func PrintBoard(w io.Writer, b view.BoardState, whiteBottom bool) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			file, rank := view.ScreenToLogical(view.Cell{Col: col, Row: row}, whiteBottom)
			bg := lightSquare
			if view.IsDark(file, rank) {
				bg = darkSquare
			}
			bg.Fprint(w, " "+symbol(b, board.NewSquare(file, rank))+" ")
		}
		fmt.Fprintf(w, " %s\n", view.RankLabel(view.ScreenToRank(row, whiteBottom)))
	}

	var files strings.Builder
	for col := 0; col < 8; col++ {
		files.WriteString(" " + view.FileLabel(view.ScreenToFile(col, whiteBottom)) + " ")
	}
	fmt.Fprintln(w, files.String())
}

func symbol(b view.BoardState, sq board.Square) string {
	p, ok := b.PieceAt(sq)
	if !ok {
		return "."
	}
	if p.Color() == board.White {
		return whitePiece.Sprint(p.String())
	}
	return p.String()
}
