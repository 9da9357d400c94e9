package termview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/Kaerdin/ChessTalk/internal/board"
	"github.com/Kaerdin/ChessTalk/internal/view"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestPrintBoardWhiteBottom(t *testing.T) {
	var buf bytes.Buffer
	PrintBoard(&buf, board.MustParseFEN(board.StartFEN), true)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("Expected 9 lines, got %d:\n%s", len(lines), buf.String())
	}
	if lines[0] != " r  n  b  q  k  b  n  r  8" {
		t.Errorf("top row = %q", lines[0])
	}
	if lines[7] != " R  N  B  Q  K  B  N  R  1" {
		t.Errorf("bottom row = %q", lines[7])
	}
	if lines[4] != " .  .  .  .  .  .  .  .  4" {
		t.Errorf("fourth rank = %q", lines[4])
	}
	if strings.Join(strings.Fields(lines[8]), "") != "abcdefgh" {
		t.Errorf("file labels = %q", lines[8])
	}
}

func TestPrintBoardBlackBottom(t *testing.T) {
	var buf bytes.Buffer
	PrintBoard(&buf, board.MustParseFEN(board.StartFEN), false)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != " R  N  B  K  Q  B  N  R  1" {
		t.Errorf("top row = %q", lines[0])
	}
	if lines[7] != " r  n  b  k  q  b  n  r  8" {
		t.Errorf("bottom row = %q", lines[7])
	}
	if strings.Join(strings.Fields(lines[8]), "") != "hgfedcba" {
		t.Errorf("file labels = %q", lines[8])
	}
}

func TestPrintGame(t *testing.T) {
	var buf bytes.Buffer
	g := &view.GameView{
		ID:          "g1",
		Board:       board.MustParseFEN(board.StartFEN),
		PlayerColor: view.SideBlack,
		Opponent:    "alice",
	}
	PrintGame(&buf, g, 0, 2)

	out := buf.String()
	for _, want := range []string{"Game 1/2 vs alice", "you: black", "White to move", "FEN: " + board.StartFEN} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
