package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Kaerdin/ChessTalk/internal/board"
	"github.com/Kaerdin/ChessTalk/internal/logx"
)

const circleSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 45 45" width="45" height="45">
<circle cx="22.5" cy="22.5" r="15" fill="#000000"/>
</svg>`

func writePNG(t *testing.T, path string, size int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, color.RGBA{200, 10, 10, 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestPiecePaths(t *testing.T) {
	paths := PiecePaths("assets", board.BlackKnight)
	want := []string{
		filepath.Join("assets", "black", "n.png"),
		filepath.Join("assets", "pieces", "bN.svg"),
	}
	if len(paths) != len(want) {
		t.Fatalf("got %v", paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("path %d = %s, want %s", i, paths[i], want[i])
		}
	}
}

func TestLoadPieces(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "white", "P.png"), 64)
	writePNG(t, filepath.Join(dir, "black", "k.png"), 200)

	svgPath := filepath.Join(dir, "pieces", "wQ.svg")
	if err := os.MkdirAll(filepath.Dir(svgPath), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(svgPath, []byte(circleSVG), 0644); err != nil {
		t.Fatal(err)
	}

	// A corrupt file is skipped like a missing one.
	if err := os.WriteFile(filepath.Join(dir, "white", "R.png"), []byte("not a png"), 0644); err != nil {
		t.Fatal(err)
	}

	pieces := LoadPieces(dir, 80, logx.Nop())

	if len(pieces) != 3 {
		t.Fatalf("Expected 3 sprites, got %d", len(pieces))
	}
	for _, p := range []board.Piece{board.WhitePawn, board.BlackKing, board.WhiteQueen} {
		img, ok := pieces[p]
		if !ok {
			t.Errorf("missing sprite for %v", p)
			continue
		}
		if b := img.Bounds(); b.Dx() != 80 || b.Dy() != 80 {
			t.Errorf("%v: size %v, want 80x80", p, b)
		}
	}
	if _, ok := pieces[board.WhiteRook]; ok {
		t.Error("corrupt sprite should be skipped")
	}

	// The SVG circle is opaque in the middle and clear in the corner.
	q := pieces[board.WhiteQueen]
	if _, _, _, a := q.At(40, 40).RGBA(); a == 0 {
		t.Error("Expected opaque center in rasterized SVG")
	}
	if _, _, _, a := q.At(0, 0).RGBA(); a != 0 {
		t.Error("Expected transparent corner in rasterized SVG")
	}
}

func TestLoadPiecesMissingDir(t *testing.T) {
	pieces := LoadPieces(filepath.Join(t.TempDir(), "nope"), 80, logx.Nop())
	if len(pieces) != 0 {
		t.Errorf("Expected no sprites, got %d", len(pieces))
	}
}
