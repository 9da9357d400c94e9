// Package assets loads piece sprites from disk and scales them to a
// requested pixel size once at startup.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"go.uber.org/zap"
	"golang.org/x/image/draw"

	"github.com/Kaerdin/ChessTalk/internal/board"
)

// PiecePaths returns the candidate files for a piece, in lookup order:
// "<dir>/white/P.png" style first, then "<dir>/pieces/wP.svg".
func PiecePaths(dir string, p board.Piece) []string {
	colorDir, prefix := "white", "w"
	if p.Color() == board.Black {
		colorDir, prefix = "black", "b"
	}
	return []string{
		filepath.Join(dir, colorDir, p.String()+".png"),
		filepath.Join(dir, "pieces", prefix+strings.ToUpper(p.String())+".svg"),
	}
}

// LoadPieces loads every piece sprite found under dir, scaled to size x
// size. Pieces with no readable file are left out of the result; each
// miss is logged once and is not an error.
func LoadPieces(dir string, size int, log *zap.SugaredLogger) map[board.Piece]image.Image {
	pieces := make(map[board.Piece]image.Image, len(board.AllPieces))

	for _, p := range board.AllPieces {
		img, path, err := loadPiece(dir, p, size)
		if err != nil {
			log.Warnw("piece sprite unavailable, using placeholder", "piece", p.String(), "error", err)
			continue
		}
		log.Debugw("piece sprite loaded", "piece", p.String(), "path", path)
		pieces[p] = img
	}

	return pieces
}

// errNotFound is returned when no candidate file exists for a piece.
var errNotFound = errors.New("no sprite file")

func loadPiece(dir string, p board.Piece, size int) (image.Image, string, error) {
	for _, path := range PiecePaths(dir, p) {
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, path, err
		}

		var img image.Image
		if strings.HasSuffix(path, ".svg") {
			img, err = decodeSVG(data, size)
		} else {
			img, err = decodePNG(data, size)
		}
		if err != nil {
			return nil, path, fmt.Errorf("%s: %w", path, err)
		}
		return img, path, nil
	}
	return nil, "", errNotFound
}

// decodePNG decodes a raster sprite and scales it to size x size.
func decodePNG(data []byte, size int) (image.Image, error) {
	src, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return scale(src, size), nil
}

// decodeSVG rasterizes a vector sprite at size x size.
func decodeSVG(data []byte, size int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return rgba, nil
}

func scale(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
