// Package ui runs the game viewer window on Ebitengine.
package ui

import (
	"bytes"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	faceSource     *text.GoTextFaceSource
	faceSourceErr  error
	faceSourceOnce sync.Once
)

// loadFaceSource parses the embedded Go Regular font once.
func loadFaceSource() (*text.GoTextFaceSource, error) {
	faceSourceOnce.Do(func() {
		faceSource, faceSourceErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	})
	return faceSource, faceSourceErr
}

// faceCache hands out one face per font size.
type faceCache struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

func newFaceCache(source *text.GoTextFaceSource) *faceCache {
	return &faceCache{source: source, faces: make(map[float64]*text.GoTextFace)}
}

// face returns a face of the given size, or nil when no font is loaded.
func (fc *faceCache) face(size float64) *text.GoTextFace {
	if fc == nil || fc.source == nil {
		return nil
	}
	if f, ok := fc.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: fc.source, Size: size}
	fc.faces[size] = f
	return f
}
