package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/Kaerdin/ChessTalk/internal/assets"
	"github.com/Kaerdin/ChessTalk/internal/board"
	"github.com/Kaerdin/ChessTalk/internal/view"
)

// renderScale is how much larger than the glyph size sprites are kept, so
// they stay sharp when drawn on HiDPI displays.
const renderScale = 3

// SpriteManager holds the piece images uploaded to the GPU.
type SpriteManager struct {
	pieces map[board.Piece]*ebiten.Image
	size   int
}

// NewSpriteManager loads piece sprites from dir for the given glyph size.
// Images are kept at renderScale times that size and scaled down when
// drawn. Pieces without a file are absent and render as placeholders.
func NewSpriteManager(dir string, size int, log *zap.SugaredLogger) *SpriteManager {
	sm := &SpriteManager{
		pieces: make(map[board.Piece]*ebiten.Image),
		size:   size,
	}
	for p, img := range assets.LoadPieces(dir, size*renderScale, log) {
		sm.pieces[p] = ebiten.NewImageFromImage(img)
	}
	log.Infow("piece sprites ready", "loaded", len(sm.pieces), "dir", dir)
	return sm
}

// Sprite returns the image for p, if one was loaded.
func (sm *SpriteManager) Sprite(p board.Piece) (view.Sprite, bool) {
	img, ok := sm.pieces[p]
	if !ok {
		return nil, false
	}
	return img, true
}

// Missing returns the number of piece identities without a sprite.
func (sm *SpriteManager) Missing() int {
	return len(board.AllPieces) - len(sm.pieces)
}

// Dispose releases the GPU images.
func (sm *SpriteManager) Dispose() {
	for p, img := range sm.pieces {
		img.Deallocate()
		delete(sm.pieces, p)
	}
}

// Size returns the logical glyph size of piece sprites.
func (sm *SpriteManager) Size() int {
	return sm.size
}
