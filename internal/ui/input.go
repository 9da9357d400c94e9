package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Kaerdin/ChessTalk/internal/view"
)

// InputHandler turns the frame's keyboard, mouse and window state into
// view events.
type InputHandler struct {
	events []view.Event
}

// NewInputHandler creates a new input handler.
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// Poll returns the events seen since the previous frame. scale converts
// cursor positions to logical coordinates. The returned slice is reused
// by the next call.
//
// Ebitengine reports input as per-frame state rather than a queue, so
// events come out in a fixed order: close, keys, then clicks.
func (ih *InputHandler) Poll(scale float64) []view.Event {
	ih.events = ih.events[:0]

	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ih.events = append(ih.events, view.Event{Kind: view.EventClose})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		ih.events = append(ih.events, view.Event{Kind: view.EventNext})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		ih.events = append(ih.events, view.Event{Kind: view.EventPrevious})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		// Convert to logical coordinates by dividing by scale
		if scale < 1.0 {
			scale = 1.0
		}
		x, y := ebiten.CursorPosition()
		ih.events = append(ih.events, view.Event{
			Kind: view.EventClick,
			X:    int(float64(x) / scale),
			Y:    int(float64(y) / scale),
		})
	}

	return ih.events
}
