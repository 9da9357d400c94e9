package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Kaerdin/ChessTalk/internal/view"
)

// Canvas draws view calls onto an ebiten image. Incoming coordinates are
// logical pixels; scale converts them for HiDPI displays.
type Canvas struct {
	dst   *ebiten.Image
	scale float64
	faces *faceCache
}

// newCanvas wraps dst for one frame.
func newCanvas(dst *ebiten.Image, scale float64, faces *faceCache) *Canvas {
	return &Canvas{dst: dst, scale: scale, faces: faces}
}

// s returns the scaled value for rendering.
func (c *Canvas) s(v float32) float32 {
	return v * float32(c.scale)
}

// FillRect draws a filled rectangle.
func (c *Canvas) FillRect(x, y, w, h float32, clr color.Color) {
	vector.DrawFilledRect(c.dst, c.s(x), c.s(y), c.s(w), c.s(h), clr, false)
}

// FillCircle draws a filled, anti-aliased circle.
func (c *Canvas) FillCircle(cx, cy, r float32, clr color.Color) {
	vector.DrawFilledCircle(c.dst, c.s(cx), c.s(cy), c.s(r), clr, true)
}

// DrawImage draws a sprite scaled to size x size logical pixels with its
// top-left corner at (x, y). Sprites not created by this package are
// ignored.
func (c *Canvas) DrawImage(img view.Sprite, x, y, size float32) {
	eimg, ok := img.(*ebiten.Image)
	if !ok || eimg == nil {
		return
	}
	w := eimg.Bounds().Dx()
	if w == 0 {
		return
	}
	// Scale down from render resolution to display size
	k := float64(c.s(size)) / float64(w)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(float64(c.s(x)), float64(c.s(y)))
	// Use linear filtering for smooth scaling
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(eimg, op)
}

// DrawText draws s anchored at (x, y) according to style's alignment.
func (c *Canvas) DrawText(s string, x, y float64, style view.TextStyle) {
	face := c.faces.face(style.Size * c.scale)
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x*c.scale, y*c.scale)
	op.ColorScale.ScaleWithColor(style.Color)
	op.PrimaryAlign = textAlign(style.HAlign)
	op.SecondaryAlign = textAlign(style.VAlign)
	text.Draw(c.dst, s, face, op)
}

// MeasureText returns the logical size of s at the given font size.
func (c *Canvas) MeasureText(s string, size float64) (float64, float64) {
	face := c.faces.face(size)
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face, 0)
}

func textAlign(a view.Align) text.Align {
	switch a {
	case view.AlignCenter:
		return text.AlignCenter
	case view.AlignEnd:
		return text.AlignEnd
	default:
		return text.AlignStart
	}
}
