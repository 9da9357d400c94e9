package view

import (
	"fmt"
	"image"
	"image/color"
)

// drawCall is one recorded Canvas operation.
type drawCall struct {
	Op     string
	X, Y   float64
	W, H   float64
	Text   string
	Style  TextStyle
	Color  color.Color
	Sprite Sprite
}

func (d drawCall) String() string {
	return fmt.Sprintf("%s(%q @ %.0f,%.0f %.0fx%.0f)", d.Op, d.Text, d.X, d.Y, d.W, d.H)
}

// recordingCanvas records every draw call in order.
type recordingCanvas struct {
	calls []drawCall
}

func (rc *recordingCanvas) FillRect(x, y, w, h float32, c color.Color) {
	rc.calls = append(rc.calls, drawCall{Op: "rect", X: float64(x), Y: float64(y), W: float64(w), H: float64(h), Color: c})
}

func (rc *recordingCanvas) DrawImage(img Sprite, x, y, size float32) {
	rc.calls = append(rc.calls, drawCall{Op: "image", X: float64(x), Y: float64(y), W: float64(size), H: float64(size), Sprite: img})
}

func (rc *recordingCanvas) DrawText(s string, x, y float64, style TextStyle) {
	rc.calls = append(rc.calls, drawCall{Op: "text", X: x, Y: y, Text: s, Style: style})
}

func (rc *recordingCanvas) FillCircle(cx, cy, r float32, c color.Color) {
	rc.calls = append(rc.calls, drawCall{Op: "circle", X: float64(cx), Y: float64(cy), W: float64(r), Color: c})
}

// MeasureText uses a fixed advance of half the font size per byte.
func (rc *recordingCanvas) MeasureText(s string, size float64) (float64, float64) {
	return float64(len(s)) * size / 2, size
}

func (rc *recordingCanvas) ops(op string) []drawCall {
	var out []drawCall
	for _, c := range rc.calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// fakeSprite is a sprite with a name for assertions.
type fakeSprite struct {
	name string
	size int
}

func (f *fakeSprite) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.size, f.size)
}
