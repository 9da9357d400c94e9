package view

import (
	"image"
	"image/color"
)

// Align positions text relative to its anchor point on one axis.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// TextStyle describes how a string is drawn.
type TextStyle struct {
	Size   float64
	Color  color.Color
	HAlign Align
	VAlign Align
}

// Sprite is a piece image, possibly rendered larger than it is drawn. The
// ebiten front end hands out *ebiten.Image values, which satisfy this
// interface.
type Sprite interface {
	Bounds() image.Rectangle
}

// Canvas is the display surface renderers draw on. Coordinates are
// logical pixels with the origin at the top-left of the window.
type Canvas interface {
	FillRect(x, y, w, h float32, c color.Color)
	// DrawImage draws img scaled to size x size with its top-left at (x, y).
	DrawImage(img Sprite, x, y, size float32)
	DrawText(s string, x, y float64, style TextStyle)
	FillCircle(cx, cy, r float32, c color.Color)
	MeasureText(s string, size float64) (w, h float64)
}

// Theme defines the color scheme for the board and side panel.
type Theme struct {
	Background  color.RGBA
	LightSquare color.RGBA
	DarkSquare  color.RGBA
	// Label colors are chosen by the fill under them, not by orientation.
	LabelOnDark  color.RGBA
	LabelOnLight color.RGBA
	Placeholder  color.RGBA
	PanelBg      color.RGBA
	PanelText    color.RGBA
	PanelMuted   color.RGBA
	ButtonColor  color.RGBA
	ButtonText   color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		Background:   color.RGBA{120, 120, 120, 255}, // Gray
		LightSquare:  color.RGBA{235, 209, 166, 255}, // Tan
		DarkSquare:   color.RGBA{165, 117, 81, 255},  // Brown
		LabelOnDark:  color.RGBA{245, 245, 220, 255}, // Beige
		LabelOnLight: color.RGBA{92, 54, 17, 255},    // Dark brown
		Placeholder:  color.RGBA{0, 0, 0, 255},
		PanelBg:      color.RGBA{40, 40, 40, 255},
		PanelText:    color.RGBA{230, 230, 230, 255},
		PanelMuted:   color.RGBA{150, 150, 150, 255},
		ButtonColor:  color.RGBA{80, 80, 80, 255},
		ButtonText:   color.RGBA{230, 230, 230, 255},
	}
}

// LabelColor returns the coordinate label color for a cell.
func (t *Theme) LabelColor(dark bool) color.RGBA {
	if dark {
		return t.LabelOnDark
	}
	return t.LabelOnLight
}

// SquareColor returns the fill color for a cell.
func (t *Theme) SquareColor(dark bool) color.RGBA {
	if dark {
		return t.DarkSquare
	}
	return t.LightSquare
}
