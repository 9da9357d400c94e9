package view

import (
	"fmt"
	"image"
	"image/color"
	"strings"
)

// Panel metrics, in logical pixels.
const (
	panelPadding  = 16
	titleFontSize = 28
	textFontSize  = 20
	lineHeight    = 28
	titleY        = 16
	firstLineY    = 56
)

// PanelRenderer draws the metadata panel to the right of the board.
type PanelRenderer struct {
	layout Layout
	theme  *Theme
}

// NewPanelRenderer creates a side panel renderer.
func NewPanelRenderer(layout Layout, theme *Theme) *PanelRenderer {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &PanelRenderer{layout: layout, theme: theme}
}

// Render draws the panel for game g, shown at position index of total.
func (p *PanelRenderer) Render(c Canvas, g *GameView, index, total int) {
	x0 := float32(p.layout.BoardSize())
	c.FillRect(x0, 0, float32(p.layout.PanelWidth), float32(p.layout.BoardSize()), p.theme.PanelBg)

	x := float64(p.layout.BoardSize() + panelPadding)
	p.text(c, "Game information", x, titleY, titleFontSize, p.theme.PanelText)

	lines := []string{
		fmt.Sprintf("Game %d / %d", index+1, total),
		"Opponent: " + g.Opponent,
		"You play: " + sideName(g.PlayerColor),
		g.TurnText(),
	}
	if g.IsMyTurn {
		lines = append(lines, "Your turn")
	}
	if g.LastMove != "" {
		lines = append(lines, "Last move: "+g.LastMove)
	}

	y := float64(firstLineY)
	for _, line := range lines {
		p.text(c, line, x, y, textFontSize, p.theme.PanelText)
		y += lineHeight
	}

	// The position string can be wider than the panel.
	maxW := float64(p.layout.PanelWidth - 2*panelPadding)
	for _, line := range wrapText(c, "FEN: "+g.Board.FEN(), maxW, textFontSize) {
		p.text(c, line, x, y, textFontSize, p.theme.PanelMuted)
		y += lineHeight
	}

	p.button(c, p.layout.PrevButton(), "<- Previous")
	p.button(c, p.layout.NextButton(), "Next ->")
}

func (p *PanelRenderer) text(c Canvas, s string, x, y, size float64, col color.Color) {
	c.DrawText(s, x, y, TextStyle{Size: size, Color: col})
}

// button draws a filled control with its label centered inside r.
func (p *PanelRenderer) button(c Canvas, r image.Rectangle, label string) {
	c.FillRect(float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), p.theme.ButtonColor)
	cx := float64(r.Min.X) + float64(r.Dx())/2
	cy := float64(r.Min.Y) + float64(r.Dy())/2
	c.DrawText(label, cx, cy, TextStyle{
		Size:   textFontSize,
		Color:  p.theme.ButtonText,
		HAlign: AlignCenter,
		VAlign: AlignCenter,
	})
}

func sideName(s Side) string {
	switch s {
	case SideBlack:
		return "Black"
	case SideWhite:
		return "White"
	default:
		return "White (assumed)"
	}
}

// wrapText splits s into lines no wider than maxW, breaking after '/'
// or at spaces. A single unbreakable chunk wider than maxW gets its own line.
func wrapText(c Canvas, s string, maxW, size float64) []string {
	var lines []string
	var cur strings.Builder

	for _, tok := range splitKeep(s) {
		candidate := cur.String() + tok
		if w, _ := c.MeasureText(candidate, size); w > maxW && cur.Len() > 0 {
			lines = append(lines, strings.TrimRight(cur.String(), " "))
			cur.Reset()
			tok = strings.TrimLeft(tok, " ")
		}
		cur.WriteString(tok)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// splitKeep splits s into tokens that each end in '/' or start with ' ',
// keeping the separators.
func splitKeep(s string) []string {
	var toks []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '/':
			toks = append(toks, s[start:i+1])
			start = i + 1
		case ' ':
			if i > start {
				toks = append(toks, s[start:i])
			}
			start = i
		}
	}
	if start < len(s) {
		toks = append(toks, s[start:])
	}
	return toks
}
