package ui

import (
	"image/color"
	"time"

	"github.com/Kaerdin/ChessTalk/internal/view"
)

// ToastType represents the type of toast notification.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastWarning
)

const (
	toastFontSize = 18
	toastPadding  = 12.0
	toastFade     = 0.2 // seconds
)

// Toast represents a notification message.
type Toast struct {
	Message   string
	Type      ToastType
	StartTime time.Time
	Duration  time.Duration
}

// ToastManager manages toast notifications shown over the board.
type ToastManager struct {
	toasts   []*Toast
	maxStack int
	now      func() time.Time
}

// NewToastManager creates a new toast manager.
func NewToastManager() *ToastManager {
	return &ToastManager{
		maxStack: 3,
		now:      time.Now,
	}
}

// Show displays a new toast notification.
func (tm *ToastManager) Show(message string, toastType ToastType, duration time.Duration) {
	tm.toasts = append(tm.toasts, &Toast{
		Message:   message,
		Type:      toastType,
		StartTime: tm.now(),
		Duration:  duration,
	})
	if len(tm.toasts) > tm.maxStack {
		tm.toasts = tm.toasts[1:]
	}
}

// Update removes expired toasts.
func (tm *ToastManager) Update() {
	now := tm.now()
	active := tm.toasts[:0]
	for _, t := range tm.toasts {
		if now.Sub(t.StartTime) < t.Duration {
			active = append(active, t)
		}
	}
	tm.toasts = active
}

// Draw renders active toasts centered horizontally over a board of the
// given width.
func (tm *ToastManager) Draw(c view.Canvas, boardWidth int) {
	now := tm.now()
	y := 50.0
	for _, t := range tm.toasts {
		elapsed := now.Sub(t.StartTime).Seconds()
		duration := t.Duration.Seconds()

		// Fade in/out
		alpha := 1.0
		if elapsed < toastFade {
			alpha = elapsed / toastFade
		} else if elapsed > duration-toastFade {
			alpha = (duration - elapsed) / toastFade
		}
		if alpha < 0 {
			alpha = 0
		}

		bgColor := color.RGBA{50, 100, 150, uint8(220 * alpha)}
		textColor := color.RGBA{255, 255, 255, uint8(255 * alpha)}
		if t.Type == ToastWarning {
			bgColor = color.RGBA{180, 140, 20, uint8(220 * alpha)}
			textColor = color.RGBA{40, 30, 0, uint8(255 * alpha)}
		}

		w, h := c.MeasureText(t.Message, toastFontSize)
		boxW := w + toastPadding*2
		boxH := h + toastPadding*2
		x := float64(boardWidth)/2 - boxW/2

		c.FillRect(float32(x), float32(y), float32(boxW), float32(boxH), bgColor)
		c.DrawText(t.Message, x+toastPadding, y+toastPadding, view.TextStyle{
			Size:  toastFontSize,
			Color: textColor,
		})

		y += boxH + 8
	}
}

// Len returns the number of active toasts.
func (tm *ToastManager) Len() int {
	return len(tm.toasts)
}
