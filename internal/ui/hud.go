//go:build ebiten

package ui

import (
	"image/color"

	"cgol/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD draws a read-only stats panel in the top-left corner of the window.
type HUD struct {
	background color.Color
	foreground color.Color
}

// NewHUD constructs a HUD with the default palette.
func NewHUD() *HUD {
	return &HUD{
		background: color.RGBA{R: 16, G: 16, B: 20, A: 200},
		foreground: color.RGBA{R: 220, G: 220, B: 230, A: 255},
	}
}

// Draw paints the panel for the given snapshot.
func (h *HUD) Draw(screen *ebiten.Image, stats core.Stats) {
	if h == nil {
		return
	}
	lines := StatsLines(stats)
	face := basicfont.Face7x13

	width := 0
	for _, line := range lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	height := len(lines) * lineHeight
	vector.DrawFilledRect(screen, 0, 0, float32(width+2*panelPadding), float32(height+2*panelPadding), h.background, false)

	for i, line := range lines {
		y := panelPadding + i*lineHeight + baseline
		text.Draw(screen, line, face, panelPadding, y, h.foreground)
	}
}

const (
	panelPadding = 8
	lineHeight   = 16
	baseline     = 12
)
