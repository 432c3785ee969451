//go:build ebiten

package app

import (
	"cgol/internal/render"
	"cgol/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

// Game adapts a Loop to the ebiten.Game interface. ebiten supplies the tick
// cap, the close signal and the frame presentation.
type Game struct {
	loop    *Loop
	painter *render.GridPainter
	hud     *ui.HUD
	pixels  []byte

	cellW, cellH int
	width        int
	height       int
}

// New constructs a Game for the provided loop and configuration.
func New(loop *Loop, cfg *Config) *Game {
	size := loop.Sim().Size()
	cw, ch := cfg.CellSize()
	g := &Game{
		loop:    loop,
		painter: render.NewGridPainter(size.W, size.H),
		cellW:   cw,
		cellH:   ch,
		width:   cfg.WindowW,
		height:  cfg.WindowH,
	}
	if cfg.HUD {
		g.hud = ui.NewHUD()
	}
	return g
}

// Configure applies window settings. Closing the window is reported to
// Update instead of terminating the run loop directly.
func Configure(cfg *Config, name string) {
	ebiten.SetWindowTitle(cfg.WindowTitle(name))
	ebiten.SetWindowSize(cfg.WindowW, cfg.WindowH)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowClosingHandled(true)
}

// Update polls the close signal and advances the simulation by one generation.
func (g *Game) Update() error {
	if err := g.loop.Tick(ebiten.IsWindowBeingClosed()); err != nil {
		if errors.Is(err, ErrClosed) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.pixels = g.loop.Frame(g.pixels)
	g.painter.Present(screen, g.pixels, g.cellW, g.cellH)
	if g.hud != nil {
		g.hud.Draw(screen, g.loop.Stats())
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
