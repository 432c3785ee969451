package app

import (
	"time"

	"cgol/internal/core"
	"cgol/internal/render"
	"cgol/internal/sims/life"

	"github.com/pkg/errors"
)

// ErrClosed is returned by Tick once the close signal has been observed.
var ErrClosed = errors.New("simulation closed")

// Loop drives the simulation one generation per frame. It knows nothing
// about the window; the caller supplies the close signal and presents the
// rendered pixels.
type Loop struct {
	sim    *life.Life
	colors render.Colors
	stats  core.Stats
	last   time.Time
	closed bool
}

// NewLoop wraps sim in a frame driver.
func NewLoop(sim *life.Life, colors render.Colors) *Loop {
	l := &Loop{sim: sim, colors: colors}
	l.stats.Seed = sim.Seed()
	l.stats.Population = sim.Population()
	return l
}

// Sim returns the driven simulation.
func (l *Loop) Sim() *life.Life { return l.sim }

// Stats returns a snapshot of the latest generation.
func (l *Loop) Stats() core.Stats { return l.stats }

// Tick checks the close signal and, if none is pending, computes exactly one
// generation. A close request never interrupts a generation in progress.
func (l *Loop) Tick(closeRequested bool) error {
	if l.closed || closeRequested {
		l.closed = true
		return ErrClosed
	}
	now := time.Now()
	var elapsed time.Duration
	if !l.last.IsZero() {
		elapsed = now.Sub(l.last)
	}
	l.last = now

	l.sim.Step()
	l.stats.Seed = l.sim.Seed()
	l.stats.Update(l.sim.Generation(), l.sim.Population(), elapsed)
	return nil
}

// Frame renders the current generation into buf, one RGBA pixel per cell,
// and returns the filled slice. buf is reallocated when too small.
func (l *Loop) Frame(buf []byte) []byte {
	cells := l.sim.Cells()
	if len(buf) < 4*len(cells) {
		buf = make([]byte, 4*len(cells))
	}
	buf = buf[:4*len(cells)]
	render.FillBinaryRGBA(buf, cells, l.colors.Alive, l.colors.Dead)
	return buf
}
