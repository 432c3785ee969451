package life

import (
	"cgol/internal/core"
)

// Life implements Conway's Game of Life on a grid with a permanently dead
// border ring.
type Life struct {
	w, h int
	cur  *core.Grid
	nxt  *core.Grid
	gen  int
	seed int64
}

// New returns a Life simulation with the provided dimensions. Both buffers
// start empty. Non-positive dimensions are clamped to 1 by the grid.
func New(w, h int) *Life {
	cur := core.NewGrid(w, h)
	return &Life{w: cur.W, h: cur.H, cur: cur, nxt: core.NewGrid(cur.W, cur.H)}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Current returns the buffer holding the latest generation.
func (l *Life) Current() *core.Grid { return l.cur }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Generation returns the number of steps taken since the last Reset.
func (l *Life) Generation() int { return l.gen }

// Population returns the number of live cells in the current generation.
func (l *Life) Population() int { return l.cur.Population() }

// Seed returns the seed passed to the last Reset.
func (l *Life) Seed() int64 { return l.seed }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	l.seed = seed
	l.gen = 0
	Seed(l.cur, core.NewRNG(seed))
	l.nxt.CopyFrom(l.cur)
}

// Clear kills every cell in both buffers.
func (l *Life) Clear() {
	l.gen = 0
	l.seed = 0
	l.cur.Clear()
	l.nxt.Clear()
}

// Place stamps p into both buffers with its top-left corner at (row, col).
// Cells that would land on the border or outside the grid are dropped.
func (l *Life) Place(p Pattern, row, col int) {
	for _, c := range p.Cells {
		r, k := row+c[0], col+c[1]
		if !l.cur.InBounds(r, k) || l.cur.IsBorder(r, k) {
			continue
		}
		l.cur.Set(r, k, true)
		l.nxt.Set(r, k, true)
	}
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	Step(l.cur, l.nxt)
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++
}
