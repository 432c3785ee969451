package life

import "cgol/internal/core"

// CountNeighbors sums the eight cells surrounding (row, col).
//
// row and col must be interior (1 <= row <= H-2, 1 <= col <= W-2); the
// backing slice is indexed directly without bounds checks.
func CountNeighbors(g *core.Grid, row, col int) int {
	w := g.W
	cells := g.Cells()
	above := (row-1)*w + col
	here := row*w + col
	below := (row+1)*w + col
	n := cells[above-1] + cells[above] + cells[above+1] +
		cells[here-1] + cells[here+1] +
		cells[below-1] + cells[below] + cells[below+1]
	return int(n)
}

// Transition applies Conway's rule to a single cell.
func Transition(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Seed randomizes the interior of g with a 25% live density and clears the
// border ring.
func Seed(g *core.Grid, rng *core.RNG) {
	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			if g.IsBorder(row, col) {
				g.Set(row, col, false)
				continue
			}
			// [0,3] > 2 gives one chance in four.
			g.Set(row, col, rng.IntN(4) > 2)
		}
	}
}

// Step writes the generation following cur into next. Only interior cells of
// next are written; its border keeps whatever it held.
func Step(cur, next *core.Grid) {
	if cur.W != next.W || cur.H != next.H {
		panic("life: Step with mismatched grid size")
	}
	w, h := cur.W, cur.H
	src, dst := cur.Cells(), next.Cells()
	for row := 1; row < h-1; row++ {
		for col := 1; col < w-1; col++ {
			idx := row*w + col
			dst[idx] = 0
			if Transition(src[idx] != 0, CountNeighbors(cur, row, col)) {
				dst[idx] = 1
			}
		}
	}
}
