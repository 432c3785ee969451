package life

import (
	"slices"
	"strings"
)

// Pattern is a set of live cells given as (row, col) offsets from a top-left
// origin.
type Pattern struct {
	Name  string
	Cells [][2]int
}

var (
	// Block is the 2x2 still life.
	Block = Pattern{Name: "block", Cells: [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}}
	// Blinker is the horizontal period-2 oscillator.
	Blinker = Pattern{Name: "blinker", Cells: [][2]int{{0, 0}, {0, 1}, {0, 2}}}
	// Glider travels one cell diagonally every four generations.
	Glider = Pattern{Name: "glider", Cells: [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}}
)

var patterns = map[string]Pattern{
	Block.Name:   Block,
	Blinker.Name: Blinker,
	Glider.Name:  Glider,
}

// Lookup returns the built-in pattern with the given name.
func Lookup(name string) (Pattern, bool) {
	p, ok := patterns[strings.ToLower(name)]
	return p, ok
}

// PatternNames lists the built-in pattern names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
