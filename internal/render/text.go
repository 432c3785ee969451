package render

import (
	"bufio"
	"io"

	"cgol/internal/core"
)

const (
	textAlive = '#'
	textDead  = '.'
)

// WriteText prints g as one line per row, '#' for live cells and '.' for
// dead ones.
func WriteText(w io.Writer, g *core.Grid) error {
	bw := bufio.NewWriter(w)
	cells := g.Cells()
	for row := 0; row < g.H; row++ {
		for _, c := range cells[row*g.W : (row+1)*g.W] {
			ch := byte(textDead)
			if c != 0 {
				ch = textAlive
			}
			if err := bw.WriteByte(ch); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
