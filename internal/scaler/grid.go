package scaler

import (
	"fmt"
	"strings"
)

// Grid is the resampled brightness output, row-major.
type Grid struct {
	Width  int
	Height int
	Data   []byte
}

func newGrid(w, h int) *Grid {
	return &Grid{Width: w, Height: h, Data: make([]byte, w*h)}
}

// At returns the brightness at (x, y). Out-of-range positions panic.
func (g *Grid) At(x, y int) byte {
	i := y*g.Width + x
	if x < 0 || x >= g.Width || i < 0 || i >= len(g.Data) {
		panic(&InvariantError{Index: i, Len: len(g.Data)})
	}
	return g.Data[i]
}

// Rows returns one slice per output row. The slices alias Data.
func (g *Grid) Rows() [][]byte {
	if g.Width == 0 {
		return nil
	}
	rows := make([][]byte, 0, g.Height)
	for y := 0; y < g.Height; y++ {
		rows = append(rows, g.Data[y*g.Width:(y+1)*g.Width:(y+1)*g.Width])
	}
	return rows
}

// String prints each row as a bracketed list of numbers, one row per line.
func (g *Grid) String() string {
	b := new(strings.Builder)
	for _, row := range g.Rows() {
		b.WriteByte('[')
		for i, v := range row {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%d", v)
		}
		b.WriteString("]\n")
	}
	return b.String()
}
