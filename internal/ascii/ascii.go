package ascii

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/koki-develop/imgscii/internal/scaler"
)

var ErrEmptyGradient = errors.New("gradient must contain at least one character")

type Converter struct {
	gradient []rune
	reversed bool
}

type Option func(*Converter)

// WithGradient sets the characters used for brightness, ordered dark to light.
func WithGradient(gradient string) Option {
	return func(c *Converter) {
		c.gradient = []rune(gradient)
	}
}

func WithReversed(reversed bool) Option {
	return func(c *Converter) {
		c.reversed = reversed
	}
}

func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{gradient: defaultGradient}
	for _, o := range opts {
		o(c)
	}
	if len(c.gradient) == 0 {
		return nil, ErrEmptyGradient
	}
	return c, nil
}

// Symbol maps a brightness value onto the gradient.
func (c *Converter) Symbol(b byte) rune {
	n := len(c.gradient)
	i := int(math.Round(float64(b) / 255 * float64(n-1)))
	i = max(0, min(i, n-1))
	if c.reversed {
		i = n - 1 - i
	}
	return c.gradient[i]
}

func (c *Converter) GridToASCII(grid *scaler.Grid) []string {
	rows := make([]string, 0, grid.Height)
	for _, row := range grid.Rows() {
		b := new(strings.Builder)
		b.Grow(len(row))
		for _, v := range row {
			b.WriteRune(c.Symbol(v))
		}
		rows = append(rows, b.String())
	}
	return rows
}

// Render writes the grid to w, one line per row.
func (c *Converter) Render(w io.Writer, grid *scaler.Grid) error {
	for _, line := range c.GridToASCII(grid) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
