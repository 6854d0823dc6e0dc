package resize

import (
	"github.com/koki-develop/imgscii/internal/util"
	"github.com/qeesung/image2ascii/convert"
	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

type Resizer struct {
	resizeHandler *convert.ImageResizeHandler
}

func NewResizer() *Resizer {
	return &Resizer{
		resizeHandler: convert.NewResizeHandler().(*convert.ImageResizeHandler),
	}
}

// Fit returns the largest grid that keeps the source aspect ratio, accounting
// for character cells being taller than wide, and fits inside w x h.
func (r *Resizer) Fit(w, h, srcW, srcH int) (int, int) {
	if w <= 0 || h <= 0 || srcW <= 0 || srcH <= 0 {
		return 0, 0
	}
	neww, newh := r.resizeHandler.CalcFitSize(float64(w), float64(h), float64(srcW), float64(srcH))
	return util.Clamp(neww, 0, w), util.Clamp(newh, 0, h)
}

// TerminalSize reports the size of the terminal on fd, or the default
// 80x24 when fd is not a terminal.
func TerminalSize(fd int) (int, int) {
	if !term.IsTerminal(fd) {
		return DefaultWidth, DefaultHeight
	}
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return w, h
}

// Target resolves the output grid size. Explicit dimensions win; a missing
// one is derived from the source aspect when fit is set, otherwise taken
// from the bounding box.
type Target struct {
	Width  int
	Height int
	Fit    bool
}

func (r *Resizer) Resolve(t Target, boxW, boxH, srcW, srcH int) (int, int) {
	switch {
	case t.Width > 0 && t.Height > 0:
		return t.Width, t.Height
	case !t.Fit:
		w, h := boxW, boxH
		if t.Width > 0 {
			w = t.Width
		}
		if t.Height > 0 {
			h = t.Height
		}
		return w, h
	case t.Width > 0:
		// Unbounded height: only the width constrains the fit.
		return r.Fit(t.Width, util.Max(boxH, t.Width*srcH), srcW, srcH)
	case t.Height > 0:
		return r.Fit(util.Max(boxW, t.Height*srcW*2), t.Height, srcW, srcH)
	default:
		return r.Fit(boxW, boxH, srcW, srcH)
	}
}
