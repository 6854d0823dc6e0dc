package resize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResizer_Fit(t *testing.T) {
	r := NewResizer()

	tests := []struct {
		name       string
		w, h       int
		srcW, srcH int
	}{
		{"wide source", 80, 24, 1920, 1080},
		{"tall source", 80, 24, 600, 2000},
		{"square source", 120, 40, 512, 512},
		{"tiny source", 200, 60, 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := r.Fit(tt.w, tt.h, tt.srcW, tt.srcH)
			assert.GreaterOrEqual(t, w, 0)
			assert.GreaterOrEqual(t, h, 0)
			assert.LessOrEqual(t, w, tt.w)
			assert.LessOrEqual(t, h, tt.h)
		})
	}
}

func TestResizer_FitDegenerate(t *testing.T) {
	r := NewResizer()

	w, h := r.Fit(0, 24, 100, 100)
	assert.Equal(t, 0, w)
	assert.Equal(t, 0, h)

	w, h = r.Fit(80, 24, 0, 0)
	assert.Equal(t, 0, w)
	assert.Equal(t, 0, h)
}

func TestResizer_Resolve(t *testing.T) {
	r := NewResizer()

	w, h := r.Resolve(Target{Width: 200, Height: 200, Fit: true}, 80, 24, 10, 10)
	assert.Equal(t, 200, w)
	assert.Equal(t, 200, h)

	w, h = r.Resolve(Target{Width: 30}, 80, 24, 10, 10)
	assert.Equal(t, 30, w)
	assert.Equal(t, 24, h)

	w, h = r.Resolve(Target{}, 80, 24, 10, 10)
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)

	w, h = r.Resolve(Target{Fit: true}, 80, 24, 1920, 1080)
	assert.LessOrEqual(t, w, 80)
	assert.LessOrEqual(t, h, 24)

	w, _ = r.Resolve(Target{Width: 40, Fit: true}, 80, 24, 100, 100)
	assert.LessOrEqual(t, w, 40)
}

func TestTerminalSize_NotATerminal(t *testing.T) {
	w, h := TerminalSize(-1)
	assert.Equal(t, DefaultWidth, w)
	assert.Equal(t, DefaultHeight, h)
}
