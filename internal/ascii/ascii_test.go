package ascii

import (
	"bytes"
	"testing"

	"github.com/koki-develop/imgscii/internal/scaler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Symbol(t *testing.T) {
	c, err := NewConverter(WithGradient("abcde"))
	require.NoError(t, err)

	tests := []struct {
		in   byte
		want rune
	}{
		{0, 'a'},
		{31, 'a'},
		{32, 'b'},
		{127, 'c'},
		{128, 'c'},
		{223, 'd'},
		{224, 'e'},
		{255, 'e'},
	}
	for _, tt := range tests {
		assert.Equal(t, string(tt.want), string(c.Symbol(tt.in)), "brightness %d", tt.in)
	}
}

func TestConverter_SymbolMonotonic(t *testing.T) {
	g := Gradient(GradientDetailed)
	c, err := NewConverter(WithGradient(g))
	require.NoError(t, err)

	index := func(r rune) int {
		for i, x := range []rune(g) {
			if x == r {
				return i
			}
		}
		return -1
	}
	prev := 0
	for b := 0; b <= 255; b++ {
		i := index(c.Symbol(byte(b)))
		require.GreaterOrEqual(t, i, prev)
		prev = i
	}
	assert.Equal(t, len([]rune(g))-1, prev)
}

func TestConverter_SingleCharGradient(t *testing.T) {
	c, err := NewConverter(WithGradient("#"))
	require.NoError(t, err)
	assert.Equal(t, '#', c.Symbol(0))
	assert.Equal(t, '#', c.Symbol(255))
}

func TestConverter_Reversed(t *testing.T) {
	c, err := NewConverter(WithGradient(" @"), WithReversed(true))
	require.NoError(t, err)
	assert.Equal(t, '@', c.Symbol(0))
	assert.Equal(t, ' ', c.Symbol(255))
}

func TestNewConverter_EmptyGradient(t *testing.T) {
	_, err := NewConverter(WithGradient(""))
	assert.ErrorIs(t, err, ErrEmptyGradient)
}

func TestConverter_Render(t *testing.T) {
	c, err := NewConverter(WithGradient(Gradient(GradientBlocks)))
	require.NoError(t, err)

	grid := &scaler.Grid{Width: 3, Height: 2, Data: []byte{0, 128, 255, 255, 64, 0}}
	assert.Equal(t, []string{" ▒█", "█░ "}, c.GridToASCII(grid))

	buf := new(bytes.Buffer)
	require.NoError(t, c.Render(buf, grid))
	assert.Equal(t, " ▒█\n█░ \n", buf.String())
}

func TestConverter_RenderEmpty(t *testing.T) {
	c, err := NewConverter()
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	require.NoError(t, c.Render(buf, &scaler.Grid{}))
	assert.Empty(t, buf.String())
	assert.Empty(t, c.GridToASCII(&scaler.Grid{Height: 3}))
}

func TestGradient(t *testing.T) {
	assert.Equal(t, " .:-=+*#%@", Gradient(GradientStandard))
	assert.Equal(t, "xyz", Gradient("xyz"))
	assert.NotEmpty(t, Gradient(GradientImage2ASCII))
	assert.Equal(t, []string{GradientBlocks, GradientDetailed, GradientImage2ASCII, GradientStandard}, Presets())
}
