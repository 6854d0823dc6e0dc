package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/koki-develop/imgscii/internal/ascii"
	"github.com/koki-develop/imgscii/internal/resize"
	"github.com/koki-develop/imgscii/internal/scaler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func whiteImage(t *testing.T, w, h int) *scaler.Image {
	t.Helper()
	pix := make([]byte, 4*w*h)
	for i := range pix {
		pix[i] = 255
	}
	img, err := scaler.NewImage(w, h, pix)
	require.NoError(t, err)
	return img
}

func TestModel_ViewBeforeResize(t *testing.T) {
	m := newModel(&Option{Image: whiteImage(t, 4, 4)})
	assert.Equal(t, "loading...", m.View())
}

func TestModel_RendersOnResize(t *testing.T) {
	m := newModel(&Option{Image: whiteImage(t, 64, 64), Gradient: ascii.GradientStandard})

	_, cmd := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	assert.Nil(t, cmd)

	view := m.View()
	assert.Contains(t, view, "@")
	for _, line := range strings.Split(m.asciiView(), "\n") {
		assert.LessOrEqual(t, len(line), 40)
	}
}

func TestModel_Keys(t *testing.T) {
	m := newModel(&Option{Image: whiteImage(t, 8, 8), Gradient: ascii.GradientStandard})
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})

	start := m.gradient
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	assert.Equal(t, (start+1)%len(m.gradients), m.gradient)

	assert.False(t, m.reversed)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.True(t, m.reversed)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestNewModel_CustomGradient(t *testing.T) {
	m := newModel(&Option{Image: whiteImage(t, 2, 2), Gradient: "xyz"})
	assert.Equal(t, "xyz", m.gradients[m.gradient])
	assert.Len(t, m.gradients, len(ascii.Presets())+1)
}

func TestNewModel_DefaultGradient(t *testing.T) {
	m := newModel(&Option{Image: whiteImage(t, 2, 2)})
	assert.Equal(t, ascii.GradientStandard, m.gradients[m.gradient])
}

func TestModel_ExplicitTarget(t *testing.T) {
	m := newModel(&Option{
		Image:  whiteImage(t, 64, 64),
		Target: resize.Target{Width: 10, Height: 5},
	})
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})

	lines := strings.Split(strings.TrimSuffix(m.asciiView(), "\n"), "\n")
	require.Len(t, lines, 5)
	for _, line := range lines {
		assert.Equal(t, strings.Repeat(" ", 15)+strings.Repeat("@", 10), line)
	}
}
