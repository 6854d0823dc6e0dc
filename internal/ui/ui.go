package ui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/koki-develop/imgscii/internal/ascii"
	"github.com/koki-develop/imgscii/internal/resize"
	"github.com/koki-develop/imgscii/internal/scaler"
	"github.com/koki-develop/imgscii/internal/util"
)

type Option struct {
	Image *scaler.Image
	// Target overrides the window-derived size; zero fields follow the window.
	Target   resize.Target
	Gradient string
	Reversed bool
	Logger   *slog.Logger
}

func Start(opt *Option) error {
	m := newModel(opt)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	if m.err != nil {
		return m.err
	}

	return nil
}

var _ tea.Model = &model{}

type model struct {
	err    error
	logger *slog.Logger

	resizer *resize.Resizer
	image   *scaler.Image
	target  resize.Target
	keys    keyMap
	help    help.Model

	gradients []string
	gradient  int
	reversed  bool

	windowHeight int
	windowWidth  int
}

func newModel(opt *Option) *model {
	logger := opt.Logger
	if logger == nil {
		logger = slog.Default()
	}

	want := opt.Gradient
	if want == "" {
		want = ascii.GradientStandard
	}

	gradients := ascii.Presets()
	current := 0
	found := false
	for i, name := range gradients {
		if ascii.Gradient(name) == ascii.Gradient(want) {
			current, found = i, true
			break
		}
	}
	if !found {
		gradients = append([]string{want}, gradients...)
	}

	return &model{
		logger:  logger,
		resizer: resize.NewResizer(),
		image:   opt.Image,
		target:  opt.Target,
		keys:    defaultKeyMap(),
		help:    help.New(),

		gradients: gradients,
		gradient:  current,
		reversed:  opt.Reversed,
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) View() string {
	if m.windowWidth == 0 || m.windowHeight == 0 {
		return "loading..."
	}
	return m.asciiView() + "\n" + m.statusView()
}

func (m *model) asciiView() string {
	boxW, boxH := util.Max(0, m.windowWidth-2), util.Max(0, m.windowHeight-4)
	w, h := m.resizer.Resolve(m.target, boxW, boxH, m.image.Width, m.image.Height)
	grid, err := scaler.Scale(m.image, w, h)
	if err != nil {
		return err.Error()
	}
	converter, err := ascii.NewConverter(
		ascii.WithGradient(ascii.Gradient(m.gradients[m.gradient])),
		ascii.WithReversed(m.reversed),
	)
	if err != nil {
		return err.Error()
	}

	leftPad := strings.Repeat(" ", util.Max(0, (m.windowWidth-grid.Width)/2))
	b := new(strings.Builder)
	for _, line := range converter.GridToASCII(grid) {
		b.WriteString(leftPad)
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func (m *model) statusView() string {
	b := new(strings.Builder)
	b.WriteString(" ")
	b.WriteString(color.New(color.BgBlue, color.FgWhite).Sprintf(" %s ", m.gradients[m.gradient]))
	if m.reversed {
		b.WriteString(" ")
		b.WriteString(color.New(color.BgRed, color.FgWhite).Sprint(" reversed "))
	}
	b.WriteString("  ")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reverse):
			m.reversed = !m.reversed
			return m, nil
		case key.Matches(msg, m.keys.Gradient):
			m.gradient = (m.gradient + 1) % len(m.gradients)
			m.logger.Debug("switched gradient", "gradient", m.gradients[m.gradient])
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.windowHeight = msg.Height
		m.windowWidth = msg.Width
		m.help.Width = msg.Width
		m.logger.Debug("window resized", "width", msg.Width, "height", msg.Height)
		return m, nil
	}

	return m, nil
}
