package preview

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/skeleton/pkg/animation"
	"github.com/go-drift/skeleton/pkg/config"
	"github.com/go-drift/skeleton/pkg/graphics"
	"github.com/go-drift/skeleton/pkg/skeleton"
)

// DefaultFPS is the frame rate used when Options.FPS is not positive.
const DefaultFPS = 30

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7F8C8D"))
	stateStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#3498DB")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C"))
)

type keyMap struct {
	Toggle  key.Binding
	Remove  key.Binding
	Rebuild key.Binding
	More    key.Binding
	Fewer   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Remove, k.Rebuild, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Remove, k.Rebuild},
		{k.More, k.Fewer},
		{k.Help, k.Quit},
	}
}

var keys = keyMap{
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "start/stop"),
	),
	Remove: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "remove"),
	),
	Rebuild: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "rebuild"),
	),
	More: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "more lines"),
	),
	Fewer: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "fewer lines"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Options configures the interactive preview.
type Options struct {
	FPS        int
	Background graphics.Color
	// Source names the config file in the status line.
	Source string
}

type frameMsg time.Time

// ReloadMsg carries a freshly loaded configuration into the preview.
type ReloadMsg struct {
	Resolved *config.Resolved
	Err      error
}

// Model is the bubbletea model of the interactive preview.
type Model struct {
	session    *Session
	help       help.Model
	fps        int
	background graphics.Color
	source     string
	width      int
	height     int
	status     string
	err        error
	quitting   bool
}

// NewModel builds a preview of r.
func NewModel(r *config.Resolved, opts Options) (*Model, error) {
	session, err := NewSession(r)
	if err != nil {
		return nil, err
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	bg := opts.Background
	if bg == 0 {
		bg = graphics.ColorWhite
	}
	return &Model{
		session:    session,
		help:       help.New(),
		fps:        fps,
		background: bg,
		source:     opts.Source,
		width:      80,
		height:     24,
	}, nil
}

// Session exposes the previewed layer.
func (m *Model) Session() *Session { return m.session }

// Status is the last status line message.
func (m *Model) Status() string { return m.status }

// Err is the last reload or build error, if any.
func (m *Model) Err() error { return m.err }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case frameMsg:
		animation.StepTickers()
		return m, m.tick()

	case ReloadMsg:
		if msg.Err != nil {
			m.err = msg.Err
			m.status = "reload failed"
			return m, nil
		}
		m.err = m.session.Reload(msg.Resolved)
		m.status = "reloaded"
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, keys.Toggle):
		m.toggle()

	case key.Matches(msg, keys.Remove):
		layer := m.session.Layer()
		if layer == nil {
			return m, nil
		}
		m.status = "removing"
		layer.RemoveLayer(m.session.Config().Transition, func() {
			m.status = "removed"
		})

	case key.Matches(msg, keys.Rebuild):
		m.err = m.session.Rebuild()
		m.status = "rebuilt"

	case key.Matches(msg, keys.More):
		m.adjustLines(1)

	case key.Matches(msg, keys.Fewer):
		m.adjustLines(-1)
	}
	return m, nil
}

func (m *Model) toggle() {
	layer := m.session.Layer()
	if layer == nil {
		return
	}
	if layer.State() == skeleton.StateAnimating {
		layer.StopAnimation()
		m.status = "stopped"
		return
	}
	if layer.Start(m.session.Config().Animation, nil) {
		m.status = "animating"
		return
	}
	m.status = fmt.Sprintf("no animation for %s", layer.Type())
}

func (m *Model) adjustLines(delta int) {
	if !m.session.AdjustLines(delta) {
		m.status = "host has no lines"
		return
	}
	lines, _ := m.session.Lines()
	if lines == 0 {
		m.status = "lines: fit"
		return
	}
	m.status = fmt.Sprintf("lines: %d", lines)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := m.help.View(keys)
	rows := m.height - lipgloss.Height(helpView) - 1
	art := HalfBlocks(Fit(m.session.Image(), m.width, rows*2), m.background)

	return lipgloss.JoinVertical(lipgloss.Left, art, m.statusLine(), helpView)
}

func (m *Model) statusLine() string {
	state := "none"
	if layer := m.session.Layer(); layer != nil {
		state = layer.State().String()
	}
	line := stateStyle.Render(state) + statusStyle.Render(" "+m.session.Config().Type.String())
	if m.source != "" {
		line += statusStyle.Render(" " + m.source)
	}
	if m.status != "" {
		line += statusStyle.Render(" · " + m.status)
	}
	if m.err != nil {
		line += " " + errorStyle.Render(m.err.Error())
	}
	return line
}

// NewProgram wraps m in a full-screen bubbletea program using the given I/O.
func NewProgram(m *Model, output io.Writer, input io.Reader) *tea.Program {
	return tea.NewProgram(
		m,
		tea.WithOutput(output),
		tea.WithInput(input),
		tea.WithAltScreen(),
	)
}
