package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/loop"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

func init() {
	registry.Register("tui", "Terminal UI (Bubble Tea)", func(opts registry.Options) (registry.Player, error) {
		return NewPlayer(opts), nil
	})
}

// The board plus one help line must fit on screen.
const (
	minWidth  = core.GridWidth * cellColumns
	minHeight = core.GridHeight + 1
)

var (
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Model is the Bubble Tea model that drives the game loop.
type Model struct {
	driver   *loop.Driver
	backend  *Backend
	keys     KeyMap
	help     help.Model
	title    string
	interval time.Duration
	width    int
	height   int
	quitting bool
	err      error
}

// NewModel creates a model around an existing driver and its backend.
func NewModel(d *loop.Driver, b *Backend, keys KeyMap, title string) Model {
	return Model{
		driver:   d,
		backend:  b,
		keys:     keys,
		help:     help.New(),
		title:    title,
		interval: time.Second / time.Duration(d.Config().TickRate),
	}
}

// Init sets the terminal title and starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(m.title), tickCmd(m.interval))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if ev, ok := m.keys.MapKey(msg); ok {
			m.backend.Push(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleTick(start time.Time) (tea.Model, tea.Cmd) {
	quit, err := m.driver.Frame()
	if err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(remaining(m.interval, start, time.Now()))
}

// View renders the last presented board and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width > 0 && (m.width < minWidth || m.height < minHeight) {
		return errorStyle.Render(fmt.Sprintf("terminal too small: %dx%d, need %dx%d", m.width, m.height, minWidth, minHeight))
	}
	return m.backend.Frame() + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// checkSize reports whether a terminal of the given size can show the board.
func checkSize(width, height int) error {
	if width < minWidth || height < minHeight {
		return fmt.Errorf("tui: terminal is %dx%d, need at least %dx%d", width, height, minWidth, minHeight)
	}
	return nil
}

// Player runs the game in the terminal.
type Player struct {
	opts registry.Options
}

// NewPlayer creates a terminal player.
func NewPlayer(opts registry.Options) *Player {
	return &Player{opts: opts}
}

// Play runs the Bubble Tea program until the player quits or ctx ends.
func (p *Player) Play(ctx context.Context) error {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return fmt.Errorf("tui: stdout is not a terminal: %w", err)
	}
	if err := checkSize(w, h); err != nil {
		return err
	}

	logger := p.opts.Logger
	if logger != nil {
		logger = logger.WithPrefix("tui")
	}

	backend := NewBackend()
	d := loop.New(backend, p.opts.Runtime, logger)
	model := NewModel(d, backend, NewKeyMap(p.opts.Config.Keys), p.opts.Config.Window.Title)

	if logger != nil {
		logger.Info("backend started", "seed", d.Config().Seed, "terminal", fmt.Sprintf("%dx%d", w, h))
	}

	final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	closeErr := d.Close()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return closeErr
}
