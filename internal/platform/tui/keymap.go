package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
)

// KeyMap holds the game bindings, built from the configured key names.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// NewKeyMap builds bindings from configuration.
func NewKeyMap(kb config.KeyBindings) KeyMap {
	return KeyMap{
		Up:    binding(kb.Up, "up"),
		Down:  binding(kb.Down, "down"),
		Left:  binding(kb.Left, "left"),
		Right: binding(kb.Right, "right"),
		Quit:  binding(kb.Quit, "quit"),
	}
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Quit},
	}
}

// MapKey translates a key message to a game event.
// Quit is checked first so a key bound to quit always quits.
func (k KeyMap) MapKey(msg tea.KeyMsg) (core.Event, bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.Quit(), true
	case key.Matches(msg, k.Up):
		return core.KeyPress(core.KeyUp), true
	case key.Matches(msg, k.Down):
		return core.KeyPress(core.KeyDown), true
	case key.Matches(msg, k.Left):
		return core.KeyPress(core.KeyLeft), true
	case key.Matches(msg, k.Right):
		return core.KeyPress(core.KeyRight), true
	}
	return core.Event{}, false
}
