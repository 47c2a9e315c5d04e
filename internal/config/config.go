// Package config provides YAML-based configuration loading for the snake
// game. Board geometry, colors and tick rate are fixed in package core and
// deliberately absent here.
package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// SnakeConfig contains all user-tunable settings.
type SnakeConfig struct {
	Backend  string         `yaml:"backend"` // Default backend for `snake play`
	Window   WindowConfig   `yaml:"window"`
	Keys     KeyBindings    `yaml:"keys"`
	Log      LogConfig      `yaml:"log"`
	Simulate SimulateConfig `yaml:"simulate"`
}

// WindowConfig defines the presentation of the game surface.
type WindowConfig struct {
	Title string `yaml:"title"`
}

// KeyBindings lists the key names bound to each action. Names follow the
// Bubble Tea spelling ("up", "w", "ctrl+c", "esc"); the window backend
// translates its own key codes to the same names.
type KeyBindings struct {
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Quit  []string `yaml:"quit"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty means stderr (or discard under the tui backend)
}

// SimulateConfig defines the headless autopilot run.
type SimulateConfig struct {
	Ticks      int     `yaml:"ticks"`       // Frames to run; zero runs until interrupted
	TurnChance float64 `yaml:"turn_chance"` // Probability of a turn per tick
	Realtime   bool    `yaml:"realtime"`    // Pace at the tick rate instead of running flat out
}

// EventFor maps a key name to the input event it is bound to.
func (k KeyBindings) EventFor(name string) (core.Event, bool) {
	name = strings.ToLower(name)
	switch {
	case contains(k.Quit, name):
		return core.Quit(), true
	case contains(k.Up, name):
		return core.KeyPress(core.KeyUp), true
	case contains(k.Down, name):
		return core.KeyPress(core.KeyDown), true
	case contains(k.Left, name):
		return core.KeyPress(core.KeyLeft), true
	case contains(k.Right, name):
		return core.KeyPress(core.KeyRight), true
	}
	return core.Event{}, false
}

// Actions returns bindings keyed by action name, in display order.
func (k KeyBindings) Actions() []Binding {
	return []Binding{
		{Action: "up", Keys: k.Up},
		{Action: "down", Keys: k.Down},
		{Action: "left", Keys: k.Left},
		{Action: "right", Keys: k.Right},
		{Action: "quit", Keys: k.Quit},
	}
}

// Binding pairs an action with its keys.
type Binding struct {
	Action string
	Keys   []string
}

func contains(keys []string, name string) bool {
	for _, k := range keys {
		if strings.ToLower(k) == name {
			return true
		}
	}
	return false
}

// Validate checks the configuration for unusable values.
func (c SnakeConfig) Validate() error {
	seen := make(map[string]string)
	for _, b := range c.Keys.Actions() {
		if len(b.Keys) == 0 {
			return fmt.Errorf("config: no keys bound to %q", b.Action)
		}
		for _, k := range b.Keys {
			k = strings.ToLower(k)
			if prev, dup := seen[k]; dup {
				return fmt.Errorf("config: key %q bound to both %q and %q", k, prev, b.Action)
			}
			seen[k] = b.Action
		}
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log level: %w", err)
	}
	if c.Simulate.Ticks < 0 {
		return fmt.Errorf("config: simulate.ticks must not be negative, got %d", c.Simulate.Ticks)
	}
	if c.Simulate.TurnChance < 0 || c.Simulate.TurnChance > 1 {
		return fmt.Errorf("config: simulate.turn_chance must be within [0, 1], got %g", c.Simulate.TurnChance)
	}
	return nil
}
