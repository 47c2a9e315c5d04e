package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Backend: "tui",
		Window: WindowConfig{
			Title: "Snake",
		},
		Keys: KeyBindings{
			Up:    []string{"up", "w", "k"},
			Down:  []string{"down", "s", "j"},
			Left:  []string{"left", "a", "h"},
			Right: []string{"right", "d", "l"},
			Quit:  []string{"q", "ctrl+c", "esc"},
		},
		Log: LogConfig{
			Level: "warn",
		},
		Simulate: SimulateConfig{
			Ticks:      600,
			TurnChance: 0.2,
			Realtime:   false,
		},
	}
}
