// Package tui provides the Bubble Tea terminal backend for the snake game.
// Bubble Tea owns the event loop; every tick message runs one game frame.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// minTickDelay keeps a slow frame from scheduling a zero-length tick.
const minTickDelay = time.Millisecond

// tickCmd schedules the next tick after delay.
func tickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(max(delay, minTickDelay), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// remaining returns what is left of interval after a frame that began at
// start, measured at now.
func remaining(interval time.Duration, start, now time.Time) time.Duration {
	return interval - now.Sub(start)
}
