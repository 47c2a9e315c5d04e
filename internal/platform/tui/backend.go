package tui

import (
	"errors"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Backend implements loop.Backend on top of a Bubble Tea program.
// Key messages are queued by the model and drained by the loop; Present
// renders the board into the string the model's View returns.
type Backend struct {
	screen *core.Screen
	queue  core.EventQueue
	styles styleCache
	frame  string
	closed bool
}

// NewBackend creates a terminal backend with an empty board.
func NewBackend() *Backend {
	return &Backend{
		screen: core.NewBoardScreen(),
		styles: make(styleCache),
	}
}

func (b *Backend) Canvas() core.Canvas {
	return b.screen
}

// Screen exposes the board buffer.
func (b *Backend) Screen() *core.Screen {
	return b.screen
}

func (b *Backend) Present() error {
	if b.closed {
		return errors.New("tui: present after close")
	}
	b.frame = RenderScreen(b.screen, b.styles)
	return nil
}

// Frame returns the last presented board.
func (b *Backend) Frame() string {
	return b.frame
}

// Push queues an input event for the next poll.
func (b *Backend) Push(e core.Event) {
	b.queue.Push(e)
}

func (b *Backend) PollEvents() []core.Event {
	return b.queue.Drain()
}

func (b *Backend) Close() error {
	b.closed = true
	return nil
}
