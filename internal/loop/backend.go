// Package loop runs the fixed-timestep game loop. It couples a rendering and
// input Backend to the snake entities and executes the per-frame sequence
// in a fixed order: render, present, input, commit, step, wait.
package loop

import (
	"context"
	"time"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Backend is the display surface and input source the loop drives.
type Backend interface {
	// Canvas returns the persistent surface entities draw on.
	Canvas() core.Canvas

	// Present pushes everything drawn so far to the visible output.
	Present() error

	// PollEvents drains all input received since the previous call.
	PollEvents() []core.Event

	// Close releases the display. Called once when the loop ends.
	Close() error
}

// Pacer blocks between frames to hold the tick rate.
type Pacer interface {
	Wait(ctx context.Context) error
}

// Starter is implemented by pacers that need to know when the first
// iteration begins. Run calls Start once, before the first frame.
type Starter interface {
	Start()
}

// TickerPacer waits until one tick interval has elapsed since the previous
// iteration began, so time spent inside a frame counts against the interval.
type TickerPacer struct {
	interval time.Duration
	next     time.Time
	now      func() time.Time
}

// NewTickerPacer creates a pacer for the given ticks per second.
func NewTickerPacer(rate int) *TickerPacer {
	if rate <= 0 {
		rate = core.TickRate
	}
	return &TickerPacer{
		interval: time.Second / time.Duration(rate),
		now:      time.Now,
	}
}

// Interval returns the duration of one tick.
func (p *TickerPacer) Interval() time.Duration {
	return p.interval
}

// Start marks the beginning of the first iteration.
func (p *TickerPacer) Start() {
	p.next = p.now()
}

// Wait blocks until the current tick is over or ctx is done.
// Without a prior Start the first tick is measured from this call.
func (p *TickerPacer) Wait(ctx context.Context) error {
	now := p.now()
	if p.next.IsZero() {
		p.next = now
	}
	p.next = p.next.Add(p.interval)

	// Fell behind by more than a tick: resynchronise instead of bursting.
	if p.next.Before(now) {
		p.next = now
		return ctx.Err()
	}

	timer := time.NewTimer(p.next.Sub(now))
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NoWait returns immediately. Used for bounded simulations.
type NoWait struct{}

// Wait returns ctx.Err() without blocking.
func (NoWait) Wait(ctx context.Context) error {
	return ctx.Err()
}
