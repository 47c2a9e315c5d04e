package loop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// ErrMaxFrames is returned by Run when the frame budget is exhausted.
var ErrMaxFrames = errors.New("loop: frame limit reached")

// Driver owns the game entities and the backend for the lifetime of a run.
type Driver struct {
	backend Backend
	food    *snake.Food
	snake   *snake.Snake
	theme   core.Theme
	config  core.RuntimeConfig
	logger  *log.Logger

	// MaxFrames stops Run after this many frames. Zero means unbounded.
	MaxFrames uint64

	frames  uint64
	deaths  int
	longest int
	outcome snake.Outcome
	closed  bool
}

// New creates a driver. A zero seed is replaced with the current time.
func New(backend Backend, cfg core.RuntimeConfig, logger *log.Logger) *Driver {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	theme := core.DefaultTheme()
	food := snake.NewFood(rand.New(rand.NewSource(cfg.Seed)), theme)
	s := snake.New(food, theme)

	backend.Canvas().Clear(theme.Background)

	return &Driver{
		backend: backend,
		food:    food,
		snake:   s,
		theme:   theme,
		config:  cfg,
		logger:  logger,
		longest: s.Len(),
	}
}

// Frame runs one iteration of the loop, minus the wait:
// render snake, render food, present, poll input, commit direction, step.
// Returns quit=true when a quit event was seen; the step is skipped then.
func (d *Driver) Frame() (quit bool, err error) {
	canvas := d.backend.Canvas()

	for _, r := range []core.Renderable{d.snake, d.food} {
		r.Render(canvas)
	}
	if err := d.backend.Present(); err != nil {
		return false, fmt.Errorf("loop: present: %w", err)
	}

	if snake.HandleEvents(d.backend.PollEvents(), d.snake) {
		d.logger.Info("quit requested", "frame", d.frames, "length", d.snake.Len())
		return true, nil
	}

	d.snake.CommitDirection()
	before := d.snake.Len()
	d.outcome = d.snake.Step()
	d.frames++

	switch d.outcome {
	case snake.OutcomeCollided:
		d.deaths++
		canvas.Clear(d.theme.Background)
		d.logger.Info("snake died", "length", before, "deaths", d.deaths, "food", d.food.Position())
	case snake.OutcomeGrew:
		d.longest = max(d.longest, d.snake.Len())
		d.logger.Debug("snake grew", "length", d.snake.Len(), "food", d.food.Position())
	}

	return false, nil
}

// Run loops Frame and pacer.Wait until a quit event, context cancellation
// or MaxFrames. The backend is closed before Run returns.
// A quit event ends the run with a nil error.
func (d *Driver) Run(ctx context.Context, pacer Pacer) (err error) {
	if pacer == nil {
		pacer = NewTickerPacer(d.config.TickRate)
	}
	defer func() {
		if cerr := d.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	d.logger.Info("loop started", "seed", d.config.Seed, "tick_rate", d.config.TickRate)
	if s, ok := pacer.(Starter); ok {
		s.Start()
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.MaxFrames > 0 && d.frames >= d.MaxFrames {
			return ErrMaxFrames
		}

		quit, err := d.Frame()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}

		if err := pacer.Wait(ctx); err != nil {
			return err
		}
	}
}

// Close shuts the backend down. Safe to call more than once.
func (d *Driver) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	d.logger.Info("loop stopped", "frames", d.frames, "deaths", d.deaths, "longest", d.longest)
	if err := d.backend.Close(); err != nil {
		return fmt.Errorf("loop: close backend: %w", err)
	}
	return nil
}

// Snapshot returns the current state of the run.
func (d *Driver) Snapshot() snake.Snapshot {
	sn := snake.Capture(d.snake, d.food)
	sn.Tick = d.frames
	sn.Deaths = d.deaths
	sn.Longest = d.longest
	sn.Outcome = d.outcome
	return sn
}

// Snake returns the actor, for backends that need to inspect it.
func (d *Driver) Snake() *snake.Snake {
	return d.snake
}

// Food returns the food item.
func (d *Driver) Food() *snake.Food {
	return d.food
}

// Config returns the effective runtime configuration.
func (d *Driver) Config() core.RuntimeConfig {
	return d.config
}
