// Package headless provides an off-screen backend. The board is kept in a
// core.Screen and input comes from a seeded autopilot, which makes runs
// reproducible and lets the loop be exercised without a terminal or window.
package headless

import (
	"context"
	"errors"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/loop"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

func init() {
	registry.Register("headless", "Off-screen autopilot run (used by `snake simulate`)", func(opts registry.Options) (registry.Player, error) {
		return NewPlayer(opts), nil
	})
}

var directionKeys = []core.Key{core.KeyUp, core.KeyDown, core.KeyLeft, core.KeyRight}

// Autopilot emits a random direction key with a fixed probability per tick.
type Autopilot struct {
	rng    *rand.Rand
	chance float64
}

// NewAutopilot creates an autopilot with its own seeded RNG.
func NewAutopilot(seed int64, chance float64) *Autopilot {
	return &Autopilot{
		rng:    rand.New(rand.NewSource(seed)),
		chance: chance,
	}
}

// Next returns the key presses for one tick: none or a single key.
func (a *Autopilot) Next() []core.Event {
	if a.rng.Float64() >= a.chance {
		return nil
	}
	return []core.Event{core.KeyPress(directionKeys[a.rng.Intn(len(directionKeys))])}
}

// Backend implements loop.Backend without any output device.
type Backend struct {
	screen   *core.Screen
	queue    core.EventQueue
	pilot    *Autopilot
	logger   *log.Logger
	presents int
	closed   bool
}

// NewBackend creates a headless backend fed by the given autopilot.
// A nil autopilot produces no input.
func NewBackend(pilot *Autopilot, logger *log.Logger) *Backend {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Backend{
		screen: core.NewBoardScreen(),
		pilot:  pilot,
		logger: logger,
	}
}

// Canvas returns the board screen.
func (b *Backend) Canvas() core.Canvas {
	return b.screen
}

// Screen exposes the board for inspection.
func (b *Backend) Screen() *core.Screen {
	return b.screen
}

// Present counts the frame. At debug level the board is dumped every
// hundred frames.
func (b *Backend) Present() error {
	if b.closed {
		return errors.New("headless: present after close")
	}
	b.presents++
	if b.presents%100 == 0 {
		b.logger.Debug("board", "frame", b.presents, "screen", "\n"+b.screen.String())
	}
	return nil
}

// Presents returns how many frames were presented.
func (b *Backend) Presents() int {
	return b.presents
}

// Push queues an event as if it had come from a keyboard.
func (b *Backend) Push(e core.Event) {
	b.queue.Push(e)
}

// PollEvents returns queued events followed by the autopilot's choice.
func (b *Backend) PollEvents() []core.Event {
	if b.pilot != nil {
		for _, e := range b.pilot.Next() {
			b.queue.Push(e)
		}
	}
	return b.queue.Drain()
}

// Close marks the backend closed.
func (b *Backend) Close() error {
	b.closed = true
	return nil
}

// Player runs a bounded autopilot session.
type Player struct {
	opts   registry.Options
	seed   int64
	result snake.Snapshot
}

func pilotSeed(gameSeed int64) int64 {
	return gameSeed ^ 0x5eed
}

// NewPlayer creates a headless player.
func NewPlayer(opts registry.Options) *Player {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Player{opts: opts}
}

// Play runs the configured number of ticks, or until ctx ends.
func (p *Player) Play(ctx context.Context) error {
	sim := p.opts.Config.Simulate
	logger := p.opts.Logger.WithPrefix("headless")

	backend := NewBackend(nil, logger)
	d := loop.New(backend, p.opts.Runtime, logger)
	d.MaxFrames = uint64(sim.Ticks)

	// The driver resolves a zero seed, so derive the autopilot seed from its
	// effective seed. One seed then reproduces the whole run.
	p.seed = d.Config().Seed
	backend.pilot = NewAutopilot(pilotSeed(p.seed), sim.TurnChance)

	var pacer loop.Pacer = loop.NoWait{}
	if sim.Realtime {
		pacer = loop.NewTickerPacer(d.Config().TickRate)
	}

	err := d.Run(ctx, pacer)
	p.result = d.Snapshot()
	if errors.Is(err, loop.ErrMaxFrames) {
		err = nil
	}
	if err != nil {
		return err
	}

	logger.Info("simulation finished", "seed", p.seed, "ticks", p.result.Tick, "deaths", p.result.Deaths, "longest", p.result.Longest)
	return nil
}

// Seed returns the effective game seed of the last Play.
func (p *Player) Seed() int64 {
	return p.seed
}

// Result returns the final snapshot of the last Play.
func (p *Player) Result() snake.Snapshot {
	return p.result
}
