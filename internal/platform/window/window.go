// Package window provides the Ebitengine desktop backend. Ebitengine owns
// the main loop; its tick rate is set to the game tick rate and every
// Update runs one frame.
package window

import (
	"context"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/loop"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

func init() {
	registry.Register("window", "Desktop window (Ebitengine)", func(opts registry.Options) (registry.Player, error) {
		return NewPlayer(opts), nil
	})
}

// Backend implements loop.Backend with two offscreen images. Entities draw
// on back; Present copies back to front, and only front reaches the window.
type Backend struct {
	back   *ebiten.Image
	front  *ebiten.Image
	queue  core.EventQueue
	keys   config.KeyBindings
	closed bool
}

// NewBackend creates a window backend using the given key bindings.
func NewBackend(keys config.KeyBindings) *Backend {
	return &Backend{
		back:  ebiten.NewImage(core.ScreenWidth, core.ScreenHeight),
		front: ebiten.NewImage(core.ScreenWidth, core.ScreenHeight),
		keys:  keys,
	}
}

func (b *Backend) Canvas() core.Canvas {
	return imageCanvas{img: b.back}
}

func (b *Backend) Present() error {
	if b.closed {
		return errors.New("window: present after close")
	}
	b.front.Clear()
	b.front.DrawImage(b.back, nil)
	return nil
}

func (b *Backend) PollEvents() []core.Event {
	return b.queue.Drain()
}

// collect queues the keys pressed since the last tick. A request to close
// the window is queued as a quit event.
func (b *Backend) collect(pressed []ebiten.Key, ctrl, closing bool) {
	for _, ev := range translate(pressed, ctrl, b.keys) {
		b.queue.Push(ev)
	}
	if closing {
		b.queue.Push(core.Quit())
	}
}

func (b *Backend) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	b.back.Deallocate()
	b.front.Deallocate()
	return nil
}

// Game adapts the loop driver to ebiten.Game.
type Game struct {
	ctx     context.Context
	driver  *loop.Driver
	backend *Backend
	pressed []ebiten.Key
}

// NewGame wires a driver and its backend to Ebitengine.
func NewGame(ctx context.Context, d *loop.Driver, b *Backend) *Game {
	return &Game{ctx: ctx, driver: d, backend: b}
}

// Update runs one frame.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	g.backend.collect(g.pressed, ebiten.IsKeyPressed(ebiten.KeyControl), ebiten.IsWindowBeingClosed())

	quit, err := g.driver.Frame()
	if err != nil {
		return err
	}
	if quit {
		return ebiten.Termination
	}
	return nil
}

// Draw shows the last presented frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.backend.front, nil)
}

// Layout keeps the logical screen at board size.
func (g *Game) Layout(_, _ int) (int, int) {
	return core.ScreenWidth, core.ScreenHeight
}

// Player runs the game in a desktop window.
type Player struct {
	opts registry.Options
}

// NewPlayer creates a window player.
func NewPlayer(opts registry.Options) *Player {
	return &Player{opts: opts}
}

// Play opens the window and blocks until it is closed, the player quits
// or ctx ends.
func (p *Player) Play(ctx context.Context) error {
	logger := p.opts.Logger
	if logger != nil {
		logger = logger.WithPrefix("window")
	}

	backend := NewBackend(p.opts.Config.Keys)
	d := loop.New(backend, p.opts.Runtime, logger)

	ebiten.SetWindowSize(core.ScreenWidth, core.ScreenHeight)
	ebiten.SetWindowTitle(p.opts.Config.Window.Title)
	ebiten.SetTPS(d.Config().TickRate)
	ebiten.SetWindowClosingHandled(true)

	if logger != nil {
		logger.Info("backend started", "seed", d.Config().Seed, "tps", d.Config().TickRate)
	}

	err := ebiten.RunGame(NewGame(ctx, d, backend))
	closeErr := d.Close()
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return closeErr
}
