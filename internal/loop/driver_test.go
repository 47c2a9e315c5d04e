package loop

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// recordingCanvas logs every draw call before forwarding it to a Screen.
type recordingCanvas struct {
	screen *core.Screen
	ops    *[]string
}

func (c recordingCanvas) Clear(col core.Color) {
	*c.ops = append(*c.ops, "clear")
	c.screen.Clear(col)
}

func (c recordingCanvas) FillRect(r core.Rect, col core.Color) {
	*c.ops = append(*c.ops, "fill:"+colorName(col))
	c.screen.FillRect(r, col)
}

func (c recordingCanvas) StrokeRect(r core.Rect, col core.Color, w int) {
	*c.ops = append(*c.ops, "stroke")
	c.screen.StrokeRect(r, col, w)
}

func colorName(c core.Color) string {
	switch c {
	case core.BodyColor:
		return "body"
	case core.FoodColor:
		return "food"
	case core.BackgroundColor:
		return "background"
	}
	return "other"
}

// fakeBackend serves scripted events: script[i] is returned by the i-th poll.
type fakeBackend struct {
	screen   *core.Screen
	ops      []string
	script   [][]core.Event
	polls    int
	presents []string // Screen dumps taken at each Present
	closed   int
	failAt   int // Present fails on this call when > 0
}

func newFakeBackend(script ...[]core.Event) *fakeBackend {
	return &fakeBackend{screen: core.NewBoardScreen(), script: script}
}

func (b *fakeBackend) Canvas() core.Canvas {
	return recordingCanvas{screen: b.screen, ops: &b.ops}
}

func (b *fakeBackend) Present() error {
	b.ops = append(b.ops, "present")
	b.presents = append(b.presents, b.screen.String())
	if b.failAt > 0 && len(b.presents) == b.failAt {
		return errors.New("display lost")
	}
	return nil
}

func (b *fakeBackend) PollEvents() []core.Event {
	b.ops = append(b.ops, "poll")
	var events []core.Event
	if b.polls < len(b.script) {
		events = b.script[b.polls]
	}
	b.polls++
	return events
}

func (b *fakeBackend) Close() error {
	b.closed++
	return nil
}

func newTestDriver(b *fakeBackend) *Driver {
	d := New(b, core.RuntimeConfig{Seed: 42}, nil)
	d.Food().PlaceAt(core.Point{X: 0, Y: 0})
	b.ops = nil
	return d
}

func TestFrameOrder(t *testing.T) {
	b := newFakeBackend()
	d := newTestDriver(b)

	if quit, err := d.Frame(); quit || err != nil {
		t.Fatalf("Frame() = %v, %v", quit, err)
	}

	got := strings.Join(b.ops, " ")
	want := "fill:body stroke fill:food stroke present poll"
	if got != want {
		t.Errorf("ops = %q, expected %q", got, want)
	}

	// The presented frame shows the pre-step state
	rows := strings.Split(b.presents[0], "\n")
	c := core.Center()
	if rows[c.Y/core.CellSize][c.X/core.CellSize] != '#' {
		t.Error("presented frame should show the snake at the center")
	}
	if rows[0][0] != '*' {
		t.Error("presented frame should show the food at (0, 0)")
	}

	// The step ran after input
	if d.Snake().Head() != c.Add(core.Right.Step()) {
		t.Errorf("Head() = %v after one frame", d.Snake().Head())
	}
}

func TestFrameAppliesInputBeforeStep(t *testing.T) {
	b := newFakeBackend([]core.Event{core.KeyPress(core.KeyUp)})
	d := newTestDriver(b)

	d.Frame()

	if d.Snake().Direction() != core.Up {
		t.Errorf("Direction() = %v, expected up", d.Snake().Direction())
	}
	if d.Snake().Head() != core.Center().Add(core.Up.Step()) {
		t.Errorf("Head() = %v, expected one cell up", d.Snake().Head())
	}
}

func TestFrameQuitSkipsStep(t *testing.T) {
	b := newFakeBackend([]core.Event{core.KeyPress(core.KeyUp), core.Quit()})
	d := newTestDriver(b)

	quit, err := d.Frame()
	if !quit || err != nil {
		t.Fatalf("Frame() = %v, %v; expected quit", quit, err)
	}
	if d.Snake().Head() != core.Center() {
		t.Error("snake should not move on the quitting frame")
	}
	if d.Snapshot().Tick != 0 {
		t.Errorf("Tick = %d, expected 0", d.Snapshot().Tick)
	}
}

func TestFramePresentError(t *testing.T) {
	b := newFakeBackend()
	b.failAt = 1
	d := newTestDriver(b)

	if _, err := d.Frame(); err == nil || !strings.Contains(err.Error(), "display lost") {
		t.Errorf("expected wrapped present error, got %v", err)
	}
}

func TestFiveFramesRight(t *testing.T) {
	b := newFakeBackend()
	d := newTestDriver(b)

	for range 5 {
		d.Frame()
	}

	sn := d.Snapshot()
	if sn.Length != 1 {
		t.Errorf("Length = %d, expected 1", sn.Length)
	}
	if sn.Head != core.Center().Add(core.Point{X: 5 * core.CellSize}) {
		t.Errorf("Head = %v", sn.Head)
	}
	if sn.Tick != 5 {
		t.Errorf("Tick = %d, expected 5", sn.Tick)
	}
}

func TestFrameFoodAheadGrows(t *testing.T) {
	b := newFakeBackend()
	d := newTestDriver(b)

	ahead := core.Center().Add(core.Right.Step())
	d.Food().PlaceAt(ahead)
	d.Frame()

	sn := d.Snapshot()
	if sn.Length != 2 || sn.Head != ahead {
		t.Errorf("after eating: %v", sn)
	}
	if sn.Outcome != snake.OutcomeGrew || sn.Longest != 2 {
		t.Errorf("Outcome = %v, Longest = %d", sn.Outcome, sn.Longest)
	}
}

func TestCollisionClearsBoard(t *testing.T) {
	script := [][]core.Event{
		nil, nil, nil, nil,
		{core.KeyPress(core.KeyDown)},
		{core.KeyPress(core.KeyLeft)},
		{core.KeyPress(core.KeyUp)},
	}
	b := newFakeBackend(script...)
	d := newTestDriver(b)

	// Grow to length 5 heading right
	for range 4 {
		d.Food().PlaceAt(d.Snake().Head().Add(core.Right.Step()))
		d.Frame()
	}
	if d.Snake().Len() != 5 {
		t.Fatalf("setup: Len() = %d, expected 5", d.Snake().Len())
	}

	// Down, left, up runs into the body
	for range 3 {
		d.Food().PlaceAt(core.Point{X: 0, Y: 0})
		d.Frame()
	}

	sn := d.Snapshot()
	if sn.Outcome != snake.OutcomeCollided || sn.Deaths != 1 {
		t.Fatalf("expected a collision, got %v (outcome %v)", sn, sn.Outcome)
	}
	if sn.Length != 1 || sn.Head != core.Center() || sn.Dir != core.Right {
		t.Errorf("snake not reset: %v", sn)
	}
	if sn.Longest != 5 {
		t.Errorf("Longest = %d, expected 5", sn.Longest)
	}
	if b.ops[len(b.ops)-1] != "clear" {
		t.Errorf("board should be cleared after the collision, last op %q", b.ops[len(b.ops)-1])
	}
	if b.screen.Count(core.BodyColor) != 0 {
		t.Error("cleared board should have no body cells")
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	b := newFakeBackend(nil, nil, []core.Event{core.Quit()})
	d := newTestDriver(b)

	if err := d.Run(context.Background(), NoWait{}); err != nil {
		t.Fatalf("Run() = %v, expected nil", err)
	}
	if d.Snapshot().Tick != 2 {
		t.Errorf("Tick = %d, expected 2", d.Snapshot().Tick)
	}
	if b.closed != 1 {
		t.Errorf("backend closed %d times, expected 1", b.closed)
	}

	// Closing again is a no-op
	d.Close()
	if b.closed != 1 {
		t.Error("Close should be idempotent")
	}
}

func TestRunMaxFrames(t *testing.T) {
	b := newFakeBackend()
	d := newTestDriver(b)
	d.MaxFrames = 10

	err := d.Run(context.Background(), NoWait{})
	if !errors.Is(err, ErrMaxFrames) {
		t.Fatalf("Run() = %v, expected ErrMaxFrames", err)
	}
	if d.Snapshot().Tick != 10 || len(b.presents) != 10 {
		t.Errorf("ran %d frames with %d presents, expected 10", d.Snapshot().Tick, len(b.presents))
	}
	if b.closed != 1 {
		t.Error("backend should be closed")
	}
}

func TestRunContextCancelled(t *testing.T) {
	b := newFakeBackend()
	d := newTestDriver(b)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := d.Run(ctx, NoWait{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, expected context.Canceled", err)
	}
	if b.closed != 1 {
		t.Error("backend should be closed")
	}
}

func TestTickerPacer(t *testing.T) {
	if got := NewTickerPacer(core.TickRate).Interval(); got != time.Second/6 {
		t.Errorf("Interval() = %v, expected %v", got, time.Second/6)
	}
	if got := NewTickerPacer(0).Interval(); got != time.Second/core.TickRate {
		t.Errorf("zero rate should fall back to the default, got %v", got)
	}

	p := NewTickerPacer(100)
	start := time.Now()
	for range 3 {
		if err := p.Wait(context.Background()); err != nil {
			t.Fatal(err)
		}
	}
	if elapsed := time.Since(start); elapsed < 25*time.Millisecond {
		t.Errorf("three 10ms ticks took only %v", elapsed)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	slow := NewTickerPacer(1)
	if err := slow.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait() = %v, expected context.Canceled", err)
	}
}

func TestTickerPacerResyncsWhenBehind(t *testing.T) {
	now := time.Unix(0, 0)
	p := NewTickerPacer(10)
	p.now = func() time.Time { return now }

	p.next = now.Add(-time.Second)
	if err := p.Wait(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !p.next.Equal(now) {
		t.Errorf("next = %v, expected resync to %v", p.next, now)
	}
}

func TestTickerPacerMeasuresFromStart(t *testing.T) {
	now := time.Unix(0, 0)
	p := NewTickerPacer(10)
	p.now = func() time.Time { return now }

	p.Start()
	// A frame that overruns the 100ms tick leaves nothing to wait for.
	now = now.Add(150 * time.Millisecond)
	if err := p.Wait(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !p.next.Equal(now) {
		t.Errorf("next = %v, expected %v", p.next, now)
	}

	// A short frame only waits for the rest of the tick.
	now = now.Add(30 * time.Millisecond)
	p.Start()
	now = now.Add(30 * time.Millisecond)
	start := time.Now()
	if err := p.Wait(context.Background()); err != nil {
		t.Fatal(err)
	}
	if elapsed := time.Since(start); elapsed >= 100*time.Millisecond {
		t.Errorf("waited %v, expected about 70ms", elapsed)
	}
}

// startPacer records Start and Wait calls into the backend's op log.
type startPacer struct {
	ops *[]string
}

func (p startPacer) Start() {
	*p.ops = append(*p.ops, "start")
}

func (p startPacer) Wait(ctx context.Context) error {
	*p.ops = append(*p.ops, "wait")
	return ctx.Err()
}

func TestRunStartsPacerBeforeFirstFrame(t *testing.T) {
	b := newFakeBackend()
	d := newTestDriver(b)
	d.MaxFrames = 2

	if err := d.Run(context.Background(), startPacer{ops: &b.ops}); !errors.Is(err, ErrMaxFrames) {
		t.Fatalf("Run() = %v, expected ErrMaxFrames", err)
	}

	if len(b.ops) == 0 || b.ops[0] != "start" {
		t.Fatalf("ops = %v, expected start first", b.ops)
	}
	if n := strings.Count(strings.Join(b.ops, " "), "start"); n != 1 {
		t.Errorf("Start called %d times, expected once", n)
	}
}
