package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// newTestGame returns a snake whose food sits out of the way at (0, 0).
func newTestGame(seed int64) (*Snake, *Food) {
	food := NewFood(rand.New(rand.NewSource(seed)), core.DefaultTheme())
	food.PlaceAt(core.Point{X: 0, Y: 0})
	return New(food, core.DefaultTheme()), food
}

func TestNewSnakeInitialState(t *testing.T) {
	s, _ := newTestGame(1)

	if s.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", s.Len())
	}
	if s.Head() != core.Center() {
		t.Errorf("Head() = %v, expected center %v", s.Head(), core.Center())
	}
	if s.Direction() != core.Right {
		t.Errorf("Direction() = %v, expected right", s.Direction())
	}
	if _, ok := s.Pending(); ok {
		t.Error("fresh snake should have no pending direction")
	}
	if _, ok := s.LastVacated(); ok {
		t.Error("fresh snake should have no vacated cell")
	}
}

func TestSetPendingDirection(t *testing.T) {
	for _, current := range core.Directions {
		for _, d := range core.Directions {
			t.Run(current.String()+"->"+d.String(), func(t *testing.T) {
				s, _ := newTestGame(1)
				s.direction = current

				accepted := s.SetPendingDirection(d)
				s.CommitDirection()

				if d == current.Opposite() {
					if accepted {
						t.Error("reversal should be rejected")
					}
					if s.Direction() != current {
						t.Errorf("direction changed to %v on reversal", s.Direction())
					}
					return
				}
				if !accepted {
					t.Error("non-reversing direction should be accepted")
				}
				if s.Direction() != d {
					t.Errorf("Direction() = %v, expected %v", s.Direction(), d)
				}
			})
		}
	}
}

func TestCommitDirectionClearsPending(t *testing.T) {
	s, _ := newTestGame(1)

	s.SetPendingDirection(core.Up)
	s.CommitDirection()
	if _, ok := s.Pending(); ok {
		t.Error("pending should be cleared after commit")
	}

	// Commit without a pending direction is a no-op
	s.CommitDirection()
	if s.Direction() != core.Up {
		t.Errorf("Direction() = %v, expected up", s.Direction())
	}
}

func TestStepMovesWithoutGrowth(t *testing.T) {
	s, _ := newTestGame(1)
	s.body = []core.Point{{X: 200, Y: 200}, {X: 180, Y: 200}, {X: 160, Y: 200}}
	s.length = 3

	for _, d := range []core.Direction{core.Right, core.Up, core.Left, core.Down} {
		old := s.Head()
		oldLen := s.Len()
		s.SetPendingDirection(d)
		s.CommitDirection()

		if out := s.Step(); out != OutcomeMoved {
			t.Fatalf("Step() = %v, expected moved", out)
		}
		if s.Len() != oldLen {
			t.Errorf("length changed from %d to %d", oldLen, s.Len())
		}
		want := core.WrapPoint(old.Add(s.Direction().Step()))
		if s.Head() != want {
			t.Errorf("Head() = %v, expected %v", s.Head(), want)
		}
		if !core.Aligned(s.Head()) || !core.InBounds(s.Head()) {
			t.Errorf("head %v left the grid", s.Head())
		}
	}
}

func TestStepRemembersVacatedTail(t *testing.T) {
	s, _ := newTestGame(1)
	s.body = []core.Point{{X: 200, Y: 200}, {X: 180, Y: 200}}
	s.length = 2

	s.Step()

	last, ok := s.LastVacated()
	if !ok || last != (core.Point{X: 180, Y: 200}) {
		t.Errorf("LastVacated() = %v, %v; expected (180, 200), true", last, ok)
	}
}

func TestStepWrapsAroundEdges(t *testing.T) {
	tests := []struct {
		name     string
		start    core.Point
		dir      core.Direction
		expected core.Point
	}{
		{"right edge", core.Point{X: core.ScreenWidth - core.CellSize, Y: 100}, core.Right, core.Point{X: 0, Y: 100}},
		{"left edge", core.Point{X: 0, Y: 100}, core.Left, core.Point{X: core.ScreenWidth - core.CellSize, Y: 100}},
		{"bottom edge", core.Point{X: 100, Y: core.ScreenHeight - core.CellSize}, core.Down, core.Point{X: 100, Y: 0}},
		{"top edge", core.Point{X: 100, Y: 0}, core.Up, core.Point{X: 100, Y: core.ScreenHeight - core.CellSize}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, food := newTestGame(1)
			food.PlaceAt(core.Point{X: 300, Y: 300})
			s.body = []core.Point{tc.start}
			s.direction = tc.dir

			s.Step()

			if s.Head() != tc.expected {
				t.Errorf("Head() = %v, expected %v", s.Head(), tc.expected)
			}
		})
	}
}

func TestStepGrowsOnFood(t *testing.T) {
	s, food := newTestGame(1)
	// Feed relocations from a known sequence so the new spot is predictable
	food.rng = rand.New(&cellSource{cells: []int{3, 5}})

	ahead := s.Head().Add(s.Direction().Step())
	food.PlaceAt(ahead)

	if out := s.Step(); out != OutcomeGrew {
		t.Fatalf("Step() = %v, expected grew", out)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", s.Len())
	}
	if s.Head() != ahead {
		t.Errorf("Head() = %v, expected %v", s.Head(), ahead)
	}
	if s.Body()[1] != core.Center() {
		t.Errorf("tail should stay at %v, got %v", core.Center(), s.Body()[1])
	}
	if food.Position() != (core.Point{X: 60, Y: 100}) {
		t.Errorf("food should be relocated to (60, 100), got %v", food.Position())
	}
	if _, ok := s.LastVacated(); ok {
		t.Error("growing step should not vacate a cell")
	}
}

func TestStepSelfCollisionResets(t *testing.T) {
	s, food := newTestGame(7)
	// Head at (100,100) heading right into its own tail at index 3
	s.body = []core.Point{
		{X: 100, Y: 100},
		{X: 100, Y: 120},
		{X: 120, Y: 120},
		{X: 120, Y: 100},
	}
	s.length = 4
	s.direction = core.Right
	s.SetPendingDirection(core.Up)

	if out := s.Step(); out != OutcomeCollided {
		t.Fatalf("Step() = %v, expected collided", out)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", s.Len())
	}
	if s.Head() != core.Center() {
		t.Errorf("Head() = %v, expected center", s.Head())
	}
	if s.Direction() != core.Right {
		t.Errorf("Direction() = %v, expected right", s.Direction())
	}
	if _, ok := s.Pending(); ok {
		t.Error("pending direction should be cleared on reset")
	}
	if !core.Aligned(food.Position()) || !core.InBounds(food.Position()) {
		t.Errorf("food relocated off grid: %v", food.Position())
	}
}

func TestStepIgnoresNeckCell(t *testing.T) {
	s, _ := newTestGame(1)
	// Forcing a move into index 1 is not a collision; only index >= 2 counts
	s.body = []core.Point{{X: 100, Y: 100}, {X: 120, Y: 100}}
	s.length = 2
	s.direction = core.Right

	if out := s.Step(); out == OutcomeCollided {
		t.Error("moving onto the neck cell should not count as a collision")
	}
}

func TestFiveStepsRight(t *testing.T) {
	s, _ := newTestGame(1)

	for range 5 {
		s.CommitDirection()
		s.Step()
	}

	if s.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", s.Len())
	}
	want := core.WrapPoint(core.Center().Add(core.Point{X: 5 * core.CellSize}))
	if s.Head() != want {
		t.Errorf("Head() = %v, expected %v", s.Head(), want)
	}
}

func TestRenderErasesVacatedCell(t *testing.T) {
	s, _ := newTestGame(1)
	screen := core.NewBoardScreen()

	s.Render(screen)
	if screen.At(core.Center()).Fill != core.BodyColor {
		t.Fatal("head should be drawn in body color")
	}

	s.Step()
	s.Render(screen)

	if screen.At(core.Center()).Fill != core.BackgroundColor {
		t.Error("vacated cell should be painted with the background")
	}
	head := screen.At(s.Head())
	if head.Fill != core.BodyColor || !head.Outlined || head.Border != core.BorderColor {
		t.Errorf("head cell = %+v", head)
	}
	if screen.Count(core.BodyColor) != 1 {
		t.Errorf("expected exactly one body cell, got %d", screen.Count(core.BodyColor))
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs should end identically
	run := func() Snapshot {
		food := NewFood(rand.New(rand.NewSource(12345)), core.DefaultTheme())
		s := New(food, core.DefaultTheme())
		for i := range 200 {
			switch i % 37 {
			case 5:
				s.SetPendingDirection(core.Down)
			case 17:
				s.SetPendingDirection(core.Left)
			case 29:
				s.SetPendingDirection(core.Up)
			}
			s.CommitDirection()
			s.Step()
		}
		return Capture(s, food)
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("snapshots differ:\n%v\n%v", a, b)
	}
}

// cellSource is a rand.Source whose Intn results for small n follow the
// given sequence: Intn(n) == cells[i] % n.
type cellSource struct {
	cells []int
	i     int
}

func (c *cellSource) Int63() int64 {
	v := c.cells[c.i%len(c.cells)]
	c.i++
	return int64(v) << 32
}

func (c *cellSource) Seed(int64) {}
