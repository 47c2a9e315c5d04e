// Package snake implements the snake game entities: the food item, the
// snake itself and the translation of input events into turns.
// Nothing here knows about terminals or windows; entities draw onto a
// core.Canvas supplied by the caller.
package snake

import (
	"slices"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Outcome reports what a single Step did.
type Outcome int

const (
	OutcomeMoved    Outcome = iota // Advanced one cell, length unchanged
	OutcomeGrew                    // Ate the food, length +1
	OutcomeCollided                // Ran into itself and was reset
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeGrew:
		return "grew"
	case OutcomeCollided:
		return "collided"
	default:
		return "unknown"
	}
}

// DefaultDirection is the heading of a fresh snake.
var DefaultDirection = core.Right

// Snake is the player-controlled actor.
type Snake struct {
	body      []core.Point // Head at index 0
	length    int
	direction core.Direction
	pending   core.Direction
	hasNext   bool // pending holds a direction not yet committed

	last    core.Point // Cell vacated by the most recent step, erased on render
	hasLast bool

	food  *Food // Not owned; relocated on consumption and on death
	theme core.Theme
}

// New creates a snake of length 1 at the board center heading right.
func New(food *Food, theme core.Theme) *Snake {
	s := &Snake{
		food:  food,
		theme: theme,
	}
	s.Reset()
	return s
}

// Reset returns the snake to its initial state.
func (s *Snake) Reset() {
	s.direction = DefaultDirection
	s.pending = core.Direction{}
	s.hasNext = false
	s.body = []core.Point{core.Center()}
	s.length = len(s.body)
	s.hasLast = false
}

// SetPendingDirection records d as the next heading unless it is the exact
// opposite of the current one. Reports whether d was accepted.
func (s *Snake) SetPendingDirection(d core.Direction) bool {
	if d.IsOpposite(s.direction) {
		return false
	}
	s.pending = d
	s.hasNext = true
	return true
}

// CommitDirection applies the pending direction, if any, and clears it.
// Called once per tick so several key presses within one tick collapse
// into at most one turn.
func (s *Snake) CommitDirection() {
	if !s.hasNext {
		return
	}
	s.direction = s.pending
	s.pending = core.Direction{}
	s.hasNext = false
}

// Step moves the snake one cell in its current direction.
func (s *Snake) Step() Outcome {
	head := core.WrapPoint(s.Head().Add(s.direction.Step()))

	// The cell right behind the head can never be reached in one move.
	if len(s.body) > 2 && slices.Contains(s.body[2:], head) {
		s.food.Relocate()
		s.Reset()
		return OutcomeCollided
	}

	outcome := OutcomeMoved
	if head == s.food.Position() {
		s.food.Relocate()
		s.hasLast = false
		outcome = OutcomeGrew
	} else {
		tail := len(s.body) - 1
		s.last = s.body[tail]
		s.hasLast = true
		s.body = s.body[:tail]
	}

	s.body = append([]core.Point{head}, s.body...)
	s.length = len(s.body)
	return outcome
}

// Render draws the body, then the head, then erases the vacated tail cell.
func (s *Snake) Render(dst core.Canvas) {
	for _, seg := range s.body[1:] {
		core.DrawCell(dst, seg, s.theme.Body, s.theme.Border)
	}
	core.DrawCell(dst, s.Head(), s.theme.Body, s.theme.Border)

	if s.hasLast {
		dst.FillRect(core.CellRect(s.last), s.theme.Background)
	}
}

// Head returns the head cell.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return s.length
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []core.Point {
	out := make([]core.Point, len(s.body))
	copy(out, s.body)
	return out
}

// Direction returns the current heading.
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// Pending returns the uncommitted direction, if any.
func (s *Snake) Pending() (core.Direction, bool) {
	return s.pending, s.hasNext
}

// LastVacated returns the cell the tail left on the most recent move.
func (s *Snake) LastVacated() (core.Point, bool) {
	return s.last, s.hasLast
}
