// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies on any rendering or input backend
// (no Bubble Tea, no Ebitengine) to keep game logic pure and testable.
package core

import "fmt"

// Point is a pixel-space position. Board positions are always multiples
// of CellSize and mark the top-left corner of a cell.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Scale multiplies both components by k.
func (p Point) Scale(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Direction is a unit vector along one axis.
type Direction Point

// The four movement directions. Each is the negation of exactly one other.
var (
	Up    = Direction{X: 0, Y: -1}
	Down  = Direction{X: 0, Y: 1}
	Left  = Direction{X: -1, Y: 0}
	Right = Direction{X: 1, Y: 0}
)

// Directions lists all movement directions.
var Directions = []Direction{Up, Down, Left, Right}

// Opposite returns the negated direction.
func (d Direction) Opposite() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

// IsOpposite reports whether o points exactly against d.
func (d Direction) IsOpposite(o Direction) bool {
	return d.Opposite() == o
}

// Step returns the pixel offset of one cell-sized move in this direction.
func (d Direction) Step() Point {
	return Point(d).Scale(CellSize)
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Wrap maps v into [0, extent) with toroidal wraparound.
// Works for negative values and overshoots larger than one extent.
func Wrap(v, extent int) int {
	if extent <= 0 {
		return 0
	}
	v %= extent
	if v < 0 {
		v += extent
	}
	return v
}

// WrapPoint wraps both axes of p against the board extents.
func WrapPoint(p Point) Point {
	return Point{X: Wrap(p.X, ScreenWidth), Y: Wrap(p.Y, ScreenHeight)}
}

// Rect represents an axis-aligned rectangle in pixel space.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CellRect returns the cell-sized rectangle whose top-left corner is p.
func CellRect(p Point) Rect {
	return Rect{X: p.X, Y: p.Y, W: CellSize, H: CellSize}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
