package snake

import (
	"math/rand"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Food is the single item the snake eats. It is never destroyed, only
// moved to a new cell.
type Food struct {
	position core.Point
	rng      *rand.Rand
	theme    core.Theme
}

// NewFood creates food at a random cell.
func NewFood(rng *rand.Rand, theme core.Theme) *Food {
	f := &Food{
		rng:   rng,
		theme: theme,
	}
	f.Relocate()
	return f
}

// Relocate moves the food to a uniformly random cell of the whole board.
// Cells under the snake are not excluded.
func (f *Food) Relocate() {
	f.position = core.Point{
		X: f.rng.Intn(core.GridWidth) * core.CellSize,
		Y: f.rng.Intn(core.GridHeight) * core.CellSize,
	}
}

// PlaceAt puts the food on a specific cell, wrapped onto the board and
// snapped to the grid.
func (f *Food) PlaceAt(p core.Point) {
	p = core.WrapPoint(p)
	f.position = core.Point{X: p.X - p.X%core.CellSize, Y: p.Y - p.Y%core.CellSize}
}

// Position returns the food's cell.
func (f *Food) Position() core.Point {
	return f.position
}

// Render draws the food cell with its border.
func (f *Food) Render(dst core.Canvas) {
	core.DrawCell(dst, f.position, f.theme.Food, f.theme.Border)
}
