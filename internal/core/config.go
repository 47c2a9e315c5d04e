package core

// Board geometry and timing. These are fixed for the lifetime of the
// program and are not exposed through configuration.
const (
	ScreenWidth  = 640 // Board width in pixels
	ScreenHeight = 480 // Board height in pixels
	CellSize     = 20  // Edge of one grid cell in pixels

	GridWidth  = ScreenWidth / CellSize  // 32 cells
	GridHeight = ScreenHeight / CellSize // 24 cells

	TickRate = 6 // Simulation ticks per second
)

// Center returns the board-center cell where the snake spawns.
func Center() Point {
	return Point{X: ScreenWidth / 2, Y: ScreenHeight / 2}
}

// InBounds reports whether p lies on the board.
func InBounds(p Point) bool {
	return board.Contains(p.X, p.Y)
}

var board = NewRect(0, 0, ScreenWidth, ScreenHeight)

// Aligned reports whether p sits on the cell grid.
func Aligned(p Point) bool {
	return p.X%CellSize == 0 && p.Y%CellSize == 0
}

// RuntimeConfig contains configuration passed to the driver at startup.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default TickRate)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with the fixed defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: TickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}
