package core

import "strings"

// Cell is the content of one grid cell in a Screen.
type Cell struct {
	Fill     Color
	Border   Color
	Outlined bool
}

// Screen is a cell-granular raster implementing Canvas.
// It decouples rendering from the output device: the terminal backend
// styles its cells and the headless backend inspects them directly.
// Pixel rectangles are snapped to the cells they cover.
type Screen struct {
	width    int
	height   int
	cellSize int
	cells    [][]Cell
}

// NewScreen creates a screen of width × height cells, each cellSize pixels.
func NewScreen(width, height, cellSize int) *Screen {
	s := &Screen{
		width:    width,
		height:   height,
		cellSize: cellSize,
	}
	s.allocate()
	s.Clear(BackgroundColor)
	return s
}

// NewBoardScreen creates a screen covering the whole board.
func NewBoardScreen() *Screen {
	return NewScreen(GridWidth, GridHeight, CellSize)
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Clear resets every cell to a plain fill of c.
func (s *Screen) Clear(c Color) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Fill: c}
		}
	}
}

// FillRect paints every cell covered by r. A fill drops any outline.
func (s *Screen) FillRect(r Rect, c Color) {
	s.each(r, func(cell *Cell) {
		*cell = Cell{Fill: c}
	})
}

// StrokeRect marks every cell covered by r as outlined with c.
func (s *Screen) StrokeRect(r Rect, c Color, _ int) {
	s.each(r, func(cell *Cell) {
		cell.Border = c
		cell.Outlined = true
	})
}

func (s *Screen) each(r Rect, fn func(*Cell)) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	x0 := r.X / s.cellSize
	y0 := r.Y / s.cellSize
	x1 := (r.Right() + s.cellSize - 1) / s.cellSize
	y1 := (r.Bottom() + s.cellSize - 1) / s.cellSize
	for y := max(y0, 0); y < min(y1, s.height); y++ {
		for x := max(x0, 0); x < min(x1, s.width); x++ {
			fn(&s.cells[y][x])
		}
	}
}

// Get returns the cell at the given cell coordinates.
// Returns a zero Cell for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{}
	}
	return s.cells[y][x]
}

// At returns the cell under a board position.
func (s *Screen) At(p Point) Cell {
	return s.Get(p.X/s.cellSize, p.Y/s.cellSize)
}

// Glyph returns the debug character for a cell:
// '*' food, '#' snake, '+' any other outlined cell, '.' empty.
func (c Cell) Glyph() rune {
	switch {
	case c.Fill == FoodColor:
		return '*'
	case c.Fill == BodyColor:
		return '#'
	case c.Outlined:
		return '+'
	default:
		return '.'
	}
}

// String converts the screen to one glyph per cell, rows joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Glyph())
		}
	}
	return sb.String()
}

// Count returns how many cells are filled with c.
func (s *Screen) Count(c Color) int {
	n := 0
	for y := range s.cells {
		for x := range s.cells[y] {
			if s.cells[y][x].Fill == c {
				n++
			}
		}
	}
	return n
}
