package core

// Canvas is the drawing surface a backend hands to entities.
// Coordinates are in board pixels.
type Canvas interface {
	// Clear paints the whole surface with c.
	Clear(c Color)

	// FillRect paints r with a solid color.
	FillRect(r Rect, c Color)

	// StrokeRect draws the outline of r with the given line width.
	StrokeRect(r Rect, c Color, width int)
}

// Renderable is anything that can draw itself onto a Canvas.
type Renderable interface {
	Render(dst Canvas)
}

// DrawCell fills the cell at p and outlines it with border.
func DrawCell(dst Canvas, p Point, fill, border Color) {
	r := CellRect(p)
	dst.FillRect(r, fill)
	dst.StrokeRect(r, border, 1)
}
