package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// imageCanvas draws onto an offscreen ebiten image.
type imageCanvas struct {
	img *ebiten.Image
}

func (c imageCanvas) Clear(clr core.Color) {
	c.img.Fill(clr)
}

func (c imageCanvas) FillRect(r core.Rect, clr core.Color) {
	vector.DrawFilledRect(c.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

// StrokeRect keeps the stroke inside r, so a 1px border covers the outer
// ring of the cell and never bleeds into a neighbour.
func (c imageCanvas) StrokeRect(r core.Rect, clr core.Color, width int) {
	w := float32(width)
	half := w / 2
	vector.StrokeRect(c.img,
		float32(r.X)+half, float32(r.Y)+half,
		float32(r.W)-w, float32(r.H)-w,
		w, clr, false)
}
