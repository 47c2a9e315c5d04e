package core

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// Color is a solid RGBA color.
type Color = color.RGBA

// Board palette.
var (
	BackgroundColor = colornames.Black
	BorderColor     = Color{R: 93, G: 216, B: 228, A: 255}
	FoodColor       = colornames.Red
	BodyColor       = colornames.Lime
)

// Theme groups the colors entities draw with.
type Theme struct {
	Background Color
	Border     Color
	Food       Color
	Body       Color
}

// DefaultTheme returns the board palette.
func DefaultTheme() Theme {
	return Theme{
		Background: BackgroundColor,
		Border:     BorderColor,
		Food:       FoodColor,
		Body:       BodyColor,
	}
}

// Hex formats c as #rrggbb, the form terminal stylers accept.
func Hex(c Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
