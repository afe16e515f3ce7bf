// Package render draws game.State snapshots onto a drawing surface.
package render

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Surface is the small set of primitives the renderer needs. Coordinates are
// field units; a surface scales them to its own pixels or cells.
type Surface interface {
	Size() (width, height float64)
	FillRect(x, y, width, height float64, c color.Color)
	FillCircle(cx, cy, radius float64, c color.Color)
	// DrawText draws s with its left baseline at (x, y).
	DrawText(s string, x, y, size float64, c color.Color)
}

// Style holds the colors and net geometry used by Draw.
type Style struct {
	Background color.Color
	Paddle     color.Color
	Ball       color.Color
	Net        color.Color
	Score      color.Color

	NetWidth  float64
	NetDash   float64 // Height of one net segment
	NetPeriod float64 // Distance between the tops of two segments

	ScoreSize float64
	ScoreY    float64 // Baseline of both scores
}

// DefaultStyle is a dark field with white pieces and a grey net.
func DefaultStyle() Style {
	return Style{
		Background: color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff},
		Paddle:     colornames.White,
		Ball:       colornames.White,
		Net:        color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff},
		Score:      colornames.White,

		NetWidth:  2,
		NetDash:   20,
		NetPeriod: 30,

		ScoreSize: 40,
		ScoreY:    50,
	}
}
