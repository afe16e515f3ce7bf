package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// EbitenSurface draws onto an ebiten screen image. The host points it at the
// screen handed to Draw every frame with SetTarget.
type EbitenSurface struct {
	target *ebiten.Image
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

func NewEbitenSurface() (*EbitenSurface, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load score font: %w", err)
	}
	return &EbitenSurface{
		source: src,
		faces:  make(map[float64]*text.GoTextFace),
	}, nil
}

func (e *EbitenSurface) SetTarget(screen *ebiten.Image) {
	e.target = screen
}

func (e *EbitenSurface) Size() (width, height float64) {
	if e.target == nil {
		return 0, 0
	}
	b := e.target.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (e *EbitenSurface) FillRect(x, y, width, height float64, c color.Color) {
	if e.target == nil {
		return
	}
	vector.FillRect(e.target, float32(x), float32(y), float32(width), float32(height), c, false)
}

func (e *EbitenSurface) FillCircle(cx, cy, radius float64, c color.Color) {
	if e.target == nil {
		return
	}
	vector.FillCircle(e.target, float32(cx), float32(cy), float32(radius), c, true)
}

// DrawText shifts by the face ascent because text/v2 lays out from the top
// of the line, not the baseline.
func (e *EbitenSurface) DrawText(s string, x, y, size float64, c color.Color) {
	if e.target == nil {
		return
	}
	face := e.face(size)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(e.target, s, face, op)
}

func (e *EbitenSurface) face(size float64) *text.GoTextFace {
	if f, ok := e.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: e.source, Size: size}
	e.faces[size] = f
	return f
}
