package render

import (
	"image"
	"image/color"
	"math"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	goRegularOnce sync.Once
	goRegular     *opentype.Font
)

func loadGoRegular() *opentype.Font {
	goRegularOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err == nil {
			goRegular = f
		}
	})
	return goRegular
}

// RasterSurface draws into an in-memory RGBA image, one pixel per field unit.
type RasterSurface struct {
	img   *image.RGBA
	faces map[float64]font.Face
}

func NewRasterSurface(width, height int) *RasterSurface {
	return &RasterSurface{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		faces: make(map[float64]font.Face),
	}
}

// Image exposes the backing image. It is overwritten by the next frame.
func (r *RasterSurface) Image() *image.RGBA {
	return r.img
}

func (r *RasterSurface) Size() (width, height float64) {
	b := r.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (r *RasterSurface) FillRect(x, y, width, height float64, c color.Color) {
	rect := image.Rect(
		int(math.Round(x)), int(math.Round(y)),
		int(math.Round(x+width)), int(math.Round(y+height)),
	)
	draw.Draw(r.img, rect.Intersect(r.img.Bounds()), image.NewUniform(c), image.Point{}, draw.Over)
}

// FillCircle sets every pixel whose center lies inside the circle.
func (r *RasterSurface) FillCircle(cx, cy, radius float64, c color.Color) {
	bounds := image.Rect(
		int(math.Floor(cx-radius)), int(math.Floor(cy-radius)),
		int(math.Ceil(cx+radius)), int(math.Ceil(cy+radius)),
	).Intersect(r.img.Bounds())

	r2 := radius * radius
	for py := bounds.Min.Y; py < bounds.Max.Y; py++ {
		dy := float64(py) + 0.5 - cy
		for px := bounds.Min.X; px < bounds.Max.X; px++ {
			dx := float64(px) + 0.5 - cx
			if dx*dx+dy*dy <= r2 {
				r.img.Set(px, py, c)
			}
		}
	}
}

func (r *RasterSurface) DrawText(s string, x, y, size float64, c color.Color) {
	d := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: r.face(size),
		Dot:  fixed.P(int(math.Round(x)), int(math.Round(y))),
	}
	d.DrawString(s)
}

// face returns a Go Regular face at size, falling back to the fixed 7x13
// bitmap font if the TTF cannot be loaded.
func (r *RasterSurface) face(size float64) font.Face {
	if f, ok := r.faces[size]; ok {
		return f
	}

	var face font.Face = basicfont.Face7x13
	if ttf := loadGoRegular(); ttf != nil && size > 0 {
		f, err := opentype.NewFace(ttf, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err == nil {
			face = f
		}
	}
	r.faces[size] = face
	return face
}
