package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/solopong/game"
)

// TerminalSurface maps the field onto the cells of a tcell screen. Shapes
// become background-colored cells; a shape thinner than a cell still covers
// the cell under its center so the net and the ball never vanish.
type TerminalSurface struct {
	screen      tcell.Screen
	fieldWidth  float64
	fieldHeight float64
}

func NewTerminalSurface(screen tcell.Screen, fieldWidth, fieldHeight float64) *TerminalSurface {
	return &TerminalSurface{screen: screen, fieldWidth: fieldWidth, fieldHeight: fieldHeight}
}

// Size reports the field size, not the cell grid.
func (t *TerminalSurface) Size() (width, height float64) {
	return t.fieldWidth, t.fieldHeight
}

// cellSize is how many field units one cell covers. It follows resizes.
func (t *TerminalSurface) cellSize() (cw, ch float64, ok bool) {
	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		return 0, 0, false
	}
	return t.fieldWidth / float64(cols), t.fieldHeight / float64(rows), true
}

// cellSpan returns the cells whose centers fall inside [start, start+length).
func cellSpan(start, length, cell float64) (first, last int) {
	first = int(math.Ceil(start/cell - 0.5))
	last = int(math.Ceil((start+length)/cell-0.5)) - 1
	if last < first {
		first = int(math.Floor((start + length/2) / cell))
		last = first
	}
	return first, last
}

func (t *TerminalSurface) FillRect(x, y, width, height float64, c color.Color) {
	cw, ch, ok := t.cellSize()
	if !ok {
		return
	}
	style := tcell.StyleDefault.Background(toTcellColor(c))
	x0, x1 := cellSpan(x, width, cw)
	y0, y1 := cellSpan(y, height, ch)
	for row := y0; row <= y1; row++ {
		for col := x0; col <= x1; col++ {
			t.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func (t *TerminalSurface) FillCircle(cx, cy, radius float64, c color.Color) {
	cw, ch, ok := t.cellSize()
	if !ok {
		return
	}
	style := tcell.StyleDefault.Background(toTcellColor(c))

	x0, x1 := cellSpan(cx-radius, 2*radius, cw)
	y0, y1 := cellSpan(cy-radius, 2*radius, ch)
	filled := false
	for row := y0; row <= y1; row++ {
		dy := (float64(row)+0.5)*ch - cy
		for col := x0; col <= x1; col++ {
			dx := (float64(col)+0.5)*cw - cx
			if dx*dx+dy*dy <= radius*radius {
				t.screen.SetContent(col, row, ' ', nil, style)
				filled = true
			}
		}
	}
	if !filled {
		t.screen.SetContent(int(cx/cw), int(cy/ch), ' ', nil, style)
	}
}

// DrawText writes s on the row under the middle of a size-tall line whose
// baseline is y. Cells keep their background.
func (t *TerminalSurface) DrawText(s string, x, y, size float64, c color.Color) {
	cw, ch, ok := t.cellSize()
	if !ok {
		return
	}
	fg := toTcellColor(c)
	col := int(math.Floor(x / cw))
	row := int(math.Floor((y - size/2) / ch))
	if row < 0 {
		row = 0
	}
	for i, r := range []rune(s) {
		_, _, style, _ := t.screen.GetContent(col+i, row)
		t.screen.SetContent(col+i, row, r, nil, style.Foreground(fg))
	}
}

// PointerRect converts cell coordinates into field units for
// game.PointerToSurface.
func (t *TerminalSurface) PointerRect() game.SurfaceRect {
	cw, ch, ok := t.cellSize()
	if !ok {
		return game.SurfaceRect{}
	}
	return game.SurfaceRect{ScaleX: cw, ScaleY: ch}
}

// MouseToPointer aims at the middle of the cell under the mouse.
func MouseToPointer(ev *tcell.EventMouse) game.PointerEvent {
	x, y := ev.Position()
	return game.PointerEvent{ClientX: float64(x) + 0.5, ClientY: float64(y) + 0.5}
}

func toTcellColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
