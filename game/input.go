package game

// PointerEvent is a pointer position in viewport coordinates.
type PointerEvent struct {
	ClientX float64
	ClientY float64
}

// SurfaceRect places the drawing surface inside the viewport. Scale converts
// viewport units into surface units; zero means 1.
type SurfaceRect struct {
	Left   float64
	Top    float64
	ScaleX float64
	ScaleY float64
}

// PointerToSurface translates a viewport pointer into surface coordinates.
func PointerToSurface(ev PointerEvent, rect SurfaceRect) (x, y float64) {
	sx, sy := rect.ScaleX, rect.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return (ev.ClientX - rect.Left) * sx, (ev.ClientY - rect.Top) * sy
}

// HandlePointer applies a pointer-move event to the player paddle.
func (g *Game) HandlePointer(ev PointerEvent, rect SurfaceRect) {
	_, y := PointerToSurface(ev, rect)
	g.MovePointer(y)
}
