package game

// Canvas is the playfield. Its size is read once at startup and bounds every position.
type Canvas struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func NewCanvas(width, height int) *Canvas {
	if width <= 0 || height <= 0 {
		panic("canvas dimensions must be positive")
	}
	return &Canvas{
		Width:  float64(width),
		Height: float64(height),
	}
}

// Center returns the middle of the field, where the ball is served from.
func (c *Canvas) Center() (x, y float64) {
	return c.Width / 2, c.Height / 2
}
