package game

import (
	"github.com/lguibr/solopong/utils"
)

type Ball struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
	Vx     float64 `json:"vx"`
	Vy     float64 `json:"vy"`
	Speed  float64 `json:"speed"`
}

// NewBall serves the first ball from the center with a fixed vertical speed
// and random signs. Later serves go through Reset, which draws |vy| from a
// wider range.
func NewBall(canvas *Canvas, cfg utils.Config, rng utils.RandomSource) *Ball {
	x, y := canvas.Center()
	return &Ball{
		X:      x,
		Y:      y,
		Radius: cfg.BallRadius,
		Speed:  cfg.BallSpeed,
		Vx:     cfg.BallSpeed * utils.RandomSign(rng),
		Vy:     cfg.BallInitialVerticalSpeed * utils.RandomSign(rng),
	}
}

func (b *Ball) Move() {
	b.X += b.Vx
	b.Y += b.Vy
}

// Reset puts the ball back on the center spot with a fresh serve.
func (b *Ball) Reset(canvas *Canvas, rng utils.RandomSource) {
	b.X, b.Y = canvas.Center()
	b.Vx = b.Speed * utils.RandomSign(rng)
	b.Vy = utils.RandomRange(rng, utils.BallResetMinVerticalSpeed, utils.BallResetVerticalSpread) * utils.RandomSign(rng)
}

func (b *Ball) ReflectVelocityX() {
	b.Vx = -b.Vx
}

func (b *Ball) ReflectVelocityY() {
	b.Vy = -b.Vy
}
