// File: game/paddle.go
package game

import (
	"github.com/lguibr/solopong/utils"
)

// Side identifies a paddle and, in a TickResult, who won the point.
type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideAI
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideAI:
		return "ai"
	}
	return "none"
}

type Paddle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Score  int     `json:"score"`
	Side   Side    `json:"side"`
}

// NewPaddle places a paddle against its wall, vertically centered.
// The player guards the left wall and the ai the right one.
func NewPaddle(canvas *Canvas, side Side, cfg utils.Config) *Paddle {
	width := float64(cfg.PaddleWidth)
	height := float64(cfg.PaddleHeight)
	margin := float64(cfg.PaddleMargin)

	x := margin
	if side == SideAI {
		x = canvas.Width - width - margin
	}

	return &Paddle{
		X:      x,
		Y:      canvas.Height/2 - height/2,
		Width:  width,
		Height: height,
		Side:   side,
	}
}

func (p *Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

// Clamp keeps the paddle fully inside [0, fieldHeight].
func (p *Paddle) Clamp(fieldHeight float64) {
	p.Y = utils.Clamp(p.Y, 0, fieldHeight-p.Height)
}

// CenterOn moves the paddle so its middle sits at y, then clamps it.
func (p *Paddle) CenterOn(y, fieldHeight float64) {
	p.Y = y - p.Height/2
	p.Clamp(fieldHeight)
}

// Track steps the paddle by speed toward targetY unless its center is
// already within deadZone of it. It never moves by anything but a full step,
// so it can hover one step either side of the dead-zone boundary.
func (p *Paddle) Track(targetY, speed, deadZone, fieldHeight float64) {
	center := p.CenterY()
	if center < targetY-deadZone {
		p.Y += speed
	} else if center > targetY+deadZone {
		p.Y -= speed
	}
	p.Clamp(fieldHeight)
}
