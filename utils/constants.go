package utils

import "time"

const (
	Period = time.Second / 60 // One frame at a 60Hz display refresh

	FieldWidth  = 800
	FieldHeight = 500

	PaddleWidth  = 12
	PaddleHeight = 90
	PaddleMargin = 18

	BallRadius                = 10
	BallSpeed                 = 6
	BallInitialVerticalSpeed  = 4
	BallResetMinVerticalSpeed = 2 // Reset |vy| is drawn from [2, 6)
	BallResetVerticalSpread   = 4
	BallHitJitter             = 2 // Paddle hits add a value in [-1, 1) to vy

	AIPaddleSpeed = 5
	AIDeadZone    = 10
)

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
	FrontendASCII    = "ascii"
)
