package game

import (
	"testing"

	"github.com/lguibr/solopong/utils"
	"github.com/stretchr/testify/assert"
)

func TestBall_BallInterceptPaddles(t *testing.T) {
	paddle := &Paddle{X: 100, Y: 100, Width: 12, Height: 90}

	testCases := []struct {
		name       string
		x, y       float64
		intercepts bool
	}{
		{"CenterInside", 106, 145, true},
		{"OverlapLeftEdge", 95, 145, true},
		{"TouchingLeftEdge", 90, 145, false},
		{"OverlapRightEdge", 120, 145, true},
		{"TouchingRightEdge", 122, 145, false},
		{"OverlapTopEdge", 106, 95, true},
		{"TouchingTopEdge", 106, 90, false},
		{"OverlapBottomEdge", 106, 195, true},
		{"TouchingBottomEdge", 106, 200, false},
		{"CornerBoxOverlap", 92, 92, true},
		{"FarAway", 400, 250, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ball := &Ball{X: tc.x, Y: tc.y, Radius: 10}
			assert.Equal(t, tc.intercepts, ball.BallInterceptPaddles(paddle))
		})
	}
}

func TestBall_CollideWalls(t *testing.T) {
	testCases := []struct {
		name       string
		y, vy      float64
		expectedY  float64
		expectedVy float64
		bounced    bool
	}{
		{"Top", 7, -5, 10, 5, true},
		{"Bottom", 493, 5, 490, -5, true},
		{"FarPastTop", -40, -50, 10, 50, true},
		{"FarPastBottom", 560, 50, 490, -50, true},
		{"TouchingTop", 10, -5, 10, -5, false},
		{"Middle", 250, 3, 250, 3, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ball := &Ball{X: 400, Y: tc.y, Radius: 10, Vy: tc.vy}
			assert.Equal(t, tc.bounced, ball.CollideWalls(500))
			assert.Equal(t, tc.expectedY, ball.Y)
			assert.Equal(t, tc.expectedVy, ball.Vy)
		})
	}
}

func TestBall_CollidePaddle(t *testing.T) {
	player := &Paddle{X: 18, Y: 205, Width: 12, Height: 90, Side: SidePlayer}
	ai := &Paddle{X: 770, Y: 205, Width: 12, Height: 90, Side: SideAI}

	testCases := []struct {
		name       string
		paddle     *Paddle
		x, vx      float64
		draw       float64
		expectedX  float64
		expectedVx float64
		expectedVy float64
	}{
		{"PlayerFromRight", player, 39, -6, 0.5, 40, 6, 1},
		{"PlayerFromLeft", player, 23, 3, 0.75, 40, -3, 1.5},
		{"PlayerJitterLow", player, 35, -6, 0, 40, 6, 0},
		{"AIFromLeft", ai, 761, 6, 0.5, 760, -6, 1},
		{"AIJitterHigh", ai, 765, 8.5, 0.9, 760, -8.5, 1.8},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ball := &Ball{X: tc.x, Y: 250, Radius: 10, Vx: tc.vx, Vy: 1}
			hit := ball.CollidePaddle(tc.paddle, utils.NewSequenceSource(tc.draw))
			assert.True(t, hit)
			assert.Equal(t, tc.expectedX, ball.X)
			assert.Equal(t, tc.expectedVx, ball.Vx)
			assert.InDelta(t, tc.expectedVy, ball.Vy, 1e-9)
		})
	}
}

func TestBall_CollidePaddleMiss(t *testing.T) {
	rng := utils.NewSequenceSource(0.3)
	ball := &Ball{X: 400, Y: 250, Radius: 10, Vx: 6, Vy: 2}

	assert.False(t, ball.CollidePaddle(&Paddle{X: 18, Y: 205, Width: 12, Height: 90}, rng))
	assert.False(t, ball.CollidePaddle(nil, rng))
	assert.Equal(t, 400.0, ball.X)
	assert.Equal(t, 6.0, ball.Vx)
	assert.Equal(t, 2.0, ball.Vy)
	assert.Equal(t, 0, rng.Drawn(), "a miss must not consume randomness")
}

func TestBall_PastWalls(t *testing.T) {
	assert.True(t, (&Ball{X: 9, Radius: 10}).PastLeftWall())
	assert.False(t, (&Ball{X: 10, Radius: 10}).PastLeftWall())
	assert.True(t, (&Ball{X: 791, Radius: 10}).PastRightWall(800))
	assert.False(t, (&Ball{X: 790, Radius: 10}).PastRightWall(800))
}
