package game

import (
	"github.com/lguibr/solopong/utils"
)

func (ball *Ball) CollidesTopWall() bool {
	return ball.Y-ball.Radius < 0
}

func (ball *Ball) CollidesBottomWall(height float64) bool {
	return ball.Y+ball.Radius > height
}

// PastLeftWall reports that the ball's leading edge left the field on the player's side.
func (ball *Ball) PastLeftWall() bool {
	return ball.X-ball.Radius < 0
}

// PastRightWall reports that the ball's leading edge left the field on the ai's side.
func (ball *Ball) PastRightWall(width float64) bool {
	return ball.X+ball.Radius > width
}

// CollideWalls bounces the ball off the top and bottom walls without losing
// speed, pinning it to the wall it crossed. Reports whether it bounced.
func (ball *Ball) CollideWalls(height float64) bool {
	bounced := false
	if ball.CollidesTopWall() {
		ball.Y = ball.Radius
		ball.ReflectVelocityY()
		bounced = true
	}
	if ball.CollidesBottomWall(height) {
		ball.Y = height - ball.Radius
		ball.ReflectVelocityY()
		bounced = true
	}
	return bounced
}

// BallInterceptPaddles is an axis-aligned test of the ball's bounding box
// against the paddle rectangle. Touching edges do not count.
func (ball *Ball) BallInterceptPaddles(paddle *Paddle) bool {
	return ball.X+ball.Radius > paddle.X &&
		ball.X-ball.Radius < paddle.X+paddle.Width &&
		ball.Y+ball.Radius > paddle.Y &&
		ball.Y-ball.Radius < paddle.Y+paddle.Height
}

// CollidePaddle pushes the ball out of the paddle's facing edge, sends it back
// the other way and nudges its vertical speed by a value in [-1, 1).
// Vertical speed is never capped, so long rallies can drift it arbitrarily.
func (ball *Ball) CollidePaddle(paddle *Paddle, rng utils.RandomSource) bool {
	if paddle == nil || !ball.BallInterceptPaddles(paddle) {
		return false
	}

	if paddle.Side == SideAI {
		ball.X = paddle.X - ball.Radius
	} else {
		ball.X = paddle.X + paddle.Width + ball.Radius
	}
	ball.ReflectVelocityX()
	ball.Vy += utils.RandomJitter(rng, utils.BallHitJitter)
	return true
}
