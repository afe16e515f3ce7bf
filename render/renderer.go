package render

import (
	"image/color"
	"strconv"

	"github.com/lguibr/solopong/game"
)

// Draw paints one frame: background, paddles, net, ball, then both scores.
// It only reads state.
func Draw(s Surface, state game.State, style Style) {
	s.FillRect(0, 0, state.Width, state.Height, style.Background)

	drawPaddle(s, state.Player, style.Paddle)
	drawPaddle(s, state.AI, style.Paddle)

	drawNet(s, state.Width, state.Height, style)

	ball := state.Ball
	s.FillCircle(ball.X, ball.Y, ball.Radius, style.Ball)

	s.DrawText(strconv.Itoa(state.Player.Score), state.Width/4, style.ScoreY, style.ScoreSize, style.Score)
	s.DrawText(strconv.Itoa(state.AI.Score), 3*state.Width/4, style.ScoreY, style.ScoreSize, style.Score)
}

func drawPaddle(s Surface, p game.PaddleState, c color.Color) {
	s.FillRect(p.X, p.Y, p.Width, p.Height, c)
}

func drawNet(s Surface, width, height float64, style Style) {
	if style.NetPeriod <= 0 {
		return
	}
	x := width/2 - style.NetWidth/2
	for y := 0.0; y < height; y += style.NetPeriod {
		s.FillRect(x, y, style.NetWidth, style.NetDash, style.Net)
	}
}
