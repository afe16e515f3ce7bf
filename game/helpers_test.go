// File: game/helpers_test.go
package game

import (
	"io"
	"log/slog"

	"github.com/lguibr/solopong/utils"
)

// newTestGame builds a game on the default field with a scripted random
// source. Values cycle, so a short script is enough for long runs.
func newTestGame(draws ...float64) (*Game, *utils.SequenceSource) {
	if len(draws) == 0 {
		draws = []float64{0.75}
	}
	rng := utils.NewSequenceSource(draws...)
	return NewGame(utils.DefaultConfig(), rng, discardLogger()), rng
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// placeBall parks the ball at (x, y) with the given velocity.
func placeBall(g *Game, x, y, vx, vy float64) {
	g.Ball.X, g.Ball.Y = x, y
	g.Ball.Vx, g.Ball.Vy = vx, vy
}
