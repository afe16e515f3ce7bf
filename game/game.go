// File: game/game.go
package game

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/lguibr/solopong/utils"
)

// Game owns the whole match: both paddles, the ball and the scores.
// It is not safe for concurrent use; hosts that tick and read the pointer on
// different goroutines go through GameActor.
type Game struct {
	ID     string
	Canvas *Canvas
	Player *Paddle
	AI     *Paddle
	Ball   *Ball

	cfg    utils.Config
	rng    utils.RandomSource
	ticks  uint64
	logger *slog.Logger
}

// TickResult describes what happened during one tick.
type TickResult struct {
	Tick   uint64
	Hits   []Side // Paddles the ball bounced off, in resolution order
	Wall   bool   // Ball bounced off the top or bottom wall
	Scorer Side   // SideNone unless a point was scored
}

// NewGame builds a match from cfg. The random source decides every serve and
// paddle deflection, so a seeded source replays the same match.
func NewGame(cfg utils.Config, rng utils.RandomSource, logger *slog.Logger) *Game {
	if rng == nil {
		rng = utils.NewRandomSource(cfg.Seed)
	}
	if logger == nil {
		logger = slog.Default()
	}

	id := uuid.NewString()
	canvas := NewCanvas(cfg.FieldWidth, cfg.FieldHeight)

	g := &Game{
		ID:     id,
		Canvas: canvas,
		Player: NewPaddle(canvas, SidePlayer, cfg),
		AI:     NewPaddle(canvas, SideAI, cfg),
		Ball:   NewBall(canvas, cfg, rng),
		cfg:    cfg,
		rng:    rng,
		logger: logger.With("match", id),
	}
	g.logger.Debug("match created",
		"width", canvas.Width, "height", canvas.Height,
		"vx", g.Ball.Vx, "vy", g.Ball.Vy)
	return g
}

// Tick advances the simulation by exactly one step.
func (g *Game) Tick() TickResult {
	g.ticks++
	result := TickResult{Tick: g.ticks}

	ball := g.Ball
	ball.Move()

	result.Wall = ball.CollideWalls(g.Canvas.Height)

	if ball.CollidePaddle(g.Player, g.rng) {
		result.Hits = append(result.Hits, SidePlayer)
	}
	if ball.CollidePaddle(g.AI, g.rng) {
		result.Hits = append(result.Hits, SideAI)
	}

	if ball.PastLeftWall() {
		g.score(g.AI, &result)
	}
	if ball.PastRightWall(g.Canvas.Width) {
		g.score(g.Player, &result)
	}

	g.AI.Track(ball.Y, g.cfg.AIPaddleSpeed, g.cfg.AIDeadZone, g.Canvas.Height)

	return result
}

func (g *Game) score(scorer *Paddle, result *TickResult) {
	scorer.Score++
	result.Scorer = scorer.Side
	g.Ball.Reset(g.Canvas, g.rng)
	g.logger.Info("point scored",
		"scorer", scorer.Side.String(),
		"player", g.Player.Score,
		"ai", g.AI.Score,
		"tick", g.ticks)
}

// MovePointer centers the player paddle on a pointer at surface height y.
func (g *Game) MovePointer(y float64) {
	g.Player.CenterOn(y, g.Canvas.Height)
}

// Ticks reports how many ticks have run.
func (g *Game) Ticks() uint64 {
	return g.ticks
}
