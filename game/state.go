package game

// PaddleState is a read-only copy of a paddle.
type PaddleState struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Score  int     `json:"score"`
}

// BallState is a read-only copy of the ball.
type BallState struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
	Vx     float64 `json:"vx"`
	Vy     float64 `json:"vy"`
}

// State is everything a renderer needs for one frame. It shares no memory
// with the Game it was taken from.
type State struct {
	MatchID string      `json:"matchId"`
	Tick    uint64      `json:"tick"`
	Width   float64     `json:"width"`
	Height  float64     `json:"height"`
	Player  PaddleState `json:"player"`
	AI      PaddleState `json:"ai"`
	Ball    BallState   `json:"ball"`
}

func (p *Paddle) State() PaddleState {
	return PaddleState{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height, Score: p.Score}
}

func (b *Ball) State() BallState {
	return BallState{X: b.X, Y: b.Y, Radius: b.Radius, Vx: b.Vx, Vy: b.Vy}
}

// State snapshots the match.
func (g *Game) State() State {
	return State{
		MatchID: g.ID,
		Tick:    g.ticks,
		Width:   g.Canvas.Width,
		Height:  g.Canvas.Height,
		Player:  g.Player.State(),
		AI:      g.AI.State(),
		Ball:    g.Ball.State(),
	}
}
