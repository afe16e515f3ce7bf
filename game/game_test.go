package game

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/lguibr/solopong/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	g, rng := newTestGame(0.75)

	_, err := uuid.Parse(g.ID)
	require.NoError(t, err, "match id should be a uuid")

	assert.Equal(t, 800.0, g.Canvas.Width)
	assert.Equal(t, 500.0, g.Canvas.Height)
	assert.Equal(t, 18.0, g.Player.X)
	assert.Equal(t, 205.0, g.Player.Y)
	assert.Equal(t, 770.0, g.AI.X)
	assert.Equal(t, 205.0, g.AI.Y)
	assert.Equal(t, 0, g.Player.Score)
	assert.Equal(t, 0, g.AI.Score)

	assert.Equal(t, 400.0, g.Ball.X)
	assert.Equal(t, 250.0, g.Ball.Y)
	assert.Equal(t, 6.0, g.Ball.Vx)
	assert.Equal(t, 4.0, g.Ball.Vy)
	assert.Equal(t, 2, rng.Drawn(), "the first serve draws two signs")
	assert.Equal(t, uint64(0), g.Ticks())
}

func TestGame_TickCounter(t *testing.T) {
	g, _ := newTestGame()
	for i := uint64(1); i <= 3; i++ {
		result := g.Tick()
		assert.Equal(t, i, result.Tick)
		assert.Equal(t, i, g.Ticks())
		assert.Equal(t, i, g.State().Tick)
	}
}

func TestGame_TickPlayerPaddleReflection(t *testing.T) {
	g, _ := newTestGame(0.75)
	placeBall(g, 45, 250, -6, 0)

	result := g.Tick()

	assert.Equal(t, []Side{SidePlayer}, result.Hits)
	assert.Equal(t, 40.0, g.Ball.X, "ball is pushed to the paddle's right face plus its radius")
	assert.Equal(t, 6.0, g.Ball.Vx)
	assert.Equal(t, 0.5, g.Ball.Vy)
	assert.Equal(t, SideNone, result.Scorer)
}

func TestGame_TickAIPaddleReflection(t *testing.T) {
	g, _ := newTestGame(0.5)
	placeBall(g, 755, 250, 6, 0)

	result := g.Tick()

	assert.Equal(t, []Side{SideAI}, result.Hits)
	assert.Equal(t, 760.0, g.Ball.X)
	assert.Equal(t, -6.0, g.Ball.Vx)
	assert.Equal(t, 0.0, g.Ball.Vy)
}

func TestGame_TickBothPaddlesInOneTick(t *testing.T) {
	cfg := utils.DefaultConfig()
	cfg.FieldWidth = 60
	cfg.PaddleMargin = 0
	cfg.BallRadius = 20

	g := NewGame(cfg, utils.NewSequenceSource(0.75), discardLogger())
	placeBall(g, 29, 250, 1, 0)

	result := g.Tick()

	assert.Equal(t, []Side{SidePlayer, SideAI}, result.Hits)
	assert.Equal(t, 28.0, g.Ball.X)
	assert.Equal(t, 1.0, g.Ball.Vx, "two reflections cancel out")
	assert.Equal(t, 1.0, g.Ball.Vy)
	assert.Equal(t, SideNone, result.Scorer)
}

func TestGame_TickWalls(t *testing.T) {
	testCases := []struct {
		name       string
		y, vy      float64
		expectedY  float64
		expectedVy float64
	}{
		{"Top", 12, -5, 10, 5},
		{"Bottom", 488, 5, 490, -5},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newTestGame()
			placeBall(g, 400, tc.y, 1, tc.vy)

			result := g.Tick()

			assert.True(t, result.Wall)
			assert.Equal(t, tc.expectedY, g.Ball.Y)
			assert.Equal(t, tc.expectedVy, g.Ball.Vy)
		})
	}
}

func TestGame_LeftEdgeScoring(t *testing.T) {
	g, _ := newTestGame()
	g.Player.Y = 0
	placeBall(g, 5, 250, -6, 0)
	g.rng = utils.NewSequenceSource(0.9, 0.25, 0.1)

	result := g.Tick()

	assert.Equal(t, SideAI, result.Scorer)
	assert.Equal(t, 1, g.AI.Score)
	assert.Equal(t, 0, g.Player.Score)
	assert.Equal(t, 400.0, g.Ball.X)
	assert.Equal(t, 250.0, g.Ball.Y)
	assert.Equal(t, 6.0, g.Ball.Vx)
	assert.Equal(t, -3.0, g.Ball.Vy)
}

func TestGame_RightEdgeScoring(t *testing.T) {
	g, _ := newTestGame()
	placeBall(g, 795, 100, 6, 0)
	g.rng = utils.NewSequenceSource(0.2, 0.5, 0.8)

	result := g.Tick()

	assert.Equal(t, SidePlayer, result.Scorer)
	assert.Equal(t, 1, g.Player.Score)
	assert.Equal(t, 0, g.AI.Score)
	assert.Equal(t, 400.0, g.Ball.X)
	assert.Equal(t, 250.0, g.Ball.Y)
	assert.Equal(t, -6.0, g.Ball.Vx)
	assert.Equal(t, 4.0, g.Ball.Vy)
}

func TestGame_AIDeadZone(t *testing.T) {
	testCases := []struct {
		name      string
		ballY     float64
		expectedY float64
	}{
		{"InsideBelow", 255, 205},
		{"InsideAbove", 245, 205},
		{"BoundaryBelow", 260, 205},
		{"BoundaryAbove", 240, 205},
		{"OutsideBelow", 261, 210},
		{"OutsideAbove", 239, 200},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newTestGame()
			placeBall(g, 400, tc.ballY, 0, 0)

			g.Tick()

			assert.Equal(t, tc.expectedY, g.AI.Y)
		})
	}
}

func TestGame_Pointer(t *testing.T) {
	g, _ := newTestGame()

	g.HandlePointer(PointerEvent{ClientX: 300, ClientY: 137}, SurfaceRect{Left: 12, Top: 37})
	assert.Equal(t, 55.0, g.Player.Y)

	g.Tick()
	assert.Equal(t, 55.0, g.Player.Y, "ticks never move the player paddle")

	g.MovePointer(-300)
	assert.Equal(t, 0.0, g.Player.Y)
	g.MovePointer(10000)
	assert.Equal(t, 410.0, g.Player.Y)
}

func TestPointerToSurface(t *testing.T) {
	x, y := PointerToSurface(PointerEvent{ClientX: 110, ClientY: 70}, SurfaceRect{Left: 10, Top: 20})
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 50.0, y)

	x, y = PointerToSurface(PointerEvent{ClientX: 110, ClientY: 70}, SurfaceRect{Left: 10, Top: 20, ScaleX: 2, ScaleY: 0.5})
	assert.Equal(t, 200.0, x)
	assert.Equal(t, 25.0, y)
}

func TestGame_VerticalSpeedIsNotCapped(t *testing.T) {
	g, _ := newTestGame()
	g.rng = utils.NewSequenceSource(0.95)
	g.Ball.Vy = 0

	for i := 0; i < 10; i++ {
		placeBall(g, 45, 250, -6, g.Ball.Vy)
		result := g.Tick()
		require.Equal(t, []Side{SidePlayer}, result.Hits, "hit %d", i)
	}

	assert.InDelta(t, 9.0, g.Ball.Vy, 1e-9)
	assert.Greater(t, g.Ball.Vy, 6.0)
}

// TestGame_Invariants runs a long seeded match with an erratic pointer and
// checks the field invariants after every tick.
func TestGame_Invariants(t *testing.T) {
	g := NewGame(utils.DefaultConfig(), utils.NewRandomSource(42), discardLogger())
	pointer := utils.NewRandomSource(7)

	radius := g.Ball.Radius
	maxPaddleY := g.Canvas.Height - g.Player.Height
	points := 0

	for i := 0; i < 20000; i++ {
		g.MovePointer(pointer.Float64()*900 - 200)
		prevPlayer, prevAI := g.Player.Score, g.AI.Score

		result := g.Tick()

		require.GreaterOrEqual(t, g.Player.Y, 0.0)
		require.LessOrEqual(t, g.Player.Y, maxPaddleY)
		require.GreaterOrEqual(t, g.AI.Y, 0.0)
		require.LessOrEqual(t, g.AI.Y, maxPaddleY)

		require.GreaterOrEqual(t, g.Ball.Y, radius)
		require.LessOrEqual(t, g.Ball.Y, g.Canvas.Height-radius)
		require.Equal(t, radius, g.Ball.Radius)
		require.Equal(t, 90.0, g.Player.Height)
		require.Equal(t, 12.0, g.AI.Width)

		switch result.Scorer {
		case SideNone:
			require.Equal(t, prevPlayer, g.Player.Score)
			require.Equal(t, prevAI, g.AI.Score)
		case SidePlayer:
			require.Equal(t, prevPlayer+1, g.Player.Score)
			require.Equal(t, prevAI, g.AI.Score)
		case SideAI:
			require.Equal(t, prevPlayer, g.Player.Score)
			require.Equal(t, prevAI+1, g.AI.Score)
		}
		if result.Scorer != SideNone {
			points++
			require.Equal(t, 400.0, g.Ball.X)
			require.Equal(t, 250.0, g.Ball.Y)
			require.Equal(t, 6.0, math.Abs(g.Ball.Vx))
			require.GreaterOrEqual(t, math.Abs(g.Ball.Vy), 2.0)
			require.Less(t, math.Abs(g.Ball.Vy), 6.0)
		}
	}

	assert.Greater(t, points, 0, "a random pointer should concede at least once")
	assert.Equal(t, points, g.Player.Score+g.AI.Score)
}

func TestGame_SeedReplaysMatch(t *testing.T) {
	cfg := utils.DefaultConfig()
	a := NewGame(cfg, utils.NewRandomSource(99), discardLogger())
	b := NewGame(cfg, utils.NewRandomSource(99), discardLogger())

	for i := 0; i < 3000; i++ {
		a.Tick()
		b.Tick()
	}

	sa, sb := a.State(), b.State()
	assert.NotEqual(t, sa.MatchID, sb.MatchID)
	sa.MatchID, sb.MatchID = "", ""
	assert.Equal(t, sa, sb)
}

func TestGame_StateIsACopy(t *testing.T) {
	g, _ := newTestGame()
	s := g.State()

	s.Player.Y = 1
	s.Ball.X = 1

	assert.Equal(t, 205.0, g.Player.Y)
	assert.Equal(t, 400.0, g.Ball.X)
	assert.Equal(t, g.ID, s.MatchID)
	assert.Equal(t, 800.0, s.Width)
	assert.Equal(t, 500.0, s.Height)
}
