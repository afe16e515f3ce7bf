package host

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lguibr/solopong/game"
	"github.com/lguibr/solopong/render"
	"github.com/lguibr/solopong/utils"
)

// Window is an ebiten.Game. Ebiten calls Update and Draw on one goroutine,
// so the pointer is sampled inside Update and no actor is needed.
type Window struct {
	ctx     context.Context
	game    *game.Game
	surface *render.EbitenSurface
	style   render.Style
	logger  *slog.Logger

	cursor  func() (int, int)
	quit    func() bool
	primed  bool
	cursorX int
	cursorY int
}

func NewWindow(ctx context.Context, g *game.Game, logger *slog.Logger) (*Window, error) {
	surface, err := render.NewEbitenSurface()
	if err != nil {
		return nil, err
	}
	return &Window{
		ctx:     ctx,
		game:    g,
		surface: surface,
		style:   render.DefaultStyle(),
		logger:  logger,
		cursor:  ebiten.CursorPosition,
		quit: func() bool {
			return ebiten.IsKeyPressed(ebiten.KeyEscape)
		},
	}, nil
}

// Update applies the pointer only when it moved, then runs one tick.
func (w *Window) Update() error {
	if w.ctx.Err() != nil || w.quit() {
		return ebiten.Termination
	}

	x, y := w.cursor()
	if w.primed && (x != w.cursorX || y != w.cursorY) {
		w.game.HandlePointer(game.PointerEvent{ClientX: float64(x), ClientY: float64(y)}, game.SurfaceRect{})
	}
	w.cursorX, w.cursorY, w.primed = x, y, true

	w.game.Tick()
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	w.surface.SetTarget(screen)
	render.Draw(w.surface, w.game.State(), w.style)
}

// Layout keeps the logical screen at field size, so cursor positions are
// already in field units whatever the window scale.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(w.game.Canvas.Width), int(w.game.Canvas.Height)
}

// ticksPerSecond converts the tick period into ebiten's TPS.
func ticksPerSecond(period time.Duration) int {
	if period <= 0 {
		return ebiten.DefaultTPS
	}
	return int(math.Max(1, math.Round(float64(time.Second)/float64(period))))
}

func runWindow(ctx context.Context, cfg utils.Config, g *game.Game, logger *slog.Logger) error {
	w, err := NewWindow(ctx, g, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(
		int(g.Canvas.Width*cfg.WindowScale),
		int(g.Canvas.Height*cfg.WindowScale),
	)
	ebiten.SetWindowTitle(cfg.WindowTitle)
	ebiten.SetTPS(ticksPerSecond(cfg.TickPeriod))

	logger.Info("window started", "tps", ebiten.TPS())
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	logger.Info("window closed", "ticks", g.Ticks())
	return nil
}
