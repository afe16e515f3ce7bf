package host

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/solopong/bollywood"
	"github.com/lguibr/solopong/game"
	"github.com/lguibr/solopong/render"
	"github.com/lguibr/solopong/utils"
)

const (
	shutdownTimeout = 2 * time.Second
	frameBacklog    = 60 // Frames allowed to queue behind a slow terminal
)

// Terminal plays the match in a tcell screen. Mouse motion arrives on the
// PollEvent goroutine and ticks on the clock goroutine; both go through the
// GameActor mailbox. Drawing happens on the FrameActor.
type Terminal struct {
	Clock game.FrameClock

	screen tcell.Screen
	game   *game.Game
	logger *slog.Logger
}

// NewTerminal expects an initialized screen and leaves Fini to the caller.
func NewTerminal(screen tcell.Screen, g *game.Game, cfg utils.Config, logger *slog.Logger) *Terminal {
	return &Terminal{
		Clock:  game.TickerClock{Period: cfg.TickPeriod},
		screen: screen,
		game:   g,
		logger: logger,
	}
}

// Run blocks until ctx is done or the user presses q, Esc or Ctrl-C.
func (t *Terminal) Run(ctx context.Context) error {
	engine := bollywood.NewEngine(t.logger)
	defer engine.Shutdown(shutdownTimeout)

	surface := render.NewTerminalSurface(t.screen, t.game.Canvas.Width, t.game.Canvas.Height)
	style := render.DefaultStyle()
	draw := func(s game.State, _ game.TickResult) {
		render.Draw(surface, s, style)
		t.screen.Show()
	}

	framePID := engine.Spawn(bollywood.NewProps(game.NewFrameActorProducer(draw, t.logger)).WithMailboxSize(frameBacklog))
	gamePID := engine.Spawn(bollywood.NewProps(game.NewGameActorProducer(engine, t.game, t.Clock, framePID, t.logger)))
	if framePID == nil || gamePID == nil {
		return fmt.Errorf("spawn terminal actors: %w", bollywood.ErrEngineStopping)
	}

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	t.logger.Info("terminal started", "actors", engine.ActorCount())
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventMouse:
				engine.Send(gamePID, game.PointerMoved{
					Event:   render.MouseToPointer(ev),
					Surface: surface.PointerRect(),
				}, nil)

			case *tcell.EventKey:
				if isQuitKey(ev) {
					t.logger.Info("terminal closed by user")
					return nil
				}

			case *tcell.EventResize:
				t.screen.Sync()
			}
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func runTerminal(ctx context.Context, cfg utils.Config, g *game.Game, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.Clear()

	return NewTerminal(screen, g, cfg, logger).Run(ctx)
}
