package host

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/lguibr/asciiring/helpers"
	"github.com/lguibr/solopong/game"
	"github.com/lguibr/solopong/render"
	"github.com/lguibr/solopong/utils"
)

const asciiColumns = 100

// ASCII streams frames as colored ASCII art. It has no pointer, so the
// player paddle holds its starting position.
type ASCII struct {
	Clock   game.FrameClock
	Columns int

	out    io.Writer
	clear  func()
	game   *game.Game
	logger *slog.Logger
}

func NewASCII(out io.Writer, g *game.Game, cfg utils.Config, logger *slog.Logger) *ASCII {
	return &ASCII{
		Clock:   game.TickerClock{Period: cfg.TickPeriod},
		Columns: asciiColumns,
		out:     out,
		clear:   func() { helpers.ClearScreen() },
		game:    g,
		logger:  logger,
	}
}

// Run ticks on the clock goroutine and writes one frame per tick until ctx
// is done.
func (a *ASCII) Run(ctx context.Context) error {
	surface := render.NewRasterSurface(int(a.game.Canvas.Width), int(a.game.Canvas.Height))
	style := render.DefaultStyle()

	var writeErr error
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	err := game.RunLoop(ctx, a.Clock, a.game, func(s game.State, r game.TickResult) {
		render.Draw(surface, s, style)
		a.clear()
		_, err := fmt.Fprintf(a.out, "%s%d : %d\n", render.RenderToASCII(surface.Image(), a.Columns), s.Player.Score, s.AI.Score)
		if err != nil && writeErr == nil {
			writeErr = fmt.Errorf("write frame: %w", err)
			cancel()
		}
		if r.Scorer != game.SideNone {
			a.logger.Debug("frame with point", "tick", s.Tick, "scorer", r.Scorer.String())
		}
	})
	if writeErr != nil {
		return writeErr
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
