// Package host wires a game.Game to a concrete frontend.
package host

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/lguibr/solopong/game"
	"github.com/lguibr/solopong/utils"
)

// Run builds a match from cfg and plays it on cfg.Frontend until ctx is
// done or the frontend is closed.
func Run(ctx context.Context, cfg utils.Config, logger *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	g := game.NewGame(cfg, utils.NewRandomSource(cfg.Seed), logger)
	logger.Info("starting match", "match", g.ID, "frontend", cfg.Frontend, "seed", cfg.Seed)

	switch cfg.Frontend {
	case utils.FrontendWindow:
		return runWindow(ctx, cfg, g, logger)
	case utils.FrontendTerminal:
		return runTerminal(ctx, cfg, g, logger)
	case utils.FrontendASCII:
		return NewASCII(os.Stdout, g, cfg, logger).Run(ctx)
	}
	return fmt.Errorf("%w: unknown frontend %q", utils.ErrInvalidConfig, cfg.Frontend)
}
