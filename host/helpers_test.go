package host

import (
	"io"
	"log/slog"

	"github.com/lguibr/solopong/game"
	"github.com/lguibr/solopong/utils"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestGame serves the first ball right and down from a fixed script.
func newTestGame() *game.Game {
	return game.NewGame(utils.DefaultConfig(), utils.NewSequenceSource(0.75), discardLogger())
}
