package game

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/lguibr/solopong/bollywood"
)

// DrawFunc turns a finished tick into pixels, cells or text.
type DrawFunc func(State, TickResult)

// FrameActor draws frames handed over by the GameActor, keeping slow
// surfaces off the simulation goroutine. Frames that arrive out of order
// are skipped.
type FrameActor struct {
	draw    DrawFunc
	stats   FrameStats
	selfPID *bollywood.PID
	logger  *slog.Logger
}

// NewFrameActorProducer creates a producer for FrameActor.
func NewFrameActorProducer(draw DrawFunc, logger *slog.Logger) bollywood.Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return func() bollywood.Actor {
		return &FrameActor{draw: draw, logger: logger}
	}
}

// Receive handles messages for the FrameActor.
func (a *FrameActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("panic recovered in FrameActor receive",
				"actor", a.selfPID.String(), "panic", r, "stack", string(debug.Stack()))
		}
	}()

	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch msg := ctx.Message().(type) {
	case bollywood.Started, bollywood.Stopping, bollywood.Stopped:

	case FrameReady:
		if a.stats.Drawn > 0 && msg.State.Tick <= a.stats.LastTick {
			a.stats.Skipped++
			return
		}
		if a.draw != nil {
			a.draw(msg.State, msg.Result)
		}
		a.stats.Drawn++
		a.stats.LastTick = msg.State.Tick

	case GetFrameStatsRequest:
		ctx.Reply(a.stats)

	default:
		a.logger.Warn("frame actor received unknown message", "type", fmt.Sprintf("%T", msg))
	}
}
