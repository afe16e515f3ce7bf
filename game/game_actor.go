// File: game/game_actor.go
package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/lguibr/solopong/bollywood"
)

// GameActor owns a Game and applies ticks and pointer samples to it in
// mailbox order. Every mutation of the match happens inside Receive.
type GameActor struct {
	game        *Game
	clock       FrameClock
	engine      *bollywood.Engine
	framePID    *bollywood.PID // Receives FrameReady after every tick; may be nil
	selfPID     *bollywood.PID
	cancelClock context.CancelFunc
	clockDone   chan struct{}
	logger      *slog.Logger
}

// NewGameActorProducer creates a producer for the GameActor. The clock starts
// when the actor receives Started and stops on Stopping.
func NewGameActorProducer(engine *bollywood.Engine, game *Game, clock FrameClock, framePID *bollywood.PID, logger *slog.Logger) bollywood.Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return func() bollywood.Actor {
		return &GameActor{
			game:     game,
			clock:    clock,
			engine:   engine,
			framePID: framePID,
			logger:   logger.With("match", game.ID),
		}
	}
}

// Receive is the main message handler for the GameActor.
func (a *GameActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("panic recovered in GameActor receive",
				"actor", a.selfPID.String(), "panic", r, "stack", string(debug.Stack()))
		}
	}()

	if a.selfPID == nil {
		a.selfPID = ctx.Self()
		a.logger = a.logger.With("actor", a.selfPID.String())
	}

	switch m := ctx.Message().(type) {
	case bollywood.Started:
		a.logger.Debug("game actor started")
		a.startClock()

	case *GameTick:
		result := a.game.Tick()
		if a.framePID != nil {
			a.engine.Send(a.framePID, FrameReady{State: a.game.State(), Result: result}, a.selfPID)
		}

	case PointerMoved:
		a.game.HandlePointer(m.Event, m.Surface)

	case GetStateRequest:
		ctx.Reply(a.game.State())

	case bollywood.Stopping:
		a.logger.Debug("game actor stopping", "ticks", a.game.Ticks())
		a.stopClock()

	case bollywood.Stopped:
		a.stopClock()

	default:
		a.logger.Warn("game actor received unknown message", "type", fmt.Sprintf("%T", m))
	}
}

func (a *GameActor) startClock() {
	if a.clock == nil || a.cancelClock != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.cancelClock = cancel
	a.clockDone = make(chan struct{})

	engine, self, done, logger := a.engine, a.selfPID, a.clockDone, a.logger
	tickMsg := &GameTick{}
	go func() {
		defer close(done)
		err := a.clock.Run(ctx, func() {
			engine.Send(self, tickMsg, nil)
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("frame clock stopped", "error", err)
		}
	}()
}

func (a *GameActor) stopClock() {
	if a.cancelClock == nil {
		return
	}
	a.cancelClock()
	<-a.clockDone
	a.cancelClock = nil
}
