package game

import (
	"context"
	"sync"
	"time"
)

// FrameClock calls tick at a cadence chosen by the host until ctx is done.
type FrameClock interface {
	Run(ctx context.Context, tick func()) error
}

// TickerClock ticks on a time.Ticker.
type TickerClock struct {
	Period time.Duration
}

func (c TickerClock) Run(ctx context.Context, tick func()) error {
	ticker := time.NewTicker(c.Period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			tick()
		}
	}
}

// ManualClock only ticks when Step is called, so tests decide exactly how
// many frames run.
type ManualClock struct {
	mu    sync.Mutex
	tick  func()
	ready chan struct{}
	once  sync.Once
}

func NewManualClock() *ManualClock {
	return &ManualClock{ready: make(chan struct{})}
}

func (c *ManualClock) Run(ctx context.Context, tick func()) error {
	c.mu.Lock()
	c.tick = tick
	c.mu.Unlock()
	c.once.Do(func() { close(c.ready) })

	<-ctx.Done()

	c.mu.Lock()
	c.tick = nil
	c.mu.Unlock()
	return ctx.Err()
}

// Step fires n ticks. It waits up to timeout for Run to be attached and
// reports whether the ticks were delivered.
func (c *ManualClock) Step(n int, timeout time.Duration) bool {
	select {
	case <-c.ready:
	case <-time.After(timeout):
		return false
	}

	c.mu.Lock()
	tick := c.tick
	c.mu.Unlock()
	if tick == nil {
		return false
	}
	for i := 0; i < n; i++ {
		tick()
	}
	return true
}

// RunLoop drives g from clock on the clock's own goroutine: one tick, then
// one frame callback, forever. Use it when pointer input arrives on the same
// goroutine; otherwise use GameActor.
func RunLoop(ctx context.Context, clock FrameClock, g *Game, onFrame func(State, TickResult)) error {
	return clock.Run(ctx, func() {
		result := g.Tick()
		if onFrame != nil {
			onFrame(g.State(), result)
		}
	})
}
