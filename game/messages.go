// File: game/messages.go
package game

// --- GameActor Messages ---

// GameTick signals the GameActor to advance the simulation one step.
type GameTick struct{}

// PointerMoved carries a pointer sample from the host's input goroutine.
type PointerMoved struct {
	Event   PointerEvent
	Surface SurfaceRect
}

// GetStateRequest asks the GameActor for a State snapshot (used via Ask).
type GetStateRequest struct{}

// --- FrameActor Messages ---

// FrameReady hands a finished tick to the FrameActor for drawing.
type FrameReady struct {
	State  State
	Result TickResult
}

// GetFrameStatsRequest asks the FrameActor how many frames it drew (used via Ask).
type GetFrameStatsRequest struct{}

// FrameStats is the reply to GetFrameStatsRequest.
type FrameStats struct {
	Drawn    uint64
	Skipped  uint64
	LastTick uint64
}
