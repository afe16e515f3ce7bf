// Package bollywood is a small actor engine: every actor owns its state and
// processes the messages of its mailbox one at a time on its own goroutine.
package bollywood

// Actor is the interface that defines actor behavior.
// Actors process messages sequentially received from their mailbox.
type Actor interface {
	// Receive processes incoming messages. The actor can use the context
	// to interact with the system (self PID, sender PID, replies).
	Receive(ctx Context)
}
