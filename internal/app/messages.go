// Package app contains the bubbletea model that drives the scrub bar.
package app

// DispatchMsg carries a callback queued by a collaborator goroutine.
// Update runs it on the event thread.
type DispatchMsg struct {
	fn func()
}

// ScrubSettleMsg is sent after the keyboard scrub settle delay.
// The Version field is used to ignore stale timeouts when rapid key presses occur.
type ScrubSettleMsg struct {
	Version int
}
