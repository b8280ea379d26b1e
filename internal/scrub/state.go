// internal/scrub/state.go
package scrub

// State represents the controller's playback state.
//
//	┌──────┐  open  ┌─────────┐  ready  ┌────────┐  tap  ┌─────────┐
//	│ Idle │───────▶│ Loading │────────▶│ Paused │◀─────▶│ Playing │
//	└──────┘        └─────────┘         └────────┘       └─────────┘
//	                     │                 ▲  │  scrub      ▲  │
//	                     │ failed          │  ▼             │  ▼
//	                     ▼              ┌───────────────────────┐
//	                ┌────────┐          │        Seeking        │
//	                │ Failed │          └───────────────────────┘
//	                └────────┘
//
// Any non-terminal state may move to Failed. Nothing leaves Failed.
type State int

const (
	StateIdle State = iota
	StateLoading
	StatePlaying
	StatePaused
	StateSeeking
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateLoading:
		return "Loading"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateSeeking:
		return "Seeking"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// IsReady returns true once media metadata has loaded and the controls are live.
func (s State) IsReady() bool {
	return s == StatePlaying || s == StatePaused || s == StateSeeking
}

// IsTerminal returns true if no further transitions are possible.
func (s State) IsTerminal() bool {
	return s == StateFailed
}
