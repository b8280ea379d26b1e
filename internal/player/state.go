// internal/player/state.go
package player

// State represents the engine state machine.
//
//	Stopped ──load──▶ Loading ──decoded──▶ Paused ◀──pause/play──▶ Playing
//	                     │                    ▲                       │
//	                     │ error              │ seek                  │ end of stream
//	                     ▼                    │                       ▼
//	                  Stopped               Ended ◀───────────────────┘
//
// Play from Ended re-queues the stream on the speaker at the current position.
type State int

const (
	Stopped State = iota
	Loading
	Playing
	Paused
	Ended
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Loading:
		return "Loading"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case Ended:
		return "Ended"
	default:
		return "Unknown"
	}
}

// HasMedia returns true if a decoded stream is attached.
func (s State) HasMedia() bool {
	return s == Playing || s == Paused || s == Ended
}

// CanPause returns true if the state allows pausing.
func (s State) CanPause() bool {
	return s == Playing
}

// CanPlay returns true if the state allows starting playback.
func (s State) CanPlay() bool {
	return s == Paused || s == Ended
}
