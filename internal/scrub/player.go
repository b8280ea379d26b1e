package scrub

import "time"

// Status is the load status reported by a MediaPlayer.
type Status int

const (
	StatusUnknown Status = iota
	StatusReady
	StatusFailed
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusUnknown:
		return "Unknown"
	case StatusReady:
		return "Ready"
	case StatusFailed:
		return "Failed"
	default:
		return "Invalid"
	}
}

// StatusUpdate is delivered on the status feed.
type StatusUpdate struct {
	Status    Status
	TotalTime time.Duration // set when Status is StatusReady
	Err       error         // set when Status is StatusFailed
}

// Unsubscribe cancels a subscription. Calling it more than once is safe.
type Unsubscribe func()

// MediaPlayer is the playback engine the controller drives.
// Commands are fire-and-forget; feeds may call back from any goroutine.
type MediaPlayer interface {
	Play()
	Pause()
	Seek(to time.Duration)
	CurrentTime() time.Duration
	Duration() time.Duration

	SubscribePeriodicTime(interval time.Duration, fn func(time.Duration)) Unsubscribe
	SubscribeStatus(fn func(StatusUpdate)) Unsubscribe
	// SubscribeEnded fires when media plays to its natural end.
	SubscribeEnded(fn func()) Unsubscribe
}

// PresentationSurface receives display updates from the controller.
type PresentationSurface interface {
	SetCurrentTimeLabel(text string)
	SetTotalTimeLabel(text string)
	SetSliderFraction(f float64)
	SetLoadingVisible(visible bool)
	SetControlsVisible(visible bool)
	SetPlaying(playing bool)
}
