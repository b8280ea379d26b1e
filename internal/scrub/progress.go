package scrub

import (
	"fmt"
	"math"
	"time"
)

// ProgressSnapshot is the position the controller last accepted for display.
type ProgressSnapshot struct {
	CurrentTime time.Duration
	TotalTime   time.Duration
	// TotalKnown stays false until the player reports ready.
	TotalKnown bool
}

// Fraction returns CurrentTime/TotalTime clamped to [0,1].
// Returns 0 when the total is unknown or zero.
func (p ProgressSnapshot) Fraction() float64 {
	if !p.TotalKnown || p.TotalTime <= 0 {
		return 0
	}
	return clampFraction(float64(p.CurrentTime) / float64(p.TotalTime))
}

// AtEnd reports whether pos is exactly the total duration.
func (p ProgressSnapshot) AtEnd(pos time.Duration) bool {
	return p.TotalKnown && pos == p.TotalTime
}

// ScrubSession lives from drag-start to drag-end.
type ScrubSession struct {
	WasPlayingBeforeScrub bool
}

// Source identifies the media being played.
type Source struct {
	ID  string
	URL string
}

// FormatClock renders d as MM:SS using whole seconds.
// Minutes are not wrapped at 60.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func clampFraction(f float64) float64 {
	switch {
	case math.IsNaN(f), f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
