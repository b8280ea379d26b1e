// Package mpris exposes playback over the MPRIS2 D-Bus interface.
package mpris

import (
	"sync"
	"time"

	"github.com/llehouerou/scrubber/internal/scrub"
)

// Status is the playback snapshot MPRIS clients can read.
type Status struct {
	State    scrub.State
	Position time.Duration
	Duration time.Duration
	MediaID  string
	Title    string
	Artist   string
	Album    string
	ArtURL   string
}

// Change flags what differs between two published statuses.
type Change uint8

const (
	ChangePlayback Change = 1 << iota // State moved between playing and not
	ChangeTrack                       // media or its metadata changed
	ChangeSeek                        // position jumped
)

// Remote receives commands from MPRIS clients. Calls arrive on D-Bus
// goroutines; implementations hand them to the event thread.
type Remote interface {
	PlayPause()
	Play()
	Pause()
	SeekTo(pos time.Duration)
	SeekBy(offset time.Duration)
}

// Board holds the last published status for D-Bus readers.
// The app publishes from its event thread; the MPRIS server reads
// from its own goroutines.
type Board struct {
	mu       sync.RWMutex
	status   Status
	watchers []func(Change, Status)
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Status returns the last published status.
func (b *Board) Status() Status {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.status
}

// Watch registers fn to be told about every change. fn runs on the
// publishing goroutine and must not block.
func (b *Board) Watch(fn func(Change, Status)) {
	b.mu.Lock()
	b.watchers = append(b.watchers, fn)
	b.mu.Unlock()
}

// Publish replaces the status and notifies watchers if anything a client
// would be told about changed.
func (b *Board) Publish(s Status) Change {
	b.mu.Lock()
	prev := b.status
	b.status = s
	watchers := b.watchers
	b.mu.Unlock()

	var c Change
	if isPlaying(prev.State) != isPlaying(s.State) || prev.State.IsTerminal() != s.State.IsTerminal() {
		c |= ChangePlayback
	}
	if prev.MediaID != s.MediaID || prev.Title != s.Title || prev.Duration != s.Duration ||
		prev.Artist != s.Artist || prev.Album != s.Album || prev.ArtURL != s.ArtURL {
		c |= ChangeTrack
	}
	b.notify(watchers, c, s)
	return c
}

// Seeked reports a position jump so clients resync their clocks.
func (b *Board) Seeked(pos time.Duration) {
	b.mu.Lock()
	b.status.Position = pos
	s := b.status
	watchers := b.watchers
	b.mu.Unlock()
	b.notify(watchers, ChangeSeek, s)
}

func (b *Board) notify(watchers []func(Change, Status), c Change, s Status) {
	if c == 0 {
		return
	}
	for _, fn := range watchers {
		fn(c, s)
	}
}

func isPlaying(s scrub.State) bool {
	return s == scrub.StatePlaying
}
