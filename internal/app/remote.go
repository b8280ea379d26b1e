package app

import (
	"time"

	"github.com/llehouerou/scrubber/internal/mpris"
	"github.com/llehouerou/scrubber/internal/scrub"
)

// remote forwards MPRIS commands onto the event thread.
type remote struct {
	dispatch func(func())
	ctrl     *scrub.Controller
	player   scrub.MediaPlayer
	board    *mpris.Board
}

var _ mpris.Remote = (*remote)(nil)

func (r *remote) PlayPause() {
	r.dispatch(r.ctrl.OnToggleTap)
}

func (r *remote) Play() {
	r.dispatch(func() {
		if r.ctrl.State() == scrub.StatePaused {
			r.ctrl.OnToggleTap()
		}
	})
}

func (r *remote) Pause() {
	r.dispatch(func() {
		if r.ctrl.State() == scrub.StatePlaying {
			r.ctrl.OnToggleTap()
		}
	})
}

func (r *remote) SeekTo(pos time.Duration) {
	r.dispatch(func() { r.seek(pos) })
}

func (r *remote) SeekBy(offset time.Duration) {
	r.dispatch(func() { r.seek(r.player.CurrentTime() + offset) })
}

// seek runs a complete scrub session to pos. A session the user holds
// open (drag or keyboard) wins, and the remote seek is dropped.
func (r *remote) seek(pos time.Duration) {
	snap := r.ctrl.Snapshot()
	if !r.ctrl.State().IsReady() || !snap.TotalKnown || snap.TotalTime <= 0 {
		return
	}
	if r.ctrl.Scrubbing() {
		return
	}
	pos = min(max(pos, 0), snap.TotalTime)
	r.ctrl.OnScrubStart()
	r.ctrl.OnScrubUpdate(float64(pos) / float64(snap.TotalTime))
	r.ctrl.OnScrubEnd()
	if r.board != nil {
		r.board.Seeked(pos)
	}
}

func fractionOf(f float64, total time.Duration) time.Duration {
	return time.Duration(f * float64(total))
}
