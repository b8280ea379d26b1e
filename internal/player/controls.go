package player

import (
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// Play starts or resumes playback. From Ended it re-queues the stream
// at its current position.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.state.CanPlay() || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	if !p.queued {
		speaker.Play(beep.Seq(p.volume, beep.Callback(p.handleEnd)))
		p.queued = true
	}
	p.state = Playing
}

// Pause pauses playback.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.state.CanPause() || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

// CurrentTime returns the playback position.
func (p *Player) CurrentTime() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.streamer.Position()
	speaker.Unlock()
	return p.format.SampleRate.D(pos)
}

// Duration returns the length of the loaded media, or 0.
func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Len())
}

// Seek moves to an absolute position. While playing, the request is
// handed to the seek loop and only the most recent one is kept. Otherwise
// it is applied before Seek returns, so a following Play starts from to.
func (p *Player) Seek(to time.Duration) {
	p.mu.Lock()
	if !p.state.HasMedia() {
		p.mu.Unlock()
		return
	}
	p.seekGen++
	req := seekRequest{to: to, gen: p.seekGen}
	if p.state != Playing {
		err := p.seekLocked(to)
		p.mu.Unlock()
		p.afterSeek(to, err)
		return
	}
	p.mu.Unlock()

	select {
	case p.seekChan <- req:
	default:
		select {
		case <-p.seekChan:
		default:
		}
		select {
		case p.seekChan <- req:
		default:
		}
	}
}

type seekRequest struct {
	to  time.Duration
	gen int
}

func (p *Player) seekLoop() {
	for req := range p.seekChan {
		p.doSeek(req)
	}
}

func (p *Player) doSeek(req seekRequest) {
	p.mu.Lock()
	if req.gen != p.seekGen {
		// A later seek already ran.
		p.mu.Unlock()
		return
	}
	err := p.seekLocked(req.to)
	p.mu.Unlock()
	p.afterSeek(req.to, err)
}

// seekLocked moves the stream; p.mu must be held.
func (p *Player) seekLocked(to time.Duration) error {
	if p.streamer == nil || !p.state.HasMedia() {
		return nil
	}
	n := p.format.SampleRate.N(to)
	n = min(max(n, 0), p.streamer.Len())

	speaker.Lock()
	err := p.streamer.Seek(n)
	speaker.Unlock()

	if err == nil && p.state == Ended && n < p.streamer.Len() {
		p.state = Paused
	}
	return err
}

func (p *Player) afterSeek(to time.Duration, err error) {
	if err != nil {
		p.log.WithError(err).WithField("to", to).Warn("seek failed")
		return
	}
	p.feeds.nudgeTicks()
}
