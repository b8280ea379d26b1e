package player

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/scrubber/internal/scrub"
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extWAV  = ".wav"
	extOGG  = ".ogg"
	extM4A  = ".m4a"
	extMP4  = ".mp4"
)

// ErrUnsupportedFormat is returned for files no decoder handles.
var ErrUnsupportedFormat = errors.New("unsupported format")

// IsSupported reports whether path has an extension the player can decode.
func IsSupported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case extMP3, extFLAC, extWAV, extOGG, extM4A, extMP4:
		return true
	}
	return false
}

var (
	speakerOnce sync.Once
	speakerRate beep.SampleRate
	speakerErr  error
)

// initSpeaker initialises the output device once per process, at the
// sample rate of the first file played.
func initSpeaker(rate beep.SampleRate) (beep.SampleRate, error) {
	speakerOnce.Do(func() {
		speakerRate = rate
		speakerErr = speaker.Init(rate, rate.N(time.Second/10))
	})
	return speakerRate, speakerErr
}

// Player is a MediaPlayer backed by beep.
type Player struct {
	mu       sync.Mutex
	state    State
	streamer beep.StreamSeekCloser
	format   beep.Format
	file     *os.File
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	queued   bool // stream sequence is in the speaker mixer
	level    float64
	loadGen  int
	seekGen  int

	feeds     *feeds
	seekChan  chan seekRequest
	closeOnce sync.Once
	log       logrus.FieldLogger
}

// New creates a stopped player and starts its seek loop.
func New(log logrus.FieldLogger) *Player {
	if log == nil {
		log = logrus.StandardLogger()
	}
	p := &Player{
		state:    Stopped,
		level:    1,
		feeds:    newFeeds(),
		seekChan: make(chan seekRequest, 1),
		log:      log.WithField("component", "player"),
	}
	go p.seekLoop()
	return p
}

// State returns the engine state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Load decodes path in the background and publishes Ready or Failed.
func (p *Player) Load(path string) {
	p.Stop()
	p.feeds.resetStatus()

	p.mu.Lock()
	p.loadGen++
	gen := p.loadGen
	p.state = Loading
	p.mu.Unlock()

	go func() {
		total, err := p.decode(path, gen)
		if err != nil {
			p.mu.Lock()
			if gen == p.loadGen {
				p.state = Stopped
			}
			p.mu.Unlock()
			p.log.WithError(err).WithField("path", path).Warn("load failed")
			p.feeds.publishStatus(scrub.StatusUpdate{Status: scrub.StatusFailed, Err: err})
			return
		}
		p.log.WithFields(logrus.Fields{"path": path, "duration": total}).Debug("media ready")
		p.feeds.publishStatus(scrub.StatusUpdate{Status: scrub.StatusReady, TotalTime: total})
	}()
}

func (p *Player) decode(path string, gen int) (time.Duration, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !IsSupported(path) {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch ext {
	case extMP3:
		streamer, format, err = decodeMP3(f)
	case extFLAC:
		streamer, format, err = flac.Decode(f)
	case extWAV:
		streamer, format, err = wav.Decode(f)
	case extOGG:
		streamer, format, err = vorbis.Decode(f)
	case extM4A, extMP4:
		streamer, format, err = decodeM4A(f)
	}
	if err != nil {
		f.Close()
		return 0, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	rate, err := initSpeaker(format.SampleRate)
	if err != nil {
		streamer.Close()
		f.Close()
		return 0, fmt.Errorf("init speaker: %w", err)
	}

	var src beep.Streamer = streamer
	if format.SampleRate != rate {
		src = beep.Resample(4, format.SampleRate, rate, streamer)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.loadGen {
		// Superseded by a newer Load or Stop.
		streamer.Close()
		f.Close()
		return 0, errors.New("load superseded")
	}
	p.file = f
	p.streamer = streamer
	p.format = format
	p.ctrl = &beep.Ctrl{Streamer: src, Paused: true}
	p.volume = &effects.Volume{Streamer: p.ctrl, Base: 2, Volume: levelToVolume(p.level)}
	p.queued = false
	p.state = Paused

	return format.SampleRate.D(streamer.Len()), nil
}

// Stop releases the current stream.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loadGen++
	if p.state == Stopped {
		return
	}
	if p.queued {
		speaker.Clear()
		p.queued = false
	}
	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		p.file.Close()
		p.file = nil
	}
	p.ctrl = nil
	p.volume = nil
	p.state = Stopped
}

// Close stops playback, ends every subscription and the seek loop.
func (p *Player) Close() error {
	p.Stop()
	p.feeds.close()
	p.closeOnce.Do(func() { close(p.seekChan) })
	return nil
}

func (p *Player) SubscribePeriodicTime(interval time.Duration, fn func(time.Duration)) scrub.Unsubscribe {
	return p.feeds.subscribeTicks(interval, fn, p.isPlaying, p.CurrentTime)
}

func (p *Player) SubscribeStatus(fn func(scrub.StatusUpdate)) scrub.Unsubscribe {
	return p.feeds.subscribeStatus(fn)
}

func (p *Player) SubscribeEnded(fn func()) scrub.Unsubscribe {
	return p.feeds.subscribeEnded(fn)
}

func (p *Player) isPlaying() bool {
	return p.State() == Playing
}

// handleEnd runs inside the speaker callback, under the speaker lock,
// so the real work happens on its own goroutine.
func (p *Player) handleEnd() {
	go func() {
		p.mu.Lock()
		if p.state != Playing {
			p.mu.Unlock()
			return
		}
		p.state = Ended
		p.queued = false
		p.mu.Unlock()

		p.feeds.publishTick(p.CurrentTime())
		p.feeds.publishEnded()
	}()
}
