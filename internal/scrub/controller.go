// internal/scrub/controller.go
package scrub

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultTickInterval matches a half-second periodic time observer.
const DefaultTickInterval = 500 * time.Millisecond

// Config holds optional controller settings.
type Config struct {
	Observer     Observer
	TickInterval time.Duration
	// Autoplay starts playback as soon as the media is ready.
	Autoplay bool
	// Dispatch runs collaborator callbacks on the event thread.
	// Nil runs them inline.
	Dispatch func(func())
	Logger   logrus.FieldLogger
}

// Controller reconciles player time updates with user scrub gestures.
// It is not safe for concurrent use: every method must run on a single
// event thread, and player feeds are routed there through Config.Dispatch.
type Controller struct {
	player  MediaPlayer
	surface PresentationSurface
	cfg     Config
	log     logrus.FieldLogger

	state    State
	progress ProgressSnapshot
	session  *ScrubSession
	source   Source
	err      error

	unsubs   []Unsubscribe
	disposed bool
}

// New creates a controller in the Idle state.
func New(p MediaPlayer, s PresentationSurface, cfg Config) *Controller {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	if cfg.Dispatch == nil {
		cfg.Dispatch = func(fn func()) { fn() }
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	return &Controller{
		player:  p,
		surface: s,
		cfg:     cfg,
		log:     cfg.Logger,
		state:   StateIdle,
	}
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Snapshot returns the last accepted progress.
func (c *Controller) Snapshot() ProgressSnapshot { return c.progress }

// Scrubbing reports whether a scrub session is open.
func (c *Controller) Scrubbing() bool { return c.session != nil }

// Source returns the opened source.
func (c *Controller) Source() Source { return c.source }

// Err returns the load failure, if any. It wraps ErrLoadFailed.
func (c *Controller) Err() error { return c.err }

// Open starts loading src and subscribes to the player feeds.
func (c *Controller) Open(src Source) error {
	if c.disposed {
		return ErrDisposed
	}
	if c.state != StateIdle {
		return ErrAlreadyOpen
	}
	c.source = src
	c.log = c.cfg.Logger.WithField("media_id", src.ID)
	c.setState(StateLoading)

	c.surface.SetLoadingVisible(true)
	c.surface.SetControlsVisible(false)
	c.surface.SetPlaying(false)
	c.surface.SetCurrentTimeLabel(FormatClock(0))
	c.surface.SetTotalTimeLabel(FormatClock(0))
	c.surface.SetSliderFraction(0)

	dispatch := c.cfg.Dispatch
	c.unsubs = append(c.unsubs,
		c.player.SubscribeStatus(func(u StatusUpdate) {
			dispatch(func() { c.handleStatus(u) })
		}),
		c.player.SubscribePeriodicTime(c.cfg.TickInterval, func(t time.Duration) {
			dispatch(func() { c.OnPeriodicTick(t) })
		}),
		c.player.SubscribeEnded(func() {
			dispatch(c.OnPlaybackEndedByPlayer)
		}),
	)
	return nil
}

func (c *Controller) handleStatus(u StatusUpdate) {
	switch u.Status {
	case StatusReady:
		c.OnReady(u.TotalTime)
	case StatusFailed:
		c.OnFailed(u.Err)
	case StatusUnknown:
		c.log.Debug("player status unknown")
	}
}

// OnReady records the total time and reveals the controls.
// Only the first ready signal of a load is honoured.
func (c *Controller) OnReady(total time.Duration) {
	if c.disposed || c.state != StateLoading {
		return
	}
	c.progress.TotalTime = total
	c.progress.TotalKnown = true
	c.setState(StatePaused)

	c.surface.SetTotalTimeLabel(FormatClock(total))
	c.surface.SetLoadingVisible(false)
	c.surface.SetControlsVisible(true)

	if c.cfg.Autoplay {
		c.startPlayback()
	}
}

// OnFailed moves to the terminal Failed state. The surface is left as
// it was; presenting the failure is up to the caller.
func (c *Controller) OnFailed(cause error) {
	if c.disposed || c.state.IsTerminal() {
		return
	}
	if cause == nil {
		c.err = ErrLoadFailed
	} else {
		c.err = fmt.Errorf("%w: %w", ErrLoadFailed, cause)
	}
	c.session = nil
	c.setState(StateFailed)
	c.log.WithError(c.err).Warn("media load failed")
}

// OnPeriodicTick updates the displayed position unless the user is scrubbing.
func (c *Controller) OnPeriodicTick(t time.Duration) {
	if c.disposed || c.session != nil || !c.state.IsReady() {
		return
	}
	c.progress.CurrentTime = t
	c.surface.SetCurrentTimeLabel(FormatClock(t))
	c.surface.SetSliderFraction(c.progress.Fraction())
}

// OnScrubStart opens a scrub session, pausing playback if needed.
func (c *Controller) OnScrubStart() {
	if c.disposed || !c.state.IsReady() {
		return
	}
	if c.session != nil {
		// A new session supersedes the open one but keeps its resume intent.
		c.session = &ScrubSession{WasPlayingBeforeScrub: c.session.WasPlayingBeforeScrub}
		return
	}
	wasPlaying := c.state == StatePlaying
	c.session = &ScrubSession{WasPlayingBeforeScrub: wasPlaying}
	if wasPlaying {
		c.player.Pause()
		c.surface.SetPlaying(false)
	}
	c.setState(StateSeeking)
}

// OnScrubUpdate seeks to fraction of the total time immediately.
func (c *Controller) OnScrubUpdate(fraction float64) {
	if c.disposed || !c.state.IsReady() || !c.progress.TotalKnown {
		return
	}
	fraction = clampFraction(fraction)
	target := time.Duration(fraction * float64(c.progress.TotalTime))
	c.player.Seek(target)
	c.surface.SetSliderFraction(fraction)
	c.surface.SetCurrentTimeLabel(FormatClock(target))
}

// OnScrubEnd closes the session and resumes playback if it was playing.
func (c *Controller) OnScrubEnd() {
	if c.disposed || c.session == nil {
		return
	}
	resume := c.session.WasPlayingBeforeScrub
	c.session = nil
	if resume {
		c.player.Play()
		c.surface.SetPlaying(true)
		c.setState(StatePlaying)
		return
	}
	c.setState(StatePaused)
}

// OnToggleTap handles the play/pause button.
func (c *Controller) OnToggleTap() {
	if c.disposed {
		return
	}
	if obs := c.cfg.Observer; obs != nil {
		obs.OnButtonTapped()
	}

	switch c.state {
	case StatePlaying:
		c.player.Pause()
		c.surface.SetPlaying(false)
		c.setState(StatePaused)
	case StatePaused:
		c.startPlayback()
	case StateIdle, StateLoading, StateSeeking, StateFailed:
		c.log.WithField("state", c.state).Debug("tap ignored")
	}
}

// startPlayback moves Paused to Playing, rewinding first at end of media.
func (c *Controller) startPlayback() {
	if c.progress.AtEnd(c.player.CurrentTime()) {
		c.player.Seek(0)
	}
	c.player.Play()
	c.surface.SetPlaying(true)
	c.setState(StatePlaying)
	if obs := c.cfg.Observer; obs != nil {
		obs.OnPlaybackStarted(c.source.ID, c.source.URL)
	}
}

// OnPlaybackEndedByPlayer handles the natural end of media.
// The current-time label keeps its last value.
func (c *Controller) OnPlaybackEndedByPlayer() {
	if c.disposed || !c.state.IsReady() {
		return
	}
	c.player.Pause()
	c.surface.SetPlaying(false)
	if c.session != nil {
		c.session.WasPlayingBeforeScrub = false
		return
	}
	c.setState(StatePaused)
}

// Dispose unsubscribes every feed and pauses playback.
// Only the first call has any effect.
func (c *Controller) Dispose() error {
	if c.disposed {
		return nil
	}
	c.disposed = true
	for _, unsub := range c.unsubs {
		if unsub != nil {
			unsub()
		}
	}
	c.unsubs = nil
	if c.state == StatePlaying {
		c.player.Pause()
	}
	c.session = nil
	c.log.Debug("controller disposed")
	return nil
}

func (c *Controller) setState(s State) {
	if s == c.state {
		return
	}
	c.log.WithFields(logrus.Fields{"from": c.state, "to": s}).Debug("state change")
	c.state = s
}
