//go:build linux

package mpris

import (
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/events"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/scrubber/internal/scrub"
)

const busName = "scrubber"

// Adapter connects the board and remote to MPRIS over D-Bus.
type Adapter struct {
	server  *server.Server
	events  *events.EventHandler
	changes chan Change
	done    chan struct{}
	log     logrus.FieldLogger
}

// New creates and starts a new MPRIS adapter.
func New(board *Board, remote Remote, log logrus.FieldLogger) (*Adapter, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	a := &Adapter{
		changes: make(chan Change, 1),
		done:    make(chan struct{}),
		log:     log.WithField("component", "mpris"),
	}

	a.server = server.NewServer(busName, &rootAdapter{}, &playerAdapter{board: board, remote: remote})
	a.events = events.NewEventHandler(a.server)

	// Start the server in background
	go func() {
		if err := a.server.Listen(); err != nil {
			a.log.WithError(err).Warn("mpris server stopped")
		}
	}()
	go a.emitLoop()

	board.Watch(a.enqueue)
	return a, nil
}

// enqueue merges c into the pending change without blocking the publisher.
func (a *Adapter) enqueue(c Change, _ Status) {
	for {
		select {
		case a.changes <- c:
			return
		case <-a.done:
			return
		default:
		}
		select {
		case prev := <-a.changes:
			c |= prev
		default:
		}
	}
}

func (a *Adapter) emitLoop() {
	for {
		select {
		case <-a.done:
			return
		case c := <-a.changes:
			a.emit(c)
		}
	}
}

func (a *Adapter) emit(c Change) {
	var err error
	if c&ChangeTrack != 0 {
		err = a.events.Player.OnTitle()
	}
	if c&ChangePlayback != 0 && err == nil {
		err = a.events.Player.OnPlayPause()
	}
	if c&ChangeSeek != 0 && err == nil {
		pos, _ := a.server.PlayerAdapter.Position()
		err = a.events.Player.OnSeek(types.Microseconds(pos))
	}
	if err != nil {
		a.log.WithError(err).Debug("mpris signal failed")
	}
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	select {
	case <-a.done:
		return nil
	default:
	}
	close(a.done)
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Scrubber", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/wav", "audio/ogg", "audio/mp4"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	board  *Board
	remote Remote
}

func (p *playerAdapter) Next() error {
	return nil // Single media item
}

func (p *playerAdapter) Previous() error {
	return nil // Single media item
}

func (p *playerAdapter) Pause() error {
	p.remote.Pause()
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.remote.PlayPause()
	return nil
}

func (p *playerAdapter) Stop() error {
	return nil // Not supported
}

func (p *playerAdapter) Play() error {
	p.remote.Play()
	return nil
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	p.remote.SeekBy(time.Duration(offset) * time.Microsecond)
	return nil
}

func (p *playerAdapter) SetPosition(trackID string, position types.Microseconds) error {
	st := p.board.Status()
	if trackID != formatTrackID(st.MediaID) {
		return nil // stale request for another track
	}
	p.remote.SeekTo(time.Duration(position) * time.Microsecond)
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	return playbackStatus(p.board.Status().State), nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	st := p.board.Status()
	if st.MediaID == "" {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(st.MediaID)),
		Length:  types.Microseconds(st.Duration.Microseconds()),
		Title:   st.Title,
		Album:   st.Album,
		ArtUrl:  st.ArtURL,
	}
	if st.Artist != "" {
		meta.Artist = []string{st.Artist}
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetVolume(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Position() (int64, error) {
	return p.board.Status().Position.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.board.Status().State.IsReady(), nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return p.board.Status().State.IsReady(), nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return p.board.Status().State.IsReady(), nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func playbackStatus(s scrub.State) types.PlaybackStatus {
	switch s {
	case scrub.StatePlaying:
		return types.PlaybackStatusPlaying
	case scrub.StatePaused, scrub.StateSeeking:
		return types.PlaybackStatusPaused
	case scrub.StateIdle, scrub.StateLoading, scrub.StateFailed:
		return types.PlaybackStatusStopped
	}
	return types.PlaybackStatusStopped
}
