package app

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/scrubber/internal/config"
	"github.com/llehouerou/scrubber/internal/keymap"
	"github.com/llehouerou/scrubber/internal/media"
	"github.com/llehouerou/scrubber/internal/mpris"
	"github.com/llehouerou/scrubber/internal/player"
	"github.com/llehouerou/scrubber/internal/scrub"
	"github.com/llehouerou/scrubber/internal/ui/playerbar"
)

// Options wires the model to its collaborators.
type Options struct {
	Player    player.Interface
	Media     media.Info
	Config    *config.Config
	Observers []scrub.Observer
	// Board receives a status after every update. Nil disables publishing.
	Board  *mpris.Board
	ArtURL string
	Logger logrus.FieldLogger
}

// Model is the root application model.
type Model struct {
	Controller *scrub.Controller
	Surface    *playerbar.Surface
	Player     player.Interface
	Dispatcher *Dispatcher
	Media      media.Info
	Board      *mpris.Board
	Keys       *keymap.Resolver

	ShowHelp bool
	ErrorMsg string
	Width    int
	Height   int

	// Keyboard scrub session state.
	KeyScrubbing bool
	ScrubTarget  time.Duration
	ScrubVersion int

	seekStep time.Duration
	settle   time.Duration
	artURL   string
	quitting bool
	log      logrus.FieldLogger
}

// New builds the surface and controller, opens the media and starts
// loading it.
func New(opts Options) (Model, error) {
	if opts.Player == nil {
		return Model{}, errors.New("app: player is required")
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	surface, err := playerbar.New(opts.Media.DisplayTitle(), cfg.Colors())
	if err != nil {
		return Model{}, fmt.Errorf("player bar: %w", err)
	}

	d := NewDispatcher()
	var ctrl *scrub.Controller
	tapLog := scrub.ObserverFuncs{
		ButtonTapped: func() {
			log.WithFields(logrus.Fields{
				"media_id": opts.Media.Source.ID,
				"state":    ctrl.State(),
			}).Debug("button tapped")
		},
	}
	observers := append([]scrub.Observer{tapLog}, opts.Observers...)

	ctrl = scrub.New(opts.Player, surface, scrub.Config{
		Observer:     scrub.Observers(observers...),
		TickInterval: cfg.Playback.TickInterval,
		Autoplay:     cfg.AutoplayEnabled(),
		Dispatch:     d.Dispatch,
		Logger:       log,
	})
	if err := ctrl.Open(opts.Media.Source); err != nil {
		d.Close()
		return Model{}, err
	}
	opts.Player.Load(opts.Media.Path)

	return Model{
		Controller: ctrl,
		Surface:    surface,
		Player:     opts.Player,
		Dispatcher: d,
		Media:      opts.Media,
		Board:      opts.Board,
		Keys:       keymap.NewResolver(keymap.All),
		Width:      80,
		seekStep:   cfg.Playback.SeekStep,
		settle:     cfg.Playback.ScrubSettle,
		artURL:     opts.ArtURL,
		log:        log,
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Dispatcher.Watch(), m.Surface.SpinnerTick)
}

// Remote returns the MPRIS command sink for this model.
func (m Model) Remote() mpris.Remote {
	return &remote{
		dispatch: m.Dispatcher.Dispatch,
		ctrl:     m.Controller,
		player:   m.Player,
		board:    m.Board,
	}
}

// publish hands the current status to the MPRIS board.
func (m Model) publish() {
	if m.Board == nil {
		return
	}
	snap := m.Controller.Snapshot()
	m.Board.Publish(mpris.Status{
		State:    m.Controller.State(),
		Position: m.Player.CurrentTime(),
		Duration: snap.TotalTime,
		MediaID:  m.Media.Source.ID,
		Title:    m.Media.Title,
		Artist:   m.Media.Artist,
		Album:    m.Media.Album,
		ArtURL:   m.artURL,
	})
}
