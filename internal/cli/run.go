package cli

import (
	"context"
	"errors"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/scrubber/internal/app"
	"github.com/llehouerou/scrubber/internal/config"
	"github.com/llehouerou/scrubber/internal/errmsg"
	"github.com/llehouerou/scrubber/internal/history"
	"github.com/llehouerou/scrubber/internal/logging"
	"github.com/llehouerou/scrubber/internal/media"
	"github.com/llehouerou/scrubber/internal/mpris"
	"github.com/llehouerou/scrubber/internal/notify"
	"github.com/llehouerou/scrubber/internal/player"
	"github.com/llehouerou/scrubber/internal/scrub"
	"github.com/llehouerou/scrubber/internal/stderr"
)

// closers releases resources in reverse order of creation.
type closers []io.Closer

func (c closers) closeAll(log logrus.FieldLogger) {
	for i := len(c) - 1; i >= 0; i-- {
		if err := c[i].Close(); err != nil {
			log.WithError(err).Warn("close failed")
		}
	}
}

func runPlayer(_ context.Context, opts *rootOptions, arg string) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	log, logCloser, err := logging.Setup(cfg.Log)
	if err != nil {
		return failure(errmsg.OpLogSetup, cfg.Log.Path, err)
	}
	defer logCloser.Close()

	info, err := media.Resolve(arg)
	if err != nil {
		return failure(errmsg.OpMediaResolve, arg, err)
	}
	log.WithFields(logrus.Fields{"media_id": info.Source.ID, "path": info.Path}).Info("starting")

	if err := stderr.Start(log); err != nil {
		log.WithError(err).Warn("stderr capture unavailable")
	}
	defer stderr.Stop()

	var res closers
	defer func() { res.closeAll(log) }()

	p := player.New(log)
	p.SetVolume(cfg.VolumeLevel())
	res = append(res, p)

	art := media.CoverArt(info.Path)
	var artURL string
	if art != "" {
		artURL = media.FileURL(art)
	}

	var observers []scrub.Observer
	if cfg.HistoryEnabled() {
		if store, err := openHistory(cfg); err != nil {
			log.WithError(err).Warn(errmsg.Format(errmsg.OpHistoryOpen, err))
		} else {
			rec := history.NewRecorder(store, info.Source, log)
			res = append(res, store, rec)
			observers = append(observers, rec)
		}
	}
	if cfg.NotificationsEnabled() {
		n, err := notify.New()
		if err != nil {
			log.WithError(err).Warn(errmsg.Format(errmsg.OpNotify, err))
			n = notify.Disabled()
		}
		ann := notify.NewPlaybackAnnouncer(n, info.Title, subtitle(info), log)
		ann.SetIcon(art)
		res = append(res, ann)
		observers = append(observers, ann)
	}

	var board *mpris.Board
	if cfg.MPRISEnabled() {
		board = mpris.NewBoard()
	}

	model, err := app.New(app.Options{
		Player:    p,
		Media:     info,
		Config:    cfg,
		Observers: observers,
		Board:     board,
		ArtURL:    artURL,
		Logger:    log,
	})
	if err != nil {
		return failure(errmsg.OpInitialize, "", err)
	}

	if board != nil {
		adapter, err := mpris.New(board, model.Remote(), log)
		if err != nil {
			log.WithError(err).Warn(errmsg.Format(errmsg.OpMPRIS, err))
		} else {
			res = append(res, adapter)
		}
	}

	prog := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	final, err := prog.Run()
	if fm, ok := final.(app.Model); ok {
		if err := fm.Close(); err != nil {
			log.WithError(err).Warn("dispose controller")
		}
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return failure(errmsg.OpPlaybackStart, info.DisplayTitle(), err)
	}
	return nil
}

func openHistory(cfg *config.Config) (*history.Store, error) {
	path := cfg.History.Path
	if path == "" {
		p, err := history.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return history.Open(path)
}

// subtitle is the notification body: artist and album when known.
func subtitle(info media.Info) string {
	return strings.Join(lo.Compact([]string{info.Artist, info.Album}), " - ")
}
