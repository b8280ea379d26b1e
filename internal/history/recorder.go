package history

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/scrubber/internal/scrub"
)

const tapFlushDelay = 500 * time.Millisecond

// Verify Recorder implements scrub.Observer at compile time.
var _ scrub.Observer = (*Recorder)(nil)

// Recorder is a scrub.Observer that writes history for one source.
// Playback starts are written immediately; taps are batched and flushed
// after a short quiet period or on Close.
type Recorder struct {
	store  *Store
	source scrub.Source
	log    logrus.FieldLogger
	now    func() time.Time

	// flushing serializes store writes of batched taps.
	flushing sync.Mutex

	mu      sync.Mutex
	pending int
	timer   *time.Timer
	closed  bool
}

// NewRecorder creates a recorder for src.
func NewRecorder(store *Store, src scrub.Source, log logrus.FieldLogger) *Recorder {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Recorder{
		store:  store,
		source: src,
		log:    log.WithField("component", "history"),
		now:    time.Now,
	}
}

func (r *Recorder) OnPlaybackStarted(mediaID, sourceURL string) {
	if err := r.store.RecordStart(context.Background(), mediaID, sourceURL, r.now()); err != nil {
		r.log.WithError(err).WithField("media_id", mediaID).Warn("record play failed")
	}
}

func (r *Recorder) OnButtonTapped() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}

	r.pending++

	if r.timer != nil {
		r.timer.Stop()
	}
	r.timer = time.AfterFunc(tapFlushDelay, func() {
		_ = r.Flush()
	})
}

// Flush writes pending taps now. It waits for a flush already in progress.
func (r *Recorder) Flush() error {
	r.flushing.Lock()
	defer r.flushing.Unlock()

	r.mu.Lock()
	n := r.pending
	r.pending = 0
	r.mu.Unlock()

	if n == 0 {
		return nil
	}
	err := r.store.RecordTaps(context.Background(), r.source.ID, r.source.URL, n)
	if err != nil {
		r.log.WithError(err).WithField("media_id", r.source.ID).Warn("record taps failed")
	}
	return err
}

// Close stops the flush timer and writes pending taps. When it returns no
// write is in flight, so the store may be closed. It does not close it.
func (r *Recorder) Close() error {
	r.mu.Lock()
	r.closed = true
	if r.timer != nil {
		r.timer.Stop()
	}
	r.mu.Unlock()
	return r.Flush()
}
