package notify

import (
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/scrubber/internal/scrub"
)

const announceTimeout = 4000 // ms

// Verify PlaybackAnnouncer implements scrub.Observer at compile time.
var _ scrub.Observer = (*PlaybackAnnouncer)(nil)

// PlaybackAnnouncer shows a "Now playing" notification on every playback
// start, replacing the previous one.
type PlaybackAnnouncer struct {
	notifier Notifier
	title    string
	body     string
	icon     string
	log      logrus.FieldLogger
	lastID   uint32
}

// NewPlaybackAnnouncer announces title (and body, if set) through n.
func NewPlaybackAnnouncer(n Notifier, title, body string, log logrus.FieldLogger) *PlaybackAnnouncer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &PlaybackAnnouncer{
		notifier: n,
		title:    title,
		body:     body,
		log:      log.WithField("component", "notify"),
	}
}

// SetIcon shows the image at path (cover art) beside the text.
func (a *PlaybackAnnouncer) SetIcon(path string) { a.icon = path }

func (a *PlaybackAnnouncer) OnPlaybackStarted(mediaID, _ string) {
	id, err := a.notifier.Notify(Notification{
		Title:      "Now playing",
		Body:       a.message(),
		Icon:       a.icon,
		Timeout:    announceTimeout,
		ReplacesID: a.lastID,
		Urgency:    UrgencyLow,
	})
	if err != nil {
		a.log.WithError(err).WithField("media_id", mediaID).Debug("notification failed")
		return
	}
	if id != 0 {
		a.lastID = id
	}
}

func (a *PlaybackAnnouncer) OnButtonTapped() {}

// Close withdraws the last notification, if any.
func (a *PlaybackAnnouncer) Close() error {
	if a.lastID == 0 {
		return nil
	}
	id := a.lastID
	a.lastID = 0
	return a.notifier.Close(id)
}

func (a *PlaybackAnnouncer) message() string {
	if a.body == "" {
		return a.title
	}
	return a.title + "\n" + a.body
}
