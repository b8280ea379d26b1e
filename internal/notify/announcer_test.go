package notify

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	sent   []Notification
	closed []uint32
	nextID uint32
	err    error
}

func (f *fakeNotifier) Notify(n Notification) (uint32, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.sent = append(f.sent, n)
	f.nextID++
	return f.nextID, nil
}

func (f *fakeNotifier) Close(id uint32) error {
	f.closed = append(f.closed, id)
	return nil
}

func TestPlaybackAnnouncer_ReplacesPrevious(t *testing.T) {
	n := &fakeNotifier{}
	logger, _ := test.NewNullLogger()
	a := NewPlaybackAnnouncer(n, "Blue Train", "John Coltrane", logger)

	a.OnPlaybackStarted("media:1", "file:///a.mp3")
	a.OnPlaybackStarted("media:1", "file:///a.mp3")

	require.Len(t, n.sent, 2)
	assert.Equal(t, "Now playing", n.sent[0].Title)
	assert.Equal(t, "Blue Train\nJohn Coltrane", n.sent[0].Body)
	assert.Equal(t, uint32(0), n.sent[0].ReplacesID)
	assert.Equal(t, uint32(1), n.sent[1].ReplacesID)
}

func TestPlaybackAnnouncer_Icon(t *testing.T) {
	n := &fakeNotifier{}
	a := NewPlaybackAnnouncer(n, "x", "", nil)
	a.SetIcon("/music/cover.jpg")

	a.OnPlaybackStarted("media:1", "")

	require.Len(t, n.sent, 1)
	assert.Equal(t, "/music/cover.jpg", n.sent[0].Icon)
}

func TestPlaybackAnnouncer_TapsAreSilent(t *testing.T) {
	n := &fakeNotifier{}
	a := NewPlaybackAnnouncer(n, "x", "", nil)

	a.OnButtonTapped()

	assert.Empty(t, n.sent)
}

func TestPlaybackAnnouncer_ErrorsAreLogged(t *testing.T) {
	n := &fakeNotifier{err: errors.New("no bus")}
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	a := NewPlaybackAnnouncer(n, "x", "", logger)

	a.OnPlaybackStarted("media:1", "")

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "notification failed", hook.LastEntry().Message)
	assert.NoError(t, a.Close(), "nothing to withdraw")
	assert.Empty(t, n.closed)
}

func TestPlaybackAnnouncer_CloseWithdrawsLast(t *testing.T) {
	n := &fakeNotifier{}
	a := NewPlaybackAnnouncer(n, "x", "", nil)
	a.OnPlaybackStarted("media:1", "")

	require.NoError(t, a.Close())
	require.NoError(t, a.Close())

	assert.Equal(t, []uint32{1}, n.closed)
}

func TestDisabled(t *testing.T) {
	n := Disabled()
	id, err := n.Notify(Notification{Title: "x"})
	assert.NoError(t, err)
	assert.Zero(t, id)
	assert.NoError(t, n.Close(id))
}
