//go:build linux

package mpris

import (
	"testing"
	"time"

	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/scrubber/internal/scrub"
)

type recordingRemote struct {
	calls []string
	seeks []time.Duration
}

func (r *recordingRemote) PlayPause() { r.calls = append(r.calls, "playpause") }
func (r *recordingRemote) Play()      { r.calls = append(r.calls, "play") }
func (r *recordingRemote) Pause()     { r.calls = append(r.calls, "pause") }

func (r *recordingRemote) SeekTo(pos time.Duration) {
	r.calls = append(r.calls, "seekto")
	r.seeks = append(r.seeks, pos)
}

func (r *recordingRemote) SeekBy(offset time.Duration) {
	r.calls = append(r.calls, "seekby")
	r.seeks = append(r.seeks, offset)
}

func TestPlaybackStatus(t *testing.T) {
	tests := []struct {
		state scrub.State
		want  types.PlaybackStatus
	}{
		{scrub.StatePlaying, types.PlaybackStatusPlaying},
		{scrub.StatePaused, types.PlaybackStatusPaused},
		{scrub.StateSeeking, types.PlaybackStatusPaused},
		{scrub.StateIdle, types.PlaybackStatusStopped},
		{scrub.StateLoading, types.PlaybackStatusStopped},
		{scrub.StateFailed, types.PlaybackStatusStopped},
	}
	for _, tt := range tests {
		if got := playbackStatus(tt.state); got != tt.want {
			t.Errorf("playbackStatus(%v) = %v, want %v", tt.state, got, tt.want)
		}
	}
}

func TestPlayerAdapter_ForwardsCommands(t *testing.T) {
	b := NewBoard()
	b.Publish(Status{State: scrub.StatePaused, MediaID: "media:1", Duration: time.Minute})
	r := &recordingRemote{}
	p := &playerAdapter{board: b, remote: r}

	assert.NoError(t, p.PlayPause())
	assert.NoError(t, p.Play())
	assert.NoError(t, p.Pause())
	assert.NoError(t, p.Seek(types.Microseconds(5_000_000)))
	assert.NoError(t, p.SetPosition(formatTrackID("media:1"), types.Microseconds(30_000_000)))
	assert.NoError(t, p.SetPosition(formatTrackID("media:other"), types.Microseconds(1)))
	assert.NoError(t, p.Next())

	assert.Equal(t, []string{"playpause", "play", "pause", "seekby", "seekto"}, r.calls)
	assert.Equal(t, []time.Duration{5 * time.Second, 30 * time.Second}, r.seeks)
}

func TestPlayerAdapter_Metadata(t *testing.T) {
	b := NewBoard()
	p := &playerAdapter{board: b, remote: &recordingRemote{}}

	meta, err := p.Metadata()
	assert.NoError(t, err)
	assert.Empty(t, meta.Title)

	b.Publish(Status{
		State:    scrub.StatePlaying,
		MediaID:  "media:1",
		Title:    "Blue Train",
		Artist:   "John Coltrane",
		Duration: 2 * time.Minute,
		Position: 5 * time.Second,
	})

	meta, err = p.Metadata()
	assert.NoError(t, err)
	assert.Equal(t, "Blue Train", meta.Title)
	assert.Equal(t, []string{"John Coltrane"}, meta.Artist)
	assert.Equal(t, types.Microseconds(120_000_000), meta.Length)

	pos, err := p.Position()
	assert.NoError(t, err)
	assert.Equal(t, int64(5_000_000), pos)

	canSeek, _ := p.CanSeek()
	assert.True(t, canSeek)
}
