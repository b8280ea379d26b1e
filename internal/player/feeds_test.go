package player

import (
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/scrubber/internal/scrub"
)

func TestFeeds_TicksOnlyWhilePlaying(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFeeds()
		var playing atomic.Bool
		var got []time.Duration
		ticks := make(chan time.Duration, 10)

		unsub := f.subscribeTicks(500*time.Millisecond, func(d time.Duration) { ticks <- d },
			playing.Load, func() time.Duration { return 42 * time.Second })

		time.Sleep(1100 * time.Millisecond)
		synctest.Wait()
		assert.Empty(t, ticks, "no ticks while paused")

		playing.Store(true)
		time.Sleep(1000 * time.Millisecond)
		synctest.Wait()
		unsub()

		for len(ticks) > 0 {
			got = append(got, <-ticks)
		}
		assert.Len(t, got, 2)
		for _, d := range got {
			assert.Equal(t, 42*time.Second, d)
		}
	})
}

func TestFeeds_NudgeReportsImmediately(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFeeds()
		ticks := make(chan time.Duration, 4)
		unsub := f.subscribeTicks(time.Hour, func(d time.Duration) { ticks <- d },
			func() bool { return false }, func() time.Duration { return 7 * time.Second })
		defer unsub()

		f.nudgeTicks()
		synctest.Wait()

		assert.Len(t, ticks, 1)
		assert.Equal(t, 7*time.Second, <-ticks)
	})
}

func TestFeeds_UnsubscribeStopsTicker(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFeeds()
		var count atomic.Int32
		unsub := f.subscribeTicks(100*time.Millisecond, func(time.Duration) { count.Add(1) },
			func() bool { return true }, func() time.Duration { return 0 })

		time.Sleep(250 * time.Millisecond)
		unsub()
		unsub() // idempotent
		before := count.Load()
		time.Sleep(time.Second)
		synctest.Wait()

		assert.Equal(t, int32(2), before)
		assert.Equal(t, before, count.Load())
	})
}

func TestFeeds_StatusReplayedToLateSubscriber(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFeeds()
		f.publishStatus(scrub.StatusUpdate{Status: scrub.StatusReady, TotalTime: time.Minute})

		got := make(chan scrub.StatusUpdate, 1)
		unsub := f.subscribeStatus(func(u scrub.StatusUpdate) { got <- u })
		defer unsub()
		synctest.Wait()

		u := <-got
		assert.Equal(t, scrub.StatusReady, u.Status)
		assert.Equal(t, time.Minute, u.TotalTime)
	})
}

func TestFeeds_NoReplayAfterReset(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFeeds()
		f.publishStatus(scrub.StatusUpdate{Status: scrub.StatusReady, TotalTime: time.Minute})
		f.resetStatus()

		got := make(chan scrub.StatusUpdate, 1)
		unsub := f.subscribeStatus(func(u scrub.StatusUpdate) { got <- u })
		defer unsub()
		synctest.Wait()

		assert.Empty(t, got)
	})
}

func TestFeeds_EndedAndClose(t *testing.T) {
	f := newFeeds()
	var ended int
	f.subscribeEnded(func() { ended++ })

	f.publishEnded()
	assert.Equal(t, 1, ended)

	f.close()
	f.publishEnded()
	assert.Equal(t, 1, ended, "closed feeds drop subscribers")
}
