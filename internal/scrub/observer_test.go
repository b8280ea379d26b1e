package scrub

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObservers_FansOutInOrder(t *testing.T) {
	var got []string
	a := ObserverFuncs{
		PlaybackStarted: func(id, url string) { got = append(got, "a:start:"+id) },
		ButtonTapped:    func() { got = append(got, "a:tap") },
	}
	b := ObserverFuncs{
		ButtonTapped: func() { got = append(got, "b:tap") },
	}

	obs := Observers(a, nil, b)
	obs.OnButtonTapped()
	obs.OnPlaybackStarted("m1", "file:///x.mp3")

	assert.Equal(t, []string{"a:tap", "b:tap", "a:start:m1"}, got)
}

func TestObserverFuncs_NilFieldsAreSkipped(t *testing.T) {
	var o ObserverFuncs
	assert.NotPanics(t, func() {
		o.OnButtonTapped()
		o.OnPlaybackStarted("id", "url")
	})
}
