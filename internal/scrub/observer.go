package scrub

// Observer receives playback notifications.
type Observer interface {
	// OnPlaybackStarted fires once per transition into Playing from a non-playing state.
	OnPlaybackStarted(mediaID, sourceURL string)
	// OnButtonTapped fires once per user tap, whatever the resulting state.
	OnButtonTapped()
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	PlaybackStarted func(mediaID, sourceURL string)
	ButtonTapped    func()
}

func (o ObserverFuncs) OnPlaybackStarted(mediaID, sourceURL string) {
	if o.PlaybackStarted != nil {
		o.PlaybackStarted(mediaID, sourceURL)
	}
}

func (o ObserverFuncs) OnButtonTapped() {
	if o.ButtonTapped != nil {
		o.ButtonTapped()
	}
}

// Observers fans notifications out to every non-nil observer, in order.
func Observers(obs ...Observer) Observer {
	list := make(multiObserver, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			list = append(list, o)
		}
	}
	return list
}

type multiObserver []Observer

func (m multiObserver) OnPlaybackStarted(mediaID, sourceURL string) {
	for _, o := range m {
		o.OnPlaybackStarted(mediaID, sourceURL)
	}
}

func (m multiObserver) OnButtonTapped() {
	for _, o := range m {
		o.OnButtonTapped()
	}
}
