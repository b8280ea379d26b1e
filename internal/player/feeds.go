package player

import (
	"sync"
	"time"

	"github.com/llehouerou/scrubber/internal/scrub"
)

// feeds fans player events out to subscribers.
// Callbacks run on the goroutine that produced the event.
type feeds struct {
	mu      sync.Mutex
	nextID  int
	status  map[int]func(scrub.StatusUpdate)
	ended   map[int]func()
	tickers map[int]*ticker
	last    scrub.StatusUpdate
}

type ticker struct {
	interval time.Duration
	fn       func(time.Duration)
	nudge    chan struct{}
	stop     chan struct{}
	once     sync.Once
}

func newFeeds() *feeds {
	return &feeds{
		status:  make(map[int]func(scrub.StatusUpdate)),
		ended:   make(map[int]func()),
		tickers: make(map[int]*ticker),
	}
}

func (f *feeds) id() int {
	f.nextID++
	return f.nextID
}

// subscribeStatus registers fn and replays the last known status, if any.
func (f *feeds) subscribeStatus(fn func(scrub.StatusUpdate)) scrub.Unsubscribe {
	f.mu.Lock()
	id := f.id()
	f.status[id] = fn
	last := f.last
	f.mu.Unlock()

	if last.Status != scrub.StatusUnknown {
		go fn(last)
	}
	return func() {
		f.mu.Lock()
		delete(f.status, id)
		f.mu.Unlock()
	}
}

func (f *feeds) subscribeEnded(fn func()) scrub.Unsubscribe {
	f.mu.Lock()
	id := f.id()
	f.ended[id] = fn
	f.mu.Unlock()
	return func() {
		f.mu.Lock()
		delete(f.ended, id)
		f.mu.Unlock()
	}
}

// subscribeTicks starts a ticker goroutine that reports pos() every interval
// while playing() is true, and once after every nudge.
func (f *feeds) subscribeTicks(
	interval time.Duration,
	fn func(time.Duration),
	playing func() bool,
	pos func() time.Duration,
) scrub.Unsubscribe {
	t := &ticker{
		interval: interval,
		fn:       fn,
		nudge:    make(chan struct{}, 1),
		stop:     make(chan struct{}),
	}
	f.mu.Lock()
	id := f.id()
	f.tickers[id] = t
	f.mu.Unlock()

	go t.run(playing, pos)

	return func() {
		f.mu.Lock()
		delete(f.tickers, id)
		f.mu.Unlock()
		t.close()
	}
}

func (t *ticker) run(playing func() bool, pos func() time.Duration) {
	tk := time.NewTicker(t.interval)
	defer tk.Stop()
	for {
		select {
		case <-tk.C:
			if playing() {
				t.fn(pos())
			}
		case <-t.nudge:
			t.fn(pos())
		case <-t.stop:
			return
		}
	}
}

func (t *ticker) close() {
	t.once.Do(func() { close(t.stop) })
}

func (f *feeds) publishStatus(u scrub.StatusUpdate) {
	f.mu.Lock()
	f.last = u
	fns := make([]func(scrub.StatusUpdate), 0, len(f.status))
	for _, fn := range f.status {
		fns = append(fns, fn)
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn(u)
	}
}

// resetStatus forgets the last status so a new load starts from Unknown.
func (f *feeds) resetStatus() {
	f.mu.Lock()
	f.last = scrub.StatusUpdate{}
	f.mu.Unlock()
}

func (f *feeds) publishEnded() {
	f.mu.Lock()
	fns := make([]func(), 0, len(f.ended))
	for _, fn := range f.ended {
		fns = append(fns, fn)
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// publishTick delivers pos to every ticker subscriber synchronously.
func (f *feeds) publishTick(pos time.Duration) {
	f.mu.Lock()
	fns := make([]func(time.Duration), 0, len(f.tickers))
	for _, t := range f.tickers {
		fns = append(fns, t.fn)
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn(pos)
	}
}

// nudgeTicks asks every ticker for an immediate report (non-blocking).
func (f *feeds) nudgeTicks() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tickers {
		select {
		case t.nudge <- struct{}{}:
		default:
		}
	}
}

// close stops all tickers and drops every subscriber.
func (f *feeds) close() {
	f.mu.Lock()
	tickers := f.tickers
	f.tickers = make(map[int]*ticker)
	f.status = make(map[int]func(scrub.StatusUpdate))
	f.ended = make(map[int]func())
	f.mu.Unlock()
	for _, t := range tickers {
		t.close()
	}
}
