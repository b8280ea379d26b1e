// internal/player/mock.go
package player

import (
	"sync"
	"time"

	"github.com/llehouerou/scrubber/internal/scrub"
)

// Call is one command recorded by Mock.
type Call struct {
	Op string // "play", "pause" or "seek"
	To time.Duration
}

// Mock is a test double for Player. Feeds fire only when a test asks.
type Mock struct {
	mu        sync.Mutex
	state     State
	position  time.Duration
	duration  time.Duration
	calls     []Call
	loads     []string
	interval  time.Duration
	nextID    int
	tickFns   map[int]func(time.Duration)
	statusFns map[int]func(scrub.StatusUpdate)
	endedFns  map[int]func()
	closed    bool
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{
		state:     Stopped,
		tickFns:   make(map[int]func(time.Duration)),
		statusFns: make(map[int]func(scrub.StatusUpdate)),
		endedFns:  make(map[int]func()),
	}
}

func (m *Mock) Load(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads = append(m.loads, path)
	m.state = Loading
}

func (m *Mock) Play() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, Call{Op: "play"})
	m.state = Playing
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, Call{Op: "pause"})
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Seek(to time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, Call{Op: "seek", To: to})
	m.position = to
}

func (m *Mock) CurrentTime() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *Mock) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duration
}

func (m *Mock) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *Mock) SubscribePeriodicTime(interval time.Duration, fn func(time.Duration)) scrub.Unsubscribe {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interval = interval
	id := m.id()
	m.tickFns[id] = fn
	return func() {
		m.mu.Lock()
		delete(m.tickFns, id)
		m.mu.Unlock()
	}
}

func (m *Mock) SubscribeStatus(fn func(scrub.StatusUpdate)) scrub.Unsubscribe {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.id()
	m.statusFns[id] = fn
	return func() {
		m.mu.Lock()
		delete(m.statusFns, id)
		m.mu.Unlock()
	}
}

func (m *Mock) SubscribeEnded(fn func()) scrub.Unsubscribe {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.id()
	m.endedFns[id] = fn
	return func() {
		m.mu.Lock()
		delete(m.endedFns, id)
		m.mu.Unlock()
	}
}

func (m *Mock) id() int {
	m.nextID++
	return m.nextID
}

// Test helpers

func (m *Mock) SetState(s State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = s
}

func (m *Mock) SetPosition(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = d
}

func (m *Mock) SetDuration(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.duration = d
}

// Calls returns every recorded command in order.
func (m *Mock) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}

// CallCount returns how many times op was issued.
func (m *Mock) CallCount(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// SeekCalls returns the targets of every seek, in order.
func (m *Mock) SeekCalls() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []time.Duration
	for _, c := range m.calls {
		if c.Op == "seek" {
			out = append(out, c.To)
		}
	}
	return out
}

// ResetCalls forgets recorded commands.
func (m *Mock) ResetCalls() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}

func (m *Mock) Loads() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.loads...)
}

// TickInterval returns the interval of the last periodic subscription.
func (m *Mock) TickInterval() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.interval
}

// Subscribers returns the number of live subscriptions across all feeds.
func (m *Mock) Subscribers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tickFns) + len(m.statusFns) + len(m.endedFns)
}

func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// EmitTick delivers a periodic time update to every subscriber.
func (m *Mock) EmitTick(t time.Duration) {
	m.mu.Lock()
	m.position = t
	fns := make([]func(time.Duration), 0, len(m.tickFns))
	for _, fn := range m.tickFns {
		fns = append(fns, fn)
	}
	m.mu.Unlock()
	for _, fn := range fns {
		fn(t)
	}
}

// EmitStatus delivers a status update to every subscriber.
func (m *Mock) EmitStatus(u scrub.StatusUpdate) {
	m.mu.Lock()
	if u.Status == scrub.StatusReady {
		m.duration = u.TotalTime
		m.state = Paused
	}
	fns := make([]func(scrub.StatusUpdate), 0, len(m.statusFns))
	for _, fn := range m.statusFns {
		fns = append(fns, fn)
	}
	m.mu.Unlock()
	for _, fn := range fns {
		fn(u)
	}
}

// EmitEnded simulates the media playing to its end.
func (m *Mock) EmitEnded() {
	m.mu.Lock()
	m.position = m.duration
	m.state = Ended
	fns := make([]func(), 0, len(m.endedFns))
	for _, fn := range m.endedFns {
		fns = append(fns, fn)
	}
	m.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
