package app

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

const dispatchBuffer = 64

// Dispatcher moves callbacks from player, D-Bus and timer goroutines onto
// the bubbletea event thread.
type Dispatcher struct {
	ch   chan func()
	done chan struct{}
	once sync.Once
}

// NewDispatcher creates an open dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		ch:   make(chan func(), dispatchBuffer),
		done: make(chan struct{}),
	}
}

// Dispatch queues fn. It blocks while the queue is full and drops fn once
// the dispatcher is closed.
func (d *Dispatcher) Dispatch(fn func()) {
	select {
	case <-d.done:
		return
	default:
	}
	select {
	case d.ch <- fn:
	case <-d.done:
	}
}

// Watch returns a command that waits for the next queued callback.
// Update must re-arm it after every DispatchMsg.
func (d *Dispatcher) Watch() tea.Cmd {
	return func() tea.Msg {
		select {
		case fn := <-d.ch:
			return DispatchMsg{fn: fn}
		case <-d.done:
			return nil
		}
	}
}

// Pending returns the number of queued callbacks.
func (d *Dispatcher) Pending() int {
	return len(d.ch)
}

// Close drops queued and future callbacks and unblocks senders.
func (d *Dispatcher) Close() {
	d.once.Do(func() { close(d.done) })
}
