package app

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/scrubber/internal/errmsg"
	"github.com/llehouerou/scrubber/internal/scrub"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	if nm, ok := next.(Model); ok && !nm.quitting {
		nm.publish()
	}
	return next, cmd
}

func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case DispatchMsg:
		if msg.fn != nil {
			msg.fn()
		}
		m.syncError()
		return m, m.Dispatcher.Watch()

	case ScrubSettleMsg:
		return m.handleScrubSettle(msg)

	case spinner.TickMsg:
		return m, m.Surface.UpdateSpinner(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Surface.SetWidth(msg.Width)
		m.Surface.SetOrigin(0, 0)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

// syncError surfaces a load failure once the controller reports it.
func (m *Model) syncError() {
	if m.ErrorMsg != "" || m.Controller.State() != scrub.StateFailed {
		return
	}
	m.ErrorMsg = errmsg.FormatWith(errmsg.OpMediaLoad, m.Media.DisplayTitle(), m.Controller.Err())
	m.Surface.SetLoadingVisible(false)
}

// Close disposes the controller and stops the dispatcher. Safe to call
// more than once.
func (m Model) Close() error {
	err := m.Controller.Dispose()
	m.Dispatcher.Close()
	return err
}

// quit tears the controller down and stops the program.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if err := m.Close(); err != nil {
		m.log.WithError(err).Warn("dispose controller")
	}
	m.quitting = true
	return m, tea.Quit
}
