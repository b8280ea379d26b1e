package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/scrubber/internal/ui/playerbar"
)

// handleMouseMsg turns surface gestures into controller calls.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	g := m.Surface.HandleMouse(msg)
	c := m.Controller

	switch g.Kind {
	case playerbar.GestureTap:
		m.toggle()
	case playerbar.GestureDragStart:
		// A drag takes over any keyboard session; its settle timer goes stale.
		m.KeyScrubbing = false
		m.ScrubVersion++
		c.OnScrubStart()
		c.OnScrubUpdate(g.Fraction)
	case playerbar.GestureDragChanged:
		c.OnScrubUpdate(g.Fraction)
	case playerbar.GestureDragEnd:
		total := c.Snapshot().TotalTime
		m.endScrub(fractionOf(m.Surface.Fraction(), total))
	case playerbar.GestureNone:
	}
	return m, nil
}
