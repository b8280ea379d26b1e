package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/scrubber/internal/keymap"
)

// handleKeyMsg routes a key press through the keymap.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Keys.ResolveMsg(msg) {
	case keymap.ActionQuit:
		return m.quit()
	case keymap.ActionHelp:
		m.ShowHelp = !m.ShowHelp
	case keymap.ActionPlayPause:
		m.toggle()
	case keymap.ActionSeekForward:
		return m.scrubBy(m.seekStep)
	case keymap.ActionSeekBack:
		return m.scrubBy(-m.seekStep)
	case keymap.ActionSeekForwardLong:
		return m.scrubBy(m.seekStep * keymap.LongSeekFactor)
	case keymap.ActionSeekBackLong:
		return m.scrubBy(-m.seekStep * keymap.LongSeekFactor)
	case keymap.ActionRewind:
		return m.scrubTo(0)
	}
	return m, nil
}

// scrubBy moves the keyboard scrub target by delta. The first press
// starts from the player position; later ones accumulate.
func (m Model) scrubBy(delta time.Duration) (tea.Model, tea.Cmd) {
	base := m.Player.CurrentTime()
	if m.KeyScrubbing && m.Controller.Scrubbing() {
		base = m.ScrubTarget
	}
	return m.scrubTo(base + delta)
}

// scrubTo seeks to target inside a keyboard scrub session and re-arms
// the settle timer that closes it.
func (m Model) scrubTo(target time.Duration) (tea.Model, tea.Cmd) {
	c := m.Controller
	snap := c.Snapshot()
	if !c.State().IsReady() || !snap.TotalKnown || snap.TotalTime <= 0 || m.Surface.Dragging() {
		return m, nil
	}
	target = min(max(target, 0), snap.TotalTime)

	if !m.KeyScrubbing || !c.Scrubbing() {
		c.OnScrubStart()
		m.KeyScrubbing = true
	}
	m.ScrubTarget = target
	c.OnScrubUpdate(float64(target) / float64(snap.TotalTime))

	m.ScrubVersion++
	return m, ScrubSettleCmd(m.settle, m.ScrubVersion)
}

// handleScrubSettle closes the keyboard scrub once keys stop arriving.
func (m Model) handleScrubSettle(msg ScrubSettleMsg) (tea.Model, tea.Cmd) {
	if msg.Version != m.ScrubVersion || !m.KeyScrubbing {
		return m, nil
	}
	m.settleKeyScrub()
	return m, nil
}

// settleKeyScrub closes an open keyboard scrub now and voids its timer.
func (m *Model) settleKeyScrub() {
	if !m.KeyScrubbing {
		return
	}
	m.KeyScrubbing = false
	m.ScrubVersion++
	m.endScrub(m.ScrubTarget)
}

// toggle is a play/pause tap. A pending keyboard scrub is settled first
// so the tap acts on the state it leaves behind.
func (m *Model) toggle() {
	m.settleKeyScrub()
	m.Controller.OnToggleTap()
}

// endScrub closes the controller session and tells MPRIS clients where
// playback jumped to.
func (m Model) endScrub(pos time.Duration) {
	if !m.Controller.Scrubbing() {
		return
	}
	m.Controller.OnScrubEnd()
	if m.Board != nil {
		m.Board.Seeked(pos)
	}
}
