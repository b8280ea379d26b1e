package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ScrubSettleCmd returns a command that sends ScrubSettleMsg after delay.
func ScrubSettleCmd(delay time.Duration, version int) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return ScrubSettleMsg{Version: version}
	})
}
