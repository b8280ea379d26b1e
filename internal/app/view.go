package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/llehouerou/scrubber/internal/keymap"
	"github.com/llehouerou/scrubber/internal/ui/render"
)

var (
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	keyStyle   = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Padding(0, 2)
)

// View renders the application UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{m.Surface.View(), m.renderStatusLine()}
	if m.ShowHelp {
		lines = append(lines, m.renderHelp())
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStatusLine() string {
	width := max(m.Width, 1)
	if m.ErrorMsg != "" {
		return errorStyle.Render(render.TruncateEllipsis(m.ErrorMsg, width))
	}
	hint := m.Keys.Hint(
		keymap.HintItem{Action: keymap.ActionPlayPause, Label: "play/pause"},
		keymap.HintItem{Action: keymap.ActionSeekBack, Label: "back"},
		keymap.HintItem{Action: keymap.ActionSeekForward, Label: "forward"},
		keymap.HintItem{Action: keymap.ActionHelp, Label: "help"},
		keymap.HintItem{Action: keymap.ActionQuit, Label: "quit"},
	)
	return hintStyle.Render(render.TruncateEllipsis(hint, width))
}

// renderHelp lists every binding, grouped by context.
func (m Model) renderHelp() string {
	var b strings.Builder
	for _, ctx := range []string{"playback", "global"} {
		for _, kb := range keymap.ByContext(ctx) {
			keys := lo.Map(kb.Keys, func(k string, _ int) string { return keymap.DisplayKey(k) })
			b.WriteString(keyStyle.Render(render.Pad(strings.Join(keys, ", "), 18)))
			b.WriteString(kb.Description)
			b.WriteString("\n")
		}
	}
	return helpStyle.Render(strings.TrimRight(b.String(), "\n"))
}
