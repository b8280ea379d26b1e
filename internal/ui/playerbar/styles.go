package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/scrubber/internal/ui/styles"
)

// Colors are the three slider colours as "#rrggbb" strings.
// Empty values use the terminal default.
type Colors struct {
	Slider string // filled part of the track
	Track  string // empty part of the track
	Thumb  string
}

type barStyles struct {
	frame   lipgloss.Style
	filled  lipgloss.Style
	empty   lipgloss.Style
	thumb   lipgloss.Style
	paused  lipgloss.Style // thumb while not playing
	button  lipgloss.Style
	label   lipgloss.Style
	title   lipgloss.Style
	loading lipgloss.Style
}

func newBarStyles(c Colors) (barStyles, error) {
	slider, err := styles.ParseColor(c.Slider)
	if err != nil {
		return barStyles{}, err
	}
	track, err := styles.ParseColor(c.Track)
	if err != nil {
		return barStyles{}, err
	}
	thumb, err := styles.ParseColor(c.Thumb)
	if err != nil {
		return barStyles{}, err
	}
	paused := thumb
	if c.Thumb != "" {
		paused = styles.Dim(c.Thumb, 0.4)
	}
	return barStyles{
		frame: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		filled:  lipgloss.NewStyle().Foreground(slider),
		empty:   lipgloss.NewStyle().Foreground(track),
		thumb:   lipgloss.NewStyle().Foreground(thumb),
		paused:  lipgloss.NewStyle().Foreground(paused),
		button:  lipgloss.NewStyle().Bold(true),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		title:   lipgloss.NewStyle().Bold(true),
		loading: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}, nil
}
