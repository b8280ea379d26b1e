// Package playerbar renders the scrub bar and turns mouse input into gestures.
package playerbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/scrubber/internal/scrub"
	"github.com/llehouerou/scrubber/internal/ui/render"
)

// Height is the number of terminal rows the bar occupies.
const Height = 3 // top border + content + bottom border

const (
	playButton  = "[▶]"
	pauseButton = "[⏸]"

	// frameOffset is the border plus left padding before content starts.
	frameOffset = 2
	minWidth    = 24
)

// Verify Surface implements scrub.PresentationSurface at compile time.
var _ scrub.PresentationSurface = (*Surface)(nil)

// Surface is the terminal presentation of the controller.
// It keeps whatever the controller last pushed and renders it on View.
type Surface struct {
	current  string
	total    string
	fraction float64
	loading  bool
	controls bool
	playing  bool

	title    string
	width    int
	originX  int
	originY  int
	dragging bool

	spinner spinner.Model
	styles  barStyles
}

// New creates a surface for title. It fails on invalid colours.
func New(title string, colors Colors) (*Surface, error) {
	st, err := newBarStyles(colors)
	if err != nil {
		return nil, err
	}
	return &Surface{
		current: scrub.FormatClock(0),
		total:   scrub.FormatClock(0),
		title:   render.Sanitize(title),
		width:   80,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(st.loading)),
		styles:  st,
	}, nil
}

func (s *Surface) SetCurrentTimeLabel(text string) { s.current = text }
func (s *Surface) SetTotalTimeLabel(text string)   { s.total = text }
func (s *Surface) SetSliderFraction(f float64)     { s.fraction = f }
func (s *Surface) SetLoadingVisible(v bool)        { s.loading = v }
func (s *Surface) SetPlaying(v bool)               { s.playing = v }

func (s *Surface) SetControlsVisible(v bool) {
	s.controls = v
	if !v {
		s.dragging = false
	}
}

func (s *Surface) CurrentLabel() string  { return s.current }
func (s *Surface) TotalLabel() string    { return s.total }
func (s *Surface) Fraction() float64     { return s.fraction }
func (s *Surface) Loading() bool         { return s.loading }
func (s *Surface) ControlsVisible() bool { return s.controls }
func (s *Surface) Playing() bool         { return s.playing }
func (s *Surface) Dragging() bool        { return s.dragging }

// SetWidth sets the total rendered width, borders included.
func (s *Surface) SetWidth(width int) {
	s.width = max(width, minWidth)
}

// SetOrigin records the screen cell of the bar's top-left corner,
// used to hit-test mouse events.
func (s *Surface) SetOrigin(x, y int) {
	s.originX, s.originY = x, y
}

// SpinnerTick starts the loading spinner.
func (s *Surface) SpinnerTick() tea.Msg {
	return s.spinner.Tick()
}

// UpdateSpinner advances the spinner while loading. It stops re-arming
// once loading is hidden.
func (s *Surface) UpdateSpinner(msg spinner.TickMsg) tea.Cmd {
	if !s.loading {
		return nil
	}
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return cmd
}

// layout holds content-relative cell offsets of the controls row.
type layout struct {
	buttonStart, buttonEnd int
	labelWidth             int
	sliderStart            int
	sliderWidth            int
}

func (s *Surface) innerWidth() int {
	return s.width - 2*frameOffset
}

func (s *Surface) layout() layout {
	buttonWidth := lipgloss.Width(playButton)
	labelWidth := max(lipgloss.Width(s.current), lipgloss.Width(s.total))
	sliderStart := buttonWidth + 1 + labelWidth + 1
	// button, label, slider and total label are separated by single spaces
	sliderWidth := max(s.innerWidth()-sliderStart-1-lipgloss.Width(s.total), 1)
	return layout{
		buttonStart: 0,
		buttonEnd:   buttonWidth,
		labelWidth:  labelWidth,
		sliderStart: sliderStart,
		sliderWidth: sliderWidth,
	}
}

// View renders the bar at its current width.
func (s *Surface) View() string {
	var content string
	switch {
	case s.loading:
		content = s.spinner.View() + " " +
			s.styles.loading.Render(render.TruncateEllipsis("Loading "+s.title, s.innerWidth()-2))
	case s.controls:
		content = s.renderControls()
	default:
		content = s.styles.title.Render(render.TruncateEllipsis(s.title, s.innerWidth()))
	}
	return s.styles.frame.Width(s.width - 2).Render(content)
}

func (s *Surface) renderControls() string {
	l := s.layout()
	button := playButton
	if s.playing {
		button = pauseButton
	}
	var b strings.Builder
	b.WriteString(s.styles.button.Render(button))
	b.WriteString(" ")
	b.WriteString(s.styles.label.Render(render.PadLeft(s.current, l.labelWidth)))
	b.WriteString(" ")
	b.WriteString(s.renderSlider(l.sliderWidth))
	b.WriteString(" ")
	b.WriteString(s.styles.label.Render(s.total))
	return b.String()
}
