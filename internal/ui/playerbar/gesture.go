package playerbar

import tea "github.com/charmbracelet/bubbletea"

// GestureKind identifies what the user did on the bar.
type GestureKind int

const (
	GestureNone GestureKind = iota
	GestureTap
	GestureDragStart
	GestureDragChanged
	GestureDragEnd
)

func (k GestureKind) String() string {
	switch k {
	case GestureNone:
		return "None"
	case GestureTap:
		return "Tap"
	case GestureDragStart:
		return "DragStart"
	case GestureDragChanged:
		return "DragChanged"
	case GestureDragEnd:
		return "DragEnd"
	default:
		return "Unknown"
	}
}

// Gesture is a mouse interaction translated into slider terms.
// Fraction is set for the drag kinds; DragStart carries the press position.
type Gesture struct {
	Kind     GestureKind
	Fraction float64
}

// HandleMouse hit-tests msg against the last layout.
// A left press on the button taps; a left press on the slider starts a
// drag that follows motion anywhere on screen until release.
func (s *Surface) HandleMouse(msg tea.MouseMsg) Gesture {
	l := s.layout()
	col := msg.X - s.originX - frameOffset
	row := msg.Y - s.originY

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !s.controls || row != 1 {
			return Gesture{}
		}
		if col >= l.buttonStart && col < l.buttonEnd {
			return Gesture{Kind: GestureTap}
		}
		if col >= l.sliderStart && col < l.sliderStart+l.sliderWidth {
			s.dragging = true
			return Gesture{Kind: GestureDragStart, Fraction: fractionAt(col-l.sliderStart, l.sliderWidth)}
		}
	case tea.MouseActionMotion:
		if s.dragging {
			return Gesture{Kind: GestureDragChanged, Fraction: fractionAt(col-l.sliderStart, l.sliderWidth)}
		}
	case tea.MouseActionRelease:
		if s.dragging {
			s.dragging = false
			return Gesture{Kind: GestureDragEnd, Fraction: fractionAt(col-l.sliderStart, l.sliderWidth)}
		}
	}
	return Gesture{}
}
