package playerbar

import "strings"

const (
	filledCell = "━"
	emptyCell  = "─"
	thumbCell  = "●"
)

// thumbIndex maps fraction onto a cell of a width-cell track.
func thumbIndex(fraction float64, width int) int {
	if width <= 1 {
		return 0
	}
	return min(max(int(fraction*float64(width-1)+0.5), 0), width-1)
}

// fractionAt is the inverse of thumbIndex for a cell offset into the track.
func fractionAt(cell, width int) float64 {
	if width <= 1 {
		return 0
	}
	return min(max(float64(cell)/float64(width-1), 0), 1)
}

func (s *Surface) renderSlider(width int) string {
	if width <= 0 {
		return ""
	}
	idx := thumbIndex(s.fraction, width)
	thumb := s.styles.thumb
	if !s.playing {
		thumb = s.styles.paused
	}
	var b strings.Builder
	b.WriteString(s.styles.filled.Render(strings.Repeat(filledCell, idx)))
	b.WriteString(thumb.Render(thumbCell))
	b.WriteString(s.styles.empty.Render(strings.Repeat(emptyCell, width-idx-1)))
	return b.String()
}
