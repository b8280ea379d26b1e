// Package styles holds colour helpers shared by UI components.
package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor validates a "#rrggbb" hex string and returns it as a
// lipgloss colour. An empty string yields the terminal default.
func ParseColor(hex string) (lipgloss.TerminalColor, error) {
	if hex == "" {
		return lipgloss.NoColor{}, nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("invalid colour %q: %w", hex, err)
	}
	return lipgloss.Color(c.Hex()), nil
}

// Dim blends hex towards black by amount in [0,1].
// Used for the paused thumb so it reads as inactive.
func Dim(hex string, amount float64) lipgloss.TerminalColor {
	c, err := colorful.Hex(hex)
	if err != nil {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(c.BlendHcl(colorful.Color{}, amount).Clamped().Hex())
}
