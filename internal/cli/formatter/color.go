package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette, gruvbox dark. Green, yellow and red double as the credit-window
// states: inside the window, short of minCredits, over maxCredits.
var (
	ColorOK     = lipgloss.Color("#8ec07c")
	ColorShort  = lipgloss.Color("#fabd2f")
	ColorOver   = lipgloss.Color("#fb4934")
	ColorDay    = lipgloss.Color("#83a598")
	ColorAccent = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleOK     = lipgloss.NewStyle().Foreground(ColorOK)
	StyleShort  = lipgloss.NewStyle().Foreground(ColorShort)
	StyleOver   = lipgloss.NewStyle().Foreground(ColorOver)
	StyleDay    = lipgloss.NewStyle().Foreground(ColorDay).Bold(true)
	StyleAccent = lipgloss.NewStyle().Foreground(ColorAccent)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// CreditStyle colors a credit total against the requested window: green
// inside it, yellow below the floor, red above the ceiling.
func CreditStyle(total, minCredits, maxCredits int) lipgloss.Style {
	switch {
	case total > maxCredits:
		return StyleOver
	case total < minCredits:
		return StyleShort
	default:
		return StyleOK
	}
}

// ScoreStyle colors a score term by sign.
func ScoreStyle(x float64) lipgloss.Style {
	switch {
	case x > 0:
		return StyleOK
	case x < 0:
		return StyleOver
	default:
		return StyleDim
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
