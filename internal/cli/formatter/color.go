package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/pulse/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PriorityPill returns a colored priority indicator.
func PriorityPill(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return StyleRed.Render("● high")
	case domain.PriorityMedium:
		return StyleYellow.Render("● medium")
	default:
		return StyleDim.Render("● low")
	}
}

// TrendIndicator returns an arrow for a stress trend. For stress, rising is
// bad and falling is good.
func TrendIndicator(trend domain.Trend) string {
	switch trend {
	case domain.TrendIncreasing:
		return StyleRed.Render("▲ increasing")
	case domain.TrendDecreasing:
		return StyleGreen.Render("▼ decreasing")
	default:
		return StyleDim.Render("▬ stable")
	}
}

// EnergyBadge returns a colored energy level indicator.
func EnergyBadge(level domain.EnergyLevel) string {
	switch level {
	case domain.EnergyHigh:
		return StyleGreen.Render("⚡ high energy")
	case domain.EnergyMedium:
		return StyleYellow.Render("⚡ medium energy")
	default:
		return StyleDim.Render("⚡ low energy")
	}
}

// SourceBadge marks which strategy produced a context.
func SourceBadge(source string) string {
	if source == domain.SourceAI {
		return StylePurple.Render("[ai]")
	}
	return StyleDim.Render("[rules]")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
