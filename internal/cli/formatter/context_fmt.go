package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
)

// FormatContext formats a SmartContext into the styled dashboard card.
func FormatContext(sc *domain.SmartContext, now time.Time) string {
	var b strings.Builder

	b.WriteString(EnergyBadge(sc.EnergyLevel))
	b.WriteString("  ")
	b.WriteString(SourceBadge(sc.Source))
	b.WriteString("  ")
	b.WriteString(Dim(HumanTimestamp(sc.LastUpdated, now)))
	b.WriteString("\n\n")

	b.WriteString(Header("Focus"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", focusPill(sc.Focus.State), Dim(sc.Focus.TimeLeft)))
	if sc.Focus.Details != "" {
		b.WriteString(StyleFg.Render(sc.Focus.Details) + "\n")
	}
	b.WriteString(fmt.Sprintf("%s %s\n", PriorityPill(sc.Focus.Priority), Bold(sc.Focus.Recommendation)))

	b.WriteString("\n")
	b.WriteString(Header("Now"))
	b.WriteString("\n")
	if sc.UrgentTasks.Count > 0 {
		line := fmt.Sprintf("%d urgent task(s)", sc.UrgentTasks.Count)
		if sc.UrgentTasks.NextDue != nil {
			line += ", next at " + sc.UrgentTasks.NextDue.Format("15:04")
		}
		b.WriteString(StyleRed.Render(line) + "\n")
	} else {
		b.WriteString(StyleGreen.Render("Nothing urgent") + "\n")
	}
	b.WriteString(StyleFg.Render("Suggested: "+sc.SuggestedActivity) + "\n")
	b.WriteString(Dim("Next break: "+sc.NextBreak) + "\n")

	b.WriteString("\n")
	b.WriteString(Header("Insight"))
	b.WriteString("\n")
	b.WriteString(StyleFg.Render(sc.Insight) + "\n")

	if sc.Weather.Available {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s %s, %.0f°C\n", sc.Weather.Icon, sc.Weather.Condition, sc.Weather.Temp))
		if sc.WeatherImpact != "" {
			b.WriteString(Dim(sc.WeatherImpact) + "\n")
		}
	}
	if sc.LocationContext != "" {
		b.WriteString(Dim(sc.LocationContext) + "\n")
	}

	return RenderBox("Context", b.String())
}

func focusPill(state domain.FocusState) string {
	switch state {
	case domain.FocusPeak:
		return StyleGreen.Render("● peak")
	case domain.FocusProductive:
		return StyleGreen.Render("● productive")
	case domain.FocusSteady:
		return StyleBlue.Render("● steady")
	case domain.FocusWindDown:
		return StyleYellow.Render("○ wind down")
	default:
		return StyleDim.Render("○ rest")
	}
}
