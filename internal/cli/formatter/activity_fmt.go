package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/pulse/internal/insight"
)

// Heat-map cell shades from empty to full intensity.
var heatStyles = []lipgloss.Style{
	StyleDim,
	lipgloss.NewStyle().Foreground(lipgloss.Color("#665c54")),
	StyleYellow,
	lipgloss.NewStyle().Foreground(lipgloss.Color("#fe8019")),
	StyleGreen,
}

// FormatActivity renders the 14-day heat-map plus the productivity rankings.
// Rows are days oldest first; columns are the time slots.
func FormatActivity(snap *insight.ActivitySnapshot) string {
	var b strings.Builder

	headers := []string{"DAY"}
	if len(snap.Days) > 0 {
		for _, sa := range snap.Days[0].Slots {
			headers = append(headers, string(sa.Slot))
		}
	}

	rows := make([][]string, 0, len(snap.Days))
	for _, day := range snap.Days {
		row := []string{Dim(day.Date.Format("Mon 02"))}
		for _, sa := range day.Slots {
			row = append(row, heatCell(sa.Intensity, sa.Tasks))
		}
		rows = append(rows, row)
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	if snap.MostProductiveTime.Slot != "" {
		b.WriteString(fmt.Sprintf("Most productive time: %s %s\n",
			Bold(string(snap.MostProductiveTime.Slot)),
			Dim(fmt.Sprintf("(%.0f%% completed)", snap.MostProductiveTime.CompletionRate*100))))
	} else {
		b.WriteString(Dim("Most productive time: not enough data yet") + "\n")
	}
	if snap.MostProductiveDay.Day != "" {
		b.WriteString(fmt.Sprintf("Most productive day:  %s %s\n",
			Bold(snap.MostProductiveDay.Day),
			Dim(fmt.Sprintf("(%.0f%% completed)", snap.MostProductiveDay.CompletionRate*100))))
	} else {
		b.WriteString(Dim("Most productive day:  not enough data yet") + "\n")
	}

	return RenderBox("Activity", b.String())
}

// heatCell renders one slot as a shaded block with its task count.
func heatCell(intensity float64, tasks int) string {
	if tasks == 0 {
		return StyleDim.Render("·")
	}
	idx := int(intensity * float64(len(heatStyles)))
	if idx >= len(heatStyles) {
		idx = len(heatStyles) - 1
	}
	return heatStyles[idx].Render(fmt.Sprintf("%s %d", filledBlock, tasks))
}
