package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pulse/internal/insight"
)

const wellnessBarWidth = 10

// FormatWellness renders the stress, balance, and break compliance panels.
func FormatWellness(snap *insight.WellnessSnapshot) string {
	var b strings.Builder

	b.WriteString(Header("Stress"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s\n",
		stressBar(snap.Stress.Current),
		TrendIndicator(snap.Stress.Trend)))

	b.WriteString("\n")
	b.WriteString(Header("Work / Life"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Balance score %s\n", RenderBar(snap.Balance.Score/100, wellnessBarWidth)))
	b.WriteString(fmt.Sprintf("%s work, %s personal over the last week\n",
		Bold(fmt.Sprintf("%.0f%%", snap.Balance.WorkPercentage)),
		Bold(fmt.Sprintf("%.0f%%", snap.Balance.PersonalPercentage))))

	b.WriteString("\n")
	b.WriteString(Header("Breaks"))
	b.WriteString("\n")
	if snap.Breaks.BreaksPlanned == 0 {
		b.WriteString(Dim("No breaks planned in the window") + "\n")
	} else {
		b.WriteString(fmt.Sprintf("Taken %s of %s planned %s\n",
			Bold(fmt.Sprintf("%d", snap.Breaks.BreaksTaken)),
			Bold(fmt.Sprintf("%d", snap.Breaks.BreaksPlanned)),
			Dim(fmt.Sprintf("(avg %.0fm)", snap.Breaks.AverageDuration))))
		b.WriteString(fmt.Sprintf("Compliance %s\n", RenderBar(snap.Breaks.Score/100, wellnessBarWidth)))
	}

	return RenderBox("Wellness", b.String())
}

// stressBar inverts the usual bar coloring: for stress, low is green and
// high is red.
func stressBar(current float64) string {
	pct := current / 100
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	filled := int(pct * wellnessBarWidth)
	if filled > wellnessBarWidth {
		filled = wellnessBarWidth
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, wellnessBarWidth-filled)

	style := StyleGreen
	if pct >= 0.66 {
		style = StyleRed
	} else if pct >= 0.33 {
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f/100", style.Render(bar), current)
}
