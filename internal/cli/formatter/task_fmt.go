package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pulse/internal/domain"
)

// FormatDraft renders an interpreted task draft for confirmation.
func FormatDraft(draft *domain.TaskDraft) string {
	var b strings.Builder

	b.WriteString(Bold(draft.Title) + "\n")
	if draft.Description != "" && draft.Description != draft.Title {
		b.WriteString(Dim(draft.Description) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", CategoryBadge(draft.Category), PriorityPill(draft.Priority)))
	b.WriteString(fmt.Sprintf("%s  %s\n",
		StyleFg.Render(draft.Date.Format("Mon, Jan 2")),
		Dim(fmt.Sprintf("%s - %s", draft.StartTime, draft.EndTime))))

	if draft.AIGenerated {
		b.WriteString("\n" + StylePurple.Render("interpreted by ai") + "\n")
	}
	if draft.Error != "" {
		b.WriteString("\n" + StyleYellow.Render("NOTE: "+draft.Error) + "\n")
	}

	return RenderBox("Draft", b.String())
}

// FormatTaskList renders tasks as an aligned table.
func FormatTaskList(tasks []domain.Task) string {
	if len(tasks) == 0 {
		return Dim("No tasks.") + "\n"
	}

	headers := []string{"ID", "DATE", "TIME", "TITLE", "CATEGORY", "PRIORITY", "DONE"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		span := t.StartTime
		if t.EndTime != "" {
			span += "-" + t.EndTime
		}
		done := StyleDim.Render("○")
		if t.Completed {
			done = StyleGreen.Render("✔")
		}
		rows = append(rows, []string{
			TruncID(t.ID),
			StyleFg.Render(t.Date.Format("2006-01-02")),
			Dim(span),
			Bold(t.Title),
			CategoryBadge(t.Category),
			PriorityPill(t.Priority),
			done,
		})
	}
	return RenderTable(headers, rows)
}

// CategoryBadge returns a capitalized, purple-styled category label.
func CategoryBadge(c domain.Category) string {
	s := string(c)
	if s == "" {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(strings.ToUpper(s[:1]) + s[1:])
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
