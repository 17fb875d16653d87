package intelligence

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/timeutil"
)

const (
	maxTitleLen      = 60
	defaultStartTime = "09:00"
)

// categoryKeywords maps trigger words to categories. First match in
// Categories() order wins so interpretation is deterministic.
var categoryKeywords = map[domain.Category][]string{
	domain.CategoryWork:     {"meeting", "standup", "email", "report", "deadline", "client", "project", "review", "presentation", "call"},
	domain.CategoryHealth:   {"gym", "workout", "run", "doctor", "dentist", "yoga", "exercise", "walk", "meditation"},
	domain.CategoryStudy:    {"study", "learn", "course", "read", "lecture", "exam", "homework", "practice"},
	domain.CategoryShopping: {"buy", "shopping", "groceries", "order", "pick up", "store"},
	domain.CategoryFamily:   {"family", "mom", "dad", "kids", "dinner with", "birthday", "visit"},
	domain.CategoryLeisure:  {"movie", "game", "relax", "hobby", "music", "party", "hang out"},
}

var highPriorityKeywords = []string{"urgent", "important", "asap", "critical", "immediately", "must"}
var lowPriorityKeywords = []string{"sometime", "eventually", "maybe", "whenever", "no rush"}

// clockPattern matches explicit times: "9:30", "14:00", "9am", "5:15 pm".
// A bare number without a colon or meridiem is not a time.
var clockPattern = regexp.MustCompile(`(?i)\b(\d{1,2}):(\d{2})\s*(am|pm)?\b|\b(\d{1,2})\s*(am|pm)\b`)

// InterpretWithRules converts free text into a task draft without a model.
// Deterministic for a fixed now; never fails.
func InterpretWithRules(text string, now time.Time) *domain.TaskDraft {
	text = strings.TrimSpace(text)
	lower := strings.ToLower(text)

	draft := &domain.TaskDraft{
		Title:       extractTitle(text),
		Description: text,
		Category:    matchCategory(lower),
		Priority:    matchPriority(lower),
		Date:        matchDate(lower, now),
		StartTime:   defaultStartTime,
	}
	if start, ok := matchClock(text); ok {
		draft.StartTime = start
	}
	draft.EndTime = oneHourAfter(draft.StartTime)
	return draft
}

// extractTitle takes the first sentence, capped at maxTitleLen on a word
// boundary where possible.
func extractTitle(text string) string {
	title := text
	for _, sep := range []string{". ", "! ", "? ", "\n"} {
		if idx := strings.Index(title, sep); idx > 0 {
			title = title[:idx]
		}
	}
	title = strings.TrimRight(title, ".!?")
	if len(title) <= maxTitleLen {
		return title
	}
	cut := title[:maxTitleLen]
	if idx := strings.LastIndex(cut, " "); idx > maxTitleLen/2 {
		cut = cut[:idx]
	}
	return cut
}

func matchCategory(lower string) domain.Category {
	for _, c := range domain.Categories() {
		for _, kw := range categoryKeywords[c] {
			if strings.Contains(lower, kw) {
				return c
			}
		}
	}
	return domain.CategoryWork
}

func matchPriority(lower string) domain.Priority {
	for _, kw := range highPriorityKeywords {
		if strings.Contains(lower, kw) {
			return domain.PriorityHigh
		}
	}
	for _, kw := range lowPriorityKeywords {
		if strings.Contains(lower, kw) {
			return domain.PriorityLow
		}
	}
	return domain.PriorityMedium
}

func matchDate(lower string, now time.Time) time.Time {
	today := timeutil.Midnight(now)
	switch {
	case strings.Contains(lower, "tomorrow"):
		return today.AddDate(0, 0, 1)
	case strings.Contains(lower, "today"), strings.Contains(lower, "tonight"):
		return today
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.Contains(lower, strings.ToLower(wd.String())) {
			days := (int(wd) - int(now.Weekday()) + 7) % 7
			if days == 0 {
				days = 7
			}
			return today.AddDate(0, 0, days)
		}
	}
	return today
}

// matchClock finds the first explicit time mention and normalizes it to
// 24-hour "HH:MM".
func matchClock(text string) (string, bool) {
	m := clockPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}

	var hour, minute int
	var meridiem string
	if m[1] != "" {
		hour, _ = strconv.Atoi(m[1])
		minute, _ = strconv.Atoi(m[2])
		meridiem = strings.ToLower(m[3])
	} else {
		hour, _ = strconv.Atoi(m[4])
		meridiem = strings.ToLower(m[5])
	}
	if hour > 23 || minute > 59 {
		return "", false
	}

	switch meridiem {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), true
}

func oneHourAfter(start string) string {
	minutes := timeutil.ClockMinutes(start)
	if minutes < 0 {
		return ""
	}
	end := (minutes + 60) % (24 * 60)
	return fmt.Sprintf("%02d:%02d", end/60, end%60)
}
