package intelligence

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/providers"
	"github.com/alexanderramin/pulse/internal/timeutil"
)

// BuildRulesContext is the deterministic context strategy: a pure function
// of the input, reproducible for a fixed now. It is always available and is
// the guaranteed fallback for the AI strategy.
func BuildRulesContext(input ContextInput) *domain.SmartContext {
	hour := input.Now.Hour()
	energy, focus := energyAndFocus(hour)
	urgent, nextDue := urgentTasks(input.Tasks, input.Now)

	sc := &domain.SmartContext{
		Weather: domain.WeatherSummary{
			Temp:      input.Weather.Temp,
			Condition: input.Weather.Condition,
			Icon:      input.Weather.Icon,
			Available: input.Weather.Available,
		},
		UrgentTasks:       domain.UrgentTasks{Count: len(urgent), NextDue: nextDue},
		Focus:             focusStatus(hour, focus, urgent),
		EnergyLevel:       energy,
		SuggestedActivity: suggestedActivity(energy, input),
		NextBreak:         nextBreak(hour, input),
		Insight:           categoryInsight(input.Tasks),
		WeatherImpact:     weatherImpact(input.Weather),
		LocationContext:   locationContext(input.Location),
		Source:            domain.SourceRules,
	}
	return sc
}

// energyAndFocus maps the hour of day to fixed energy/focus bands.
func energyAndFocus(hour int) (domain.EnergyLevel, domain.FocusState) {
	switch {
	case hour >= 9 && hour < 11:
		return domain.EnergyHigh, domain.FocusPeak
	case hour >= 11 && hour < 14:
		return domain.EnergyMedium, domain.FocusProductive
	case hour >= 14 && hour < 16:
		return domain.EnergyMedium, domain.FocusProductive
	case hour >= 6 && hour < 9:
		return domain.EnergyMedium, domain.FocusSteady
	case hour >= 16 && hour < 18:
		return domain.EnergyMedium, domain.FocusSteady
	case hour >= 18 && hour < 21:
		return domain.EnergyLow, domain.FocusWindDown
	default:
		return domain.EnergyLow, domain.FocusRest
	}
}

// urgentTasks filters incomplete tasks that are high priority or due within
// 24 hours, sorted ascending by their canonical instant.
func urgentTasks(tasks []domain.Task, now time.Time) ([]domain.Task, *time.Time) {
	var urgent []domain.Task
	for _, task := range tasks {
		if task.Completed {
			continue
		}
		due := timeutil.Instant(task.Date, task.StartTime)
		within24h := due.After(now.Add(-time.Hour)) && due.Before(now.Add(24*time.Hour))
		if task.Priority == domain.PriorityHigh || within24h {
			urgent = append(urgent, task)
		}
	}
	sort.SliceStable(urgent, func(i, j int) bool {
		return timeutil.Instant(urgent[i].Date, urgent[i].StartTime).
			Before(timeutil.Instant(urgent[j].Date, urgent[j].StartTime))
	})

	if len(urgent) == 0 {
		return nil, nil
	}
	next := timeutil.Instant(urgent[0].Date, urgent[0].StartTime)
	return urgent, &next
}

func focusStatus(hour int, state domain.FocusState, urgent []domain.Task) domain.FocusStatus {
	status := domain.FocusStatus{
		State:    state,
		TimeLeft: focusWindowLeft(hour),
		Priority: domain.PriorityMedium,
	}

	switch state {
	case domain.FocusPeak:
		status.Details = "Morning peak: best hours for demanding work"
		status.Recommendation = "Tackle the hardest task on your list now"
	case domain.FocusProductive:
		status.Details = "Productive stretch: good for focused execution"
		status.Recommendation = "Work through your planned tasks one at a time"
	case domain.FocusSteady:
		status.Details = "Steady period: fine for routine work"
		status.Recommendation = "Handle routine tasks and quick wins"
	case domain.FocusWindDown:
		status.Details = "Winding down: energy is dropping"
		status.Recommendation = "Wrap up loose ends and plan tomorrow"
	default:
		status.Details = "Rest hours"
		status.Recommendation = "Step away; tasks can wait until morning"
	}

	if len(urgent) > 0 {
		status.Priority = domain.PriorityHigh
		status.Recommendation = fmt.Sprintf("Start with %q", urgent[0].Title)
	}
	return status
}

// focusWindowLeft reports time remaining in the current band, using the same
// boundaries as energyAndFocus.
func focusWindowLeft(hour int) string {
	boundaries := []int{6, 9, 11, 14, 16, 18, 21, 24}
	for _, b := range boundaries {
		if hour < b {
			left := b - hour
			if left == 1 {
				return "about 1 hour left"
			}
			return fmt.Sprintf("about %d hours left", left)
		}
	}
	return "about 6 hours left"
}

func suggestedActivity(energy domain.EnergyLevel, input ContextInput) string {
	switch energy {
	case domain.EnergyHigh:
		if input.Activity != nil && input.Activity.MostProductiveTime.Slot != "" {
			return fmt.Sprintf("deep work; your %s slot has the best completion rate", input.Activity.MostProductiveTime.Slot)
		}
		return "deep work on your most demanding task"
	case domain.EnergyMedium:
		return "steady progress on planned tasks"
	default:
		return "light tasks, review, or rest"
	}
}

func nextBreak(hour int, input ContextInput) string {
	if input.Wellness != nil && input.Wellness.Stress.Current > 70 {
		return "take a short break within the next 30 minutes"
	}
	if hour >= 21 || hour < 6 {
		return "no break needed; wind down for the day"
	}
	return fmt.Sprintf("around %02d:00", hour+1)
}

// categoryInsight derives a one-line insight from the most frequent
// completed-task category in the window.
func categoryInsight(tasks []domain.Task) string {
	counts := make(map[domain.Category]int)
	for _, task := range tasks {
		if task.Completed {
			counts[task.Category]++
		}
	}

	var best domain.Category
	bestCount := 0
	for _, c := range domain.Categories() {
		if counts[c] > bestCount {
			best = c
			bestCount = counts[c]
		}
	}
	if bestCount == 0 {
		return "Not much completed recently; a small win today would build momentum"
	}

	switch best {
	case domain.CategoryWork:
		return "Work tasks dominate your completed items; protect some personal time"
	case domain.CategoryHealth:
		return "You've been consistent with health tasks; keep the streak going"
	case domain.CategoryStudy:
		return "Strong study momentum lately; schedule reviews to retain it"
	case domain.CategoryLeisure:
		return "Plenty of leisure completed; a good base to take on bigger goals"
	case domain.CategoryShopping:
		return "Errands are getting done; your backlog should feel lighter"
	default:
		return "Family tasks are getting attention; that balance tends to pay off"
	}
}

// weatherImpact turns the current weather into a one-line planning note.
// Empty when weather is unavailable so callers can omit the line entirely.
func weatherImpact(w providers.Weather) string {
	if !w.Available {
		return ""
	}
	switch {
	case w.Temp >= 30:
		return "It's hot outside; schedule outdoor tasks for the morning or evening"
	case w.Temp <= 0:
		return "Freezing temperatures; allow extra time for anything outdoors"
	}
	switch w.Condition {
	case "rain", "storm":
		return "Wet weather ahead; indoor tasks are the safer bet today"
	case "snow":
		return "Snow today; plan around slower travel"
	case "clear":
		return "Clear skies; a good day to fit in outdoor tasks"
	default:
		return fmt.Sprintf("Current conditions: %s, %.0f°C", w.Condition, w.Temp)
	}
}

func locationContext(loc providers.Location) string {
	if !loc.Available || loc.City == "" {
		return ""
	}
	return fmt.Sprintf("Based in %s", loc.City)
}
