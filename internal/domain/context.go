package domain

import "time"

// Context sources. Every SmartContext records which strategy produced it.
const (
	SourceRules = "rules"
	SourceAI    = "ai"
)

// WeatherSummary is the environmental slice merged into a SmartContext.
// Available is false when the weather provider could not be reached; the
// other fields then hold zero values and must not be interpreted.
type WeatherSummary struct {
	Temp      float64 `json:"temp"`
	Condition string  `json:"condition"`
	Icon      string  `json:"icon"`
	Available bool    `json:"available"`
}

// UrgentTasks summarizes incomplete tasks that are high priority or due
// within the next 24 hours.
type UrgentTasks struct {
	Count   int        `json:"count"`
	NextDue *time.Time `json:"next_due,omitempty"`
}

// FocusStatus describes the user's current focus window.
type FocusStatus struct {
	State          FocusState `json:"state"`
	TimeLeft       string     `json:"time_left"`
	Details        string     `json:"details"`
	Recommendation string     `json:"recommendation"`
	Priority       Priority   `json:"priority"`
}

// SmartContext is the fused, UI-facing summary produced by the context
// synthesizer and held in the context cache.
type SmartContext struct {
	Weather           WeatherSummary `json:"weather"`
	UrgentTasks       UrgentTasks    `json:"urgent_tasks"`
	Focus             FocusStatus    `json:"focus"`
	EnergyLevel       EnergyLevel    `json:"energy_level"`
	SuggestedActivity string         `json:"suggested_activity"`
	NextBreak         string         `json:"next_break"`
	Insight           string         `json:"insight"`
	WeatherImpact     string         `json:"weather_impact"`
	LocationContext   string         `json:"location_context"`

	// Provenance. Source is "rules" or "ai"; Timestamp is when synthesis
	// ran, LastUpdated is when the value was last written to the cache.
	Source      string    `json:"source"`
	Timestamp   time.Time `json:"timestamp"`
	LastUpdated time.Time `json:"last_updated"`
}

// TaskDraft is a transient, not-yet-persisted task produced by the task
// interpreter. Error describes a degraded or fallback result; it never
// blocks draft creation.
type TaskDraft struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Priority    Priority  `json:"priority"`
	Date        time.Time `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	AIGenerated bool      `json:"ai_generated"`
	Error       string    `json:"error,omitempty"`
}
