package intelligence

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pulse/internal/domain"
)

// aiContextResponse is the JSON shape the LLM must return for context
// synthesis. Only narrative fields; counts and timestamps are computed
// locally and stamped onto the result afterwards.
type aiContextResponse struct {
	EnergyLevel            string `json:"energy_level"`
	FocusState             string `json:"focus_state"`
	FocusTimeLeft          string `json:"focus_time_left"`
	FocusDetails           string `json:"focus_details"`
	Recommendation         string `json:"recommendation"`
	RecommendationPriority string `json:"recommendation_priority"`
	SuggestedActivity      string `json:"suggested_activity"`
	NextBreak              string `json:"next_break"`
	Insight                string `json:"insight"`
	WeatherImpact          string `json:"weather_impact"`
	LocationContext        string `json:"location_context"`
}

// validateContextResponse rejects model output with out-of-range enums or
// missing narrative. A rejection sends the request down the rules strategy.
func validateContextResponse(r aiContextResponse) error {
	if !domain.ValidEnergyLevels[r.EnergyLevel] {
		return fmt.Errorf("energy_level %q not recognized", r.EnergyLevel)
	}
	if !domain.ValidFocusStates[r.FocusState] {
		return fmt.Errorf("focus_state %q not recognized", r.FocusState)
	}
	if strings.TrimSpace(r.Insight) == "" {
		return fmt.Errorf("insight is empty")
	}
	if strings.TrimSpace(r.Recommendation) == "" {
		return fmt.Errorf("recommendation is empty")
	}
	return nil
}

// applyContextResponse merges validated narrative fields onto a rules-built
// context, keeping the locally computed weather and urgency facts.
func applyContextResponse(base *domain.SmartContext, r aiContextResponse) *domain.SmartContext {
	out := *base
	out.EnergyLevel = domain.EnergyLevel(r.EnergyLevel)
	out.Focus.State = domain.FocusState(r.FocusState)
	if r.FocusTimeLeft != "" {
		out.Focus.TimeLeft = r.FocusTimeLeft
	}
	if r.FocusDetails != "" {
		out.Focus.Details = r.FocusDetails
	}
	out.Focus.Recommendation = r.Recommendation
	if domain.ValidPriorities[r.RecommendationPriority] {
		out.Focus.Priority = domain.Priority(r.RecommendationPriority)
	}
	if r.SuggestedActivity != "" {
		out.SuggestedActivity = r.SuggestedActivity
	}
	if r.NextBreak != "" {
		out.NextBreak = r.NextBreak
	}
	out.Insight = r.Insight
	if r.WeatherImpact != "" && base.Weather.Available {
		out.WeatherImpact = r.WeatherImpact
	}
	if r.LocationContext != "" && base.LocationContext != "" {
		out.LocationContext = r.LocationContext
	}
	out.Source = domain.SourceAI
	return &out
}
