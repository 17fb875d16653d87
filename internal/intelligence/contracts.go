// Package intelligence implements the two dual-strategy pipelines of the
// engine: context synthesis and task interpretation. Each pipeline has a
// deterministic rule-based strategy that is always available and an
// LLM-backed strategy gated by the AI setting. The rule-based strategy is
// not an error handler bolted on; it is a first-class branch the service
// selects whenever the LLM path is disabled, fails, or produces output that
// does not validate.
package intelligence

import (
	"context"
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/insight"
	"github.com/alexanderramin/pulse/internal/providers"
)

// GenerateOptions controls a single context synthesis request.
type GenerateOptions struct {
	// ForceRefresh bypasses the cache entirely for this invocation.
	ForceRefresh bool
}

// ContextGenerator produces the current smart context.
type ContextGenerator interface {
	Generate(ctx context.Context, opts GenerateOptions) (*domain.SmartContext, error)
}

// TaskInterpreter turns free-form text into a task draft. It never fails:
// the worst case is a draft built from defaults with Error populated.
type TaskInterpreter interface {
	Interpret(ctx context.Context, text string) *domain.TaskDraft
}

// ContextInput bundles everything a context strategy may look at. Both
// strategies receive identical input so switching strategies never changes
// what the synthesis is about, only how the narrative is produced.
type ContextInput struct {
	Now      time.Time
	Tasks    []domain.Task // trailing window plus the next day, for urgency
	Activity *insight.ActivitySnapshot
	Wellness *insight.WellnessSnapshot
	Weather  providers.Weather
	Location providers.Location
}
