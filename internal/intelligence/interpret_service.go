package intelligence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/llm"
	"github.com/alexanderramin/pulse/internal/settings"
	"github.com/alexanderramin/pulse/internal/timeutil"
)

// InterpretService turns free text into task drafts. Interpret never fails:
// the AI strategy degrades per field, and any hard failure falls back to the
// deterministic rules.
type InterpretService struct {
	client   llm.Client
	settings *settings.Store
	now      func() time.Time
}

// NewInterpretService wires the task interpretation pipeline.
func NewInterpretService(client llm.Client, store *settings.Store) *InterpretService {
	return &InterpretService{
		client:   client,
		settings: store,
		now:      time.Now,
	}
}

// SetNowFunc overrides the clock. Tests only.
func (s *InterpretService) SetNowFunc(now func() time.Time) {
	s.now = now
}

// Interpret converts text into a draft. Empty input yields a default draft
// with Error set so callers can still show an editable form.
func (s *InterpretService) Interpret(ctx context.Context, text string) *domain.TaskDraft {
	now := s.now()
	if strings.TrimSpace(text) == "" {
		draft := InterpretWithRules("", now)
		draft.Title = "New task"
		draft.Error = "empty input; draft built from defaults"
		return draft
	}

	if !s.settings.Get().AIEnabled {
		return InterpretWithRules(text, now)
	}

	draft, err := s.interpretWithAI(ctx, text, now)
	if err != nil {
		timeutil.Warn("ai interpretation failed, using rules: %v", err)
		fallback := InterpretWithRules(text, now)
		fallback.Error = fmt.Sprintf("ai interpretation unavailable (%v); parsed with rules", err)
		return fallback
	}
	return draft
}

// aiInterpretResponse is the JSON shape the LLM must return for task
// interpretation. Fields are validated individually; an invalid field is
// replaced by its rules-derived value rather than rejecting the draft.
type aiInterpretResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

func validateInterpretResponse(r aiInterpretResponse) error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("title is empty")
	}
	return nil
}

func (s *InterpretService) interpretWithAI(ctx context.Context, text string, now time.Time) (*domain.TaskDraft, error) {
	userPrompt := fmt.Sprintf("Current date: %s (%s)\nInput: %s",
		now.Format("2006-01-02"), now.Weekday(), text)

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskInterpret,
		SystemPrompt: interpretSystemPrompt,
		UserPrompt:   userPrompt,
		Format:       "json",
	})
	if err != nil {
		return nil, err
	}

	parsed, err := llm.ExtractJSON(resp.Text, validateInterpretResponse)
	if err != nil {
		return nil, err
	}
	return s.mergeInterpretResponse(parsed, text, now), nil
}

// mergeInterpretResponse builds the draft from model output, field by field.
// Anything out of range falls back to the rules value for the same input and
// is noted in Error.
func (s *InterpretService) mergeInterpretResponse(r aiInterpretResponse, text string, now time.Time) *domain.TaskDraft {
	rules := InterpretWithRules(text, now)
	var notes []string

	draft := &domain.TaskDraft{
		Title:       strings.TrimSpace(r.Title),
		Description: strings.TrimSpace(r.Description),
		AIGenerated: true,
	}
	if len(draft.Title) > maxTitleLen {
		draft.Title = draft.Title[:maxTitleLen]
	}
	if draft.Description == "" {
		draft.Description = text
	}

	if domain.ValidCategories[r.Category] {
		draft.Category = domain.Category(r.Category)
	} else {
		draft.Category = rules.Category
		notes = append(notes, fmt.Sprintf("category %q not recognized", r.Category))
	}

	if domain.ValidPriorities[r.Priority] {
		draft.Priority = domain.Priority(r.Priority)
	} else {
		draft.Priority = rules.Priority
		notes = append(notes, fmt.Sprintf("priority %q not recognized", r.Priority))
	}

	if date, err := time.Parse("2006-01-02", r.Date); err == nil {
		draft.Date = date
	} else {
		draft.Date = rules.Date
		notes = append(notes, fmt.Sprintf("date %q not parseable", r.Date))
	}

	if timeutil.ClockMinutes(r.StartTime) >= 0 {
		draft.StartTime = r.StartTime
	} else {
		draft.StartTime = rules.StartTime
		notes = append(notes, fmt.Sprintf("start_time %q not parseable", r.StartTime))
	}

	if timeutil.ClockMinutes(r.EndTime) > timeutil.ClockMinutes(draft.StartTime) {
		draft.EndTime = r.EndTime
	} else {
		draft.EndTime = oneHourAfter(draft.StartTime)
	}

	if len(notes) > 0 {
		draft.Error = "some fields defaulted: " + strings.Join(notes, "; ")
	}
	return draft
}
