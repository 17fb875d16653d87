package intelligence

import (
	"context"
	"encoding/json"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/alexanderramin/pulse/internal/cache"
	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/insight"
	"github.com/alexanderramin/pulse/internal/llm"
	"github.com/alexanderramin/pulse/internal/providers"
	"github.com/alexanderramin/pulse/internal/repository"
	"github.com/alexanderramin/pulse/internal/settings"
	"github.com/alexanderramin/pulse/internal/timeutil"
)

// ContextService synthesizes the current smart context: cache first, then
// one strategy run shared across concurrent callers, then cache write.
type ContextService struct {
	tasks    repository.TaskRepo
	client   llm.Client
	cache    *cache.ContextCache
	settings *settings.Store
	weather  providers.WeatherProvider
	location providers.LocationProvider

	group singleflight.Group
	now   func() time.Time
}

// NewContextService wires the context synthesis pipeline.
func NewContextService(
	tasks repository.TaskRepo,
	client llm.Client,
	contextCache *cache.ContextCache,
	store *settings.Store,
	weather providers.WeatherProvider,
	location providers.LocationProvider,
) *ContextService {
	return &ContextService{
		tasks:    tasks,
		client:   client,
		cache:    contextCache,
		settings: store,
		weather:  weather,
		location: location,
		now:      time.Now,
	}
}

// SetNowFunc overrides the clock. Tests only.
func (s *ContextService) SetNowFunc(now func() time.Time) {
	s.now = now
}

// Generate returns the current smart context. Concurrent calls while a
// synthesis is in flight share its result instead of racing duplicate
// strategy runs.
func (s *ContextService) Generate(ctx context.Context, opts GenerateOptions) (*domain.SmartContext, error) {
	if !opts.ForceRefresh {
		if cached, ok := s.cache.Get(ctx); ok {
			return cached, nil
		}
	}

	v, err, _ := s.group.Do("current_context", func() (any, error) {
		return s.synthesize(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.SmartContext), nil
}

func (s *ContextService) synthesize(ctx context.Context) (*domain.SmartContext, error) {
	now := s.now()
	input := s.collectInput(ctx, now)

	var sc *domain.SmartContext
	if s.settings.Get().AIEnabled {
		var err error
		sc, err = s.generateWithAI(ctx, input)
		if err != nil {
			timeutil.Warn("ai context generation failed, using rules: %v", err)
			sc = nil
		}
	}
	if sc == nil {
		sc = BuildRulesContext(input)
	}

	sc.Timestamp = now
	sc.LastUpdated = now

	if err := s.cache.Put(ctx, sc); err != nil {
		timeutil.Warn("caching context: %v", err)
	}
	return sc, nil
}

// collectInput gathers everything a strategy may look at. Collaborator
// failures degrade the input instead of propagating: a broken task store
// yields a context about an empty window, not an error.
func (s *ContextService) collectInput(ctx context.Context, now time.Time) ContextInput {
	from := timeutil.Midnight(now).AddDate(0, 0, -(insight.WindowDays - 1))
	to := timeutil.Midnight(now).AddDate(0, 0, 1)
	tasks, err := s.tasks.ListInRange(ctx, from, to)
	if err != nil {
		timeutil.Warn("listing tasks for context: %v", err)
		tasks = nil
	}

	return ContextInput{
		Now:      now,
		Tasks:    tasks,
		Activity: insight.BuildActivity(tasks, now),
		Wellness: insight.BuildWellness(tasks, now),
		Weather:  s.weather.Current(ctx),
		Location: s.location.Current(ctx),
	}
}

// generateWithAI runs the LLM strategy: one attempt, strict validation. Any
// error sends the caller to the rules strategy.
func (s *ContextService) generateWithAI(ctx context.Context, input ContextInput) (*domain.SmartContext, error) {
	userPrompt, err := buildContextUserPrompt(input)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskContext,
		SystemPrompt: contextSystemPrompt,
		UserPrompt:   userPrompt,
		Format:       "json",
	})
	if err != nil {
		return nil, err
	}

	parsed, err := llm.ExtractJSON(resp.Text, validateContextResponse)
	if err != nil {
		return nil, err
	}

	base := BuildRulesContext(input)
	return applyContextResponse(base, parsed), nil
}

// contextSnapshot is the situation summary serialized into the user prompt.
type contextSnapshot struct {
	Now         string                    `json:"now"`
	Weekday     string                    `json:"weekday"`
	TasksToday  []snapshotTask            `json:"tasks_today"`
	UrgentCount int                       `json:"urgent_count"`
	Activity    *insight.ActivitySnapshot `json:"activity"`
	Wellness    *insight.WellnessSnapshot `json:"wellness"`
	Weather     *providers.Weather        `json:"weather,omitempty"`
	City        string                    `json:"city,omitempty"`
}

type snapshotTask struct {
	Title     string `json:"title"`
	Category  string `json:"category"`
	Priority  string `json:"priority"`
	StartTime string `json:"start_time,omitempty"`
	Completed bool   `json:"completed"`
}

func buildContextUserPrompt(input ContextInput) (string, error) {
	today := timeutil.Midnight(input.Now)
	urgent, _ := urgentTasks(input.Tasks, input.Now)

	snap := contextSnapshot{
		Now:         input.Now.Format("2006-01-02 15:04"),
		Weekday:     input.Now.Weekday().String(),
		UrgentCount: len(urgent),
		Activity:    input.Activity,
		Wellness:    input.Wellness,
	}
	for _, t := range input.Tasks {
		if !timeutil.Midnight(t.Date).Equal(today) {
			continue
		}
		snap.TasksToday = append(snap.TasksToday, snapshotTask{
			Title:     t.Title,
			Category:  string(t.Category),
			Priority:  string(t.Priority),
			StartTime: t.StartTime,
			Completed: t.Completed,
		})
	}
	if input.Weather.Available {
		w := input.Weather
		snap.Weather = &w
	}
	if input.Location.Available {
		snap.City = input.Location.City
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
