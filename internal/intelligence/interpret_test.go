package intelligence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/llm"
	"github.com/alexanderramin/pulse/internal/settings"
)

func newInterpretFixture(t *testing.T, aiEnabled bool) (*InterpretService, *fakeClient, *settings.Store) {
	t.Helper()
	kv := newMemKV()
	client := &fakeClient{}
	store := settings.NewStore(kv)
	require.NoError(t, store.Load(context.Background()))
	if aiEnabled {
		require.NoError(t, store.Set(context.Background(), settings.Settings{
			AIEnabled: true,
			CacheTTL:  time.Minute,
		}))
	}

	svc := NewInterpretService(client, store)
	svc.SetNowFunc(func() time.Time { return at(10) })
	return svc, client, store
}

func TestInterpretWithRules_UrgentMeansHigh(t *testing.T) {
	draft := InterpretWithRules("urgent: call the client about the contract", at(10))
	assert.Equal(t, domain.PriorityHigh, draft.Priority)
	assert.Equal(t, domain.CategoryWork, draft.Category)
}

func TestInterpretWithRules_LowPriorityKeywords(t *testing.T) {
	draft := InterpretWithRules("maybe organize the garage sometime", at(10))
	assert.Equal(t, domain.PriorityLow, draft.Priority)
}

func TestInterpretWithRules_CategoryKeywords(t *testing.T) {
	cases := map[string]domain.Category{
		"gym session after lunch":        domain.CategoryHealth,
		"study for the algorithms exam":  domain.CategoryStudy,
		"buy groceries for the week":     domain.CategoryShopping,
		"dinner with mom":                domain.CategoryFamily,
		"movie night":                    domain.CategoryLeisure,
		"prepare slides for the standup": domain.CategoryWork,
		"something without any keywords": domain.CategoryWork,
	}
	for text, want := range cases {
		assert.Equal(t, want, InterpretWithRules(text, at(10)).Category, "text %q", text)
	}
}

func TestInterpretWithRules_Tomorrow(t *testing.T) {
	draft := InterpretWithRules("dentist tomorrow at 3pm", at(10))
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), draft.Date)
	assert.Equal(t, "15:00", draft.StartTime)
	assert.Equal(t, "16:00", draft.EndTime)
}

func TestInterpretWithRules_WeekdayResolvesForward(t *testing.T) {
	// March 10 2025 is a Monday; "friday" means the 14th, and a mention of
	// the current weekday means next week.
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		InterpretWithRules("review on friday", at(10)).Date)
	assert.Equal(t, time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC),
		InterpretWithRules("review on monday", at(10)).Date)
}

func TestInterpretWithRules_ClockFormats(t *testing.T) {
	cases := map[string]string{
		"meeting at 9:30":      "09:30",
		"meeting at 14:00":     "14:00",
		"meeting at 5pm":       "17:00",
		"meeting at 12am":      "00:00",
		"meeting at 12 pm":     "12:00",
		"meeting with 3 folks": defaultStartTime,
	}
	for text, want := range cases {
		assert.Equal(t, want, InterpretWithRules(text, at(10)).StartTime, "text %q", text)
	}
}

func TestInterpretWithRules_TitleCapped(t *testing.T) {
	long := "prepare the extremely detailed quarterly planning document for the leadership offsite"
	draft := InterpretWithRules(long, at(10))
	assert.LessOrEqual(t, len(draft.Title), maxTitleLen)
	assert.Equal(t, long, draft.Description)
}

func TestInterpret_EmptyInput(t *testing.T) {
	svc, client, _ := newInterpretFixture(t, true)

	draft := svc.Interpret(context.Background(), "   ")
	require.NotNil(t, draft)
	assert.Equal(t, "New task", draft.Title)
	assert.NotEmpty(t, draft.Error)
	assert.Equal(t, int32(0), client.calls.Load())
}

func TestInterpret_RulesWhenAIDisabled(t *testing.T) {
	svc, client, _ := newInterpretFixture(t, false)

	first := svc.Interpret(context.Background(), "urgent gym session tomorrow at 7am")
	second := svc.Interpret(context.Background(), "urgent gym session tomorrow at 7am")
	assert.Equal(t, first, second)
	assert.False(t, first.AIGenerated)
	assert.Equal(t, int32(0), client.calls.Load())
}

func TestInterpret_AIPath(t *testing.T) {
	svc, client, _ := newInterpretFixture(t, true)
	client.text = `{
		"title": "Call the client",
		"description": "Discuss contract renewal",
		"category": "work",
		"priority": "high",
		"date": "2025-03-11",
		"start_time": "14:00",
		"end_time": "14:30"
	}`

	draft := svc.Interpret(context.Background(), "call client tomorrow 2pm about renewal, urgent")
	assert.True(t, draft.AIGenerated)
	assert.Empty(t, draft.Error)
	assert.Equal(t, "Call the client", draft.Title)
	assert.Equal(t, domain.PriorityHigh, draft.Priority)
	assert.Equal(t, "14:30", draft.EndTime)
}

func TestInterpret_AIInvalidFieldsDefaulted(t *testing.T) {
	svc, client, _ := newInterpretFixture(t, true)
	client.text = `{
		"title": "Gym",
		"category": "fitness",
		"priority": "extreme",
		"date": "soonish",
		"start_time": "late",
		"end_time": ""
	}`

	draft := svc.Interpret(context.Background(), "gym tomorrow")
	assert.True(t, draft.AIGenerated)
	assert.Equal(t, domain.CategoryHealth, draft.Category)
	assert.Equal(t, domain.PriorityMedium, draft.Priority)
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), draft.Date)
	assert.Equal(t, defaultStartTime, draft.StartTime)
	assert.Equal(t, "10:00", draft.EndTime)
	assert.Contains(t, draft.Error, "defaulted")
}

func TestInterpret_FallsBackWhenAIFails(t *testing.T) {
	svc, client, _ := newInterpretFixture(t, true)
	client.err = llm.ErrTimeout

	draft := svc.Interpret(context.Background(), "urgent standup at 9:30")
	require.NotNil(t, draft)
	assert.False(t, draft.AIGenerated)
	assert.Equal(t, domain.PriorityHigh, draft.Priority)
	assert.Equal(t, "09:30", draft.StartTime)
	assert.Contains(t, draft.Error, "rules")
}

func TestDraftFromTemplate(t *testing.T) {
	draft, ok := DraftFromTemplate("standup", at(10))
	require.True(t, ok)
	assert.Equal(t, "Daily standup", draft.Title)
	assert.Equal(t, domain.CategoryWork, draft.Category)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), draft.Date)

	_, ok = DraftFromTemplate("unknown", at(10))
	assert.False(t, ok)
}

func TestTemplateNames_Sorted(t *testing.T) {
	names := TemplateNames()
	require.NotEmpty(t, names)
	assert.Contains(t, names, "gym")
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
}
