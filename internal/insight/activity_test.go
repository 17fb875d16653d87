package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/timeutil"
)

func task(date time.Time, start string, completed bool, opts ...func(*domain.Task)) domain.Task {
	t := domain.Task{
		Title:     "task",
		Category:  domain.CategoryWork,
		Priority:  domain.PriorityMedium,
		Date:      date,
		StartTime: start,
		EndTime:   "",
		Completed: completed,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

func findSlot(t *testing.T, day DayActivity, slot timeutil.Slot) SlotActivity {
	t.Helper()
	for _, s := range day.Slots {
		if s.Slot == slot {
			return s
		}
	}
	t.Fatalf("slot %s not found", slot)
	return SlotActivity{}
}

func TestBuildActivity_EmptyWindow(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	snap := BuildActivity(nil, now)

	require.Len(t, snap.Days, WindowDays)
	assert.Equal(t, time.Date(2025, 5, 28, 0, 0, 0, 0, time.UTC), snap.Days[0].Date)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), snap.Days[13].Date)
	for _, day := range snap.Days {
		require.Len(t, day.Slots, 7)
		for _, s := range day.Slots {
			assert.Zero(t, s.Tasks)
			assert.Zero(t, s.Intensity)
		}
	}
	assert.Empty(t, snap.MostProductiveTime.Slot)
	assert.Zero(t, snap.MostProductiveTime.CompletionRate)
	assert.Empty(t, snap.MostProductiveDay.Day)
}

func TestBuildActivity_SingleCompletedTask(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	snap := BuildActivity([]domain.Task{task(day, "09:00", true)}, now)

	got := findSlot(t, snap.Days[13], timeutil.SlotMorning)
	assert.Equal(t, 1, got.Tasks)
	assert.Equal(t, 1, got.Completed)
	// Density target floors at 2, so intensity = 0.3*(1/2) + 0.7*1.
	assert.InDelta(t, 0.85, got.Intensity, 1e-9)

	// One task is below the significance threshold.
	assert.Zero(t, snap.MostProductiveTime.CompletionRate)
	assert.Empty(t, snap.MostProductiveTime.Slot)
}

func TestBuildActivity_IntensityBounds(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	var tasks []domain.Task
	for i := 0; i < WindowDays; i++ {
		date := time.Date(2025, 5, 28, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i)
		for j := 0; j < i%5; j++ {
			tasks = append(tasks, task(date, "10:00", j%2 == 0))
		}
		tasks = append(tasks, task(date, "19:30", i%3 == 0))
	}

	snap := BuildActivity(tasks, now)

	for _, day := range snap.Days {
		for _, s := range day.Slots {
			assert.LessOrEqual(t, s.Completed, s.Tasks)
			assert.GreaterOrEqual(t, s.Intensity, 0.0)
			assert.LessOrEqual(t, s.Intensity, 1.0)
		}
	}
}

func TestBuildActivity_MostProductiveTime(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	tasks := []domain.Task{
		// Morning slot: 3 of 3 completed.
		task(monday, "09:00", true),
		task(monday.AddDate(0, 0, 1), "10:00", true),
		task(monday.AddDate(0, 0, 2), "11:00", true),
		// Evening slot: 1 of 3 completed.
		task(monday, "19:00", true),
		task(monday.AddDate(0, 0, 1), "19:00", false),
		task(monday.AddDate(0, 0, 2), "19:00", false),
	}

	snap := BuildActivity(tasks, now)

	assert.Equal(t, timeutil.SlotMorning, snap.MostProductiveTime.Slot)
	assert.InDelta(t, 1.0, snap.MostProductiveTime.CompletionRate, 1e-9)
}

func TestBuildActivity_MostProductiveDay(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	// June 3 2025 is a Tuesday; stack it with completed tasks.
	tuesday := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	tasks := []domain.Task{
		task(tuesday, "09:00", true),
		task(tuesday, "13:00", true),
		task(tuesday, "16:00", true),
		task(tuesday.AddDate(0, 0, 1), "09:00", false),
		task(tuesday.AddDate(0, 0, 1), "13:00", false),
		task(tuesday.AddDate(0, 0, 1), "16:00", false),
	}

	snap := BuildActivity(tasks, now)

	assert.Equal(t, "Tuesday", snap.MostProductiveDay.Day)
	assert.InDelta(t, 1.0, snap.MostProductiveDay.CompletionRate, 1e-9)
}

func TestBuildActivity_IgnoresTasksOutsideWindow(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	tasks := []domain.Task{
		task(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), "09:00", true),
		task(time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), "09:00", true),
	}

	snap := BuildActivity(tasks, now)

	for _, day := range snap.Days {
		for _, s := range day.Slots {
			assert.Zero(t, s.Tasks)
		}
	}
}

func TestBuildActivity_UnparseableStartBinsToNight(t *testing.T) {
	old := timeutil.Warn
	timeutil.Warn = func(string, ...any) {}
	defer func() { timeutil.Warn = old }()

	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	snap := BuildActivity([]domain.Task{task(day, "whenever", false)}, now)

	got := findSlot(t, snap.Days[13], timeutil.SlotNight)
	assert.Equal(t, 1, got.Tasks)
}
