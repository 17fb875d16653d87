package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/pulse/internal/domain"
)

func withPriority(p domain.Priority) func(*domain.Task) {
	return func(t *domain.Task) { t.Priority = p }
}

func withCategory(c domain.Category) func(*domain.Task) {
	return func(t *domain.Task) { t.Category = c }
}

func withEnd(end string) func(*domain.Task) {
	return func(t *domain.Task) { t.EndTime = end }
}

func TestBuildWellness_EmptyWindow(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	snap := BuildWellness(nil, now)

	assert.Zero(t, snap.Stress.Current)
	assert.Equal(t, domain.TrendStable, snap.Stress.Trend)
	require.Len(t, snap.Stress.History, WindowDays)
	assert.InDelta(t, 50.0, snap.Balance.WorkPercentage, 1e-9)
	assert.InDelta(t, 100.0, snap.Balance.Score, 1e-9)
	assert.InDelta(t, 100.0, snap.Breaks.Score, 1e-9)
}

func TestDayStress_DensityAndPriority(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	// 10 tasks: 2 high-priority incomplete, 8 medium completed.
	var tasks []domain.Task
	for i := 0; i < 2; i++ {
		tasks = append(tasks, task(day, "09:00", false, withPriority(domain.PriorityHigh)))
	}
	for i := 0; i < 8; i++ {
		tasks = append(tasks, task(day, "13:00", true))
	}

	// stressScore = 2*(3+2) + 8*2 = 26; base = min(10*5, 70) = 50;
	// additional = 26/50 * 30 = 15.6.
	got := dayStress(tasks)
	assert.InDelta(t, 65.6, got, 1e-9)
	assert.LessOrEqual(t, got, 100.0)
}

func TestDayStress_ClampedAt100(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	var tasks []domain.Task
	for i := 0; i < 30; i++ {
		tasks = append(tasks, task(day, "09:00", false, withPriority(domain.PriorityHigh)))
	}

	assert.InDelta(t, 100.0, dayStress(tasks), 1e-9)
}

func TestBuildWellness_CurrentIsMeanOfLastThreeDays(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	// One medium completed task per day for the last 3 days:
	// stress per day = min(5,70) + (2/5)*30 = 17.
	var tasks []domain.Task
	for i := 0; i < 3; i++ {
		tasks = append(tasks, task(now.AddDate(0, 0, -i), "09:00", true))
	}

	snap := BuildWellness(tasks, now)
	assert.InDelta(t, 17.0, snap.Stress.Current, 1e-9)
}

func TestBuildWellness_TrendIncreasing(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	// Empty early week, heavily loaded last three days.
	var tasks []domain.Task
	for i := 0; i < 3; i++ {
		date := now.AddDate(0, 0, -i)
		for j := 0; j < 4; j++ {
			tasks = append(tasks, task(date, "09:00", false, withPriority(domain.PriorityHigh)))
		}
	}

	snap := BuildWellness(tasks, now)
	assert.Equal(t, domain.TrendIncreasing, snap.Stress.Trend)
}

func TestBuildWellness_TrendDecreasing(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	// Heavy load 4-6 days ago, nothing since.
	var tasks []domain.Task
	for i := 4; i <= 6; i++ {
		date := now.AddDate(0, 0, -i)
		for j := 0; j < 4; j++ {
			tasks = append(tasks, task(date, "09:00", false, withPriority(domain.PriorityHigh)))
		}
	}

	snap := BuildWellness(tasks, now)
	assert.Equal(t, domain.TrendDecreasing, snap.Stress.Trend)
}

func TestDayBalance_PercentagesSumTo100(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	tasks := []domain.Task{
		task(day, "09:00", true, withCategory(domain.CategoryWork)),
		task(day, "11:00", true, withCategory(domain.CategoryStudy)),
		task(day, "14:00", false, withCategory(domain.CategoryHealth)),
		task(day, "18:00", false, withCategory(domain.CategoryFamily)),
	}

	workPct, personalPct := dayBalance(tasks)
	assert.InDelta(t, 50.0, workPct, 1e-9)
	assert.InDelta(t, 100.0, workPct+personalPct, 1e-9)
}

func TestBuildWellness_BalanceScore(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	// All work tasks today, empty otherwise: last 7 days average
	// (6*50 + 100)/7 work percent.
	tasks := []domain.Task{
		task(day, "09:00", true, withCategory(domain.CategoryWork)),
		task(day, "11:00", true, withCategory(domain.CategoryWork)),
	}

	snap := BuildWellness(tasks, now)
	wantAvg := (6*50.0 + 100.0) / 7.0
	assert.InDelta(t, wantAvg, snap.Balance.WorkPercentage, 1e-9)
	assert.InDelta(t, 100-2*(wantAvg-50), snap.Balance.Score, 1e-9)
}

func TestDayBreaks_GapCountsWhenTaskCompleted(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	tasks := []domain.Task{
		task(day, "09:00", true, withEnd("10:00")),
		task(day, "10:45", false, withEnd("11:30")),
	}

	planned, taken, minutes := dayBreaks(tasks)
	assert.Equal(t, 1, planned)
	assert.Equal(t, 1, taken)
	assert.InDelta(t, 45.0, minutes, 1e-9)
}

func TestDayBreaks_SkippedWhenTaskIncomplete(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	tasks := []domain.Task{
		task(day, "09:00", false, withEnd("10:00")),
		task(day, "11:00", false, withEnd("12:00")),
	}

	planned, taken, _ := dayBreaks(tasks)
	assert.Equal(t, 1, planned)
	assert.Equal(t, 0, taken)
}

func TestDayBreaks_ShortGapsIgnoredAndCapped(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	// Back-to-back tasks: 10 minute gaps never count.
	tasks := []domain.Task{
		task(day, "09:00", true, withEnd("09:50")),
		task(day, "10:00", true, withEnd("10:50")),
	}
	planned, _, _ := dayBreaks(tasks)
	assert.Zero(t, planned)

	// Five long gaps, only three count.
	tasks = nil
	starts := []string{"08:00", "10:00", "12:00", "14:00", "16:00", "18:00"}
	for _, s := range starts {
		end := s[:2] + ":45"
		tasks = append(tasks, task(day, s, true, withEnd(end)))
	}
	planned, taken, _ := dayBreaks(tasks)
	assert.Equal(t, maxBreaksPerDay, planned)
	assert.Equal(t, maxBreaksPerDay, taken)
}
