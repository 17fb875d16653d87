package insight

import (
	"math"
	"sort"
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/timeutil"
)

const (
	// Stress accrues 5 points per task up to this density ceiling; the
	// remaining 30 points come from priority weighting.
	maxDensityStress    = 70
	stressPerTask       = 5
	incompleteHighExtra = 2

	// Trend bands: a mean shift beyond +-5 over the split week counts as a
	// real change, anything inside is noise.
	trendBand = 5

	currentStressDays = 3
	trendDays         = 7
	balanceDays       = 7

	// Break derivation: a gap of at least 30 minutes between consecutive
	// tasks counts as a planned break, up to 3 per day.
	minBreakMinutes  = 30
	maxBreaksPerDay  = 3
	maxBreakDuration = 120
)

type DayValue struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

type StressLevel struct {
	Current float64      `json:"current"`
	Trend   domain.Trend `json:"trend"`
	History []DayValue   `json:"history"`
}

type DayBalance struct {
	Date               time.Time `json:"date"`
	WorkPercentage     float64   `json:"work_percentage"`
	PersonalPercentage float64   `json:"personal_percentage"`
}

type WorkLifeBalance struct {
	Score              float64      `json:"score"`
	WorkPercentage     float64      `json:"work_percentage"`
	PersonalPercentage float64      `json:"personal_percentage"`
	History            []DayBalance `json:"history"`
}

// BreakCompliance is derived from the gaps between consecutive same-day
// tasks: gaps of at least 30 minutes are planned breaks, and a break counts
// as taken when the task before it was completed.
type BreakCompliance struct {
	Score           float64 `json:"score"`
	BreaksPlanned   int     `json:"breaks_planned"`
	BreaksTaken     int     `json:"breaks_taken"`
	AverageDuration float64 `json:"average_duration"`
}

type WellnessSnapshot struct {
	Stress  StressLevel     `json:"stress_level"`
	Balance WorkLifeBalance `json:"work_life_balance"`
	Breaks  BreakCompliance `json:"break_compliance"`
}

// BuildWellness computes stress, work/life balance, and break compliance
// from the same trailing window BuildActivity uses.
func BuildWellness(tasks []domain.Task, now time.Time) *WellnessSnapshot {
	today := timeutil.Midnight(now)
	start := today.AddDate(0, 0, -(WindowDays - 1))

	byDay := make(map[string][]domain.Task)
	for _, task := range tasks {
		key := timeutil.Midnight(task.Date).Format("2006-01-02")
		byDay[key] = append(byDay[key], task)
	}

	snapshot := &WellnessSnapshot{
		Stress:  StressLevel{History: make([]DayValue, 0, WindowDays)},
		Balance: WorkLifeBalance{History: make([]DayBalance, 0, WindowDays)},
	}

	var totalPlanned, totalTaken int
	var takenMinutes float64

	for i := 0; i < WindowDays; i++ {
		date := start.AddDate(0, 0, i)
		dayTasks := byDay[date.Format("2006-01-02")]

		snapshot.Stress.History = append(snapshot.Stress.History, DayValue{
			Date:  date,
			Value: dayStress(dayTasks),
		})

		workPct, personalPct := dayBalance(dayTasks)
		snapshot.Balance.History = append(snapshot.Balance.History, DayBalance{
			Date:               date,
			WorkPercentage:     workPct,
			PersonalPercentage: personalPct,
		})

		planned, taken, minutes := dayBreaks(dayTasks)
		totalPlanned += planned
		totalTaken += taken
		takenMinutes += minutes
	}

	snapshot.Stress.Current = meanTail(snapshot.Stress.History, currentStressDays)
	snapshot.Stress.Trend = stressTrend(snapshot.Stress.History)

	var workSum float64
	balanceTail := snapshot.Balance.History
	if len(balanceTail) > balanceDays {
		balanceTail = balanceTail[len(balanceTail)-balanceDays:]
	}
	for _, b := range balanceTail {
		workSum += b.WorkPercentage
	}
	avgWork := workSum / float64(len(balanceTail))
	snapshot.Balance.WorkPercentage = avgWork
	snapshot.Balance.PersonalPercentage = 100 - avgWork
	snapshot.Balance.Score = 100 - 2*math.Abs(avgWork-50)

	snapshot.Breaks = BreakCompliance{
		BreaksPlanned: totalPlanned,
		BreaksTaken:   totalTaken,
		Score:         100,
	}
	if totalPlanned > 0 {
		snapshot.Breaks.Score = float64(totalTaken) / float64(totalPlanned) * 100
	}
	if totalTaken > 0 {
		snapshot.Breaks.AverageDuration = takenMinutes / float64(totalTaken)
	}

	return snapshot
}

// dayStress scores one day on a 0-100 scale: up to 70 from sheer task
// density, up to 30 from how heavy the priorities run.
func dayStress(tasks []domain.Task) float64 {
	if len(tasks) == 0 {
		return 0
	}

	var score float64
	for _, task := range tasks {
		score += task.Priority.StressWeight()
		if task.Priority == domain.PriorityHigh && !task.Completed {
			score += incompleteHighExtra
		}
	}

	count := float64(len(tasks))
	base := math.Min(count*stressPerTask, maxDensityStress)
	additional := score / (count * stressPerTask) * 30
	return math.Min(base+additional, 100)
}

// dayBalance splits a day's tasks into work-like and personal percentages.
// Empty days read as perfectly balanced.
func dayBalance(tasks []domain.Task) (workPct, personalPct float64) {
	if len(tasks) == 0 {
		return 50, 50
	}
	work := 0
	for _, task := range tasks {
		if task.Category.IsWorkLike() {
			work++
		}
	}
	workPct = float64(work) / float64(len(tasks)) * 100
	return workPct, 100 - workPct
}

// dayBreaks finds the planned breaks in a day's schedule and how many of
// them were actually taken. Tasks without a parseable start time sort to
// midnight and still participate, matching the normalizer contract.
func dayBreaks(tasks []domain.Task) (planned, taken int, takenMinutes float64) {
	if len(tasks) < 2 {
		return 0, 0, 0
	}

	ordered := make([]domain.Task, len(tasks))
	copy(ordered, tasks)
	sort.SliceStable(ordered, func(i, j int) bool {
		return timeutil.Instant(ordered[i].Date, ordered[i].StartTime).
			Before(timeutil.Instant(ordered[j].Date, ordered[j].StartTime))
	})

	for i := 0; i < len(ordered)-1 && planned < maxBreaksPerDay; i++ {
		end := timeutil.Instant(ordered[i].Date, ordered[i].EndTime)
		next := timeutil.Instant(ordered[i+1].Date, ordered[i+1].StartTime)
		gap := next.Sub(end).Minutes()
		if gap < minBreakMinutes {
			continue
		}
		planned++
		if ordered[i].Completed {
			taken++
			takenMinutes += math.Min(gap, maxBreakDuration)
		}
	}
	return planned, taken, takenMinutes
}

func meanTail(history []DayValue, n int) float64 {
	if len(history) == 0 {
		return 0
	}
	if len(history) > n {
		history = history[len(history)-n:]
	}
	var sum float64
	for _, v := range history {
		sum += v.Value
	}
	return math.Min(math.Max(sum/float64(len(history)), 0), 100)
}

// stressTrend splits the last week in half and compares the means of the
// two halves against the noise band.
func stressTrend(history []DayValue) domain.Trend {
	if len(history) > trendDays {
		history = history[len(history)-trendDays:]
	}
	half := len(history) / 2
	if half == 0 {
		return domain.TrendStable
	}

	var earlier, later float64
	for _, v := range history[:half] {
		earlier += v.Value
	}
	for _, v := range history[len(history)-half:] {
		later += v.Value
	}
	diff := later/float64(half) - earlier/float64(half)

	switch {
	case diff > trendBand:
		return domain.TrendIncreasing
	case diff < -trendBand:
		return domain.TrendDecreasing
	default:
		return domain.TrendStable
	}
}
