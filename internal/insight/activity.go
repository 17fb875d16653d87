// Package insight derives activity and wellness metrics from a trailing
// 14-day task window. Every builder here is a pure function of the task list
// and the reference time: no hidden state, no side effects.
package insight

import (
	"math"
	"sort"
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/timeutil"
)

// WindowDays is the trailing window every aggregate is computed over.
const WindowDays = 14

// MinRankingSamples is the minimum task count a slot or weekday needs before
// its completion rate is trusted for the productivity rankings.
const MinRankingSamples = 3

// intensityTargetFloor keeps the density normalization target from
// collapsing on sparse windows.
const intensityTargetFloor = 2

type SlotActivity struct {
	Slot      timeutil.Slot `json:"slot"`
	Intensity float64       `json:"intensity"`
	Tasks     int           `json:"tasks_count"`
	Completed int           `json:"completed_count"`
}

type DayActivity struct {
	Date  time.Time      `json:"date"`
	Slots []SlotActivity `json:"slots"`
}

// RankedSlot names the time slot with the best completion rate over the
// window. CompletionRate is 0 when no slot reaches MinRankingSamples.
type RankedSlot struct {
	Slot           timeutil.Slot `json:"slot"`
	CompletionRate float64       `json:"completion_rate"`
}

// RankedDay is the weekday analogue of RankedSlot.
type RankedDay struct {
	Day            string  `json:"day"`
	CompletionRate float64 `json:"completion_rate"`
}

type ActivitySnapshot struct {
	Days               []DayActivity `json:"days"`
	MostProductiveTime RankedSlot    `json:"most_productive_time"`
	MostProductiveDay  RankedDay     `json:"most_productive_day"`
}

type slotTotals struct {
	tasks     int
	completed int
}

// BuildActivity aggregates tasks dated within [now-13d, now] into per-day,
// per-slot activity with normalized intensity and productivity rankings.
func BuildActivity(tasks []domain.Task, now time.Time) *ActivitySnapshot {
	today := timeutil.Midnight(now)
	start := today.AddDate(0, 0, -(WindowDays - 1))

	slots := timeutil.Slots()
	days := make([]DayActivity, WindowDays)
	dayIndex := make(map[string]int, WindowDays)
	for i := range days {
		date := start.AddDate(0, 0, i)
		days[i] = DayActivity{Date: date, Slots: make([]SlotActivity, len(slots))}
		for j, s := range slots {
			days[i].Slots[j] = SlotActivity{Slot: s}
		}
		dayIndex[date.Format("2006-01-02")] = i
	}

	slotPos := make(map[timeutil.Slot]int, len(slots))
	for j, s := range slots {
		slotPos[s] = j
	}

	// Whole-window aggregates for the rankings. Weekday names are ranked in
	// first-encountered order walking the window oldest to newest.
	bySlot := make(map[timeutil.Slot]*slotTotals, len(slots))
	byWeekday := make(map[string]*slotTotals, 7)
	var weekdayOrder []string
	for i := 0; i < WindowDays; i++ {
		name := start.AddDate(0, 0, i).Weekday().String()
		if _, ok := byWeekday[name]; !ok {
			byWeekday[name] = &slotTotals{}
			weekdayOrder = append(weekdayOrder, name)
		}
	}

	for _, task := range tasks {
		i, ok := dayIndex[timeutil.Midnight(task.Date).Format("2006-01-02")]
		if !ok {
			continue
		}
		slot := timeutil.SlotFor(timeutil.Instant(task.Date, task.StartTime))
		j := slotPos[slot]

		days[i].Slots[j].Tasks++
		if task.Completed {
			days[i].Slots[j].Completed++
		}

		if bySlot[slot] == nil {
			bySlot[slot] = &slotTotals{}
		}
		bySlot[slot].tasks++
		wd := byWeekday[days[i].Date.Weekday().String()]
		wd.tasks++
		if task.Completed {
			bySlot[slot].completed++
			wd.completed++
		}
	}

	target := intensityTarget(days)
	for i := range days {
		for j := range days[i].Slots {
			sa := &days[i].Slots[j]
			if sa.Tasks == 0 {
				continue
			}
			density := math.Min(float64(sa.Tasks)/target, 1)
			rate := float64(sa.Completed) / float64(sa.Tasks)
			sa.Intensity = 0.3*density + 0.7*rate
		}
	}

	// Ties keep the first qualifying entry in iteration order.
	snapshot := &ActivitySnapshot{Days: days}
	foundSlot := false
	for _, s := range slots {
		totals := bySlot[s]
		if totals == nil || totals.tasks < MinRankingSamples {
			continue
		}
		rate := float64(totals.completed) / float64(totals.tasks)
		if !foundSlot || rate > snapshot.MostProductiveTime.CompletionRate {
			snapshot.MostProductiveTime = RankedSlot{Slot: s, CompletionRate: rate}
			foundSlot = true
		}
	}
	foundDay := false
	for _, name := range weekdayOrder {
		totals := byWeekday[name]
		if totals.tasks < MinRankingSamples {
			continue
		}
		rate := float64(totals.completed) / float64(totals.tasks)
		if !foundDay || rate > snapshot.MostProductiveDay.CompletionRate {
			snapshot.MostProductiveDay = RankedDay{Day: name, CompletionRate: rate}
			foundDay = true
		}
	}

	return snapshot
}

// intensityTarget is the 75th percentile of all day-by-slot task counts in
// the window, floored so a handful of tasks on an otherwise empty window
// cannot inflate every intensity to 1.
func intensityTarget(days []DayActivity) float64 {
	var counts []int
	for _, d := range days {
		for _, s := range d.Slots {
			counts = append(counts, s.Tasks)
		}
	}
	sort.Ints(counts)
	p75 := counts[(len(counts)*3)/4]
	return math.Max(float64(p75), intensityTargetFloor)
}
