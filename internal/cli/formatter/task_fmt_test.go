package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/pulse/internal/domain"
)

func TestFormatDraft(t *testing.T) {
	draft := &domain.TaskDraft{
		Title:       "Call the client",
		Description: "Discuss contract renewal",
		Category:    domain.CategoryWork,
		Priority:    domain.PriorityHigh,
		Date:        time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		StartTime:   "14:00",
		EndTime:     "14:30",
		AIGenerated: true,
		Error:       "start_time guessed",
	}

	out := FormatDraft(draft)
	assert.Contains(t, out, "Call the client")
	assert.Contains(t, out, "Discuss contract renewal")
	assert.Contains(t, out, "Work")
	assert.Contains(t, out, "14:00 - 14:30")
	assert.Contains(t, out, "interpreted by ai")
	assert.Contains(t, out, "start_time guessed")
}

func TestFormatTaskList(t *testing.T) {
	tasks := []domain.Task{
		{
			ID:        "0195c2f8-aaaa-bbbb-cccc-0123456789ab",
			Title:     "Gym session",
			Category:  domain.CategoryHealth,
			Priority:  domain.PriorityMedium,
			Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			StartTime: "18:00",
			EndTime:   "19:00",
			Completed: true,
		},
	}

	out := FormatTaskList(tasks)
	assert.Contains(t, out, "0195c2f8")
	assert.NotContains(t, out, "0123456789ab")
	assert.Contains(t, out, "Gym session")
	assert.Contains(t, out, "18:00-19:00")
	assert.Contains(t, out, "Health")
}

func TestFormatTaskList_Empty(t *testing.T) {
	assert.Contains(t, FormatTaskList(nil), "No tasks.")
}
