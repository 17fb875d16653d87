package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/pulse/internal/domain"
)

// TaskFixture builds a task with sensible defaults for tests.
func TaskFixture(date time.Time, start string, completed bool) domain.Task {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return domain.Task{
		ID:        uuid.NewString(),
		Title:     "fixture task",
		Category:  domain.CategoryWork,
		Priority:  domain.PriorityMedium,
		Date:      date,
		StartTime: start,
		EndTime:   "",
		Completed: completed,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
