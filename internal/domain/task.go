package domain

import "time"

// Task is a single scheduled item as stored by the task store. The insight
// engine only ever reads tasks; writes happen through TaskRepo.Create after
// the user accepts an interpreted draft.
type Task struct {
	ID          string
	Title       string
	Description string
	Category    Category
	Priority    Priority

	// Date is the calendar day (midnight, local). StartTime and EndTime are
	// clock strings in "HH:MM" or "HH:MM AM/PM" form; timeutil.Instant
	// combines them with Date into a canonical instant.
	Date      time.Time
	StartTime string
	EndTime   string

	Completed bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
