package intelligence

import (
	"sort"
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/timeutil"
)

// taskTemplate is a canned draft for common recurring tasks, offered as
// quick-create shortcuts. Times are fixed; the date is resolved at lookup.
type taskTemplate struct {
	Title       string
	Description string
	Category    domain.Category
	Priority    domain.Priority
	StartTime   string
	EndTime     string
}

var taskTemplates = map[string]taskTemplate{
	"standup": {
		Title:     "Daily standup",
		Category:  domain.CategoryWork,
		Priority:  domain.PriorityMedium,
		StartTime: "09:30",
		EndTime:   "09:45",
	},
	"gym": {
		Title:     "Gym session",
		Category:  domain.CategoryHealth,
		Priority:  domain.PriorityMedium,
		StartTime: "18:00",
		EndTime:   "19:00",
	},
	"groceries": {
		Title:     "Grocery shopping",
		Category:  domain.CategoryShopping,
		Priority:  domain.PriorityLow,
		StartTime: "17:30",
		EndTime:   "18:30",
	},
	"study": {
		Title:     "Study block",
		Category:  domain.CategoryStudy,
		Priority:  domain.PriorityMedium,
		StartTime: "20:00",
		EndTime:   "21:00",
	},
	"family-dinner": {
		Title:     "Family dinner",
		Category:  domain.CategoryFamily,
		Priority:  domain.PriorityMedium,
		StartTime: "19:00",
		EndTime:   "20:00",
	},
}

// TemplateNames lists available template keys in stable order.
func TemplateNames() []string {
	names := make([]string, 0, len(taskTemplates))
	for name := range taskTemplates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DraftFromTemplate resolves a template into a draft dated today. The bool
// reports whether the template exists.
func DraftFromTemplate(name string, now time.Time) (*domain.TaskDraft, bool) {
	tpl, ok := taskTemplates[name]
	if !ok {
		return nil, false
	}
	return &domain.TaskDraft{
		Title:       tpl.Title,
		Description: tpl.Description,
		Category:    tpl.Category,
		Priority:    tpl.Priority,
		Date:        timeutil.Midnight(now),
		StartTime:   tpl.StartTime,
		EndTime:     tpl.EndTime,
	}, true
}
