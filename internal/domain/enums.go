package domain

type Category string

const (
	CategoryWork     Category = "work"
	CategoryHealth   Category = "health"
	CategoryStudy    Category = "study"
	CategoryLeisure  Category = "leisure"
	CategoryShopping Category = "shopping"
	CategoryFamily   Category = "family"
)

// ValidCategories is the canonical set of accepted task categories.
var ValidCategories = map[string]bool{
	"work": true, "health": true, "study": true,
	"leisure": true, "shopping": true, "family": true,
}

// Categories lists all categories in display order.
func Categories() []Category {
	return []Category{
		CategoryWork, CategoryHealth, CategoryStudy,
		CategoryLeisure, CategoryShopping, CategoryFamily,
	}
}

// IsWorkLike reports whether a category counts toward the work side of the
// work/life balance split. Everything else is personal.
func (c Category) IsWorkLike() bool {
	return c == CategoryWork || c == CategoryStudy
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ValidPriorities is the canonical set of accepted task priorities.
var ValidPriorities = map[string]bool{
	"high": true, "medium": true, "low": true,
}

// StressWeight returns the stress contribution of a task at this priority.
func (p Priority) StressWeight() float64 {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}

type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

type EnergyLevel string

const (
	EnergyHigh   EnergyLevel = "high"
	EnergyMedium EnergyLevel = "medium"
	EnergyLow    EnergyLevel = "low"
)

type FocusState string

const (
	FocusPeak       FocusState = "peak"
	FocusProductive FocusState = "productive"
	FocusSteady     FocusState = "steady"
	FocusWindDown   FocusState = "wind_down"
	FocusRest       FocusState = "rest"
)

// ValidEnergyLevels and ValidFocusStates gate values coming back from the
// AI strategy before they are trusted.
var ValidEnergyLevels = map[string]bool{
	"high": true, "medium": true, "low": true,
}

var ValidFocusStates = map[string]bool{
	"peak": true, "productive": true, "steady": true,
	"wind_down": true, "rest": true,
}
