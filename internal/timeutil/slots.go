package timeutil

import "time"

// Slot is a named bucket of the 24-hour day. The seven slots partition the
// day with no gaps or overlaps: a long night bucket covers 00:00-06:00 and
// six three-hour buckets cover the rest.
type Slot string

const (
	SlotNight          Slot = "12AM-6AM"
	SlotEarlyMorning   Slot = "6AM-9AM"
	SlotMorning        Slot = "9AM-12PM"
	SlotEarlyAfternoon Slot = "12PM-3PM"
	SlotLateAfternoon  Slot = "3PM-6PM"
	SlotEvening        Slot = "6PM-9PM"
	SlotLateEvening    Slot = "9PM-12AM"
)

var slotOrder = []Slot{
	SlotNight,
	SlotEarlyMorning,
	SlotMorning,
	SlotEarlyAfternoon,
	SlotLateAfternoon,
	SlotEvening,
	SlotLateEvening,
}

// Slots returns all slots in chronological order.
func Slots() []Slot {
	out := make([]Slot, len(slotOrder))
	copy(out, slotOrder)
	return out
}

// SlotForHour maps an hour of day (0-23) to its slot. Out-of-range hours
// fold into the night slot.
func SlotForHour(hour int) Slot {
	switch {
	case hour >= 6 && hour < 9:
		return SlotEarlyMorning
	case hour >= 9 && hour < 12:
		return SlotMorning
	case hour >= 12 && hour < 15:
		return SlotEarlyAfternoon
	case hour >= 15 && hour < 18:
		return SlotLateAfternoon
	case hour >= 18 && hour < 21:
		return SlotEvening
	case hour >= 21 && hour < 24:
		return SlotLateEvening
	default:
		return SlotNight
	}
}

// SlotFor maps an instant to its slot.
func SlotFor(t time.Time) Slot {
	return SlotForHour(t.Hour())
}
