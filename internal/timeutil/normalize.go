// Package timeutil normalizes the heterogeneous date and clock formats found
// in task records into canonical instants and time slots. Nothing in this
// package returns an error: malformed input degrades to a safe default so
// that sorting and windowing always have an instant to work with.
package timeutil

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Warn receives a message whenever malformed input is replaced by a default.
// Overridable so tests and callers can capture warnings.
var Warn = func(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warn: "+format+"\n", args...)
}

const dateLayout = "2006-01-02"

// ParseDate parses a "YYYY-MM-DD" date string. An unparseable date logs a
// warning and returns now truncated to midnight.
func ParseDate(s string, now time.Time) time.Time {
	d, err := time.ParseInLocation(dateLayout, strings.TrimSpace(s), now.Location())
	if err != nil {
		Warn("unparseable date %q, defaulting to today", s)
		return Midnight(now)
	}
	return d
}

// Midnight truncates t to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Instant combines a calendar date with a clock string into one canonical
// instant. The clock may be 24-hour "HH:MM" or "HH:MM AM/PM" (case
// insensitive, space optional). Unrecognized clock formats log a warning and
// default to midnight of the given date.
func Instant(date time.Time, clock string) time.Time {
	day := Midnight(date)
	h, m, ok := parseClock(clock)
	if !ok {
		if strings.TrimSpace(clock) != "" {
			Warn("unrecognized time %q, defaulting to midnight", clock)
		}
		return day
	}
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

// ClockMinutes returns the clock string as minutes after midnight, or -1 if
// it cannot be parsed.
func ClockMinutes(clock string) int {
	h, m, ok := parseClock(clock)
	if !ok {
		return -1
	}
	return h*60 + m
}

func parseClock(clock string) (hour, minute int, ok bool) {
	s := strings.ToUpper(strings.TrimSpace(clock))
	if s == "" {
		return 0, 0, false
	}

	meridiem := ""
	for _, suffix := range []string{"AM", "PM"} {
		if strings.HasSuffix(s, suffix) {
			meridiem = suffix
			s = strings.TrimSpace(strings.TrimSuffix(s, suffix))
			break
		}
	}

	hs, ms, found := strings.Cut(s, ":")
	if !found {
		return 0, 0, false
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(ms)
	if err != nil {
		return 0, 0, false
	}

	switch meridiem {
	case "AM":
		if h < 1 || h > 12 {
			return 0, 0, false
		}
		if h == 12 {
			h = 0
		}
	case "PM":
		if h < 1 || h > 12 {
			return 0, 0, false
		}
		if h != 12 {
			h += 12
		}
	default:
		if h < 0 || h > 23 {
			return 0, 0, false
		}
	}
	if m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}
