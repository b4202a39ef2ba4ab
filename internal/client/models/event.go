// Package models defines the unified calendar model shared by the mapper,
// the reconciler and the CLI views.
package models

import (
	"time"

	"github.com/crewhive/crewhive/internal/colorx"
)

// EventKind tags where a calendar entry came from. It affects filtering and
// rendering only, never behavior.
type EventKind string

const (
	KindEvent EventKind = "EVENT"
	KindShift EventKind = "SHIFT"
)

// CalendarEvent is the in-app representation of both plain events and
// scheduled shifts. Times of day are local wall-clock "HH:mm" strings;
// Date is the local calendar day normalized to midnight.
type CalendarEvent struct {
	ID          int64
	Title       string
	Description string
	StartTime   string
	EndTime     string
	Date        time.Time
	Color       colorx.Color
	// Participants holds display names. Empty means the entry applies
	// to everyone.
	Participants []string
	Kind         EventKind
}

// DurationMinutes returns the entry length in minutes, clamped at zero when
// the end precedes the start.
func (e CalendarEvent) DurationMinutes() int {
	d := MinutesOfDay(e.EndTime) - MinutesOfDay(e.StartTime)
	if d < 0 {
		return 0
	}
	return d
}

// AppliesTo reports whether the entry is visible to the given viewer:
// either the participant list is empty or it contains the viewer.
func (e CalendarEvent) AppliesTo(viewer string) bool {
	if len(e.Participants) == 0 {
		return true
	}
	for _, p := range e.Participants {
		if p == viewer {
			return true
		}
	}
	return false
}

// MinutesOfDay converts an "HH:mm" string to minutes since midnight.
// Malformed input counts as 0.
func MinutesOfDay(hhmm string) int {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}

// Midnight normalizes t to 00:00 of its calendar day in the given location.
func Midnight(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
