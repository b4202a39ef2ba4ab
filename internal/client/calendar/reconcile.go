// Package calendar merges the independently fetched event and shift
// collections into the deduplicated, filtered, sorted list the UI renders
// for a single day.
package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/crewhive/crewhive/internal/client/models"
)

// Reconcile computes the entries relevant to viewer on day:
//
//  1. events and shifts are concatenated, events first;
//  2. duplicates sharing calendar day (year + day-of-year), start/end range
//     and title collapse to the first occurrence;
//  3. only entries on day that are visible to viewer survive (an empty
//     participant list means "everyone");
//  4. the result is ordered by start time.
//
// Inputs are never mutated; the result is a fresh slice.
func Reconcile(events, shifts []models.CalendarEvent, viewer string, day time.Time) []models.CalendarEvent {
	merged := make([]models.CalendarEvent, 0, len(events)+len(shifts))
	merged = append(merged, events...)
	merged = append(merged, shifts...)

	seen := make(map[string]struct{}, len(merged))
	result := make([]models.CalendarEvent, 0, len(merged))
	for _, e := range merged {
		key := dedupKey(e)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		if !models.SameDay(e.Date, day) || !e.AppliesTo(viewer) {
			continue
		}
		result = append(result, e)
	}

	// Zero-padded "HH:mm" sorts lexically in chronological order.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartTime < result[j].StartTime
	})
	return result
}

// dedupKey combines year and day-of-year so identical slots in different
// years do not collide.
func dedupKey(e models.CalendarEvent) string {
	return fmt.Sprintf("%d/%03d|%s-%s|%s", e.Date.Year(), e.Date.YearDay(), e.StartTime, e.EndTime, e.Title)
}
