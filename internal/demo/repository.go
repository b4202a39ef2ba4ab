// Package demo generates deterministic placeholder calendar data. It stands
// in for the real backend during development: the same date range always
// yields the same events and shifts, so screens and tests are reproducible.
package demo

import (
	"math/rand"
	"time"

	"github.com/crewhive/crewhive/internal/client/models"
	"github.com/crewhive/crewhive/internal/colorx"
)

var (
	eventTitles = []string{"Team sync", "Inventory check", "Training", "Safety briefing", "Handover"}
	shiftNames  = []string{"Morning", "Afternoon", "Evening", "Night"}
	roster      = []string{"alice", "bob", "carol", "dave"}

	palette = []colorx.Color{
		{R: 0xE5, G: 0x39, B: 0x35, A: 1},
		{R: 0x8E, G: 0x24, B: 0xAA, A: 1},
		{R: 0x39, G: 0x49, B: 0xAB, A: 1},
		{R: 0x03, G: 0x9B, B: 0xE5, A: 1},
		{R: 0xFB, G: 0x8C, B: 0x00, A: 1},
	}
)

// Repository produces placeholder events and shifts for a date range.
type Repository struct {
	loc *time.Location
}

func NewRepository(loc *time.Location) *Repository {
	if loc == nil {
		loc = time.Local
	}
	return &Repository{loc: loc}
}

// EventsBetween returns the generated plain events for [from, to], inclusive
// of both days.
func (r *Repository) EventsBetween(from, to time.Time) []models.CalendarEvent {
	var events []models.CalendarEvent
	r.eachDay(from, to, func(day time.Time, rng *rand.Rand, idBase int64) {
		for i := 0; i < 1+rng.Intn(2); i++ {
			startHour := 8 + rng.Intn(8)
			events = append(events, models.CalendarEvent{
				ID:           idBase + int64(i),
				Title:        eventTitles[rng.Intn(len(eventTitles))],
				Description:  "Generated placeholder event",
				StartTime:    clock(startHour, 0),
				EndTime:      clock(startHour+1, 0),
				Date:         day,
				Color:        palette[rng.Intn(len(palette))],
				Participants: r.pickParticipants(rng),
				Kind:         models.KindEvent,
			})
		}
	})
	return events
}

// ShiftsBetween returns the generated shifts for [from, to].
func (r *Repository) ShiftsBetween(from, to time.Time) []models.CalendarEvent {
	var shifts []models.CalendarEvent
	r.eachDay(from, to, func(day time.Time, rng *rand.Rand, idBase int64) {
		for i := 0; i < 1+rng.Intn(2); i++ {
			startHour := []int{6, 14, 22}[rng.Intn(3)]
			shifts = append(shifts, models.CalendarEvent{
				ID:           idBase + 500 + int64(i),
				Title:        shiftNames[rng.Intn(len(shiftNames))],
				Description:  "Generated placeholder shift",
				StartTime:    clock(startHour, 0),
				EndTime:      clock((startHour+8)%24, 0),
				Date:         day,
				Color:        colorx.DefaultShift,
				Participants: []string{roster[rng.Intn(len(roster))]},
				Kind:         models.KindShift,
			})
		}
	})
	return shifts
}

// eachDay walks the range one calendar day at a time. The per-day RNG is
// seeded from the day itself, which is what makes the output deterministic.
func (r *Repository) eachDay(from, to time.Time, fn func(day time.Time, rng *rand.Rand, idBase int64)) {
	from = models.Midnight(from, r.loc)
	to = models.Midnight(to, r.loc)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		epochDay := day.Unix() / 86400
		rng := rand.New(rand.NewSource(epochDay))
		fn(day, rng, epochDay*1000)
	}
}

func (r *Repository) pickParticipants(rng *rand.Rand) []string {
	if rng.Intn(3) == 0 {
		return nil // applies to everyone
	}
	n := 1 + rng.Intn(2)
	picks := make([]string, 0, n)
	for _, idx := range rng.Perm(len(roster))[:n] {
		picks = append(picks, roster[idx])
	}
	return picks
}

func clock(h, m int) string {
	return time.Date(2000, 1, 1, h, m, 0, 0, time.UTC).Format("15:04")
}
