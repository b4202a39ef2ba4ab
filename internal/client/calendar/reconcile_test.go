package calendar

import (
	"testing"
	"time"

	"github.com/crewhive/crewhive/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func entry(id int64, title, start, end string, d time.Time, kind models.EventKind, participants ...string) models.CalendarEvent {
	return models.CalendarEvent{
		ID: id, Title: title, StartTime: start, EndTime: end,
		Date: d, Kind: kind, Participants: participants,
	}
}

func TestReconcile_DeduplicatesFirstOccurrenceWins(t *testing.T) {
	events := []models.CalendarEvent{entry(1, "Standup", "09:00", "10:00", day, models.KindEvent)}
	shifts := []models.CalendarEvent{entry(2, "Standup", "09:00", "10:00", day, models.KindShift)}

	got := Reconcile(events, shifts, "alice", day)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, models.KindEvent, got[0].Kind)
}

func TestReconcile_SameSlotDifferentYearsIsNotADuplicate(t *testing.T) {
	nextYear := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)
	events := []models.CalendarEvent{
		entry(1, "Standup", "09:00", "10:00", day, models.KindEvent),
		entry(2, "Standup", "09:00", "10:00", nextYear, models.KindEvent),
	}

	got := Reconcile(events, nil, "alice", day)
	require.Len(t, got, 1) // second entry survives dedup but fails the day filter
	assert.Equal(t, int64(1), got[0].ID)
}

func TestReconcile_FiltersByViewerVisibility(t *testing.T) {
	events := []models.CalendarEvent{
		entry(1, "All hands", "09:00", "10:00", day, models.KindEvent), // empty participants = everyone
		entry(2, "1:1", "10:00", "11:00", day, models.KindEvent, "bob"),
		entry(3, "Review", "11:00", "12:00", day, models.KindEvent, "alice", "bob"),
	}

	got := Reconcile(events, nil, "alice", day)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestReconcile_SortsByStartTime(t *testing.T) {
	events := []models.CalendarEvent{
		entry(1, "Late", "15:00", "16:00", day, models.KindEvent),
		entry(2, "Early", "08:30", "09:00", day, models.KindEvent),
		entry(3, "Noon", "12:00", "13:00", day, models.KindEvent),
	}

	got := Reconcile(events, nil, "alice", day)
	require.Len(t, got, 3)
	assert.Equal(t, []int64{2, 3, 1}, []int64{got[0].ID, got[1].ID, got[2].ID})
}

func TestReconcile_EndToEndScenario(t *testing.T) {
	events := []models.CalendarEvent{
		entry(1, "Standup", "09:00", "10:00", day, models.KindEvent),
	}

	onDay := Reconcile(events, nil, "alice", day)
	require.Len(t, onDay, 1)
	assert.Equal(t, "Standup", onDay[0].Title)

	nextDay := Reconcile(events, nil, "alice", day.AddDate(0, 0, 1))
	assert.Empty(t, nextDay)
}

func TestReconcile_DoesNotMutateInputs(t *testing.T) {
	events := []models.CalendarEvent{
		entry(1, "B", "10:00", "11:00", day, models.KindEvent),
		entry(2, "A", "09:00", "10:00", day, models.KindEvent),
	}

	_ = Reconcile(events, nil, "alice", day)
	assert.Equal(t, int64(1), events[0].ID)
	assert.Equal(t, int64(2), events[1].ID)
}

func TestView_RecomputesOnEverySnapshotChange(t *testing.T) {
	v := NewView("alice", day)

	var published [][]models.CalendarEvent
	v.Subscribe(func(list []models.CalendarEvent) {
		published = append(published, list)
	})
	require.Len(t, published, 1) // immediate publish on subscribe
	assert.Empty(t, published[0])

	v.SetEvents([]models.CalendarEvent{entry(1, "Standup", "09:00", "10:00", day, models.KindEvent)})
	v.SetShifts([]models.CalendarEvent{entry(2, "Morning", "08:00", "12:00", day, models.KindShift)})
	require.Len(t, published, 3)
	assert.Len(t, published[2], 2)

	v.SetViewer("bob")
	require.Len(t, published, 4)
	assert.Len(t, published[3], 2) // both entries apply to everyone

	v.SetDay(day.AddDate(0, 0, 1))
	require.Len(t, published, 5)
	assert.Empty(t, published[4])
}

func TestView_CurrentReturnsCopy(t *testing.T) {
	v := NewView("alice", day)
	v.SetEvents([]models.CalendarEvent{entry(1, "Standup", "09:00", "10:00", day, models.KindEvent)})

	first := v.Current()
	require.Len(t, first, 1)
	first[0].Title = "mutated"

	assert.Equal(t, "Standup", v.Current()[0].Title)
}
