package demo

import (
	"testing"
	"time"

	"github.com/crewhive/crewhive/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_IsDeterministic(t *testing.T) {
	r := NewRepository(time.UTC)
	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 6)

	first := r.EventsBetween(from, to)
	second := r.EventsBetween(from, to)
	assert.Equal(t, first, second)

	assert.Equal(t, r.ShiftsBetween(from, to), r.ShiftsBetween(from, to))
}

func TestRepository_CoversEveryDayInRange(t *testing.T) {
	r := NewRepository(time.UTC)
	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 2)

	days := map[string]bool{}
	for _, e := range r.EventsBetween(from, to) {
		days[e.Date.Format("2006-01-02")] = true
		assert.Equal(t, models.KindEvent, e.Kind)
	}
	assert.Len(t, days, 3)
}

func TestRepository_ShiftsAreTaggedAndAssigned(t *testing.T) {
	r := NewRepository(time.UTC)
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	shifts := r.ShiftsBetween(day, day)
	require.NotEmpty(t, shifts)
	for _, s := range shifts {
		assert.Equal(t, models.KindShift, s.Kind)
		assert.NotEmpty(t, s.Participants)
	}
}

func TestRepository_IDsAreUniqueAcrossRange(t *testing.T) {
	r := NewRepository(time.UTC)
	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 13)

	seen := map[int64]bool{}
	for _, e := range append(r.EventsBetween(from, to), r.ShiftsBetween(from, to)...) {
		require.False(t, seen[e.ID], "duplicate id %d", e.ID)
		seen[e.ID] = true
	}
}
