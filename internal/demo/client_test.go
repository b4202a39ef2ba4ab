package demo

import (
	"context"
	"testing"
	"time"

	"github.com/crewhive/crewhive/internal/client/api"
	"github.com/crewhive/crewhive/internal/jwtx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SignInMintsReadableClaims(t *testing.T) {
	c := NewClient(time.UTC)

	pair, err := c.SignIn(context.Background(), "anyone@example.com", "anything")
	require.NoError(t, err)

	claims, ok := jwtx.Extract(pair.AccessToken)
	require.True(t, ok)
	require.NotNil(t, claims.UserID)
	assert.Equal(t, int64(1), *claims.UserID)
	require.NotNil(t, claims.Role)
	assert.Equal(t, "EMPLOYEE", *claims.Role)
	assert.False(t, jwtx.IsAboutToExpire(pair.AccessToken, time.Minute))
}

func TestClient_EventsMatchGeneratedBaseline(t *testing.T) {
	c := NewClient(time.UTC)
	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	events, err := c.Events(context.Background(), from, to)
	require.NoError(t, err)

	baseline := c.repo.EventsBetween(from, from)
	assert.Len(t, events, len(baseline))
	for _, dto := range events {
		start, err := time.Parse(time.RFC3339, dto.StartTime)
		require.NoError(t, err)
		assert.Equal(t, from.Day(), start.Day())
	}
}

func TestClient_CreatedEventsAppearInRange(t *testing.T) {
	c := NewClient(time.UTC)
	ctx := context.Background()
	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	created, err := c.CreateEvent(ctx, api.CreateEventRequest{
		Name: "Recount", StartTime: "2025-06-02T10:00:00Z", EndTime: "2025-06-02T11:00:00Z",
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, created.ID, int64(900_000))

	events, err := c.Events(ctx, from, to)
	require.NoError(t, err)

	var found bool
	for _, e := range events {
		if e.ID == created.ID {
			found = true
		}
	}
	assert.True(t, found)

	require.NoError(t, c.DeleteEvent(ctx, created.ID))
	require.ErrorIs(t, c.DeleteEvent(ctx, created.ID), api.ErrConflict)
}

func TestClient_PatchShiftRoundTrip(t *testing.T) {
	c := NewClient(time.UTC)
	ctx := context.Background()

	created, err := c.CreateShift(ctx, api.CreateShiftRequest{
		Name: "Morning", StartTime: "2025-06-02T06:00:00Z", EndTime: "2025-06-02T14:00:00Z",
	})
	require.NoError(t, err)

	patched, err := c.PatchShift(ctx, created.ID, api.PatchShiftRequest{
		Name: "Evening", StartTime: "2025-06-02T14:00:00Z", EndTime: "2025-06-02T22:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "Evening", patched.ShiftName)

	_, err = c.PatchShift(ctx, 424242, api.PatchShiftRequest{Name: "X"})
	require.ErrorIs(t, err, api.ErrConflict)
}
