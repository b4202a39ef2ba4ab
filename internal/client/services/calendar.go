package services

import (
	"context"
	"fmt"
	"time"

	"github.com/crewhive/crewhive/internal/client/api"
	"github.com/crewhive/crewhive/internal/client/calendar"
	"github.com/crewhive/crewhive/internal/client/mapper"
	"github.com/crewhive/crewhive/internal/client/models"
	"github.com/crewhive/crewhive/internal/logging"
)

// CalendarService loads events and shifts from the backend, maps them into
// the unified model and feeds the reconciled day view. Write operations go
// through the mapper so wire constraints (title length, positive duration)
// are applied in one place.
type CalendarService interface {
	RefreshDay(ctx context.Context, day time.Time) error
	Current() []models.CalendarEvent

	CreateEvent(ctx context.Context, e models.CalendarEvent, participantIDs []int64) (models.CalendarEvent, error)
	UpdateEvent(ctx context.Context, id int64, e models.CalendarEvent, participantIDs []int64) (models.CalendarEvent, error)
	DeleteEvent(ctx context.Context, id int64) error

	CreateShift(ctx context.Context, e models.CalendarEvent) (models.CalendarEvent, error)
	UpdateShift(ctx context.Context, id int64, e models.CalendarEvent) (models.CalendarEvent, error)
	DeleteShift(ctx context.Context, id int64) error

	WeeklyHours(ctx context.Context, viewer string, weekStart time.Time) (time.Duration, error)
}

type calendarService struct {
	client api.Client
	view   *calendar.View
	loc    *time.Location
	log    logging.Logger
}

func NewCalendarService(client api.Client, view *calendar.View, loc *time.Location, log logging.Logger) CalendarService {
	if loc == nil {
		loc = time.Local
	}
	return &calendarService{client: client, view: view, loc: loc, log: log}
}

// RefreshDay fetches both collections for the given day and publishes them
// to the view. Records the mapper rejects are logged and skipped; a partial
// day is better than none.
func (c *calendarService) RefreshDay(ctx context.Context, day time.Time) error {
	from := models.Midnight(day, c.loc)
	to := from.AddDate(0, 0, 1)

	eventDTOs, err := c.client.Events(ctx, from, to)
	if err != nil {
		return fmt.Errorf("load events: %w", err)
	}
	shiftDTOs, err := c.client.Shifts(ctx, from, to)
	if err != nil {
		return fmt.Errorf("load shifts: %w", err)
	}

	events := make([]models.CalendarEvent, 0, len(eventDTOs))
	for _, dto := range eventDTOs {
		e, err := mapper.FromEvent(dto, c.loc)
		if err != nil {
			c.log.Warn(ctx, "skipping unmappable event", "error", err)
			continue
		}
		events = append(events, e)
	}

	shifts := make([]models.CalendarEvent, 0, len(shiftDTOs))
	for _, dto := range shiftDTOs {
		s, err := mapper.FromShift(dto, c.loc)
		if err != nil {
			c.log.Warn(ctx, "skipping unmappable shift", "error", err)
			continue
		}
		shifts = append(shifts, s)
	}

	c.view.SetDay(from)
	c.view.SetEvents(events)
	c.view.SetShifts(shifts)
	return nil
}

// Current returns the last reconciled day list.
func (c *calendarService) Current() []models.CalendarEvent {
	return c.view.Current()
}

func (c *calendarService) CreateEvent(ctx context.Context, e models.CalendarEvent, participantIDs []int64) (models.CalendarEvent, error) {
	dto, err := c.client.CreateEvent(ctx, mapper.ToCreateEvent(e, participantIDs, c.loc))
	if err != nil {
		return models.CalendarEvent{}, fmt.Errorf("create event: %w", err)
	}
	return mapper.FromEvent(dto, c.loc)
}

func (c *calendarService) UpdateEvent(ctx context.Context, id int64, e models.CalendarEvent, participantIDs []int64) (models.CalendarEvent, error) {
	dto, err := c.client.PatchEvent(ctx, id, mapper.ToCreateEvent(e, participantIDs, c.loc))
	if err != nil {
		return models.CalendarEvent{}, fmt.Errorf("update event %d: %w", id, err)
	}
	return mapper.FromEvent(dto, c.loc)
}

func (c *calendarService) DeleteEvent(ctx context.Context, id int64) error {
	if err := c.client.DeleteEvent(ctx, id); err != nil {
		return fmt.Errorf("delete event %d: %w", id, err)
	}
	return nil
}

func (c *calendarService) CreateShift(ctx context.Context, e models.CalendarEvent) (models.CalendarEvent, error) {
	dto, err := c.client.CreateShift(ctx, mapper.ToCreateShift(e, c.loc))
	if err != nil {
		return models.CalendarEvent{}, fmt.Errorf("create shift: %w", err)
	}
	return mapper.FromShift(dto, c.loc)
}

func (c *calendarService) UpdateShift(ctx context.Context, id int64, e models.CalendarEvent) (models.CalendarEvent, error) {
	dto, err := c.client.PatchShift(ctx, id, mapper.ToCreateShift(e, c.loc))
	if err != nil {
		return models.CalendarEvent{}, fmt.Errorf("update shift %d: %w", id, err)
	}
	return mapper.FromShift(dto, c.loc)
}

func (c *calendarService) DeleteShift(ctx context.Context, id int64) error {
	if err := c.client.DeleteShift(ctx, id); err != nil {
		return fmt.Errorf("delete shift %d: %w", id, err)
	}
	return nil
}

// WeeklyHours sums the durations of the viewer's shifts in the seven days
// starting at weekStart. Shifts with an empty participant list count for
// everyone, matching the calendar's visibility rule.
func (c *calendarService) WeeklyHours(ctx context.Context, viewer string, weekStart time.Time) (time.Duration, error) {
	from := models.Midnight(weekStart, c.loc)
	to := from.AddDate(0, 0, 7)

	dtos, err := c.client.Shifts(ctx, from, to)
	if err != nil {
		return 0, fmt.Errorf("load shifts: %w", err)
	}

	var minutes int
	for _, dto := range dtos {
		s, err := mapper.FromShift(dto, c.loc)
		if err != nil {
			c.log.Warn(ctx, "skipping unmappable shift", "error", err)
			continue
		}
		if s.AppliesTo(viewer) {
			minutes += s.DurationMinutes()
		}
	}
	return time.Duration(minutes) * time.Minute, nil
}
