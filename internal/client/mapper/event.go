// Package mapper converts between the backend's wire DTOs and the in-app
// calendar model: ISO-8601 offset date-times become a local day plus "HH:mm"
// strings, raw color strings become structured colors, and embedded
// participant records become a display-name list.
//
// All conversions take an explicit *time.Location so behavior does not
// depend on the process time zone.
package mapper

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/crewhive/crewhive/internal/client/api"
	"github.com/crewhive/crewhive/internal/client/models"
	"github.com/crewhive/crewhive/internal/colorx"
)

const hhmm = "15:04"

// DefaultEventType tags plain events on create/patch requests.
const DefaultEventType = "GENERAL"

// FromEvent maps a wire event to the unified model, tagged KindEvent.
func FromEvent(dto api.EventDTO, loc *time.Location) (models.CalendarEvent, error) {
	start, end, day, err := localTimes(dto.StartTime, dto.EndTime, loc)
	if err != nil {
		return models.CalendarEvent{}, fmt.Errorf("event %d: %w", dto.ID, err)
	}
	return models.CalendarEvent{
		ID:           dto.ID,
		Title:        dto.Title,
		Description:  dto.Description,
		StartTime:    start,
		EndTime:      end,
		Date:         day,
		Color:        colorx.Parse(dto.Color, colorx.DefaultEvent),
		Participants: participantNames(dto.Users),
		Kind:         models.KindEvent,
	}, nil
}

// FromShift maps a wire shift to the unified model, tagged KindShift.
// Title resolution: explicit title, else the shift name, else "Shift".
func FromShift(dto api.ShiftDTO, loc *time.Location) (models.CalendarEvent, error) {
	start, end, day, err := localTimes(dto.StartTime, dto.EndTime, loc)
	if err != nil {
		return models.CalendarEvent{}, fmt.Errorf("shift %d: %w", dto.ID, err)
	}

	title := "Shift"
	switch {
	case dto.Title != nil && strings.TrimSpace(*dto.Title) != "":
		title = *dto.Title
	case strings.TrimSpace(dto.ShiftName) != "":
		title = dto.ShiftName
	}

	return models.CalendarEvent{
		ID:           dto.ID,
		Title:        title,
		Description:  dto.Description,
		StartTime:    start,
		EndTime:      end,
		Date:         day,
		Color:        colorx.Parse(dto.Color, colorx.DefaultShift),
		Participants: participantNames(dto.Users),
		Kind:         models.KindShift,
	}, nil
}

// localTimes converts a pair of ISO-8601 offset date-times into local
// "HH:mm" strings and the start's calendar day at midnight.
func localTimes(startISO, endISO string, loc *time.Location) (start, end string, day time.Time, err error) {
	s, err := time.Parse(time.RFC3339, startISO)
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("parse start %q: %w", startISO, err)
	}
	e, err := time.Parse(time.RFC3339, endISO)
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("parse end %q: %w", endISO, err)
	}
	s, e = s.In(loc), e.In(loc)
	return s.Format(hhmm), e.Format(hhmm), models.Midnight(s, loc), nil
}

// participantNames prefers a non-blank username, falls back to the numeric
// user id, and drops records carrying neither.
func participantNames(users []api.EventUserDTO) []string {
	var names []string
	for _, u := range users {
		switch {
		case strings.TrimSpace(u.Username) != "":
			names = append(names, u.Username)
		case u.UserID != nil:
			names = append(names, strconv.FormatInt(*u.UserID, 10))
		}
	}
	return names
}

// ToCreateEvent builds a create/patch payload from the model. A non-positive
// duration is repaired by advancing the end one hour rather than rejected.
func ToCreateEvent(e models.CalendarEvent, participantIDs []int64, loc *time.Location) api.CreateEventRequest {
	start, end := wireTimes(e, loc)
	return api.CreateEventRequest{
		Name:           e.Title,
		Description:    e.Description,
		StartTime:      start,
		EndTime:        end,
		Color:          e.Color.HexRGB(),
		EventType:      DefaultEventType,
		ParticipantIDs: participantIDs,
	}
}

// wireTimes combines the model's day with its "HH:mm" fields into ISO-8601
// offset date-times in loc, advancing the end by one hour when the duration
// would not be positive.
func wireTimes(e models.CalendarEvent, loc *time.Location) (string, string) {
	start := combine(e.Date, e.StartTime, loc)
	end := combine(e.Date, e.EndTime, loc)
	if !end.After(start) {
		end = end.Add(time.Hour)
	}
	return start.Format(time.RFC3339), end.Format(time.RFC3339)
}

func combine(day time.Time, timeOfDay string, loc *time.Location) time.Time {
	minutes := models.MinutesOfDay(timeOfDay)
	return time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, loc)
}
