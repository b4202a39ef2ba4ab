package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/crewhive/crewhive/internal/client/api"
	"github.com/crewhive/crewhive/internal/client/models"
)

// Today shows the combined day view for the current date.
func (a *App) Today(ctx context.Context) error {
	return a.showDay(ctx, models.Midnight(time.Now(), a.loc))
}

// Day shows the combined day view for the given YYYY-MM-DD date.
func (a *App) Day(ctx context.Context, date string) error {
	day, err := parseDate(date, a.loc)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	return a.showDay(ctx, day)
}

func (a *App) showDay(ctx context.Context, day time.Time) error {
	if err := a.cal.RefreshDay(ctx, day); err != nil {
		printlnFn(api.UserMessage(err, ""))
		return err
	}

	entries := a.cal.Current()
	printlnFn(day.Format("Mon 2006-01-02") + ":")
	if len(entries) == 0 {
		printlnFn("  (nothing scheduled)")
		return nil
	}
	for _, e := range entries {
		printlnFn("  " + renderEntry(e))
	}
	return nil
}

// renderEntry formats one calendar line, e.g.:
//
//	09:00-09:15  Standup [shift] (alice, bob) #2196F3
func renderEntry(e models.CalendarEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s-%s  %s", e.StartTime, e.EndTime, e.Title)
	if e.Kind == models.KindShift {
		b.WriteString(" [shift]")
	}
	if len(e.Participants) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(e.Participants, ", "))
	}
	fmt.Fprintf(&b, " #%s", e.Color.HexRGB())
	return b.String()
}

// AddEvent interactively collects event fields and creates the event on the
// currently shown day.
func (a *App) AddEvent(ctx context.Context) error {
	e, err := a.promptEntry(ctx, models.KindEvent)
	if err != nil {
		return err
	}

	created, err := a.cal.CreateEvent(ctx, e, nil)
	if err != nil {
		printlnFn(api.UserMessage(err, ""))
		return err
	}
	printlnFn(fmt.Sprintf("Created event %d", created.ID))
	return a.showDay(ctx, e.Date)
}

// AddShift interactively collects shift fields and creates the shift on the
// currently shown day.
func (a *App) AddShift(ctx context.Context) error {
	e, err := a.promptEntry(ctx, models.KindShift)
	if err != nil {
		return err
	}

	created, err := a.cal.CreateShift(ctx, e)
	if err != nil {
		printlnFn(api.UserMessage(err, ""))
		return err
	}
	printlnFn(fmt.Sprintf("Created shift %d", created.ID))
	return a.showDay(ctx, e.Date)
}

func (a *App) promptEntry(ctx context.Context, kind models.EventKind) (models.CalendarEvent, error) {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return models.CalendarEvent{}, err
	}
	day, err := GetDate(a.reader, "Date", a.loc, os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return models.CalendarEvent{}, err
	}
	start, err := GetTimeOfDay(a.reader, "Start", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return models.CalendarEvent{}, err
	}
	end, err := GetTimeOfDay(a.reader, "End", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return models.CalendarEvent{}, err
	}

	return models.CalendarEvent{
		Title:     title,
		StartTime: start,
		EndTime:   end,
		Date:      day,
		Kind:      kind,
	}, nil
}

// DeleteEntry removes an event or shift by id. kind is "event" or "shift".
func (a *App) DeleteEntry(ctx context.Context, kind, rawID string) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		printlnFn("Usage: delete <event|shift> <numeric id>")
		return err
	}

	switch kind {
	case "event":
		err = a.cal.DeleteEvent(ctx, id)
	case "shift":
		err = a.cal.DeleteShift(ctx, id)
	default:
		printlnFn("Usage: delete <event|shift> <id>")
		return fmt.Errorf("unknown kind %q", kind)
	}

	if err != nil {
		printlnFn(api.UserMessage(err, ""))
		return err
	}
	printlnFn("Deleted.")
	return nil
}

// Hours prints the viewer's scheduled shift hours for the current week
// (Monday through Sunday).
func (a *App) Hours(ctx context.Context) error {
	weekStart := startOfWeek(time.Now().In(a.loc))

	total, err := a.cal.WeeklyHours(ctx, a.userName, weekStart)
	if err != nil {
		printlnFn(api.UserMessage(err, ""))
		return err
	}

	printlnFn(fmt.Sprintf("Scheduled hours for week of %s: %.1f",
		weekStart.Format("2006-01-02"), total.Hours()))
	return nil
}

// startOfWeek returns the Monday midnight of t's week.
func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	day := t.AddDate(0, 0, -offset)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, t.Location())
}
