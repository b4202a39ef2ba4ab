package mapper

import (
	"strings"
	"time"

	"github.com/crewhive/crewhive/internal/client/api"
	"github.com/crewhive/crewhive/internal/client/models"
)

// Backend constraints on shift fields.
const (
	shiftTitleMin = 3
	shiftTitleMax = 32
	shiftDescMax  = 256
)

// ToCreateShift builds a shift create/patch payload. On top of the common
// time handling it sanitizes the title and description to the backend's
// length constraints and guarantees a strictly positive duration.
func ToCreateShift(e models.CalendarEvent, loc *time.Location) api.CreateShiftRequest {
	start, end := wireTimes(e, loc)
	return api.CreateShiftRequest{
		Name:        SanitizeShiftTitle(e.Title),
		Description: truncate(e.Description, shiftDescMax),
		StartTime:   start,
		EndTime:     end,
		Color:       e.Color.HexRGB(),
	}
}

// SanitizeShiftTitle trims the title, pads it with underscores to the
// three-character minimum, and truncates it to the 32-character maximum.
func SanitizeShiftTitle(title string) string {
	title = strings.TrimSpace(title)
	for len(title) < shiftTitleMin {
		title += "_"
	}
	return truncate(title, shiftTitleMax)
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
