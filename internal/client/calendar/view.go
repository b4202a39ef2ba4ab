package calendar

import (
	"sync"
	"time"

	"github.com/crewhive/crewhive/internal/client/models"
)

// Listener receives the freshly reconciled day view.
type Listener func([]models.CalendarEvent)

// View holds the latest snapshots of the two source collections plus the
// viewer identity and the day of interest, and re-runs Reconcile whenever
// any of them changes. The published list is replaced wholesale; snapshots
// are copied on the way in and out, so callers may keep mutating their own
// slices freely.
type View struct {
	mu       sync.Mutex
	events   []models.CalendarEvent
	shifts   []models.CalendarEvent
	viewer   string
	day      time.Time
	current  []models.CalendarEvent
	listener Listener
}

func NewView(viewer string, day time.Time) *View {
	return &View{viewer: viewer, day: day}
}

// Subscribe registers the single listener notified after every recompute.
// It fires immediately with the current state.
func (v *View) Subscribe(fn Listener) {
	v.mu.Lock()
	v.listener = fn
	v.mu.Unlock()
	v.recompute()
}

// SetEvents replaces the plain-events snapshot.
func (v *View) SetEvents(events []models.CalendarEvent) {
	v.mu.Lock()
	v.events = append([]models.CalendarEvent(nil), events...)
	v.mu.Unlock()
	v.recompute()
}

// SetShifts replaces the shifts snapshot.
func (v *View) SetShifts(shifts []models.CalendarEvent) {
	v.mu.Lock()
	v.shifts = append([]models.CalendarEvent(nil), shifts...)
	v.mu.Unlock()
	v.recompute()
}

// SetViewer changes which user's visibility rules apply.
func (v *View) SetViewer(viewer string) {
	v.mu.Lock()
	v.viewer = viewer
	v.mu.Unlock()
	v.recompute()
}

// SetDay changes the day the view is focused on.
func (v *View) SetDay(day time.Time) {
	v.mu.Lock()
	v.day = day
	v.mu.Unlock()
	v.recompute()
}

// Current returns a copy of the last published list.
func (v *View) Current() []models.CalendarEvent {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]models.CalendarEvent(nil), v.current...)
}

func (v *View) recompute() {
	v.mu.Lock()
	v.current = Reconcile(v.events, v.shifts, v.viewer, v.day)
	fn := v.listener
	out := append([]models.CalendarEvent(nil), v.current...)
	v.mu.Unlock()

	if fn != nil {
		fn(out)
	}
}
