package demo

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/crewhive/crewhive/internal/client/api"
	"github.com/crewhive/crewhive/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
)

var demoSigningKey = []byte("crewhive-demo")

// Client serves the remote API surface entirely in-process from the
// generated repository, so the CLI can be exercised without a backend.
// Entries created during the session are kept in memory and merged into
// range queries; the generated baseline itself is immutable.
type Client struct {
	repo *Repository
	loc  *time.Location

	mu     sync.Mutex
	nextID int64
	events []api.EventDTO
	shifts []api.ShiftDTO
}

var _ api.Client = (*Client)(nil)

func NewClient(loc *time.Location) *Client {
	if loc == nil {
		loc = time.Local
	}
	// Session-created ids start far above the generated id space.
	return &Client{repo: NewRepository(loc), loc: loc, nextID: 900_000}
}

func (c *Client) Close() error                   { return nil }
func (c *Client) Ping(ctx context.Context) error { return nil }
func (c *Client) SetTokens(access, refresh string) {}

// SignIn accepts any credentials and mints a short-lived demo token pair.
func (c *Client) SignIn(ctx context.Context, email, password string) (api.TokenPairDTO, error) {
	return c.mintPair()
}

func (c *Client) Refresh(ctx context.Context, refreshToken string) (api.TokenPairDTO, error) {
	return c.mintPair()
}

func (c *Client) mintPair() (api.TokenPairDTO, error) {
	access, err := c.mint(8 * time.Hour)
	if err != nil {
		return api.TokenPairDTO{}, err
	}
	refresh, err := c.mint(30 * 24 * time.Hour)
	if err != nil {
		return api.TokenPairDTO{}, err
	}
	return api.TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}

func (c *Client) mint(ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":       "1",
		"role":      "EMPLOYEE",
		"companyId": 1,
		"exp":       time.Now().Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(demoSigningKey)
}

func (c *Client) Me(ctx context.Context) (api.UserDTO, error) {
	companyID := int64(1)
	return api.UserDTO{
		ID: 1, Username: "demo", Email: "demo@crewhive.local",
		Role: "EMPLOYEE", CompanyID: &companyID,
	}, nil
}

func (c *Client) Events(ctx context.Context, from, to time.Time) ([]api.EventDTO, error) {
	// The API range is half-open on day boundaries; the repository takes
	// inclusive days.
	generated := c.repo.EventsBetween(from, to.AddDate(0, 0, -1))

	out := make([]api.EventDTO, 0, len(generated))
	for _, e := range generated {
		out = append(out, c.eventDTO(e))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, dto := range c.events {
		if inRange(dto.StartTime, from, to) {
			out = append(out, dto)
		}
	}
	return out, nil
}

func (c *Client) CreateEvent(ctx context.Context, req api.CreateEventRequest) (api.EventDTO, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	dto := api.EventDTO{
		ID: c.takeID(), Title: req.Name, Description: req.Description,
		StartTime: req.StartTime, EndTime: req.EndTime,
		Color: req.Color, EventType: req.EventType,
		Users: usersFromIDs(req.ParticipantIDs),
	}
	c.events = append(c.events, dto)
	return dto, nil
}

func (c *Client) PatchEvent(ctx context.Context, id int64, req api.PatchEventRequest) (api.EventDTO, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, dto := range c.events {
		if dto.ID == id {
			dto.Title, dto.Description = req.Name, req.Description
			dto.StartTime, dto.EndTime = req.StartTime, req.EndTime
			dto.Color, dto.EventType = req.Color, req.EventType
			dto.Users = usersFromIDs(req.ParticipantIDs)
			c.events[i] = dto
			return dto, nil
		}
	}
	return api.EventDTO{}, api.ErrConflict
}

func (c *Client) DeleteEvent(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, dto := range c.events {
		if dto.ID == id {
			c.events = append(c.events[:i], c.events[i+1:]...)
			return nil
		}
	}
	return api.ErrConflict
}

func (c *Client) Shifts(ctx context.Context, from, to time.Time) ([]api.ShiftDTO, error) {
	generated := c.repo.ShiftsBetween(from, to.AddDate(0, 0, -1))

	out := make([]api.ShiftDTO, 0, len(generated))
	for _, s := range generated {
		out = append(out, c.shiftDTO(s))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, dto := range c.shifts {
		if inRange(dto.StartTime, from, to) {
			out = append(out, dto)
		}
	}
	return out, nil
}

func (c *Client) CreateShift(ctx context.Context, req api.CreateShiftRequest) (api.ShiftDTO, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	dto := api.ShiftDTO{
		ID: c.takeID(), ShiftName: req.Name, Description: req.Description,
		StartTime: req.StartTime, EndTime: req.EndTime, Color: req.Color,
	}
	c.shifts = append(c.shifts, dto)
	return dto, nil
}

func (c *Client) PatchShift(ctx context.Context, id int64, req api.PatchShiftRequest) (api.ShiftDTO, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, dto := range c.shifts {
		if dto.ID == id {
			dto.ShiftName, dto.Description = req.Name, req.Description
			dto.StartTime, dto.EndTime = req.StartTime, req.EndTime
			dto.Color = req.Color
			c.shifts[i] = dto
			return dto, nil
		}
	}
	return api.ShiftDTO{}, api.ErrConflict
}

func (c *Client) DeleteShift(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, dto := range c.shifts {
		if dto.ID == id {
			c.shifts = append(c.shifts[:i], c.shifts[i+1:]...)
			return nil
		}
	}
	return api.ErrConflict
}

func (c *Client) takeID() int64 {
	id := c.nextID
	c.nextID++
	return id
}

func (c *Client) eventDTO(e models.CalendarEvent) api.EventDTO {
	start, end := c.isoTimes(e)
	return api.EventDTO{
		ID: e.ID, Title: e.Title, Description: e.Description,
		StartTime: start, EndTime: end, Color: e.Color.HexRGB(),
		Users: usersFromNames(e.Participants),
	}
}

func (c *Client) shiftDTO(e models.CalendarEvent) api.ShiftDTO {
	start, end := c.isoTimes(e)
	return api.ShiftDTO{
		ID: e.ID, ShiftName: e.Title, Description: e.Description,
		StartTime: start, EndTime: end, Color: e.Color.HexRGB(),
		Users: usersFromNames(e.Participants),
	}
}

func (c *Client) isoTimes(e models.CalendarEvent) (string, string) {
	return c.iso(e.Date, e.StartTime), c.iso(e.Date, e.EndTime)
}

func (c *Client) iso(day time.Time, hhmm string) string {
	minutes := models.MinutesOfDay(hhmm)
	t := time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, c.loc)
	return t.Format(time.RFC3339)
}

func inRange(startISO string, from, to time.Time) bool {
	t, err := time.Parse(time.RFC3339, startISO)
	if err != nil {
		return false
	}
	return !t.Before(from) && t.Before(to)
}

func usersFromNames(names []string) []api.EventUserDTO {
	var users []api.EventUserDTO
	for _, n := range names {
		users = append(users, api.EventUserDTO{Username: n})
	}
	return users
}

func usersFromIDs(ids []int64) []api.EventUserDTO {
	var users []api.EventUserDTO
	for _, id := range ids {
		id := id
		users = append(users, api.EventUserDTO{UserID: &id, Username: strconv.FormatInt(id, 10)})
	}
	return users
}
