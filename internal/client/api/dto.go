package api

// Wire shapes exchanged with the CrewHive backend. Date-times travel as
// ISO-8601 offset strings; colors as raw strings the colorx package can
// interpret. The mapper package converts these to the in-app model.

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenPairDTO struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type UserDTO struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CompanyID *int64 `json:"companyId,omitempty"`
}

// EventUserDTO is an embedded participant record. UserID is nullable on the
// wire; records carrying neither a username nor an id are dropped by the
// mapper.
type EventUserDTO struct {
	UserID   *int64 `json:"userId,omitempty"`
	Username string `json:"username,omitempty"`
}

type EventDTO struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	StartTime   string         `json:"startTime"`
	EndTime     string         `json:"endTime"`
	Color       string         `json:"color"`
	EventType   string         `json:"eventType,omitempty"`
	Users       []EventUserDTO `json:"users,omitempty"`
}

// ShiftDTO differs from EventDTO in its title handling: Title is optional
// and falls back to the shift name, then to "Shift".
type ShiftDTO struct {
	ID          int64          `json:"id"`
	Title       *string        `json:"title,omitempty"`
	ShiftName   string         `json:"shiftName"`
	Description string         `json:"description"`
	StartTime   string         `json:"startTime"`
	EndTime     string         `json:"endTime"`
	Color       string         `json:"color"`
	Users       []EventUserDTO `json:"users,omitempty"`
}

type CreateEventRequest struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	Color          string  `json:"color"`
	EventType      string  `json:"eventType"`
	ParticipantIDs []int64 `json:"participantIds,omitempty"`
}

type PatchEventRequest = CreateEventRequest

type CreateShiftRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Color       string `json:"color"`
}

type PatchShiftRequest = CreateShiftRequest
