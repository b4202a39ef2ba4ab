// Package api is the thin HTTP wrapper around the CrewHive backend.
// It owns transport concerns only: request shaping, bearer auth with
// transparent refresh, and mapping HTTP failures to sentinel categories.
package api

import (
	"context"
	"time"
)

// Client is the remote API surface consumed by the client services.
// Tests substitute a fake implementation.
type Client interface {
	Close() error
	Ping(ctx context.Context) error

	SignIn(ctx context.Context, email, password string) (TokenPairDTO, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPairDTO, error)
	Me(ctx context.Context) (UserDTO, error)

	Events(ctx context.Context, from, to time.Time) ([]EventDTO, error)
	CreateEvent(ctx context.Context, req CreateEventRequest) (EventDTO, error)
	PatchEvent(ctx context.Context, id int64, req PatchEventRequest) (EventDTO, error)
	DeleteEvent(ctx context.Context, id int64) error

	Shifts(ctx context.Context, from, to time.Time) ([]ShiftDTO, error)
	CreateShift(ctx context.Context, req CreateShiftRequest) (ShiftDTO, error)
	PatchShift(ctx context.Context, id int64, req PatchShiftRequest) (ShiftDTO, error)
	DeleteShift(ctx context.Context, id int64) error

	// SetTokens primes the client with a previously persisted token pair.
	SetTokens(access, refresh string)
}
