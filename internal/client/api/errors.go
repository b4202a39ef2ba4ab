package api

import (
	"errors"
	"strings"
)

// Sentinel categories for upstream API failures. Repository-style callers
// branch on these; everything else is a generic client error.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrServer       = errors.New("server error")
	ErrUnavailable  = errors.New("server unavailable")
)

// Fixed user-facing message per error category.
const (
	msgUnauthorized = "Your session has expired. Please sign in again."
	msgForbidden    = "You do not have permission to do that."
	msgConflict     = "This change conflicts with an existing entry."
	msgServer       = "The server ran into a problem. Please try again later."
	msgUnavailable  = "Cannot reach the server. Check your connection."
	msgGeneric      = "Something went wrong. Please try again."
)

// genericBackendMessages lists backend strings too vague to show to users.
// A generic client error carrying one of these is replaced by msgGeneric.
var genericBackendMessages = map[string]struct{}{
	"":                      {},
	"error":                 {},
	"bad request":           {},
	"invalid request":       {},
	"internal server error": {},
	"something went wrong":  {},
}

// UserMessage translates an API error into the one fixed message shown for
// its category. For generic client errors, a specific backend message is
// passed through unless it is on the deny list.
func UserMessage(err error, backendMessage string) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnauthorized):
		return msgUnauthorized
	case errors.Is(err, ErrForbidden):
		return msgForbidden
	case errors.Is(err, ErrConflict):
		return msgConflict
	case errors.Is(err, ErrServer):
		return msgServer
	case errors.Is(err, ErrUnavailable):
		return msgUnavailable
	}
	if _, deny := genericBackendMessages[strings.ToLower(strings.TrimSpace(backendMessage))]; deny {
		return msgGeneric
	}
	return backendMessage
}
