package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserMessage_FixedMessagePerCategory(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrUnauthorized, msgUnauthorized},
		{ErrForbidden, msgForbidden},
		{ErrConflict, msgConflict},
		{ErrServer, msgServer},
		{ErrUnavailable, msgUnavailable},
		{fmt.Errorf("wrapped: %w", ErrUnavailable), msgUnavailable},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, UserMessage(tt.err, "whatever the backend said"))
	}
}

func TestUserMessage_GenericErrorPassesSpecificBackendMessage(t *testing.T) {
	err := errors.New("shift overlaps an approved absence")
	got := UserMessage(err, "shift overlaps an approved absence")
	assert.Equal(t, "shift overlaps an approved absence", got)
}

func TestUserMessage_DenyListedBackendMessageSuppressed(t *testing.T) {
	err := errors.New("request failed")
	for _, msg := range []string{"", "error", "Internal Server Error", "  Bad Request "} {
		assert.Equal(t, msgGeneric, UserMessage(err, msg), "backend message %q", msg)
	}
}

func TestUserMessage_NilError(t *testing.T) {
	assert.Empty(t, UserMessage(nil, "ignored"))
}
