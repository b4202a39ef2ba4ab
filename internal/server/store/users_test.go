package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	s, err := NewUserStore(DefaultSeed())
	require.NoError(t, err)

	u, err := s.Authenticate("alice@crewhive.local", "alice-pass")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "MANAGER", u.Role)

	_, err = s.Authenticate("alice@crewhive.local", "wrong")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.Authenticate("nobody@crewhive.local", "x")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFindByID(t *testing.T) {
	s, err := NewUserStore(DefaultSeed())
	require.NoError(t, err)

	u, err := s.FindByID(2)
	require.NoError(t, err)
	assert.Equal(t, "bob", u.Username)

	_, err = s.FindByID(99)
	require.ErrorIs(t, err, ErrNotFound)
}
