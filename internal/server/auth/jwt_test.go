package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewhive/crewhive/internal/server/store"
)

func testUser() store.User {
	return store.User{ID: 7, Username: "grace", Role: "MANAGER", CompanyID: 42}
}

func TestIssuePair_AccessCarriesWorkforceClaims(t *testing.T) {
	m := NewManager([]byte("secret"), time.Minute, time.Hour)

	access, refresh, err := m.IssuePair(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, refresh)

	claims, err := m.ParseAccess(access)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, "MANAGER", claims.Role)
	assert.Equal(t, int64(42), claims.CompanyID)
}

func TestParseAccess_RejectsWrongKey(t *testing.T) {
	m := NewManager([]byte("secret"), time.Minute, time.Hour)
	access, _, err := m.IssuePair(testUser())
	require.NoError(t, err)

	other := NewManager([]byte("different"), time.Minute, time.Hour)
	_, err = other.ParseAccess(access)
	require.Error(t, err)
}

func TestParseAccess_RejectsExpired(t *testing.T) {
	m := NewManager([]byte("secret"), -time.Minute, time.Hour)
	access, _, err := m.IssuePair(testUser())
	require.NoError(t, err)

	_, err = m.ParseAccess(access)
	require.Error(t, err)
}

func TestRedeemRefresh_SingleUse(t *testing.T) {
	m := NewManager([]byte("secret"), time.Minute, time.Hour)
	_, refresh, err := m.IssuePair(testUser())
	require.NoError(t, err)

	id, err := m.RedeemRefresh(refresh)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	_, err = m.RedeemRefresh(refresh)
	require.ErrorIs(t, err, ErrTokenRevoked)
}

func TestRedeemRefresh_RejectsForeignToken(t *testing.T) {
	m := NewManager([]byte("secret"), time.Minute, time.Hour)
	_, err := m.RedeemRefresh("not-a-token")
	require.Error(t, err)
}
