// Package auth issues and verifies the demo backend's token pairs.
package auth

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/crewhive/crewhive/internal/server/store"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenRevoked = errors.New("refresh token revoked")
)

// Claims carries the registered claims plus the workforce-specific ones the
// mobile clients read from the payload.
type Claims struct {
	jwt.RegisteredClaims
	Role      string `json:"role,omitempty"`
	CompanyID int64  `json:"companyId,omitempty"`
}

// Manager mints HS256 token pairs and tracks issued refresh tokens by their
// JTI so each can be redeemed exactly once.
type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration

	mu   sync.Mutex
	live map[string]struct{}
}

func NewManager(secret []byte, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		live:       make(map[string]struct{}),
	}
}

// IssuePair mints a fresh access/refresh pair for the user.
func (m *Manager) IssuePair(user store.User) (access, refresh string, err error) {
	now := time.Now()

	access, err = m.sign(Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role:      user.Role,
		CompanyID: user.CompanyID,
	})
	if err != nil {
		return "", "", err
	}

	jti := uuid.NewString()
	refresh, err = m.sign(Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.refreshTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        jti,
		},
	})
	if err != nil {
		return "", "", err
	}

	m.mu.Lock()
	m.live[jti] = struct{}{}
	m.mu.Unlock()
	return access, refresh, nil
}

func (m *Manager) sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// ParseAccess verifies an access token and returns its claims.
func (m *Manager) ParseAccess(token string) (*Claims, error) {
	return m.parse(token)
}

// RedeemRefresh verifies a refresh token, revokes it, and returns the user
// id it was issued for. A second redemption of the same token fails.
func (m *Manager) RedeemRefresh(token string) (int64, error) {
	claims, err := m.parse(token)
	if err != nil {
		return 0, err
	}

	m.mu.Lock()
	_, ok := m.live[claims.ID]
	delete(m.live, claims.ID)
	m.mu.Unlock()
	if !ok {
		return 0, ErrTokenRevoked
	}

	return strconv.ParseInt(claims.Subject, 10, 64)
}

func (m *Manager) parse(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
