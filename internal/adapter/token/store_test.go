package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "advertiser-1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func TestStoreOpaqueToken(t *testing.T) {
	s := NewStore("opaque-token")
	assert.Equal(t, "opaque-token", s.Get())

	_, ok := s.Expiry()
	assert.False(t, ok)

	s.Clear()
	assert.Empty(t, s.Get())
}

func TestStoreExpiredJWT(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	s := NewStore("")
	s.now = func() time.Time { return now }

	live := signed(t, now.Add(time.Hour))
	s.Set(live)
	assert.Equal(t, live, s.Get())
	exp, ok := s.Expiry()
	require.True(t, ok)
	assert.True(t, exp.Equal(now.Add(time.Hour)))

	s.Set(signed(t, now.Add(-time.Minute)))
	assert.Empty(t, s.Get())
	assert.Empty(t, s.Get(), "expired token is dropped")
}
