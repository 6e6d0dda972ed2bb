package token

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Store is the in-memory bearer token holder used by the platform API
// client. Tokens are opaque to the dashboard; when one parses as a JWT its
// exp claim is honoured and an expired token reads as absent.
type Store struct {
	mu    sync.RWMutex
	token string
	now   func() time.Time
}

// NewStore returns a store seeded with initial, which may be empty.
func NewStore(initial string) *Store {
	return &Store{token: initial, now: time.Now}
}

// Get returns the current token or "" when none is set or it has expired.
func (s *Store) Get() string {
	s.mu.RLock()
	tok := s.token
	s.mu.RUnlock()
	if tok == "" || !s.expired(tok) {
		return tok
	}

	s.mu.Lock()
	if s.token == tok {
		s.token = ""
	}
	s.mu.Unlock()
	return ""
}

// Set replaces the current token. An empty token clears it.
func (s *Store) Set(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// Clear drops the token, typically after the platform answered 401.
func (s *Store) Clear() {
	s.Set("")
}

// Expiry returns the exp claim of the current token, if it carries one.
func (s *Store) Expiry() (time.Time, bool) {
	s.mu.RLock()
	tok := s.token
	s.mu.RUnlock()
	exp := expiresAt(tok)
	if exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func (s *Store) expired(tok string) bool {
	exp := expiresAt(tok)
	return exp != nil && !s.now().Before(exp.Time)
}

// expiresAt reads exp without verifying the signature: the platform API
// is the one that verifies, the store only avoids sending stale tokens.
func expiresAt(tok string) *jwt.NumericDate {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return nil
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil
	}
	return exp
}
