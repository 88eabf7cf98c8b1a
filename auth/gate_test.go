package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-signing-secret")

func TestLoginCorrectPassword(t *testing.T) {
	gate := NewGate("hunter2", testSecret, DefaultTTL)
	now := time.Now()

	session, err := gate.Login("hunter2", now)
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, 24*time.Hour, session.ExpiresAt.Sub(session.IssuedAt))

	// The freshly issued token unlocks the dashboard.
	assert.NoError(t, gate.Verify(session.Token, now))
}

func TestLoginWrongPasswordIssuesNothing(t *testing.T) {
	gate := NewGate("hunter2", testSecret, DefaultTTL)

	session, err := gate.Login("password123", time.Now())
	assert.ErrorIs(t, err, ErrInvalidPassword)
	assert.Empty(t, session.Token)
}

func TestLoginUnconfiguredPassword(t *testing.T) {
	gate := NewGate("", testSecret, DefaultTTL)

	_, err := gate.Login("", time.Now())
	assert.Error(t, err)
}

func TestVerifyWithinWindow(t *testing.T) {
	gate := NewGate("hunter2", testSecret, DefaultTTL)
	now := time.Now()

	session, err := gate.Login("hunter2", now)
	require.NoError(t, err)

	// A reload 23 hours later still passes.
	assert.NoError(t, gate.Verify(session.Token, now.Add(23*time.Hour)))
}

func TestVerifyAfterWindowRelocks(t *testing.T) {
	gate := NewGate("hunter2", testSecret, DefaultTTL)
	now := time.Now()

	session, err := gate.Login("hunter2", now)
	require.NoError(t, err)

	err = gate.Verify(session.Token, now.Add(25*time.Hour))
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestVerifyGarbageToken(t *testing.T) {
	gate := NewGate("hunter2", testSecret, DefaultTTL)

	assert.ErrorIs(t, gate.Verify("not-a-token", time.Now()), ErrInvalidToken)
	assert.ErrorIs(t, gate.Verify("", time.Now()), ErrInvalidToken)
}

func TestVerifyTokenSignedWithDifferentSecret(t *testing.T) {
	issuer := NewGate("hunter2", []byte("other-secret"), DefaultTTL)
	gate := NewGate("hunter2", testSecret, DefaultTTL)

	session, err := issuer.Login("hunter2", time.Now())
	require.NoError(t, err)

	assert.ErrorIs(t, gate.Verify(session.Token, time.Now()), ErrInvalidToken)
}

func TestValid(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ttl := 24 * time.Hour

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"immediately after issue", issued, true},
		{"one second in", issued.Add(time.Second), true},
		{"just under the window", issued.Add(ttl - time.Second), true},
		{"exactly at the window", issued.Add(ttl), false},
		{"past the window", issued.Add(ttl + time.Hour), false},
		{"clock skew, issued in the future", issued.Add(-time.Minute), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Valid(issued, tt.now, ttl); got != tt.want {
				t.Errorf("Valid(issued, %v, ttl) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}
