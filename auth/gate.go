// Package auth implements the admin session gate: proving knowledge of the
// shared dashboard password buys a time-boxed capability token. There is no
// per-user identity, no refresh, and no server-side session state; validity
// is purely a function of when the token was issued.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is how long a login stays valid. Activity does not renew it.
const DefaultTTL = 24 * time.Hour

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidToken    = errors.New("invalid session token")
	ErrSessionExpired  = errors.New("session expired")
)

// Session is the capability handed to the dashboard after a successful login.
type Session struct {
	Token     string    `json:"token"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Gate checks the shared admin password and mints signed session tokens.
type Gate struct {
	password string
	secret   []byte
	ttl      time.Duration
}

func NewGate(password string, secret []byte, ttl time.Duration) *Gate {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Gate{password: password, secret: secret, ttl: ttl}
}

// Login compares the supplied password against the configured secret and,
// on match, returns a signed session valid for the gate's TTL. A mismatch
// returns ErrInvalidPassword and issues nothing. There is deliberately no
// rate limiting or lockout; the gate is a consent flag, not account auth.
func (g *Gate) Login(password string, now time.Time) (Session, error) {
	if g.password == "" {
		return Session{}, errors.New("admin password is not configured")
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(g.password)) != 1 {
		return Session{}, ErrInvalidPassword
	}

	issued := now.Truncate(time.Second)
	expires := issued.Add(g.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(issued),
		ExpiresAt: jwt.NewNumericDate(expires),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return Session{}, fmt.Errorf("sign session token: %w", err)
	}

	return Session{Token: token, IssuedAt: issued, ExpiresAt: expires}, nil
}

// Verify parses a session token and checks it is still inside its window
// at the supplied time. Expired or malformed tokens deny access; callers
// treat both as "log in again".
func (g *Gate) Verify(tokenString string, now time.Time) error {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return g.secret, nil
		},
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrSessionExpired
		}
		return ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.IssuedAt == nil {
		return ErrInvalidToken
	}
	if !Valid(claims.IssuedAt.Time, now, g.ttl) {
		return ErrSessionExpired
	}
	return nil
}

// Valid is the pure expiry rule: a session issued at issuedAt is valid at
// now when less than ttl has elapsed. Clock skew that makes issuedAt sit
// in the future also denies access.
func Valid(issuedAt, now time.Time, ttl time.Duration) bool {
	if now.Before(issuedAt) {
		return false
	}
	return now.Sub(issuedAt) < ttl
}
