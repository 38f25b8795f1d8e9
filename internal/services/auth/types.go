// Package auth authenticates the moderator against the configured
// credentials and tracks the admin session the dashboard state hangs off.
package auth

import (
	"errors"
	"time"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrSessionNotFound    = errors.New("session not found")
)

// SessionRecord is the stored admin session.
type SessionRecord struct {
	SID       string
	Email     string
	ExpiresAt time.Time
}

// AuthResult is what a successful login returns.
type AuthResult struct {
	AccessToken string
	ExpiresAt   time.Time
	Email       string
}

// AccessClaims is the parsed content of an access token.
type AccessClaims struct {
	SID       string
	Email     string
	ExpiresAt time.Time
}
