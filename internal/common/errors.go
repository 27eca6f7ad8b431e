// Package common defines shared constants and sentinel errors used across
// the CareerSync client layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Remote API errors.
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Session lifecycle.
	ErrNotLoggedIn = errors.New("not logged in")

	// Survey submission guard.
	ErrRequestInFlight = errors.New("request already in flight")

	// Login captcha.
	ErrCaptcha = errors.New("captcha incorrect")
)
