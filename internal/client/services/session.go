// Package services contains the application services sitting between the
// REPL presenters and the repositories: session lifecycle, survey
// submission, badge derivation and profile management.
package services

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/careersync/careersync/internal/client/repositories/metadata"
	"github.com/careersync/careersync/internal/common"
	"github.com/careersync/careersync/internal/logging"
)

// SessionState enumerates the session lifecycle.
type SessionState int

const (
	StateLoggedOut SessionState = iota
	StateLoggedIn
	StateExpired
)

// Session owns the access token and the identity derived from it, and
// enforces the fixed-duration expiry window. The timer is armed once per
// token assignment; there is no activity-based renewal.
type Session struct {
	meta    metadata.Repository
	log     logging.Logger
	timeout time.Duration

	mu      sync.Mutex
	token   string
	userID  string
	state   SessionState
	timer   *time.Timer
	expired bool // pending "session expired" notice
}

// NewSession builds a session manager. A non-positive timeout selects the
// standard window.
func NewSession(meta metadata.Repository, log logging.Logger, timeout time.Duration) *Session {
	if timeout <= 0 {
		timeout = common.SessionTimeout
	}
	return &Session{meta: meta, log: log, timeout: timeout, state: StateLoggedOut}
}

// UserIDFromToken best-effort decodes the token's identity claim: split on
// '.', base64-decode the middle segment, read "sub". Any failure yields an
// empty id, never an error. The decoded claim is a display hint only; the
// server remains the authority on every request.
func UserIDFromToken(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

// Start transitions LoggedOut -> LoggedIn: the token is persisted, the
// identity claim decoded, and a fresh single-shot expiry timer armed. Any
// previously pending timer is stopped first, so a stale expiry can never
// fire after a new login.
func (s *Session) Start(ctx context.Context, token string) error {
	if err := s.meta.Set(ctx, common.KeyToken, token); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimerLocked()
	s.token = token
	s.userID = UserIDFromToken(token)
	s.state = StateLoggedIn
	s.expired = false
	s.timer = time.AfterFunc(s.timeout, s.expire)

	s.log.Info(ctx, "session started", "user", s.userID)
	return nil
}

// Resume restores a persisted token from a previous run, if any, and arms
// the expiry window as if the login had just happened.
func (s *Session) Resume(ctx context.Context) bool {
	token, err := s.meta.Get(ctx, common.KeyToken)
	if err != nil {
		s.log.Warn(ctx, "could not read stored token", "err", err)
		return false
	}
	if token == "" {
		return false
	}
	if err := s.Start(ctx, token); err != nil {
		s.log.Warn(ctx, "could not resume session", "err", err)
		return false
	}
	return true
}

// expire fires when the window elapses with no explicit logout. The token
// and identity are cleared and a notice is flagged for the presenter.
func (s *Session) expire() {
	ctx := context.Background()

	s.mu.Lock()
	if s.state != StateLoggedIn {
		s.mu.Unlock()
		return
	}
	s.token = ""
	s.userID = ""
	s.state = StateExpired
	s.expired = true
	s.timer = nil
	s.mu.Unlock()

	if err := s.meta.Delete(ctx, common.KeyToken); err != nil {
		s.log.Warn(ctx, "could not clear stored token", "err", err)
	}
	s.log.Info(ctx, "session expired")
}

// Logout clears the token and identity immediately and cancels the pending
// expiry timer.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.stopTimerLocked()
	s.token = ""
	s.userID = ""
	s.state = StateLoggedOut
	s.expired = false
	s.mu.Unlock()

	if err := s.meta.Delete(ctx, common.KeyToken); err != nil {
		return err
	}
	s.log.Info(ctx, "logged out")
	return nil
}

func (s *Session) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Token returns the current access token, empty when logged out.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// UserID returns the identity derived from the token, empty when logged out.
func (s *Session) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// State returns the current lifecycle state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// IsLoggedIn reports whether an authenticated session is live.
func (s *Session) IsLoggedIn() bool {
	return s.State() == StateLoggedIn
}

// ConsumeExpiredNotice reports a pending session-expired notice exactly
// once; the flag is cleared on read.
func (s *Session) ConsumeExpiredNotice() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.expired {
		return false
	}
	s.expired = false
	return true
}
