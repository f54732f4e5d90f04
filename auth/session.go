package auth

import (
	"fmt"
	"sync"
	"time"

	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/models"

	"go.uber.org/zap"
)

// SessionError is returned when a login attempt cannot produce a valid
// session. ExpiredToken and undecodable tokens both land here; the session
// itself is left untouched.
type SessionError struct {
	Code    string
	Message string
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewSessionError(code, msg string) error {
	return &SessionError{Code: code, Message: msg}
}

// Snapshot is an immutable view of the session at one instant. Guards and
// the HTTP layer consume snapshots so a decision is never computed over a
// half-updated session.
type Snapshot struct {
	Token         string
	Identity      models.Identity
	Role          models.Role
	Authenticated bool
	Loading       bool
}

// Session is the one process-wide authentication state container. Only
// Hydrate, Login and Logout mutate it, and each replaces the full field set,
// so consumers never observe partial state.
type Session struct {
	store  TokenStore
	logger *zap.Logger
	now    func() time.Time

	mu            sync.RWMutex
	token         string
	identity      models.Identity
	authenticated bool
	loading       bool
	hydrated      bool
}

func NewSession(store TokenStore, logger *zap.Logger) *Session {
	return &Session{
		store:   store,
		logger:  logger,
		now:     time.Now,
		loading: true,
	}
}

// Snapshot returns a consistent copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Token:         s.token,
		Identity:      s.identity,
		Role:          s.identity.Role,
		Authenticated: s.authenticated,
		Loading:       s.loading,
	}
}

// Token returns the raw bearer token, empty when signed out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Hydrate restores the session from the persisted token. A missing, expired
// or undecodable token resolves to signed-out state (and drops the persisted
// value). The loading flag is cleared on every path; guards wait on it before
// deciding anything.
func (s *Session) Hydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hydrated {
		return
	}
	s.hydrated = true
	defer func() { s.loading = false }()

	token, err := s.store.Load()
	if err != nil {
		s.logger.Warn("session: failed to read persisted token", zap.Error(err))
		s.logoutLocked()
		return
	}
	if token == "" {
		s.clearLocked()
		return
	}

	claims, err := DecodeToken(token)
	if err != nil {
		s.logger.Warn("session: persisted token is not decodable, signing out", zap.Error(err))
		s.logoutLocked()
		return
	}
	if claims.Expired(s.now()) {
		s.logger.Info("session: persisted token has expired, signing out")
		s.logoutLocked()
		return
	}

	s.setLocked(token, claims)
}

// Login decodes and adopts a freshly issued token. On failure the session is
// left exactly as it was; the caller surfaces the rejection to the user.
func (s *Session) Login(token string) error {
	claims, err := DecodeToken(token)
	if err != nil {
		return NewSessionError("invalidToken", err.Error())
	}
	if claims.Expired(s.now()) {
		return NewSessionError("expiredToken", "token is already past its expiry")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.setLocked(token, claims)
	if err := s.store.Save(token); err != nil {
		s.logger.Warn("session: failed to persist token", zap.Error(err))
	}
	return nil
}

// Logout clears all session fields and removes the persisted token. Safe to
// call any number of times.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logoutLocked()
	s.loading = false
}

func (s *Session) logoutLocked() {
	s.clearLocked()
	if err := s.store.Clear(); err != nil {
		s.logger.Warn("session: failed to remove persisted token", zap.Error(err))
	}
}

func (s *Session) setLocked(token string, claims *Claims) {
	s.token = token
	s.identity = models.Identity{
		SubjectID: claims.Subject,
		Email:     claims.Email,
		Role:      claims.Role,
	}
	s.authenticated = true
}

func (s *Session) clearLocked() {
	s.token = ""
	s.identity = models.Identity{}
	s.authenticated = false
}
