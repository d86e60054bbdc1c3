package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/oguzk/unienroll/internal/app/models"
	"github.com/oguzk/unienroll/internal/app/models/dto/enums"
	"github.com/oguzk/unienroll/internal/app/store"
	"github.com/oguzk/unienroll/internal/pkg/apperrors"
	"github.com/oguzk/unienroll/internal/pkg/logger"
)

// Session is the current-authenticated-user slice: the single source
// of truth for role-based gating. Its five fields (user, token,
// authenticated flag, status, error) always change together under one
// lock; a partially logged-out session is not an observable state.
type Session struct {
	mu            sync.Mutex
	user          *models.User
	token         string
	authenticated bool
	status        store.Status
	err           string

	tokens *TokenFile
}

// Snapshot is a consistent copy of the session fields, taken under the
// session lock.
type Snapshot struct {
	User          *models.User
	Token         string
	Authenticated bool
	Status        store.Status
	Err           string
}

// NewSession creates an unauthenticated session persisting its token
// through the given token file.
func NewSession(tokens *TokenFile) *Session {
	return &Session{
		status: store.StatusIdle,
		tokens: tokens,
	}
}

// Snapshot returns a consistent copy of all session fields.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		Token:         s.token,
		Authenticated: s.authenticated,
		Status:        s.status,
		Err:           s.err,
	}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}

// SetLoading marks a login attempt in flight.
func (s *Session) SetLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = store.StatusLoading
	s.err = ""
}

// Establish installs the authenticated user and token after a
// successful login and persists the token for the next process.
func (s *Session) Establish(user models.User, token string) {
	s.mu.Lock()
	s.user = &user
	s.token = token
	s.authenticated = true
	s.status = store.StatusSucceeded
	s.err = ""
	s.mu.Unlock()

	if err := s.tokens.Save(token); err != nil {
		logger.Warn().Err(err).Msg("Failed to persist auth token")
	}
}

// Fail records a failed login attempt without touching any stored
// credentials.
func (s *Session) Fail(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = store.StatusFailed
	s.err = msg
}

// Logout clears the whole session in one transition: user, token,
// authenticated flag, status and error reset together, and the
// persisted token is removed.
func (s *Session) Logout() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.authenticated = false
	s.status = store.StatusIdle
	s.err = ""
	s.mu.Unlock()

	if err := s.tokens.Remove(); err != nil {
		logger.Warn().Err(err).Msg("Failed to remove persisted auth token")
	}
}

// ForceLogout evicts the session after the server answered 401 to any
// request. Identical to Logout except the failure is recorded so the
// consumer can explain the eviction.
func (s *Session) ForceLogout() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.authenticated = false
	s.status = store.StatusFailed
	s.err = apperrors.ErrSessionExpired.Error()
	s.mu.Unlock()

	if err := s.tokens.Remove(); err != nil {
		logger.Warn().Err(err).Msg("Failed to remove persisted auth token")
	}
}

// Token returns the bearer token, empty when unauthenticated.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User returns a copy of the authenticated user, nil when none.
func (s *Session) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Role returns the authenticated user's role. ok is false when no
// user record is present.
func (s *Session) Role() (enums.Role, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return "", false
	}
	return s.user.Role, true
}

// IsAuthenticated reports whether a login or token restore succeeded.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// Restore loads the persisted token from the previous process. An
// expired token is evicted locally without a network round trip; the
// server remains the authority for everything else. When the token
// claims carry the user identity it is reconstructed for role gating,
// otherwise gated mutations require a fresh login.
func (s *Session) Restore() error {
	token, err := s.tokens.Load()
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	claims, err := inspectToken(token)
	if err != nil {
		logger.Warn().Err(err).Msg("Discarding persisted token")
		if removeErr := s.tokens.Remove(); removeErr != nil {
			logger.Warn().Err(removeErr).Msg("Failed to remove persisted auth token")
		}
		return err
	}

	s.mu.Lock()
	s.token = token
	s.authenticated = true
	s.status = store.StatusSucceeded
	s.err = ""
	s.user = claims.user()
	s.mu.Unlock()
	return nil
}

// tokenClaims is the subset of JWT claims the platform embeds in its
// access tokens.
type tokenClaims struct {
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// user reconstructs a minimal user record from the claims, nil when
// the token does not identify one.
func (c *tokenClaims) user() *models.User {
	if c.UserID == 0 || !enums.Role(c.Role).Valid() {
		return nil
	}
	return &models.User{
		ID:    c.UserID,
		Name:  c.Name,
		Email: c.Email,
		Role:  enums.Role(c.Role),
	}
}

// inspectToken parses the token without verifying its signature (the
// secret lives on the server) and rejects it when already expired.
func inspectToken(token string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, apperrors.ErrTokenInvalid
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, apperrors.ErrTokenInvalid
	}
	if exp != nil && exp.Before(time.Now()) {
		return nil, apperrors.ErrSessionExpired
	}

	return claims, nil
}
