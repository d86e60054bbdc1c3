package services

import (
	"context"
	"fmt"

	"github.com/oguzk/unienroll/internal/app/models"
	"github.com/oguzk/unienroll/internal/app/models/dto"
	"github.com/oguzk/unienroll/internal/app/store"
	"github.com/oguzk/unienroll/internal/client"
	"github.com/oguzk/unienroll/internal/pkg/logger"
	"github.com/oguzk/unienroll/internal/session"
)

// AuthService handles login, logout and session restore.
type AuthService struct {
	api     *client.Client
	session *session.Session
	stores  []Resettable
}

// Resettable is any store that can drop back to its initial empty
// state. Logout resets every registered store so no cached data
// survives the session.
type Resettable interface {
	Reset()
}

// NewAuthService creates a new auth service. The given stores are
// reset on logout.
func NewAuthService(api *client.Client, sess *session.Session, stores ...Resettable) *AuthService {
	return &AuthService{
		api:     api,
		session: sess,
		stores:  stores,
	}
}

// Login authenticates and establishes the session. On failure the
// session records the error and keeps no credentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	req := dto.LoginRequest{Email: email, Password: password}
	if err := checkRequest(req); err != nil {
		return nil, err
	}

	s.session.SetLoading()
	resp, err := s.api.Login(ctx, req)
	if err != nil {
		s.session.Fail(err.Error())
		return nil, err
	}

	s.session.Establish(resp.User, resp.Token)
	logger.Info().Str("email", resp.User.Email).Str("role", string(resp.User.Role)).Msg("Logged in")
	return &resp.User, nil
}

// Logout clears the session and every cached collection in one sweep.
func (s *AuthService) Logout() {
	s.session.Logout()
	for _, st := range s.stores {
		st.Reset()
	}
	logger.Info().Msg("Logged out")
}

// Restore revives a persisted session from the previous process.
func (s *AuthService) Restore() error {
	if err := s.session.Restore(); err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	return nil
}

// Status returns the session's request status and last error.
func (s *AuthService) Status() (store.Status, string) {
	snap := s.session.Snapshot()
	return snap.Status, snap.Err
}
