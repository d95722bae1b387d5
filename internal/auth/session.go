package auth

import (
	"context"
	"fmt"
	"sync"

	"github.com/storekit-io/catalog-admin-client/pkg/catalog"
)

// Session implements catalog.Session. It is the only writer of the
// credential store.
type Session struct {
	mu         sync.Mutex
	state      catalog.SessionState
	phone      string
	devOTP     string
	user       *catalog.User
	store      catalog.CredentialStore
	authClient catalog.AuthClient
	navigator  catalog.Navigator
	production bool
	logger     catalog.Logger
}

// NewSession creates a session in the anonymous state.
func NewSession(authClient catalog.AuthClient, store catalog.CredentialStore, navigator catalog.Navigator, production bool, logger catalog.Logger) *Session {
	if logger == nil {
		logger = catalog.NoopLogger{}
	}

	return &Session{
		state:      catalog.SessionAnonymous,
		store:      store,
		authClient: authClient,
		navigator:  navigator,
		production: production,
		logger:     logger,
	}
}

// State implements catalog.Session.
func (s *Session) State() catalog.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// User implements catalog.Session.
func (s *Session) User() *catalog.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}

	user := *s.user

	return &user
}

// Phone implements catalog.Session.
func (s *Session) Phone() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.phone
}

// DevelopmentOTP implements catalog.Session. Empty in production mode.
func (s *Session) DevelopmentOTP() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.devOTP
}

// Initialize loads persisted credentials and validates them remotely.
// Stale credentials are cleared rather than surfaced as an error.
func (s *Session) Initialize(ctx context.Context) error {
	storedUser := s.store.User()
	storedToken := s.store.Token()

	if storedUser == nil || storedToken == "" {
		return nil
	}

	s.mu.Lock()
	s.user = storedUser
	s.state = catalog.SessionAuthenticated
	s.mu.Unlock()

	currentUser, err := s.authClient.Me(ctx)
	if err != nil {
		s.logger.Warn("stored credentials failed validation", map[string]interface{}{
			"error": err.Error(),
		})
		s.clearLocal()

		return nil
	}

	_ = s.store.SetUser(currentUser)

	s.mu.Lock()
	s.user = currentUser
	s.mu.Unlock()

	return nil
}

// RequestOTP implements catalog.Session. Valid only from the anonymous
// state.
func (s *Session) RequestOTP(ctx context.Context, phone string) error {
	s.mu.Lock()

	if s.state != catalog.SessionAnonymous {
		s.mu.Unlock()

		return catalog.ErrOTPAlreadyRequested
	}

	s.mu.Unlock()

	result, err := s.authClient.RequestOTP(ctx, phone)
	if err != nil {
		return fmt.Errorf("requesting OTP: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = catalog.SessionOTPRequested
	s.phone = phone

	if !s.production {
		s.devOTP = result.OTP
	}

	return nil
}

// VerifyOTP implements catalog.Session. Valid only while an OTP request is
// pending; on failure the captured phone number is retained so the user
// can retry.
func (s *Session) VerifyOTP(ctx context.Context, otp string) error {
	s.mu.Lock()

	if s.state != catalog.SessionOTPRequested {
		s.mu.Unlock()

		return catalog.ErrOTPNotRequested
	}

	phone := s.phone
	s.mu.Unlock()

	result, err := s.authClient.VerifyOTP(ctx, phone, otp)
	if err != nil {
		return fmt.Errorf("verifying OTP: %w", err)
	}

	user := result.User

	err = s.store.SetCredentials(result.Token, result.RefreshToken, &user)
	if err != nil {
		return fmt.Errorf("persisting credentials: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = catalog.SessionAuthenticated
	s.user = &user
	s.phone = ""
	s.devOTP = ""

	return nil
}

// ResetOTPFlow implements catalog.Session. Clears the captured phone and
// any displayed development OTP.
func (s *Session) ResetOTPFlow() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == catalog.SessionOTPRequested {
		s.state = catalog.SessionAnonymous
	}

	s.phone = ""
	s.devOTP = ""
}

// RefreshUser re-fetches the current user; a failure forces logout.
func (s *Session) RefreshUser(ctx context.Context) error {
	currentUser, err := s.authClient.Me(ctx)
	if err != nil {
		logoutErr := s.Logout(ctx)
		if logoutErr != nil {
			return logoutErr
		}

		return fmt.Errorf("refreshing user: %w", err)
	}

	_ = s.store.SetUser(currentUser)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = currentUser

	return nil
}

// Logout implements catalog.Session. The local effects are unconditional:
// credentials are cleared and the state forced to anonymous even when the
// remote call fails.
func (s *Session) Logout(ctx context.Context) error {
	err := s.authClient.Logout(ctx)
	if err != nil {
		s.logger.Warn("remote logout failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	s.clearLocal()

	if s.navigator != nil {
		s.navigator.NavigateToLogin()
	}

	return nil
}

// HandleUnauthorized implements the gateway's 401 hook: persisted auth
// state is cleared and the shell navigated to login. The triggering call's
// error still propagates to its caller.
func (s *Session) HandleUnauthorized() {
	s.clearLocal()

	if s.navigator != nil {
		s.navigator.NavigateToLogin()
	}
}

func (s *Session) clearLocal() {
	_ = s.store.Clear()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = catalog.SessionAnonymous
	s.user = nil
	s.phone = ""
	s.devOTP = ""
}
