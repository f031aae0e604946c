// Package session owns the client's credential state: who is logged in,
// the token pair, and the persisted copy of both. Every other store asks
// this service whether the session is authenticated and for the current
// access token.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/nakhrali/storefront/internal/client/storage"
	"github.com/nakhrali/storefront/internal/models"
	"github.com/nakhrali/storefront/internal/token"
	"github.com/nakhrali/storefront/internal/validation"
	"github.com/nakhrali/storefront/pkg/api"
)

// Authentication errors. Both mean the caller holds no usable session.
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNoRefreshToken   = errors.New("no refresh token available")
)

// APIClient is the slice of the HTTP client the session service needs.
type APIClient interface {
	Register(ctx context.Context, req api.RegisterRequest) (*api.TokenResponse, error)
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)
	GoogleAuth(ctx context.Context, req api.GoogleAuthRequest) (*api.TokenResponse, error)
	Refresh(ctx context.Context, req api.RefreshRequest) (*api.TokenResponse, error)
	Logout(ctx context.Context, accessToken string) error
	UpdateProfile(ctx context.Context, accessToken string, req api.UpdateProfileRequest) (*api.ProfileResponse, error)
	ChangePassword(ctx context.Context, accessToken string, req api.ChangePasswordRequest) error
	ForgotPassword(ctx context.Context, req api.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req api.ResetPasswordRequest) error
}

// Credentials is what the other stores consume: the authentication flag and
// the bearer token. *Service implements it.
type Credentials interface {
	IsAuthenticated() bool
	AccessToken() string
}

// Service manages the session credential in memory and in local storage.
// Unlike the other stores its methods return their errors: the caller
// decides how a failed login or an expired session is presented.
type Service struct {
	apiClient APIClient
	store     storage.CredentialStorage
	logger    *slog.Logger
	cred      *storage.Credential // nil for a guest session
	mu        sync.RWMutex
}

var _ Credentials = (*Service)(nil)

// NewService creates the session service. The credential stays unloaded
// until Init is called.
func NewService(apiClient APIClient, store storage.CredentialStorage, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		apiClient: apiClient,
		store:     store,
		logger:    logger,
	}
}

// Init loads the persisted credential, if any. A missing credential is a
// guest session; an unreadable one is discarded rather than left half-loaded.
func (s *Service) Init(ctx context.Context) error {
	cred, err := s.store.GetCredential(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrCredentialNotFound) {
			return nil
		}
		s.logger.Warn("discarding unreadable credential", "error", err)
		if delErr := s.store.DeleteCredential(ctx); delErr != nil {
			return fmt.Errorf("failed to discard credential: %w", delErr)
		}
		return nil
	}

	s.mu.Lock()
	s.cred = cred
	s.mu.Unlock()
	return nil
}

// Login authenticates with email and password.
func (s *Service) Login(ctx context.Context, email, password string) error {
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}
	if err := validation.ValidateRequired("password", password); err != nil {
		return err
	}

	resp, err := s.apiClient.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	return s.adoptTokenResponse(ctx, resp)
}

// LoginWithGoogle exchanges a Google ID token for a session.
func (s *Service) LoginWithGoogle(ctx context.Context, idToken string) error {
	if err := validation.ValidateRequired("token", idToken); err != nil {
		return err
	}

	resp, err := s.apiClient.GoogleAuth(ctx, api.GoogleAuthRequest{Token: idToken})
	if err != nil {
		return fmt.Errorf("google login failed: %w", err)
	}

	return s.adoptTokenResponse(ctx, resp)
}

// Register creates an account and adopts the returned session.
func (s *Service) Register(ctx context.Context, req api.RegisterRequest) error {
	if err := validation.ValidateEmail(req.Email); err != nil {
		return err
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return err
	}
	if err := validation.ValidateRequired("first_name", req.FirstName); err != nil {
		return err
	}

	resp, err := s.apiClient.Register(ctx, req)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	return s.adoptTokenResponse(ctx, resp)
}

// Logout notifies the server (best effort) and always clears the local
// credential; a dead server cannot keep the client logged in.
func (s *Service) Logout(ctx context.Context) error {
	s.mu.RLock()
	accessToken := ""
	if s.cred != nil {
		accessToken = s.cred.AccessToken
	}
	s.mu.RUnlock()

	if accessToken != "" {
		if err := s.apiClient.Logout(ctx, accessToken); err != nil {
			s.logger.Warn("failed to logout on server", "error", err)
		}
	}

	return s.clearCredential(ctx)
}

// Refresh trades the refresh token for a new access token. With no refresh
// token it fails with ErrNoRefreshToken. Any remote failure clears the whole
// credential: an invalid refresh token de-authenticates the session rather
// than leaving stale state. The error is returned — refresh flows rethrow.
func (s *Service) Refresh(ctx context.Context) error {
	s.mu.RLock()
	cred := s.cred
	s.mu.RUnlock()

	if cred == nil || cred.RefreshToken == "" {
		return ErrNoRefreshToken
	}

	resp, err := s.apiClient.Refresh(ctx, api.RefreshRequest{RefreshToken: cred.RefreshToken})
	if err != nil {
		s.logger.Warn("token refresh failed, clearing session", "error", err)
		if clearErr := s.clearCredential(ctx); clearErr != nil {
			s.logger.Warn("failed to clear credential", "error", clearErr)
		}
		return fmt.Errorf("token refresh failed: %w", err)
	}

	updated := *cred
	updated.AccessToken = resp.AccessToken
	if resp.RefreshToken != "" {
		updated.RefreshToken = resp.RefreshToken
	}
	if resp.User != nil {
		updated.User = profileFromAPI(resp.User)
	}

	return s.setCredential(ctx, &updated)
}

// EnsureValidToken is a boolean gate: it reports whether the session holds a
// non-expired access token, refreshing transparently when needed. A failed
// refresh clears the session and yields false instead of an error.
func (s *Service) EnsureValidToken(ctx context.Context) bool {
	s.mu.RLock()
	cred := s.cred
	s.mu.RUnlock()

	if cred == nil || cred.AccessToken == "" {
		return false
	}

	if !token.Expired(cred.AccessToken) {
		return true
	}

	if err := s.Refresh(ctx); err != nil {
		// Refresh already cleared the credential on remote failure; make
		// sure an ErrNoRefreshToken session is cleared too.
		if errors.Is(err, ErrNoRefreshToken) {
			if clearErr := s.clearCredential(ctx); clearErr != nil {
				s.logger.Warn("failed to clear credential", "error", clearErr)
			}
		}
		return false
	}

	return true
}

// UpdateProfile changes profile fields and mirrors the server's returned
// profile into the credential.
func (s *Service) UpdateProfile(ctx context.Context, req api.UpdateProfileRequest) (models.UserProfile, error) {
	s.mu.RLock()
	cred := s.cred
	s.mu.RUnlock()

	if cred == nil {
		return models.UserProfile{}, ErrNotAuthenticated
	}

	resp, err := s.apiClient.UpdateProfile(ctx, cred.AccessToken, req)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("profile update failed: %w", err)
	}
	if resp.User == nil {
		return models.UserProfile{}, fmt.Errorf("profile update returned no user")
	}

	updated := *cred
	updated.User = profileFromAPI(resp.User)
	if err := s.setCredential(ctx, &updated); err != nil {
		return models.UserProfile{}, err
	}

	return updated.User, nil
}

// ChangePassword changes the current user's password.
func (s *Service) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	s.mu.RLock()
	cred := s.cred
	s.mu.RUnlock()

	if cred == nil {
		return ErrNotAuthenticated
	}
	if err := validation.ValidateRequired("current_password", currentPassword); err != nil {
		return err
	}
	if err := validation.ValidatePassword(newPassword); err != nil {
		return err
	}

	if err := s.apiClient.ChangePassword(ctx, cred.AccessToken, api.ChangePasswordRequest{
		CurrentPassword: currentPassword,
		NewPassword:     newPassword,
	}); err != nil {
		return fmt.Errorf("password change failed: %w", err)
	}

	return nil
}

// RequestPasswordReset starts the forgot-password flow.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}
	if err := s.apiClient.ForgotPassword(ctx, api.ForgotPasswordRequest{Email: email}); err != nil {
		return fmt.Errorf("password reset request failed: %w", err)
	}
	return nil
}

// ResetPassword completes the forgot-password flow.
func (s *Service) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	if err := validation.ValidateRequired("token", resetToken); err != nil {
		return err
	}
	if err := validation.ValidatePassword(newPassword); err != nil {
		return err
	}
	if err := s.apiClient.ResetPassword(ctx, api.ResetPasswordRequest{
		Token:    resetToken,
		Password: newPassword,
	}); err != nil {
		return fmt.Errorf("password reset failed: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether a credential is held.
func (s *Service) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cred != nil && s.cred.AccessToken != ""
}

// AccessToken returns the current access token, or "" for a guest session.
func (s *Service) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cred == nil {
		return ""
	}
	return s.cred.AccessToken
}

// User returns the current user's profile. ok is false for a guest session.
func (s *Service) User() (profile models.UserProfile, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cred == nil {
		return models.UserProfile{}, false
	}
	return s.cred.User, true
}

// adoptTokenResponse installs the session returned by login, register or
// Google auth. Token and user arrive together or the response is rejected,
// which preserves the credential invariant.
func (s *Service) adoptTokenResponse(ctx context.Context, resp *api.TokenResponse) error {
	if resp.AccessToken == "" || resp.User == nil {
		return fmt.Errorf("server returned incomplete session")
	}

	return s.setCredential(ctx, &storage.Credential{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		User:         profileFromAPI(resp.User),
	})
}

// setCredential persists first, then swaps the in-memory credential, so
// memory never points at a session storage does not hold.
func (s *Service) setCredential(ctx context.Context, cred *storage.Credential) error {
	if err := s.store.SaveCredential(ctx, cred); err != nil {
		return fmt.Errorf("failed to persist credential: %w", err)
	}

	s.mu.Lock()
	s.cred = cred
	s.mu.Unlock()
	return nil
}

func (s *Service) clearCredential(ctx context.Context) error {
	s.mu.Lock()
	s.cred = nil
	s.mu.Unlock()

	if err := s.store.DeleteCredential(ctx); err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	return nil
}

func profileFromAPI(u *api.User) models.UserProfile {
	return models.UserProfile{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Role:      u.Role,
	}
}
