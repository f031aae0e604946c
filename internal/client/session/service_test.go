package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakhrali/storefront/internal/client/storage"
	"github.com/nakhrali/storefront/internal/models"
	"github.com/nakhrali/storefront/internal/validation"
	"github.com/nakhrali/storefront/pkg/api"
)

// mockCredentialStorage implements storage.CredentialStorage for testing.
type mockCredentialStorage struct {
	cred      *storage.Credential
	saveErr   error
	getErr    error
	deleteErr error
}

func (m *mockCredentialStorage) SaveCredential(ctx context.Context, cred *storage.Credential) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	copied := *cred
	m.cred = &copied
	return nil
}

func (m *mockCredentialStorage) GetCredential(ctx context.Context) (*storage.Credential, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.cred == nil {
		return nil, storage.ErrCredentialNotFound
	}
	copied := *m.cred
	return &copied, nil
}

func (m *mockCredentialStorage) DeleteCredential(ctx context.Context) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.cred = nil
	return nil
}

// mockAPIClient implements APIClient for testing.
type mockAPIClient struct {
	loginResp      *api.TokenResponse
	loginErr       error
	registerResp   *api.TokenResponse
	registerErr    error
	googleResp     *api.TokenResponse
	googleErr      error
	refreshResp    *api.TokenResponse
	refreshErr     error
	logoutErr      error
	profileResp    *api.ProfileResponse
	profileErr     error
	changePassErr  error
	forgotPassErr  error
	resetPassErr   error
	refreshCalls   int
	logoutCalls    int
	lastLogoutTok  string
	lastRefreshTok string
}

func (m *mockAPIClient) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	return m.loginResp, m.loginErr
}

func (m *mockAPIClient) Register(ctx context.Context, req api.RegisterRequest) (*api.TokenResponse, error) {
	return m.registerResp, m.registerErr
}

func (m *mockAPIClient) GoogleAuth(ctx context.Context, req api.GoogleAuthRequest) (*api.TokenResponse, error) {
	return m.googleResp, m.googleErr
}

func (m *mockAPIClient) Refresh(ctx context.Context, req api.RefreshRequest) (*api.TokenResponse, error) {
	m.refreshCalls++
	m.lastRefreshTok = req.RefreshToken
	return m.refreshResp, m.refreshErr
}

func (m *mockAPIClient) Logout(ctx context.Context, accessToken string) error {
	m.logoutCalls++
	m.lastLogoutTok = accessToken
	return m.logoutErr
}

func (m *mockAPIClient) UpdateProfile(ctx context.Context, accessToken string, req api.UpdateProfileRequest) (*api.ProfileResponse, error) {
	return m.profileResp, m.profileErr
}

func (m *mockAPIClient) ChangePassword(ctx context.Context, accessToken string, req api.ChangePasswordRequest) error {
	return m.changePassErr
}

func (m *mockAPIClient) ForgotPassword(ctx context.Context, req api.ForgotPasswordRequest) error {
	return m.forgotPassErr
}

func (m *mockAPIClient) ResetPassword(ctx context.Context, req api.ResetPasswordRequest) error {
	return m.resetPassErr
}

func testToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": expiresAt.Unix(),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func testUser() *api.User {
	return &api.User{
		ID:        "user-1",
		Email:     "priya@example.com",
		FirstName: "Priya",
		LastName:  "Sharma",
		Role:      "customer",
	}
}

func TestService_Login(t *testing.T) {
	store := &mockCredentialStorage{}
	client := &mockAPIClient{
		loginResp: &api.TokenResponse{
			AccessToken:  "access-123",
			RefreshToken: "refresh-456",
			User:         testUser(),
		},
	}
	svc := NewService(client, store, nil)

	err := svc.Login(context.Background(), "priya@example.com", "emerald-ring-9")
	require.NoError(t, err)

	assert.True(t, svc.IsAuthenticated())
	assert.Equal(t, "access-123", svc.AccessToken())

	user, ok := svc.User()
	require.True(t, ok)
	assert.Equal(t, "Priya Sharma", user.FullName())

	// Credential persisted as one record.
	require.NotNil(t, store.cred)
	assert.Equal(t, "access-123", store.cred.AccessToken)
	assert.Equal(t, "refresh-456", store.cred.RefreshToken)
	assert.Equal(t, "user-1", store.cred.User.ID)
}

func TestService_Login_ValidationShortCircuits(t *testing.T) {
	client := &mockAPIClient{loginErr: errors.New("must not be called")}
	svc := NewService(client, &mockCredentialStorage{}, nil)

	err := svc.Login(context.Background(), "not-an-email", "whatever")
	require.Error(t, err)
	assert.ErrorIs(t, err, validation.Err)
	assert.False(t, svc.IsAuthenticated())
}

func TestService_Login_RemoteFailureRethrows(t *testing.T) {
	client := &mockAPIClient{loginErr: errors.New("invalid credentials")}
	svc := NewService(client, &mockCredentialStorage{}, nil)

	err := svc.Login(context.Background(), "priya@example.com", "wrong-password")
	require.Error(t, err)
	assert.False(t, svc.IsAuthenticated())
}

func TestService_Login_IncompleteSessionRejected(t *testing.T) {
	// Token without user would break the credential invariant.
	client := &mockAPIClient{loginResp: &api.TokenResponse{AccessToken: "access-123"}}
	store := &mockCredentialStorage{}
	svc := NewService(client, store, nil)

	err := svc.Login(context.Background(), "priya@example.com", "emerald-ring-9")
	require.Error(t, err)
	assert.False(t, svc.IsAuthenticated())
	assert.Nil(t, store.cred)
}

func TestService_Init(t *testing.T) {
	store := &mockCredentialStorage{cred: &storage.Credential{
		AccessToken:  "access-123",
		RefreshToken: "refresh-456",
		User:         models.UserProfile{ID: "user-1"},
	}}
	svc := NewService(&mockAPIClient{}, store, nil)

	require.NoError(t, svc.Init(context.Background()))
	assert.True(t, svc.IsAuthenticated())
	assert.Equal(t, "access-123", svc.AccessToken())
}

func TestService_Init_GuestSession(t *testing.T) {
	svc := NewService(&mockAPIClient{}, &mockCredentialStorage{}, nil)

	require.NoError(t, svc.Init(context.Background()))
	assert.False(t, svc.IsAuthenticated())
}

func TestService_Init_UnreadableCredentialDiscarded(t *testing.T) {
	store := &mockCredentialStorage{getErr: errors.New("corrupt record")}
	svc := NewService(&mockAPIClient{}, store, nil)

	require.NoError(t, svc.Init(context.Background()))
	assert.False(t, svc.IsAuthenticated())
}

func TestService_Logout_BestEffortServerCall(t *testing.T) {
	store := &mockCredentialStorage{}
	client := &mockAPIClient{
		loginResp: &api.TokenResponse{AccessToken: "access-123", RefreshToken: "r", User: testUser()},
		logoutErr: errors.New("server unreachable"),
	}
	svc := NewService(client, store, nil)
	require.NoError(t, svc.Login(context.Background(), "priya@example.com", "emerald-ring-9"))

	// Server failure is swallowed; local credential is cleared regardless.
	err := svc.Logout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, client.logoutCalls)
	assert.Equal(t, "access-123", client.lastLogoutTok)
	assert.False(t, svc.IsAuthenticated())
	assert.Nil(t, store.cred)
}

func TestService_Logout_Guest(t *testing.T) {
	client := &mockAPIClient{}
	svc := NewService(client, &mockCredentialStorage{}, nil)

	require.NoError(t, svc.Logout(context.Background()))
	assert.Zero(t, client.logoutCalls)
}

func TestService_Refresh_NoRefreshToken(t *testing.T) {
	svc := NewService(&mockAPIClient{}, &mockCredentialStorage{}, nil)

	err := svc.Refresh(context.Background())
	assert.ErrorIs(t, err, ErrNoRefreshToken)
}

func TestService_Refresh_Success(t *testing.T) {
	store := &mockCredentialStorage{}
	client := &mockAPIClient{
		loginResp:   &api.TokenResponse{AccessToken: "old-access", RefreshToken: "refresh-456", User: testUser()},
		refreshResp: &api.TokenResponse{AccessToken: "new-access"},
	}
	svc := NewService(client, store, nil)
	require.NoError(t, svc.Login(context.Background(), "priya@example.com", "emerald-ring-9"))

	require.NoError(t, svc.Refresh(context.Background()))

	assert.Equal(t, "refresh-456", client.lastRefreshTok)
	assert.Equal(t, "new-access", svc.AccessToken())
	// Refresh token survives when the server does not rotate it.
	assert.Equal(t, "refresh-456", store.cred.RefreshToken)
	// User profile survives the refresh.
	user, ok := svc.User()
	require.True(t, ok)
	assert.Equal(t, "user-1", user.ID)
}

func TestService_Refresh_FailureClearsSession(t *testing.T) {
	store := &mockCredentialStorage{}
	client := &mockAPIClient{
		loginResp:  &api.TokenResponse{AccessToken: "access-123", RefreshToken: "stale", User: testUser()},
		refreshErr: errors.New("invalid refresh token"),
	}
	svc := NewService(client, store, nil)
	require.NoError(t, svc.Login(context.Background(), "priya@example.com", "emerald-ring-9"))

	err := svc.Refresh(context.Background())
	require.Error(t, err)

	// Fail-closed: the whole credential is gone, memory and storage both.
	assert.False(t, svc.IsAuthenticated())
	assert.Empty(t, svc.AccessToken())
	assert.Nil(t, store.cred)
}

func TestService_EnsureValidToken(t *testing.T) {
	ctx := context.Background()

	t.Run("guest session", func(t *testing.T) {
		svc := NewService(&mockAPIClient{}, &mockCredentialStorage{}, nil)
		assert.False(t, svc.EnsureValidToken(ctx))
	})

	t.Run("token still valid", func(t *testing.T) {
		client := &mockAPIClient{
			loginResp: &api.TokenResponse{
				AccessToken:  testToken(t, time.Now().Add(time.Hour)),
				RefreshToken: "refresh-456",
				User:         testUser(),
			},
		}
		svc := NewService(client, &mockCredentialStorage{}, nil)
		require.NoError(t, svc.Login(ctx, "priya@example.com", "emerald-ring-9"))

		assert.True(t, svc.EnsureValidToken(ctx))
		assert.Zero(t, client.refreshCalls)
	})

	t.Run("expired token refreshed transparently", func(t *testing.T) {
		fresh := testToken(t, time.Now().Add(time.Hour))
		client := &mockAPIClient{
			loginResp: &api.TokenResponse{
				AccessToken:  testToken(t, time.Now().Add(-time.Minute)),
				RefreshToken: "refresh-456",
				User:         testUser(),
			},
			refreshResp: &api.TokenResponse{AccessToken: fresh},
		}
		svc := NewService(client, &mockCredentialStorage{}, nil)
		require.NoError(t, svc.Login(ctx, "priya@example.com", "emerald-ring-9"))

		assert.True(t, svc.EnsureValidToken(ctx))
		assert.Equal(t, 1, client.refreshCalls)
		assert.Equal(t, fresh, svc.AccessToken())
	})

	t.Run("expired token, invalid refresh token clears session", func(t *testing.T) {
		store := &mockCredentialStorage{}
		client := &mockAPIClient{
			loginResp: &api.TokenResponse{
				AccessToken:  testToken(t, time.Now().Add(-time.Minute)),
				RefreshToken: "stale",
				User:         testUser(),
			},
			refreshErr: errors.New("invalid refresh token"),
		}
		svc := NewService(client, store, nil)
		require.NoError(t, svc.Login(ctx, "priya@example.com", "emerald-ring-9"))

		assert.False(t, svc.EnsureValidToken(ctx))
		assert.False(t, svc.IsAuthenticated())
		assert.Nil(t, store.cred)
	})

	t.Run("expired token, no refresh token clears session", func(t *testing.T) {
		store := &mockCredentialStorage{}
		client := &mockAPIClient{
			loginResp: &api.TokenResponse{
				AccessToken: testToken(t, time.Now().Add(-time.Minute)),
				User:        testUser(),
			},
		}
		svc := NewService(client, store, nil)
		require.NoError(t, svc.Login(ctx, "priya@example.com", "emerald-ring-9"))

		assert.False(t, svc.EnsureValidToken(ctx))
		assert.False(t, svc.IsAuthenticated())
	})
}

func TestService_UpdateProfile(t *testing.T) {
	store := &mockCredentialStorage{}
	client := &mockAPIClient{
		loginResp: &api.TokenResponse{AccessToken: "access-123", RefreshToken: "r", User: testUser()},
		profileResp: &api.ProfileResponse{User: &api.User{
			ID:        "user-1",
			Email:     "priya@example.com",
			FirstName: "Priya",
			LastName:  "Verma",
			Role:      "customer",
		}},
	}
	svc := NewService(client, store, nil)
	require.NoError(t, svc.Login(context.Background(), "priya@example.com", "emerald-ring-9"))

	updated, err := svc.UpdateProfile(context.Background(), api.UpdateProfileRequest{LastName: "Verma"})
	require.NoError(t, err)
	assert.Equal(t, "Priya Verma", updated.FullName())

	// Persisted copy follows.
	assert.Equal(t, "Verma", store.cred.User.LastName)
}

func TestService_UpdateProfile_Guest(t *testing.T) {
	svc := NewService(&mockAPIClient{}, &mockCredentialStorage{}, nil)

	_, err := svc.UpdateProfile(context.Background(), api.UpdateProfileRequest{})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestService_ChangePassword_Validation(t *testing.T) {
	client := &mockAPIClient{
		loginResp: &api.TokenResponse{AccessToken: "access-123", User: testUser()},
	}
	svc := NewService(client, &mockCredentialStorage{}, nil)
	require.NoError(t, svc.Login(context.Background(), "priya@example.com", "emerald-ring-9"))

	err := svc.ChangePassword(context.Background(), "old-password", "short")
	assert.ErrorIs(t, err, validation.Err)
}

func TestService_RequestPasswordReset(t *testing.T) {
	client := &mockAPIClient{}
	svc := NewService(client, &mockCredentialStorage{}, nil)

	assert.NoError(t, svc.RequestPasswordReset(context.Background(), "priya@example.com"))
	assert.ErrorIs(t, svc.RequestPasswordReset(context.Background(), "bogus"), validation.Err)
}

func TestService_ResetPassword(t *testing.T) {
	client := &mockAPIClient{}
	svc := NewService(client, &mockCredentialStorage{}, nil)

	assert.NoError(t, svc.ResetPassword(context.Background(), "reset-token", "new-password-1"))
	assert.ErrorIs(t, svc.ResetPassword(context.Background(), "", "new-password-1"), validation.Err)
}
