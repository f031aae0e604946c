// Package storage defines the client's local persistence contracts. It is
// the lowest layer: fixed string keys, JSON values, no business logic —
// the localStorage of the storefront client.
package storage

import (
	"context"

	"github.com/nakhrali/storefront/internal/models"
)

// Credential is the authenticated session: token pair plus user profile.
// Invariant: access token and user are both present or both absent. The
// whole struct is persisted as a single record so partial writes cannot
// violate that.
type Credential struct {
	AccessToken  string             `json:"access_token"`
	RefreshToken string             `json:"refresh_token"`
	User         models.UserProfile `json:"user"`
}

// CredentialStorage persists the session credential.
type CredentialStorage interface {
	// SaveCredential stores the credential, replacing any existing one.
	SaveCredential(ctx context.Context, cred *Credential) error

	// GetCredential retrieves the stored credential.
	// Returns ErrCredentialNotFound for a guest session.
	GetCredential(ctx context.Context) (*Credential, error)

	// DeleteCredential removes the stored credential (logout).
	// Deleting an absent credential is not an error.
	DeleteCredential(ctx context.Context) error
}
