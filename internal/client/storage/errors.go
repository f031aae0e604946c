package storage

import "errors"

// Common client storage errors
var (
	// ErrCredentialNotFound indicates that no credential is persisted
	// (guest session).
	ErrCredentialNotFound = errors.New("credential not found")

	// ErrThemeNotSet indicates that no explicit theme preference is stored.
	// Absence is meaningful: the client follows the OS color scheme.
	ErrThemeNotSet = errors.New("theme preference not set")

	// ErrStorageClosed indicates that storage is closed.
	ErrStorageClosed = errors.New("storage is closed")
)
