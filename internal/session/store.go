// Package session holds the operator's session credentials: access
// token, refresh token, token expiry, and the cached user record. The
// four values live as independent entries in the OS keychain but are
// always purged together; a half-cleared session is never left behind.
package session

import "errors"

const ServiceName = "sassmon"

// Keychain entry names for the credential pieces.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyExpiresAt    = "token_expires_at"
	KeyUserInfo     = "user_info"
)

var ErrNotFound = errors.New("session entry not found")

// Store is the key-value surface the session persists through.
type Store interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Delete(key string) error
}

// DefaultStore returns the standard store backed by the OS keychain.
func DefaultStore() Store {
	return NewKeyringStore(ServiceName)
}
