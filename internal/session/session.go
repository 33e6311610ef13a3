package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"sassmon/internal/domain"
)

// expiringSoonWindow is how far ahead of the expiry timestamp a token
// counts as expiring soon, for callers that refresh proactively instead
// of waiting for a 401.
const expiringSoonWindow = 30 * time.Minute

var ErrNoRefreshToken = errors.New("no refresh token available")

// Session is the single owner of the credential state. Everything that
// needs the current token, the HTTP client included, takes an explicit
// dependency on a *Session rather than reading storage directly.
type Session struct {
	store  Store
	logger *zap.Logger

	// now is replaceable in tests.
	now func() time.Time
}

func New(store Store, logger *zap.Logger) *Session {
	if store == nil {
		store = DefaultStore()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{store: store, logger: logger, now: time.Now}
}

// SetCredentials stores a full credential set, as returned by a login.
func (s *Session) SetCredentials(accessToken, refreshToken string, expiresAt time.Time, user *domain.User) error {
	if err := s.store.Set(KeyAccessToken, accessToken); err != nil {
		return fmt.Errorf("session: store access token: %w", err)
	}
	if err := s.store.Set(KeyRefreshToken, refreshToken); err != nil {
		return fmt.Errorf("session: store refresh token: %w", err)
	}
	if err := s.store.Set(KeyExpiresAt, expiresAt.Format(time.RFC3339)); err != nil {
		return fmt.Errorf("session: store expiry: %w", err)
	}
	if user != nil {
		if err := s.CacheUser(user); err != nil {
			return err
		}
	}
	return nil
}

// SetAccessToken replaces the access token and expiry, leaving the
// refresh token and cached user in place. Used after a token refresh.
func (s *Session) SetAccessToken(token string, expiresAt time.Time) error {
	if err := s.store.Set(KeyAccessToken, token); err != nil {
		return fmt.Errorf("session: store access token: %w", err)
	}
	if err := s.store.Set(KeyExpiresAt, expiresAt.Format(time.RFC3339)); err != nil {
		return fmt.Errorf("session: store expiry: %w", err)
	}
	return nil
}

// Clear purges the whole credential set. The four entries always go
// together so no half-authenticated state can survive.
func (s *Session) Clear() {
	for _, key := range []string{KeyAccessToken, KeyRefreshToken, KeyExpiresAt, KeyUserInfo} {
		if err := s.store.Delete(key); err != nil && !errors.Is(err, ErrNotFound) {
			s.logger.Warn("session: purge failed", zap.String("key", key), zap.Error(err))
		}
	}
}

// HasToken reports token presence only, without the expiry check. This
// is the cheap guard used before rendering protected commands; expiry
// enforcement happens on the first API call.
func (s *Session) HasToken() bool {
	token, err := s.store.Get(KeyAccessToken)
	return err == nil && token != ""
}

// AccessToken returns the stored access token if it exists and has not
// expired. An expired-but-present token is treated as absent and the
// credential set is purged.
func (s *Session) AccessToken() (string, bool) {
	token, err := s.store.Get(KeyAccessToken)
	if err != nil || token == "" {
		return "", false
	}

	if expiresAt, ok := s.ExpiresAt(); ok && !expiresAt.After(s.now()) {
		s.logger.Info("session: stored token expired, clearing credentials")
		s.Clear()
		return "", false
	}

	return token, true
}

// RefreshToken returns the stored refresh token, or ErrNoRefreshToken.
func (s *Session) RefreshToken() (string, error) {
	token, err := s.store.Get(KeyRefreshToken)
	if err != nil || token == "" {
		return "", ErrNoRefreshToken
	}
	return token, nil
}

// ExpiresAt returns the stored expiry timestamp, if one is stored and
// parsable.
func (s *Session) ExpiresAt() (time.Time, bool) {
	raw, err := s.store.Get(KeyExpiresAt)
	if err != nil || raw == "" {
		return time.Time{}, false
	}
	expiresAt, parseErr := time.Parse(time.RFC3339, raw)
	if parseErr != nil {
		s.logger.Warn("session: unparsable expiry timestamp", zap.Error(parseErr))
		return time.Time{}, false
	}
	return expiresAt, true
}

// IsAuthenticated reports whether a non-expired access token is stored.
// The check is self-healing: a stale token is purged the first time
// anyone asks.
func (s *Session) IsAuthenticated() bool {
	_, ok := s.AccessToken()
	return ok
}

// IsTokenExpiringSoon reports whether an expiry timestamp exists and
// falls within the proactive-refresh window.
func (s *Session) IsTokenExpiringSoon() bool {
	expiresAt, ok := s.ExpiresAt()
	if !ok {
		return false
	}
	return !expiresAt.After(s.now().Add(expiringSoonWindow))
}

// CacheUser stores the user record alongside the tokens.
func (s *Session) CacheUser(user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session: encode user: %w", err)
	}
	if err := s.store.Set(KeyUserInfo, string(data)); err != nil {
		return fmt.Errorf("session: store user: %w", err)
	}
	return nil
}

// StoredUser returns the cached user record, or nil when none is
// stored or the stored value does not parse.
func (s *Session) StoredUser() *domain.User {
	raw, err := s.store.Get(KeyUserInfo)
	if err != nil || raw == "" {
		return nil
	}
	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.logger.Warn("session: unparsable cached user", zap.Error(err))
		return nil
	}
	return &user
}
