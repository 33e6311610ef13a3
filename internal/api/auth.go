package api

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"sassmon/internal/domain"
)

// tokenLifetime is how far a refreshed access token's expiry extends
// from the previous expiry basis.
const tokenLifetime = 24 * time.Hour

// refreshResponse is the refresh endpoint's payload.
type refreshResponse struct {
	Token string `json:"token"`
}

// RefreshToken exchanges the stored refresh token for a new access
// token. The refresh token travels in the Refresh-Token header, not the
// body. On success the new token is stored and the expiry extended by
// the token lifetime from its previous basis; on failure the whole
// credential set is purged and the failure propagates. A failed refresh
// is terminal for the session and never retried internally.
func (c *Client) RefreshToken(ctx context.Context) (string, error) {
	refresh, err := c.session.RefreshToken()
	if err != nil {
		return "", err
	}

	headers := http.Header{}
	headers.Set("Refresh-Token", refresh)

	var resp refreshResponse
	if err := c.do(ctx, http.MethodPost, "/auth/refresh", nil, nil, headers, &resp); err != nil {
		c.session.Clear()
		return "", err
	}

	// Extend from the previous expiry basis, falling back to now for
	// sessions that never recorded one.
	basis, ok := c.session.ExpiresAt()
	if !ok {
		basis = time.Now()
	}
	if err := c.session.SetAccessToken(resp.Token, basis.Add(tokenLifetime)); err != nil {
		c.logger.Warn("api: failed to store refreshed token", zap.Error(err))
	}

	return resp.Token, nil
}

// InitializeAuth validates the stored session at process start. Without
// a locally valid token it returns nil immediately, with no network
// call. Otherwise it asks the backend for the current user, because a
// locally-valid-looking token can still be revoked server-side; on
// rejection the credentials are purged and nil is returned.
func (c *Client) InitializeAuth(ctx context.Context) (*domain.User, error) {
	if !c.session.IsAuthenticated() {
		return nil, nil
	}

	var user domain.User
	if err := c.Get(ctx, "/profile", nil, &user); err != nil {
		c.session.Clear()
		c.logger.Info("api: stored session rejected server-side", zap.Error(err))
		return nil, nil
	}

	if err := c.session.CacheUser(&user); err != nil {
		c.logger.Warn("api: failed to cache user", zap.Error(err))
	}
	return &user, nil
}
