// Package auth wraps the authentication endpoints and the credential
// lifecycle around them.
package auth

import (
	"context"
	"time"

	"go.uber.org/zap"

	"sassmon/internal/api"
	"sassmon/internal/domain"
)

// Service exposes the authentication operations.
type Service struct {
	client *api.Client
	logger *zap.Logger
}

func NewService(client *api.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, logger: logger}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresAt    time.Time    `json:"expires_at"`
	User         *domain.User `json:"user"`
}

// Login authenticates and stores the returned credential set.
func (s *Service) Login(ctx context.Context, username, password string) (*domain.User, error) {
	var resp loginResponse
	err := s.client.Post(ctx, "/auth/login", loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return nil, err
	}

	if resp.Token != "" {
		if err := s.client.Session().SetCredentials(resp.Token, resp.RefreshToken, resp.ExpiresAt, resp.User); err != nil {
			return nil, err
		}
	}
	return resp.User, nil
}

// Logout tells the backend, then purges local credentials. The purge is
// unconditional: a failed server call never leaves the session behind.
func (s *Service) Logout(ctx context.Context) {
	if err := s.client.Post(ctx, "/auth/logout", nil, nil); err != nil {
		s.logger.Warn("auth: server logout failed", zap.Error(err))
	}
	s.client.Session().Clear()
}

// RefreshToken exchanges the refresh token for a new access token.
func (s *Service) RefreshToken(ctx context.Context) (string, error) {
	return s.client.RefreshToken(ctx)
}

// InitializeAuth validates the stored session at startup.
func (s *Service) InitializeAuth(ctx context.Context) (*domain.User, error) {
	return s.client.InitializeAuth(ctx)
}

// CurrentUser fetches the authenticated administrator and refreshes the
// cached copy.
func (s *Service) CurrentUser(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := s.client.Get(ctx, "/profile", nil, &user); err != nil {
		return nil, err
	}
	if err := s.client.Session().CacheUser(&user); err != nil {
		s.logger.Warn("auth: failed to cache user", zap.Error(err))
	}
	return &user, nil
}

// UpdateProfile applies partial updates to the administrator profile.
func (s *Service) UpdateProfile(ctx context.Context, updates map[string]any) (*domain.User, error) {
	var user domain.User
	if err := s.client.Put(ctx, "/profile", updates, &user); err != nil {
		return nil, err
	}
	if err := s.client.Session().CacheUser(&user); err != nil {
		s.logger.Warn("auth: failed to cache user", zap.Error(err))
	}
	return &user, nil
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// ChangePassword rotates the administrator password.
func (s *Service) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	return s.client.Post(ctx, "/change-password", changePasswordRequest{
		OldPassword: oldPassword,
		NewPassword: newPassword,
	}, nil)
}

// HasRole checks the cached user record for a role.
func (s *Service) HasRole(role string) bool {
	user := s.client.Session().StoredUser()
	return user != nil && user.Role == role
}

// IsAdmin reports whether the cached user holds any admin role.
func (s *Service) IsAdmin() bool {
	return s.HasRole(domain.RoleAdmin) || s.HasRole(domain.RoleSuperAdmin)
}

// IsSuperAdmin reports whether the cached user is a super admin.
func (s *Service) IsSuperAdmin() bool {
	return s.HasRole(domain.RoleSuperAdmin)
}
