// Package user wraps the platform-user endpoints (read-only).
package user

import (
	"context"
	"fmt"

	"sassmon/internal/api"
	"sassmon/internal/domain"
)

// Service exposes the platform-user endpoints.
type Service struct {
	client *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// List returns one page of platform users.
func (s *Service) List(ctx context.Context, params api.PageParams) (api.Paginated[domain.PlatformUser], error) {
	return api.GetPaginated[domain.PlatformUser](ctx, s.client, "/users", params)
}

// Get returns a single platform user.
func (s *Service) Get(ctx context.Context, id string) (*domain.PlatformUser, error) {
	var user domain.PlatformUser
	if err := s.client.Get(ctx, "/users/"+id, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Organizations returns one page of the user's organization memberships.
func (s *Service) Organizations(ctx context.Context, id string, params api.PageParams) (api.Paginated[domain.UserOrganization], error) {
	path := fmt.Sprintf("/users/%s/organizations", id)
	return api.GetPaginated[domain.UserOrganization](ctx, s.client, path, params)
}

// Workspaces returns one page of the user's workspace memberships.
func (s *Service) Workspaces(ctx context.Context, id string, params api.PageParams) (api.Paginated[domain.UserWorkspace], error) {
	path := fmt.Sprintf("/users/%s/workspaces", id)
	return api.GetPaginated[domain.UserWorkspace](ctx, s.client, path, params)
}

// Subscriptions returns one page of the user's subscriptions.
func (s *Service) Subscriptions(ctx context.Context, id string, params api.PageParams) (api.Paginated[domain.UserSubscription], error) {
	path := fmt.Sprintf("/users/%s/subscriptions", id)
	return api.GetPaginated[domain.UserSubscription](ctx, s.client, path, params)
}
