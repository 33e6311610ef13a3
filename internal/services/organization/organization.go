// Package organization wraps the tenant endpoints. The dashboard
// observes tenants rather than managing them; the expiry reminder is
// the one operation that writes.
package organization

import (
	"context"
	"fmt"

	"sassmon/internal/api"
	"sassmon/internal/domain"
)

// Service exposes the organization endpoints.
type Service struct {
	client *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// List returns one page of organizations, optionally filtered by a
// search term.
func (s *Service) List(ctx context.Context, params api.PageParams) (api.Paginated[domain.Organization], error) {
	return api.GetPaginated[domain.Organization](ctx, s.client, "/organizations", params)
}

// Get returns a single organization.
func (s *Service) Get(ctx context.Context, id string) (*domain.Organization, error) {
	var org domain.Organization
	if err := s.client.Get(ctx, "/organizations/"+id, nil, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// Users returns the member list of an organization.
func (s *Service) Users(ctx context.Context, id string) ([]domain.Member, error) {
	var resp struct {
		Users []domain.Member `json:"users"`
	}
	if err := s.client.Get(ctx, fmt.Sprintf("/organizations/%s/users", id), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// Workspaces returns the workspaces under an organization.
func (s *Service) Workspaces(ctx context.Context, id string) ([]domain.Workspace, error) {
	var resp struct {
		Workspaces []domain.Workspace `json:"workspaces"`
	}
	if err := s.client.Get(ctx, fmt.Sprintf("/organizations/%s/workspaces", id), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Workspaces, nil
}

// SendExpiryReminder asks the platform to email an organization's
// owner about its expiring subscription.
func (s *Service) SendExpiryReminder(ctx context.Context, id string) error {
	return s.client.Post(ctx, fmt.Sprintf("/organizations/%s/send-expiry-reminder", id), nil, nil)
}

// Subscriptions returns one page of an organization's subscriptions.
func (s *Service) Subscriptions(ctx context.Context, id string, params api.PageParams) (api.Paginated[domain.OrganizationSubscription], error) {
	path := fmt.Sprintf("/organizations/%s/subscriptions", id)
	return api.GetPaginated[domain.OrganizationSubscription](ctx, s.client, path, params)
}
