// Package dashboard wraps the landing-page aggregates: platform
// totals, the per-tenant dashboard listing, and the tenant usage
// rollups.
package dashboard

import (
	"context"
	"net/url"
	"strconv"

	"sassmon/internal/api"
	"sassmon/internal/domain"
)

// Service exposes the dashboard endpoints.
type Service struct {
	client *api.Client
}

// NewService returns a dashboard service backed by client.
func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// Overview returns the platform totals with database and component
// health maps.
func (s *Service) Overview(ctx context.Context) (*domain.Overview, error) {
	var overview domain.Overview
	if err := s.client.Get(ctx, "/dashboard/overview", nil, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

// Organizations returns the dashboard tenant listing with subscription
// lifecycle already computed by the backend.
func (s *Service) Organizations(ctx context.Context, params api.PageParams) ([]domain.Organization, error) {
	var orgs []domain.Organization
	if err := s.client.Get(ctx, "/dashboard/organizations", params.Values(), &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// OrganizationMetrics returns the per-tenant detail aggregate.
func (s *Service) OrganizationMetrics(ctx context.Context, orgID string) (*domain.OrganizationMetrics, error) {
	var metrics domain.OrganizationMetrics
	if err := s.client.Get(ctx, "/dashboard/organizations/"+orgID+"/metrics", nil, &metrics); err != nil {
		return nil, err
	}
	return &metrics, nil
}

// DatabaseStatus returns the dashboard's snapshot of every database
// tier.
func (s *Service) DatabaseStatus(ctx context.Context) (*domain.DatabaseStatus, error) {
	var status domain.DatabaseStatus
	if err := s.client.Get(ctx, "/dashboard/database-status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Period is the time window an aggregate covers, in unix seconds.
type Period struct {
	StartTime int64 `json:"start_time"`
	EndTime   int64 `json:"end_time"`
	Hours     int   `json:"hours"`
}

// OrgMetricSample is one rolled-up metric value with its collection
// time.
type OrgMetricSample struct {
	Value       float64 `json:"value"`
	Unit        string  `json:"unit"`
	LastUpdated int64   `json:"last_updated"`
}

// OrgOverviewEntry is one tenant's row in the monitoring overview.
type OrgOverviewEntry struct {
	OrganizationID   string                     `json:"organization_id"`
	OrganizationName string                     `json:"organization_name"`
	OwnerID          string                     `json:"owner_id"`
	Description      string                     `json:"description"`
	CreatedAt        int64                      `json:"created_at"`
	Metrics          map[string]OrgMetricSample `json:"metrics"`
}

// OrgOverview is the cross-tenant monitoring rollup.
type OrgOverview struct {
	Summary struct {
		TotalOrganizations int `json:"total_organizations"`
		TotalUsers         int `json:"total_users"`
		TotalWorkspaces    int `json:"total_workspaces"`
		TotalSubscriptions int `json:"total_subscriptions"`
	} `json:"summary"`
	Organizations []OrgOverviewEntry `json:"organizations"`
	Period        Period             `json:"period"`
	UpdatedAt     int64              `json:"updated_at"`
}

// OrganizationOverview returns the cross-tenant monitoring rollup for
// the last 24 hours.
func (s *Service) OrganizationOverview(ctx context.Context) (*OrgOverview, error) {
	var overview OrgOverview
	if err := s.client.Get(ctx, "/monitoring/organizations/overview", nil, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

// UsageSample is one measurement inside a usage rollup bucket.
type UsageSample struct {
	Timestamp    int64   `json:"timestamp"`
	DatabaseName string  `json:"database_name,omitempty"`
	MetricName   string  `json:"metric_name"`
	MetricValue  float64 `json:"metric_value"`
	Unit         string  `json:"unit"`
}

// OrgUsage is one tenant's resource usage over a time window, bucketed
// by database tier and by metric type.
type OrgUsage struct {
	OrganizationID  string                              `json:"organization_id"`
	Period          Period                              `json:"period"`
	UsageByDatabase map[string]map[string][]UsageSample `json:"usage_by_database"`
	UsageByType     map[string][]UsageSample            `json:"usage_by_type"`
}

// OrganizationUsage returns one tenant's usage rollup covering the
// last hours hours. hours <= 0 means the backend default of 24.
func (s *Service) OrganizationUsage(ctx context.Context, orgID string, hours int) (*OrgUsage, error) {
	query := url.Values{}
	if hours > 0 {
		query.Set("hours", strconv.Itoa(hours))
	}

	var usage OrgUsage
	if err := s.client.Get(ctx, "/monitoring/organizations/"+orgID+"/usage", query, &usage); err != nil {
		return nil, err
	}
	return &usage, nil
}

// HealthyComponents counts the entries of a health map reporting a
// healthy state.
func HealthyComponents(health map[string]string) (healthy, total int) {
	for _, status := range health {
		total++
		switch status {
		case "connected", "healthy", "ok":
			healthy++
		}
	}
	return healthy, total
}
