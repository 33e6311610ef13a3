// Package monitoring wraps the platform monitoring endpoints: database
// health, collected metrics, alert rules, and the monitoring log
// stream.
package monitoring

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"sassmon/internal/api"
	"sassmon/internal/domain"
)

// Service exposes the monitoring endpoints.
type Service struct {
	client *api.Client
}

// NewService returns a monitoring service backed by client.
func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// DatabaseStatus returns the health snapshot of every database tier.
func (s *Service) DatabaseStatus(ctx context.Context) (*domain.DatabaseStatus, error) {
	var status domain.DatabaseStatus
	if err := s.client.Get(ctx, "/monitoring/databases", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// MetricFilter narrows a metrics listing. Zero values are omitted from
// the query.
type MetricFilter struct {
	DatabaseType   string
	DatabaseName   string
	MetricType     string
	OrganizationID string
	StartTime      *time.Time
	EndTime        *time.Time
}

func (f MetricFilter) apply(query url.Values) {
	if f.DatabaseType != "" {
		query.Set("database_type", f.DatabaseType)
	}
	if f.DatabaseName != "" {
		query.Set("database_name", f.DatabaseName)
	}
	if f.MetricType != "" {
		query.Set("metric_type", f.MetricType)
	}
	if f.OrganizationID != "" {
		query.Set("organization_id", f.OrganizationID)
	}
	if f.StartTime != nil {
		query.Set("start_time", f.StartTime.Format(time.RFC3339))
	}
	if f.EndTime != nil {
		query.Set("end_time", f.EndTime.Format(time.RFC3339))
	}
}

// Metrics returns one page of collected resource metrics, newest
// first.
func (s *Service) Metrics(ctx context.Context, params api.PageParams, filter MetricFilter) ([]domain.ResourceMetric, int, error) {
	query := params.Values()
	filter.apply(query)

	var resp struct {
		Metrics []domain.ResourceMetric `json:"metrics"`
		Total   int                     `json:"total"`
	}
	if err := s.client.Get(ctx, "/monitoring/metrics", query, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Metrics, resp.Total, nil
}

// MetricsHistory returns a time series covering the last hours hours
// for one database metric. hours <= 0 means the backend default of 24.
func (s *Service) MetricsHistory(ctx context.Context, filter MetricFilter, hours int) (*domain.MetricsHistory, error) {
	query := url.Values{}
	filter.apply(query)
	if hours > 0 {
		query.Set("hours", strconv.Itoa(hours))
	}

	var history domain.MetricsHistory
	if err := s.client.Get(ctx, "/monitoring/metrics/history", query, &history); err != nil {
		return nil, err
	}
	return &history, nil
}

// Alerts returns one page of alert rules. enabled narrows the listing
// when non-nil.
func (s *Service) Alerts(ctx context.Context, params api.PageParams, enabled *bool) ([]domain.AlertRule, int, error) {
	query := params.Values()
	if enabled != nil {
		query.Set("enabled", strconv.FormatBool(*enabled))
	}

	var resp struct {
		Alerts []domain.AlertRule `json:"alerts"`
		Total  int                `json:"total"`
	}
	if err := s.client.Get(ctx, "/monitoring/alerts", query, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Alerts, resp.Total, nil
}

// AlertRequest carries the mutable fields of an alert rule.
type AlertRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	RuleType    string  `json:"rule_type"`
	TargetType  string  `json:"target_type"`
	TargetName  string  `json:"target_name,omitempty"`
	MetricName  string  `json:"metric_name"`
	Operator    string  `json:"operator"`
	Threshold   float64 `json:"threshold"`
	Duration    int     `json:"duration"`
	Severity    string  `json:"severity"`
	Enabled     bool    `json:"enabled"`
}

// CreateAlert defines a new alert rule.
func (s *Service) CreateAlert(ctx context.Context, req AlertRequest) (*domain.AlertRule, error) {
	var rule domain.AlertRule
	if err := s.client.Post(ctx, "/monitoring/alerts", req, &rule); err != nil {
		return nil, err
	}
	return &rule, nil
}

// UpdateAlert replaces an alert rule definition.
func (s *Service) UpdateAlert(ctx context.Context, id string, req AlertRequest) (*domain.AlertRule, error) {
	var rule domain.AlertRule
	if err := s.client.Put(ctx, "/monitoring/alerts/"+id, req, &rule); err != nil {
		return nil, err
	}
	return &rule, nil
}

// SetAlertEnabled flips a rule on or off without touching its other
// fields.
func (s *Service) SetAlertEnabled(ctx context.Context, id string, enabled bool) (*domain.AlertRule, error) {
	var rule domain.AlertRule
	body := map[string]any{"enabled": enabled}
	if err := s.client.Put(ctx, "/monitoring/alerts/"+id, body, &rule); err != nil {
		return nil, err
	}
	return &rule, nil
}

// DeleteAlert removes an alert rule.
func (s *Service) DeleteAlert(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/monitoring/alerts/"+id, nil)
}

// SystemHealth returns the recorded health of every platform
// component, most recently checked first.
func (s *Service) SystemHealth(ctx context.Context) ([]domain.SystemHealth, error) {
	var resp struct {
		HealthRecords []domain.SystemHealth `json:"health_records"`
	}
	if err := s.client.Get(ctx, "/system/health", nil, &resp); err != nil {
		return nil, err
	}
	return resp.HealthRecords, nil
}

// LogFilter narrows the monitoring log stream.
type LogFilter struct {
	Level  string
	Source string
}

// Logs returns one page of monitoring log entries, newest first.
func (s *Service) Logs(ctx context.Context, params api.PageParams, filter LogFilter) ([]domain.MonitoringLog, int, error) {
	query := params.Values()
	if filter.Level != "" {
		query.Set("level", filter.Level)
	}
	if filter.Source != "" {
		query.Set("source", filter.Source)
	}

	var resp struct {
		Logs  []domain.MonitoringLog `json:"logs"`
		Total int                    `json:"total"`
	}
	if err := s.client.Get(ctx, "/system/logs", query, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Logs, resp.Total, nil
}
