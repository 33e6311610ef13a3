package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"sassmon/internal/api"
	"sassmon/internal/session"
)

func newTestService(t *testing.T, handler http.Handler) *Service {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sess := session.New(session.NewMockStore(), nil)
	return NewService(api.New(server.URL, sess))
}

func TestOverview(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dashboard/overview" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"total_organizations": 12,
			"total_users": 340,
			"total_subscriptions": 18,
			"database_status": {"light_admin": "connected", "saas_monitor": "error"},
			"system_health": {"scheduler": "healthy"},
			"recent_metrics": [{"database_name": "primary", "metric_type": "cpu", "metric_value": 41.5, "unit": "%", "timestamp": 1700000000}]
		}`))
	}))

	overview, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overview.TotalOrganizations != 12 || overview.TotalUsers != 340 {
		t.Errorf("unexpected totals %+v", overview)
	}
	if overview.DatabaseStatus["saas_monitor"] != "error" {
		t.Errorf("unexpected database status %v", overview.DatabaseStatus)
	}
	if len(overview.RecentMetrics) != 1 || overview.RecentMetrics[0].MetricValue != 41.5 {
		t.Errorf("unexpected recent metrics %+v", overview.RecentMetrics)
	}
}

func TestOrganizations_LifecycleFromBackend(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dashboard/organizations" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`[
			{"id": "o1", "name": "Acme", "subscription_status": "expiring_soon", "days_until_expiration": 3},
			{"id": "o2", "name": "Globex", "subscription_status": "none"}
		]`))
	}))

	orgs, err := svc.Organizations(context.Background(), api.PageParams{Page: 1, PageSize: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orgs) != 2 {
		t.Fatalf("expected 2 organizations, got %d", len(orgs))
	}
	if orgs[0].SubscriptionStatus != "expiring_soon" || *orgs[0].DaysUntilExpiration != 3 {
		t.Errorf("unexpected first org %+v", orgs[0])
	}
	if orgs[1].DaysUntilExpiration != nil {
		t.Errorf("expected nil expiration days for org without end date")
	}
}

func TestOrganizationMetrics(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dashboard/organizations/o1/metrics" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"organization": {"id": "o1", "name": "Acme"},
			"user_stats": {"total_users": 30, "active_users": 22},
			"sub_stats": {"total_subscriptions": 5, "active_subscriptions": 4, "monthly_revenue": 196},
			"workspace_count": 8,
			"resource_usage": {"storage_usage_mb": 512.5, "query_count_today": 1250}
		}`))
	}))

	metrics, err := svc.OrganizationMetrics(context.Background(), "o1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if metrics.UserStats.ActiveUsers != 22 {
		t.Errorf("active users = %d, want 22", metrics.UserStats.ActiveUsers)
	}
	if metrics.SubStats.MonthlyRevenue != 196 {
		t.Errorf("monthly revenue = %v, want 196", metrics.SubStats.MonthlyRevenue)
	}
	if metrics.ResourceUsage.StorageUsageMB != 512.5 {
		t.Errorf("storage usage = %v, want 512.5", metrics.ResourceUsage.StorageUsageMB)
	}
}

func TestOrganizationUsage_BucketDecoding(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/monitoring/organizations/o1/usage" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("hours"); got != "48" {
			t.Errorf("hours = %q, want 48", got)
		}
		w.Write([]byte(`{
			"organization_id": "o1",
			"period": {"start_time": 1700000000, "end_time": 1700172800, "hours": 48},
			"usage_by_database": {
				"postgresql": {"storage": [{"timestamp": 1700000000, "metric_name": "db_size", "metric_value": 2048, "unit": "mb"}]}
			},
			"usage_by_type": {
				"postgresql_storage": [{"timestamp": 1700000000, "database_name": "primary", "metric_name": "db_size", "metric_value": 2048, "unit": "mb"}]
			}
		}`))
	}))

	usage, err := svc.OrganizationUsage(context.Background(), "o1", 48)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	samples := usage.UsageByDatabase["postgresql"]["storage"]
	if len(samples) != 1 || samples[0].MetricValue != 2048 {
		t.Errorf("unexpected database bucket %+v", usage.UsageByDatabase)
	}
	if usage.Period.Hours != 48 {
		t.Errorf("period hours = %d, want 48", usage.Period.Hours)
	}
}

func TestHealthyComponents(t *testing.T) {
	healthy, total := HealthyComponents(map[string]string{
		"light_admin":  "connected",
		"saas_monitor": "error",
		"scheduler":    "healthy",
	})
	if healthy != 2 || total != 3 {
		t.Errorf("got %d/%d, want 2/3", healthy, total)
	}
}
