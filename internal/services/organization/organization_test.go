package organization

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

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

func TestList_PaginatedWithSearch(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/organizations" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("search"); got != "acme" {
			t.Errorf("expected search=acme, got %q", got)
		}
		w.Write([]byte(`{"data":[{"id":"o1","name":"Acme"}],"total":1,"page":1,"page_size":20,"total_pages":1}`))
	}))

	page, err := svc.List(context.Background(), api.PageParams{Page: 1, PageSize: 20, Search: "acme"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Data) != 1 || page.Data[0].Name != "Acme" {
		t.Errorf("unexpected page %+v", page)
	}
}

func TestUsers_UnwrapsEnvelope(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/organizations/o1/users" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"users":[{"user_id":"u1","username":"ada"}]}`))
	}))

	users, err := svc.Users(context.Background(), "o1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 1 || users[0].Username != "ada" {
		t.Errorf("unexpected users %+v", users)
	}
}

func TestSendExpiryReminder_PostsToReminderEndpoint(t *testing.T) {
	var gotMethod, gotPath string
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{"message":"reminder sent"}`))
	}))

	if err := svc.SendExpiryReminder(context.Background(), "o1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("expected POST, got %s", gotMethod)
	}
	if gotPath != "/organizations/o1/send-expiry-reminder" {
		t.Errorf("unexpected path %s", gotPath)
	}
}

func TestExpiryBucket(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	date := func(days int) *time.Time {
		d := now.AddDate(0, 0, days)
		return &d
	}

	tests := []struct {
		name       string
		endDate    *time.Time
		active     int
		wantStatus string
		wantDays   *int
	}{
		{"no end date", nil, 1, "none", nil},
		{"no active subscriptions", date(30), 0, "none", nil},
		{"well in the future", date(30), 1, "active", intp(30)},
		{"exactly at boundary", date(7), 1, "expiring_soon", intp(7)},
		{"tomorrow", date(1), 1, "expiring_soon", intp(1)},
		{"past", date(-3), 1, "expired", intp(-3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, days := ExpiryBucket(tt.endDate, tt.active, now)
			if status != tt.wantStatus {
				t.Errorf("expected status %s, got %s", tt.wantStatus, status)
			}
			if diff := cmp.Diff(tt.wantDays, days); diff != "" {
				t.Errorf("days mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func intp(v int) *int { return &v }
