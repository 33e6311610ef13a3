package user

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

func TestList_ForwardsPagination(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		query := r.URL.Query()
		if query.Get("page") != "2" || query.Get("page_size") != "10" || query.Get("search") != "carol" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		w.Write([]byte(`{
			"data": [{"id": "usr-7", "username": "carol", "oauth_provider": "github",
				"organization_count": 2, "created_at": "2026-04-01T00:00:00Z"}],
			"total": 41, "page": 2, "page_size": 10, "total_pages": 5
		}`))
	})

	svc := newTestService(t, handler)

	page, err := svc.List(context.Background(), api.PageParams{Page: 2, PageSize: 10, Search: "carol"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Total != 41 || page.TotalPages != 5 {
		t.Errorf("unexpected envelope: %+v", page)
	}
	if len(page.Data) != 1 || page.Data[0].Username != "carol" {
		t.Errorf("unexpected rows: %+v", page.Data)
	}
	if page.Data[0].OrganizationCount != 2 {
		t.Errorf("expected 2 organizations, got %d", page.Data[0].OrganizationCount)
	}
}

func TestGet_DecodesUser(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/usr-7" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"id": "usr-7", "username": "carol", "email": "carol@example.com",
			"oauth_provider": "github", "created_at": "2026-04-01T00:00:00Z"}`))
	})

	svc := newTestService(t, handler)

	user, err := svc.Get(context.Background(), "usr-7")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if user.Email != "carol@example.com" {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestMembershipEndpoints_UsePerUserPaths(t *testing.T) {
	var paths []string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`{"data": [], "total": 0, "page": 1, "page_size": 20, "total_pages": 0}`))
	})

	svc := newTestService(t, handler)
	ctx := context.Background()
	params := api.PageParams{Page: 1}

	if _, err := svc.Organizations(ctx, "usr-7", params); err != nil {
		t.Fatalf("organizations failed: %v", err)
	}
	if _, err := svc.Workspaces(ctx, "usr-7", params); err != nil {
		t.Fatalf("workspaces failed: %v", err)
	}
	if _, err := svc.Subscriptions(ctx, "usr-7", params); err != nil {
		t.Fatalf("subscriptions failed: %v", err)
	}

	want := []string{"/users/usr-7/organizations", "/users/usr-7/workspaces", "/users/usr-7/subscriptions"}
	for i, path := range want {
		if paths[i] != path {
			t.Errorf("call %d hit %s, want %s", i, paths[i], path)
		}
	}
}
