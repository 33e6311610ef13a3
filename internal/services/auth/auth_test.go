package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sassmon/internal/api"
	"sassmon/internal/domain"
	"sassmon/internal/session"
)

func newTestService(t *testing.T, handler http.Handler) (*Service, *session.Session) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sess := session.New(session.NewMockStore(), nil)
	client := api.New(server.URL, sess)
	return NewService(client, nil), sess
}

func TestLogin_StoresCredentials(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body.Username != "ada" || body.Password != "secret" {
			t.Errorf("unexpected credentials: %+v", body)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"token":         "access-1",
			"refresh_token": "refresh-1",
			"expires_at":    time.Now().Add(time.Hour).Format(time.RFC3339),
			"user": map[string]any{
				"id":       "adm-1",
				"username": "ada",
				"role":     domain.RoleSuperAdmin,
			},
		})
	})

	svc, sess := newTestService(t, handler)

	user, err := svc.Login(context.Background(), "ada", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Username != "ada" {
		t.Errorf("expected user ada, got %q", user.Username)
	}
	if !sess.IsAuthenticated() {
		t.Error("expected an authenticated session after login")
	}
	if stored := sess.StoredUser(); stored == nil || stored.Role != domain.RoleSuperAdmin {
		t.Errorf("expected cached super_admin user, got %+v", stored)
	}
}

func TestLogout_ClearsSessionEvenWhenServerFails(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	})

	svc, sess := newTestService(t, handler)
	if err := sess.SetCredentials("access-1", "refresh-1", time.Now().Add(time.Hour), nil); err != nil {
		t.Fatalf("failed to seed session: %v", err)
	}

	svc.Logout(context.Background())

	if sess.HasToken() {
		t.Error("expected session cleared after logout")
	}
}

func TestCurrentUser_RefreshesCachedCopy(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/profile" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id":       "adm-1",
			"username": "ada",
			"role":     domain.RoleAdmin,
		})
	})

	svc, sess := newTestService(t, handler)

	user, err := svc.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("current user failed: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Errorf("expected admin role, got %q", user.Role)
	}
	if stored := sess.StoredUser(); stored == nil || stored.ID != "adm-1" {
		t.Errorf("expected cached user adm-1, got %+v", stored)
	}
}

func TestChangePassword_SendsBothPasswords(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/change-password" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body["old_password"] != "old" || body["new_password"] != "newer" {
			t.Errorf("unexpected body: %v", body)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	svc, _ := newTestService(t, handler)

	if err := svc.ChangePassword(context.Background(), "old", "newer"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}
}

// A token can look valid locally while already revoked server-side.
// The startup validation behind `auth status` must purge it rather
// than report a live session.
func TestInitializeAuth_RevokedTokenIsPurged(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	svc, sess := newTestService(t, handler)
	if err := sess.SetCredentials("revoked-1", "refresh-1", time.Now().Add(time.Hour), nil); err != nil {
		t.Fatalf("failed to seed session: %v", err)
	}

	user, err := svc.InitializeAuth(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user != nil {
		t.Errorf("expected nil user for a rejected session, got %+v", user)
	}
	if sess.HasToken() {
		t.Error("expected credentials purged after server rejection")
	}
}

func TestRoleChecks_UseCachedUser(t *testing.T) {
	svc, sess := newTestService(t, http.NotFoundHandler())

	if svc.IsAdmin() {
		t.Error("expected no roles without a cached user")
	}

	if err := sess.CacheUser(&domain.User{ID: "adm-1", Username: "ada", Role: domain.RoleAdmin}); err != nil {
		t.Fatalf("failed to cache user: %v", err)
	}
	if !svc.IsAdmin() {
		t.Error("expected admin role")
	}
	if svc.IsSuperAdmin() {
		t.Error("admin is not super_admin")
	}

	if err := sess.CacheUser(&domain.User{ID: "adm-2", Username: "eve", Role: domain.RoleSuperAdmin}); err != nil {
		t.Fatalf("failed to cache user: %v", err)
	}
	if !svc.IsSuperAdmin() || !svc.IsAdmin() {
		t.Error("expected super_admin to hold both role checks")
	}
}
