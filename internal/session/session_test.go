package session

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"sassmon/internal/domain"
)

func newTestSession(t *testing.T) (*Session, *MockStore) {
	t.Helper()
	store := NewMockStore()
	return New(store, nil), store
}

func TestAccessToken_ExpiredTokenIsPurged(t *testing.T) {
	s, store := newTestSession(t)
	err := s.SetCredentials("tok", "refresh", time.Now().Add(-time.Second), nil)
	if err != nil {
		t.Fatalf("SetCredentials failed: %v", err)
	}

	if s.IsAuthenticated() {
		t.Error("expected expired token to report unauthenticated")
	}

	// The whole credential set must be gone, not just the token.
	for _, key := range []string{KeyAccessToken, KeyRefreshToken, KeyExpiresAt, KeyUserInfo} {
		if _, err := store.Get(key); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected %s purged, got err=%v", key, err)
		}
	}
}

func TestIsAuthenticated_ValidToken(t *testing.T) {
	s, _ := newTestSession(t)
	if err := s.SetCredentials("tok", "refresh", time.Now().Add(10*time.Minute), nil); err != nil {
		t.Fatalf("SetCredentials failed: %v", err)
	}

	if !s.IsAuthenticated() {
		t.Error("expected valid token to authenticate")
	}
}

func TestIsAuthenticated_NoToken(t *testing.T) {
	s, _ := newTestSession(t)
	if s.IsAuthenticated() {
		t.Error("expected empty session to report unauthenticated")
	}
}

func TestIsTokenExpiringSoon(t *testing.T) {
	tests := []struct {
		name  string
		until time.Duration
		want  bool
	}{
		{"10 minutes out", 10 * time.Minute, true},
		{"29 minutes out", 29 * time.Minute, true},
		{"2 hours out", 2 * time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession(t)
			if err := s.SetCredentials("tok", "refresh", time.Now().Add(tt.until), nil); err != nil {
				t.Fatalf("SetCredentials failed: %v", err)
			}
			if got := s.IsTokenExpiringSoon(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestIsTokenExpiringSoon_NoExpiry(t *testing.T) {
	s, store := newTestSession(t)
	store.Set(KeyAccessToken, "tok")

	if s.IsTokenExpiringSoon() {
		t.Error("expected false when no expiry is stored")
	}
}

func TestHasToken_IgnoresExpiry(t *testing.T) {
	s, _ := newTestSession(t)
	if err := s.SetCredentials("tok", "refresh", time.Now().Add(-time.Hour), nil); err != nil {
		t.Fatalf("SetCredentials failed: %v", err)
	}

	// The presence check deliberately skips the expiry-aware path.
	if !s.HasToken() {
		t.Error("expected HasToken true for present-but-expired token")
	}
}

func TestRefreshToken_Missing(t *testing.T) {
	s, _ := newTestSession(t)
	if _, err := s.RefreshToken(); !errors.Is(err, ErrNoRefreshToken) {
		t.Errorf("expected ErrNoRefreshToken, got %v", err)
	}
}

func TestStoredUser_RoundTrip(t *testing.T) {
	s, _ := newTestSession(t)
	want := &domain.User{ID: "u1", Username: "ops", Role: domain.RoleAdmin}

	if err := s.SetCredentials("tok", "refresh", time.Now().Add(time.Hour), want); err != nil {
		t.Fatalf("SetCredentials failed: %v", err)
	}

	got := s.StoredUser()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("user mismatch (-want +got):\n%s", diff)
	}
}

func TestStoredUser_UnparsableValueIsNil(t *testing.T) {
	s, store := newTestSession(t)
	store.Set(KeyUserInfo, "{broken")

	if user := s.StoredUser(); user != nil {
		t.Errorf("expected nil for unparsable user, got %+v", user)
	}
}

func TestSetAccessToken_PreservesRefreshToken(t *testing.T) {
	s, _ := newTestSession(t)
	if err := s.SetCredentials("old", "refresh", time.Now().Add(time.Hour), nil); err != nil {
		t.Fatalf("SetCredentials failed: %v", err)
	}

	newExpiry := time.Now().Add(24 * time.Hour)
	if err := s.SetAccessToken("new", newExpiry); err != nil {
		t.Fatalf("SetAccessToken failed: %v", err)
	}

	token, ok := s.AccessToken()
	if !ok || token != "new" {
		t.Errorf("expected new token, got %q (ok=%v)", token, ok)
	}
	if _, err := s.RefreshToken(); err != nil {
		t.Errorf("expected refresh token preserved, got %v", err)
	}
}
