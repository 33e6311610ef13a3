package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"sassmon/internal/domain"
	"sassmon/internal/session"
)

type recordingNotifier struct {
	notices []string
}

func (n *recordingNotifier) Notify(message string) {
	n.notices = append(n.notices, message)
}

type recordingNavigator struct {
	onLogin     bool
	navigations int
}

func (n *recordingNavigator) OnLoginView() bool { return n.onLogin }
func (n *recordingNavigator) NavigateToLogin() { n.navigations++ }

type fixture struct {
	client    *Client
	sess      *session.Session
	store     *session.MockStore
	notifier  *recordingNotifier
	navigator *recordingNavigator
}

func newFixture(t *testing.T, handler http.Handler) (*fixture, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := session.NewMockStore()
	sess := session.New(store, nil)
	notifier := &recordingNotifier{}
	navigator := &recordingNavigator{}

	client := New(server.URL, sess,
		WithNotifier(notifier),
		WithNavigator(navigator),
	)

	return &fixture{
		client:    client,
		sess:      sess,
		store:     store,
		notifier:  notifier,
		navigator: navigator,
	}, server
}

func authd(t *testing.T, f *fixture) {
	t.Helper()
	if err := f.sess.SetCredentials("valid-token", "refresh-token", time.Now().Add(time.Hour), nil); err != nil {
		t.Fatalf("SetCredentials failed: %v", err)
	}
}

func TestDo_AttachesBearerWhenTokenValid(t *testing.T) {
	var gotAuth string
	f, _ := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	authd(t, f)

	var out struct{}
	if err := f.client.Get(context.Background(), "/ping", nil, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer valid-token" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}
}

func TestDo_NoBearerWhenTokenExpired(t *testing.T) {
	var gotAuth string
	f, _ := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	if err := f.sess.SetCredentials("stale", "refresh", time.Now().Add(-time.Minute), nil); err != nil {
		t.Fatalf("SetCredentials failed: %v", err)
	}

	var out struct{}
	if err := f.client.Get(context.Background(), "/ping", nil, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("expected unauthenticated request, got %q", gotAuth)
	}
}

func TestDo_Unauthorized_PurgesAndNavigatesOnce(t *testing.T) {
	f, _ := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	authd(t, f)

	err := f.client.Get(context.Background(), "/orgs", nil, nil)
	apiErr, ok := AsError(err)
	if !ok || apiErr.Kind != KindAuth {
		t.Fatalf("expected KindAuth, got %v", err)
	}

	for _, key := range []string{session.KeyAccessToken, session.KeyRefreshToken, session.KeyExpiresAt, session.KeyUserInfo} {
		if _, getErr := f.store.Get(key); !errors.Is(getErr, session.ErrNotFound) {
			t.Errorf("expected %s purged, got err=%v", key, getErr)
		}
	}
	if f.navigator.navigations != 1 {
		t.Errorf("expected exactly 1 navigation, got %d", f.navigator.navigations)
	}
	if len(f.notifier.notices) != 1 || f.notifier.notices[0] != noticeSessionExpired {
		t.Errorf("expected one session-expired notice, got %v", f.notifier.notices)
	}
}

func TestDo_Unauthorized_NoNavigationWhenAlreadyOnLogin(t *testing.T) {
	f, _ := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	f.navigator.onLogin = true

	if err := f.client.Get(context.Background(), "/orgs", nil, nil); err == nil {
		t.Fatal("expected error")
	}
	if f.navigator.navigations != 0 {
		t.Errorf("expected no navigation from login view, got %d", f.navigator.navigations)
	}
}

func TestDo_StatusTaxonomy(t *testing.T) {
	tests := []struct {
		status     int
		wantKind   Kind
		wantNotice string
	}{
		{http.StatusForbidden, KindForbidden, noticeForbidden},
		{http.StatusNotFound, KindNotFound, noticeNotFound},
		{http.StatusTooManyRequests, KindRateLimited, noticeRateLimited},
		{http.StatusInternalServerError, KindServer, noticeServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			f, _ := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			authd(t, f)

			err := f.client.Get(context.Background(), "/x", nil, nil)
			apiErr, ok := AsError(err)
			if !ok {
				t.Fatalf("expected *Error, got %v", err)
			}
			if apiErr.Kind != tt.wantKind {
				t.Errorf("expected kind %v, got %v", tt.wantKind, apiErr.Kind)
			}
			if len(f.notifier.notices) != 1 || f.notifier.notices[0] != tt.wantNotice {
				t.Errorf("expected notice %q, got %v", tt.wantNotice, f.notifier.notices)
			}
			// Token survives everything except 401.
			if !f.sess.HasToken() {
				t.Error("expected credentials untouched")
			}
		})
	}
}

func TestDo_OtherStatusUsesServerMessage(t *testing.T) {
	f, _ := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"tier_name already exists"}`))
	}))

	err := f.client.Post(context.Background(), "/plans", map[string]string{"tier_name": "pro"}, nil)
	apiErr, ok := AsError(err)
	if !ok || apiErr.Kind != KindAPI {
		t.Fatalf("expected KindAPI, got %v", err)
	}
	if apiErr.Message != "tier_name already exists" {
		t.Errorf("expected verbatim server message, got %q", apiErr.Message)
	}
	if len(f.notifier.notices) != 1 || f.notifier.notices[0] != "tier_name already exists" {
		t.Errorf("expected server message notice, got %v", f.notifier.notices)
	}
}

func TestDo_NetworkFailure(t *testing.T) {
	f, server := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	err := f.client.Get(context.Background(), "/x", nil, nil)
	apiErr, ok := AsError(err)
	if !ok || apiErr.Kind != KindNetwork {
		t.Fatalf("expected KindNetwork, got %v", err)
	}
	if len(f.notifier.notices) != 1 || f.notifier.notices[0] != noticeNetwork {
		t.Errorf("expected network notice, got %v", f.notifier.notices)
	}
}

func TestDo_CanceledIsDistinguishable(t *testing.T) {
	started := make(chan struct{})
	f, _ := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	err := f.client.Get(ctx, "/slow", nil, nil)
	if !IsCanceled(err) {
		t.Fatalf("expected cancellation to be distinguishable, got %v", err)
	}
	if len(f.notifier.notices) != 0 {
		t.Errorf("expected no notice for deliberate cancellation, got %v", f.notifier.notices)
	}
}

func TestDo_ConfigError(t *testing.T) {
	f, _ := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	// A channel cannot be JSON-encoded: request construction fails
	// before anything is dispatched.
	err := f.client.Post(context.Background(), "/x", make(chan int), nil)
	apiErr, ok := AsError(err)
	if !ok || apiErr.Kind != KindConfig {
		t.Fatalf("expected KindConfig, got %v", err)
	}
	if len(f.notifier.notices) != 1 || f.notifier.notices[0] != noticeConfig {
		t.Errorf("expected config notice, got %v", f.notifier.notices)
	}
}

func TestRefreshToken_Success(t *testing.T) {
	var gotHeader string
	f, _ := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("Refresh-Token")
		w.Write([]byte(`{"token":"new-token"}`))
	}))
	basis := time.Now().Add(time.Hour).Truncate(time.Second)
	if err := f.sess.SetCredentials("old", "refresh-token", basis, nil); err != nil {
		t.Fatalf("SetCredentials failed: %v", err)
	}

	token, err := f.client.RefreshToken(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "new-token" {
		t.Errorf("expected new-token, got %q", token)
	}
	if gotHeader != "refresh-token" {
		t.Errorf("expected refresh token conveyed via header, got %q", gotHeader)
	}

	// Expiry extends from the previous basis, not from now.
	expiresAt, ok := f.sess.ExpiresAt()
	if !ok {
		t.Fatal("expected expiry stored")
	}
	if want := basis.Add(24 * time.Hour); !expiresAt.Equal(want) {
		t.Errorf("expected expiry %v, got %v", want, expiresAt)
	}
}

func TestRefreshToken_NoRefreshToken(t *testing.T) {
	f, _ := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	_, err := f.client.RefreshToken(context.Background())
	if !errors.Is(err, session.ErrNoRefreshToken) {
		t.Fatalf("expected ErrNoRefreshToken, got %v", err)
	}
}

func TestRefreshToken_FailurePurgesSession(t *testing.T) {
	f, _ := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	authd(t, f)

	if _, err := f.client.RefreshToken(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if f.sess.HasToken() {
		t.Error("expected credentials purged after failed refresh")
	}
}

func TestInitializeAuth_UnauthenticatedSkipsNetwork(t *testing.T) {
	var calls int32
	f, _ := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))

	user, err := f.client.InitializeAuth(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user != nil {
		t.Errorf("expected nil user, got %+v", user)
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Errorf("expected no network call, got %d", calls)
	}
}

func TestInitializeAuth_ValidSessionCachesUser(t *testing.T) {
	f, _ := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/profile" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"id":"u1","username":"ops","role":"admin"}`))
	}))
	authd(t, f)

	user, err := f.client.InitializeAuth(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &domain.User{ID: "u1", Username: "ops", Role: domain.RoleAdmin}
	if diff := cmp.Diff(want, user); diff != "" {
		t.Errorf("user mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, f.sess.StoredUser()); diff != "" {
		t.Errorf("cached user mismatch (-want +got):\n%s", diff)
	}
}

func TestInitializeAuth_ServerRejectionPurges(t *testing.T) {
	f, _ := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	authd(t, f)

	user, err := f.client.InitializeAuth(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user != nil {
		t.Errorf("expected nil user, got %+v", user)
	}
	if f.sess.HasToken() {
		t.Error("expected credentials purged")
	}
}
