// Package api is the authenticated HTTP client for the admin backend.
// Every outbound call passes through it; it is the only place that
// knows about bearer tokens, the error taxonomy, and the redirect-on-
// expiry policy. Domain services wrap it with typed functions and never
// touch the transport directly.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"sassmon/internal/session"
)

// requestTimeout is the fixed per-request ceiling enforced by the
// transport itself, independent of any caller-supplied context.
const requestTimeout = 30 * time.Second

// Notifier surfaces a user-visible transient notice. Every failure
// produces exactly one.
type Notifier interface {
	Notify(message string)
}

// Navigator lets the interception layer force the UI back to the login
// view when the session is rejected.
type Navigator interface {
	OnLoginView() bool
	NavigateToLogin()
}

type nopNotifier struct{}

func (nopNotifier) Notify(string) {}

type nopNavigator struct{}

func (nopNavigator) OnLoginView() bool { return true }
func (nopNavigator) NavigateToLogin() {}

// Client is the intercepted transport. Construct one per process and
// share it across the domain services.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Session
	logger     *zap.Logger
	notifier   Notifier
	navigator  Navigator
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client. Intended for
// testing; the fixed timeout is preserved unless the replacement sets
// its own.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithNotifier sets the user-notice sink.
func WithNotifier(n Notifier) Option {
	return func(c *Client) { c.notifier = n }
}

// WithNavigator sets the login-redirect hook.
func WithNavigator(n Navigator) Option {
	return func(c *Client) { c.navigator = n }
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New returns a Client for the backend at baseURL, authenticating from
// sess.
func New(baseURL string, sess *session.Session, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
		session:    sess,
		logger:     zap.NewNop(),
		notifier:   nopNotifier{},
		navigator:  nopNavigator{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the credential state the client authenticates from.
func (c *Client) Session() *session.Session { return c.session }

// Get issues a GET request and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, nil, out)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, nil, out)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, nil, out)
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, nil, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil, out)
}

// do is the single intercepted transport every helper funnels through.
// It attaches the bearer credential when a valid token exists, applies
// the fixed timeout, classifies failures, performs the per-class side
// effects, and propagates the error to the caller.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, headers http.Header, out any) error {
	req, err := c.newRequest(ctx, method, path, query, body, headers)
	if err != nil {
		return c.failConfig(method, path, err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)

	if err != nil {
		return c.failTransport(method, path, elapsed, err)
	}
	defer resp.Body.Close()

	// Duration is observability only; nothing branches on it.
	c.logger.Debug("api request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", elapsed))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.failResponse(method, path, resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		decodeErr := &Error{Kind: KindAPI, Message: "unexpected response body", Err: err}
		c.logger.Error("api response decode failed",
			zap.String("method", method), zap.String("path", path), zap.Error(err))
		return decodeErr
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any, headers http.Header) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	// Attach the bearer credential only when a non-expired token is
	// stored; otherwise the request goes out unauthenticated and the
	// server decides the consequence.
	if token, ok := c.session.AccessToken(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

// failConfig handles client-side request construction failures.
func (c *Client) failConfig(method, path string, err error) error {
	c.logger.Error("api request misconfigured",
		zap.String("method", method), zap.String("path", path), zap.Error(err))
	c.notifier.Notify(noticeConfig)
	return &Error{Kind: KindConfig, Message: noticeConfig, Err: err}
}

// failTransport handles failures where no response was received:
// cancellation, timeout, or network unreachability.
func (c *Client) failTransport(method, path string, elapsed time.Duration, err error) error {
	c.logger.Error("api request failed",
		zap.String("method", method), zap.String("path", path),
		zap.Duration("elapsed", elapsed), zap.Error(err))

	if errors.Is(err, context.Canceled) {
		// Deliberate abandonment is distinguishable and not noticed.
		return &Error{Kind: KindCanceled, Message: "request canceled", Err: err}
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		c.notifier.Notify(noticeTimeout)
		return &Error{Kind: KindTimeout, Message: noticeTimeout, Err: err}
	}

	c.notifier.Notify(noticeNetwork)
	return &Error{Kind: KindNetwork, Message: noticeNetwork, Err: err}
}

// failResponse classifies a non-2xx response, performs the per-class
// side effects, and returns the typed error. It never swallows: every
// branch both notifies and propagates.
func (c *Client) failResponse(method, path string, resp *http.Response) error {
	var body errorBody
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	_ = json.Unmarshal(raw, &body)

	apiErr := &Error{StatusCode: resp.StatusCode, Message: body.text()}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		apiErr.Kind = KindAuth
		apiErr.Message = noticeSessionExpired
		// Unconditional: no retry, no distinction between token
		// absent and token rejected.
		c.session.Clear()
		if !c.navigator.OnLoginView() {
			c.navigator.NavigateToLogin()
		}
		c.notifier.Notify(noticeSessionExpired)

	case http.StatusForbidden:
		apiErr.Kind = KindForbidden
		apiErr.Message = noticeForbidden
		c.notifier.Notify(noticeForbidden)

	case http.StatusNotFound:
		apiErr.Kind = KindNotFound
		apiErr.Message = noticeNotFound
		c.notifier.Notify(noticeNotFound)

	case http.StatusTooManyRequests:
		apiErr.Kind = KindRateLimited
		apiErr.Message = noticeRateLimited
		c.notifier.Notify(noticeRateLimited)

	case http.StatusInternalServerError:
		apiErr.Kind = KindServer
		apiErr.Message = noticeServerError
		c.notifier.Notify(noticeServerError)

	default:
		apiErr.Kind = KindAPI
		if apiErr.Message == "" {
			apiErr.Message = noticeRequestFailed
		}
		c.notifier.Notify(apiErr.Message)
	}

	c.logger.Error("api request rejected",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.String("server_message", body.text()),
		zap.ByteString("body", raw))

	return apiErr
}
