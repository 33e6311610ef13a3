package api

import (
	"context"
	"errors"
	"fmt"
)

// Kind classifies a failed request so callers can branch on the
// category without parsing status codes themselves.
type Kind int

const (
	// KindAPI is any non-2xx response without a more specific class.
	KindAPI Kind = iota

	// KindAuth is a 401: the session was rejected server-side.
	KindAuth

	// KindForbidden is a 403: authenticated but not permitted.
	KindForbidden

	// KindNotFound is a 404.
	KindNotFound

	// KindRateLimited is a 429. The client never auto-retries these;
	// the caller decides.
	KindRateLimited

	// KindServer is a 500.
	KindServer

	// KindNetwork means no response was received at all.
	KindNetwork

	// KindTimeout means the fixed per-request ceiling elapsed.
	KindTimeout

	// KindConfig is a client-side request construction failure.
	KindConfig

	// KindCanceled means the caller deliberately abandoned the
	// request; it is not a failure in the network or server sense.
	KindCanceled
)

// Error is the uniform failure surfaced by every request. The
// interception layer performs its side effects (purge, redirect,
// notice) and then propagates one of these, so call sites can still
// add their own handling on top.
type Error struct {
	Kind       Kind
	StatusCode int

	// Message is the user-facing notice text; for unclassified API
	// failures it carries the server-provided error field verbatim.
	Message string

	Err error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("api: %s: %v", e.Message, e.Err)
	}
	return "api: " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// AsError extracts the client's typed error from err, if present.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

// IsCanceled reports whether err represents a deliberately abandoned
// request rather than a network or server failure.
func IsCanceled(err error) bool {
	if errors.Is(err, context.Canceled) {
		return true
	}
	if apiErr, ok := AsError(err); ok {
		return apiErr.Kind == KindCanceled
	}
	return false
}

// User-facing notice text per failure class.
const (
	noticeSessionExpired = "Session expired, please log in again"
	noticeForbidden      = "You do not have permission to access this resource"
	noticeNotFound       = "The requested resource does not exist"
	noticeRateLimited    = "Too many requests, please try again later"
	noticeServerError    = "Server error, please try again later"
	noticeRequestFailed  = "Request failed"
	noticeNetwork        = "Network connection failed, check your connection"
	noticeTimeout        = "Request timed out"
	noticeConfig         = "Request configuration error"
)

// errorBody is the standard error payload the backend returns.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// text returns the server-provided message, preferring the error field.
func (b errorBody) text() string {
	if b.Error != "" {
		return b.Error
	}
	return b.Message
}
