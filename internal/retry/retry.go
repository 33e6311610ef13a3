// Package retry provides a bounded-retry wrapper with exponential
// backoff. It is an opt-in utility: nothing in the transport retries by
// itself, so call sites keep control over which operations are safe to
// repeat.
package retry

import (
	"context"
	"errors"
	"net"
	"time"
)

// Predicate determines whether an error should be retried. A nil
// predicate retries every failure.
type Predicate func(error) bool

// Config controls retry behavior. A request is attempted MaxRetries+1
// times in total; the delay before re-attempt i (counting from zero)
// is BaseDelay * 2^i, capped at MaxDelay when that is set.
type Config struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

// DefaultConfig returns the default retry configuration.
func DefaultConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  time.Second,
		MaxDelay:   30 * time.Second,
	}
}

// Do executes fn with retries using the provided config, surfacing the
// last observed failure once attempts are exhausted.
func Do(ctx context.Context, config Config, shouldRetry Predicate, fn func() error) error {
	if config.MaxRetries < 0 {
		config.MaxRetries = 0
	}

	var err error
	for attempt := 0; attempt <= config.MaxRetries; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		err = fn()
		if err == nil {
			return nil
		}
		if attempt == config.MaxRetries {
			return err
		}
		if shouldRetry != nil && !shouldRetry(err) {
			return err
		}

		if !sleep(ctx, backoffDelay(config.BaseDelay, config.MaxDelay, attempt)) {
			return ctx.Err()
		}
	}

	return err
}

// DoValue is Do for functions that produce a value.
func DoValue[T any](ctx context.Context, config Config, shouldRetry Predicate, fn func() (T, error)) (T, error) {
	var result T
	err := Do(ctx, config, shouldRetry, func() error {
		var fnErr error
		result, fnErr = fn()
		return fnErr
	})
	return result, err
}

// IsRetryable reports whether an error is likely transient.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}

	return false
}

func backoffDelay(base, max time.Duration, attempt int) time.Duration {
	if base <= 0 {
		return 0
	}

	delay := base << attempt
	if max > 0 && delay > max {
		delay = max
	}
	return delay
}

func sleep(ctx context.Context, delay time.Duration) bool {
	if delay <= 0 {
		return true
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
