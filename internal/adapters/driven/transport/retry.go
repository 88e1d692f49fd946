package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/custodia-labs/lawdata/internal/core/domain"
	"github.com/custodia-labs/lawdata/internal/logger"
)

const (
	// DefaultMaxRetries is the number of retries after the first attempt.
	DefaultMaxRetries = 3

	// DefaultRetryDelay is the base backoff delay.
	DefaultRetryDelay = time.Second

	// drainLimit bounds how much of a discarded body is read so the
	// connection can be reused.
	drainLimit = 64 << 10
)

// RetryTransport is an http.RoundTripper that retries 5xx responses,
// 429 responses and transport errors. Other statuses are returned as-is.
//
// The wait before the retry following attempt n (1-based) is
// BaseDelay×n, doubled when the attempt was answered with 429.
type RetryTransport struct {
	// Base performs single attempts. http.DefaultTransport when nil.
	Base http.RoundTripper

	// MaxRetries bounds the retries; a request is tried MaxRetries+1 times.
	MaxRetries int

	// BaseDelay is the backoff unit.
	BaseDelay time.Duration

	sleep func(ctx context.Context, d time.Duration) error
}

var _ http.RoundTripper = (*RetryTransport)(nil)

// NewRetryTransport wraps base with the retry policy.
func NewRetryTransport(base http.RoundTripper, maxRetries int, baseDelay time.Duration) *RetryTransport {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &RetryTransport{
		Base:       base,
		MaxRetries: maxRetries,
		BaseDelay:  baseDelay,
		sleep:      sleepContext,
	}
}

// RoundTrip sends req, retrying as described on RetryTransport.
//
// When every attempt fails the last response is closed and an error
// wrapping domain.ErrRetriesExhausted is returned. A cancelled request
// context ends the wait immediately with the context's error.
func (t *RetryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	attempts := t.MaxRetries + 1
	replay := replayable(req)
	if !replay {
		attempts = 1
	}

	var (
		lastErr    error
		lastStatus int
	)
	for attempt := 1; attempt <= attempts; attempt++ {
		try := req
		if attempt > 1 {
			var err error
			if try, err = rewind(req); err != nil {
				return nil, err
			}
		}

		resp, err := t.base().RoundTrip(try)
		if err == nil && !Retryable(resp.StatusCode) {
			return resp, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			discard(resp)
			return nil, ctxErr
		}
		if !replay && err == nil {
			return resp, nil
		}

		delay := t.BaseDelay * time.Duration(attempt)
		if err != nil {
			lastErr, lastStatus = err, 0
			logger.Debug("%s %s: attempt %d/%d failed: %v", req.Method, req.URL.Redacted(), attempt, attempts, err)
		} else {
			lastErr, lastStatus = nil, resp.StatusCode
			if resp.StatusCode == http.StatusTooManyRequests {
				delay *= 2
			}
			discard(resp)
			logger.Debug("%s %s: attempt %d/%d returned %d", req.Method, req.URL.Redacted(), attempt, attempts, lastStatus)
		}

		if attempt == attempts {
			break
		}
		if err := t.wait(ctx, delay); err != nil {
			return nil, err
		}
	}

	if lastErr != nil {
		return nil, fmt.Errorf("%w: request failed after %d attempts: %w", domain.ErrRetriesExhausted, attempts, lastErr)
	}
	return nil, fmt.Errorf("%w: request failed after %d attempts with status %d", domain.ErrRetriesExhausted, attempts, lastStatus)
}

// Retryable reports whether a response status warrants another attempt.
func Retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

func (t *RetryTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

// CloseIdleConnections closes idle connections of the base transport.
func (t *RetryTransport) CloseIdleConnections() {
	type closeIdler interface{ CloseIdleConnections() }
	if c, ok := t.base().(closeIdler); ok {
		c.CloseIdleConnections()
	}
}

func (t *RetryTransport) wait(ctx context.Context, d time.Duration) error {
	if t.sleep != nil {
		return t.sleep(ctx, d)
	}
	return sleepContext(ctx, d)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// replayable reports whether the body can be sent again.
func replayable(req *http.Request) bool {
	return req.Body == nil || req.Body == http.NoBody || req.GetBody != nil
}

// rewind clones req with a fresh body.
func rewind(req *http.Request) (*http.Request, error) {
	clone := req.Clone(req.Context())
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, fmt.Errorf("rewind request body: %w", err)
		}
		clone.Body = body
	}
	return clone, nil
}

func discard(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	_, _ = io.CopyN(io.Discard, resp.Body, drainLimit)
	_ = resp.Body.Close()
}
