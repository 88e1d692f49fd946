package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"
)

// ErrReadTimeout is returned when a single read of a response stalls
// longer than the configured read timeout.
var ErrReadTimeout = errors.New("read timeout")

// ReadTimeoutTransport bounds every read of an exchange: waiting for the
// response headers and each Read of the body must finish within Timeout.
// The time a caller spends between body reads does not count.
type ReadTimeoutTransport struct {
	// Base performs the exchange. http.DefaultTransport when nil.
	Base http.RoundTripper

	// Timeout bounds one read. Zero disables the bound.
	Timeout time.Duration
}

var _ http.RoundTripper = (*ReadTimeoutTransport)(nil)

// RoundTrip sends req and wraps the response body with the read bound.
func (t *ReadTimeoutTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	if t.Timeout <= 0 {
		return base.RoundTrip(req)
	}

	ctx, cancel := context.WithCancel(req.Context())
	body := &timedBody{timeout: t.Timeout, cancel: cancel}
	body.timer = time.AfterFunc(t.Timeout, body.expire)

	resp, err := base.RoundTrip(req.WithContext(ctx))
	if err != nil {
		body.timer.Stop()
		cancel()
		if body.expired.Load() && req.Context().Err() == nil {
			return nil, fmt.Errorf("%w: no response within %s", ErrReadTimeout, t.Timeout)
		}
		return nil, err
	}
	if !body.timer.Stop() {
		cancel()
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: no response within %s", ErrReadTimeout, t.Timeout)
	}

	body.rc = resp.Body
	resp.Body = body
	return resp, nil
}

// CloseIdleConnections closes idle connections of the base transport.
func (t *ReadTimeoutTransport) CloseIdleConnections() {
	type closeIdler interface{ CloseIdleConnections() }
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	if c, ok := base.(closeIdler); ok {
		c.CloseIdleConnections()
	}
}

// timedBody arms the timer around each Read. When it fires the
// exchange's context is cancelled, which unblocks the pending Read.
type timedBody struct {
	rc      io.ReadCloser
	timeout time.Duration
	timer   *time.Timer
	cancel  context.CancelFunc
	expired atomic.Bool
}

func (b *timedBody) expire() {
	b.expired.Store(true)
	b.cancel()
}

func (b *timedBody) Read(p []byte) (int, error) {
	if b.expired.Load() {
		return 0, fmt.Errorf("%w after %s", ErrReadTimeout, b.timeout)
	}
	b.timer.Reset(b.timeout)
	n, err := b.rc.Read(p)
	b.timer.Stop()
	if err != nil && !errors.Is(err, io.EOF) && b.expired.Load() {
		return n, fmt.Errorf("%w after %s", ErrReadTimeout, b.timeout)
	}
	return n, err
}

func (b *timedBody) Close() error {
	b.timer.Stop()
	b.cancel()
	return b.rc.Close()
}
