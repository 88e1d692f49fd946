package transport

import (
	"net"
	"net/http"
	"time"

	"github.com/custodia-labs/lawdata/internal/core/domain"
)

// NewHTTPClient builds the shared client: a bounded idle pool with idle
// expiry and a connect timeout, a ReadTimeoutTransport bounding each read,
// and a RetryTransport on top.
// Redirects are followed; see WithoutRedirects.
func NewHTTPClient(s domain.HTTPSettings) *http.Client {
	pooled := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   s.ConnectTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        s.MaxConnections,
		MaxIdleConnsPerHost: s.MaxConnections,
		IdleConnTimeout:     s.KeepAlive,
		TLSHandshakeTimeout: s.ConnectTimeout,
		ForceAttemptHTTP2:   true,
	}

	bounded := &ReadTimeoutTransport{Base: pooled, Timeout: s.ReadTimeout}
	return &http.Client{
		Transport: NewRetryTransport(bounded, s.MaxRetries, s.RetryDelay),
	}
}

// WithoutRedirects returns a client sharing c's transport that hands
// 3xx responses back to the caller instead of following them.
func WithoutRedirects(c *http.Client) *http.Client {
	clone := *c
	clone.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return &clone
}

// IsRedirect reports whether status is a redirect carrying a Location.
func IsRedirect(status int) bool {
	switch status {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		return true
	default:
		return false
	}
}
