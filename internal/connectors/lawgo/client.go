package lawgo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/custodia-labs/lawdata/internal/core/domain"
	"github.com/custodia-labs/lawdata/internal/core/ports/driven"
	"github.com/custodia-labs/lawdata/internal/logger"
	"github.com/custodia-labs/lawdata/internal/normalisers/jsonfield"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// MaxBodySize bounds how much of a response is read.
	MaxBodySize = 32 << 20

	listPath    = "/lawSearch.do"
	contentPath = "/lawService.do"
)

// API targets.
const (
	TargetStatute          = "law"
	TargetEffectiveStatute = "eflaw"
	TargetArticleHistory   = "lsJoHstInf"
	TargetPrecedent        = "prec"
)

// Client calls the open API.
type Client struct {
	cfg         Config
	http        driven.HTTPDoer
	rateLimiter *RateLimiter
}

// Ensure Client implements the source ports.
var (
	_ driven.StatuteSource   = (*Client)(nil)
	_ driven.PrecedentSource = (*Client)(nil)
)

// NewClient creates an API client. doer is normally the shared retrying
// client; a plain client with DefaultTimeout is used when it is nil.
func NewClient(cfg Config, doer driven.HTTPDoer) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if doer == nil {
		doer = &http.Client{Timeout: DefaultTimeout}
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		cfg:         cfg,
		http:        doer,
		rateLimiter: NewRateLimiter(cfg.RateLimit, cfg.RateBurst),
	}, nil
}

// get calls one endpoint and decodes the body. The raw payload is returned
// whenever a response was received. A body that does not decode to an
// object yields a nil object and no error.
func (c *Client) get(ctx context.Context, path, target string, params url.Values) (*domain.RawPayload, map[string]any, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, nil, fmt.Errorf("rate limit wait: %w", err)
	}

	params.Set("OC", c.cfg.OC)
	params.Set("target", target)
	params.Set("type", "JSON")
	endpoint := c.cfg.BaseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	logger.Debug("lawgo: GET %s target=%s", path, target)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return nil, nil, fmt.Errorf("read body: %w", err)
	}

	raw := &domain.RawPayload{
		URL:         redact(endpoint),
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        string(body),
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return raw, nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			URL:        raw.URL,
		}
	}

	obj, err := jsonfield.DecodeObject(body)
	if err != nil {
		logger.Warn("lawgo: %s target=%s: %v", path, target, err)
		return raw, nil, nil
	}
	return raw, obj, nil
}

// redact hides the user key in a URL kept for diagnostics.
func redact(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil {
		return endpoint
	}
	q := u.Query()
	if q.Has("OC") {
		q.Set("OC", "***")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
