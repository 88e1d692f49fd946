package comwel

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/custodia-labs/lawdata/internal/core/domain"
	"github.com/custodia-labs/lawdata/internal/core/ports/driven"
	"github.com/custodia-labs/lawdata/internal/logger"
	casepage "github.com/custodia-labs/lawdata/internal/normalisers/comwel"
	"github.com/custodia-labs/lawdata/internal/normalisers/html"
)

const (
	// DefaultPageURL is the case page.
	DefaultPageURL = "https://sanjaecase.comwel.or.kr/service/dataView"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	maxBodySize = 8 << 20
)

// Config holds the connection settings for the case site.
type Config struct {
	PageURL   string
	UserAgent string
}

// DefaultConfig returns the public endpoint.
func DefaultConfig() Config {
	return Config{PageURL: DefaultPageURL, UserAgent: "Mozilla/5.0"}
}

// Client reads case pages.
type Client struct {
	cfg  Config
	http driven.HTTPDoer
}

// Ensure Client implements the port.
var _ driven.PrecedentSupplementer = (*Client)(nil)

// NewClient creates a client. A plain client with DefaultTimeout is used
// when doer is nil.
func NewClient(cfg Config, doer driven.HTTPDoer) *Client {
	if cfg.PageURL == "" {
		cfg.PageURL = DefaultPageURL
	}
	if doer == nil {
		doer = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{cfg: cfg, http: doer}
}

// Metadata fetches the label/value pairs of a case page.
func (c *Client) Metadata(ctx context.Context, caseNumber, courtName string) (map[string]string, error) {
	endpoint := c.cfg.PageURL + "?" + url.Values{
		"id": {casepage.PageID(caseNumber, courtName)},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get case page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: case page answered %d", domain.ErrUnexpectedStatus, resp.StatusCode)
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, maxBodySize), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("parse case page: %w", err)
	}
	return casepage.ParseMetadata(doc), nil
}

// Supplement fills the decision date of p from its case page. Records
// without a case number or court name, or with a usable date, are left
// alone without a request.
func (c *Client) Supplement(ctx context.Context, p *domain.Precedent) (bool, error) {
	if p == nil || p.CaseNumber == nil || p.CourtName == nil {
		return false, nil
	}
	if !casepage.NeedsDecisionDate(p) {
		return false, nil
	}

	meta, err := c.Metadata(ctx, *p.CaseNumber, *p.CourtName)
	if err != nil {
		return false, err
	}
	logger.Debug("comwel: %d metadata fields for %s", len(meta), *p.CaseNumber)
	return casepage.Merge(p, meta), nil
}
