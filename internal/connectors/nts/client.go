package nts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/custodia-labs/lawdata/internal/core/domain"
	"github.com/custodia-labs/lawdata/internal/core/ports/driven"
	"github.com/custodia-labs/lawdata/internal/logger"
	"github.com/custodia-labs/lawdata/internal/normalisers/jsonfield"
	ntsdoc "github.com/custodia-labs/lawdata/internal/normalisers/nts"
)

const (
	// DefaultActionURL is the action endpoint of the tax-law system.
	DefaultActionURL = "https://taxlaw.nts.go.kr/action.do"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	maxBodySize = 32 << 20
)

// Config holds the connection settings for the tax-law system.
type Config struct {
	ActionURL string
	UserAgent string
}

// DefaultConfig returns the public endpoint.
func DefaultConfig() Config {
	return Config{ActionURL: DefaultActionURL, UserAgent: "Mozilla/5.0"}
}

// Client fetches decision documents.
type Client struct {
	cfg  Config
	http driven.HTTPDoer
}

// Ensure Client implements the port.
var _ driven.TaxLawSource = (*Client)(nil)

// NewClient creates a client. A plain client with DefaultTimeout is used
// when doer is nil.
func NewClient(cfg Config, doer driven.HTTPDoer) *Client {
	if cfg.ActionURL == "" {
		cfg.ActionURL = DefaultActionURL
	}
	if doer == nil {
		doer = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{cfg: cfg, http: doer}
}

type paramData struct {
	Document documentID `json:"dcmDVO"`
}

type documentID struct {
	ID string `json:"ntstDcmId"`
}

// GetDecision looks up one document by its ntstDcmId. Content is nil when
// the envelope could not be parsed; the reason is logged.
func (c *Client) GetDecision(ctx context.Context, id string) (*domain.ContentResult[domain.Precedent], error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: tax-law document id required", domain.ErrInvalidInput)
	}

	params, err := json.Marshal(paramData{Document: documentID{ID: id}})
	if err != nil {
		return nil, fmt.Errorf("encode paramData: %w", err)
	}
	form := url.Values{
		"actionId":  {ntsdoc.ActionID},
		"paramData": {string(params)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.ActionURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	logger.Debug("nts: POST %s ntstDcmId=%s", c.cfg.ActionURL, id)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get tax-law decision: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read tax-law decision: %w", err)
	}
	raw := &domain.RawPayload{
		URL:         c.cfg.ActionURL,
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        string(body),
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: tax-law system answered %d", domain.ErrUnexpectedStatus, resp.StatusCode)
	}

	envelope, err := jsonfield.DecodeObject(body)
	if err != nil {
		logger.Warn("nts: decode %s: %v", id, err)
		return &domain.ContentResult[domain.Precedent]{Raw: raw}, nil
	}
	record, err := ntsdoc.ParseResponse(envelope)
	if err != nil {
		logger.Warn("nts: parse %s: %v", id, err)
		return &domain.ContentResult[domain.Precedent]{Raw: raw}, nil
	}
	return &domain.ContentResult[domain.Precedent]{Raw: raw, Content: record}, nil
}
