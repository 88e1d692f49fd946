package lawgo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/custodia-labs/lawdata/internal/adapters/driven/transport"
	"github.com/custodia-labs/lawdata/internal/core/domain"
	"github.com/custodia-labs/lawdata/internal/core/ports/driven"
	"github.com/custodia-labs/lawdata/internal/logger"
	"github.com/custodia-labs/lawdata/internal/normalisers/html"
	"github.com/custodia-labs/lawdata/internal/normalisers/precedent"
)

// DefaultPageURL is the printable decision page.
const DefaultPageURL = "https://www.law.go.kr/LSW/precInfoP.do"

// secondaryIDParam names the tax-law document id in a redirect Location.
const secondaryIDParam = "ntstDcmId"

// PageFetcher reads the printable decision page.
type PageFetcher struct {
	http      driven.HTTPDoer
	pageURL   string
	userAgent string
}

// Ensure PageFetcher implements the page port.
var _ driven.PrecedentPageSource = (*PageFetcher)(nil)

// NewPageFetcher creates a fetcher. doer must not follow redirects; see
// transport.WithoutRedirects. An empty pageURL selects DefaultPageURL.
func NewPageFetcher(doer driven.HTTPDoer, pageURL, userAgent string) *PageFetcher {
	if pageURL == "" {
		pageURL = DefaultPageURL
	}
	if doer == nil {
		doer = transport.WithoutRedirects(&http.Client{Timeout: DefaultTimeout})
	}
	return &PageFetcher{http: doer, pageURL: pageURL, userAgent: userAgent}
}

// FetchPrecedentPage fetches the page for a precedent id.
//
// A redirect is reported through FallbackPage.Location, with SecondaryID
// set when it points at the tax-law system. Any other response is parsed
// into FallbackPage.Record whatever its status; Raw.StatusCode keeps it.
func (f *PageFetcher) FetchPrecedentPage(ctx context.Context, id int) (*domain.FallbackPage, error) {
	endpoint := f.pageURL + "?" + url.Values{
		"precSeq": {strconv.Itoa(id)},
		"mode":    {"print"},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, wrapError(err, "fetch precedent page")
	}
	defer resp.Body.Close()

	raw := &domain.RawPayload{
		URL:         endpoint,
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
	}

	if transport.IsRedirect(resp.StatusCode) {
		location := resp.Header.Get("Location")
		logger.Debug("lawgo: precedent page %d redirected to %s", id, location)
		return &domain.FallbackPage{
			Raw:         raw,
			Location:    location,
			SecondaryID: SecondaryID(location),
		}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Debug("lawgo: precedent page %d answered %d, parsing body anyway", id, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return nil, wrapError(err, "read precedent page")
	}
	text, err := html.Decode(body, raw.ContentType)
	if err != nil {
		return nil, wrapError(err, "decode precedent page")
	}
	raw.Body = text

	doc, err := html.ParseFragment(text)
	if err != nil {
		return nil, wrapError(err, "parse precedent page")
	}
	return &domain.FallbackPage{Raw: raw, Record: precedent.ParsePage(doc)}, nil
}

// SecondaryID extracts the tax-law document id from a redirect Location.
// It returns "" when the location carries none.
func SecondaryID(location string) string {
	if !strings.Contains(location, secondaryIDParam+"=") {
		return ""
	}
	if u, err := url.Parse(location); err == nil {
		if id := u.Query().Get(secondaryIDParam); id != "" {
			return id
		}
	}

	// Unparseable locations still carry the id after the marker.
	rest := location[strings.Index(location, secondaryIDParam+"=")+len(secondaryIDParam)+1:]
	if i := strings.IndexAny(rest, "&#"); i >= 0 {
		rest = rest[:i]
	}
	return rest
}
