package mcp

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/lawdata/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for lawdata resources.
	uriScheme = "lawdata://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Template for statute content by sequence number.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "statutes/{mst}",
		Name:        "statute",
		Description: "Current text of a statute, by sequence number (MST)",
		MIMEType:    "application/json",
	}, s.handleStatuteResource)

	// Template for precedent full text.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "precedents/{id}",
		Name:        "precedent",
		Description: "Full text of a precedent",
		MIMEType:    "text/plain",
	}, s.handlePrecedentResource)
}

// handleStatuteResource returns one statute as JSON.
func (s *Server) handleStatuteResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	mst := extractID(req.Params.URI, "statutes/")
	if mst <= 0 {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	result, err := s.ports.Statute.Get(ctx, domain.StatuteRequest{MST: int64(mst), Language: domain.LanguageKorean}, 0)
	if err != nil {
		return nil, fmt.Errorf("getting statute: %w", err)
	}
	if result.IsEmpty() {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	data, err := json.MarshalIndent(result.Content, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling statute: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handlePrecedentResource returns the text of one precedent.
func (s *Server) handlePrecedentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractID(req.Params.URI, "precedents/")
	if id <= 0 {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	resolved := s.ports.Precedent.Resolve(ctx, id, domain.ResolveOptions{})
	if !resolved.HasRecord() {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     precedentText(resolved.Record),
		}},
	}, nil
}

// precedentText renders the headline fields followed by the body.
func precedentText(p *domain.Precedent) string {
	var b strings.Builder
	for _, field := range []*string{p.CourtName, p.CaseNumber, p.CaseName} {
		if field != nil {
			b.WriteString(*field)
			b.WriteString("\n")
		}
	}
	if p.DecisionDate != nil {
		fmt.Fprintf(&b, "선고 %d\n", *p.DecisionDate)
	}
	for _, section := range []*string{p.Summary, p.DecisionSummary, p.Content} {
		if section != nil {
			b.WriteString("\n")
			b.WriteString(*section)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// extractID extracts the numeric id from a URI like lawdata://{kind}{id}.
// It returns 0 when the URI does not match.
func extractID(uri, kind string) int {
	prefix := uriScheme + kind
	if !strings.HasPrefix(uri, prefix) {
		return 0
	}

	id, err := strconv.Atoi(strings.TrimPrefix(uri, prefix))
	if err != nil {
		return 0
	}
	return id
}
