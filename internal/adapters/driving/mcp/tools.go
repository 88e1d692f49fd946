package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/lawdata/internal/core/domain"
)

// defaultChunkDays splits date-bounded precedent searches.
const defaultChunkDays = 365

// SearchStatutesInput is the input schema for the search_statutes tool.
type SearchStatutesInput struct {
	Query    string `json:"query" jsonschema:"statute name or text to search for"`
	FullText bool   `json:"full_text,omitempty" jsonschema:"match the full text instead of names only"`
	Page     int    `json:"page,omitempty" jsonschema:"result page, starting at 1"`
	Display  int    `json:"display,omitempty" jsonschema:"results per page (default 20, max 100)"`
}

// StatuteSearchOutput is the output schema for the search_statutes tool.
type StatuteSearchOutput struct {
	Items       []domain.StatuteSummary `json:"items"`
	TotalCount  int                     `json:"total_count"`
	Page        int                     `json:"page"`
	HasNextPage bool                    `json:"has_next_page"`
}

// GetStatuteInput is the input schema for the get_statute tool.
type GetStatuteInput struct {
	ID            int    `json:"id,omitempty" jsonschema:"statute ID (법령ID)"`
	MST           int64  `json:"mst,omitempty" jsonschema:"statute sequence number (법령일련번호)"`
	Article       int    `json:"article,omitempty" jsonschema:"article key: number*100+branch, e.g. 75000 for 제750조"`
	EffectiveDate int    `json:"effective_date,omitempty" jsonschema:"YYYYMMDD; return the text in force on this date"`
	Language      string `json:"language,omitempty" jsonschema:"KO (default) or ORI"`
}

// StatuteOutput is the output schema for the get_statute tool.
type StatuteOutput struct {
	Found   bool            `json:"found"`
	Statute *domain.Statute `json:"statute,omitempty"`
}

// SearchPrecedentsInput is the input schema for the search_precedents tool.
type SearchPrecedentsInput struct {
	Query      string `json:"query" jsonschema:"case name or text to search for"`
	Court      string `json:"court,omitempty" jsonschema:"court name"`
	CaseNumber string `json:"case_number,omitempty" jsonschema:"case number, e.g. 2010다106702"`
	From       string `json:"from,omitempty" jsonschema:"first decision date YYYYMMDD; requires to"`
	To         string `json:"to,omitempty" jsonschema:"last decision date YYYYMMDD; requires from"`
	Page       int    `json:"page,omitempty" jsonschema:"result page, starting at 1"`
	Display    int    `json:"display,omitempty" jsonschema:"results per page (default 20, max 100)"`
}

// PrecedentSearchOutput is the output schema for the search_precedents tool.
type PrecedentSearchOutput struct {
	Items       []domain.Precedent `json:"items"`
	TotalCount  int                `json:"total_count"`
	Page        int                `json:"page"`
	HasNextPage bool               `json:"has_next_page"`
}

// GetPrecedentInput is the input schema for the get_precedent tool.
type GetPrecedentInput struct {
	ID             int    `json:"id" jsonschema:"precedent serial number (판례일련번호)"`
	Name           string `json:"name,omitempty" jsonschema:"case name"`
	DataSource     string `json:"data_source,omitempty" jsonschema:"data source from a search hit, e.g. 근로복지공단"`
	SkipSupplement bool   `json:"skip_supplement,omitempty" jsonschema:"do not consult the workers' compensation case page"`
}

// PrecedentOutput is the output schema for the get_precedent tool.
type PrecedentOutput struct {
	TraceID      string            `json:"trace_id"`
	SourceSystem string            `json:"source_system"`
	Attempts     []string          `json:"attempts"`
	Supplemented bool              `json:"supplemented"`
	Precedent    *domain.Precedent `json:"precedent,omitempty"`
}

// ParseCitationsInput is the input schema for the parse_citations tool.
type ParseCitationsInput struct {
	Kind          string `json:"kind" jsonschema:"article or precedent"`
	Text          string `json:"text" jsonschema:"citation list as printed in a decision"`
	ReferenceDate int    `json:"reference_date,omitempty" jsonschema:"YYYYMMDD attached to article references"`
}

// CitationsOutput is the output schema for the parse_citations tool.
type CitationsOutput struct {
	Articles   []domain.ArticleReference   `json:"articles,omitempty"`
	Precedents []domain.PrecedentReference `json:"precedents,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_statutes",
		Description: "Search Korean statutes by name or text",
	}, s.handleSearchStatutes)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_statute",
		Description: "Fetch a statute's articles, addenda and appendices",
	}, s.handleGetStatute)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_precedents",
		Description: "Search court precedents",
	}, s.handleSearchPrecedents)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_precedent",
		Description: "Fetch a precedent, falling back to the printable page and the tax-law system",
	}, s.handleGetPrecedent)

	if s.ports.Citation != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "parse_citations",
			Description: "Split a reference list into structured article or precedent citations",
		}, s.handleParseCitations)
	}
}

func (s *Server) handleSearchStatutes(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchStatutesInput,
) (*mcp.CallToolResult, StatuteSearchOutput, error) {
	q := domain.StatuteQuery{
		Paging: domain.Paging{Page: input.Page, Display: input.Display},
		Query:  input.Query,
	}
	if input.FullText {
		q.Scope = domain.SearchBody
	}

	result, err := s.ports.Statute.Search(ctx, q)
	if err != nil {
		return nil, StatuteSearchOutput{}, err
	}
	return nil, StatuteSearchOutput{
		Items:       result.Items,
		TotalCount:  result.TotalCount,
		Page:        result.Page,
		HasNextPage: result.HasNextPage(),
	}, nil
}

func (s *Server) handleGetStatute(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetStatuteInput,
) (*mcp.CallToolResult, StatuteOutput, error) {
	lang := domain.LanguageKorean
	if input.Language != "" {
		lang = domain.Language(strings.ToUpper(input.Language))
	}
	req := domain.StatuteRequest{
		ID:       input.ID,
		MST:      input.MST,
		Article:  input.Article,
		Language: lang,
	}

	result, err := s.ports.Statute.Get(ctx, req, input.EffectiveDate)
	if err != nil {
		return nil, StatuteOutput{}, err
	}
	return nil, StatuteOutput{Found: !result.IsEmpty(), Statute: result.Content}, nil
}

func (s *Server) handleSearchPrecedents(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchPrecedentsInput,
) (*mcp.CallToolResult, PrecedentSearchOutput, error) {
	q := domain.PrecedentQuery{
		Paging:     domain.Paging{Page: input.Page, Display: input.Display},
		Query:      input.Query,
		Court:      input.Court,
		CaseNumber: input.CaseNumber,
	}

	var (
		result *domain.ListResult[domain.Precedent]
		err    error
	)
	switch {
	case input.From != "" && input.To != "":
		result, err = s.ports.Precedent.SearchByDateRange(ctx, q, input.From, input.To, defaultChunkDays)
	case input.From != "" || input.To != "":
		err = fmt.Errorf("%w: from and to must be given together", domain.ErrInvalidInput)
	default:
		result, err = s.ports.Precedent.Search(ctx, q)
	}
	if err != nil {
		return nil, PrecedentSearchOutput{}, err
	}
	return nil, PrecedentSearchOutput{
		Items:       result.Items,
		TotalCount:  result.TotalCount,
		Page:        result.Page,
		HasNextPage: result.HasNextPage(),
	}, nil
}

func (s *Server) handleGetPrecedent(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetPrecedentInput,
) (*mcp.CallToolResult, PrecedentOutput, error) {
	if input.ID <= 0 {
		return nil, PrecedentOutput{}, fmt.Errorf("%w: precedent id required", domain.ErrInvalidInput)
	}

	resolved := s.ports.Precedent.Resolve(ctx, input.ID, domain.ResolveOptions{
		Name:           input.Name,
		DataSource:     input.DataSource,
		SkipSupplement: input.SkipSupplement,
	})
	return nil, precedentOutput(resolved), nil
}

func precedentOutput(r *domain.ResolvedContent) PrecedentOutput {
	attempts := make([]string, len(r.Attempts))
	for i, a := range r.Attempts {
		attempts[i] = a.String()
	}
	return PrecedentOutput{
		TraceID:      r.TraceID,
		SourceSystem: r.SourceSystem.String(),
		Attempts:     attempts,
		Supplemented: r.Supplemented,
		Precedent:    r.Record,
	}
}

func (s *Server) handleParseCitations(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ParseCitationsInput,
) (*mcp.CallToolResult, CitationsOutput, error) {
	switch strings.ToLower(input.Kind) {
	case "article", "articles":
		var date *int
		if input.ReferenceDate > 0 {
			date = &input.ReferenceDate
		}
		return nil, CitationsOutput{Articles: s.ports.Citation.ParseArticles(input.Text, date)}, nil
	case "precedent", "precedents":
		return nil, CitationsOutput{Precedents: s.ports.Citation.ParsePrecedents(input.Text)}, nil
	default:
		return nil, CitationsOutput{}, errors.New("kind must be article or precedent")
	}
}
