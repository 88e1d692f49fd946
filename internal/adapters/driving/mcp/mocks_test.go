package mcp

import (
	"context"

	"github.com/custodia-labs/lawdata/internal/core/domain"
)

// mockStatuteService implements driving.StatuteService for testing.
type mockStatuteService struct {
	search        *domain.ListResult[domain.StatuteSummary]
	content       *domain.ContentResult[domain.Statute]
	err           error
	lastQuery     domain.StatuteQuery
	lastRequest   domain.StatuteRequest
	lastEffective int
}

func (m *mockStatuteService) Search(_ context.Context, q domain.StatuteQuery) (*domain.ListResult[domain.StatuteSummary], error) {
	m.lastQuery = q
	if m.err != nil {
		return nil, m.err
	}
	if m.search == nil {
		return &domain.ListResult[domain.StatuteSummary]{}, nil
	}
	return m.search, nil
}

func (m *mockStatuteService) Get(_ context.Context, req domain.StatuteRequest, effectiveDate int) (*domain.ContentResult[domain.Statute], error) {
	m.lastRequest = req
	m.lastEffective = effectiveDate
	if m.err != nil {
		return nil, m.err
	}
	if m.content == nil {
		return &domain.ContentResult[domain.Statute]{}, nil
	}
	return m.content, nil
}

func (m *mockStatuteService) History(_ context.Context, _ domain.ArticleHistoryRequest) (*domain.ListResult[domain.StatuteHistory], error) {
	return &domain.ListResult[domain.StatuteHistory]{}, m.err
}

// mockPrecedentService implements driving.PrecedentService for testing.
type mockPrecedentService struct {
	search     *domain.ListResult[domain.Precedent]
	resolved   *domain.ResolvedContent
	err        error
	lastQuery  domain.PrecedentQuery
	lastRange  [2]string
	lastOpts   domain.ResolveOptions
	rangeCalls int
}

func (m *mockPrecedentService) Search(_ context.Context, q domain.PrecedentQuery) (*domain.ListResult[domain.Precedent], error) {
	m.lastQuery = q
	if m.err != nil {
		return nil, m.err
	}
	if m.search == nil {
		return &domain.ListResult[domain.Precedent]{}, nil
	}
	return m.search, nil
}

func (m *mockPrecedentService) SearchByDateRange(
	ctx context.Context, q domain.PrecedentQuery, from, to string, _ int,
) (*domain.ListResult[domain.Precedent], error) {
	m.rangeCalls++
	m.lastRange = [2]string{from, to}
	return m.Search(ctx, q)
}

func (m *mockPrecedentService) Resolve(_ context.Context, _ int, opts domain.ResolveOptions) *domain.ResolvedContent {
	m.lastOpts = opts
	if m.resolved == nil {
		return &domain.ResolvedContent{SourceSystem: domain.SourceNone}
	}
	return m.resolved
}

// mockCitationService implements driving.CitationService for testing.
type mockCitationService struct{}

func (m *mockCitationService) ParseArticles(text string, referenceDate *int) []domain.ArticleReference {
	return []domain.ArticleReference{{RawText: text, ReferenceDate: referenceDate}}
}

func (m *mockCitationService) ParsePrecedents(text string) []domain.PrecedentReference {
	return []domain.PrecedentReference{{RawText: text}}
}

func strPtr(s string) *string { return &s }
