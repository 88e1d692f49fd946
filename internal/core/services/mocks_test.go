package services

import (
	"context"

	"github.com/custodia-labs/lawdata/internal/core/domain"
	"github.com/custodia-labs/lawdata/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockPrecedentSource implements driven.PrecedentSource for testing.
type mockPrecedentSource struct {
	content    *domain.ContentResult[domain.Precedent]
	contentErr error
	requests   []domain.PrecedentRequest

	pages     map[string]*domain.ListResult[domain.Precedent]
	searchErr error
	queries   []domain.PrecedentQuery
}

var _ driven.PrecedentSource = (*mockPrecedentSource)(nil)

func (m *mockPrecedentSource) SearchPrecedents(_ context.Context, q domain.PrecedentQuery) (*domain.ListResult[domain.Precedent], error) {
	m.queries = append(m.queries, q)
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	key := ""
	if q.DecisionRange != nil {
		key = q.DecisionRange.String()
	}
	if page, ok := m.pages[key]; ok {
		return page, nil
	}
	return &domain.ListResult[domain.Precedent]{Items: []domain.Precedent{}}, nil
}

func (m *mockPrecedentSource) GetPrecedent(_ context.Context, req domain.PrecedentRequest) (*domain.ContentResult[domain.Precedent], error) {
	m.requests = append(m.requests, req)
	if m.contentErr != nil {
		return m.content, m.contentErr
	}
	if m.content == nil {
		return &domain.ContentResult[domain.Precedent]{}, nil
	}
	return m.content, nil
}

// mockPageSource implements driven.PrecedentPageSource for testing.
type mockPageSource struct {
	page  *domain.FallbackPage
	err   error
	calls int
}

func (m *mockPageSource) FetchPrecedentPage(_ context.Context, _ int) (*domain.FallbackPage, error) {
	m.calls++
	return m.page, m.err
}

// mockTaxLawSource implements driven.TaxLawSource for testing.
type mockTaxLawSource struct {
	result *domain.ContentResult[domain.Precedent]
	err    error
	ids    []string
}

func (m *mockTaxLawSource) GetDecision(_ context.Context, id string) (*domain.ContentResult[domain.Precedent], error) {
	m.ids = append(m.ids, id)
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

// mockSupplementer implements driven.PrecedentSupplementer for testing.
type mockSupplementer struct {
	changed bool
	err     error
	calls   int
}

func (m *mockSupplementer) Supplement(_ context.Context, p *domain.Precedent) (bool, error) {
	m.calls++
	if m.err != nil {
		return false, m.err
	}
	if m.changed {
		date := 20240102
		p.DecisionDate = &date
	}
	return m.changed, nil
}

// mockStatuteSource implements driven.StatuteSource for testing.
type mockStatuteSource struct {
	getRequests       []domain.StatuteRequest
	effectiveRequests []domain.EffectiveStatuteRequest
	historyRequests   []domain.ArticleHistoryRequest
	err               error
}

var _ driven.StatuteSource = (*mockStatuteSource)(nil)

func (m *mockStatuteSource) SearchStatutes(_ context.Context, q domain.StatuteQuery) (*domain.ListResult[domain.StatuteSummary], error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.ListResult[domain.StatuteSummary]{Items: []domain.StatuteSummary{}, Page: q.Page}, nil
}

func (m *mockStatuteSource) GetStatute(_ context.Context, req domain.StatuteRequest) (*domain.ContentResult[domain.Statute], error) {
	m.getRequests = append(m.getRequests, req)
	return &domain.ContentResult[domain.Statute]{}, m.err
}

func (m *mockStatuteSource) GetEffectiveStatute(_ context.Context, req domain.EffectiveStatuteRequest) (*domain.ContentResult[domain.Statute], error) {
	m.effectiveRequests = append(m.effectiveRequests, req)
	return &domain.ContentResult[domain.Statute]{}, m.err
}

func (m *mockStatuteSource) GetArticleHistory(_ context.Context, req domain.ArticleHistoryRequest) (*domain.ListResult[domain.StatuteHistory], error) {
	m.historyRequests = append(m.historyRequests, req)
	return &domain.ListResult[domain.StatuteHistory]{}, m.err
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }
