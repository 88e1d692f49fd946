package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/custodia-labs/lawdata/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/lawdata/internal/core/domain"
	"github.com/custodia-labs/lawdata/internal/core/services"
)

// mockStatuteService implements driving.StatuteService for testing.
type mockStatuteService struct {
	content       *domain.ContentResult[domain.Statute]
	lastQuery     domain.StatuteQuery
	lastRequest   domain.StatuteRequest
	lastEffective int
	lastHistory   domain.ArticleHistoryRequest
}

func (m *mockStatuteService) Search(_ context.Context, q domain.StatuteQuery) (*domain.ListResult[domain.StatuteSummary], error) {
	m.lastQuery = q
	return &domain.ListResult[domain.StatuteSummary]{Items: []domain.StatuteSummary{}, Page: q.Page, Display: q.Display}, nil
}

func (m *mockStatuteService) Get(_ context.Context, req domain.StatuteRequest, effectiveDate int) (*domain.ContentResult[domain.Statute], error) {
	m.lastRequest = req
	m.lastEffective = effectiveDate
	if m.content == nil {
		return &domain.ContentResult[domain.Statute]{}, nil
	}
	return m.content, nil
}

func (m *mockStatuteService) History(_ context.Context, req domain.ArticleHistoryRequest) (*domain.ListResult[domain.StatuteHistory], error) {
	m.lastHistory = req
	return &domain.ListResult[domain.StatuteHistory]{Items: []domain.StatuteHistory{}}, nil
}

// mockPrecedentService implements driving.PrecedentService for testing.
type mockPrecedentService struct {
	resolved   *domain.ResolvedContent
	lastQuery  domain.PrecedentQuery
	lastRange  []string
	lastChunk  int
	lastID     int
	lastOpts   domain.ResolveOptions
	rangeCalls int
}

func (m *mockPrecedentService) Search(_ context.Context, q domain.PrecedentQuery) (*domain.ListResult[domain.Precedent], error) {
	m.lastQuery = q
	return &domain.ListResult[domain.Precedent]{Items: []domain.Precedent{}}, nil
}

func (m *mockPrecedentService) SearchByDateRange(
	ctx context.Context, q domain.PrecedentQuery, from, to string, chunkDays int,
) (*domain.ListResult[domain.Precedent], error) {
	m.rangeCalls++
	m.lastRange = []string{from, to}
	m.lastChunk = chunkDays
	return m.Search(ctx, q)
}

func (m *mockPrecedentService) Resolve(_ context.Context, id int, opts domain.ResolveOptions) *domain.ResolvedContent {
	m.lastID = id
	m.lastOpts = opts
	if m.resolved == nil {
		return &domain.ResolvedContent{TraceID: "trace-1", SourceSystem: domain.SourceNone}
	}
	return m.resolved
}

// setupTestServices installs mocks and an in-memory settings store with a
// key configured, restoring the previous services on cleanup.
func setupTestServices(t *testing.T) (*mockStatuteService, *mockPrecedentService, *memory.ConfigStore) {
	t.Helper()
	t.Setenv(services.EnvOC, "")

	prevSettings, prevStatute, prevPrecedent, prevCitation := settingsService, statuteService, precedentService, citationService
	t.Cleanup(func() {
		settingsService, statuteService, precedentService, citationService = prevSettings, prevStatute, prevPrecedent, prevCitation
	})

	store := memory.NewConfigStore()
	_ = store.Set("api.oc", "tester")
	statutes := &mockStatuteService{}
	precedents := &mockPrecedentService{}

	settingsService = services.NewSettingsService(store)
	statuteService = statutes
	precedentService = precedents
	citationService = services.NewCitationService()
	return statutes, precedents, store
}

// resetFlags restores package-level flag variables between executions.
func resetFlags() {
	verbose, configDir, outputFormat = false, "", ""

	statutePage, statuteDisplay = domain.DefaultPage, domain.DefaultDisplay
	statuteFullText, statuteSort, statuteKind, statuteDept = false, "", "", ""
	statuteMST, statuteName, statuteArticle, statuteEffDate, statuteLanguage = 0, "", "", 0, ""
	statuteRegDate = 0

	precedentPage, precedentDisplay = domain.DefaultPage, domain.DefaultDisplay
	precedentFullText, precedentSort, precedentCourt, precedentCaseNumber, precedentLawName = false, "", "", "", ""
	precedentFrom, precedentTo, precedentChunkDays = "", "", 365
	precedentName, precedentDataSource, precedentNoSupplement = "", "", false

	citationsDate = 0
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}
