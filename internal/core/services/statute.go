package services

import (
	"context"

	"github.com/custodia-labs/lawdata/internal/core/domain"
	"github.com/custodia-labs/lawdata/internal/core/ports/driven"
	"github.com/custodia-labs/lawdata/internal/core/ports/driving"
	"github.com/custodia-labs/lawdata/internal/logger"
)

// Ensure StatuteService implements the interface.
var _ driving.StatuteService = (*StatuteService)(nil)

// StatuteService provides statute lookups.
type StatuteService struct {
	source driven.StatuteSource
}

// NewStatuteService creates a new statute service.
func NewStatuteService(source driven.StatuteSource) *StatuteService {
	return &StatuteService{source: source}
}

// Search runs a statute list query.
func (s *StatuteService) Search(ctx context.Context, q domain.StatuteQuery) (*domain.ListResult[domain.StatuteSummary], error) {
	logger.Debug("statute search: query=%q page=%d", q.Query, q.Page)
	return s.source.SearchStatutes(ctx, q)
}

// Get fetches statute content, as in force on effectiveDate when it is set.
func (s *StatuteService) Get(ctx context.Context, req domain.StatuteRequest, effectiveDate int) (*domain.ContentResult[domain.Statute], error) {
	if effectiveDate > 0 {
		logger.Debug("statute get: id=%d mst=%d effective=%d", req.ID, req.MST, effectiveDate)
		return s.source.GetEffectiveStatute(ctx, domain.EffectiveStatuteRequest{
			ID:            req.ID,
			MST:           req.MST,
			EffectiveDate: effectiveDate,
			Article:       req.Article,
			Language:      req.Language,
		})
	}
	logger.Debug("statute get: id=%d mst=%d", req.ID, req.MST)
	return s.source.GetStatute(ctx, req)
}

// History lists article revisions of a statute.
func (s *StatuteService) History(ctx context.Context, req domain.ArticleHistoryRequest) (*domain.ListResult[domain.StatuteHistory], error) {
	return s.source.GetArticleHistory(ctx, req)
}
