package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/lawdata/internal/core/domain"
	"github.com/custodia-labs/lawdata/internal/core/ports/driven"
	"github.com/custodia-labs/lawdata/internal/core/ports/driving"
	"github.com/custodia-labs/lawdata/internal/logger"
)

// Ensure PrecedentService implements the interface.
var _ driving.PrecedentService = (*PrecedentService)(nil)

// PrecedentService provides precedent search and resolution.
type PrecedentService struct {
	source   driven.PrecedentSource
	resolver *Resolver
}

// NewPrecedentService creates a new precedent service.
func NewPrecedentService(source driven.PrecedentSource, resolver *Resolver) *PrecedentService {
	return &PrecedentService{source: source, resolver: resolver}
}

// Search runs a precedent list query.
func (s *PrecedentService) Search(ctx context.Context, q domain.PrecedentQuery) (*domain.ListResult[domain.Precedent], error) {
	logger.Debug("precedent search: query=%q page=%d", q.Query, q.Page)
	return s.source.SearchPrecedents(ctx, q)
}

// SearchByDateRange runs q for each chunk of the decision-date range in
// turn, oldest first.
//
// Paging applies per chunk: every chunk is asked for the same q.Page of
// q.Display items, and Items is their concatenation, so one call returns
// up to len(chunks)×Display items. TotalCount is the sum of the chunk
// totals and Page and Display echo the request, so TotalPages and
// HasNextPage do not describe per-chunk paging. To walk every hit,
// advance q.Page until a call returns no items.
func (s *PrecedentService) SearchByDateRange(
	ctx context.Context, q domain.PrecedentQuery, from, to string, chunkDays int,
) (*domain.ListResult[domain.Precedent], error) {
	ranges, err := domain.SplitDateRange(from, to, chunkDays)
	if err != nil {
		return nil, err
	}

	paging := q.Paging.Normalised()
	merged := &domain.ListResult[domain.Precedent]{
		Items:   []domain.Precedent{},
		Page:    paging.Page,
		Display: paging.Display,
	}
	for i, r := range ranges {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		chunk := q
		chunk.DecisionRange = &ranges[i]
		logger.Debug("precedent search: chunk %d/%d %s", i+1, len(ranges), r)

		result, err := s.source.SearchPrecedents(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("chunk %s: %w", r, err)
		}
		merged.Items = append(merged.Items, result.Items...)
		merged.TotalCount += result.TotalCount
		merged.Raw = result.Raw
	}
	return merged, nil
}

// Resolve fetches one precedent through the fallback chain.
func (s *PrecedentService) Resolve(ctx context.Context, id int, opts domain.ResolveOptions) *domain.ResolvedContent {
	return s.resolver.Resolve(ctx, id, opts)
}
