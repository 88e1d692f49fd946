package driving

import (
	"context"

	"github.com/custodia-labs/lawdata/internal/core/domain"
)

// StatuteService provides statute lookups to external actors.
type StatuteService interface {
	// Search runs a statute list query.
	Search(ctx context.Context, q domain.StatuteQuery) (*domain.ListResult[domain.StatuteSummary], error)

	// Get fetches statute content. With EffectiveDate set the
	// effective-date endpoint is used instead.
	Get(ctx context.Context, req domain.StatuteRequest, effectiveDate int) (*domain.ContentResult[domain.Statute], error)

	// History lists article revisions of a statute.
	History(ctx context.Context, req domain.ArticleHistoryRequest) (*domain.ListResult[domain.StatuteHistory], error)
}
