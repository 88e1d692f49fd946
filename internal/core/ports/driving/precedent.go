package driving

import (
	"context"

	"github.com/custodia-labs/lawdata/internal/core/domain"
)

// PrecedentService provides precedent lookups to external actors.
type PrecedentService interface {
	// Search runs a precedent list query.
	Search(ctx context.Context, q domain.PrecedentQuery) (*domain.ListResult[domain.Precedent], error)

	// SearchByDateRange runs q once per chunk of at most chunkDays days
	// between from and to (YYYYMMDD), sequentially, and concatenates the
	// pages. q.Page is requested from every chunk, so a call returns up to
	// one page per chunk. TotalCount is the sum over chunks.
	SearchByDateRange(ctx context.Context, q domain.PrecedentQuery, from, to string, chunkDays int) (*domain.ListResult[domain.Precedent], error)

	// Resolve fetches one precedent through the fallback chain. It never
	// fails because a source failed; see domain.ResolvedContent.
	Resolve(ctx context.Context, id int, opts domain.ResolveOptions) *domain.ResolvedContent
}
