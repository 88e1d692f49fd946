package driven

import (
	"context"

	"github.com/custodia-labs/lawdata/internal/core/domain"
)

// StatuteSource reads statutes from the open API.
type StatuteSource interface {
	// SearchStatutes runs a statute list query.
	SearchStatutes(ctx context.Context, q domain.StatuteQuery) (*domain.ListResult[domain.StatuteSummary], error)

	// GetStatute fetches statute content. Content is nil when the
	// response could not be parsed.
	GetStatute(ctx context.Context, req domain.StatuteRequest) (*domain.ContentResult[domain.Statute], error)

	// GetEffectiveStatute fetches statute content as in force on a date.
	GetEffectiveStatute(ctx context.Context, req domain.EffectiveStatuteRequest) (*domain.ContentResult[domain.Statute], error)

	// GetArticleHistory lists the revisions of statute articles.
	GetArticleHistory(ctx context.Context, req domain.ArticleHistoryRequest) (*domain.ListResult[domain.StatuteHistory], error)
}

// PrecedentSource reads precedents from the open API.
type PrecedentSource interface {
	// SearchPrecedents runs a precedent list query.
	SearchPrecedents(ctx context.Context, q domain.PrecedentQuery) (*domain.ListResult[domain.Precedent], error)

	// GetPrecedent fetches precedent content. Content is nil when the API
	// does not serve the decision as JSON. When the API answers with an
	// error status the result still carries Raw next to the error.
	GetPrecedent(ctx context.Context, req domain.PrecedentRequest) (*domain.ContentResult[domain.Precedent], error)
}

// PrecedentPageSource fetches the printable decision page without
// following redirects.
type PrecedentPageSource interface {
	FetchPrecedentPage(ctx context.Context, id int) (*domain.FallbackPage, error)
}

// TaxLawSource fetches a decision document from the tax-law system.
type TaxLawSource interface {
	// GetDecision looks up a document by its ntstDcmId. Content is nil
	// when the envelope could not be parsed.
	GetDecision(ctx context.Context, documentID string) (*domain.ContentResult[domain.Precedent], error)
}

// PrecedentSupplementer fills gaps in a resolved record from a tertiary
// source. It reports whether the record changed.
type PrecedentSupplementer interface {
	Supplement(ctx context.Context, p *domain.Precedent) (bool, error)
}
