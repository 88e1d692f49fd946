package driving

import "github.com/custodia-labs/lawdata/internal/core/domain"

// CitationService parses free-text citation fields.
type CitationService interface {
	// ParseArticles parses an article reference list. referenceDate may be nil.
	ParseArticles(text string, referenceDate *int) []domain.ArticleReference

	// ParsePrecedents parses a precedent reference list.
	ParsePrecedents(text string) []domain.PrecedentReference
}
