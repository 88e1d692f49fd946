package services

import (
	"github.com/custodia-labs/lawdata/internal/citation"
	"github.com/custodia-labs/lawdata/internal/core/domain"
	"github.com/custodia-labs/lawdata/internal/core/ports/driving"
)

// Ensure CitationService implements the interface.
var _ driving.CitationService = (*CitationService)(nil)

// CitationService parses citation text.
type CitationService struct{}

// NewCitationService creates a new citation service.
func NewCitationService() *CitationService {
	return &CitationService{}
}

// ParseArticles parses an article reference list.
func (s *CitationService) ParseArticles(text string, referenceDate *int) []domain.ArticleReference {
	return citation.ParseArticleReferences(text, referenceDate)
}

// ParsePrecedents parses a precedent reference list.
func (s *CitationService) ParsePrecedents(text string) []domain.PrecedentReference {
	return citation.ParsePrecedentReferences(text)
}
