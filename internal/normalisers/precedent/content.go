package precedent

import (
	"github.com/custodia-labs/lawdata/internal/citation"
	"github.com/custodia-labs/lawdata/internal/core/domain"
	"github.com/custodia-labs/lawdata/internal/normalisers/html"
	"github.com/custodia-labs/lawdata/internal/normalisers/jsonfield"
)

// Precedent content (PrecService) fields beyond the list fields.
const (
	fieldContentID          = "판례정보일련번호"
	fieldSummary            = "판시사항"
	fieldDecisionSummary    = "판결요지"
	fieldContent            = "판례내용"
	fieldArticleReferences  = "참조조문"
	fieldPrecedentReference = "참조판례"
)

var contentFields = jsonfield.NewFieldSet(
	fieldContentID, fieldCaseNumber, fieldCaseName, fieldSummary, fieldDecisionSummary,
	fieldContent, fieldCaseTypeCode, fieldCaseTypeName, fieldCourtCode, fieldCourtName,
	fieldDecisionType, fieldDeclaration, fieldDecisionDate, fieldPrecedentReference,
	fieldArticleReferences, fieldRowID, fieldDetailLink, fieldDataSource,
)

// ParseContent parses a precedent content response. It returns nil when the
// response has no PrecService object, which is how the API answers for
// decisions it does not serve as JSON.
func ParseContent(root map[string]any) *domain.Precedent {
	node := jsonfield.Object(root, RootContent)
	if node == nil {
		return nil
	}

	rec := jsonfield.NewRecorder("")
	rec.TrackUnknown(node, contentFields)
	ex := jsonfield.NewExtractor(node, rec.Func())

	p := &domain.Precedent{
		ID:              ex.Int(fieldContentID),
		CaseName:        ex.StringOpt(fieldCaseName),
		CaseNumber:      ex.StringOpt(fieldCaseNumber),
		DecisionDate:    ex.DateOpt(fieldDecisionDate),
		CourtName:       ex.StringOpt(fieldCourtName),
		CourtCode:       ex.StringOpt(fieldCourtCode),
		CaseTypeName:    ex.StringOpt(fieldCaseTypeName),
		CaseTypeCode:    ex.StringOpt(fieldCaseTypeCode),
		DecisionType:    ex.StringOpt(fieldDecisionType),
		Declaration:     ex.StringOpt(fieldDeclaration),
		DataSource:      ex.StringOpt(fieldDataSource),
		Summary:         ex.StringOpt(fieldSummary),
		DecisionSummary: ex.StringOpt(fieldDecisionSummary),
	}
	if content := ex.StringOpt(fieldContent); content != nil {
		p.Content = nonEmpty(html.Clean(*content))
	}
	if refs := ex.StringOpt(fieldArticleReferences); refs != nil {
		p.ArticleReferences = citation.ParseArticleReferences(*refs, p.DecisionDate)
	}
	if refs := ex.StringOpt(fieldPrecedentReference); refs != nil {
		p.PrecedentReferences = citation.ParsePrecedentReferences(*refs)
	}

	p.Unexpected = rec.Fields()
	return p
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
