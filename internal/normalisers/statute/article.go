package statute

import (
	"github.com/custodia-labs/lawdata/internal/core/domain"
	"github.com/custodia-labs/lawdata/internal/normalisers/jsonfield"
)

// Article (조문) fields.
const (
	fieldArticleNo         = "조문번호"
	fieldArticleBranch     = "조문가지번호"
	fieldArticleKey        = "조문키"
	fieldArticleTitle      = "조문제목"
	fieldArticleContent    = "조문내용"
	fieldArticleKind       = "조문여부"
	fieldArticleParagraphs = "항"
	fieldArticleRevType    = "조문제개정유형"
	fieldArticleRevDate    = "조문제개정일자문자열"
	fieldArticleChanged    = "조문변경여부"
	fieldArticleMovedFrom  = "조문이동이전"
	fieldArticleMovedTo    = "조문이동이후"
	fieldArticleEffective  = "조문시행일자"
	fieldArticleReference  = "조문참고자료"
)

// Paragraph (항) fields.
const (
	fieldParagraphNo      = "항번호"
	fieldParagraphBranch  = "항가지번호"
	fieldParagraphContent = "항내용"
	fieldParagraphItems   = "호"
	fieldParagraphRevType = "항제개정유형"
	fieldParagraphRevDate = "항제개정일자문자열"
)

// Item (호) and subitem (목) fields.
const (
	fieldItemNo       = "호번호"
	fieldItemBranch   = "호가지번호"
	fieldItemContent  = "호내용"
	fieldItemSubitems = "목"

	fieldSubitemNo      = "목번호"
	fieldSubitemBranch  = "목가지번호"
	fieldSubitemContent = "목내용"
)

// Recorder scopes, one per tree level.
const (
	scopeArticle   = "article"
	scopeParagraph = "paragraph"
	scopeItem      = "item"
	scopeSubitem   = "subitem"
)

var (
	articleFields = jsonfield.NewFieldSet(
		fieldArticleNo, fieldArticleBranch, fieldArticleKey, fieldArticleTitle,
		fieldArticleContent, fieldArticleKind, fieldArticleParagraphs, fieldArticleRevType,
		fieldArticleRevDate, fieldArticleChanged, fieldArticleMovedFrom, fieldArticleMovedTo,
		fieldArticleEffective, fieldArticleReference,
	)
	paragraphFields = jsonfield.NewFieldSet(
		fieldParagraphNo, fieldParagraphBranch, fieldParagraphContent,
		fieldParagraphItems, fieldParagraphRevType, fieldParagraphRevDate,
	)
	itemFields    = jsonfield.NewFieldSet(fieldItemNo, fieldItemBranch, fieldItemContent, fieldItemSubitems)
	subitemFields = jsonfield.NewFieldSet(fieldSubitemNo, fieldSubitemBranch, fieldSubitemContent)
)

// ParseArticle parses one 조문단위 object with all of its paragraphs,
// items and subitems. It returns nil for a nil node.
func ParseArticle(node map[string]any) *domain.Article {
	if node == nil {
		return nil
	}
	return parseArticle(node, jsonfield.NewRecorder(scopeArticle))
}

func parseArticle(node map[string]any, rec *jsonfield.Recorder) *domain.Article {
	rec.TrackUnknown(node, articleFields)
	ex := jsonfield.NewExtractor(node, rec.Func())

	article := &domain.Article{
		Number:       intValue(ex.Int(fieldArticleNo)),
		BranchNumber: intValue(ex.IntOpt(fieldArticleBranch)),
		Key:          stringValue(ex.String(fieldArticleKey)),
		Kind:         stringValue(ex.String(fieldArticleKind)),
		Title:        ex.StringOpt(fieldArticleTitle),
		Content:      ex.TextOpt(fieldArticleContent),
		Revision: domain.Revision{
			Type:     ex.StringOpt(fieldArticleRevType),
			DateText: ex.StringOpt(fieldArticleRevDate),
			Changed:  ex.BoolOpt(fieldArticleChanged),
		},
		EffectiveDate: ex.DateOpt(fieldArticleEffective),
		MovedFrom:     ex.IntOpt(fieldArticleMovedFrom),
		MovedTo:       ex.IntOpt(fieldArticleMovedTo),
		Reference:     ex.StringOpt(fieldArticleReference),
	}

	for _, child := range jsonfield.NormalizeField(node, fieldArticleParagraphs, rec.Func()) {
		article.Paragraphs = append(article.Paragraphs, *parseParagraph(child, rec.Nested(scopeParagraph)))
	}

	article.Unexpected = rec.Fields()
	return article
}

func parseParagraph(node map[string]any, rec *jsonfield.Recorder) *domain.Paragraph {
	rec.TrackUnknown(node, paragraphFields)
	ex := jsonfield.NewExtractor(node, rec.Func())

	paragraph := &domain.Paragraph{
		Number:       ex.StringOpt(fieldParagraphNo),
		BranchNumber: intValue(ex.IntOpt(fieldParagraphBranch)),
		Content:      ex.TextOpt(fieldParagraphContent),
		Revision: domain.Revision{
			Type:     ex.StringOpt(fieldParagraphRevType),
			DateText: ex.StringOpt(fieldParagraphRevDate),
		},
	}

	for _, child := range jsonfield.NormalizeField(node, fieldParagraphItems, rec.Func()) {
		paragraph.Items = append(paragraph.Items, *parseItem(child, rec.Nested(scopeItem)))
	}

	paragraph.Unexpected = rec.Fields()
	return paragraph
}

func parseItem(node map[string]any, rec *jsonfield.Recorder) *domain.Item {
	rec.TrackUnknown(node, itemFields)
	ex := jsonfield.NewExtractor(node, rec.Func())

	item := &domain.Item{
		Number:       ex.StringOpt(fieldItemNo),
		BranchNumber: intValue(ex.IntOpt(fieldItemBranch)),
		Content:      ex.TextOpt(fieldItemContent),
	}

	for _, child := range jsonfield.NormalizeField(node, fieldItemSubitems, rec.Func()) {
		item.Subitems = append(item.Subitems, parseSubitem(child, rec.Nested(scopeSubitem)))
	}

	item.Unexpected = rec.Fields()
	return item
}

func parseSubitem(node map[string]any, rec *jsonfield.Recorder) domain.Subitem {
	rec.TrackUnknown(node, subitemFields)
	ex := jsonfield.NewExtractor(node, rec.Func())

	return domain.Subitem{
		Number:       ex.StringOpt(fieldSubitemNo),
		BranchNumber: intValue(ex.IntOpt(fieldSubitemBranch)),
		Content:      ex.TextOpt(fieldSubitemContent),
		Unexpected:   rec.Fields(),
	}
}

func intValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func stringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
