package statute

import (
	"github.com/custodia-labs/lawdata/internal/core/domain"
	"github.com/custodia-labs/lawdata/internal/normalisers/jsonfield"
)

// RootContent is the root member of a statute content response.
const RootContent = "법령"

const (
	fieldArticles        = "조문"
	fieldArticleUnit     = "조문단위"
	fieldAddenda         = "부칙"
	fieldAddendumUnit    = "부칙단위"
	fieldAppendices      = "별표"
	fieldAppendixUnit    = "별표단위"
	fieldInfo            = "기본정보"
	fieldAmendment       = "개정문"
	fieldAmendmentText   = "개정문내용"
	fieldRevisionReason  = "제개정이유"
	fieldRevisionContent = "제개정이유내용"
	fieldStatuteKey      = "법령키"
)

var statuteFields = jsonfield.NewFieldSet(
	fieldArticles, fieldAddenda, fieldAppendices, fieldInfo,
	fieldAmendment, fieldRevisionReason, fieldStatuteKey,
)

// ParseContent parses a statute content response (target=law or eflaw).
// It returns nil when the response has no 법령 object.
func ParseContent(root map[string]any) *domain.Statute {
	law := jsonfield.Object(root, RootContent)
	if law == nil {
		return nil
	}

	rec := jsonfield.NewRecorder("")
	rec.TrackUnknown(law, statuteFields)

	statute := &domain.Statute{}
	if info := jsonfield.Object(law, fieldInfo); info != nil {
		statute.Info = parseInfo(info, rec.Scoped(fieldInfo))
	} else {
		rec.Mismatch(fieldInfo, law[fieldInfo])
	}

	for _, node := range units(law, fieldArticles, fieldArticleUnit, rec) {
		statute.Articles = append(statute.Articles, *ParseArticle(node))
	}
	for _, node := range units(law, fieldAddenda, fieldAddendumUnit, rec) {
		statute.Addenda = append(statute.Addenda, parseAddendum(node))
	}
	for _, node := range units(law, fieldAppendices, fieldAppendixUnit, rec) {
		statute.Appendices = append(statute.Appendices, parseAppendix(node))
	}

	statute.RevisionReason = wrappedText(law, fieldRevisionReason, fieldRevisionContent, rec)
	statute.AmendmentText = wrappedText(law, fieldAmendment, fieldAmendmentText, rec)

	statute.Unexpected = rec.Fields()
	return statute
}

// units reads parent[wrapper][unit] as a collection. A missing wrapper is
// an empty collection.
func units(parent map[string]any, wrapper, unit string, rec *jsonfield.Recorder) []map[string]any {
	v, ok := parent[wrapper]
	if !ok {
		return nil
	}
	items, err := jsonfield.Normalize(v, unit)
	if err != nil {
		rec.Mismatch(wrapper+"."+unit, v)
		return nil
	}
	return items
}

func wrappedText(parent map[string]any, wrapper, field string, rec *jsonfield.Recorder) *string {
	v, ok := parent[wrapper]
	if !ok {
		return nil
	}
	obj, isObject := v.(map[string]any)
	if !isObject {
		if s, isString := v.(string); isString && s == "" {
			return nil
		}
		rec.Mismatch(wrapper, v)
		return nil
	}
	return jsonfield.NewExtractor(obj, rec.Scoped(wrapper).Func()).TextOpt(field)
}

// Addendum (부칙단위) fields.
const (
	fieldAddendumKey     = "부칙키"
	fieldAddendumDate    = "부칙공포일자"
	fieldAddendumNo      = "부칙공포번호"
	fieldAddendumContent = "부칙내용"
)

var addendumFields = jsonfield.NewFieldSet(
	fieldAddendumKey, fieldAddendumDate, fieldAddendumNo, fieldAddendumContent,
)

func parseAddendum(node map[string]any) domain.Addendum {
	rec := jsonfield.NewRecorder("")
	rec.TrackUnknown(node, addendumFields)
	ex := jsonfield.NewExtractor(node, rec.Func())

	return domain.Addendum{
		Key:              ex.Int64(fieldAddendumKey),
		PromulgationDate: ex.Date(fieldAddendumDate),
		PromulgationNo:   ex.IntOpt(fieldAddendumNo),
		Content:          ex.Text(fieldAddendumContent),
		Unexpected:       rec.Fields(),
	}
}

// Appendix (별표단위) fields.
const (
	fieldAppendixKey     = "별표키"
	fieldAppendixNo      = "별표번호"
	fieldAppendixBranch  = "별표가지번호"
	fieldAppendixKind    = "별표구분"
	fieldAppendixTitle   = "별표제목"
	fieldAppendixContent = "별표내용"
	fieldAppendixFile    = "별표서식파일링크"
	fieldAppendixPDFFile = "별표서식PDF파일링크"
	fieldAppendixPDFName = "별표PDF파일명"
	fieldAppendixHWPName = "별표HWP파일명"
	fieldAppendixImages  = "별표이미지파일명"
)

var appendixFields = jsonfield.NewFieldSet(
	fieldAppendixKey, fieldAppendixNo, fieldAppendixBranch, fieldAppendixKind,
	fieldAppendixTitle, fieldAppendixContent, fieldAppendixFile, fieldAppendixPDFFile,
	fieldAppendixPDFName, fieldAppendixHWPName, fieldAppendixImages,
)

func parseAppendix(node map[string]any) domain.Appendix {
	rec := jsonfield.NewRecorder("")
	rec.TrackUnknown(node, appendixFields)
	ex := jsonfield.NewExtractor(node, rec.Func())

	return domain.Appendix{
		Key:            ex.String(fieldAppendixKey),
		Number:         ex.Int(fieldAppendixNo),
		BranchNumber:   intValue(ex.IntOpt(fieldAppendixBranch)),
		Kind:           ex.StringOpt(fieldAppendixKind),
		Title:          ex.StringOpt(fieldAppendixTitle),
		Content:        ex.TextOpt(fieldAppendixContent),
		FileLink:       ex.StringOpt(fieldAppendixFile),
		PDFFileLink:    ex.StringOpt(fieldAppendixPDFFile),
		PDFFilename:    ex.StringOpt(fieldAppendixPDFName),
		HWPFilename:    ex.StringOpt(fieldAppendixHWPName),
		ImageFilenames: stringList(node, fieldAppendixImages, rec),
		Unexpected:     rec.Fields(),
	}
}

// stringList reads a field delivered either as one string or as an array
// of strings.
func stringList(node map[string]any, field string, rec *jsonfield.Recorder) []string {
	v, ok := node[field]
	if !ok {
		return nil
	}
	switch x := v.(type) {
	case string:
		if x == "" {
			return nil
		}
		return []string{x}
	case []any:
		out := make([]string, 0, len(x))
		for _, elem := range x {
			s, isString := elem.(string)
			if !isString {
				rec.Mismatch(field, v)
				return nil
			}
			out = append(out, s)
		}
		return out
	}
	rec.Mismatch(field, v)
	return nil
}
