package statute

import (
	"github.com/custodia-labs/lawdata/internal/core/domain"
	"github.com/custodia-labs/lawdata/internal/normalisers/jsonfield"
)

// Article history (lsJoHstInf) fields.
const (
	fieldHistoryInfo     = "법령정보"
	fieldHistoryArticles = "조문정보"
	fieldHistoryJo       = "jo"
	fieldHistoryNum      = "num"
	fieldHistoryID       = "id"
	fieldHistoryLink     = "조문변경이력상세링크"

	fieldChangeKey       = "조문번호"
	fieldChangeReason    = "변경사유"
	fieldChangeEffective = "조문시행일"
	fieldChangeRevision  = "조문개정일"
	fieldChangeLink      = "조문링크"
)

var (
	historyFields = jsonfield.NewFieldSet(
		fieldHistoryInfo, fieldHistoryArticles, fieldHistoryNum, fieldHistoryID, fieldHistoryLink,
	)
	historyInfoFields = jsonfield.NewFieldSet(
		fieldSummaryLawID, fieldSummaryMST, fieldSummaryEffective, fieldSummaryName,
		fieldSummaryKind, fieldSummaryOrgNames, fieldSummaryOrgCodes, fieldSummaryRevisionType,
		fieldSummaryPromDate, fieldSummaryPromNo,
	)
	changeFields = jsonfield.NewFieldSet(
		fieldChangeKey, fieldChangeReason, fieldChangeEffective, fieldChangeRevision,
		fieldChangeLink, fieldHistoryLink, fieldHistoryNum,
	)
)

// ParseHistory parses an article history response. Both the LawSearch
// and the LsJoHst root are accepted.
func ParseHistory(root map[string]any) (items []domain.StatuteHistory, total int) {
	search := jsonfield.Object(root, RootList)
	if search == nil {
		search = jsonfield.Object(root, RootHistory)
	}
	if search == nil {
		return []domain.StatuteHistory{}, 0
	}

	nodes, err := jsonfield.Normalize(search, fieldListItems)
	if err != nil {
		nodes = nil
	}

	items = make([]domain.StatuteHistory, 0, len(nodes))
	for _, node := range nodes {
		items = append(items, parseHistoryEntry(node))
	}
	return items, totalCount(search, len(items))
}

func parseHistoryEntry(node map[string]any) domain.StatuteHistory {
	rec := jsonfield.NewRecorder("")
	rec.TrackUnknown(node, historyFields)

	entry := domain.StatuteHistory{}
	if info := jsonfield.Object(node, fieldHistoryInfo); info != nil {
		scoped := rec.Scoped(fieldHistoryInfo)
		scoped.TrackUnknown(info, historyInfoFields)
		ex := jsonfield.NewExtractor(info, scoped.Func())

		entry.LawID = ex.Int(fieldSummaryLawID)
		entry.MasterSerial = ex.Int(fieldSummaryMST)
		entry.Name = ex.String(fieldSummaryName)
		entry.KindName = ex.StringOpt(fieldSummaryKind)
		entry.RevisionType = ex.StringOpt(fieldSummaryRevisionType)
		entry.EffectiveDate = ex.Date(fieldSummaryEffective)
		entry.PromulgationDate = ex.DateOpt(fieldSummaryPromDate)
		entry.Organisations = organisations(ex)
	}

	changeRec := rec.Scoped(fieldHistoryArticles)
	for _, jo := range units(node, fieldHistoryArticles, fieldHistoryJo, rec) {
		if change := parseChange(jo, changeRec); change != nil {
			entry.Changes = append(entry.Changes, *change)
		}
	}

	entry.Unexpected = rec.Fields()
	return entry
}

// parseChange reads one changed article. Entries missing the article key
// or the effective date are dropped.
func parseChange(node map[string]any, rec *jsonfield.Recorder) *domain.ArticleChange {
	rec.TrackUnknown(node, changeFields)
	ex := jsonfield.NewExtractor(node, rec.Func())

	change := &domain.ArticleChange{
		ArticleKey:    ex.Int(fieldChangeKey),
		Reason:        ex.StringOpt(fieldChangeReason),
		EffectiveDate: ex.Date(fieldChangeEffective),
		RevisionDate:  ex.DateOpt(fieldChangeRevision),
	}
	if change.ArticleKey == nil || change.EffectiveDate == nil {
		return nil
	}
	return change
}
