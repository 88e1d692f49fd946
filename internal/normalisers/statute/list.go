package statute

import (
	"github.com/custodia-labs/lawdata/internal/core/domain"
	"github.com/custodia-labs/lawdata/internal/normalisers/jsonfield"
)

// Response roots of the statute list and history endpoints.
const (
	RootList        = "LawSearch"
	RootHistory     = "LsJoHst"
	fieldListItems  = "law"
	fieldTotalCount = "totalCnt"
)

// Statute list (LawSearch.law) fields.
const (
	fieldSummaryStatus       = "현행연혁코드"
	fieldSummaryMST          = "법령일련번호"
	fieldSummaryName         = "법령명한글"
	fieldSummaryKind         = "법령구분명"
	fieldSummaryOrgNames     = "소관부처명"
	fieldSummaryOrgCodes     = "소관부처코드"
	fieldSummaryPromNo       = "공포번호"
	fieldSummaryRevisionType = "제개정구분명"
	fieldSummaryLawID        = "법령ID"
	fieldSummaryCoOrdinance  = "공동부령정보"
	fieldSummaryEffective    = "시행일자"
	fieldSummaryPromDate     = "공포일자"
	fieldSummaryAbbreviation = "법령약칭명"
	fieldSummaryOwnLaw       = "자법타법여부"
	fieldSummaryLink         = "법령상세링크"
	fieldSummaryID           = "id"
)

var summaryFields = jsonfield.NewFieldSet(
	fieldSummaryStatus, fieldSummaryMST, fieldSummaryName, fieldSummaryKind,
	fieldSummaryOrgNames, fieldSummaryOrgCodes, fieldSummaryPromNo, fieldSummaryRevisionType,
	fieldSummaryLawID, fieldSummaryCoOrdinance, fieldSummaryEffective, fieldSummaryPromDate,
	fieldSummaryAbbreviation, fieldSummaryOwnLaw, fieldSummaryLink, fieldSummaryID,
)

// ParseList parses a statute list response. Items without a master serial
// number are dropped. total is the upstream totalCnt, or the number of
// parsed items when it is missing.
func ParseList(root map[string]any) (items []domain.StatuteSummary, total int) {
	search := jsonfield.Object(root, RootList)
	if search == nil {
		return []domain.StatuteSummary{}, 0
	}

	nodes, err := jsonfield.Normalize(search, fieldListItems)
	if err != nil {
		nodes = nil
	}

	items = make([]domain.StatuteSummary, 0, len(nodes))
	for _, node := range nodes {
		if s := parseSummary(node); s != nil {
			items = append(items, *s)
		}
	}
	return items, totalCount(search, len(items))
}

func parseSummary(node map[string]any) *domain.StatuteSummary {
	rec := jsonfield.NewRecorder("")
	rec.TrackUnknown(node, summaryFields)
	ex := jsonfield.NewExtractor(node, rec.Func())

	mst := ex.Int(fieldSummaryMST)
	if mst == nil {
		return nil
	}

	return &domain.StatuteSummary{
		MasterSerial:     mst,
		LawID:            ex.Int(fieldSummaryLawID),
		Name:             ex.String(fieldSummaryName),
		Abbreviation:     ex.StringOpt(fieldSummaryAbbreviation),
		KindName:         ex.String(fieldSummaryKind),
		Status:           ex.StringOpt(fieldSummaryStatus),
		RevisionType:     ex.StringOpt(fieldSummaryRevisionType),
		EffectiveDate:    ex.Date(fieldSummaryEffective),
		PromulgationDate: ex.Date(fieldSummaryPromDate),
		PromulgationNo:   ex.Int(fieldSummaryPromNo),
		Organisations:    organisations(ex),
		Unexpected:       rec.Fields(),
	}
}

// organisations zips the comma joined 소관부처명 and 소관부처코드 lists.
func organisations(ex jsonfield.Extractor) []domain.Organisation {
	names := ex.CommaListOpt(fieldSummaryOrgNames)
	codes := ex.CommaListOpt(fieldSummaryOrgCodes)

	n := max(len(names), len(codes))
	if n == 0 {
		return nil
	}
	orgs := make([]domain.Organisation, n)
	for i := range orgs {
		if i < len(names) && names[i] != "" {
			orgs[i].Name = &names[i]
		}
		if i < len(codes) && codes[i] != "" {
			orgs[i].Code = &codes[i]
		}
	}
	return orgs
}

func totalCount(search map[string]any, fallback int) int {
	if n := jsonfield.NewExtractor(search, nil).IntOpt(fieldTotalCount); n != nil {
		return *n
	}
	return fallback
}
