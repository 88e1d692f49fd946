package precedent

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/custodia-labs/lawdata/internal/core/domain"
	"github.com/custodia-labs/lawdata/internal/normalisers/jsonfield"
)

// Response roots of the precedent endpoints.
const (
	RootList        = "PrecSearch"
	RootContent     = "PrecService"
	fieldListItems  = "prec"
	fieldTotalCount = "totalCnt"
)

// Precedent list (PrecSearch.prec) fields.
const (
	fieldListID       = "판례일련번호"
	fieldCaseName     = "사건명"
	fieldCaseNumber   = "사건번호"
	fieldDecisionDate = "선고일자"
	fieldCourtName    = "법원명"
	fieldCourtCode    = "법원종류코드"
	fieldCaseTypeName = "사건종류명"
	fieldCaseTypeCode = "사건종류코드"
	fieldDecisionType = "판결유형"
	fieldDeclaration  = "선고"
	fieldDataSource   = "데이터출처명"
	fieldRowID        = "id"
	fieldDetailLink   = "판례상세링크"
)

var listFields = jsonfield.NewFieldSet(
	fieldListID, fieldCaseName, fieldCaseNumber, fieldDecisionDate, fieldCourtName,
	fieldCourtCode, fieldCaseTypeName, fieldCaseTypeCode, fieldDecisionType,
	fieldDeclaration, fieldDataSource, fieldRowID, fieldDetailLink,
)

// ParseList parses a precedent list response. total is the upstream
// totalCnt, or the number of parsed items when it is missing.
func ParseList(root map[string]any) (items []domain.Precedent, total int) {
	search := jsonfield.Object(root, RootList)
	if search == nil {
		return []domain.Precedent{}, 0
	}

	nodes, err := jsonfield.Normalize(search, fieldListItems)
	if err != nil {
		nodes = nil
	}

	items = make([]domain.Precedent, 0, len(nodes))
	for _, node := range nodes {
		items = append(items, parseListItem(node))
	}

	total = len(items)
	if n := jsonfield.NewExtractor(search, nil).IntOpt(fieldTotalCount); n != nil {
		total = *n
	}
	return items, total
}

func parseListItem(node map[string]any) domain.Precedent {
	rec := jsonfield.NewRecorder("")
	rec.TrackUnknown(node, listFields)
	ex := jsonfield.NewExtractor(node, rec.Func())

	p := domain.Precedent{
		ID:           ex.Int(fieldListID),
		CaseName:     ex.StringOpt(fieldCaseName),
		CaseNumber:   ex.StringOpt(fieldCaseNumber),
		CourtName:    ex.StringOpt(fieldCourtName),
		CourtCode:    ex.StringOpt(fieldCourtCode),
		CaseTypeName: ex.StringOpt(fieldCaseTypeName),
		CaseTypeCode: ex.StringOpt(fieldCaseTypeCode),
		DecisionType: ex.StringOpt(fieldDecisionType),
		Declaration:  ex.StringOpt(fieldDeclaration),
		DataSource:   ex.StringOpt(fieldDataSource),
	}
	if raw := ex.StringOpt(fieldDecisionDate); raw != nil {
		if date, ok := DigitsDate(*raw); ok {
			p.DecisionDate = &date
		} else {
			rec.Mismatch(fieldDecisionDate, *raw)
		}
	}

	p.Unexpected = rec.Fields()
	return p
}

// DigitsDate keeps only the digits of s and accepts the result when it is
// exactly eight long: "2020.01.01" and "2020-01-01" both give 20200101.
func DigitsDate(s string) (int, bool) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, strings.TrimFunc(s, unicode.IsSpace))
	if len(digits) != 8 {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	return n, err == nil
}
