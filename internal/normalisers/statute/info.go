package statute

import (
	"github.com/custodia-labs/lawdata/internal/core/domain"
	"github.com/custodia-labs/lawdata/internal/normalisers/jsonfield"
)

// Basic information (기본정보) fields.
const (
	fieldInfoName             = "법령명_한글"
	fieldInfoNameHanja        = "법령명_한자"
	fieldInfoAbbreviation     = "법령명약칭"
	fieldInfoLawID            = "법령ID"
	fieldInfoEffectiveDate    = "시행일자"
	fieldInfoPromulgationDate = "공포일자"
	fieldInfoPromulgationNo   = "공포번호"
	fieldInfoRevisionType     = "제개정구분"
	fieldInfoOrganisation     = "소관부처"
	fieldInfoOrgCode          = "소관부처코드"
	fieldInfoKind             = "법종구분"
	fieldInfoKindCode         = "법종구분코드"
	fieldInfoPromulgated      = "공포법령여부"
	fieldInfoTitleChanged     = "제명변경여부"
	fieldInfoHangul           = "한글법령여부"
	fieldInfoChapter          = "편장절관"
	fieldInfoDecisionBody     = "의결구분"
	fieldInfoProposalType     = "제안구분"
	fieldInfoPhone            = "전화번호"
	fieldInfoLanguage         = "언어"
	fieldInfoAppendixEdited   = "별표편집여부"
	fieldInfoArticleDateText  = "조문시행일자문자열"
	fieldInfoAppendixDateText = "별표시행일자문자열"
	fieldInfoDepartments      = "연락부서"
	fieldInfoDepartmentUnit   = "부서단위"
	fieldInfoCoOrdinances     = "공동부령정보"
	fieldInfoCoOrdinanceUnit  = "공동부령"

	fieldContent = "content"
)

var infoFields = jsonfield.NewFieldSet(
	fieldInfoName, fieldInfoNameHanja, fieldInfoAbbreviation, fieldInfoLawID,
	fieldInfoEffectiveDate, fieldInfoPromulgationDate, fieldInfoPromulgationNo,
	fieldInfoRevisionType, fieldInfoOrganisation, fieldInfoKind, fieldInfoPromulgated,
	fieldInfoTitleChanged, fieldInfoHangul, fieldInfoChapter, fieldInfoDecisionBody,
	fieldInfoProposalType, fieldInfoPhone, fieldInfoLanguage, fieldInfoAppendixEdited,
	fieldInfoArticleDateText, fieldInfoAppendixDateText, fieldInfoDepartments,
	fieldInfoCoOrdinances,
)

// parseInfo reads 기본정보. Mismatches go to rec, which is scoped to the
// statute's own map.
func parseInfo(node map[string]any, rec *jsonfield.Recorder) *domain.StatuteInfo {
	rec.TrackUnknown(node, infoFields)
	ex := jsonfield.NewExtractor(node, rec.Func())

	info := &domain.StatuteInfo{
		LawID:            ex.Int(fieldInfoLawID),
		Name:             ex.String(fieldInfoName),
		NameHanja:        ex.StringOpt(fieldInfoNameHanja),
		Abbreviation:     ex.StringOpt(fieldInfoAbbreviation),
		EffectiveDate:    ex.Date(fieldInfoEffectiveDate),
		PromulgationDate: ex.Date(fieldInfoPromulgationDate),
		PromulgationNo:   ex.Int(fieldInfoPromulgationNo),
		RevisionType:     ex.String(fieldInfoRevisionType),
		Promulgated:      ex.BoolOpt(fieldInfoPromulgated),
		TitleChanged:     ex.BoolOpt(fieldInfoTitleChanged),
		Hangul:           ex.BoolOpt(fieldInfoHangul),
		Chapter:          ex.IntOpt(fieldInfoChapter),
		DecisionBody:     ex.StringOpt(fieldInfoDecisionBody),
		ProposalType:     ex.StringOpt(fieldInfoProposalType),
		Phone:            ex.StringOpt(fieldInfoPhone),
		Language:         ex.StringOpt(fieldInfoLanguage),
		AppendixEdited:   ex.BoolOpt(fieldInfoAppendixEdited),
		ArticleDateText:  ex.StringOpt(fieldInfoArticleDateText),
		AppendixDateText: ex.StringOpt(fieldInfoAppendixDateText),
	}

	if name, code, ok := coded(node, fieldInfoOrganisation, fieldInfoOrgCode, rec); ok {
		info.Organisation = &domain.Organisation{Name: name, Code: code}
	}
	if name, code, ok := coded(node, fieldInfoKind, fieldInfoKindCode, rec); ok {
		info.Kind = &domain.StatuteKind{Name: name, Code: code}
	}

	deptRec := rec.Scoped(fieldInfoDepartments)
	for _, d := range units(node, fieldInfoDepartments, fieldInfoDepartmentUnit, rec) {
		info.Departments = append(info.Departments, parseDepartment(d, deptRec))
	}

	coRec := rec.Scoped(fieldInfoCoOrdinances)
	for _, c := range units(node, fieldInfoCoOrdinances, fieldInfoCoOrdinanceUnit, rec) {
		info.CoOrdinances = append(info.CoOrdinances, parseCoOrdinance(c, coRec))
	}

	return info
}

// coded reads a {"content": name, codeField: code} object. A plain string
// is accepted as a name without a code.
func coded(node map[string]any, field, codeField string, rec *jsonfield.Recorder) (name, code *string, ok bool) {
	v, present := node[field]
	if !present {
		return nil, nil, false
	}
	switch x := v.(type) {
	case string:
		ex := jsonfield.NewExtractor(node, rec.Func())
		name = ex.StringOpt(field)
		return name, nil, name != nil
	case map[string]any:
		scoped := rec.Scoped(field)
		scoped.TrackUnknown(x, jsonfield.NewFieldSet(fieldContent, codeField))
		ex := jsonfield.NewExtractor(x, scoped.Func())
		return ex.StringOpt(fieldContent), ex.StringOpt(codeField), true
	}
	rec.Mismatch(field, v)
	return nil, nil, false
}

// Department (부서단위) fields.
const (
	fieldDeptKey     = "부서키"
	fieldDeptName    = "부서명"
	fieldDeptPhone   = "부서연락처"
	fieldDeptOrgName = "소관부처명"
	fieldDeptOrgCode = "소관부처코드"
)

var departmentFields = jsonfield.NewFieldSet(
	fieldDeptKey, fieldDeptName, fieldDeptPhone, fieldDeptOrgName, fieldDeptOrgCode,
)

func parseDepartment(node map[string]any, rec *jsonfield.Recorder) domain.Department {
	rec.TrackUnknown(node, departmentFields)
	ex := jsonfield.NewExtractor(node, rec.Func())

	return domain.Department{
		Key:              ex.StringOpt(fieldDeptKey),
		Name:             ex.StringOpt(fieldDeptName),
		Phone:            ex.StringOpt(fieldDeptPhone),
		OrganisationName: ex.StringOpt(fieldDeptOrgName),
		OrganisationCode: ex.StringOpt(fieldDeptOrgCode),
	}
}

// Co-ordinance (공동부령) fields.
const (
	fieldCoNo       = "no"
	fieldCoPromNo   = "공포번호"
	fieldCoKind     = "공동부령구분"
	fieldCoKindCode = "구분코드"
)

var coOrdinanceFields = jsonfield.NewFieldSet(fieldCoNo, fieldCoPromNo, fieldCoKind)

func parseCoOrdinance(node map[string]any, rec *jsonfield.Recorder) domain.CoOrdinance {
	rec.TrackUnknown(node, coOrdinanceFields)
	ex := jsonfield.NewExtractor(node, rec.Func())

	co := domain.CoOrdinance{
		Number:         ex.IntOpt(fieldCoNo),
		PromulgationNo: ex.IntOpt(fieldCoPromNo),
	}
	co.Name, co.Code, _ = coded(node, fieldCoKind, fieldCoKindCode, rec)
	return co
}
