package domain

// Data source tags carried by precedent records (데이터출처명).
const (
	// DataSourceCourt marks decisions published by the courts.
	DataSourceCourt = "대법원"

	// DataSourceNTS marks records resolved from the National Tax Service
	// tax-law system.
	DataSourceNTS = "국세법령정보시스템"

	// DataSourceCOMWEL marks industrial-accident decisions collected by the
	// Korea Workers' Compensation & Welfare Service. Only these records are
	// eligible for the metadata supplement.
	DataSourceCOMWEL = "근로복지공단"
)

// Precedent is a court decision or administrative ruling (판례).
// List hits populate the summary fields only; content lookups fill the rest.
type Precedent struct {
	ID           *int    `json:"id,omitempty" yaml:"id,omitempty"`
	CaseName     *string `json:"case_name,omitempty" yaml:"case_name,omitempty"`
	CaseNumber   *string `json:"case_number,omitempty" yaml:"case_number,omitempty"`
	DecisionDate *int    `json:"decision_date,omitempty" yaml:"decision_date,omitempty"`
	CourtName    *string `json:"court_name,omitempty" yaml:"court_name,omitempty"`
	CourtCode    *string `json:"court_code,omitempty" yaml:"court_code,omitempty"`
	CaseTypeName *string `json:"case_type_name,omitempty" yaml:"case_type_name,omitempty"`
	CaseTypeCode *string `json:"case_type_code,omitempty" yaml:"case_type_code,omitempty"`
	DecisionType *string `json:"decision_type,omitempty" yaml:"decision_type,omitempty"`
	Declaration  *string `json:"declaration,omitempty" yaml:"declaration,omitempty"`
	DataSource   *string `json:"data_source,omitempty" yaml:"data_source,omitempty"`

	// Summary is 판시사항; DecisionSummary is 판결요지.
	Summary         *string `json:"summary,omitempty" yaml:"summary,omitempty"`
	DecisionSummary *string `json:"decision_summary,omitempty" yaml:"decision_summary,omitempty"`

	// Content is the sanitised decision text (판례내용).
	Content *string `json:"content,omitempty" yaml:"content,omitempty"`

	ArticleReferences   []ArticleReference   `json:"article_references,omitempty" yaml:"article_references,omitempty"`
	PrecedentReferences []PrecedentReference `json:"precedent_references,omitempty" yaml:"precedent_references,omitempty"`

	Unexpected UnexpectedFields `json:"unexpected,omitempty" yaml:"unexpected,omitempty"`
}

// HasDataSource reports whether the record is tagged with the given source.
func (p *Precedent) HasDataSource(tag string) bool {
	return p != nil && p.DataSource != nil && *p.DataSource == tag
}
