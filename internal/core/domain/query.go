package domain

import "fmt"

// Default paging for list endpoints.
const (
	DefaultPage    = 1
	DefaultDisplay = 20
	MaxDisplay     = 100
)

// SearchScope selects what a list query matches against (search).
type SearchScope int

// Search scopes.
const (
	// SearchTitle matches names only.
	SearchTitle SearchScope = 1

	// SearchBody matches the full text.
	SearchBody SearchScope = 2
)

// Paging is the page/display pair shared by list queries.
type Paging struct {
	Page    int
	Display int
}

// Normalised returns paging with defaults applied and display capped.
func (p Paging) Normalised() Paging {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.Display <= 0 {
		p.Display = DefaultDisplay
	}
	if p.Display > MaxDisplay {
		p.Display = MaxDisplay
	}
	return p
}

// StatuteQuery filters a statute list search (target=law).
// Zero values are omitted from the request.
type StatuteQuery struct {
	Paging

	Query string
	Scope SearchScope
	Sort  string

	// Date is the exact promulgation date (date).
	Date int

	// EffectiveRange is an effective-date range (efYd).
	EffectiveRange *DateRange

	// PromulgationRange is a promulgation-date range (ancYd).
	PromulgationRange *DateRange

	// PromulgationNumbers is a promulgation-number range "from~to" (ancNo).
	PromulgationNumbers string

	// RevisionType is the 제개정구분 code (rrClsCd).
	RevisionType string

	// Number is the promulgation number (nb).
	Number int

	// Department is the 소관부처 code (org).
	Department string

	// Kind is the 법령종류 code (knd).
	Kind string

	// Initial is the dictionary initial (gana), e.g. "ga".
	Initial string
}

// StatuteRequest identifies one statute for a content lookup (target=law).
// Either ID or MST is required; Name with the promulgation fields is an
// alternative accepted by the endpoint.
type StatuteRequest struct {
	ID  int
	MST int64

	// Name (LM), PromulgationDate (LD) and PromulgationNo (LN).
	Name             string
	PromulgationDate int
	PromulgationNo   int

	// Article limits the response to one article key (JO).
	Article int

	Language Language
}

// Validate checks the request identifies a statute.
func (r StatuteRequest) Validate() error {
	if r.ID <= 0 && r.MST <= 0 && r.Name == "" {
		return fmt.Errorf("%w: statute ID, MST or name required", ErrInvalidInput)
	}
	if r.Language != "" && !r.Language.IsValid() {
		return fmt.Errorf("%w: language %q", ErrInvalidInput, r.Language)
	}
	return nil
}

// EffectiveStatuteRequest identifies a statute as in force on a date
// (target=eflaw).
type EffectiveStatuteRequest struct {
	ID            int
	MST           int64
	EffectiveDate int
	Article       int
	Language      Language
}

// Validate checks the request identifies a statute.
func (r EffectiveStatuteRequest) Validate() error {
	if r.ID <= 0 && r.MST <= 0 {
		return fmt.Errorf("%w: statute ID or MST required", ErrInvalidInput)
	}
	if r.MST > 0 && r.EffectiveDate <= 0 {
		return fmt.Errorf("%w: effective date required with MST", ErrInvalidInput)
	}
	return nil
}

// ArticleHistoryRequest asks for the revision history of statute articles
// (target=lsJoHstInf).
type ArticleHistoryRequest struct {
	Paging

	ID      int
	Article int

	// RegisteredDate limits the history to one registration date (regDt).
	RegisteredDate int
}

// Validate checks the request identifies a statute.
func (r ArticleHistoryRequest) Validate() error {
	if r.ID <= 0 {
		return fmt.Errorf("%w: statute ID required", ErrInvalidInput)
	}
	return nil
}

// PrecedentQuery filters a precedent list search (target=prec).
type PrecedentQuery struct {
	Paging

	Query string
	Scope SearchScope
	Sort  string

	// LawName restricts hits to decisions citing a statute (JO).
	LawName string

	Initial string

	// DataSource is the 데이터출처명 (datSrcNm).
	DataSource string

	// DecisionRange is a decision-date range (prncYd).
	DecisionRange *DateRange

	// Date is the exact decision date (date).
	Date int

	// CourtType is the court type code (org); Court the court name (curt).
	CourtType string
	Court     string

	// CaseNumber matches the case number (nb).
	CaseNumber string
}

// PrecedentRequest identifies one precedent for a content lookup.
type PrecedentRequest struct {
	ID int

	// Name (LM) is the case name, used by the endpoint for highlighting.
	Name string
}

// Validate checks the request identifies a precedent.
func (r PrecedentRequest) Validate() error {
	if r.ID <= 0 {
		return fmt.Errorf("%w: precedent ID required", ErrInvalidInput)
	}
	return nil
}
