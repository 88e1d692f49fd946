package domain

// ArticleReference is one statute article cited by a decision (참조조문).
type ArticleReference struct {
	// RawText is the citation segment after list-marker stripping.
	RawText string `json:"raw_text" yaml:"raw_text"`

	// Index is the segment position in the raw split, empty segments included.
	Index int `json:"index" yaml:"index"`

	// LawName is the cited law; it may be inherited from the previous segment.
	LawName *string `json:"law_name,omitempty" yaml:"law_name,omitempty"`

	// ArticleKey is number×100+branch, nil when no article is cited.
	ArticleKey *int `json:"article_key,omitempty" yaml:"article_key,omitempty"`

	// ReferenceDate is the date the citation is evaluated against (YYYYMMDD).
	ReferenceDate *int `json:"reference_date,omitempty" yaml:"reference_date,omitempty"`

	// OlderThan is true when the text says "전의 것": the law version in force
	// strictly before ReferenceDate. Otherwise the version on or before it.
	OlderThan bool `json:"older_than" yaml:"older_than"`
}

// PrecedentReference is one decision cited by another decision (참조판례).
type PrecedentReference struct {
	RawText      string  `json:"raw_text" yaml:"raw_text"`
	Index        int     `json:"index" yaml:"index"`
	CourtName    *string `json:"court_name,omitempty" yaml:"court_name,omitempty"`
	CaseNumber   *string `json:"case_number,omitempty" yaml:"case_number,omitempty"`
	DecisionDate *int    `json:"decision_date,omitempty" yaml:"decision_date,omitempty"`
}
