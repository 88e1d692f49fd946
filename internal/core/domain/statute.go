package domain

// ArticleKey computes the lookup key of an article: number×100 + branch.
// "제3조의2" has key 302, "제17조" has key 1700.
func ArticleKey(number, branch int) int {
	return number*100 + branch
}

// SplitArticleKey is the inverse of ArticleKey.
func SplitArticleKey(key int) (number, branch int) {
	return key / 100, key % 100
}

// Article is the top level of the statute text hierarchy (조문).
type Article struct {
	// Number is the article number (조문번호).
	Number int `json:"number" yaml:"number"`

	// BranchNumber is the branch suffix (조문가지번호), 0 when absent.
	BranchNumber int `json:"branch_number" yaml:"branch_number"`

	// Key is the upstream article key (조문키) as delivered.
	Key string `json:"key,omitempty" yaml:"key,omitempty"`

	// Kind is 조문 for a body article and 전문 for a chapter heading.
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`

	Title   *string `json:"title,omitempty" yaml:"title,omitempty"`
	Content *string `json:"content,omitempty" yaml:"content,omitempty"`

	// Paragraphs are the 항 children in document order.
	Paragraphs []Paragraph `json:"paragraphs,omitempty" yaml:"paragraphs,omitempty"`

	Revision Revision `json:"revision" yaml:"revision"`

	// EffectiveDate is 조문시행일자 as YYYYMMDD.
	EffectiveDate *int `json:"effective_date,omitempty" yaml:"effective_date,omitempty"`

	// MovedFrom and MovedTo are 조문이동이전 / 조문이동이후.
	MovedFrom *int `json:"moved_from,omitempty" yaml:"moved_from,omitempty"`
	MovedTo   *int `json:"moved_to,omitempty" yaml:"moved_to,omitempty"`

	// Reference is 조문참고자료.
	Reference *string `json:"reference,omitempty" yaml:"reference,omitempty"`

	Unexpected UnexpectedFields `json:"unexpected,omitempty" yaml:"unexpected,omitempty"`
}

// ArticleKey returns Number×100+BranchNumber.
func (a *Article) ArticleKey() int {
	return ArticleKey(a.Number, a.BranchNumber)
}

// IsHeading reports whether the article is a chapter/section heading (전문).
func (a *Article) IsHeading() bool {
	return a.Kind == "전문"
}

// Revision holds amendment metadata shared by articles and paragraphs.
type Revision struct {
	// Type is the amendment kind (e.g., 개정, 신설, 삭제).
	Type *string `json:"type,omitempty" yaml:"type,omitempty"`

	// DateText is the amendment date string as delivered, e.g. "<개정 2020. 1. 1.>".
	DateText *string `json:"date_text,omitempty" yaml:"date_text,omitempty"`

	// Changed reports 조문변경여부 (articles only).
	Changed *bool `json:"changed,omitempty" yaml:"changed,omitempty"`
}

// Paragraph is the second level (항).
type Paragraph struct {
	// Number is the paragraph marker as delivered (e.g. "①").
	Number       *string `json:"number,omitempty" yaml:"number,omitempty"`
	BranchNumber int     `json:"branch_number" yaml:"branch_number"`
	Content      *string `json:"content,omitempty" yaml:"content,omitempty"`
	Items        []Item  `json:"items,omitempty" yaml:"items,omitempty"`

	Revision Revision `json:"revision" yaml:"revision"`

	Unexpected UnexpectedFields `json:"unexpected,omitempty" yaml:"unexpected,omitempty"`
}

// Item is the third level (호).
type Item struct {
	Number       *string   `json:"number,omitempty" yaml:"number,omitempty"`
	BranchNumber int       `json:"branch_number" yaml:"branch_number"`
	Content      *string   `json:"content,omitempty" yaml:"content,omitempty"`
	Subitems     []Subitem `json:"subitems,omitempty" yaml:"subitems,omitempty"`

	Unexpected UnexpectedFields `json:"unexpected,omitempty" yaml:"unexpected,omitempty"`
}

// Subitem is the leaf level (목).
type Subitem struct {
	Number       *string `json:"number,omitempty" yaml:"number,omitempty"`
	BranchNumber int     `json:"branch_number" yaml:"branch_number"`
	Content      *string `json:"content,omitempty" yaml:"content,omitempty"`

	Unexpected UnexpectedFields `json:"unexpected,omitempty" yaml:"unexpected,omitempty"`
}

// Organisation is a ministry in charge of a statute (소관부처).
type Organisation struct {
	Name *string `json:"name,omitempty" yaml:"name,omitempty"`
	Code *string `json:"code,omitempty" yaml:"code,omitempty"`
}

// StatuteKind is the statute category (법종구분).
type StatuteKind struct {
	Name *string `json:"name,omitempty" yaml:"name,omitempty"`
	Code *string `json:"code,omitempty" yaml:"code,omitempty"`
}

// Department is a contact department (연락부서.부서단위).
type Department struct {
	Key              *string `json:"key,omitempty" yaml:"key,omitempty"`
	Name             *string `json:"name,omitempty" yaml:"name,omitempty"`
	Phone            *string `json:"phone,omitempty" yaml:"phone,omitempty"`
	OrganisationName *string `json:"organisation_name,omitempty" yaml:"organisation_name,omitempty"`
	OrganisationCode *string `json:"organisation_code,omitempty" yaml:"organisation_code,omitempty"`
}

// StatuteInfo is the basic information block of a statute (기본정보).
type StatuteInfo struct {
	LawID            *int          `json:"law_id,omitempty" yaml:"law_id,omitempty"`
	Name             *string       `json:"name,omitempty" yaml:"name,omitempty"`
	NameHanja        *string       `json:"name_hanja,omitempty" yaml:"name_hanja,omitempty"`
	Abbreviation     *string       `json:"abbreviation,omitempty" yaml:"abbreviation,omitempty"`
	EffectiveDate    *int          `json:"effective_date,omitempty" yaml:"effective_date,omitempty"`
	PromulgationDate *int          `json:"promulgation_date,omitempty" yaml:"promulgation_date,omitempty"`
	PromulgationNo   *int          `json:"promulgation_no,omitempty" yaml:"promulgation_no,omitempty"`
	RevisionType     *string       `json:"revision_type,omitempty" yaml:"revision_type,omitempty"`
	Organisation     *Organisation `json:"organisation,omitempty" yaml:"organisation,omitempty"`
	Kind             *StatuteKind  `json:"kind,omitempty" yaml:"kind,omitempty"`
	Promulgated      *bool         `json:"promulgated,omitempty" yaml:"promulgated,omitempty"`
	TitleChanged     *bool         `json:"title_changed,omitempty" yaml:"title_changed,omitempty"`
	Hangul           *bool         `json:"hangul,omitempty" yaml:"hangul,omitempty"`
	Chapter          *int          `json:"chapter,omitempty" yaml:"chapter,omitempty"`
	DecisionBody     *string       `json:"decision_body,omitempty" yaml:"decision_body,omitempty"`
	ProposalType     *string       `json:"proposal_type,omitempty" yaml:"proposal_type,omitempty"`
	Phone            *string       `json:"phone,omitempty" yaml:"phone,omitempty"`
	Language         *string       `json:"language,omitempty" yaml:"language,omitempty"`
	AppendixEdited   *bool         `json:"appendix_edited,omitempty" yaml:"appendix_edited,omitempty"`
	ArticleDateText  *string       `json:"article_date_text,omitempty" yaml:"article_date_text,omitempty"`
	AppendixDateText *string       `json:"appendix_date_text,omitempty" yaml:"appendix_date_text,omitempty"`
	Departments      []Department  `json:"departments,omitempty" yaml:"departments,omitempty"`
	CoOrdinances     []CoOrdinance `json:"co_ordinances,omitempty" yaml:"co_ordinances,omitempty"`
}

// CoOrdinance is a jointly issued ministerial ordinance (공동부령정보).
type CoOrdinance struct {
	Number         *int    `json:"number,omitempty" yaml:"number,omitempty"`
	PromulgationNo *int    `json:"promulgation_no,omitempty" yaml:"promulgation_no,omitempty"`
	Name           *string `json:"name,omitempty" yaml:"name,omitempty"`
	Code           *string `json:"code,omitempty" yaml:"code,omitempty"`
}

// Addendum is one supplementary provision (부칙단위).
type Addendum struct {
	Key              *int64  `json:"key,omitempty" yaml:"key,omitempty"`
	PromulgationDate *int    `json:"promulgation_date,omitempty" yaml:"promulgation_date,omitempty"`
	PromulgationNo   *int    `json:"promulgation_no,omitempty" yaml:"promulgation_no,omitempty"`
	Content          *string `json:"content,omitempty" yaml:"content,omitempty"`

	Unexpected UnexpectedFields `json:"unexpected,omitempty" yaml:"unexpected,omitempty"`
}

// Appendix is one attached table or form (별표단위).
type Appendix struct {
	Key            *string  `json:"key,omitempty" yaml:"key,omitempty"`
	Number         *int     `json:"number,omitempty" yaml:"number,omitempty"`
	BranchNumber   int      `json:"branch_number" yaml:"branch_number"`
	Kind           *string  `json:"kind,omitempty" yaml:"kind,omitempty"`
	Title          *string  `json:"title,omitempty" yaml:"title,omitempty"`
	Content        *string  `json:"content,omitempty" yaml:"content,omitempty"`
	FileLink       *string  `json:"file_link,omitempty" yaml:"file_link,omitempty"`
	PDFFileLink    *string  `json:"pdf_file_link,omitempty" yaml:"pdf_file_link,omitempty"`
	PDFFilename    *string  `json:"pdf_filename,omitempty" yaml:"pdf_filename,omitempty"`
	HWPFilename    *string  `json:"hwp_filename,omitempty" yaml:"hwp_filename,omitempty"`
	ImageFilenames []string `json:"image_filenames,omitempty" yaml:"image_filenames,omitempty"`

	Unexpected UnexpectedFields `json:"unexpected,omitempty" yaml:"unexpected,omitempty"`
}

// Statute is the full content of one statute version (법령).
type Statute struct {
	Info       *StatuteInfo `json:"info,omitempty" yaml:"info,omitempty"`
	Articles   []Article    `json:"articles,omitempty" yaml:"articles,omitempty"`
	Addenda    []Addendum   `json:"addenda,omitempty" yaml:"addenda,omitempty"`
	Appendices []Appendix   `json:"appendices,omitempty" yaml:"appendices,omitempty"`

	// RevisionReason is 제개정이유내용.
	RevisionReason *string `json:"revision_reason,omitempty" yaml:"revision_reason,omitempty"`

	// AmendmentText is 개정문내용.
	AmendmentText *string `json:"amendment_text,omitempty" yaml:"amendment_text,omitempty"`

	Unexpected UnexpectedFields `json:"unexpected,omitempty" yaml:"unexpected,omitempty"`
}

// ArticleIndex maps article keys to body articles. Headings are skipped.
// When two articles share a key the first one wins.
func (s *Statute) ArticleIndex() map[int]*Article {
	index := make(map[int]*Article, len(s.Articles))
	for i := range s.Articles {
		a := &s.Articles[i]
		if a.IsHeading() {
			continue
		}
		if _, exists := index[a.ArticleKey()]; !exists {
			index[a.ArticleKey()] = a
		}
	}
	return index
}

// StatuteSummary is one statute list search hit (LawSearch.law).
type StatuteSummary struct {
	MasterSerial     *int           `json:"master_serial,omitempty" yaml:"master_serial,omitempty"`
	LawID            *int           `json:"law_id,omitempty" yaml:"law_id,omitempty"`
	Name             *string        `json:"name,omitempty" yaml:"name,omitempty"`
	Abbreviation     *string        `json:"abbreviation,omitempty" yaml:"abbreviation,omitempty"`
	KindName         *string        `json:"kind_name,omitempty" yaml:"kind_name,omitempty"`
	Status           *string        `json:"status,omitempty" yaml:"status,omitempty"`
	RevisionType     *string        `json:"revision_type,omitempty" yaml:"revision_type,omitempty"`
	EffectiveDate    *int           `json:"effective_date,omitempty" yaml:"effective_date,omitempty"`
	PromulgationDate *int           `json:"promulgation_date,omitempty" yaml:"promulgation_date,omitempty"`
	PromulgationNo   *int           `json:"promulgation_no,omitempty" yaml:"promulgation_no,omitempty"`
	Organisations    []Organisation `json:"organisations,omitempty" yaml:"organisations,omitempty"`

	Unexpected UnexpectedFields `json:"unexpected,omitempty" yaml:"unexpected,omitempty"`
}

// ArticleChange is one entry of an article's amendment history (조문정보.jo).
type ArticleChange struct {
	// ArticleKey is 조문번호, already in number×100+branch form.
	ArticleKey    *int    `json:"article_key,omitempty" yaml:"article_key,omitempty"`
	Reason        *string `json:"reason,omitempty" yaml:"reason,omitempty"`
	EffectiveDate *int    `json:"effective_date,omitempty" yaml:"effective_date,omitempty"`
	RevisionDate  *int    `json:"revision_date,omitempty" yaml:"revision_date,omitempty"`
}

// StatuteHistory is one statute version in an article history listing.
type StatuteHistory struct {
	MasterSerial     *int            `json:"master_serial,omitempty" yaml:"master_serial,omitempty"`
	LawID            *int            `json:"law_id,omitempty" yaml:"law_id,omitempty"`
	Name             *string         `json:"name,omitempty" yaml:"name,omitempty"`
	KindName         *string         `json:"kind_name,omitempty" yaml:"kind_name,omitempty"`
	RevisionType     *string         `json:"revision_type,omitempty" yaml:"revision_type,omitempty"`
	EffectiveDate    *int            `json:"effective_date,omitempty" yaml:"effective_date,omitempty"`
	PromulgationDate *int            `json:"promulgation_date,omitempty" yaml:"promulgation_date,omitempty"`
	Organisations    []Organisation  `json:"organisations,omitempty" yaml:"organisations,omitempty"`
	Changes          []ArticleChange `json:"changes,omitempty" yaml:"changes,omitempty"`

	Unexpected UnexpectedFields `json:"unexpected,omitempty" yaml:"unexpected,omitempty"`
}
