package nts

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/custodia-labs/lawdata/internal/citation"
	"github.com/custodia-labs/lawdata/internal/core/domain"
	"github.com/custodia-labs/lawdata/internal/normalisers/html"
	"github.com/custodia-labs/lawdata/internal/normalisers/jsonfield"
)

// ActionID is the document lookup action of the tax-law system.
const ActionID = "ASIQTB002PR01"

const statusSuccess = "SUCCESS"

// Envelope members.
const (
	fieldStatus     = "status"
	fieldData       = "data"
	fieldDocument   = "dcmDVO"
	fieldEditorList = "dcmHwpEditorDVOList"
	fieldStatutes   = "dcmRltnStttList"
	fieldPrecedents = "trilPsagList"
)

// Document (dcmDVO) members.
const (
	fieldTitle        = "ntstDcmTtl"
	fieldCaseNumber   = "ntstDcmDscmCntn"
	fieldGist         = "ntstDcmGistCntn"
	fieldContent      = "ntstDcmCntn"
	fieldSubject      = "ntstDcmMatrCntn"
	fieldDecisionDate = "ntstDcmDscmDt"
	fieldRelatedLaws  = "ntstDcmRelLgltCntn"

	fieldFileType  = "dcmFleTy"
	fieldFileBytes = "dcmFleByte"
	fieldTextName  = "ntstTextNm"
)

const subjectPrefix = "주제: "

// placeholders mark a content field that only points at the attachment.
var placeholders = []string{"붙임과 같습니다", "이하참조"}

var (
	// 2007.4.19.
	tableDatePattern = regexp.MustCompile(`(\d{4})\.(\d{1,2})\.(\d{1,2})\.`)

	// 판 결 선 고 2007. 4. 19.
	textDatePattern = regexp.MustCompile(`판\s*결\s*선\s*고\s*(\d{4})\s*\.\s*(\d{1,2})\s*\.\s*(\d{1,2})\s*\.`)

	// 사 건 서울행법-2006-구합-1234 양도소득세부과처분취소
	// Captures: (1) case number, (2) case name up to the party labels
	textCasePattern = regexp.MustCompile(`사\s*건\s+([^\s]+)\s+([^원피변]+)`)
)

// ParseResponse parses an action response for one document.
func ParseResponse(envelope map[string]any) (*domain.Precedent, error) {
	status := jsonfield.NewExtractor(envelope, nil).StringOpt(fieldStatus)
	if status == nil || *status != statusSuccess {
		return nil, fmt.Errorf("%w: tax-law status %s", domain.ErrSourceFailed, jsonfield.Serialize(envelope[fieldStatus]))
	}

	action := jsonfield.Object(jsonfield.Object(envelope, fieldData), ActionID)
	if action == nil {
		return nil, fmt.Errorf("%w: tax-law response has no %s.%s", domain.ErrSourceFailed, fieldData, ActionID)
	}
	dvo := jsonfield.Object(action, fieldDocument)
	if dvo == nil {
		return nil, fmt.Errorf("%w: tax-law response has no %s", domain.ErrSourceFailed, fieldDocument)
	}

	ex := jsonfield.NewExtractor(dvo, nil)
	p := &domain.Precedent{}

	if title := ex.StringOpt(fieldTitle); title != nil {
		p.CaseName = nonEmpty(html.PlainText(*title))
	}
	if number := ex.StringOpt(fieldCaseNumber); number != nil {
		p.CaseNumber = nonEmpty(html.PlainText(*number))
	}
	if gist := ex.StringOpt(fieldGist); gist != nil {
		p.Summary = nonEmpty(html.PlainText(*gist))
	}

	content := ex.StringOpt(fieldContent)
	if content != nil {
		p.Content = nonEmpty(html.Clean(*content))
	}
	if content == nil || containsAny(*content, placeholders) {
		if attached := editorHTML(action); attached != "" {
			p.Content = nonEmpty(parseAttachment(attached, p))
		}
	}

	if subject := ex.StringOpt(fieldSubject); subject != nil {
		text := subjectPrefix + html.PlainText(*subject)
		p.DecisionSummary = &text
	}
	if date := ex.DateOpt(fieldDecisionDate); date != nil {
		p.DecisionDate = date
	}

	if laws := ex.StringOpt(fieldRelatedLaws); laws != nil {
		p.ArticleReferences = citation.ParseArticleReferences(html.PlainText(*laws), p.DecisionDate)
	}
	if names := listStrings(action, fieldStatutes, fieldTextName); len(names) > 0 {
		refs := citation.ParseArticleReferences(strings.Join(names, ", "), p.DecisionDate)
		p.ArticleReferences = append(p.ArticleReferences, refs...)
	}
	if numbers := listStrings(action, fieldPrecedents, fieldCaseNumber); len(numbers) > 0 {
		p.PrecedentReferences = citation.ParsePrecedentReferences(strings.Join(numbers, ", "))
	}

	source := domain.DataSourceNTS
	p.DataSource = &source
	return p, nil
}

// editorHTML returns the first HTML attachment of the editor list.
func editorHTML(action map[string]any) string {
	items, err := jsonfield.Normalize(action[fieldEditorList], "")
	if err != nil {
		return ""
	}
	for _, item := range items {
		ex := jsonfield.NewExtractor(item, nil)
		if kind := ex.StringOpt(fieldFileType); kind == nil || *kind != "html" {
			continue
		}
		if body := ex.StringOpt(fieldFileBytes); body != nil {
			return *body
		}
	}
	return ""
}

// parseAttachment fills missing identity fields from the attached decision
// and returns its sanitised markup.
func parseAttachment(fragment string, p *domain.Precedent) string {
	doc, err := html.ParseFragment(fragment)
	if err != nil {
		return html.Clean(fragment)
	}

	doc.Find("table.sebeop_t tbody > tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() != 2 {
			return
		}
		label := strings.Join(strings.Fields(cells.First().Text()), "")
		value := html.Text(cells.Last())

		switch label {
		case "사건":
			applyCaseInfo(value, p)
		case "판결선고":
			if p.DecisionDate == nil {
				p.DecisionDate = matchDate(tableDatePattern, value)
			}
		}
	})

	text := html.Text(doc.Selection)
	if p.DecisionDate == nil {
		p.DecisionDate = matchDate(textDatePattern, text)
	}
	if p.CaseName == nil {
		if m := textCasePattern.FindStringSubmatch(text); m != nil {
			setCourtFromCaseNumber(m[1], p)
			p.CaseName = nonEmpty(strings.TrimSpace(m[2]))
		}
	}

	return html.Clean(fragment)
}

// applyCaseInfo reads "서울행법-2006-구합-1234 양도소득세부과처분취소".
func applyCaseInfo(value string, p *domain.Precedent) {
	parts := strings.SplitN(value, " ", 2)
	setCourtFromCaseNumber(parts[0], p)
	if len(parts) == 2 && p.CaseName == nil {
		p.CaseName = nonEmpty(strings.TrimSpace(parts[1]))
	}
}

func setCourtFromCaseNumber(number string, p *domain.Precedent) {
	if p.CourtName != nil {
		return
	}
	if i := strings.Index(number, "-"); i > 0 {
		court := number[:i]
		p.CourtName = &court
	}
}

func matchDate(pattern *regexp.Regexp, s string) *int {
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	y, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	d, _ := strconv.Atoi(m[3])
	date := y*10000 + mo*100 + d
	return &date
}

// listStrings collects field from every object of parent[list].
func listStrings(parent map[string]any, list, field string) []string {
	items, err := jsonfield.Normalize(parent[list], "")
	if err != nil {
		return nil
	}
	var out []string
	for _, item := range items {
		if s := jsonfield.NewExtractor(item, nil).StringOpt(field); s != nil {
			out = append(out, *s)
		}
	}
	return out
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
