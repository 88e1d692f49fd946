package precedent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/custodia-labs/lawdata/internal/citation"
	"github.com/custodia-labs/lawdata/internal/core/domain"
	"github.com/custodia-labs/lawdata/internal/normalisers/html"
)

// Section headers of the printable decision page.
const (
	sectionSummary            = "판시사항"
	sectionDecisionSummary    = "판결요지"
	sectionArticleReferences  = "참조조문"
	sectionPrecedentReference = "참조판례"
	sectionFullText           = "전문"

	fullTextMarker = "【전문】"
)

var (
	// 【판시사항】, 【 전 문 】
	sectionHeader = regexp.MustCompile(`【([^】]+)】`)

	yearToken     = regexp.MustCompile(`^\d{4}\.$`)
	monthDayToken = regexp.MustCompile(`^\d{1,2}\.$`)
)

// decisionTypeWords mark the decision type in the bracketed page header.
var decisionTypeWords = []string{"판결", "결정", "전원합의체", "합의부"}

// ParsePage reads a printable decision page (precInfoP.do?mode=print).
//
// Identity comes from the hidden precSeq, precNo and precNm inputs. The
// first bracketed header "[대법원 2020. 1. 1. 선고 2019다12345 판결]"
// gives the court, the decision date and the decision type. Sections are
// cut between consecutive 【...】 headers and the content is the sanitised
// markup after 【전문】.
func ParsePage(doc *goquery.Document) *domain.Precedent {
	p := &domain.Precedent{}

	if seq := hiddenInput(doc, "precSeq"); seq != "" {
		if id, err := strconv.Atoi(seq); err == nil {
			p.ID = &id
		}
	}
	if no := hiddenInput(doc, "precNo"); no != "" {
		p.CaseNumber = &no
	}
	if name := hiddenInput(doc, "precNm"); name != "" {
		p.CaseName = &name
	}

	body := doc.Find("body")
	text := html.Text(body)

	parseHeader(text, p)

	p.Summary = section(text, sectionSummary, sectionDecisionSummary)
	p.DecisionSummary = section(text, sectionDecisionSummary, sectionArticleReferences)
	if refs := section(text, sectionArticleReferences, sectionPrecedentReference); refs != nil {
		p.ArticleReferences = citation.ParseArticleReferences(*refs, p.DecisionDate)
	}
	if refs := section(text, sectionPrecedentReference, sectionFullText); refs != nil {
		p.PrecedentReferences = citation.ParsePrecedentReferences(*refs)
	}

	if markup, err := body.Html(); err == nil {
		if i := strings.Index(markup, fullTextMarker); i >= 0 {
			p.Content = nonEmpty(html.Clean(markup[i+len(fullTextMarker):]))
		}
	}
	return p
}

func hiddenInput(doc *goquery.Document, id string) string {
	value, _ := doc.Find(`input[type=hidden]#` + id).First().Attr("value")
	return strings.TrimSpace(value)
}

// parseHeader reads "[court yyyy. m. d. ...]". The date tokens are looked
// for among the three tokens after the court; the decision type is the
// first token from the sixth on that names one.
func parseHeader(text string, p *domain.Precedent) {
	start := strings.IndexByte(text, '[')
	if start < 0 {
		return
	}
	end := strings.IndexByte(text[start:], ']')
	if end < 0 {
		return
	}
	parts := strings.Fields(text[start+1 : start+end])
	if len(parts) == 0 {
		return
	}

	court := parts[0]
	p.CourtName = &court

	var year, month, day string
	for i := 1; i < len(parts) && i <= 3; i++ {
		switch {
		case yearToken.MatchString(parts[i]):
			year = strings.TrimSuffix(parts[i], ".")
		case monthDayToken.MatchString(parts[i]):
			if month == "" {
				month = strings.TrimSuffix(parts[i], ".")
			} else {
				day = strings.TrimSuffix(parts[i], ".")
			}
		}
	}
	if year != "" && month != "" && day != "" {
		y, _ := strconv.Atoi(year)
		m, _ := strconv.Atoi(month)
		d, _ := strconv.Atoi(day)
		date := y*10000 + m*100 + d
		p.DecisionDate = &date
	}

	for i := 5; i < len(parts); i++ {
		if containsAny(parts[i], decisionTypeWords) {
			kind := parts[i]
			p.DecisionType = &kind
			break
		}
	}
}

// section returns the text between the 【start】 header and the following
// 【end】 header. Header names are compared with whitespace removed.
func section(text, start, end string) *string {
	from, to := -1, -1
	for _, m := range sectionHeader.FindAllStringSubmatchIndex(text, -1) {
		header := strings.Join(strings.Fields(text[m[2]:m[3]]), "")
		if from < 0 {
			if header == start {
				from = m[1]
			}
			continue
		}
		if header == end {
			to = m[0]
			break
		}
	}
	if from < 0 || to < 0 {
		return nil
	}
	return nonEmpty(strings.TrimSpace(text[from:to]))
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
