package citation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/custodia-labs/lawdata/internal/core/domain"
	"github.com/custodia-labs/lawdata/internal/normalisers/html"
)

var (
	// 민법, 국세기본법 시행령 -> 국세기본법, 긴급조치
	lawNamePattern = regexp.MustCompile(`([가-힣]+(?:긴급조치|법|령|규칙|규정|조례))`)

	// 동법, 같은 법, 같은법 시행령
	relativeLawPattern = regexp.MustCompile(`(동법|같은\s*법)(?:시행령|시행규칙)?`)

	// 제750조, 제3조의2, 제3의2조, 750조
	// Captures: (1) article, (2) branch before 조, (3) branch after 조
	articlePattern = regexp.MustCompile(`(?:제\s*)?(\d+)(?:의\s*(\d+))?\s*조(?:의\s*(\d+))?`)

	// 가. or (1). at the start of a segment
	listMarkerPattern = regexp.MustCompile(`^(?:[가-힣]\.|\([0-9]+\)\.)`)
)

const olderThanMarker = "전의 것"

// ParseArticleReferences parses a comma separated article reference list.
//
// Segments are also split at "/" when a list marker follows, as in
// "가. 민법 제1조 / 나. 상법 제2조". Index counts every split segment,
// including the empty ones that are skipped. referenceDate is copied onto
// every reference.
func ParseArticleReferences(text string, referenceDate *int) []domain.ArticleReference {
	refs := []domain.ArticleReference{}
	if strings.TrimSpace(text) == "" {
		return refs
	}

	var previous *domain.ArticleReference
	for i, part := range splitArticleSegments(text) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		part = strings.TrimSpace(listMarkerPattern.ReplaceAllString(part, ""))
		if part == "" {
			continue
		}

		ref := parseArticleReference(part, i, previous, referenceDate)
		refs = append(refs, ref)
		previous = &refs[len(refs)-1]
	}
	return refs
}

func parseArticleReference(text string, index int, previous *domain.ArticleReference, referenceDate *int) domain.ArticleReference {
	cleaned := html.StripTags(text)

	return domain.ArticleReference{
		RawText:       text,
		Index:         index,
		LawName:       lawName(cleaned, previous),
		ArticleKey:    articleKey(cleaned),
		ReferenceDate: referenceDate,
		OlderThan:     strings.Contains(cleaned, olderThanMarker),
	}
}

func lawName(text string, previous *domain.ArticleReference) *string {
	if !relativeLawPattern.MatchString(text) {
		if m := lawNamePattern.FindStringSubmatch(text); m != nil {
			name := m[1]
			return &name
		}
	}
	if previous == nil || previous.LawName == nil {
		return nil
	}
	name := *previous.LawName
	return &name
}

func articleKey(text string) *int {
	m := articlePattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	number, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}

	branch := 0
	for _, g := range m[2:] {
		if g == "" {
			continue
		}
		if b, err := strconv.Atoi(g); err == nil {
			branch = b
		}
		break
	}

	key := domain.ArticleKey(number, branch)
	return &key
}

// splitArticleSegments splits at every comma, and at a slash whose
// following text (after spaces) starts with a list marker. Whitespace
// around a slash split point is dropped with the slash.
func splitArticleSegments(text string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case ',':
			parts = append(parts, text[start:i])
			start = i + 1
		case '/':
			rest := strings.TrimLeft(text[i+1:], " \t\r\n")
			if listMarkerPattern.MatchString(rest) {
				parts = append(parts, strings.TrimRight(text[start:i], " \t\r\n"))
				start = len(text) - len(rest)
				i = start - 1
			}
		}
	}
	return append(parts, text[start:])
}
