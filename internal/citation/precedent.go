package citation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/custodia-labs/lawdata/internal/core/domain"
	"github.com/custodia-labs/lawdata/internal/normalisers/html"
)

var (
	// 대법원, 서울고등법원, 헌법재판소
	courtNamePattern = regexp.MustCompile(`([가-힣]+(?:법원|재판소))`)

	// 2020. 1. 1. or 2020.1.1
	// Captures: (1) year, (2) month, (3) day
	decisionDatePattern = regexp.MustCompile(`(\d{4})\s*\.\s*(\d{1,2})\s*\.\s*(\d{1,2})\s*\.?`)

	// 4290민상165, 82다340, 2019다12345
	caseNumberPattern = regexp.MustCompile(`(\d{2,4}[가-힣]{1,4}\d+)`)
)

// ParsePrecedentReferences parses a comma separated precedent reference list
// such as "대법원 2020. 1. 1. 선고 2019다12345 판결, 82다340".
func ParsePrecedentReferences(text string) []domain.PrecedentReference {
	refs := []domain.PrecedentReference{}
	if strings.TrimSpace(text) == "" {
		return refs
	}

	for i, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		refs = append(refs, parsePrecedentReference(part, i))
	}
	return refs
}

func parsePrecedentReference(text string, index int) domain.PrecedentReference {
	cleaned := html.StripTags(text)
	ref := domain.PrecedentReference{RawText: text, Index: index}

	if m := courtNamePattern.FindStringSubmatch(cleaned); m != nil {
		court := m[1]
		ref.CourtName = &court
	}
	if m := decisionDatePattern.FindStringSubmatch(cleaned); m != nil {
		y, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		d, _ := strconv.Atoi(m[3])
		date := y*10000 + mo*100 + d
		ref.DecisionDate = &date
	}
	if m := caseNumberPattern.FindStringSubmatch(cleaned); m != nil {
		number := NormalizeCaseNumber(m[1])
		ref.CaseNumber = &number
	}
	return ref
}
