package citation

import (
	"regexp"
	"strconv"
)

// Captures: (1) year, (2) case type, (3) serial
var caseNumberCorePattern = regexp.MustCompile(`(\d{2,4})[^가-힣]*(\p{Hangul}+)[^\d]*(\d+)`)

// NormalizeCaseNumber rewrites a case number as year, case type and serial
// with no separators. Two-digit years become four digits (60-99 as 19xx,
// 00-59 as 20xx); three and four digit years are kept. Input that does not
// look like a case number is returned unchanged.
//
//	"82다340"      -> "1982다340"
//	"2019 다 1234" -> "2019다1234"
//	"4290민상165"  -> "4290민상165"
func NormalizeCaseNumber(caseNumber string) string {
	m := caseNumberCorePattern.FindStringSubmatch(caseNumber)
	if m == nil {
		return caseNumber
	}

	year := m[1]
	if len(year) == 2 {
		if y, _ := strconv.Atoi(year); y >= 60 {
			year = "19" + year
		} else {
			year = "20" + year
		}
	}
	return year + m[2] + m[3]
}
