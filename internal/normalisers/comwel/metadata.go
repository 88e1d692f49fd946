package comwel

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/custodia-labs/lawdata/internal/core/domain"
	"github.com/custodia-labs/lawdata/internal/logger"
	"github.com/custodia-labs/lawdata/internal/normalisers/html"
)

// SentinelDecisionDate is the placeholder decision date the open API
// reports for some collected decisions (year 1, month 1, day 1).
// Records carrying it are treated as having no decision date.
const SentinelDecisionDate = 10101

// Metadata labels on the case page.
const (
	LabelDecisionDate = "판결선고"
	LabelClosingDate  = "변론종결"
	LabelLowerCourt   = "전심판결"
)

var dateSeparators = regexp.MustCompile(`[.\s]+`)

// ParseMetadata reads the label/value pairs from the info block of a case
// page. Labels have their whitespace removed. Pairs with an empty label or
// value are skipped.
func ParseMetadata(doc *goquery.Document) map[string]string {
	meta := make(map[string]string)
	doc.Find("div.info ul").Each(func(_ int, ul *goquery.Selection) {
		key := strings.Join(strings.Fields(ul.Find("li.item1").First().Text()), "")
		value := html.Text(ul.Find("li.item2").First())
		if key == "" || value == "" {
			return
		}
		meta[key] = value
	})
	return meta
}

// Merge copies metadata into p and reports whether p changed.
// The decision date is only filled when p has none or carries the sentinel.
func Merge(p *domain.Precedent, meta map[string]string) bool {
	if p == nil || len(meta) == 0 {
		return false
	}

	changed := false
	if raw, ok := meta[LabelDecisionDate]; ok && NeedsDecisionDate(p) {
		if date, ok := ParseDate(raw); ok {
			p.DecisionDate = &date
			changed = true
		} else {
			logger.Warn("comwel: unreadable decision date %q", raw)
		}
	}

	if v, ok := meta[LabelClosingDate]; ok {
		logger.Debug("comwel: %s %s", LabelClosingDate, v)
	}
	if v, ok := meta[LabelLowerCourt]; ok {
		logger.Debug("comwel: %s %s", LabelLowerCourt, v)
	}
	return changed
}

// NeedsDecisionDate reports whether p lacks a usable decision date.
func NeedsDecisionDate(p *domain.Precedent) bool {
	return p.DecisionDate == nil || *p.DecisionDate == SentinelDecisionDate
}

// ParseDate reads "2019.05.10", "2019. 5. 10." or "20190510" as YYYYMMDD.
func ParseDate(s string) (int, bool) {
	compact := strings.ReplaceAll(strings.Join(strings.Fields(s), ""), ".", "")
	if len(compact) == 8 {
		if n, err := strconv.Atoi(compact); err == nil {
			return n, true
		}
	}

	parts := dateSeparators.Split(strings.TrimSpace(s), -1)
	if len(parts) < 3 {
		return 0, false
	}
	var ymd [3]int
	for i := range ymd {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return 0, false
		}
		ymd[i] = n
	}
	return ymd[0]*10000 + ymd[1]*100 + ymd[2], true
}

// PageID is the id query value of the case page for a record.
func PageID(caseNumber, courtName string) string {
	return caseNumber + "_" + courtName
}
