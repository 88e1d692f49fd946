package comwel

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lawdata/internal/core/domain"
)

const casePage = `<html><body>
<div class="info">
  <ul><li class="item1">판 결 선 고</li><li class="item2"> 2019. 5. 10. </li></ul>
  <ul><li class="item1">변론종결</li><li class="item2">2019.04.12</li></ul>
  <ul><li class="item1">전심판결</li><li class="item2"></li></ul>
  <ul><li class="item1"></li><li class="item2">orphan</li></ul>
</div>
</body></html>`

func mustDocument(t *testing.T, s string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}

func TestParseMetadata(t *testing.T) {
	meta := ParseMetadata(mustDocument(t, casePage))

	assert.Equal(t, map[string]string{
		"판결선고": "2019. 5. 10.",
		"변론종결": "2019.04.12",
	}, meta)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"20190510", 20190510, true},
		{"2019.05.10", 20190510, true},
		{"2019. 5. 10.", 20190510, true},
		{"2019.5.1", 20190501, true},
		{"2019.5", 0, false},
		{"unknown", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDate(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMerge(t *testing.T) {
	date := func(d int) *int { return &d }
	meta := map[string]string{LabelDecisionDate: "2019. 5. 10."}

	tests := []struct {
		name        string
		date        *int
		meta        map[string]string
		wantChanged bool
		wantDate    *int
	}{
		{"missing date", nil, meta, true, date(20190510)},
		{"sentinel date", date(SentinelDecisionDate), meta, true, date(20190510)},
		{"real date kept", date(20180101), meta, false, date(20180101)},
		{"no metadata", nil, nil, false, nil},
		{"unreadable", nil, map[string]string{LabelDecisionDate: "미상"}, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &domain.Precedent{DecisionDate: tt.date}
			assert.Equal(t, tt.wantChanged, Merge(p, tt.meta))
			assert.Equal(t, tt.wantDate, p.DecisionDate)
		})
	}
}

func TestPageID(t *testing.T) {
	assert.Equal(t, "2018구합1234_서울행정법원", PageID("2018구합1234", "서울행정법원"))
}
