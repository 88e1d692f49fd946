package precedent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lawdata/internal/normalisers/jsonfield"
)

func decode(t *testing.T, s string) map[string]any {
	t.Helper()
	obj, err := jsonfield.DecodeObject([]byte(s))
	require.NoError(t, err)
	return obj
}

func TestParseList(t *testing.T) {
	root := decode(t, `{
		"PrecSearch": {
			"totalCnt": "1542",
			"prec": [
				{
					"id": "1",
					"판례일련번호": "228541",
					"사건명": "손해배상(기)",
					"사건번호": "2019다12345",
					"선고일자": "2020.01.01",
					"법원명": "대법원",
					"법원종류코드": "400201",
					"사건종류명": "민사",
					"사건종류코드": "400101",
					"판결유형": "판결",
					"선고": "선고",
					"데이터출처명": "대법원",
					"판례상세링크": "/DRF/lawService.do?..."
				},
				{"판례일련번호": 7, "선고일자": "2020.1.1", "데이터출처명": "근로복지공단", "신규": "x"}
			]
		}
	}`)

	items, total := ParseList(root)

	assert.Equal(t, 1542, total)
	require.Len(t, items, 2)
	assert.Equal(t, 228541, *items[0].ID)
	assert.Equal(t, 20200101, *items[0].DecisionDate)
	assert.Equal(t, "400201", *items[0].CourtCode)
	assert.Nil(t, items[0].Unexpected)

	assert.Nil(t, items[1].DecisionDate)
	assert.Equal(t, `"2020.1.1"`, items[1].Unexpected["선고일자"])
	assert.Equal(t, `"x"`, items[1].Unexpected["신규"])
	assert.True(t, items[1].HasDataSource("근로복지공단"))
}

func TestParseList_Empty(t *testing.T) {
	items, total := ParseList(decode(t, `{"PrecSearch": {"totalCnt": 0, "prec": ""}}`))
	assert.Empty(t, items)
	assert.Equal(t, 0, total)

	items, total = ParseList(nil)
	assert.NotNil(t, items)
	assert.Equal(t, 0, total)
}

func TestDigitsDate(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{in: "2020.01.01", want: 20200101, wantOK: true},
		{in: "2020-01-01", want: 20200101, wantOK: true},
		{in: "20200101", want: 20200101, wantOK: true},
		{in: "2020.1.1", wantOK: false},
		{in: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := DigitsDate(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
