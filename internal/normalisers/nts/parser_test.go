package nts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lawdata/internal/core/domain"
	"github.com/custodia-labs/lawdata/internal/normalisers/jsonfield"
)

func decode(t *testing.T, s string) map[string]any {
	t.Helper()
	obj, err := jsonfield.DecodeObject([]byte(s))
	require.NoError(t, err)
	return obj
}

func TestParseResponse(t *testing.T) {
	envelope := decode(t, `{
		"status": "SUCCESS",
		"data": {
			"ASIQTB002PR01": {
				"dcmDVO": {
					"ntstDcmTtl": "<p>양도소득세 부과처분 취소</p>",
					"ntstDcmDscmCntn": "서울행법-2006-구합-1234",
					"ntstDcmGistCntn": "<b>요지</b> 본문",
					"ntstDcmCntn": "<p>판결 내용</p><script>x()</script>",
					"ntstDcmMatrCntn": "양도소득세",
					"ntstDcmDscmDt": "20070419",
					"ntstDcmRelLgltCntn": "소득세법 제94조"
				},
				"dcmRltnStttList": [{"ntstTextNm": "소득세법 제96조"}],
				"trilPsagList": [{"ntstDcmDscmCntn": "대법원 2005. 1. 1. 선고 2004두1234 판결"}]
			}
		}
	}`)

	p, err := ParseResponse(envelope)
	require.NoError(t, err)

	assert.Equal(t, "양도소득세 부과처분 취소", *p.CaseName)
	assert.Equal(t, "서울행법-2006-구합-1234", *p.CaseNumber)
	assert.Equal(t, "요지 본문", *p.Summary)
	assert.Equal(t, "<p>판결 내용</p>", *p.Content)
	assert.Equal(t, "주제: 양도소득세", *p.DecisionSummary)
	assert.Equal(t, 20070419, *p.DecisionDate)
	assert.Equal(t, domain.DataSourceNTS, *p.DataSource)

	require.Len(t, p.ArticleReferences, 2)
	assert.Equal(t, "소득세법", *p.ArticleReferences[0].LawName)
	assert.Equal(t, "소득세법", *p.ArticleReferences[1].LawName)
	require.Len(t, p.PrecedentReferences, 1)
}

func TestParseResponse_Attachment(t *testing.T) {
	attachment := `<table class="sebeop_t"><tbody>` +
		`<tr><td>사 건</td><td>서울행법-2006-구합-1234 양도소득세부과처분취소</td></tr>` +
		`<tr><td>판결선고</td><td>2007.4.19.</td></tr>` +
		`<tr><td>원고</td><td>홍길동</td></tr>` +
		`</tbody></table><p>주 문</p>`

	envelope := map[string]any{
		"status": "SUCCESS",
		"data": map[string]any{
			ActionID: map[string]any{
				"dcmDVO": map[string]any{
					"ntstDcmCntn": "붙임과 같습니다",
				},
				"dcmHwpEditorDVOList": []any{
					map[string]any{"dcmFleTy": "hwp", "dcmFleByte": "binary"},
					map[string]any{"dcmFleTy": "html", "dcmFleByte": attachment},
				},
			},
		},
	}

	p, err := ParseResponse(envelope)
	require.NoError(t, err)

	assert.Equal(t, "서울행법", *p.CourtName)
	assert.Equal(t, "양도소득세부과처분취소", *p.CaseName)
	assert.Equal(t, 20070419, *p.DecisionDate)
	require.NotNil(t, p.Content)
	assert.Contains(t, *p.Content, "주 문")
	assert.NotContains(t, *p.Content, "붙임과 같습니다")
}

func TestParseResponse_PlainTextFallback(t *testing.T) {
	attachment := `<p>사 건  대전지법-2010-구합-55 종합소득세부과처분취소 원 고 갑</p>` +
		`<p>판 결 선 고 2011. 3. 9.</p>`

	envelope := map[string]any{
		"status": "SUCCESS",
		"data": map[string]any{
			ActionID: map[string]any{
				"dcmDVO": map[string]any{},
				"dcmHwpEditorDVOList": map[string]any{
					"dcmFleTy": "html", "dcmFleByte": attachment,
				},
			},
		},
	}

	p, err := ParseResponse(envelope)
	require.NoError(t, err)

	assert.Equal(t, "대전지법", *p.CourtName)
	assert.Equal(t, "종합소득세부과처분취소", *p.CaseName)
	assert.Equal(t, 20110309, *p.DecisionDate)
}

func TestParseResponse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		envelope map[string]any
	}{
		{"failure status", map[string]any{"status": "FAIL"}},
		{"no status", map[string]any{}},
		{"no action", map[string]any{"status": "SUCCESS", "data": map[string]any{}}},
		{"no document", map[string]any{
			"status": "SUCCESS",
			"data":   map[string]any{ActionID: map[string]any{}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseResponse(tt.envelope)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, domain.ErrSourceFailed)
		})
	}
}
