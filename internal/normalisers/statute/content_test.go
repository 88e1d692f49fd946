package statute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statuteContentJSON = `{
	"법령": {
		"법령키": "0001231994081520240101",
		"기본정보": {
			"법령ID": "001123",
			"법령명_한글": "민법",
			"법령명_한자": "民法",
			"시행일자": "20240101",
			"공포일자": "20231226",
			"공포번호": "19852",
			"제개정구분": "일부개정",
			"언어": "한글",
			"공포법령여부": "Y",
			"제명변경여부": "N",
			"편장절관": "01000000",
			"소관부처": {"content": "법무부", "소관부처코드": "1270000"},
			"법종구분": {"content": "법률", "법종구분코드": "A0002"},
			"연락부서": {"부서단위": {"부서키": "1270000_1", "부서명": "법무심의관실", "부서연락처": "02-2110-3164"}},
			"공동부령정보": ""
		},
		"조문": {
			"조문단위": [
				{"조문번호": "1", "조문키": "0001000", "조문여부": "전문", "조문내용": "제1편 총칙"},
				{"조문번호": "1", "조문키": "0001001", "조문여부": "조문", "조문내용": "제1조(법원)"},
				{"조문번호": "3", "조문가지번호": "2", "조문키": "0003002", "조문여부": "조문", "조문내용": "제3조의2"}
			]
		},
		"부칙": {
			"부칙단위": {"부칙키": "2023122619852", "부칙공포일자": "20231226", "부칙공포번호": "19852", "부칙내용": [["부칙"], ["이 법은 공포한 날부터 시행한다."]]}
		},
		"별표": "",
		"제개정이유": {"제개정이유내용": [["개정이유"]]},
		"개정문": {"개정문내용": ["국회에서 의결된", "민법 일부개정법률을 공포한다."]}
	}
}`

// TestParseContent tests a full statute content response.
func TestParseContent(t *testing.T) {
	got := ParseContent(decode(t, statuteContentJSON))
	require.NotNil(t, got)

	require.NotNil(t, got.Info)
	assert.Equal(t, 1123, *got.Info.LawID)
	assert.Equal(t, "민법", *got.Info.Name)
	assert.Equal(t, 20240101, *got.Info.EffectiveDate)
	assert.Equal(t, 19852, *got.Info.PromulgationNo)
	assert.True(t, *got.Info.Promulgated)
	assert.Equal(t, 1000000, *got.Info.Chapter)
	assert.Equal(t, "1270000", *got.Info.Organisation.Code)
	assert.Equal(t, "법률", *got.Info.Kind.Name)
	require.Len(t, got.Info.Departments, 1)
	assert.Equal(t, "법무심의관실", *got.Info.Departments[0].Name)
	assert.Empty(t, got.Info.CoOrdinances)

	require.Len(t, got.Articles, 3)
	assert.True(t, got.Articles[0].IsHeading())
	index := got.ArticleIndex()
	assert.Len(t, index, 2)
	assert.Equal(t, "제3조의2", *index[302].Content)

	require.Len(t, got.Addenda, 1)
	assert.Equal(t, int64(2023122619852), *got.Addenda[0].Key)
	assert.Equal(t, "부칙\n\n이 법은 공포한 날부터 시행한다.", *got.Addenda[0].Content)
	assert.Empty(t, got.Appendices)

	assert.Equal(t, "개정이유", *got.RevisionReason)
	assert.Equal(t, "국회에서 의결된\n민법 일부개정법률을 공포한다.", *got.AmendmentText)
	assert.Nil(t, got.Unexpected)
}

func TestParseContent_Unexpected(t *testing.T) {
	got := ParseContent(decode(t, `{
		"법령": {
			"기본정보": {"법령ID": 1, "법령명_한글": "x", "시행일자": "bad", "공포일자": 20200101, "공포번호": 1, "제개정구분": "제정", "신규": 1},
			"조문": {"조문단위": 5},
			"미지": true
		}
	}`))
	require.NotNil(t, got)

	assert.Equal(t, `"bad"`, got.Unexpected["기본정보.시행일자"])
	assert.Equal(t, "1", got.Unexpected["기본정보.신규"])
	assert.Equal(t, `{"조문단위":5}`, got.Unexpected["조문.조문단위"])
	assert.Equal(t, "true", got.Unexpected["미지"])
	assert.Empty(t, got.Articles)
}

func TestParseContent_Missing(t *testing.T) {
	assert.Nil(t, ParseContent(map[string]any{"Law": "일치하는 법령이 없습니다."}))
}

func TestParseAppendix(t *testing.T) {
	got := ParseContent(decode(t, `{
		"법령": {
			"기본정보": {"법령ID": 1, "법령명_한글": "x", "시행일자": 20200101, "공포일자": 20200101, "공포번호": 1, "제개정구분": "제정"},
			"별표": {"별표단위": [
				{"별표키": "000100", "별표번호": "0001", "별표가지번호": "00", "별표구분": "별표", "별표제목": "수수료", "별표이미지파일명": "a.gif"},
				{"별표키": "000200", "별표번호": "0002", "별표이미지파일명": ["b.gif", "c.gif"]}
			]}
		}
	}`))
	require.NotNil(t, got)
	require.Len(t, got.Appendices, 2)

	assert.Equal(t, 1, *got.Appendices[0].Number)
	assert.Equal(t, []string{"a.gif"}, got.Appendices[0].ImageFilenames)
	assert.Equal(t, []string{"b.gif", "c.gif"}, got.Appendices[1].ImageFilenames)
	assert.Nil(t, got.Appendices[0].Unexpected)
}
