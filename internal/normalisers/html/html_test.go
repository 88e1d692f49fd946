package html

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "plain", input: "양도소득세 부과처분 취소", want: "양도소득세 부과처분 취소"},
		{name: "tags", input: "<p>조세<br/>심판</p>", want: "조세심판"},
		{name: "whitespace", input: "<div>  a \n\t b  </div>", want: "a b"},
		{name: "entities", input: "A &amp; B", want: "A & B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.input))
		})
	}
}

func TestClean(t *testing.T) {
	got := Clean(`<p onclick="x()">본문<script>alert(1)</script></p><table><tr><td>셀</td></tr></table>`)

	assert.Contains(t, got, "<p>본문</p>")
	assert.Contains(t, got, "<td>셀</td>")
	assert.NotContains(t, got, "script")
	assert.NotContains(t, got, "onclick")
	assert.Equal(t, "", Clean("   "))
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "  ", want: ""},
		{name: "link", input: `<a href="x">민법</a> 제750조`, want: "민법 제750조"},
		{name: "script dropped", input: "본문<script>alert(1)</script>", want: "본문"},
		{name: "entities", input: "A &amp; B", want: "A & B"},
		{name: "angle text kept", input: "제3조 &lt;개정 2020. 1. 1.&gt;", want: "제3조 <개정 2020. 1. 1.>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripTags(tt.input))
		})
	}
}

func TestParse_Charset(t *testing.T) {
	// "판례" in EUC-KR.
	body := []byte("<html><body><p>\xc6\xc7\xb7\xca</p></body></html>")

	doc, err := ParseBytes(body, "text/html; charset=euc-kr")
	require.NoError(t, err)
	assert.Equal(t, "판례", Text(doc.Find("p")))
}

func TestDecode(t *testing.T) {
	text, err := Decode([]byte("<p>\xc6\xc7\xb7\xca</p>"), "text/html; charset=euc-kr")
	require.NoError(t, err)
	assert.Equal(t, "<p>판례</p>", text)
}

func TestNormalize(t *testing.T) {
	decomposed := "\u1111\u1161\u11ab"
	assert.Equal(t, "판", Normalize(decomposed))
	assert.Equal(t, "a b", Normalize(strings.Repeat(" ", 3)+"a\n\nb "))
}
