package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCitationsArticleCmd(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "citations", "article", "민법 제750조, 동법 제751조", "--date", "19600818")

	require.NoError(t, err)
	assert.Contains(t, out, `"article_key":75000`)
	assert.Contains(t, out, `"article_key":75100`)
	assert.Contains(t, out, `"reference_date":19600818`)
}

func TestCitationsPrecedentCmd_YAML(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "citations", "precedent", "대법원 1982. 6. 22. 선고 82다340 판결", "--output", "yaml")

	require.NoError(t, err)
	assert.Contains(t, out, "case_number: 1982다340")
	assert.Contains(t, out, "decision_date: 19820622")
}

func TestCitationsCmd_WithoutServices(t *testing.T) {
	setupTestServices(t)
	citationService = nil

	_, err := execute(t, "citations", "precedent", "82다340")

	require.NoError(t, err)
	assert.NotNil(t, citationService)
}
