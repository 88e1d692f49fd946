package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCitationService(t *testing.T) {
	service := NewCitationService()

	articles := service.ParseArticles("민법 제750조, 제751조", nil)
	require.Len(t, articles, 2)
	require.NotNil(t, articles[1].LawName)
	assert.Equal(t, "민법", *articles[1].LawName)
	require.NotNil(t, articles[1].ArticleKey)
	assert.Equal(t, 75100, *articles[1].ArticleKey)

	precedents := service.ParsePrecedents("대법원 2011. 4. 28. 선고 2010다106702 판결")
	require.Len(t, precedents, 1)
	require.NotNil(t, precedents[0].CaseNumber)
	assert.Equal(t, "2010다106702", *precedents[0].CaseNumber)
}
