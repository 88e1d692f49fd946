package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lawdata/internal/core/domain"
)

func TestStatuteService_Get(t *testing.T) {
	tests := []struct {
		name          string
		effectiveDate int
		wantEffective bool
	}{
		{"current text", 0, false},
		{"as in force", 20240101, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := &mockStatuteSource{}
			service := NewStatuteService(source)
			req := domain.StatuteRequest{MST: 253527, Article: 2, Language: domain.LanguageKorean}

			_, err := service.Get(context.Background(), req, tt.effectiveDate)
			require.NoError(t, err)

			if tt.wantEffective {
				assert.Empty(t, source.getRequests)
				assert.Equal(t, []domain.EffectiveStatuteRequest{{
					MST: 253527, EffectiveDate: 20240101, Article: 2, Language: domain.LanguageKorean,
				}}, source.effectiveRequests)
				return
			}
			assert.Equal(t, []domain.StatuteRequest{req}, source.getRequests)
			assert.Empty(t, source.effectiveRequests)
		})
	}
}

func TestStatuteService_SearchAndHistory(t *testing.T) {
	source := &mockStatuteSource{}
	service := NewStatuteService(source)

	result, err := service.Search(context.Background(), domain.StatuteQuery{Paging: domain.Paging{Page: 2}})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Page)

	_, err = service.History(context.Background(), domain.ArticleHistoryRequest{ID: 1747, Article: 200})
	require.NoError(t, err)
	require.Len(t, source.historyRequests, 1)
	assert.Equal(t, 200, source.historyRequests[0].Article)
}
