package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lawdata/internal/core/domain"
)

func TestParseArticle(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "", want: 0},
		{in: "750", want: 75000},
		{in: "제750조", want: 75000},
		{in: "3의2", want: 302},
		{in: "제3조의2", want: 302},
		{in: "3-2", want: 302},
		{in: "조", wantErr: true},
		{in: "3의100", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseArticle(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatuteSearchCmd(t *testing.T) {
	statutes, _, _ := setupTestServices(t)

	out, err := execute(t, "statute", "search", "민법", "--full-text", "--page", "2", "-n", "50")

	require.NoError(t, err)
	assert.Equal(t, "민법", statutes.lastQuery.Query)
	assert.Equal(t, domain.SearchBody, statutes.lastQuery.Scope)
	assert.Equal(t, 2, statutes.lastQuery.Page)
	assert.Equal(t, 50, statutes.lastQuery.Display)
	assert.Contains(t, out, `"items":[]`)
}

func TestStatuteGetCmd(t *testing.T) {
	statutes, _, _ := setupTestServices(t)
	statutes.content = &domain.ContentResult[domain.Statute]{Content: &domain.Statute{}}

	_, err := execute(t, "statute", "get", "--mst", "253527", "--jo", "3의2", "--ef-yd", "20240101", "--lang", "ori")

	require.NoError(t, err)
	assert.Equal(t, int64(253527), statutes.lastRequest.MST)
	assert.Equal(t, 302, statutes.lastRequest.Article)
	assert.Equal(t, domain.LanguageOriginal, statutes.lastRequest.Language)
	assert.Equal(t, 20240101, statutes.lastEffective)
}

func TestStatuteGetCmd_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"no identifier", []string{"statute", "get"}, domain.ErrInvalidInput},
		{"bad id", []string{"statute", "get", "abc"}, domain.ErrInvalidInput},
		{"bad language", []string{"statute", "get", "1706", "--lang", "en"}, domain.ErrInvalidInput},
		{"empty content", []string{"statute", "get", "1706"}, domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestServices(t)
			_, err := execute(t, tt.args...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStatuteHistoryCmd(t *testing.T) {
	statutes, _, _ := setupTestServices(t)

	_, err := execute(t, "statute", "history", "1706", "--jo", "750", "--reg-date", "20240101")

	require.NoError(t, err)
	assert.Equal(t, 1706, statutes.lastHistory.ID)
	assert.Equal(t, 75000, statutes.lastHistory.Article)
	assert.Equal(t, 20240101, statutes.lastHistory.RegisteredDate)
}
