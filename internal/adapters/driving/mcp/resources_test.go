package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lawdata/internal/core/domain"
)

func TestExtractID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		kind     string
		expected int
	}{
		{"statute", "lawdata://statutes/253527", "statutes/", 253527},
		{"precedent", "lawdata://precedents/228541", "precedents/", 228541},
		{"wrong kind", "lawdata://precedents/228541", "statutes/", 0},
		{"invalid prefix", "file://statutes/1", "statutes/", 0},
		{"not a number", "lawdata://statutes/civil", "statutes/", 0},
		{"empty URI", "", "statutes/", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractID(tt.uri, tt.kind))
		})
	}
}

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: uri}}
}

func TestServer_handleStatuteResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns JSON", func(t *testing.T) {
		server, statutes, _ := newTestServer(t)
		statutes.content = &domain.ContentResult[domain.Statute]{Content: &domain.Statute{}}

		result, err := server.handleStatuteResource(ctx, readRequest("lawdata://statutes/253527"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Equal(t, int64(253527), statutes.lastRequest.MST)
	})

	t.Run("empty content is not found", func(t *testing.T) {
		server, _, _ := newTestServer(t)

		_, err := server.handleStatuteResource(ctx, readRequest("lawdata://statutes/1"))

		assert.Error(t, err)
	})

	t.Run("bad uri is not found", func(t *testing.T) {
		server, _, _ := newTestServer(t)

		_, err := server.handleStatuteResource(ctx, readRequest("lawdata://statutes/x"))

		assert.Error(t, err)
	})
}

func TestServer_handlePrecedentResource(t *testing.T) {
	ctx := context.Background()

	t.Run("renders text", func(t *testing.T) {
		server, _, precedents := newTestServer(t)
		date := 20110428
		precedents.resolved = &domain.ResolvedContent{
			SourceSystem: domain.SourcePrimary,
			Record: &domain.Precedent{
				CourtName:    strPtr("대법원"),
				CaseNumber:   strPtr("2010다106702"),
				DecisionDate: &date,
				Content:      strPtr("본문"),
			},
		}

		result, err := server.handlePrecedentResource(ctx, readRequest("lawdata://precedents/7"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "대법원\n2010다106702\n선고 20110428\n\n본문\n", result.Contents[0].Text)
	})

	t.Run("unresolved is not found", func(t *testing.T) {
		server, _, _ := newTestServer(t)

		_, err := server.handlePrecedentResource(ctx, readRequest("lawdata://precedents/7"))

		assert.Error(t, err)
	})
}
