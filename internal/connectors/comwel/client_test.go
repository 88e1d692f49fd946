package comwel

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lawdata/internal/core/domain"
	casepage "github.com/custodia-labs/lawdata/internal/normalisers/comwel"
)

const casePage = `<html><body><div class="info">
<ul><li class="item1">판결선고</li><li class="item2">2019.05.10</li></ul>
<ul><li class="item1">변론종결</li><li class="item2">2019.04.12</li></ul>
</div></body></html>`

type pageServer struct {
	mu    sync.Mutex
	ids   []string
	calls int
}

func (s *pageServer) requested() ([]string, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ids, s.calls
}

func newTestClient(t *testing.T, status int) (*Client, *pageServer) {
	t.Helper()
	ps := &pageServer{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ps.mu.Lock()
		ps.ids = append(ps.ids, r.URL.Query().Get("id"))
		ps.calls++
		ps.mu.Unlock()

		w.Header().Set("Content-Type", "text/html; charset=UTF-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(casePage))
	}))
	t.Cleanup(srv.Close)

	httpClient := &http.Client{}
	t.Cleanup(httpClient.CloseIdleConnections)
	return NewClient(Config{PageURL: srv.URL + "/service/dataView"}, httpClient), ps
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestSupplement(t *testing.T) {
	tests := []struct {
		name        string
		record      domain.Precedent
		wantChanged bool
		wantDate    *int
		wantCalls   int
	}{
		{
			name:        "sentinel date replaced",
			record:      domain.Precedent{CaseNumber: strPtr("2018구합1234"), CourtName: strPtr("서울행정법원"), DecisionDate: intPtr(casepage.SentinelDecisionDate)},
			wantChanged: true,
			wantDate:    intPtr(20190510),
			wantCalls:   1,
		},
		{
			name:        "missing date filled",
			record:      domain.Precedent{CaseNumber: strPtr("2018구합1234"), CourtName: strPtr("서울행정법원")},
			wantChanged: true,
			wantDate:    intPtr(20190510),
			wantCalls:   1,
		},
		{
			name:      "real date kept without request",
			record:    domain.Precedent{CaseNumber: strPtr("2018구합1234"), CourtName: strPtr("서울행정법원"), DecisionDate: intPtr(20180101)},
			wantDate:  intPtr(20180101),
			wantCalls: 0,
		},
		{
			name:      "no court name",
			record:    domain.Precedent{CaseNumber: strPtr("2018구합1234")},
			wantCalls: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ps := newTestClient(t, http.StatusOK)
			record := tt.record

			changed, err := c.Supplement(context.Background(), &record)
			require.NoError(t, err)

			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, tt.wantDate, record.DecisionDate)
			ids, calls := ps.requested()
			assert.Equal(t, tt.wantCalls, calls)
			if calls > 0 {
				assert.Equal(t, []string{"2018구합1234_서울행정법원"}, ids)
			}
		})
	}
}

func TestSupplement_PageError(t *testing.T) {
	c, _ := newTestClient(t, http.StatusInternalServerError)
	record := domain.Precedent{CaseNumber: strPtr("2018구합1234"), CourtName: strPtr("서울행정법원")}

	changed, err := c.Supplement(context.Background(), &record)
	assert.ErrorIs(t, err, domain.ErrUnexpectedStatus)
	assert.False(t, changed)
	assert.Nil(t, record.DecisionDate)
}
