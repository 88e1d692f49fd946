package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaging_Normalised(t *testing.T) {
	tests := []struct {
		name string
		in   Paging
		want Paging
	}{
		{"zero", Paging{}, Paging{Page: 1, Display: 20}},
		{"kept", Paging{Page: 3, Display: 50}, Paging{Page: 3, Display: 50}},
		{"capped", Paging{Page: 2, Display: 500}, Paging{Page: 2, Display: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalised())
		})
	}
}

func TestRequests_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     interface{ Validate() error }
		wantErr bool
	}{
		{"statute by id", StatuteRequest{ID: 1747}, false},
		{"statute by mst", StatuteRequest{MST: 253527}, false},
		{"statute by name", StatuteRequest{Name: "민법"}, false},
		{"statute empty", StatuteRequest{}, true},
		{"statute bad language", StatuteRequest{ID: 1, Language: "EN"}, true},
		{"effective by id", EffectiveStatuteRequest{ID: 1747}, false},
		{"effective mst without date", EffectiveStatuteRequest{MST: 1}, true},
		{"effective mst with date", EffectiveStatuteRequest{MST: 1, EffectiveDate: 20240101}, false},
		{"history", ArticleHistoryRequest{ID: 1747}, false},
		{"history empty", ArticleHistoryRequest{}, true},
		{"precedent", PrecedentRequest{ID: 228541}, false},
		{"precedent empty", PrecedentRequest{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
