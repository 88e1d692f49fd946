package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("missing statute service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{Precedent: &mockPrecedentService{}})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingStatuteService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Statute:   &mockStatuteService{},
			Precedent: &mockPrecedentService{},
		})
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ports   *Ports
		wantErr error
	}{
		{
			name:    "empty",
			ports:   &Ports{},
			wantErr: ErrMissingStatuteService,
		},
		{
			name:    "precedent missing",
			ports:   &Ports{Statute: &mockStatuteService{}},
			wantErr: ErrMissingPrecedentService,
		},
		{
			name:  "citation is optional",
			ports: &Ports{Statute: &mockStatuteService{}, Precedent: &mockPrecedentService{}},
		},
		{
			name: "all ports",
			ports: &Ports{
				Statute:   &mockStatuteService{},
				Precedent: &mockPrecedentService{},
				Citation:  &mockCitationService{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
