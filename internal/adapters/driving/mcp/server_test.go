package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil lookup service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{DatasetPath: testDataset})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingLookupService)
	})

	t.Run("empty dataset path returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{Lookup: &mockLookupService{}})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingDatasetPath)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Lookup:      &mockLookupService{},
			DatasetPath: testDataset,
		})
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_TopN(t *testing.T) {
	tests := []struct {
		name      string
		ports     Ports
		requested int
		want      int
	}{
		{"requested wins", Ports{DefaultTopN: 3}, 7, 7},
		{"configured default", Ports{DefaultTopN: 3}, 0, 3},
		{"domain default", Ports{}, 0, 5},
		{"negative falls back", Ports{}, -2, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ports.topN(tt.requested))
		})
	}
}
