// Package storagetest holds search cases every storage backend must pass.
package storagetest

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/genai-lab/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ThresholdDocs are opposite, orthogonal and aligned to ThresholdQuery.
var ThresholdDocs = []storage.Document{
	{ID: "same", Content: "same direction", Embedding: []float32{1, 0, 0}},
	{ID: "orthogonal", Content: "orthogonal", Embedding: []float32{0, 1, 0}},
	{ID: "opposite", Content: "opposite direction", Embedding: []float32{-1, 0, 0}},
}

var ThresholdQuery = []float32{1, 0, 0}

// RunThresholdCases adds ThresholdDocs to an empty store and checks threshold handling.
func RunThresholdCases(t *testing.T, s storage.Store) {
	t.Helper()
	ctx := context.Background()
	_, err := s.Add(ctx, ThresholdDocs)
	require.NoError(t, err)

	tests := []struct {
		name      string
		threshold float64
		want      []string
	}{
		{name: "no threshold keeps negative scores", threshold: 0, want: []string{"same", "orthogonal", "opposite"}},
		{name: "no lower bound", threshold: storage.NoThreshold, want: []string{"same", "orthogonal", "opposite"}},
		{name: "negative threshold", threshold: -0.5, want: []string{"same", "orthogonal"}},
		{name: "positive threshold", threshold: 0.5, want: []string{"same"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits, err := s.Search(ctx, storage.SearchRequest{Vector: ThresholdQuery, TopK: 10, Threshold: tt.threshold})
			require.NoError(t, err)

			got := make([]string, len(hits))
			for i, h := range hits {
				got[i] = h.Document.ID
			}
			assert.Equal(t, tt.want, got)
		})
	}

	hits, err := s.Search(ctx, storage.SearchRequest{Vector: ThresholdQuery, TopK: 10})
	require.NoError(t, err)
	require.Len(t, hits, 3)
	assert.InDelta(t, -1.0, hits[2].Score, 1e-5)
}
