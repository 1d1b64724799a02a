package storage

import (
	"errors"
	"testing"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchRequest_Normalize(t *testing.T) {
	tests := []struct {
		name          string
		req           SearchRequest
		wantTopK      int
		wantThreshold float64
	}{
		{name: "defaults", req: SearchRequest{Vector: []float32{1}}, wantTopK: DefaultTopK, wantThreshold: NoThreshold},
		{name: "keeps positive threshold", req: SearchRequest{Vector: []float32{1}, TopK: 2, Threshold: 0.3}, wantTopK: 2, wantThreshold: 0.3},
		{name: "keeps negative threshold", req: SearchRequest{Vector: []float32{1}, Threshold: -0.4}, wantTopK: DefaultTopK, wantThreshold: -0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.Normalize()
			require.NoError(t, err)
			assert.Equal(t, tt.wantTopK, got.TopK)
			assert.Equal(t, tt.wantThreshold, got.Threshold)
		})
	}

	_, err := SearchRequest{}.Normalize()
	var ve *apperr.ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestSearchRequest_Accepts(t *testing.T) {
	tests := []struct {
		name      string
		threshold float64
		score     float64
		want      bool
	}{
		{name: "no threshold opposite", threshold: NoThreshold, score: -1, want: true},
		{name: "no threshold below range", threshold: NoThreshold, score: -1.0000001, want: true},
		{name: "at threshold", threshold: 0.5, score: 0.5, want: true},
		{name: "below threshold", threshold: 0.5, score: 0.49, want: false},
		{name: "negative threshold", threshold: -0.5, score: -0.6, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SearchRequest{Threshold: tt.threshold}.Accepts(tt.score))
		})
	}
}

func TestSearchRequest_NormalizeThenAcceptsNegativeScore(t *testing.T) {
	req, err := SearchRequest{Vector: []float32{1, 0}, TopK: 4}.Normalize()
	require.NoError(t, err)
	assert.True(t, req.Accepts(-1))
}
