package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNDCGAtK(t *testing.T) {
	tests := []struct {
		name      string
		ranked    []string
		judgments map[string]int
		k         int
		want      float64
	}{
		{name: "empty ranked list", ranked: nil, judgments: map[string]int{"a": 3}, k: 5},
		{name: "empty judgments", ranked: []string{"a", "b"}, judgments: map[string]int{}, k: 5},
		{name: "k=0", ranked: []string{"a"}, judgments: map[string]int{"a": 3}, k: 0},
		{
			name:      "perfect ranking",
			ranked:    []string{"a", "b", "c"},
			judgments: map[string]int{"a": 3, "b": 2, "c": 1},
			k:         3,
			want:      1.0,
		},
		{
			name:      "single highly relevant at top",
			ranked:    []string{"a", "b", "c"},
			judgments: map[string]int{"a": 3},
			k:         3,
			want:      1.0,
		},
		{
			name:      "relevant at second rank",
			ranked:    []string{"x", "a"},
			judgments: map[string]int{"a": 1},
			k:         2,
			want:      0.6309297535714575,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NDCGAtK(tt.ranked, tt.judgments, tt.k), 1e-9)
		})
	}
}

func TestNDCGAtK_InverseRanking(t *testing.T) {
	got := NDCGAtK([]string{"c", "b", "a"}, map[string]int{"a": 3, "b": 2, "c": 1}, 3)
	assert.Less(t, got, 1.0)
	assert.Greater(t, got, 0.0)
}

func TestPrecisionRecallF1(t *testing.T) {
	judgments := map[string]int{"a": 2, "b": 1, "c": 3, "d": 0}

	tests := []struct {
		name          string
		ranked        []string
		k             int
		threshold     int
		wantPrecision float64
		wantRecall    float64
	}{
		{name: "empty", ranked: nil, k: 5, threshold: 1},
		{name: "all relevant", ranked: []string{"a", "b", "c"}, k: 3, threshold: 1, wantPrecision: 1, wantRecall: 1},
		{name: "mixed", ranked: []string{"a", "d", "x"}, k: 3, threshold: 1, wantPrecision: 1.0 / 3, wantRecall: 1.0 / 3},
		{name: "short list counts missing slots", ranked: []string{"a"}, k: 4, threshold: 1, wantPrecision: 0.25, wantRecall: 1.0 / 3},
		{name: "higher threshold", ranked: []string{"a", "b", "c"}, k: 3, threshold: 2, wantPrecision: 2.0 / 3, wantRecall: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PrecisionAtK(tt.ranked, judgments, tt.k, tt.threshold)
			r := RecallAtK(tt.ranked, judgments, tt.k, tt.threshold)
			assert.InDelta(t, tt.wantPrecision, p, 1e-9)
			assert.InDelta(t, tt.wantRecall, r, 1e-9)

			f1 := F1AtK(tt.ranked, judgments, tt.k, tt.threshold)
			if p+r == 0 {
				assert.Zero(t, f1)
			} else {
				assert.InDelta(t, 2*p*r/(p+r), f1, 1e-9)
			}
		})
	}
}

func TestAveragePrecision(t *testing.T) {
	judgments := map[string]int{"a": 1, "b": 1}

	assert.InDelta(t, 1.0, AveragePrecision([]string{"a", "b", "x"}, judgments, 1), 1e-9)
	assert.InDelta(t, (1.0/2+2.0/3)/2, AveragePrecision([]string{"x", "a", "b"}, judgments, 1), 1e-9)
	assert.InDelta(t, 0.5, AveragePrecision([]string{"a"}, judgments, 1), 1e-9)
	assert.Zero(t, AveragePrecision(nil, judgments, 1))
	assert.Zero(t, AveragePrecision([]string{"a"}, map[string]int{}, 1))
}

func TestReciprocalRank(t *testing.T) {
	judgments := map[string]int{"b": 2}

	assert.InDelta(t, 0.5, ReciprocalRank([]string{"a", "b"}, judgments, 1), 1e-9)
	assert.InDelta(t, 1.0, ReciprocalRank([]string{"b"}, judgments, 1), 1e-9)
	assert.Zero(t, ReciprocalRank([]string{"a", "c"}, judgments, 1))
	assert.Zero(t, ReciprocalRank([]string{"b"}, judgments, 3))
}

func TestComputeAll(t *testing.T) {
	scores := ComputeAll([]string{"a", "b", "c"}, map[string]int{"a": 3, "b": 2, "c": 1}, []int{1, 3}, 1)

	assert.InDelta(t, 1.0, scores.NDCG[3], 1e-9)
	assert.InDelta(t, 1.0, scores.Precision[1], 1e-9)
	assert.InDelta(t, 1.0/3, scores.Recall[1], 1e-9)
	assert.InDelta(t, 1.0, scores.AP, 1e-9)
	assert.InDelta(t, 1.0, scores.RR, 1e-9)
	assert.Contains(t, scores.F1, 3)
}
