package router

import (
	"net/http"
	"testing"

	"github.com/DjordjeVuckovic/genai-lab/internal/dto"
	"github.com/DjordjeVuckovic/genai-lab/internal/semantic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarityRouter(t *testing.T) {
	e := newEcho()
	NewSimilarityRouter(e, newEmbedder()).Bind()

	t.Run("compare identical texts", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/similarity/compare", dto.CompareRequest{Text1: "red apple", Text2: "red apple"})
		requireStatus(t, rec, http.StatusOK)
		res := decode[semantic.Comparison](t, rec)
		assert.InDelta(t, 1.0, res.Similarity, 1e-6)
		assert.InDelta(t, 100.0, res.Percent, 1e-6)
	})

	t.Run("compare rejects blank", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/similarity/compare", dto.CompareRequest{Text1: "a"})
		requireStatus(t, rec, http.StatusBadRequest)
	})

	t.Run("top k ranks from one", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/similarity/top-k", dto.RankRequest{
			Query: "green tea",
			Texts: []string{"black coffee", "green tea leaves", "green tea"},
			K:     2,
		})
		requireStatus(t, rec, http.StatusOK)
		res := decode[semantic.Ranking](t, rec)
		require.Len(t, res.Results, 2)
		assert.Equal(t, 1, res.Results[0].Rank)
		assert.Equal(t, "green tea", res.Results[0].Text)
	})

	t.Run("top k needs positive k", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/similarity/top-k", dto.RankRequest{Query: "q", Texts: []string{"a"}})
		requireStatus(t, rec, http.StatusBadRequest)
	})

	t.Run("duplicates default threshold", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/similarity/duplicates", dto.TextsRequest{
			Texts: []string{"the quick fox", "The quick fox!", "slow turtle"},
		})
		requireStatus(t, rec, http.StatusOK)
		pairs := decode[[]semantic.TextPair](t, rec)
		require.Len(t, pairs, 1)
		assert.Equal(t, 0, pairs[0].Index1)
		assert.Equal(t, 1, pairs[0].Index2)
	})

	t.Run("vectors", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/similarity/vectors", dto.VectorsRequest{A: []float32{1, 0}, B: []float32{0, 1}})
		requireStatus(t, rec, http.StatusOK)
		res := decode[dto.VectorsResponse](t, rec)
		assert.InDelta(t, 0.0, res.Cosine, 1e-9)
		assert.InDelta(t, 1.41421356, res.Euclidean, 1e-6)
	})

	t.Run("vectors dimension mismatch", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/similarity/vectors", dto.VectorsRequest{A: []float32{1, 0}, B: []float32{1}})
		requireStatus(t, rec, http.StatusBadRequest)
	})

	t.Run("embeddings", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/embeddings", dto.EmbedRequest{Texts: []string{"one", "two"}})
		requireStatus(t, rec, http.StatusOK)
		res := decode[dto.EmbedResponse](t, rec)
		assert.Equal(t, 64, res.Dimensions)
		assert.Len(t, res.Embeddings, 2)
	})
}
