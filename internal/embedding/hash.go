package embedding

import (
	"context"
	"hash/fnv"
	"strings"
	"unicode"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/DjordjeVuckovic/genai-lab/pkg/similarity"
)

// HashClient is a deterministic bag-of-words embedder. Every lower-cased token
// is hashed into one of dims buckets and the counts are L2-normalised, so texts
// sharing vocabulary score closer together. It needs no model server.
type HashClient struct {
	dims int
}

func NewHashClient(dims int) *HashClient {
	if dims <= 0 {
		dims = defaultHashDimensions
	}
	return &HashClient{dims: dims}
}

func (hc *HashClient) Generate(_ context.Context, req Request) (*Response, error) {
	if req.Prompt == "" {
		return nil, apperr.NewValidation("missing text to embed")
	}
	return &Response{Embedding: hc.embed(req.Prompt)}, nil
}

func (hc *HashClient) GenerateBatch(_ context.Context, req BatchRequest) (*BatchResponse, error) {
	if len(req.Prompts) == 0 {
		return nil, apperr.NewValidation("missing prompts to embed")
	}

	out := make([][]float32, len(req.Prompts))
	for i, p := range req.Prompts {
		out[i] = hc.embed(p)
	}
	return &BatchResponse{Embeddings: out}, nil
}

func (hc *HashClient) embed(text string) []float32 {
	v := make([]float32, hc.dims)

	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, tok := range tokens {
		h := fnv.New32a()
		_, _ = h.Write([]byte(tok))
		v[h.Sum32()%uint32(hc.dims)]++
	}

	return similarity.Normalize(v)
}
