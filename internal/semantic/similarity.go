// Package semantic compares, ranks, deduplicates and clusters texts by the
// cosine similarity of their embeddings.
package semantic

import (
	"context"
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/DjordjeVuckovic/genai-lab/pkg/similarity"
)

const (
	DefaultDuplicateThreshold = 0.95
	DefaultClusterThreshold   = 0.7
)

// Embedder is the part of embedding.Embedder this package needs.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQuery(ctx context.Context, query string) ([]float32, error)
}

type Comparison struct {
	Text1          string           `json:"text1"`
	Text2          string           `json:"text2"`
	Similarity     float64          `json:"similarity"`
	Percent        float64          `json:"similarity_percent"`
	Distance       float64          `json:"euclidean_distance"`
	Interpretation similarity.Level `json:"interpretation"`
}

type ScoredText struct {
	Index      int     `json:"index"`
	Rank       int     `json:"rank,omitempty"`
	Text       string  `json:"text"`
	Similarity float64 `json:"similarity"`
	Percent    float64 `json:"similarity_percent"`
}

type Ranking struct {
	Query       string       `json:"query"`
	Results     []ScoredText `json:"results"`
	MostSimilar *ScoredText  `json:"most_similar,omitempty"`
}

type TextPair struct {
	Text1      string  `json:"text1"`
	Text2      string  `json:"text2"`
	Index1     int     `json:"text1_index"`
	Index2     int     `json:"text2_index"`
	Similarity float64 `json:"similarity"`
	Percent    float64 `json:"similarity_percent"`
}

type PairwiseResult struct {
	Pairs        []TextPair `json:"pairs"`
	MostSimilar  *TextPair  `json:"most_similar,omitempty"`
	LeastSimilar *TextPair  `json:"least_similar,omitempty"`
}

type TextCluster struct {
	ID          int      `json:"cluster_id"`
	CenterIndex int      `json:"center_index"`
	Indices     []int    `json:"indices"`
	Texts       []string `json:"texts"`
	Size        int      `json:"size"`
}

// Service runs text-level similarity operations over an Embedder.
type Service struct {
	embedder Embedder
}

func NewService(embedder Embedder) *Service {
	return &Service{embedder: embedder}
}

func (s *Service) Compare(ctx context.Context, text1, text2 string) (*Comparison, error) {
	vecs, err := s.embed(ctx, []string{text1, text2}, 2)
	if err != nil {
		return nil, err
	}
	score, err := similarity.Cosine(vecs[0], vecs[1])
	if err != nil {
		return nil, err
	}
	dist, err := similarity.Euclidean(vecs[0], vecs[1])
	if err != nil {
		return nil, err
	}
	return &Comparison{
		Text1:          text1,
		Text2:          text2,
		Similarity:     score,
		Percent:        similarity.Percent(score),
		Distance:       dist,
		Interpretation: similarity.Interpret(score),
	}, nil
}

// CompareMany scores every text against query, best first.
func (s *Service) CompareMany(ctx context.Context, query string, texts []string) (*Ranking, error) {
	qv, candidates, err := s.embedQuery(ctx, query, texts)
	if err != nil {
		return nil, err
	}
	matches, err := similarity.Rank(qv, candidates)
	if err != nil {
		return nil, err
	}
	return s.ranking(query, texts, matches, false), nil
}

// Threshold keeps the texts scoring at least threshold against query.
func (s *Service) Threshold(ctx context.Context, query string, texts []string, threshold float64) (*Ranking, error) {
	if err := checkThreshold(threshold); err != nil {
		return nil, err
	}
	qv, candidates, err := s.embedQuery(ctx, query, texts)
	if err != nil {
		return nil, err
	}
	matches, err := similarity.AboveThreshold(qv, candidates, threshold)
	if err != nil {
		return nil, err
	}
	return s.ranking(query, texts, matches, false), nil
}

// TopK returns the k most similar texts ranked from 1.
func (s *Service) TopK(ctx context.Context, query string, texts []string, k int) (*Ranking, error) {
	if k <= 0 {
		return nil, apperr.NewValidation("k must be positive")
	}
	qv, candidates, err := s.embedQuery(ctx, query, texts)
	if err != nil {
		return nil, err
	}
	matches, err := similarity.TopK(qv, candidates, k)
	if err != nil {
		return nil, err
	}
	return s.ranking(query, texts, matches, true), nil
}

// Pairwise scores every unordered pair of texts.
func (s *Service) Pairwise(ctx context.Context, texts []string) (*PairwiseResult, error) {
	vecs, err := s.embed(ctx, texts, 2)
	if err != nil {
		return nil, err
	}
	pairs, err := similarity.Pairwise(vecs)
	if err != nil {
		return nil, err
	}

	res := &PairwiseResult{Pairs: toTextPairs(texts, pairs)}
	for i := range res.Pairs {
		p := &res.Pairs[i]
		if res.MostSimilar == nil || p.Similarity > res.MostSimilar.Similarity {
			res.MostSimilar = p
		}
		if res.LeastSimilar == nil || p.Similarity < res.LeastSimilar.Similarity {
			res.LeastSimilar = p
		}
	}
	return res, nil
}

// Duplicates returns pairs scoring at least threshold, most similar first.
// A zero threshold means DefaultDuplicateThreshold.
func (s *Service) Duplicates(ctx context.Context, texts []string, threshold float64) ([]TextPair, error) {
	if threshold == 0 {
		threshold = DefaultDuplicateThreshold
	}
	if err := checkThreshold(threshold); err != nil {
		return nil, err
	}
	vecs, err := s.embed(ctx, texts, 2)
	if err != nil {
		return nil, err
	}
	pairs, err := similarity.Duplicates(vecs, threshold)
	if err != nil {
		return nil, err
	}
	return toTextPairs(texts, pairs), nil
}

// Cluster groups texts greedily around the first unassigned text.
// A zero threshold means DefaultClusterThreshold.
func (s *Service) Cluster(ctx context.Context, texts []string, threshold float64) ([]TextCluster, error) {
	if threshold == 0 {
		threshold = DefaultClusterThreshold
	}
	if err := checkThreshold(threshold); err != nil {
		return nil, err
	}
	vecs, err := s.embed(ctx, texts, 1)
	if err != nil {
		return nil, err
	}
	clusters, err := similarity.GreedyClusters(vecs, threshold)
	if err != nil {
		return nil, err
	}

	out := make([]TextCluster, len(clusters))
	for i, c := range clusters {
		members := make([]string, len(c.Members))
		for j, idx := range c.Members {
			members[j] = texts[idx]
		}
		out[i] = TextCluster{
			ID:          c.ID,
			CenterIndex: c.Center,
			Indices:     c.Members,
			Texts:       members,
			Size:        c.Size(),
		}
	}
	return out, nil
}

func (s *Service) embed(ctx context.Context, texts []string, minCount int) ([][]float32, error) {
	if len(texts) < minCount {
		return nil, apperr.NewValidation(fmt.Sprintf("at least %d texts are required", minCount))
	}
	for i, t := range texts {
		if strings.TrimSpace(t) == "" {
			return nil, apperr.NewValidation(fmt.Sprintf("text %d is empty", i))
		}
	}
	return s.embedder.EmbedTexts(ctx, texts)
}

func (s *Service) embedQuery(ctx context.Context, query string, texts []string) ([]float32, [][]float32, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil, apperr.NewValidation("query must not be empty")
	}
	candidates, err := s.embed(ctx, texts, 1)
	if err != nil {
		return nil, nil, err
	}
	qv, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, nil, err
	}
	return qv, candidates, nil
}

func (s *Service) ranking(query string, texts []string, matches []similarity.Match, ranked bool) *Ranking {
	r := &Ranking{Query: query, Results: make([]ScoredText, len(matches))}
	for i, m := range matches {
		st := ScoredText{
			Index:      m.Index,
			Text:       texts[m.Index],
			Similarity: m.Score,
			Percent:    similarity.Percent(m.Score),
		}
		if ranked {
			st.Rank = i + 1
		}
		r.Results[i] = st
	}
	if len(r.Results) > 0 {
		best := r.Results[0]
		r.MostSimilar = &best
	}
	return r
}

func toTextPairs(texts []string, pairs []similarity.Pair) []TextPair {
	out := make([]TextPair, len(pairs))
	for i, p := range pairs {
		out[i] = TextPair{
			Text1:      texts[p.First],
			Text2:      texts[p.Second],
			Index1:     p.First,
			Index2:     p.Second,
			Similarity: p.Score,
			Percent:    similarity.Percent(p.Score),
		}
	}
	return out
}

func checkThreshold(t float64) error {
	if t < -1 || t > 1 {
		return apperr.NewValidation("threshold must be between -1 and 1")
	}
	return nil
}
