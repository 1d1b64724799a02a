package similarity

import (
	"fmt"
	"sort"
)

// Match is a candidate position scored against a query vector.
type Match struct {
	Index int     `json:"index"`
	Score float64 `json:"score"`
}

// Pair is two candidate positions scored against each other. First < Second.
type Pair struct {
	First  int     `json:"first"`
	Second int     `json:"second"`
	Score  float64 `json:"score"`
}

// Rank scores every candidate against query and orders the result by score
// descending. Equal scores keep candidate order.
func Rank(query []float32, candidates [][]float32) ([]Match, error) {
	matches := make([]Match, len(candidates))
	for i, c := range candidates {
		score, err := Cosine(query, c)
		if err != nil {
			return nil, fmt.Errorf("candidate %d: %w", i, err)
		}
		matches[i] = Match{Index: i, Score: score}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches, nil
}

// TopK returns the k best matches. k <= 0 yields no matches.
func TopK(query []float32, candidates [][]float32, k int) ([]Match, error) {
	if k <= 0 {
		return []Match{}, nil
	}

	matches, err := Rank(query, candidates)
	if err != nil {
		return nil, err
	}
	if len(matches) > k {
		matches = matches[:k]
	}
	return matches, nil
}

// AboveThreshold returns the ranked matches scoring at least threshold.
func AboveThreshold(query []float32, candidates [][]float32, threshold float64) ([]Match, error) {
	matches, err := Rank(query, candidates)
	if err != nil {
		return nil, err
	}

	filtered := make([]Match, 0, len(matches))
	for _, m := range matches {
		if m.Score >= threshold {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

// Pairwise scores every unordered pair of vectors, best pair first.
func Pairwise(vectors [][]float32) ([]Pair, error) {
	n := len(vectors)
	pairs := make([]Pair, 0, n*(n-1)/2)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			score, err := Cosine(vectors[i], vectors[j])
			if err != nil {
				return nil, fmt.Errorf("pair (%d, %d): %w", i, j, err)
			}
			pairs = append(pairs, Pair{First: i, Second: j, Score: score})
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Score > pairs[j].Score
	})

	return pairs, nil
}

// Duplicates returns the pairs scoring at least threshold, best pair first.
func Duplicates(vectors [][]float32, threshold float64) ([]Pair, error) {
	pairs, err := Pairwise(vectors)
	if err != nil {
		return nil, err
	}

	dups := make([]Pair, 0)
	for _, p := range pairs {
		if p.Score >= threshold {
			dups = append(dups, p)
		}
	}
	return dups, nil
}
