// Package retrieval benchmarks how well a retriever ranks judged documents.
package retrieval

import (
	"math"
	"sort"
)

const (
	GradeNotRelevant = 0
	GradeMarginally  = 1
	GradeRelevant    = 2
	GradeHighly      = 3
)

type ScoreSet struct {
	NDCG      map[int]float64 `json:"ndcg"`      // K -> NDCG@K
	Precision map[int]float64 `json:"precision"` // K -> P@K
	Recall    map[int]float64 `json:"recall"`    // K -> R@K
	F1        map[int]float64 `json:"f1"`        // K -> F1@K
	AP        float64         `json:"ap"`
	RR        float64         `json:"rr"`
}

func ComputeAll(ranked []string, judgments map[string]int, kValues []int, relevanceThreshold int) ScoreSet {
	s := ScoreSet{
		NDCG:      make(map[int]float64, len(kValues)),
		Precision: make(map[int]float64, len(kValues)),
		Recall:    make(map[int]float64, len(kValues)),
		F1:        make(map[int]float64, len(kValues)),
	}

	for _, k := range kValues {
		s.NDCG[k] = NDCGAtK(ranked, judgments, k)
		s.Precision[k] = PrecisionAtK(ranked, judgments, k, relevanceThreshold)
		s.Recall[k] = RecallAtK(ranked, judgments, k, relevanceThreshold)
		s.F1[k] = F1AtK(ranked, judgments, k, relevanceThreshold)
	}
	s.AP = AveragePrecision(ranked, judgments, relevanceThreshold)
	s.RR = ReciprocalRank(ranked, judgments, relevanceThreshold)

	return s
}

// PrecisionAtK is the share of the top K slots holding a relevant document.
// Missing slots count as not relevant.
func PrecisionAtK(ranked []string, judgments map[string]int, k int, relevanceThreshold int) float64 {
	if k <= 0 || len(ranked) == 0 {
		return 0
	}
	return float64(relevantIn(ranked, judgments, k, relevanceThreshold)) / float64(k)
}

// RecallAtK is the share of all relevant documents found in the top K.
func RecallAtK(ranked []string, judgments map[string]int, k int, relevanceThreshold int) float64 {
	if k <= 0 || len(ranked) == 0 {
		return 0
	}
	total := countRelevant(judgments, relevanceThreshold)
	if total == 0 {
		return 0
	}
	return float64(relevantIn(ranked, judgments, k, relevanceThreshold)) / float64(total)
}

func F1AtK(ranked []string, judgments map[string]int, k int, relevanceThreshold int) float64 {
	p := PrecisionAtK(ranked, judgments, k, relevanceThreshold)
	r := RecallAtK(ranked, judgments, k, relevanceThreshold)
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

// AveragePrecision averages the precision at every rank holding a relevant document.
func AveragePrecision(ranked []string, judgments map[string]int, relevanceThreshold int) float64 {
	total := countRelevant(judgments, relevanceThreshold)
	if len(ranked) == 0 || total == 0 {
		return 0
	}

	var sum float64
	var seen int
	for i, id := range ranked {
		if judgments[id] >= relevanceThreshold {
			seen++
			sum += float64(seen) / float64(i+1)
		}
	}
	return sum / float64(total)
}

func ReciprocalRank(ranked []string, judgments map[string]int, relevanceThreshold int) float64 {
	for i, id := range ranked {
		if judgments[id] >= relevanceThreshold {
			return 1.0 / float64(i+1)
		}
	}
	return 0
}

// NDCGAtK uses graded relevance: DCG = sum((2^rel - 1) / log2(i+2)) over the top K.
func NDCGAtK(ranked []string, judgments map[string]int, k int) float64 {
	if k <= 0 || len(ranked) == 0 || len(judgments) == 0 {
		return 0
	}

	var dcg float64
	for i := 0; i < min(k, len(ranked)); i++ {
		dcg += gain(judgments[ranked[i]], i)
	}

	rels := make([]int, 0, len(judgments))
	for _, rel := range judgments {
		if rel > 0 {
			rels = append(rels, rel)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(rels)))

	var idcg float64
	for i := 0; i < min(k, len(rels)); i++ {
		idcg += gain(rels[i], i)
	}
	if idcg == 0 {
		return 0
	}
	return dcg / idcg
}

func gain(rel, pos int) float64 {
	return (math.Pow(2, float64(rel)) - 1) / math.Log2(float64(pos+2))
}

func relevantIn(ranked []string, judgments map[string]int, k, threshold int) int {
	var n int
	for i := 0; i < min(k, len(ranked)); i++ {
		if judgments[ranked[i]] >= threshold {
			n++
		}
	}
	return n
}

func countRelevant(judgments map[string]int, threshold int) int {
	var n int
	for _, rel := range judgments {
		if rel >= threshold {
			n++
		}
	}
	return n
}
