// Package similarity scores fixed-length embedding vectors against each other.
//
// Cosine similarity is the primary measure: scores range from -1.0 (opposite)
// to 1.0 (identical direction). A vector with zero magnitude has no direction,
// so any comparison involving one scores 0 instead of failing.
package similarity

import (
	"errors"
	"fmt"
	"math"

	"github.com/DjordjeVuckovic/genai-lab/pkg/utils"
)

// ErrDimensionMismatch is returned when two vectors of different length are compared.
var ErrDimensionMismatch = errors.New("similarity: dimension mismatch")

const percentDecimalPlaces = 2

// Cosine returns dot(a, b) / (|a| * |b|).
func Cosine(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}

	var dot, na2, nb2 float64
	for i := range a {
		va := float64(a[i])
		vb := float64(b[i])
		dot += va * vb
		na2 += va * va
		nb2 += vb * vb
	}
	if na2 == 0 || nb2 == 0 {
		return 0, nil
	}

	score := dot / (math.Sqrt(na2) * math.Sqrt(nb2))

	// float rounding can push |score| slightly above 1
	return math.Max(-1, math.Min(1, score)), nil
}

// Euclidean returns the L2 distance between a and b.
func Euclidean(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}

	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum), nil
}

// Dot returns the dot product of a and b.
func Dot(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}

	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot, nil
}

// Norm returns the magnitude of v.
func Norm(v []float32) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}

// Normalize returns a unit-length copy of v. Zero vectors are returned as a zero copy.
func Normalize(v []float32) []float32 {
	out := make([]float32, len(v))
	n := Norm(v)
	if n == 0 {
		return out
	}
	for i, x := range v {
		out[i] = float32(float64(x) / n)
	}
	return out
}

// Percent converts a score to a percentage rounded to two decimals.
func Percent(score float64) float64 {
	return utils.RoundDecimal(score*100, percentDecimalPlaces)
}
