package dto

import (
	"strings"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
)

type CompareRequest struct {
	Text1 string `json:"text1" example:"The cat sits on the mat"`
	Text2 string `json:"text2" example:"A cat is resting on a rug"`
}

func (r CompareRequest) Validate() error {
	if blank(r.Text1) || blank(r.Text2) {
		return apperr.NewValidation("text1 and text2 are required")
	}
	return nil
}

// RankRequest drives compare-many, threshold and top-k rankings.
type RankRequest struct {
	Query     string   `json:"query"`
	Texts     []string `json:"texts"`
	Threshold float64  `json:"threshold,omitempty"`
	K         int      `json:"k,omitempty"`
}

func (r RankRequest) Validate() error {
	if blank(r.Query) {
		return apperr.NewValidation("query is required")
	}
	if len(r.Texts) == 0 {
		return apperr.NewValidation("texts must not be empty")
	}
	return nil
}

// TextsRequest drives pairwise, duplicate and cluster analysis.
type TextsRequest struct {
	Texts     []string `json:"texts"`
	Threshold float64  `json:"threshold,omitempty"`
}

func (r TextsRequest) Validate() error {
	if len(r.Texts) < 2 {
		return apperr.NewValidation("at least two texts are required")
	}
	return nil
}

// VectorsRequest compares raw vectors without an embedding call.
type VectorsRequest struct {
	A []float32 `json:"a"`
	B []float32 `json:"b"`
}

type VectorsResponse struct {
	Cosine         float64 `json:"cosine"`
	Percent        float64 `json:"similarity_percent"`
	Euclidean      float64 `json:"euclidean_distance"`
	Dot            float64 `json:"dot_product"`
	Interpretation string  `json:"interpretation"`
}

type EmbedRequest struct {
	Texts []string `json:"texts"`
	// Query embeds each text as a search query instead of a document.
	Query bool `json:"query,omitempty"`
}

func (r EmbedRequest) Validate() error {
	if len(r.Texts) == 0 {
		return apperr.NewValidation("texts must not be empty")
	}
	for _, t := range r.Texts {
		if blank(t) {
			return apperr.NewValidation("texts must not contain blank entries")
		}
	}
	return nil
}

type EmbedResponse struct {
	Model      string      `json:"model"`
	Dimensions int         `json:"dimensions"`
	Embeddings [][]float32 `json:"embeddings"`
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
