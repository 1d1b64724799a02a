package dto

import (
	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
)

type AskRequest struct {
	Question string            `json:"question" example:"What does the retriever do?"`
	Filter   map[string]string `json:"filter,omitempty"`
}

func (r AskRequest) Validate() error {
	if blank(r.Question) {
		return apperr.NewValidation("question is required")
	}
	return nil
}

type IngestRequest struct {
	Texts    []string          `json:"texts"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

func (r IngestRequest) Validate() error {
	if len(r.Texts) == 0 {
		return apperr.NewValidation("texts must not be empty")
	}
	return nil
}

type IngestResponse struct {
	IDs    []string `json:"ids"`
	Chunks int      `json:"chunks"`
}

type RetrieveRequest struct {
	Query  string            `json:"query"`
	TopK   int               `json:"top_k,omitempty"`
	Filter map[string]string `json:"filter,omitempty"`
}

func (r RetrieveRequest) Validate() error {
	if blank(r.Query) {
		return apperr.NewValidation("query is required")
	}
	if r.TopK < 0 {
		return apperr.NewValidation("top_k must not be negative")
	}
	return nil
}

type IndexStatus struct {
	Directory    string   `json:"directory"`
	TrackedFiles int      `json:"tracked_files"`
	Files        []string `json:"files"`
	Chunks       int      `json:"chunks"`
}
