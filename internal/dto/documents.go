package dto

import (
	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
)

type DocumentInput struct {
	ID       string            `json:"id,omitempty"`
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type AddDocumentsRequest struct {
	Documents []DocumentInput `json:"documents"`
}

func (r AddDocumentsRequest) Validate() error {
	if len(r.Documents) == 0 {
		return apperr.NewValidation("documents must not be empty")
	}
	for _, d := range r.Documents {
		if blank(d.Content) {
			return apperr.NewValidation("document content must not be empty")
		}
	}
	return nil
}

type AddDocumentsResponse struct {
	IDs []string `json:"ids"`
}

type CountResponse struct {
	Count int `json:"count"`
}
