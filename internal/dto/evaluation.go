package dto

import (
	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
)

type FactCheckRequest struct {
	Document string `json:"document"`
	Claim    string `json:"claim"`
}

func (r FactCheckRequest) Validate() error {
	if blank(r.Document) || blank(r.Claim) {
		return apperr.NewValidation("document and claim are required")
	}
	return nil
}

type ClaimsRequest struct {
	Document string   `json:"document"`
	Claims   []string `json:"claims"`
}

func (r ClaimsRequest) Validate() error {
	if blank(r.Document) || len(r.Claims) == 0 {
		return apperr.NewValidation("document and claims are required")
	}
	return nil
}

type ClaimsResponse struct {
	Supported []bool `json:"supported"`
}

type EvaluateRAGRequest struct {
	Questions []string `json:"questions"`
}

func (r EvaluateRAGRequest) Validate() error {
	if len(r.Questions) == 0 {
		return apperr.NewValidation("questions must not be empty")
	}
	for _, q := range r.Questions {
		if blank(q) {
			return apperr.NewValidation("questions must not contain blank entries")
		}
	}
	return nil
}
