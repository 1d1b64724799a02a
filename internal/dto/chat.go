package dto

import (
	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/DjordjeVuckovic/genai-lab/internal/prompt"
)

type ChatRequest struct {
	Message string `json:"message" example:"What is a vector database?"`
	System  string `json:"system,omitempty"`
}

func (r ChatRequest) Validate() error {
	if blank(r.Message) {
		return apperr.NewValidation("message is required")
	}
	return nil
}

type FewShotRequest struct {
	System   string           `json:"system,omitempty"`
	Examples []prompt.Example `json:"examples"`
	Input    string           `json:"input"`
}

func (r FewShotRequest) Validate() error {
	if len(r.Examples) == 0 {
		return apperr.NewValidation("examples must not be empty")
	}
	if blank(r.Input) {
		return apperr.NewValidation("input is required")
	}
	return nil
}

type SessionsResponse struct {
	Sessions []string `json:"sessions"`
}

type TemplateRequest struct {
	Params prompt.Params `json:"params"`
}

type RenderResponse struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// ParseRequest carries free text for a structured output call.
type ParseRequest struct {
	Text      string `json:"text"`
	Separator string `json:"separator,omitempty"`
}

func (r ParseRequest) Validate() error {
	if blank(r.Text) {
		return apperr.NewValidation("text is required")
	}
	return nil
}
