package dto

import (
	"encoding/json"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
)

type AgentRequest struct {
	System   string `json:"system,omitempty"`
	Question string `json:"question" example:"What is 12 times 7?"`
}

func (r AgentRequest) Validate() error {
	if blank(r.Question) {
		return apperr.NewValidation("question is required")
	}
	return nil
}

type ToolCallRequest struct {
	Arguments json.RawMessage `json:"arguments" swaggertype:"object"`
}

type ToolCallResponse struct {
	Tool   string `json:"tool"`
	Result string `json:"result"`
}
