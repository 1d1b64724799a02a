package dto

import (
	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/DjordjeVuckovic/genai-lab/internal/llm"
)

// ImageAnalysisResponse describes the uploaded file next to the model answer.
type ImageAnalysisResponse struct {
	Filename    string    `json:"filename"`
	Size        int       `json:"size"`
	ContentType string    `json:"content_type"`
	Question    string    `json:"question,omitempty"`
	Answer      string    `json:"answer"`
	Model       string    `json:"model"`
	Usage       llm.Usage `json:"usage"`
}

type ImageCompareResponse struct {
	Filenames []string  `json:"filenames"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Model     string    `json:"model"`
	Usage     llm.Usage `json:"usage"`
}

type ImageInfoResponse struct {
	SupportedFormats []string `json:"supported_formats"`
	MaxFileSizeMB    int      `json:"max_file_size_mb"`
}

type ImageGenerateRequest struct {
	Prompt         string `json:"prompt" example:"A watercolor lighthouse at dawn"`
	NegativePrompt string `json:"negative_prompt,omitempty"`
	Count          int    `json:"count,omitempty"`
	AspectRatio    string `json:"aspect_ratio,omitempty" example:"16:9"`
}

func (r ImageGenerateRequest) Validate() error {
	if blank(r.Prompt) {
		return apperr.NewValidation("prompt is required")
	}
	if r.Count < 0 {
		return apperr.NewValidation("count must not be negative")
	}
	return nil
}

// ImageGenerateResponse carries the images; Data is base64 in JSON.
type ImageGenerateResponse struct {
	Model  string               `json:"model"`
	Prompt string               `json:"prompt"`
	Images []llm.GeneratedImage `json:"images"`
}
