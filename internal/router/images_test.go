package router

import (
	"net/http"
	"testing"

	"github.com/DjordjeVuckovic/genai-lab/internal/dto"
	"github.com/DjordjeVuckovic/genai-lab/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageRouter(t *testing.T) {
	model := llm.NewMockImager("pics")
	e := newEcho()
	NewImageRouter(e, model).Bind()

	tests := []struct {
		name       string
		req        dto.ImageGenerateRequest
		wantStatus int
		wantImages int
	}{
		{name: "one image", req: dto.ImageGenerateRequest{Prompt: "a lighthouse"}, wantStatus: http.StatusOK, wantImages: 1},
		{name: "three images", req: dto.ImageGenerateRequest{Prompt: "a lighthouse", Count: 3, AspectRatio: "16:9"}, wantStatus: http.StatusOK, wantImages: 3},
		{name: "blank prompt", req: dto.ImageGenerateRequest{Prompt: " "}, wantStatus: http.StatusBadRequest},
		{name: "too many", req: dto.ImageGenerateRequest{Prompt: "a lighthouse", Count: 9}, wantStatus: http.StatusBadRequest},
		{name: "bad aspect ratio", req: dto.ImageGenerateRequest{Prompt: "a lighthouse", AspectRatio: "5:1"}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, e, http.MethodPost, "/images/generate", tt.req)
			requireStatus(t, rec, tt.wantStatus)
			if tt.wantStatus != http.StatusOK {
				return
			}
			res := decode[dto.ImageGenerateResponse](t, rec)
			assert.Equal(t, "mock/pics", res.Model)
			require.Len(t, res.Images, tt.wantImages)
			assert.Equal(t, "image/png", http.DetectContentType(res.Images[0].Data))
		})
	}
}
