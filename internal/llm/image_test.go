package llm

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestImageRequest_Normalize(t *testing.T) {
	tests := []struct {
		name      string
		req       *ImageRequest
		wantCount int
		wantErr   bool
	}{
		{name: "default count", req: &ImageRequest{Prompt: "a cat"}, wantCount: 1},
		{name: "aspect ratio", req: &ImageRequest{Prompt: "a cat", Count: 2, AspectRatio: "16:9"}, wantCount: 2},
		{name: "nil", req: nil, wantErr: true},
		{name: "blank prompt", req: &ImageRequest{Prompt: "  "}, wantErr: true},
		{name: "too many", req: &ImageRequest{Prompt: "a cat", Count: MaxGeneratedImages + 1}, wantErr: true},
		{name: "bad aspect ratio", req: &ImageRequest{Prompt: "a cat", AspectRatio: "2:1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.normalize()
			if tt.wantErr {
				var ve *apperr.ValidationError
				assert.True(t, errors.As(err, &ve))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, tt.req.Count)
		})
	}
}

func TestImagenConfig(t *testing.T) {
	cfg := imagenConfig(&ImageRequest{Prompt: "a cat", NegativePrompt: "dogs", Count: 3, AspectRatio: "4:3"})
	assert.Equal(t, int32(3), cfg.NumberOfImages)
	assert.Equal(t, "dogs", cfg.NegativePrompt)
	assert.Equal(t, "4:3", cfg.AspectRatio)
	assert.Equal(t, "image/png", cfg.OutputMIMEType)
}

func TestFromImagenResponse(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}

	tests := []struct {
		name       string
		resp       *genai.GenerateImagesResponse
		wantImages int
		wantStatus int
	}{
		{
			name: "keeps images and drops filtered",
			resp: &genai.GenerateImagesResponse{GeneratedImages: []*genai.GeneratedImage{
				{Image: &genai.Image{ImageBytes: png, MIMEType: "image/png"}, EnhancedPrompt: "a fluffy cat"},
				{RAIFilteredReason: "unsafe"},
				nil,
				{Image: &genai.Image{ImageBytes: png}},
			}},
			wantImages: 2,
		},
		{
			name:       "all filtered",
			resp:       &genai.GenerateImagesResponse{GeneratedImages: []*genai.GeneratedImage{{RAIFilteredReason: "unsafe"}}},
			wantStatus: http.StatusBadRequest,
		},
		{name: "empty", resp: &genai.GenerateImagesResponse{}, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fromImagenResponse(tt.resp)
			if tt.wantStatus != 0 {
				require.Error(t, err)
				var ve *apperr.ValidationError
				var ue *apperr.UnavailableError
				switch tt.wantStatus {
				case http.StatusBadRequest:
					assert.True(t, errors.As(err, &ve))
				case http.StatusServiceUnavailable:
					assert.True(t, errors.As(err, &ue))
				}
				return
			}
			require.NoError(t, err)
			require.Len(t, got, tt.wantImages)
			assert.Equal(t, "a fluffy cat", got[0].RevisedPrompt)
			assert.Equal(t, "image/png", got[1].MIMEType)
		})
	}
}

func TestMockImager(t *testing.T) {
	m := NewMockImager("")
	assert.Equal(t, "mock/mock-image", m.Name())

	imgs, err := m.Generate(context.Background(), &ImageRequest{Prompt: "a lighthouse", Count: 2})
	require.NoError(t, err)
	require.Len(t, imgs, 2)
	assert.Equal(t, "image/png", http.DetectContentType(imgs[0].Data))
	assert.Equal(t, []string{"a lighthouse"}, m.Prompts())

	_, err = m.Generate(context.Background(), &ImageRequest{})
	assert.Error(t, err)
}

func TestNewImageModel(t *testing.T) {
	m, err := NewImageModel(context.Background(), ModelConfig{Provider: ProviderMock, Model: "pics"})
	require.NoError(t, err)
	assert.Equal(t, "mock/pics", m.Name())

	_, err = NewImageModel(context.Background(), ModelConfig{Provider: ProviderOllama})
	assert.Error(t, err)
}
