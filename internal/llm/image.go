package llm

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"google.golang.org/genai"
)

const (
	MaxGeneratedImages = 4

	defaultImagenModel = "imagen-3.0-generate-002"
)

var aspectRatios = []string{"1:1", "3:4", "4:3", "9:16", "16:9"}

type ImageRequest struct {
	Prompt         string
	NegativePrompt string
	// Count defaults to 1 and is capped at MaxGeneratedImages.
	Count       int
	AspectRatio string
}

type GeneratedImage struct {
	MIMEType      string `json:"mime_type"`
	Data          []byte `json:"data"`
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}

// ImageModel turns a text prompt into images.
type ImageModel interface {
	Name() string
	Generate(ctx context.Context, req *ImageRequest) ([]GeneratedImage, error)
}

// NewImageModel builds the image model for mc. Only gemini and mock generate images.
func NewImageModel(ctx context.Context, mc ModelConfig) (ImageModel, error) {
	switch mc.Provider {
	case ProviderGemini:
		return NewImagen(ctx, mc.APIKey, mc.Model)
	case ProviderMock:
		return NewMockImager(mc.Model), nil
	default:
		return nil, fmt.Errorf("unsupported image provider: %s", mc.Provider)
	}
}

func (r *ImageRequest) normalize() error {
	if r == nil || strings.TrimSpace(r.Prompt) == "" {
		return apperr.NewValidation("image prompt must not be empty")
	}
	if r.Count <= 0 {
		r.Count = 1
	}
	if r.Count > MaxGeneratedImages {
		return apperr.NewValidation(fmt.Sprintf("at most %d images can be generated per request", MaxGeneratedImages))
	}
	if r.AspectRatio != "" && !slices.Contains(aspectRatios, r.AspectRatio) {
		return apperr.NewValidation(fmt.Sprintf("unsupported aspect ratio %q; supported: %s", r.AspectRatio, strings.Join(aspectRatios, ", ")))
	}
	return nil
}

// Imagen generates images with the Gemini API image models.
type Imagen struct {
	client *genai.Client
	model  string
}

func NewImagen(ctx context.Context, apiKey, model string) (*Imagen, error) {
	if model == "" {
		model = defaultImagenModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Imagen{client: client, model: model}, nil
}

func (i *Imagen) Name() string {
	return "gemini/" + i.model
}

func (i *Imagen) Generate(ctx context.Context, req *ImageRequest) ([]GeneratedImage, error) {
	if err := req.normalize(); err != nil {
		return nil, err
	}
	resp, err := i.client.Models.GenerateImages(ctx, i.model, req.Prompt, imagenConfig(req))
	if err != nil {
		return nil, apperr.NewUnavailable("gemini", err)
	}
	return fromImagenResponse(resp)
}

func imagenConfig(req *ImageRequest) *genai.GenerateImagesConfig {
	return &genai.GenerateImagesConfig{
		NumberOfImages: int32(req.Count),
		NegativePrompt: req.NegativePrompt,
		AspectRatio:    req.AspectRatio,
		OutputMIMEType: "image/png",
	}
}

// fromImagenResponse drops filtered images and fails when nothing is left.
func fromImagenResponse(resp *genai.GenerateImagesResponse) ([]GeneratedImage, error) {
	var (
		out      []GeneratedImage
		filtered []string
	)
	for _, g := range resp.GeneratedImages {
		if g == nil {
			continue
		}
		if g.Image == nil || len(g.Image.ImageBytes) == 0 {
			if g.RAIFilteredReason != "" {
				filtered = append(filtered, g.RAIFilteredReason)
			}
			continue
		}
		mt := g.Image.MIMEType
		if mt == "" {
			mt = "image/png"
		}
		out = append(out, GeneratedImage{MIMEType: mt, Data: g.Image.ImageBytes, RevisedPrompt: g.EnhancedPrompt})
	}
	if len(out) == 0 {
		if len(filtered) > 0 {
			return nil, apperr.NewValidation("every generated image was filtered: " + strings.Join(filtered, "; "))
		}
		return nil, apperr.NewUnavailable("gemini", fmt.Errorf("no images returned"))
	}
	return out, nil
}

// MockImager returns a fixed 1x1 PNG per requested image and records prompts.
type MockImager struct {
	mu      sync.Mutex
	name    string
	prompts []string
}

// onePixelPNG is a valid 1x1 transparent PNG.
var onePixelPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01, 0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4,
	0x89, 0x00, 0x00, 0x00, 0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, 0xae,
	0x42, 0x60, 0x82,
}

func NewMockImager(name string) *MockImager {
	if name == "" {
		name = "mock-image"
	}
	return &MockImager{name: name}
}

func (m *MockImager) Name() string {
	return "mock/" + m.name
}

func (m *MockImager) Generate(_ context.Context, req *ImageRequest) ([]GeneratedImage, error) {
	if err := req.normalize(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.prompts = append(m.prompts, req.Prompt)
	m.mu.Unlock()

	out := make([]GeneratedImage, req.Count)
	for i := range out {
		out[i] = GeneratedImage{MIMEType: "image/png", Data: slices.Clone(onePixelPNG)}
	}
	return out, nil
}

func (m *MockImager) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.prompts)
}
