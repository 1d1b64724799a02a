package chat

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"slices"
	"strings"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/DjordjeVuckovic/genai-lab/internal/llm"
	"github.com/DjordjeVuckovic/genai-lab/internal/output"
)

// MaxImageSize is the largest image accepted for analysis.
const MaxImageSize = 20 << 20

const (
	DefaultImageQuestion   = "Describe this image in detail."
	DefaultCompareQuestion = "Compare these two images."

	describeImagePrompt = "Describe this image in detail, including the main objects, colors and mood."
	imageDetailsPrompt  = `Analyze this image:
1. The main objects in the image
2. The dominant colors and color combinations
3. The style (photo, painting, illustration, ...)
4. The mood or emotion
5. The composition and layout`
	productTagsPrompt = `You are a product image analysis expert.
Analyze the product image and extract:
- colors: the main colors
- style: for example modern, classic or casual
- features: notable features such as simple or premium
- category: for example clothing, electronics or furniture
- tags: marketing tags, each starting with #
- description: a short description`
)

var supportedImageTypes = []string{"image/png", "image/jpeg", "image/gif", "image/webp"}

// SupportedImageTypes lists the accepted image MIME types.
func SupportedImageTypes() []string {
	return slices.Clone(supportedImageTypes)
}

// ValidateImage normalizes the MIME type and rejects empty, oversized or unsupported images.
// A missing or generic MIME type is sniffed from the data.
func ValidateImage(img llm.Image) (llm.Image, error) {
	if len(img.Data) == 0 {
		return img, apperr.NewValidation("image is empty")
	}
	if len(img.Data) > MaxImageSize {
		return img, apperr.NewValidation(fmt.Sprintf("image is too large; the limit is %dMB", MaxImageSize>>20))
	}

	declared := strings.ToLower(strings.TrimSpace(img.MIMEType))
	if declared == "" || declared == "application/octet-stream" {
		declared = http.DetectContentType(img.Data)
	}
	mt, _, err := mime.ParseMediaType(declared)
	if err != nil {
		return img, apperr.NewValidationWrap("invalid image content type", err)
	}
	if mt == "image/jpg" {
		mt = "image/jpeg"
	}
	if !slices.Contains(supportedImageTypes, mt) {
		return img, apperr.NewValidation(fmt.Sprintf("unsupported image type %q; supported: %s", mt, strings.Join(supportedImageTypes, ", ")))
	}
	img.MIMEType = mt
	return img, nil
}

// AnalyzeImage asks question about img. An empty question asks for a description.
func (s *Service) AnalyzeImage(ctx context.Context, img llm.Image, question string) (*Reply, error) {
	if strings.TrimSpace(question) == "" {
		question = DefaultImageQuestion
	}
	return s.askImages(ctx, question, img)
}

func (s *Service) DescribeImage(ctx context.Context, img llm.Image) (*Reply, error) {
	return s.askImages(ctx, describeImagePrompt, img)
}

// AnalyzeImageDetails covers objects, colors, style, mood and composition.
func (s *Service) AnalyzeImageDetails(ctx context.Context, img llm.Image) (*Reply, error) {
	return s.askImages(ctx, imageDetailsPrompt, img)
}

func (s *Service) CompareImages(ctx context.Context, first, second llm.Image, question string) (*Reply, error) {
	if strings.TrimSpace(question) == "" {
		question = DefaultCompareQuestion
	}
	return s.askImages(ctx, question, first, second)
}

func (s *Service) askImages(ctx context.Context, question string, images ...llm.Image) (*Reply, error) {
	valid, err := validateImages(images)
	if err != nil {
		return nil, err
	}
	return s.call(ctx, s.models.Default(), []llm.Message{llm.UserWithImages(question, valid...)}, false)
}

// ProductTags is the marketing metadata extracted from a product photo.
type ProductTags struct {
	Colors      []string `json:"colors"`
	Style       string   `json:"style"`
	Features    []string `json:"features"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags" jsonschema:"description=marketing tags starting with #"`
	Description string   `json:"description"`
}

// TagProductImage extracts ProductTags from img. Tags always start with '#'.
func (s *Service) TagProductImage(ctx context.Context, img llm.Image) (*ProductTags, error) {
	valid, err := validateImages([]llm.Image{img})
	if err != nil {
		return nil, err
	}

	parser := output.NewStructParser[ProductTags]()
	resp, err := s.models.Default().Call(ctx, &llm.Request{
		Messages: []llm.Message{
			llm.System(productTagsPrompt + "\n\n" + parser.Format()),
			llm.UserWithImages("Analyze this product image.", valid...),
		},
	})
	if err != nil {
		return nil, err
	}

	tags, err := parser.Parse(resp.Message.Content)
	if err != nil {
		return nil, fmt.Errorf("product image tagging: %w", err)
	}
	tags.normalize()
	return &tags, nil
}

func (t *ProductTags) normalize() {
	if t.Colors == nil {
		t.Colors = []string{}
	}
	if t.Features == nil {
		t.Features = []string{}
	}
	out := make([]string, 0, len(t.Tags))
	for _, tag := range t.Tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || tag == "#" {
			continue
		}
		if !strings.HasPrefix(tag, "#") {
			tag = "#" + tag
		}
		out = append(out, tag)
	}
	t.Tags = out
}

func validateImages(images []llm.Image) ([]llm.Image, error) {
	out := make([]llm.Image, len(images))
	for i, img := range images {
		valid, err := ValidateImage(img)
		if err != nil {
			return nil, err
		}
		out[i] = valid
	}
	return out, nil
}
