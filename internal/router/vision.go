package router

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/DjordjeVuckovic/genai-lab/internal/chat"
	"github.com/DjordjeVuckovic/genai-lab/internal/dto"
	"github.com/DjordjeVuckovic/genai-lab/internal/llm"
	"github.com/labstack/echo/v4"
)

// VisionRouter serves image analysis over multipart uploads.
type VisionRouter struct {
	e       *echo.Echo
	service *chat.Service
}

func NewVisionRouter(e *echo.Echo, service *chat.Service) *VisionRouter {
	return &VisionRouter{
		e:       e,
		service: service,
	}
}

func (r *VisionRouter) Bind() {
	g := r.e.Group("/vision")
	g.GET("/info", r.info)
	g.POST("/analyze", r.analyze)
	g.POST("/describe", r.describe)
	g.POST("/details", r.details)
	g.POST("/compare", r.compare)
	g.POST("/product-tags", r.productTags)
}

type upload struct {
	filename string
	image    llm.Image
}

// info godoc
// @Summary Accepted image formats and size limit
// @Tags vision
// @Success 200 {object} dto.ImageInfoResponse
// @Router /vision/info [get]
func (r *VisionRouter) info(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.ImageInfoResponse{
		SupportedFormats: chat.SupportedImageTypes(),
		MaxFileSizeMB:    chat.MaxImageSize >> 20,
	})
}

// analyze godoc
// @Summary Ask a question about an uploaded image
// @Tags vision
// @Accept multipart/form-data
// @Param file formData file true "image"
// @Param question formData string false "question about the image"
// @Success 200 {object} dto.ImageAnalysisResponse
// @Failure 400 {object} map[string]string
// @Router /vision/analyze [post]
func (r *VisionRouter) analyze(c echo.Context) error {
	question := c.FormValue("question")
	if question == "" {
		question = chat.DefaultImageQuestion
	}
	return r.answer(c, question, func(ctx context.Context, img llm.Image) (*chat.Reply, error) {
		return r.service.AnalyzeImage(ctx, img, question)
	})
}

// describe godoc
// @Summary Describe an uploaded image
// @Tags vision
// @Accept multipart/form-data
// @Param file formData file true "image"
// @Success 200 {object} dto.ImageAnalysisResponse
// @Router /vision/describe [post]
func (r *VisionRouter) describe(c echo.Context) error {
	return r.answer(c, "", r.service.DescribeImage)
}

// details godoc
// @Summary Objects, colors, style, mood and layout of an uploaded image
// @Tags vision
// @Accept multipart/form-data
// @Param file formData file true "image"
// @Success 200 {object} dto.ImageAnalysisResponse
// @Router /vision/details [post]
func (r *VisionRouter) details(c echo.Context) error {
	return r.answer(c, "", r.service.AnalyzeImageDetails)
}

// compare godoc
// @Summary Compare two uploaded images
// @Tags vision
// @Accept multipart/form-data
// @Param first formData file true "first image"
// @Param second formData file true "second image"
// @Param question formData string false "comparison question"
// @Success 200 {object} dto.ImageCompareResponse
// @Router /vision/compare [post]
func (r *VisionRouter) compare(c echo.Context) error {
	first, err := readUpload(c, "first")
	if err != nil {
		return err
	}
	second, err := readUpload(c, "second")
	if err != nil {
		return err
	}
	question := c.FormValue("question")
	if question == "" {
		question = chat.DefaultCompareQuestion
	}

	reply, err := r.service.CompareImages(c.Request().Context(), first.image, second.image, question)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ImageCompareResponse{
		Filenames: []string{first.filename, second.filename},
		Question:  question,
		Answer:    reply.Content,
		Model:     reply.Model,
		Usage:     reply.Usage,
	})
}

// productTags godoc
// @Summary Marketing tags for a product photo
// @Tags vision
// @Accept multipart/form-data
// @Param file formData file true "product image"
// @Success 200 {object} chat.ProductTags
// @Router /vision/product-tags [post]
func (r *VisionRouter) productTags(c echo.Context) error {
	up, err := readUpload(c, "file")
	if err != nil {
		return err
	}
	tags, err := r.service.TagProductImage(c.Request().Context(), up.image)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tags)
}

func (r *VisionRouter) answer(c echo.Context, question string, ask func(context.Context, llm.Image) (*chat.Reply, error)) error {
	up, err := readUpload(c, "file")
	if err != nil {
		return err
	}
	reply, err := ask(c.Request().Context(), up.image)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ImageAnalysisResponse{
		Filename:    up.filename,
		Size:        len(up.image.Data),
		ContentType: up.image.MIMEType,
		Question:    question,
		Answer:      reply.Content,
		Model:       reply.Model,
		Usage:       reply.Usage,
	})
}

// readUpload reads and validates one multipart image field.
func readUpload(c echo.Context, field string) (*upload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, apperr.NewValidationWrap(fmt.Sprintf("multipart file field %q is required", field), err)
	}
	if fh.Size > chat.MaxImageSize {
		return nil, apperr.NewValidation(fmt.Sprintf("image is too large; the limit is %dMB", chat.MaxImageSize>>20))
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, chat.MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("read upload %s: %w", fh.Filename, err)
	}
	img, err := chat.ValidateImage(llm.Image{MIMEType: fh.Header.Get(echo.HeaderContentType), Data: data})
	if err != nil {
		return nil, err
	}
	return &upload{filename: fh.Filename, image: img}, nil
}
