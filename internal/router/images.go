package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/genai-lab/internal/dto"
	"github.com/DjordjeVuckovic/genai-lab/internal/llm"
	"github.com/labstack/echo/v4"
)

type ImageRouter struct {
	e     *echo.Echo
	model llm.ImageModel
}

func NewImageRouter(e *echo.Echo, model llm.ImageModel) *ImageRouter {
	return &ImageRouter{
		e:     e,
		model: model,
	}
}

func (r *ImageRouter) Bind() {
	r.e.POST("/images/generate", r.generate)
}

// generate godoc
// @Summary Generate images from a text prompt
// @Tags images
// @Param request body dto.ImageGenerateRequest true "prompt"
// @Success 200 {object} dto.ImageGenerateResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /images/generate [post]
func (r *ImageRouter) generate(c echo.Context) error {
	req, err := bind[dto.ImageGenerateRequest](c)
	if err != nil {
		return err
	}
	images, err := r.model.Generate(c.Request().Context(), &llm.ImageRequest{
		Prompt:         req.Prompt,
		NegativePrompt: req.NegativePrompt,
		Count:          req.Count,
		AspectRatio:    req.AspectRatio,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ImageGenerateResponse{
		Model:  r.model.Name(),
		Prompt: req.Prompt,
		Images: images,
	})
}
