package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/DjordjeVuckovic/genai-lab/internal/chat"
	"github.com/DjordjeVuckovic/genai-lab/internal/dto"
	"github.com/DjordjeVuckovic/genai-lab/internal/output"
	"github.com/DjordjeVuckovic/genai-lab/internal/prompt"
	"github.com/labstack/echo/v4"
)

// PromptRouter serves the template library and structured output endpoints.
type PromptRouter struct {
	e       *echo.Echo
	library *prompt.Library
	service *chat.Service
}

func NewPromptRouter(e *echo.Echo, library *prompt.Library, service *chat.Service) *PromptRouter {
	return &PromptRouter{
		e:       e,
		library: library,
		service: service,
	}
}

func (r *PromptRouter) Bind() {
	g := r.e.Group("/prompts")
	g.GET("", r.list)
	g.GET("/:name", r.get)
	g.POST("/:name/render", r.render)
	g.POST("/:name/chat", r.chat)

	p := r.e.Group("/parse")
	p.POST("/resume", r.resume)
	p.POST("/resume/basic", r.basicResume)
	p.POST("/skills", r.skills)
	p.POST("/list", r.parseList)
	p.POST("/map", r.parseMap)
}

// list godoc
// @Summary Prompt templates
// @Tags prompts
// @Success 200 {array} prompt.Template
// @Router /prompts [get]
func (r *PromptRouter) list(c echo.Context) error {
	return c.JSON(http.StatusOK, r.library.List())
}

// get godoc
// @Summary Prompt template with its parameters
// @Tags prompts
// @Param name path string true "template name"
// @Success 200 {object} prompt.Template
// @Failure 404 {object} map[string]string
// @Router /prompts/{name} [get]
func (r *PromptRouter) get(c echo.Context) error {
	t, err := r.library.Get(c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"name":        t.Name,
		"description": t.Description,
		"text":        t.Text,
		"params":      t.RequiredParams(),
	})
}

// render godoc
// @Summary Render a template without calling a model
// @Tags prompts
// @Param name path string true "template name"
// @Param request body dto.TemplateRequest true "params"
// @Success 200 {object} dto.RenderResponse
// @Router /prompts/{name}/render [post]
func (r *PromptRouter) render(c echo.Context) error {
	var req dto.TemplateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	text, err := r.library.Render(c.Param("name"), req.Params)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.RenderResponse{Name: c.Param("name"), Text: text})
}

// chat godoc
// @Summary Render a template and send it to the model
// @Tags prompts
// @Param name path string true "template name"
// @Param request body dto.TemplateRequest true "params"
// @Success 200 {object} chat.Reply
// @Router /prompts/{name}/chat [post]
func (r *PromptRouter) chat(c echo.Context) error {
	var req dto.TemplateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	reply, err := r.service.Template(c.Request().Context(), c.Param("name"), req.Params)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reply)
}

// resume godoc
// @Summary Extract full resume information
// @Tags parse
// @Param request body dto.ParseRequest true "resume text"
// @Success 200 {object} chat.ResumeInfo
// @Router /parse/resume [post]
func (r *PromptRouter) resume(c echo.Context) error {
	req, err := bind[dto.ParseRequest](c)
	if err != nil {
		return err
	}
	info, err := r.service.AnalyzeResume(c.Request().Context(), req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, info)
}

// basicResume godoc
// @Summary Extract basic resume information
// @Tags parse
// @Param request body dto.ParseRequest true "resume text"
// @Success 200 {object} chat.BasicResumeInfo
// @Router /parse/resume/basic [post]
func (r *PromptRouter) basicResume(c echo.Context) error {
	req, err := bind[dto.ParseRequest](c)
	if err != nil {
		return err
	}
	info, err := r.service.BasicResume(c.Request().Context(), req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, info)
}

// skills godoc
// @Summary Extract skills from a resume
// @Tags parse
// @Param request body dto.ParseRequest true "resume text"
// @Success 200 {array} chat.Skill
// @Router /parse/skills [post]
func (r *PromptRouter) skills(c echo.Context) error {
	req, err := bind[dto.ParseRequest](c)
	if err != nil {
		return err
	}
	skills, err := r.service.ExtractSkills(c.Request().Context(), req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skills)
}

// parseList godoc
// @Summary Ask for a list and parse the answer
// @Tags parse
// @Param request body dto.ParseRequest true "question and optional separator"
// @Success 200 {object} chat.ListReply
// @Router /parse/list [post]
func (r *PromptRouter) parseList(c echo.Context) error {
	req, err := bind[dto.ParseRequest](c)
	if err != nil {
		return err
	}
	reply, err := r.service.AskList(c.Request().Context(), req.Text, output.NewListParser(req.Separator))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reply)
}

// parseMap godoc
// @Summary Ask for key/value pairs and parse the answer
// @Tags parse
// @Param request body dto.ParseRequest true "question and optional separator"
// @Success 200 {object} chat.MapReply
// @Router /parse/map [post]
func (r *PromptRouter) parseMap(c echo.Context) error {
	req, err := bind[dto.ParseRequest](c)
	if err != nil {
		return err
	}
	reply, err := r.service.AskMap(c.Request().Context(), req.Text, output.NewMapParser(req.Separator))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reply)
}
