package router

import (
	"errors"
	"net/http"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/DjordjeVuckovic/genai-lab/internal/dto"
	"github.com/DjordjeVuckovic/genai-lab/internal/tools"
	"github.com/labstack/echo/v4"
)

type ToolRouter struct {
	e     *echo.Echo
	agent *tools.Agent
}

func NewToolRouter(e *echo.Echo, agent *tools.Agent) *ToolRouter {
	return &ToolRouter{
		e:     e,
		agent: agent,
	}
}

func (r *ToolRouter) Bind() {
	g := r.e.Group("/tools")
	g.GET("", r.list)
	g.POST("/agent", r.run)
	g.POST("/:name", r.call)
}

// list godoc
// @Summary Tool definitions offered to the model
// @Tags tools
// @Success 200 {array} llm.ToolDefinition
// @Router /tools [get]
func (r *ToolRouter) list(c echo.Context) error {
	return c.JSON(http.StatusOK, r.agent.Registry().Definitions())
}

// call godoc
// @Summary Invoke one tool directly
// @Tags tools
// @Param name path string true "tool name"
// @Param request body dto.ToolCallRequest true "arguments"
// @Success 200 {object} dto.ToolCallResponse
// @Router /tools/{name} [post]
func (r *ToolRouter) call(c echo.Context) error {
	var req dto.ToolCallRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	args := string(req.Arguments)
	if len(req.Arguments) == 0 {
		args = "{}"
	}
	name := c.Param("name")
	res, err := r.agent.Registry().Call(c.Request().Context(), name, args)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToolCallResponse{Tool: name, Result: res})
}

// run godoc
// @Summary Answer a question with tool calling
// @Tags tools
// @Param request body dto.AgentRequest true "question"
// @Success 200 {object} tools.Result
// @Router /tools/agent [post]
func (r *ToolRouter) run(c echo.Context) error {
	req, err := bind[dto.AgentRequest](c)
	if err != nil {
		return err
	}
	res, err := r.agent.Ask(c.Request().Context(), req.System, req.Question)
	// an exhausted loop still reports the calls it made
	if err != nil && !errors.Is(err, tools.ErrMaxSteps) {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
