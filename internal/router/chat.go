package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/genai-lab/internal/chat"
	"github.com/DjordjeVuckovic/genai-lab/internal/dto"
	"github.com/labstack/echo/v4"
)

type ChatRouter struct {
	e       *echo.Echo
	service *chat.Service
}

func NewChatRouter(e *echo.Echo, service *chat.Service) *ChatRouter {
	return &ChatRouter{
		e:       e,
		service: service,
	}
}

func (r *ChatRouter) Bind() {
	g := r.e.Group("/chat")
	g.POST("", r.ask)
	g.POST("/few-shot", r.fewShot)
	g.POST("/smart", r.smart)
	g.POST("/cost-optimized", r.costOptimized)
	g.GET("/sessions", r.sessions)
	g.POST("/sessions/:id", r.converse)
	g.GET("/sessions/:id", r.history)
	g.DELETE("/sessions/:id", r.clear)
}

// ask godoc
// @Summary Single chat completion with an optional system prompt
// @Tags chat
// @Param request body dto.ChatRequest true "message"
// @Success 200 {object} chat.Reply
// @Failure 503 {object} map[string]string
// @Router /chat [post]
func (r *ChatRouter) ask(c echo.Context) error {
	req, err := bind[dto.ChatRequest](c)
	if err != nil {
		return err
	}
	var reply *chat.Reply
	if req.System != "" {
		reply, err = r.service.AskWithSystem(c.Request().Context(), req.System, req.Message)
	} else {
		reply, err = r.service.Ask(c.Request().Context(), req.Message)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reply)
}

// fewShot godoc
// @Summary Answer after worked examples
// @Tags chat
// @Param request body dto.FewShotRequest true "examples and input"
// @Success 200 {object} chat.Reply
// @Router /chat/few-shot [post]
func (r *ChatRouter) fewShot(c echo.Context) error {
	req, err := bind[dto.FewShotRequest](c)
	if err != nil {
		return err
	}
	reply, err := r.service.FewShot(c.Request().Context(), req.System, req.Examples, req.Input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reply)
}

// smart godoc
// @Summary Route by question complexity
// @Tags chat
// @Param request body dto.ChatRequest true "message"
// @Success 200 {object} chat.Reply
// @Router /chat/smart [post]
func (r *ChatRouter) smart(c echo.Context) error {
	req, err := bind[dto.ChatRequest](c)
	if err != nil {
		return err
	}
	reply, err := r.service.SmartChat(c.Request().Context(), req.Message)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reply)
}

// costOptimized godoc
// @Summary Route greetings to the light model
// @Tags chat
// @Param request body dto.ChatRequest true "message"
// @Success 200 {object} chat.Reply
// @Router /chat/cost-optimized [post]
func (r *ChatRouter) costOptimized(c echo.Context) error {
	req, err := bind[dto.ChatRequest](c)
	if err != nil {
		return err
	}
	reply, err := r.service.CostOptimized(c.Request().Context(), req.Message)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reply)
}

// converse godoc
// @Summary Continue a conversation
// @Tags chat
// @Param id path string true "session id"
// @Param request body dto.ChatRequest true "message"
// @Success 200 {object} chat.Reply
// @Router /chat/sessions/{id} [post]
func (r *ChatRouter) converse(c echo.Context) error {
	req, err := bind[dto.ChatRequest](c)
	if err != nil {
		return err
	}
	reply, err := r.service.Converse(c.Request().Context(), c.Param("id"), req.Message)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reply)
}

// history godoc
// @Summary Stored messages of a session
// @Tags chat
// @Param id path string true "session id"
// @Success 200 {array} llm.Message
// @Router /chat/sessions/{id} [get]
func (r *ChatRouter) history(c echo.Context) error {
	msgs, err := r.service.History(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msgs)
}

// clear godoc
// @Summary Forget a session
// @Tags chat
// @Param id path string true "session id"
// @Success 204
// @Router /chat/sessions/{id} [delete]
func (r *ChatRouter) clear(c echo.Context) error {
	if err := r.service.Clear(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// sessions godoc
// @Summary Known session ids
// @Tags chat
// @Success 200 {object} dto.SessionsResponse
// @Router /chat/sessions [get]
func (r *ChatRouter) sessions(c echo.Context) error {
	ids, err := r.service.Sessions(c.Request().Context())
	if err != nil {
		return err
	}
	if ids == nil {
		ids = []string{}
	}
	return c.JSON(http.StatusOK, dto.SessionsResponse{Sessions: ids})
}
