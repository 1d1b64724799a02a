package router

import (
	"net/http"
	"strings"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/DjordjeVuckovic/genai-lab/internal/dto"
	"github.com/DjordjeVuckovic/genai-lab/internal/evaluation"
	"github.com/labstack/echo/v4"
)

type EvaluationRouter struct {
	e         *echo.Echo
	relevancy *evaluation.Relevancy
	facts     *evaluation.FactChecking
	rag       *evaluation.RAGEvaluator
}

func NewEvaluationRouter(e *echo.Echo, relevancy *evaluation.Relevancy, facts *evaluation.FactChecking, rag *evaluation.RAGEvaluator) *EvaluationRouter {
	return &EvaluationRouter{
		e:         e,
		relevancy: relevancy,
		facts:     facts,
		rag:       rag,
	}
}

func (r *EvaluationRouter) Bind() {
	g := r.e.Group("/evaluation")
	g.POST("/relevancy", r.evaluateRelevancy)
	g.POST("/fact-check", r.factCheck)
	g.POST("/hallucination", r.hallucination)
	g.POST("/claims", r.claims)
	g.POST("/rag", r.evaluateRAG)
}

// evaluateRelevancy godoc
// @Summary Judge whether an answer fits the question and context
// @Tags evaluation
// @Param request body evaluation.Request true "question, context and answer"
// @Success 200 {object} evaluation.Result
// @Router /evaluation/relevancy [post]
func (r *EvaluationRouter) evaluateRelevancy(c echo.Context) error {
	var req evaluation.Request
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.Answer) == "" {
		return apperr.NewValidation("question and answer are required")
	}
	res, err := r.relevancy.Evaluate(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// factCheck godoc
// @Summary Judge whether a document supports a claim
// @Tags evaluation
// @Param request body dto.FactCheckRequest true "document and claim"
// @Success 200 {object} evaluation.Result
// @Router /evaluation/fact-check [post]
func (r *EvaluationRouter) factCheck(c echo.Context) error {
	req, err := bind[dto.FactCheckRequest](c)
	if err != nil {
		return err
	}
	res, err := r.facts.Check(c.Request().Context(), req.Document, req.Claim)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// hallucination godoc
// @Summary Flag an answer its source does not support
// @Tags evaluation
// @Param request body dto.FactCheckRequest true "source document and answer as claim"
// @Success 200 {object} evaluation.Hallucination
// @Router /evaluation/hallucination [post]
func (r *EvaluationRouter) hallucination(c echo.Context) error {
	req, err := bind[dto.FactCheckRequest](c)
	if err != nil {
		return err
	}
	res, err := r.facts.DetectHallucination(c.Request().Context(), req.Document, req.Claim)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// claims godoc
// @Summary Fact-check several claims against one document
// @Tags evaluation
// @Param request body dto.ClaimsRequest true "document and claims"
// @Success 200 {object} dto.ClaimsResponse
// @Router /evaluation/claims [post]
func (r *EvaluationRouter) claims(c echo.Context) error {
	req, err := bind[dto.ClaimsRequest](c)
	if err != nil {
		return err
	}
	res, err := r.facts.CheckClaims(c.Request().Context(), req.Document, req.Claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ClaimsResponse{Supported: res})
}

// evaluateRAG godoc
// @Summary Ask questions through RAG and grade every answer
// @Tags evaluation
// @Param request body dto.EvaluateRAGRequest true "questions"
// @Success 200 {array} evaluation.RAGResult
// @Router /evaluation/rag [post]
func (r *EvaluationRouter) evaluateRAG(c echo.Context) error {
	req, err := bind[dto.EvaluateRAGRequest](c)
	if err != nil {
		return err
	}
	res, err := r.rag.EvaluateMany(c.Request().Context(), req.Questions)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
