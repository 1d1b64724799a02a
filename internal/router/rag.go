package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/genai-lab/internal/dto"
	"github.com/DjordjeVuckovic/genai-lab/internal/rag"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage"
	"github.com/labstack/echo/v4"
)

type RAGRouter struct {
	e        *echo.Echo
	service  *rag.Service
	pipeline *rag.Pipeline
	store    storage.Store
	dir      string
}

type RAGRouterOption func(r *RAGRouter)

// WithPipeline enables the reindex and status endpoints for documents under dir.
func WithPipeline(p *rag.Pipeline, store storage.Store, dir string) RAGRouterOption {
	return func(r *RAGRouter) {
		r.pipeline = p
		r.store = store
		r.dir = dir
	}
}

func NewRAGRouter(e *echo.Echo, service *rag.Service, opts ...RAGRouterOption) *RAGRouter {
	r := &RAGRouter{
		e:       e,
		service: service,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *RAGRouter) Bind() {
	g := r.e.Group("/rag")
	g.POST("/ask", r.ask)
	g.POST("/retrieve", r.retrieve)
	g.POST("/ingest", r.ingest)
	if r.pipeline != nil {
		g.POST("/reindex", r.reindex)
		g.GET("/status", r.status)
	}
}

// ask godoc
// @Summary Answer a question from retrieved documents
// @Tags rag
// @Param request body dto.AskRequest true "question and optional metadata filter"
// @Success 200 {object} rag.Answer
// @Router /rag/ask [post]
func (r *RAGRouter) ask(c echo.Context) error {
	req, err := bind[dto.AskRequest](c)
	if err != nil {
		return err
	}
	ans, err := r.service.AskWithSources(c.Request().Context(), req.Question, req.Filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ans)
}

// retrieve godoc
// @Summary Retrieve chunks without calling the model
// @Tags rag
// @Param request body dto.RetrieveRequest true "query"
// @Success 200 {array} storage.Hit
// @Router /rag/retrieve [post]
func (r *RAGRouter) retrieve(c echo.Context) error {
	req, err := bind[dto.RetrieveRequest](c)
	if err != nil {
		return err
	}
	hits, err := r.service.Retriever().RetrieveK(c.Request().Context(), req.Query, req.TopK, req.Filter)
	if err != nil {
		return err
	}
	if hits == nil {
		hits = []storage.Hit{}
	}
	return c.JSON(http.StatusOK, hits)
}

// ingest godoc
// @Summary Chunk, embed and store raw texts
// @Tags rag
// @Param request body dto.IngestRequest true "texts"
// @Success 201 {object} dto.IngestResponse
// @Router /rag/ingest [post]
func (r *RAGRouter) ingest(c echo.Context) error {
	req, err := bind[dto.IngestRequest](c)
	if err != nil {
		return err
	}
	ids, err := r.service.Ingest(c.Request().Context(), req.Texts, req.Metadata)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.IngestResponse{IDs: ids, Chunks: len(ids)})
}

// reindex godoc
// @Summary Re-run the document pipeline over the documents directory
// @Tags rag
// @Success 200 {object} rag.Report
// @Router /rag/reindex [post]
func (r *RAGRouter) reindex(c echo.Context) error {
	report, err := r.pipeline.Run(c.Request().Context(), r.dir)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// status godoc
// @Summary Tracked files and stored chunk count
// @Tags rag
// @Success 200 {object} dto.IndexStatus
// @Router /rag/status [get]
func (r *RAGRouter) status(c echo.Context) error {
	chunks, err := r.store.Count(c.Request().Context())
	if err != nil {
		return err
	}
	tracker := r.pipeline.Tracker()
	return c.JSON(http.StatusOK, dto.IndexStatus{
		Directory:    r.dir,
		TrackedFiles: tracker.Count(),
		Files:        tracker.Paths(),
		Chunks:       chunks,
	})
}
