package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/DjordjeVuckovic/genai-lab/internal/dto"
	"github.com/DjordjeVuckovic/genai-lab/internal/semantic"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage"
	"github.com/DjordjeVuckovic/genai-lab/pkg/pagination"
	"github.com/labstack/echo/v4"
)

type DocumentRouter struct {
	e     *echo.Echo
	index *semantic.Index
}

func NewDocumentRouter(e *echo.Echo, index *semantic.Index) *DocumentRouter {
	return &DocumentRouter{
		e:     e,
		index: index,
	}
}

func (r *DocumentRouter) Bind() {
	g := r.e.Group("/documents")
	g.POST("", r.add)
	g.GET("", r.list)
	g.DELETE("", r.clear)
	g.GET("/count", r.count)
	g.POST("/search", r.search)
	g.GET("/:id", r.get)
	g.DELETE("/:id", r.remove)
}

// add godoc
// @Summary Embed and store documents
// @Tags documents
// @Param request body dto.AddDocumentsRequest true "documents"
// @Success 201 {object} dto.AddDocumentsResponse
// @Router /documents [post]
func (r *DocumentRouter) add(c echo.Context) error {
	req, err := bind[dto.AddDocumentsRequest](c)
	if err != nil {
		return err
	}
	docs := make([]storage.Document, len(req.Documents))
	for i, d := range req.Documents {
		docs[i] = storage.Document{ID: d.ID, Content: d.Content, Metadata: d.Metadata}
	}
	ids, err := r.index.AddDocuments(c.Request().Context(), docs)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.AddDocumentsResponse{IDs: ids})
}

// list godoc
// @Summary List stored documents
// @Tags documents
// @Param page query int false "page, from 1"
// @Param size query int false "page size"
// @Success 200 {object} pagination.OffsetResult[storage.Document]
// @Router /documents [get]
func (r *DocumentRouter) list(c echo.Context) error {
	var page pagination.OffsetRequest
	if err := c.Bind(&page); err != nil {
		return apperr.NewValidationWrap("invalid pagination", err)
	}
	_ = page.Validate()

	ctx := c.Request().Context()
	total, err := r.index.Count(ctx)
	if err != nil {
		return err
	}
	docs, err := r.index.Documents(ctx, page.Offset(), page.Size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagination.NewOffsetResult(docs, int64(total), page.Page, page.Size))
}

// count godoc
// @Summary Number of stored documents
// @Tags documents
// @Success 200 {object} dto.CountResponse
// @Router /documents/count [get]
func (r *DocumentRouter) count(c echo.Context) error {
	n, err := r.index.Count(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.CountResponse{Count: n})
}

// search godoc
// @Summary Semantic search over stored documents
// @Tags documents
// @Param request body semantic.Query true "query"
// @Success 200 {array} semantic.SearchHit
// @Router /documents/search [post]
func (r *DocumentRouter) search(c echo.Context) error {
	var q semantic.Query
	if err := c.Bind(&q); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	hits, err := r.index.Search(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hits)
}

// get godoc
// @Summary Get a document
// @Tags documents
// @Param id path string true "document id"
// @Success 200 {object} storage.Document
// @Failure 404 {object} map[string]string
// @Router /documents/{id} [get]
func (r *DocumentRouter) get(c echo.Context) error {
	doc, err := r.index.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doc)
}

// remove godoc
// @Summary Delete a document
// @Tags documents
// @Param id path string true "document id"
// @Success 204
// @Router /documents/{id} [delete]
func (r *DocumentRouter) remove(c echo.Context) error {
	if err := r.index.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// clear godoc
// @Summary Delete every document
// @Tags documents
// @Success 200 {object} dto.CountResponse
// @Router /documents [delete]
func (r *DocumentRouter) clear(c echo.Context) error {
	n, err := r.index.Clear(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.CountResponse{Count: n})
}
