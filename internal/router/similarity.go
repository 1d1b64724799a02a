package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/DjordjeVuckovic/genai-lab/internal/dto"
	"github.com/DjordjeVuckovic/genai-lab/internal/embedding"
	"github.com/DjordjeVuckovic/genai-lab/internal/semantic"
	"github.com/DjordjeVuckovic/genai-lab/pkg/similarity"
	"github.com/labstack/echo/v4"
)

type SimilarityRouter struct {
	e        *echo.Echo
	service  *semantic.Service
	embedder *embedding.Embedder
}

func NewSimilarityRouter(e *echo.Echo, embedder *embedding.Embedder) *SimilarityRouter {
	return &SimilarityRouter{
		e:        e,
		service:  semantic.NewService(embedder),
		embedder: embedder,
	}
}

func (r *SimilarityRouter) Bind() {
	g := r.e.Group("/similarity")
	g.POST("/compare", r.compare)
	g.POST("/rank", r.rank)
	g.POST("/threshold", r.threshold)
	g.POST("/top-k", r.topK)
	g.POST("/pairwise", r.pairwise)
	g.POST("/duplicates", r.duplicates)
	g.POST("/cluster", r.cluster)
	g.POST("/vectors", r.vectors)

	r.e.POST("/embeddings", r.embed)
}

// compare godoc
// @Summary Compare two texts
// @Tags similarity
// @Accept json
// @Produce json
// @Param request body dto.CompareRequest true "texts"
// @Success 200 {object} semantic.Comparison
// @Router /similarity/compare [post]
func (r *SimilarityRouter) compare(c echo.Context) error {
	req, err := bind[dto.CompareRequest](c)
	if err != nil {
		return err
	}
	res, err := r.service.Compare(c.Request().Context(), req.Text1, req.Text2)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// rank godoc
// @Summary Rank texts against a query
// @Tags similarity
// @Param request body dto.RankRequest true "query and texts"
// @Success 200 {object} semantic.Ranking
// @Router /similarity/rank [post]
func (r *SimilarityRouter) rank(c echo.Context) error {
	req, err := bind[dto.RankRequest](c)
	if err != nil {
		return err
	}
	res, err := r.service.CompareMany(c.Request().Context(), req.Query, req.Texts)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// threshold godoc
// @Summary Texts scoring at least the threshold
// @Tags similarity
// @Param request body dto.RankRequest true "query, texts and threshold"
// @Success 200 {object} semantic.Ranking
// @Router /similarity/threshold [post]
func (r *SimilarityRouter) threshold(c echo.Context) error {
	req, err := bind[dto.RankRequest](c)
	if err != nil {
		return err
	}
	res, err := r.service.Threshold(c.Request().Context(), req.Query, req.Texts, req.Threshold)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// topK godoc
// @Summary K most similar texts
// @Tags similarity
// @Param request body dto.RankRequest true "query, texts and k"
// @Success 200 {object} semantic.Ranking
// @Router /similarity/top-k [post]
func (r *SimilarityRouter) topK(c echo.Context) error {
	req, err := bind[dto.RankRequest](c)
	if err != nil {
		return err
	}
	res, err := r.service.TopK(c.Request().Context(), req.Query, req.Texts, req.K)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// pairwise godoc
// @Summary Similarity of every pair of texts
// @Tags similarity
// @Param request body dto.TextsRequest true "texts"
// @Success 200 {object} semantic.PairwiseResult
// @Router /similarity/pairwise [post]
func (r *SimilarityRouter) pairwise(c echo.Context) error {
	req, err := bind[dto.TextsRequest](c)
	if err != nil {
		return err
	}
	res, err := r.service.Pairwise(c.Request().Context(), req.Texts)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// duplicates godoc
// @Summary Near-duplicate pairs
// @Tags similarity
// @Param request body dto.TextsRequest true "texts and threshold (default 0.95)"
// @Success 200 {array} semantic.TextPair
// @Router /similarity/duplicates [post]
func (r *SimilarityRouter) duplicates(c echo.Context) error {
	req, err := bind[dto.TextsRequest](c)
	if err != nil {
		return err
	}
	res, err := r.service.Duplicates(c.Request().Context(), req.Texts, req.Threshold)
	if err != nil {
		return err
	}
	if res == nil {
		res = []semantic.TextPair{}
	}
	return c.JSON(http.StatusOK, res)
}

// cluster godoc
// @Summary Greedy clusters of similar texts
// @Tags similarity
// @Param request body dto.TextsRequest true "texts and threshold (default 0.7)"
// @Success 200 {array} semantic.TextCluster
// @Router /similarity/cluster [post]
func (r *SimilarityRouter) cluster(c echo.Context) error {
	req, err := bind[dto.TextsRequest](c)
	if err != nil {
		return err
	}
	res, err := r.service.Cluster(c.Request().Context(), req.Texts, req.Threshold)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// vectors godoc
// @Summary Compare two raw vectors
// @Tags similarity
// @Param request body dto.VectorsRequest true "vectors"
// @Success 200 {object} dto.VectorsResponse
// @Router /similarity/vectors [post]
func (r *SimilarityRouter) vectors(c echo.Context) error {
	var req dto.VectorsRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if len(req.A) == 0 || len(req.B) == 0 {
		return apperr.NewValidation("vectors a and b are required")
	}

	cos, err := similarity.Cosine(req.A, req.B)
	if err != nil {
		return apperr.NewValidationWrap("cannot compare vectors", err)
	}
	dist, err := similarity.Euclidean(req.A, req.B)
	if err != nil {
		return apperr.NewValidationWrap("cannot compare vectors", err)
	}
	dot, err := similarity.Dot(req.A, req.B)
	if err != nil {
		return apperr.NewValidationWrap("cannot compare vectors", err)
	}

	return c.JSON(http.StatusOK, dto.VectorsResponse{
		Cosine:         cos,
		Percent:        similarity.Percent(cos),
		Euclidean:      dist,
		Dot:            dot,
		Interpretation: string(similarity.Interpret(cos)),
	})
}

// embed godoc
// @Summary Embed texts
// @Tags embedding
// @Param request body dto.EmbedRequest true "texts"
// @Success 200 {object} dto.EmbedResponse
// @Router /embeddings [post]
func (r *SimilarityRouter) embed(c echo.Context) error {
	req, err := bind[dto.EmbedRequest](c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	var vecs [][]float32
	if req.Query {
		for _, t := range req.Texts {
			v, err := r.embedder.EmbedQuery(ctx, t)
			if err != nil {
				return err
			}
			vecs = append(vecs, v)
		}
	} else {
		vecs, err = r.embedder.EmbedTexts(ctx, req.Texts)
		if err != nil {
			return err
		}
	}

	dims := 0
	if len(vecs) > 0 {
		dims = len(vecs[0])
	}
	return c.JSON(http.StatusOK, dto.EmbedResponse{
		Model:      r.embedder.Model(),
		Dimensions: dims,
		Embeddings: vecs,
	})
}
