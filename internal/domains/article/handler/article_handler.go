package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"conduit-backend/internal/domains/article/model"
	"conduit-backend/internal/domains/article/service"
	"conduit-backend/internal/shared/middleware"
	"conduit-backend/internal/shared/response"
	"conduit-backend/pkg/logger"
)

type ArticleHandler struct {
	service service.ServiceInterface
}

func NewArticleHandler(service service.ServiceInterface) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// Create handles POST /articles
func (h *ArticleHandler) Create(c *gin.Context) {
	viewer := middleware.CurrentViewer(c)
	if viewer == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	article, err := h.service.CreateArticle(c.Request.Context(), *viewer, req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, article)
}

// Get handles GET /articles/:slug (viewer optional)
func (h *ArticleHandler) Get(c *gin.Context) {
	viewer := middleware.CurrentViewer(c)

	article, err := h.service.GetArticle(c.Request.Context(), viewer, c.Param("slug"))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, article)
}

// Update handles PUT /articles/:slug
func (h *ArticleHandler) Update(c *gin.Context) {
	viewer := middleware.CurrentViewer(c)
	if viewer == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	article, err := h.service.UpdateArticle(c.Request.Context(), *viewer, c.Param("slug"), req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, article)
}

// Delete handles DELETE /articles/:slug
func (h *ArticleHandler) Delete(c *gin.Context) {
	viewer := middleware.CurrentViewer(c)
	if viewer == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	if err := h.service.DeleteArticle(c.Request.Context(), *viewer, c.Param("slug")); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, nil)
}

// List handles GET /articles (viewer optional)
func (h *ArticleHandler) List(c *gin.Context) {
	viewer := middleware.CurrentViewer(c)

	query := model.ListQuery{
		Tag:         c.Query("tag"),
		Author:      c.Query("author"),
		FavoritedBy: c.Query("favorited"),
		Limit:       queryInt(c, "limit", model.DefaultLimit),
		Offset:      queryInt(c, "offset", model.DefaultOffset),
	}

	articles, err := h.service.ListArticles(c.Request.Context(), viewer, query)
	if err != nil {
		handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, articles, &response.Meta{
		Limit:  query.Limit,
		Offset: query.Offset,
		Total:  articles.ArticlesCount,
	})
}

// Feed handles GET /articles/feed; there is no anonymous form.
func (h *ArticleHandler) Feed(c *gin.Context) {
	viewer := middleware.CurrentViewer(c)
	if viewer == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	limit := queryInt(c, "limit", model.DefaultLimit)
	offset := queryInt(c, "offset", model.DefaultOffset)

	articles, err := h.service.Feed(c.Request.Context(), *viewer, limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, articles, &response.Meta{
		Limit:  limit,
		Offset: offset,
		Total:  articles.ArticlesCount,
	})
}

// Favorite handles POST /articles/:slug/favorite
func (h *ArticleHandler) Favorite(c *gin.Context) {
	viewer := middleware.CurrentViewer(c)
	if viewer == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	article, err := h.service.FavoriteArticle(c.Request.Context(), *viewer, c.Param("slug"))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, article)
}

// Unfavorite handles DELETE /articles/:slug/favorite
func (h *ArticleHandler) Unfavorite(c *gin.Context) {
	viewer := middleware.CurrentViewer(c)
	if viewer == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	article, err := h.service.UnfavoriteArticle(c.Request.Context(), *viewer, c.Param("slug"))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, article)
}

// Tags handles GET /tags
func (h *ArticleHandler) Tags(c *gin.Context) {
	tags, err := h.service.Tags(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tags": tags})
}

// handleError maps domain errors to HTTP responses for both the article
// and comment handlers.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrArticleNotFound), errors.Is(err, model.ErrCommentNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrSlugTaken), errors.Is(err, model.ErrAlreadyFavorited):
		response.Conflict(c, err.Error())
	case errors.Is(err, model.ErrNotFavorited):
		response.UnprocessableEntity(c, err.Error())
	default:
		logger.Error("article handler error", err)
		response.InternalServerError(c, "internal server error")
	}
}

func queryInt(c *gin.Context, key string, defaultValue int) int {
	raw := c.Query(key)
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}
