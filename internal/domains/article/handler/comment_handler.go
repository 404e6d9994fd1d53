package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"conduit-backend/internal/domains/article/model"
	"conduit-backend/internal/domains/article/service"
	"conduit-backend/internal/shared/middleware"
	"conduit-backend/internal/shared/response"
)

type CommentHandler struct {
	service service.ServiceInterface
}

func NewCommentHandler(service service.ServiceInterface) *CommentHandler {
	return &CommentHandler{service: service}
}

// Create handles POST /articles/:slug/comments
func (h *CommentHandler) Create(c *gin.Context) {
	viewer := middleware.CurrentViewer(c)
	if viewer == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), *viewer, c.Param("slug"), req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, comment)
}

// List handles GET /articles/:slug/comments (viewer optional)
func (h *CommentHandler) List(c *gin.Context) {
	viewer := middleware.CurrentViewer(c)

	comments, err := h.service.ListComments(c.Request.Context(), viewer, c.Param("slug"))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"comments": comments})
}

// Delete handles DELETE /articles/:slug/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	viewer := middleware.CurrentViewer(c)
	if viewer == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	err := h.service.DeleteComment(c.Request.Context(), *viewer, c.Param("slug"), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, nil)
}
