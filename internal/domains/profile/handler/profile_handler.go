package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"conduit-backend/internal/domains/profile/model"
	"conduit-backend/internal/domains/profile/service"
	"conduit-backend/internal/shared/middleware"
	"conduit-backend/internal/shared/response"
	"conduit-backend/pkg/logger"
)

type ProfileHandler struct {
	service service.ServiceInterface
}

func NewProfileHandler(service service.ServiceInterface) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Get handles GET /profiles/:username (viewer optional)
func (h *ProfileHandler) Get(c *gin.Context) {
	viewer := middleware.CurrentViewer(c)
	username := c.Param("username")

	profile, err := h.service.GetProfile(c.Request.Context(), viewer, username)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// Follow handles POST /profiles/:username/follow
func (h *ProfileHandler) Follow(c *gin.Context) {
	viewer := middleware.CurrentViewer(c)
	if viewer == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	profile, err := h.service.FollowUser(c.Request.Context(), *viewer, c.Param("username"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// Unfollow handles DELETE /profiles/:username/follow
func (h *ProfileHandler) Unfollow(c *gin.Context) {
	viewer := middleware.CurrentViewer(c)
	if viewer == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	profile, err := h.service.UnfollowUser(c.Request.Context(), *viewer, c.Param("username"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

func (h *ProfileHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrProfileNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrSelfFollow):
		response.UnprocessableEntity(c, err.Error())
	case errors.Is(err, model.ErrAlreadyFollowing):
		response.Conflict(c, err.Error())
	default:
		logger.Error("profile handler error", err)
		response.InternalServerError(c, "internal server error")
	}
}
