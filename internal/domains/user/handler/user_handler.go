package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"conduit-backend/internal/domains/user/model"
	"conduit-backend/internal/domains/user/service"
	"conduit-backend/internal/shared/middleware"
	"conduit-backend/internal/shared/response"
	"conduit-backend/pkg/jwt"
	"conduit-backend/pkg/logger"
)

type UserHandler struct {
	service    service.ServiceInterface
	jwtManager *jwt.Manager
}

func NewUserHandler(service service.ServiceInterface, jwtManager *jwt.Manager) *UserHandler {
	return &UserHandler{service: service, jwtManager: jwtManager}
}

// Register handles POST /users
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	token, err := h.jwtManager.GenerateToken(user.ID.String(), user.Username)
	if err != nil {
		logger.Error("failed to issue token", err)
		response.InternalServerError(c, "failed to issue token")
		return
	}

	response.Success(c, http.StatusCreated, model.NewUserPayload(user, token))
}

// Login handles POST /users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	user, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	token, err := h.jwtManager.GenerateToken(user.ID.String(), user.Username)
	if err != nil {
		logger.Error("failed to issue token", err)
		response.InternalServerError(c, "failed to issue token")
		return
	}

	response.Success(c, http.StatusOK, model.NewUserPayload(user, token))
}

// Current handles GET /user
func (h *UserHandler) Current(c *gin.Context) {
	viewer := middleware.CurrentViewer(c)
	if viewer == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	user, err := h.service.GetCurrent(c.Request.Context(), viewer.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	// Re-issue a token so the client always leaves with a fresh one.
	token, err := h.jwtManager.GenerateToken(user.ID.String(), user.Username)
	if err != nil {
		logger.Error("failed to issue token", err)
		response.InternalServerError(c, "failed to issue token")
		return
	}

	response.Success(c, http.StatusOK, model.NewUserPayload(user, token))
}

// Update handles PUT /user
func (h *UserHandler) Update(c *gin.Context) {
	viewer := middleware.CurrentViewer(c)
	if viewer == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	user, err := h.service.Update(c.Request.Context(), viewer.ID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	token, err := h.jwtManager.GenerateToken(user.ID.String(), user.Username)
	if err != nil {
		logger.Error("failed to issue token", err)
		response.InternalServerError(c, "failed to issue token")
		return
	}

	response.Success(c, http.StatusOK, model.NewUserPayload(user, token))
}

func (h *UserHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrUserExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, model.ErrInvalidCredentials), errors.Is(err, model.ErrUserNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("user handler error", err)
		response.InternalServerError(c, "internal server error")
	}
}
