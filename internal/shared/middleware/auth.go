package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"conduit-backend/internal/shared"
	"conduit-backend/pkg/jwt"
)

const viewerKey = "viewer"

// Auth requires a valid bearer token and places the resolved viewer in the
// request context. Requests without one are rejected with 401.
func Auth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer, ok := resolveViewer(c, jwtManager)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "missing or invalid authorization token"},
			})
			c.Abort()
			return
		}

		c.Set(viewerKey, viewer)
		c.Next()
	}
}

// OptionalAuth resolves the viewer when a valid token is present and leaves
// the request anonymous otherwise. Anonymous is a first-class state for the
// read paths, never an error.
func OptionalAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if viewer, ok := resolveViewer(c, jwtManager); ok {
			c.Set(viewerKey, viewer)
		}
		c.Next()
	}
}

// CurrentViewer returns the viewer set by Auth/OptionalAuth, or nil for an
// anonymous request.
func CurrentViewer(c *gin.Context) *shared.Viewer {
	value, exists := c.Get(viewerKey)
	if !exists {
		return nil
	}

	viewer, ok := value.(*shared.Viewer)
	if !ok {
		return nil
	}
	return viewer
}

func resolveViewer(c *gin.Context, jwtManager *jwt.Manager) (*shared.Viewer, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || (parts[0] != "Bearer" && parts[0] != "Token") {
		return nil, false
	}

	claims, err := jwtManager.ValidateToken(parts[1])
	if err != nil {
		return nil, false
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, false
	}

	return &shared.Viewer{ID: userID, Username: claims.Username}, true
}
