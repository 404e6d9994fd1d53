package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"conduit-backend/internal/shared/middleware"
	"conduit-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupUserRoutes(api, c)
		setupProfileRoutes(api, c)
		setupArticleRoutes(api, c)
		setupTagRoutes(api, c)
	}

	return router
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := middleware.Auth(c.JWTManager)

	users := api.Group("/users")
	{
		users.POST("", c.UserHandler.Register)
		users.POST("/login", c.UserHandler.Login)
	}

	user := api.Group("/user")
	user.Use(auth)
	{
		user.GET("", c.UserHandler.Current)
		user.PUT("", c.UserHandler.Update)
	}
}

// ========================================
// PROFILE ROUTES
// ========================================
func setupProfileRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := middleware.Auth(c.JWTManager)
	optionalAuth := middleware.OptionalAuth(c.JWTManager)

	profiles := api.Group("/profiles")
	{
		profiles.GET("/:username", optionalAuth, c.ProfileHandler.Get)
		profiles.POST("/:username/follow", auth, c.ProfileHandler.Follow)
		profiles.DELETE("/:username/follow", auth, c.ProfileHandler.Unfollow)
	}
}

// ========================================
// ARTICLE ROUTES
// ========================================
func setupArticleRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := middleware.Auth(c.JWTManager)
	optionalAuth := middleware.OptionalAuth(c.JWTManager)

	articles := api.Group("/articles")
	{
		articles.GET("", optionalAuth, c.ArticleHandler.List)
		articles.POST("", auth, c.ArticleHandler.Create)
		articles.GET("/feed", auth, c.ArticleHandler.Feed)

		articles.GET("/:slug", optionalAuth, c.ArticleHandler.Get)
		articles.PUT("/:slug", auth, c.ArticleHandler.Update)
		articles.DELETE("/:slug", auth, c.ArticleHandler.Delete)

		articles.POST("/:slug/favorite", auth, c.ArticleHandler.Favorite)
		articles.DELETE("/:slug/favorite", auth, c.ArticleHandler.Unfavorite)

		articles.GET("/:slug/comments", optionalAuth, c.CommentHandler.List)
		articles.POST("/:slug/comments", auth, c.CommentHandler.Create)
		articles.DELETE("/:slug/comments/:id", auth, c.CommentHandler.Delete)
	}
}

// ========================================
// TAG ROUTES
// ========================================
func setupTagRoutes(api *gin.RouterGroup, c *container.Container) {
	api.GET("/tags", c.ArticleHandler.Tags)
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		health := gin.H{
			"status":   "ok",
			"database": "ok",
			"redis":    "ok",
		}
		status := http.StatusOK

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			health["status"] = "degraded"
			health["database"] = err.Error()
			status = http.StatusServiceUnavailable
		}

		if err := c.Cache.HealthCheck(ctx.Request.Context()); err != nil {
			// Redis outage only disables the tag cache.
			health["redis"] = err.Error()
		}

		ctx.JSON(status, health)
	}
}
