package container

import (
	"context"
	"fmt"
	"time"

	"conduit-backend/internal/config"
	"conduit-backend/internal/infrastructure/cache"
	"conduit-backend/internal/infrastructure/database"
	"conduit-backend/pkg/jwt"
	"conduit-backend/pkg/logger"

	articleHandler "conduit-backend/internal/domains/article/handler"
	articleRepo "conduit-backend/internal/domains/article/repository"
	articleService "conduit-backend/internal/domains/article/service"
	profileHandler "conduit-backend/internal/domains/profile/handler"
	profileRepo "conduit-backend/internal/domains/profile/repository"
	profileService "conduit-backend/internal/domains/profile/service"
	userHandler "conduit-backend/internal/domains/user/handler"
	userRepo "conduit-backend/internal/domains/user/repository"
	userService "conduit-backend/internal/domains/user/service"
)

// =====================================================
// CONTAINER
// =====================================================

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      *cache.RedisCache
	JWTManager *jwt.Manager

	UserRepo      userRepo.UserRepository
	FollowRepo    profileRepo.FollowRepository
	ArticleRepo   articleRepo.ArticleRepository
	FavouriteRepo articleRepo.FavouriteRepository
	CommentRepo   articleRepo.CommentRepository

	UserService    userService.ServiceInterface
	ProfileService profileService.ServiceInterface
	ArticleService articleService.ServiceInterface

	UserHandler    *userHandler.UserHandler
	ProfileHandler *profileHandler.ProfileHandler
	ArticleHandler *articleHandler.ArticleHandler
	CommentHandler *articleHandler.CommentHandler
}

// NewContainer builds the whole graph. Initialization order matters:
// config, infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Infof("config loaded (environment: %s)", cfg.App.Environment)

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	logger.Info("database connected")

	redisCache := cache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(context.Background()); err != nil {
		// The tag cache degrades gracefully, so redis being down is not fatal.
		logger.Error("redis connection failed (non-critical)", err)
	} else {
		logger.Info("redis connected")
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("container initialized")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresUserRepository(pool)
	c.FollowRepo = profileRepo.NewPostgresFollowRepository(pool)
	c.ArticleRepo = articleRepo.NewPostgresArticleRepository(pool)
	c.FavouriteRepo = articleRepo.NewPostgresFavouriteRepository(pool)
	c.CommentRepo = articleRepo.NewPostgresCommentRepository(pool)
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo)
	c.ProfileService = profileService.NewProfileService(c.FollowRepo, c.UserRepo)
	c.ArticleService = articleService.NewArticleService(
		c.ArticleRepo,
		c.FavouriteRepo,
		c.CommentRepo,
		c.FollowRepo,
		c.UserRepo,
		c.Cache,
	)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService, c.JWTManager)
	c.ProfileHandler = profileHandler.NewProfileHandler(c.ProfileService)
	c.ArticleHandler = articleHandler.NewArticleHandler(c.ArticleService)
	c.CommentHandler = articleHandler.NewCommentHandler(c.ArticleService)
}

// Cleanup releases infrastructure resources during graceful shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		logger.Info("database connections closed")
	}

	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Error("failed to close redis", err)
		} else {
			logger.Info("redis connections closed")
		}
	}
}
