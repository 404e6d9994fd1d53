package service

import (
	"context"
	"time"

	"conduit-backend/internal/domains/article/model"
	"conduit-backend/internal/shared"
)

// ServiceInterface is the aggregation layer: every article or collection it
// returns carries the viewer-scoped favorited/following flags.
type ServiceInterface interface {
	CreateArticle(ctx context.Context, viewer shared.Viewer, req model.CreateArticleRequest) (*model.ArticlePayload, error)
	GetArticle(ctx context.Context, viewer *shared.Viewer, slug string) (*model.ArticlePayload, error)
	UpdateArticle(ctx context.Context, viewer shared.Viewer, slug string, req model.UpdateArticleRequest) (*model.ArticlePayload, error)
	DeleteArticle(ctx context.Context, viewer shared.Viewer, slug string) error

	ListArticles(ctx context.Context, viewer *shared.Viewer, query model.ListQuery) (*model.ArticlesPayload, error)
	Feed(ctx context.Context, viewer shared.Viewer, limit, offset int) (*model.ArticlesPayload, error)

	FavoriteArticle(ctx context.Context, viewer shared.Viewer, slug string) (*model.ArticlePayload, error)
	UnfavoriteArticle(ctx context.Context, viewer shared.Viewer, slug string) (*model.ArticlePayload, error)

	AddComment(ctx context.Context, viewer shared.Viewer, slug string, req model.CreateCommentRequest) (*model.CommentPayload, error)
	ListComments(ctx context.Context, viewer *shared.Viewer, slug string) ([]*model.CommentPayload, error)
	DeleteComment(ctx context.Context, viewer shared.Viewer, slug, commentID string) error

	Tags(ctx context.Context) ([]string, error)
}

// TagCache is the slice of the redis cache the tags endpoint needs.
type TagCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
