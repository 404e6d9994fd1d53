package repository

import (
	"context"

	"github.com/google/uuid"

	"conduit-backend/internal/domains/article/model"
)

// ListFilter composes conjunctively. FavoritedByID is the already-resolved
// user id; resolving the username (and short-circuiting when it doesn't
// exist) is the service's job.
type ListFilter struct {
	Tag            string
	AuthorUsername string
	FavoritedByID  *uuid.UUID
	Limit          int
	Offset         int
}

type ArticleRepository interface {
	// Create inserts the article; a slug collision surfaces as
	// model.ErrSlugTaken.
	Create(ctx context.Context, article *model.Article) error

	// GetBySlug resolves the article with its author.
	GetBySlug(ctx context.Context, slug string) (*model.Article, error)

	// GetBySlugForAuthor is the ownership-scoped lookup: "doesn't exist"
	// and "not yours" are deliberately indistinguishable.
	GetBySlugForAuthor(ctx context.Context, slug string, authorID uuid.UUID) (*model.Article, error)

	Update(ctx context.Context, article *model.Article) error

	// Delete removes the article and, in the same transaction, its
	// comments and favourite rows. Reports whether a row was removed.
	Delete(ctx context.Context, slug string, authorID uuid.UUID) (bool, error)

	// List returns a page plus the unpaginated total, always ordered by
	// creation time descending.
	List(ctx context.Context, filter ListFilter) ([]*model.Article, int, error)

	// Feed restricts to articles whose author the viewer follows.
	Feed(ctx context.Context, viewerID uuid.UUID, limit, offset int) ([]*model.Article, int, error)

	DistinctTags(ctx context.Context) ([]string, error)
}

type FavouriteRepository interface {
	IsFavorited(ctx context.Context, userID, articleID uuid.UUID) (bool, error)

	// FavoritedSet returns the subset of articleIDs the user favorited.
	FavoritedSet(ctx context.Context, userID uuid.UUID, articleIDs []uuid.UUID) (map[uuid.UUID]bool, error)

	// Favorite creates the edge and increments favorites_count in one
	// transaction; a duplicate edge fails with model.ErrAlreadyFavorited
	// and leaves the counter untouched.
	Favorite(ctx context.Context, userID, articleID uuid.UUID) error

	// Unfavorite removes the edge and decrements favorites_count in one
	// transaction; a missing edge fails with model.ErrNotFavorited and
	// leaves the counter untouched.
	Unfavorite(ctx context.Context, userID, articleID uuid.UUID) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error

	// ListByArticle resolves each comment with its author.
	ListByArticle(ctx context.Context, articleID uuid.UUID) ([]*model.Comment, error)

	// Delete is ownership-scoped; reports whether a row was removed.
	Delete(ctx context.Context, commentID, authorID uuid.UUID) (bool, error)
}
