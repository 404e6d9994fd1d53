package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"conduit-backend/internal/domains/article/model"
	"conduit-backend/internal/domains/article/repository"
	profilerepo "conduit-backend/internal/domains/profile/repository"
	usermodel "conduit-backend/internal/domains/user/model"
	userrepo "conduit-backend/internal/domains/user/repository"
	"conduit-backend/internal/shared"
	"conduit-backend/internal/shared/utils"
	"conduit-backend/pkg/logger"
)

const (
	tagCacheKey = "tags"
	tagCacheTTL = 5 * time.Minute
)

type articleService struct {
	articleRepo   repository.ArticleRepository
	favouriteRepo repository.FavouriteRepository
	commentRepo   repository.CommentRepository
	followRepo    profilerepo.FollowRepository
	userRepo      userrepo.UserRepository
	cache         TagCache
}

func NewArticleService(
	articleRepo repository.ArticleRepository,
	favouriteRepo repository.FavouriteRepository,
	commentRepo repository.CommentRepository,
	followRepo profilerepo.FollowRepository,
	userRepo userrepo.UserRepository,
	cache TagCache,
) ServiceInterface {
	return &articleService{
		articleRepo:   articleRepo,
		favouriteRepo: favouriteRepo,
		commentRepo:   commentRepo,
		followRepo:    followRepo,
		userRepo:      userRepo,
		cache:         cache,
	}
}

// =====================================================
// ARTICLES
// =====================================================

func (s *articleService) CreateArticle(ctx context.Context, viewer shared.Viewer, req model.CreateArticleRequest) (*model.ArticlePayload, error) {
	article := &model.Article{
		ID:          uuid.New(),
		Slug:        utils.GenerateSlug(req.Title),
		Title:       req.Title,
		Description: req.Description,
		Body:        req.Body,
		TagList:     req.TagList,
		AuthorID:    viewer.ID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	err := s.articleRepo.Create(ctx, article)
	if errors.Is(err, model.ErrSlugTaken) {
		// Random-suffix collision; regenerate once before surfacing the
		// conflict to the caller.
		article.Slug = utils.GenerateSlug(req.Title)
		err = s.articleRepo.Create(ctx, article)
	}
	if err != nil {
		return nil, err
	}

	s.invalidateTags(ctx)

	created, err := s.articleRepo.GetBySlug(ctx, article.Slug)
	if err != nil {
		return nil, err
	}

	// The creator cannot have favorited a brand-new article, and
	// following oneself is not a thing.
	return model.NewArticlePayload(created, false, false), nil
}

func (s *articleService) GetArticle(ctx context.Context, viewer *shared.Viewer, slug string) (*model.ArticlePayload, error) {
	article, err := s.articleRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	return s.articlePayload(ctx, viewer, article)
}

func (s *articleService) UpdateArticle(ctx context.Context, viewer shared.Viewer, slug string, req model.UpdateArticleRequest) (*model.ArticlePayload, error) {
	// Ownership-scoped lookup: a non-owner gets the same not-found as a
	// missing slug.
	article, err := s.articleRepo.GetBySlugForAuthor(ctx, slug, viewer.ID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && *req.Title != article.Title {
		article.Title = *req.Title
		article.Slug = utils.GenerateSlug(*req.Title)
	}
	if req.Description != nil {
		article.Description = *req.Description
	}
	if req.Body != nil {
		article.Body = *req.Body
	}

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, err
	}

	s.invalidateTags(ctx)

	updated, err := s.articleRepo.GetBySlug(ctx, article.Slug)
	if err != nil {
		return nil, err
	}

	return s.articlePayload(ctx, &viewer, updated)
}

func (s *articleService) DeleteArticle(ctx context.Context, viewer shared.Viewer, slug string) error {
	deleted, err := s.articleRepo.Delete(ctx, slug, viewer.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return model.ErrArticleNotFound
	}

	s.invalidateTags(ctx)
	return nil
}

func (s *articleService) ListArticles(ctx context.Context, viewer *shared.Viewer, query model.ListQuery) (*model.ArticlesPayload, error) {
	query.Normalize()

	filter := repository.ListFilter{
		Tag:            query.Tag,
		AuthorUsername: query.Author,
		Limit:          query.Limit,
		Offset:         query.Offset,
	}

	if query.FavoritedBy != "" {
		user, err := s.userRepo.GetByUsername(ctx, query.FavoritedBy)
		if err != nil {
			if errors.Is(err, usermodel.ErrUserNotFound) {
				// Unknown username short-circuits to an empty page
				// without touching the article table.
				return &model.ArticlesPayload{Articles: []*model.ArticlePayload{}}, nil
			}
			return nil, err
		}
		filter.FavoritedByID = &user.ID
	}

	articles, total, err := s.articleRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return s.articlesPayload(ctx, viewer, articles, total)
}

func (s *articleService) Feed(ctx context.Context, viewer shared.Viewer, limit, offset int) (*model.ArticlesPayload, error) {
	query := model.ListQuery{Limit: limit, Offset: offset}
	query.Normalize()

	articles, total, err := s.articleRepo.Feed(ctx, viewer.ID, query.Limit, query.Offset)
	if err != nil {
		return nil, err
	}

	return s.articlesPayload(ctx, &viewer, articles, total)
}

// =====================================================
// FAVORITES
// =====================================================

func (s *articleService) FavoriteArticle(ctx context.Context, viewer shared.Viewer, slug string) (*model.ArticlePayload, error) {
	article, err := s.articleRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.favouriteRepo.Favorite(ctx, viewer.ID, article.ID); err != nil {
		return nil, err
	}

	// Reload so the returned count reflects the mutation just applied.
	reloaded, err := s.articleRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	following, err := s.isFollowing(ctx, &viewer, reloaded.AuthorID)
	if err != nil {
		return nil, err
	}

	return model.NewArticlePayload(reloaded, true, following), nil
}

func (s *articleService) UnfavoriteArticle(ctx context.Context, viewer shared.Viewer, slug string) (*model.ArticlePayload, error) {
	article, err := s.articleRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.favouriteRepo.Unfavorite(ctx, viewer.ID, article.ID); err != nil {
		return nil, err
	}

	reloaded, err := s.articleRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	following, err := s.isFollowing(ctx, &viewer, reloaded.AuthorID)
	if err != nil {
		return nil, err
	}

	return model.NewArticlePayload(reloaded, false, following), nil
}

// =====================================================
// COMMENTS
// =====================================================

func (s *articleService) AddComment(ctx context.Context, viewer shared.Viewer, slug string, req model.CreateCommentRequest) (*model.CommentPayload, error) {
	article, err := s.articleRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	commenter, err := s.userRepo.GetByID(ctx, viewer.ID)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		ID:        uuid.New(),
		Body:      req.Body,
		AuthorID:  viewer.ID,
		ArticleID: article.ID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Author: &model.Author{
			ID:       commenter.ID,
			Username: commenter.Username,
			Bio:      commenter.Bio,
			Image:    commenter.Image,
		},
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	// The payload carries the commenter's own profile; one cannot follow
	// oneself, so following is always false here.
	return model.NewCommentPayload(comment, false), nil
}

func (s *articleService) ListComments(ctx context.Context, viewer *shared.Viewer, slug string) ([]*model.CommentPayload, error) {
	article, err := s.articleRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByArticle(ctx, article.ID)
	if err != nil {
		return nil, err
	}

	followingSet := map[uuid.UUID]bool{}
	if viewer != nil && len(comments) > 0 {
		authorIDs := make([]uuid.UUID, 0, len(comments))
		seen := make(map[uuid.UUID]bool, len(comments))
		for _, comment := range comments {
			if !seen[comment.AuthorID] {
				seen[comment.AuthorID] = true
				authorIDs = append(authorIDs, comment.AuthorID)
			}
		}

		followingSet, err = s.followRepo.FollowingSet(ctx, viewer.ID, authorIDs)
		if err != nil {
			return nil, err
		}
	}

	payloads := make([]*model.CommentPayload, 0, len(comments))
	for _, comment := range comments {
		payloads = append(payloads, model.NewCommentPayload(comment, followingSet[comment.AuthorID]))
	}

	return payloads, nil
}

func (s *articleService) DeleteComment(ctx context.Context, viewer shared.Viewer, slug, commentID string) error {
	if _, err := s.articleRepo.GetBySlug(ctx, slug); err != nil {
		return err
	}

	id, err := uuid.Parse(commentID)
	if err != nil {
		return model.ErrCommentNotFound
	}

	deleted, err := s.commentRepo.Delete(ctx, id, viewer.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return model.ErrCommentNotFound
	}

	return nil
}

// =====================================================
// TAGS
// =====================================================

func (s *articleService) Tags(ctx context.Context) ([]string, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, tagCacheKey); err == nil {
			var tags []string
			if err := json.Unmarshal([]byte(cached), &tags); err == nil {
				return tags, nil
			}
		}
	}

	tags, err := s.articleRepo.DistinctTags(ctx)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []string{}
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(tags); err == nil {
			if err := s.cache.Set(ctx, tagCacheKey, string(encoded), tagCacheTTL); err != nil {
				logger.Error("failed to cache tags", err)
			}
		}
	}

	return tags, nil
}

func (s *articleService) invalidateTags(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, tagCacheKey); err != nil {
		logger.Error("failed to invalidate tag cache", err)
	}
}

// =====================================================
// AGGREGATION HELPERS
// =====================================================

// articlePayload enriches a single article with the viewer-scoped flags.
// Anonymous viewers always get favorited=false, following=false.
func (s *articleService) articlePayload(ctx context.Context, viewer *shared.Viewer, article *model.Article) (*model.ArticlePayload, error) {
	if viewer == nil {
		return model.NewArticlePayload(article, false, false), nil
	}

	favorited, err := s.favouriteRepo.IsFavorited(ctx, viewer.ID, article.ID)
	if err != nil {
		return nil, err
	}

	following, err := s.isFollowing(ctx, viewer, article.AuthorID)
	if err != nil {
		return nil, err
	}

	return model.NewArticlePayload(article, favorited, following), nil
}

// articlesPayload enriches a collection with one favourite-set and one
// following-set query instead of two lookups per row.
func (s *articleService) articlesPayload(ctx context.Context, viewer *shared.Viewer, articles []*model.Article, total int) (*model.ArticlesPayload, error) {
	payloads := make([]*model.ArticlePayload, 0, len(articles))

	if viewer == nil || len(articles) == 0 {
		for _, article := range articles {
			payloads = append(payloads, model.NewArticlePayload(article, false, false))
		}
		return &model.ArticlesPayload{Articles: payloads, ArticlesCount: total}, nil
	}

	articleIDs := make([]uuid.UUID, 0, len(articles))
	authorIDs := make([]uuid.UUID, 0, len(articles))
	seenAuthors := make(map[uuid.UUID]bool, len(articles))

	for _, article := range articles {
		articleIDs = append(articleIDs, article.ID)
		if !seenAuthors[article.AuthorID] {
			seenAuthors[article.AuthorID] = true
			authorIDs = append(authorIDs, article.AuthorID)
		}
	}

	favoritedSet, err := s.favouriteRepo.FavoritedSet(ctx, viewer.ID, articleIDs)
	if err != nil {
		return nil, err
	}

	followingSet, err := s.followRepo.FollowingSet(ctx, viewer.ID, authorIDs)
	if err != nil {
		return nil, err
	}

	for _, article := range articles {
		payloads = append(payloads, model.NewArticlePayload(
			article,
			favoritedSet[article.ID],
			followingSet[article.AuthorID],
		))
	}

	return &model.ArticlesPayload{Articles: payloads, ArticlesCount: total}, nil
}

func (s *articleService) isFollowing(ctx context.Context, viewer *shared.Viewer, authorID uuid.UUID) (bool, error) {
	if viewer == nil {
		return false, nil
	}
	return s.followRepo.IsFollowing(ctx, viewer.ID, authorID)
}
