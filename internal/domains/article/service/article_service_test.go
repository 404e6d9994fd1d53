package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conduit-backend/internal/domains/article/model"
	"conduit-backend/internal/domains/article/repository"
	usermodel "conduit-backend/internal/domains/user/model"
	"conduit-backend/internal/shared"
)

// =====================================================
// IN-MEMORY FAKES
// =====================================================

// fakeState is shared across the per-interface fakes so cross-entity
// behavior (counters, cascades, feed membership) stays consistent.
type fakeState struct {
	articles   map[uuid.UUID]*model.Article
	comments   map[uuid.UUID]*model.Comment
	favourites map[uuid.UUID]map[uuid.UUID]bool // user -> article set
	follows    map[uuid.UUID]map[uuid.UUID]bool // source -> target set
	users      map[uuid.UUID]*usermodel.User
}

func newFakeState() *fakeState {
	return &fakeState{
		articles:   make(map[uuid.UUID]*model.Article),
		comments:   make(map[uuid.UUID]*model.Comment),
		favourites: make(map[uuid.UUID]map[uuid.UUID]bool),
		follows:    make(map[uuid.UUID]map[uuid.UUID]bool),
		users:      make(map[uuid.UUID]*usermodel.User),
	}
}

func (s *fakeState) addUser(username string) *usermodel.User {
	user := &usermodel.User{
		ID:       uuid.New(),
		Email:    username + "@example.com",
		Username: username,
	}
	s.users[user.ID] = user
	return user
}

func (s *fakeState) bySlug(slug string) *model.Article {
	for _, article := range s.articles {
		if article.Slug == slug {
			return article
		}
	}
	return nil
}

// resolve clones the record and attaches the author, the way the
// postgres repository's join does.
func (s *fakeState) resolve(article *model.Article) *model.Article {
	clone := *article
	if author, ok := s.users[article.AuthorID]; ok {
		clone.Author = &model.Author{
			ID:       author.ID,
			Username: author.Username,
			Bio:      author.Bio,
			Image:    author.Image,
		}
	}
	return &clone
}

type fakeArticleRepo struct{ state *fakeState }

func (r *fakeArticleRepo) Create(_ context.Context, article *model.Article) error {
	if r.state.bySlug(article.Slug) != nil {
		return model.ErrSlugTaken
	}
	clone := *article
	r.state.articles[article.ID] = &clone
	return nil
}

func (r *fakeArticleRepo) GetBySlug(_ context.Context, slug string) (*model.Article, error) {
	article := r.state.bySlug(slug)
	if article == nil {
		return nil, model.ErrArticleNotFound
	}
	return r.state.resolve(article), nil
}

func (r *fakeArticleRepo) GetBySlugForAuthor(_ context.Context, slug string, authorID uuid.UUID) (*model.Article, error) {
	article := r.state.bySlug(slug)
	if article == nil || article.AuthorID != authorID {
		return nil, model.ErrArticleNotFound
	}
	return r.state.resolve(article), nil
}

func (r *fakeArticleRepo) Update(_ context.Context, article *model.Article) error {
	if _, ok := r.state.articles[article.ID]; !ok {
		return model.ErrArticleNotFound
	}
	clone := *article
	clone.Author = nil
	r.state.articles[article.ID] = &clone
	return nil
}

func (r *fakeArticleRepo) Delete(_ context.Context, slug string, authorID uuid.UUID) (bool, error) {
	article := r.state.bySlug(slug)
	if article == nil || article.AuthorID != authorID {
		return false, nil
	}

	for id, comment := range r.state.comments {
		if comment.ArticleID == article.ID {
			delete(r.state.comments, id)
		}
	}
	for _, set := range r.state.favourites {
		delete(set, article.ID)
	}
	delete(r.state.articles, article.ID)
	return true, nil
}

func (r *fakeArticleRepo) List(_ context.Context, filter repository.ListFilter) ([]*model.Article, int, error) {
	var matched []*model.Article
	for _, article := range r.state.articles {
		if filter.Tag != "" && !contains(article.TagList, filter.Tag) {
			continue
		}
		if filter.AuthorUsername != "" {
			author, ok := r.state.users[article.AuthorID]
			if !ok || author.Username != filter.AuthorUsername {
				continue
			}
		}
		if filter.FavoritedByID != nil && !r.state.favourites[*filter.FavoritedByID][article.ID] {
			continue
		}
		matched = append(matched, r.state.resolve(article))
	}

	return page(matched, filter.Limit, filter.Offset), len(matched), nil
}

func (r *fakeArticleRepo) Feed(_ context.Context, viewerID uuid.UUID, limit, offset int) ([]*model.Article, int, error) {
	var matched []*model.Article
	for _, article := range r.state.articles {
		if r.state.follows[viewerID][article.AuthorID] {
			matched = append(matched, r.state.resolve(article))
		}
	}

	return page(matched, limit, offset), len(matched), nil
}

func (r *fakeArticleRepo) DistinctTags(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var tags []string
	for _, article := range r.state.articles {
		for _, tag := range article.TagList {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	return tags, nil
}

type fakeFavouriteRepo struct{ state *fakeState }

func (r *fakeFavouriteRepo) IsFavorited(_ context.Context, userID, articleID uuid.UUID) (bool, error) {
	return r.state.favourites[userID][articleID], nil
}

func (r *fakeFavouriteRepo) FavoritedSet(_ context.Context, userID uuid.UUID, articleIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	set := make(map[uuid.UUID]bool)
	for _, id := range articleIDs {
		if r.state.favourites[userID][id] {
			set[id] = true
		}
	}
	return set, nil
}

func (r *fakeFavouriteRepo) Favorite(_ context.Context, userID, articleID uuid.UUID) error {
	if r.state.favourites[userID][articleID] {
		return model.ErrAlreadyFavorited
	}
	if r.state.favourites[userID] == nil {
		r.state.favourites[userID] = make(map[uuid.UUID]bool)
	}
	r.state.favourites[userID][articleID] = true
	r.state.articles[articleID].FavoritesCount++
	return nil
}

func (r *fakeFavouriteRepo) Unfavorite(_ context.Context, userID, articleID uuid.UUID) error {
	if !r.state.favourites[userID][articleID] {
		return model.ErrNotFavorited
	}
	delete(r.state.favourites[userID], articleID)
	r.state.articles[articleID].FavoritesCount--
	return nil
}

type fakeCommentRepo struct{ state *fakeState }

func (r *fakeCommentRepo) Create(_ context.Context, comment *model.Comment) error {
	clone := *comment
	clone.Author = nil
	r.state.comments[comment.ID] = &clone
	return nil
}

func (r *fakeCommentRepo) ListByArticle(_ context.Context, articleID uuid.UUID) ([]*model.Comment, error) {
	var comments []*model.Comment
	for _, comment := range r.state.comments {
		if comment.ArticleID != articleID {
			continue
		}
		clone := *comment
		if author, ok := r.state.users[comment.AuthorID]; ok {
			clone.Author = &model.Author{
				ID:       author.ID,
				Username: author.Username,
				Bio:      author.Bio,
				Image:    author.Image,
			}
		}
		comments = append(comments, &clone)
	}
	return comments, nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, commentID, authorID uuid.UUID) (bool, error) {
	comment, ok := r.state.comments[commentID]
	if !ok || comment.AuthorID != authorID {
		return false, nil
	}
	delete(r.state.comments, commentID)
	return true, nil
}

type fakeFollowRepo struct{ state *fakeState }

func (r *fakeFollowRepo) IsFollowing(_ context.Context, sourceID, targetID uuid.UUID) (bool, error) {
	return r.state.follows[sourceID][targetID], nil
}

func (r *fakeFollowRepo) Follow(_ context.Context, sourceID, targetID uuid.UUID) error {
	if r.state.follows[sourceID] == nil {
		r.state.follows[sourceID] = make(map[uuid.UUID]bool)
	}
	r.state.follows[sourceID][targetID] = true
	return nil
}

func (r *fakeFollowRepo) Unfollow(_ context.Context, sourceID, targetID uuid.UUID) (bool, error) {
	existed := r.state.follows[sourceID][targetID]
	delete(r.state.follows[sourceID], targetID)
	return existed, nil
}

func (r *fakeFollowRepo) FollowingSet(_ context.Context, sourceID uuid.UUID, targetIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	set := make(map[uuid.UUID]bool)
	for _, targetID := range targetIDs {
		if r.state.follows[sourceID][targetID] {
			set[targetID] = true
		}
	}
	return set, nil
}

type fakeUserRepo struct{ state *fakeState }

func (r *fakeUserRepo) Create(_ context.Context, user *usermodel.User) error {
	r.state.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*usermodel.User, error) {
	user, ok := r.state.users[id]
	if !ok {
		return nil, usermodel.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*usermodel.User, error) {
	for _, user := range r.state.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, usermodel.ErrUserNotFound
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*usermodel.User, error) {
	for _, user := range r.state.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, usermodel.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *usermodel.User) error {
	r.state.users[user.ID] = user
	return nil
}

func contains(list []string, want string) bool {
	for _, item := range list {
		if item == want {
			return true
		}
	}
	return false
}

func page(articles []*model.Article, limit, offset int) []*model.Article {
	if offset >= len(articles) {
		return nil
	}
	articles = articles[offset:]
	if limit > 0 && limit < len(articles) {
		articles = articles[:limit]
	}
	return articles
}

func newTestService(state *fakeState) ServiceInterface {
	return NewArticleService(
		&fakeArticleRepo{state: state},
		&fakeFavouriteRepo{state: state},
		&fakeCommentRepo{state: state},
		&fakeFollowRepo{state: state},
		&fakeUserRepo{state: state},
		nil,
	)
}

func viewerFor(user *usermodel.User) shared.Viewer {
	return shared.Viewer{ID: user.ID, Username: user.Username}
}

// =====================================================
// ARTICLES
// =====================================================

func TestCreateArticle(t *testing.T) {
	ctx := context.Background()
	state := newFakeState()
	author := state.addUser("jake")
	svc := newTestService(state)

	article, err := svc.CreateArticle(ctx, viewerFor(author), model.CreateArticleRequest{
		Title:       "How to train your dragon",
		Description: "Ever wonder how?",
		Body:        "You have to believe",
		TagList:     []string{"dragons", "training"},
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(article.Slug, "how-to-train-your-dragon-"))
	assert.Equal(t, "jake", article.Author.Username)
	assert.False(t, article.Favorited)
	assert.False(t, article.Author.Following)
	assert.Equal(t, 0, article.FavoritesCount)
	assert.Equal(t, []string{"dragons", "training"}, article.TagList)
}

func TestCreateArticleNilTagList(t *testing.T) {
	ctx := context.Background()
	state := newFakeState()
	author := state.addUser("jake")
	svc := newTestService(state)

	article, err := svc.CreateArticle(ctx, viewerFor(author), model.CreateArticleRequest{
		Title:       "No tags here",
		Description: "d",
		Body:        "b",
	})

	require.NoError(t, err)
	assert.NotNil(t, article.TagList)
	assert.Empty(t, article.TagList)
}

func TestGetArticle(t *testing.T) {
	ctx := context.Background()
	state := newFakeState()
	author := state.addUser("jake")
	reader := state.addUser("anna")
	svc := newTestService(state)

	created, err := svc.CreateArticle(ctx, viewerFor(author), model.CreateArticleRequest{
		Title: "Hello", Description: "d", Body: "b",
	})
	require.NoError(t, err)

	_, err = svc.FavoriteArticle(ctx, viewerFor(reader), created.Slug)
	require.NoError(t, err)

	t.Run("anonymous viewer gets false flags", func(t *testing.T) {
		article, err := svc.GetArticle(ctx, nil, created.Slug)

		require.NoError(t, err)
		assert.False(t, article.Favorited)
		assert.False(t, article.Author.Following)
		assert.Equal(t, 1, article.FavoritesCount)
	})

	t.Run("flags are viewer relative", func(t *testing.T) {
		viewer := viewerFor(reader)

		article, err := svc.GetArticle(ctx, &viewer, created.Slug)

		require.NoError(t, err)
		assert.True(t, article.Favorited)
	})

	t.Run("unknown slug", func(t *testing.T) {
		_, err := svc.GetArticle(ctx, nil, "no-such-slug")
		assert.ErrorIs(t, err, model.ErrArticleNotFound)
	})
}

func TestUpdateArticle(t *testing.T) {
	ctx := context.Background()
	state := newFakeState()
	author := state.addUser("jake")
	other := state.addUser("anna")
	svc := newTestService(state)

	created, err := svc.CreateArticle(ctx, viewerFor(author), model.CreateArticleRequest{
		Title: "Original title", Description: "d", Body: "b",
	})
	require.NoError(t, err)

	t.Run("body-only update keeps the slug", func(t *testing.T) {
		body := "new body"

		updated, err := svc.UpdateArticle(ctx, viewerFor(author), created.Slug, model.UpdateArticleRequest{Body: &body})

		require.NoError(t, err)
		assert.Equal(t, created.Slug, updated.Slug)
		assert.Equal(t, "new body", updated.Body)
	})

	t.Run("title change regenerates the slug", func(t *testing.T) {
		title := "Completely new title"

		updated, err := svc.UpdateArticle(ctx, viewerFor(author), created.Slug, model.UpdateArticleRequest{Title: &title})

		require.NoError(t, err)
		assert.NotEqual(t, created.Slug, updated.Slug)
		assert.True(t, strings.HasPrefix(updated.Slug, "completely-new-title-"))

		// old slug no longer resolves
		_, err = svc.GetArticle(ctx, nil, created.Slug)
		assert.ErrorIs(t, err, model.ErrArticleNotFound)

		created = updated
	})

	t.Run("non-author gets not found", func(t *testing.T) {
		body := "hijacked"

		_, err := svc.UpdateArticle(ctx, viewerFor(other), created.Slug, model.UpdateArticleRequest{Body: &body})
		assert.ErrorIs(t, err, model.ErrArticleNotFound)
	})
}

func TestDeleteArticle(t *testing.T) {
	ctx := context.Background()
	state := newFakeState()
	author := state.addUser("jake")
	other := state.addUser("anna")
	svc := newTestService(state)

	created, err := svc.CreateArticle(ctx, viewerFor(author), model.CreateArticleRequest{
		Title: "Doomed", Description: "d", Body: "b",
	})
	require.NoError(t, err)

	_, err = svc.AddComment(ctx, viewerFor(other), created.Slug, model.CreateCommentRequest{Body: "nice"})
	require.NoError(t, err)

	t.Run("non-author gets not found", func(t *testing.T) {
		err := svc.DeleteArticle(ctx, viewerFor(other), created.Slug)
		assert.ErrorIs(t, err, model.ErrArticleNotFound)
	})

	t.Run("author delete cascades to comments", func(t *testing.T) {
		require.NoError(t, svc.DeleteArticle(ctx, viewerFor(author), created.Slug))

		_, err := svc.GetArticle(ctx, nil, created.Slug)
		assert.ErrorIs(t, err, model.ErrArticleNotFound)
		assert.Empty(t, state.comments)
	})
}

// =====================================================
// LISTING AND FEED
// =====================================================

func TestListArticles(t *testing.T) {
	ctx := context.Background()
	state := newFakeState()
	jake := state.addUser("jake")
	anna := state.addUser("anna")
	svc := newTestService(state)

	_, err := svc.CreateArticle(ctx, viewerFor(jake), model.CreateArticleRequest{
		Title: "Dragons", Description: "d", Body: "b", TagList: []string{"dragons"},
	})
	require.NoError(t, err)

	annas, err := svc.CreateArticle(ctx, viewerFor(anna), model.CreateArticleRequest{
		Title: "Cooking", Description: "d", Body: "b", TagList: []string{"food"},
	})
	require.NoError(t, err)

	_, err = svc.FavoriteArticle(ctx, viewerFor(jake), annas.Slug)
	require.NoError(t, err)

	t.Run("no filters returns everything", func(t *testing.T) {
		result, err := svc.ListArticles(ctx, nil, model.ListQuery{})

		require.NoError(t, err)
		assert.Equal(t, 2, result.ArticlesCount)
		assert.Len(t, result.Articles, 2)
	})

	t.Run("tag filter", func(t *testing.T) {
		result, err := svc.ListArticles(ctx, nil, model.ListQuery{Tag: "dragons"})

		require.NoError(t, err)
		assert.Equal(t, 1, result.ArticlesCount)
		assert.Equal(t, "jake", result.Articles[0].Author.Username)
	})

	t.Run("author filter", func(t *testing.T) {
		result, err := svc.ListArticles(ctx, nil, model.ListQuery{Author: "anna"})

		require.NoError(t, err)
		assert.Equal(t, 1, result.ArticlesCount)
		assert.Equal(t, "Cooking", result.Articles[0].Title)
	})

	t.Run("favoritedBy filter", func(t *testing.T) {
		result, err := svc.ListArticles(ctx, nil, model.ListQuery{FavoritedBy: "jake"})

		require.NoError(t, err)
		assert.Equal(t, 1, result.ArticlesCount)
		assert.Equal(t, annas.Slug, result.Articles[0].Slug)
	})

	t.Run("unknown favoritedBy username short-circuits to empty", func(t *testing.T) {
		result, err := svc.ListArticles(ctx, nil, model.ListQuery{FavoritedBy: "nobody"})

		require.NoError(t, err)
		assert.Empty(t, result.Articles)
		assert.Equal(t, 0, result.ArticlesCount)
	})

	t.Run("viewer flags are batched per collection", func(t *testing.T) {
		viewer := viewerFor(jake)

		result, err := svc.ListArticles(ctx, &viewer, model.ListQuery{})

		require.NoError(t, err)
		for _, article := range result.Articles {
			if article.Slug == annas.Slug {
				assert.True(t, article.Favorited)
			} else {
				assert.False(t, article.Favorited)
			}
		}
	})

	t.Run("pagination caps the page but not the total", func(t *testing.T) {
		result, err := svc.ListArticles(ctx, nil, model.ListQuery{Limit: 1})

		require.NoError(t, err)
		assert.Len(t, result.Articles, 1)
		assert.Equal(t, 2, result.ArticlesCount)
	})
}

func TestFeed(t *testing.T) {
	ctx := context.Background()
	state := newFakeState()
	jake := state.addUser("jake")
	anna := state.addUser("anna")
	reader := state.addUser("reader")
	svc := newTestService(state)

	jakes, err := svc.CreateArticle(ctx, viewerFor(jake), model.CreateArticleRequest{
		Title: "From jake", Description: "d", Body: "b",
	})
	require.NoError(t, err)

	_, err = svc.CreateArticle(ctx, viewerFor(anna), model.CreateArticleRequest{
		Title: "From anna", Description: "d", Body: "b",
	})
	require.NoError(t, err)

	follows := &fakeFollowRepo{state: state}
	require.NoError(t, follows.Follow(ctx, reader.ID, jake.ID))

	result, err := svc.Feed(ctx, viewerFor(reader), 0, 0)

	require.NoError(t, err)
	assert.Equal(t, 1, result.ArticlesCount)
	assert.Equal(t, jakes.Slug, result.Articles[0].Slug)
	assert.True(t, result.Articles[0].Author.Following)
}

// =====================================================
// FAVORITES
// =====================================================

func TestFavoriteArticle(t *testing.T) {
	ctx := context.Background()
	state := newFakeState()
	author := state.addUser("jake")
	reader := state.addUser("anna")
	svc := newTestService(state)

	created, err := svc.CreateArticle(ctx, viewerFor(author), model.CreateArticleRequest{
		Title: "Popular", Description: "d", Body: "b",
	})
	require.NoError(t, err)

	t.Run("sets the flag and bumps the counter", func(t *testing.T) {
		article, err := svc.FavoriteArticle(ctx, viewerFor(reader), created.Slug)

		require.NoError(t, err)
		assert.True(t, article.Favorited)
		assert.Equal(t, 1, article.FavoritesCount)
	})

	t.Run("double favorite conflicts and keeps the counter", func(t *testing.T) {
		_, err := svc.FavoriteArticle(ctx, viewerFor(reader), created.Slug)
		assert.ErrorIs(t, err, model.ErrAlreadyFavorited)

		article, err := svc.GetArticle(ctx, nil, created.Slug)
		require.NoError(t, err)
		assert.Equal(t, 1, article.FavoritesCount)
	})

	t.Run("unknown slug", func(t *testing.T) {
		_, err := svc.FavoriteArticle(ctx, viewerFor(reader), "no-such-slug")
		assert.ErrorIs(t, err, model.ErrArticleNotFound)
	})
}

func TestUnfavoriteArticle(t *testing.T) {
	ctx := context.Background()
	state := newFakeState()
	author := state.addUser("jake")
	reader := state.addUser("anna")
	svc := newTestService(state)

	created, err := svc.CreateArticle(ctx, viewerFor(author), model.CreateArticleRequest{
		Title: "Popular", Description: "d", Body: "b",
	})
	require.NoError(t, err)

	t.Run("without an edge fails", func(t *testing.T) {
		_, err := svc.UnfavoriteArticle(ctx, viewerFor(reader), created.Slug)
		assert.ErrorIs(t, err, model.ErrNotFavorited)
	})

	t.Run("clears the flag and the counter", func(t *testing.T) {
		_, err := svc.FavoriteArticle(ctx, viewerFor(reader), created.Slug)
		require.NoError(t, err)

		article, err := svc.UnfavoriteArticle(ctx, viewerFor(reader), created.Slug)

		require.NoError(t, err)
		assert.False(t, article.Favorited)
		assert.Equal(t, 0, article.FavoritesCount)
	})
}

// =====================================================
// COMMENTS
// =====================================================

func TestComments(t *testing.T) {
	ctx := context.Background()
	state := newFakeState()
	author := state.addUser("jake")
	commenter := state.addUser("anna")
	svc := newTestService(state)

	created, err := svc.CreateArticle(ctx, viewerFor(author), model.CreateArticleRequest{
		Title: "Discussed", Description: "d", Body: "b",
	})
	require.NoError(t, err)

	t.Run("add composes the commenter profile", func(t *testing.T) {
		comment, err := svc.AddComment(ctx, viewerFor(commenter), created.Slug, model.CreateCommentRequest{Body: "First!"})

		require.NoError(t, err)
		assert.Equal(t, "First!", comment.Body)
		assert.Equal(t, "anna", comment.Author.Username)
		assert.False(t, comment.Author.Following)
	})

	t.Run("add to unknown article", func(t *testing.T) {
		_, err := svc.AddComment(ctx, viewerFor(commenter), "no-such-slug", model.CreateCommentRequest{Body: "x"})
		assert.ErrorIs(t, err, model.ErrArticleNotFound)
	})

	t.Run("list carries viewer-relative following", func(t *testing.T) {
		follows := &fakeFollowRepo{state: state}
		require.NoError(t, follows.Follow(ctx, author.ID, commenter.ID))
		viewer := viewerFor(author)

		comments, err := svc.ListComments(ctx, &viewer, created.Slug)

		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.True(t, comments[0].Author.Following)
	})

	t.Run("anonymous list gets false following", func(t *testing.T) {
		comments, err := svc.ListComments(ctx, nil, created.Slug)

		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.False(t, comments[0].Author.Following)
	})

	t.Run("delete is ownership scoped", func(t *testing.T) {
		comments, err := svc.ListComments(ctx, nil, created.Slug)
		require.NoError(t, err)
		commentID := comments[0].ID

		err = svc.DeleteComment(ctx, viewerFor(author), created.Slug, commentID)
		assert.ErrorIs(t, err, model.ErrCommentNotFound)

		require.NoError(t, svc.DeleteComment(ctx, viewerFor(commenter), created.Slug, commentID))

		remaining, err := svc.ListComments(ctx, nil, created.Slug)
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("malformed comment id", func(t *testing.T) {
		err := svc.DeleteComment(ctx, viewerFor(commenter), created.Slug, "not-a-uuid")
		assert.ErrorIs(t, err, model.ErrCommentNotFound)
	})
}

// =====================================================
// TAGS
// =====================================================

func TestTags(t *testing.T) {
	ctx := context.Background()
	state := newFakeState()
	author := state.addUser("jake")
	svc := newTestService(state)

	t.Run("empty store yields empty slice, not nil", func(t *testing.T) {
		tags, err := svc.Tags(ctx)

		require.NoError(t, err)
		assert.NotNil(t, tags)
		assert.Empty(t, tags)
	})

	t.Run("distinct union across articles", func(t *testing.T) {
		_, err := svc.CreateArticle(ctx, viewerFor(author), model.CreateArticleRequest{
			Title: "One", Description: "d", Body: "b", TagList: []string{"go", "web"},
		})
		require.NoError(t, err)

		_, err = svc.CreateArticle(ctx, viewerFor(author), model.CreateArticleRequest{
			Title: "Two", Description: "d", Body: "b", TagList: []string{"go", "testing"},
		})
		require.NoError(t, err)

		tags, err := svc.Tags(ctx)

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"go", "web", "testing"}, tags)
	})
}
