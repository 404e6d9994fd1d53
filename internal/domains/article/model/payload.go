package model

import "time"

// AuthorPayload embeds the viewer-scoped following flag next to the public
// profile fields.
type AuthorPayload struct {
	Username  string  `json:"username"`
	Bio       *string `json:"bio"`
	Image     *string `json:"image"`
	Following bool    `json:"following"`
}

// ArticlePayload is the response view-model: the persisted record plus the
// two viewer-relative derived fields.
type ArticlePayload struct {
	Slug           string        `json:"slug"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Body           string        `json:"body"`
	TagList        []string      `json:"tagList"`
	Favorited      bool          `json:"favorited"`
	FavoritesCount int           `json:"favoritesCount"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
	Author         AuthorPayload `json:"author"`
}

type ArticlesPayload struct {
	Articles      []*ArticlePayload `json:"articles"`
	ArticlesCount int               `json:"articlesCount"`
}

type CommentPayload struct {
	ID        string        `json:"id"`
	Body      string        `json:"body"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Author    AuthorPayload `json:"author"`
}

// NewArticlePayload projects an article record into its view-model. Both
// derived flags default to false for anonymous viewers; the caller supplies
// the truth for authenticated ones.
func NewArticlePayload(a *Article, favorited, following bool) *ArticlePayload {
	tagList := a.TagList
	if tagList == nil {
		tagList = []string{}
	}

	payload := &ArticlePayload{
		Slug:           a.Slug,
		Title:          a.Title,
		Description:    a.Description,
		Body:           a.Body,
		TagList:        tagList,
		Favorited:      favorited,
		FavoritesCount: a.FavoritesCount,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}

	if a.Author != nil {
		payload.Author = AuthorPayload{
			Username:  a.Author.Username,
			Bio:       a.Author.Bio,
			Image:     a.Author.Image,
			Following: following,
		}
	}

	return payload
}

// NewCommentPayload projects a comment record, composed with the comment
// author's profile (the commenter, not the article author).
func NewCommentPayload(c *Comment, following bool) *CommentPayload {
	payload := &CommentPayload{
		ID:        c.ID.String(),
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}

	if c.Author != nil {
		payload.Author = AuthorPayload{
			Username:  c.Author.Username,
			Bio:       c.Author.Bio,
			Image:     c.Author.Image,
			Following: following,
		}
	}

	return payload
}
