package model

import (
	"time"

	"github.com/google/uuid"
)

// Article is the content entity. FavoritesCount is denormalized from the
// Favourite relation and only ever moves together with an edge mutation.
type Article struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Body        string    `json:"body"`
	TagList     []string  `json:"tag_list"`

	FavoritesCount int       `json:"favorites_count"`
	AuthorID       uuid.UUID `json:"author_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Author is eagerly resolved by every repository lookup.
	Author *Author `json:"author,omitempty"`
}

// Author is the slice of the user record the article domain needs. Kept
// local to avoid pulling the whole user model (and its credential field)
// across the domain boundary.
type Author struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Bio      *string   `json:"bio"`
	Image    *string   `json:"image"`
}

// Comment belongs to exactly one article and is immutable once created.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	Body      string    `json:"body"`
	AuthorID  uuid.UUID `json:"author_id"`
	ArticleID uuid.UUID `json:"article_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Author *Author `json:"author,omitempty"`
}

// Favourite is a directed edge from a user to an article. Creation and
// destruction are always paired with a favorites_count update in the same
// transaction.
type Favourite struct {
	ID              uuid.UUID `json:"id"`
	FavouriteSource uuid.UUID `json:"favourite_source"`
	FavouriteTarget uuid.UUID `json:"favourite_target"`

	CreatedAt time.Time `json:"created_at"`
}
