package model

import "errors"

var (
	// ErrArticleNotFound also covers ownership-scoped lookups that
	// exclude the caller; a non-owner cannot tell the difference.
	ErrArticleNotFound = errors.New("article doesn't exist")

	ErrCommentNotFound = errors.New("comment doesn't exist")

	// ErrSlugTaken surfaces the slug unique index; the service retries
	// with a regenerated suffix before giving up.
	ErrSlugTaken = errors.New("article with this slug already exists")

	ErrAlreadyFavorited = errors.New("you have already favorited this article")
	ErrNotFavorited     = errors.New("you cannot unfavorite this article")
)
