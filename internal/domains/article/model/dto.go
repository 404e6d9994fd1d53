package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateArticleRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Body        string   `json:"body" binding:"required"`
	TagList     []string `json:"tagList"`
}

func (r CreateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 50).Error("title must be 1-50 characters"),
		),
		validation.Field(&r.Description, validation.Required.Error("description is required")),
		validation.Field(&r.Body, validation.Required.Error("body is required")),
		validation.Field(&r.TagList,
			validation.Each(validation.Length(1, 20).Error("tags must be 1-20 characters")),
		),
	)
}

// UpdateArticleRequest carries partial edits; nil fields are left untouched.
// Changing the title regenerates the slug.
type UpdateArticleRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Body        *string `json:"body"`
}

func (r UpdateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 50)),
		validation.Field(&r.Description, validation.NilOrNotEmpty),
		validation.Field(&r.Body, validation.NilOrNotEmpty),
	)
}

type CreateCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Body, validation.Required.Error("body is required")),
	)
}

// ListQuery are the articles listing filters; they compose conjunctively.
type ListQuery struct {
	Tag         string
	Author      string
	FavoritedBy string
	Limit       int
	Offset      int
}

const (
	DefaultLimit  = 20
	DefaultOffset = 0
)

// Normalize applies the listing defaults.
func (q *ListQuery) Normalize() {
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Offset < 0 {
		q.Offset = DefaultOffset
	}
}
