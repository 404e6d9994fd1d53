package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"conduit-backend/internal/domains/article/model"
)

type postgresCommentRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCommentRepository(pool *pgxpool.Pool) CommentRepository {
	return &postgresCommentRepository{pool: pool}
}

func (r *postgresCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	query := `
		INSERT INTO comments (id, body, author_id, article_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		comment.ID,
		comment.Body,
		comment.AuthorID,
		comment.ArticleID,
		comment.CreatedAt,
		comment.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

func (r *postgresCommentRepository) ListByArticle(ctx context.Context, articleID uuid.UUID) ([]*model.Comment, error) {
	query := `
		SELECT
			c.id, c.body, c.author_id, c.article_id, c.created_at, c.updated_at,
			u.id, u.username, u.bio, u.image
		FROM comments c
		INNER JOIN users u ON u.id = c.author_id
		WHERE c.article_id = $1
		ORDER BY c.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var comments []*model.Comment
	for rows.Next() {
		comment := &model.Comment{Author: &model.Author{}}

		err := rows.Scan(
			&comment.ID,
			&comment.Body,
			&comment.AuthorID,
			&comment.ArticleID,
			&comment.CreatedAt,
			&comment.UpdatedAt,
			&comment.Author.ID,
			&comment.Author.Username,
			&comment.Author.Bio,
			&comment.Author.Image,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}

		comments = append(comments, comment)
	}

	return comments, rows.Err()
}

func (r *postgresCommentRepository) Delete(ctx context.Context, commentID, authorID uuid.UUID) (bool, error) {
	query := `DELETE FROM comments WHERE id = $1 AND author_id = $2`

	result, err := r.pool.Exec(ctx, query, commentID, authorID)
	if err != nil {
		return false, fmt.Errorf("failed to delete comment: %w", err)
	}

	return result.RowsAffected() > 0, nil
}
