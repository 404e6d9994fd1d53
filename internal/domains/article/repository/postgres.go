package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"conduit-backend/internal/domains/article/model"
	"conduit-backend/pkg/database"
)

const uniqueViolation = "23505"

const articleColumns = `
	a.id, a.slug, a.title, a.description, a.body, a.tag_list,
	a.favorites_count, a.author_id, a.created_at, a.updated_at,
	u.id, u.username, u.bio, u.image
`

type postgresArticleRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresArticleRepository(pool *pgxpool.Pool) ArticleRepository {
	return &postgresArticleRepository{pool: pool}
}

func (r *postgresArticleRepository) Create(ctx context.Context, article *model.Article) error {
	query := `
		INSERT INTO articles (
			id, slug, title, description, body, tag_list,
			favorites_count, author_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		article.ID,
		article.Slug,
		article.Title,
		article.Description,
		article.Body,
		pq.Array(article.TagList),
		article.FavoritesCount,
		article.AuthorID,
		article.CreatedAt,
		article.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.ErrSlugTaken
		}
		return fmt.Errorf("failed to create article: %w", err)
	}

	return nil
}

func (r *postgresArticleRepository) GetBySlug(ctx context.Context, slug string) (*model.Article, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM articles a
		INNER JOIN users u ON u.id = a.author_id
		WHERE a.slug = $1
	`, articleColumns)

	article, err := scanArticle(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	return article, nil
}

func (r *postgresArticleRepository) GetBySlugForAuthor(ctx context.Context, slug string, authorID uuid.UUID) (*model.Article, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM articles a
		INNER JOIN users u ON u.id = a.author_id
		WHERE a.slug = $1 AND a.author_id = $2
	`, articleColumns)

	article, err := scanArticle(r.pool.QueryRow(ctx, query, slug, authorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	return article, nil
}

func (r *postgresArticleRepository) Update(ctx context.Context, article *model.Article) error {
	query := `
		UPDATE articles
		SET slug = $2, title = $3, description = $4, body = $5, tag_list = $6, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		article.ID,
		article.Slug,
		article.Title,
		article.Description,
		article.Body,
		pq.Array(article.TagList),
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.ErrSlugTaken
		}
		return fmt.Errorf("failed to update article: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrArticleNotFound
	}

	return nil
}

// Delete removes the article, its comments and its favourite rows in one
// transaction so relation rows can never dangle behind a deleted article.
func (r *postgresArticleRepository) Delete(ctx context.Context, slug string, authorID uuid.UUID) (bool, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (bool, error) {
		var articleID uuid.UUID
		err := tx.QueryRow(ctx,
			`SELECT id FROM articles WHERE slug = $1 AND author_id = $2`,
			slug, authorID,
		).Scan(&articleID)

		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return false, nil
			}
			return false, fmt.Errorf("failed to resolve article: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE article_id = $1`, articleID); err != nil {
			return false, fmt.Errorf("failed to delete comments: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM favourites WHERE favourite_target = $1`, articleID); err != nil {
			return false, fmt.Errorf("failed to delete favourites: %w", err)
		}

		result, err := tx.Exec(ctx, `DELETE FROM articles WHERE id = $1`, articleID)
		if err != nil {
			return false, fmt.Errorf("failed to delete article: %w", err)
		}

		return result.RowsAffected() > 0, nil
	})
}

func (r *postgresArticleRepository) List(ctx context.Context, filter ListFilter) ([]*model.Article, int, error) {
	where := " WHERE 1=1"
	args := []interface{}{}
	argCount := 1

	if filter.Tag != "" {
		where += fmt.Sprintf(" AND $%d = ANY(a.tag_list)", argCount)
		args = append(args, filter.Tag)
		argCount++
	}

	if filter.AuthorUsername != "" {
		where += fmt.Sprintf(" AND u.username = $%d", argCount)
		args = append(args, filter.AuthorUsername)
		argCount++
	}

	if filter.FavoritedByID != nil {
		where += fmt.Sprintf(" AND a.id IN (SELECT favourite_target FROM favourites WHERE favourite_source = $%d)", argCount)
		args = append(args, *filter.FavoritedByID)
		argCount++
	}

	countQuery := `
		SELECT COUNT(*)
		FROM articles a
		INNER JOIN users u ON u.id = a.author_id
	` + where

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM articles a
		INNER JOIN users u ON u.id = a.author_id
		%s
		ORDER BY a.created_at DESC
		LIMIT $%d OFFSET $%d
	`, articleColumns, where, argCount, argCount+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	articles, err := scanArticles(rows)
	if err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

func (r *postgresArticleRepository) Feed(ctx context.Context, viewerID uuid.UUID, limit, offset int) ([]*model.Article, int, error) {
	countQuery := `
		SELECT COUNT(*)
		FROM articles a
		INNER JOIN follows f ON f.follow_target = a.author_id
		WHERE f.follow_source = $1
	`

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, viewerID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count feed: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM articles a
		INNER JOIN users u ON u.id = a.author_id
		INNER JOIN follows f ON f.follow_target = a.author_id
		WHERE f.follow_source = $1
		ORDER BY a.created_at DESC
		LIMIT $2 OFFSET $3
	`, articleColumns)

	rows, err := r.pool.Query(ctx, query, viewerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list feed: %w", err)
	}
	defer rows.Close()

	articles, err := scanArticles(rows)
	if err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

func (r *postgresArticleRepository) DistinctTags(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT unnest(tag_list) AS tag FROM articles ORDER BY tag`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, tag)
	}

	return tags, rows.Err()
}

func scanArticle(row pgx.Row) (*model.Article, error) {
	article := &model.Article{Author: &model.Author{}}
	var tagList []string

	err := row.Scan(
		&article.ID,
		&article.Slug,
		&article.Title,
		&article.Description,
		&article.Body,
		pq.Array(&tagList),
		&article.FavoritesCount,
		&article.AuthorID,
		&article.CreatedAt,
		&article.UpdatedAt,
		&article.Author.ID,
		&article.Author.Username,
		&article.Author.Bio,
		&article.Author.Image,
	)
	if err != nil {
		return nil, err
	}

	article.TagList = tagList
	return article, nil
}

func scanArticles(rows pgx.Rows) ([]*model.Article, error) {
	var articles []*model.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, article)
	}

	return articles, rows.Err()
}
