package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"conduit-backend/internal/domains/article/model"
	"conduit-backend/pkg/database"
)

type postgresFavouriteRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresFavouriteRepository(pool *pgxpool.Pool) FavouriteRepository {
	return &postgresFavouriteRepository{pool: pool}
}

func (r *postgresFavouriteRepository) IsFavorited(ctx context.Context, userID, articleID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM favourites WHERE favourite_source = $1 AND favourite_target = $2
		)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, userID, articleID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check favourite: %w", err)
	}

	return exists, nil
}

func (r *postgresFavouriteRepository) FavoritedSet(ctx context.Context, userID uuid.UUID, articleIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	set := make(map[uuid.UUID]bool, len(articleIDs))
	if len(articleIDs) == 0 {
		return set, nil
	}

	query := `
		SELECT favourite_target FROM favourites
		WHERE favourite_source = $1 AND favourite_target = ANY($2)
	`

	rows, err := r.pool.Query(ctx, query, userID, articleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query favourite set: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var target uuid.UUID
		if err := rows.Scan(&target); err != nil {
			return nil, fmt.Errorf("failed to scan favourite set: %w", err)
		}
		set[target] = true
	}

	return set, rows.Err()
}

// Favorite creates the edge and moves the counter as a single unit. When the
// insert hits the unique pair index the transaction aborts and the counter
// never moves.
func (r *postgresFavouriteRepository) Favorite(ctx context.Context, userID, articleID uuid.UUID) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		insert := `
			INSERT INTO favourites (id, favourite_source, favourite_target, created_at)
			VALUES ($1, $2, $3, $4)
		`

		_, err := tx.Exec(ctx, insert, uuid.New(), userID, articleID, time.Now())
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return model.ErrAlreadyFavorited
			}
			return fmt.Errorf("failed to create favourite: %w", err)
		}

		increment := `UPDATE articles SET favorites_count = favorites_count + 1 WHERE id = $1`
		if _, err := tx.Exec(ctx, increment, articleID); err != nil {
			return fmt.Errorf("failed to increment favorites count: %w", err)
		}

		return nil
	})
}

// Unfavorite removes the edge and moves the counter as a single unit. A
// missing edge aborts before the decrement.
func (r *postgresFavouriteRepository) Unfavorite(ctx context.Context, userID, articleID uuid.UUID) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		remove := `DELETE FROM favourites WHERE favourite_source = $1 AND favourite_target = $2`

		result, err := tx.Exec(ctx, remove, userID, articleID)
		if err != nil {
			return fmt.Errorf("failed to delete favourite: %w", err)
		}

		if result.RowsAffected() == 0 {
			return model.ErrNotFavorited
		}

		decrement := `UPDATE articles SET favorites_count = favorites_count - 1 WHERE id = $1`
		if _, err := tx.Exec(ctx, decrement, articleID); err != nil {
			return fmt.Errorf("failed to decrement favorites count: %w", err)
		}

		return nil
	})
}
