package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"conduit-backend/internal/domains/profile/model"
)

const uniqueViolation = "23505"

type postgresFollowRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresFollowRepository(pool *pgxpool.Pool) FollowRepository {
	return &postgresFollowRepository{pool: pool}
}

func (r *postgresFollowRepository) IsFollowing(ctx context.Context, sourceID, targetID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM follows WHERE follow_source = $1 AND follow_target = $2
		)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, sourceID, targetID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}

	return exists, nil
}

func (r *postgresFollowRepository) Follow(ctx context.Context, sourceID, targetID uuid.UUID) error {
	query := `
		INSERT INTO follows (id, follow_source, follow_target, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query, uuid.New(), sourceID, targetID, time.Now())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.ErrAlreadyFollowing
		}
		return fmt.Errorf("failed to create follow: %w", err)
	}

	return nil
}

func (r *postgresFollowRepository) Unfollow(ctx context.Context, sourceID, targetID uuid.UUID) (bool, error) {
	query := `DELETE FROM follows WHERE follow_source = $1 AND follow_target = $2`

	result, err := r.pool.Exec(ctx, query, sourceID, targetID)
	if err != nil {
		return false, fmt.Errorf("failed to delete follow: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *postgresFollowRepository) FollowingSet(ctx context.Context, sourceID uuid.UUID, targetIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	set := make(map[uuid.UUID]bool, len(targetIDs))
	if len(targetIDs) == 0 {
		return set, nil
	}

	query := `
		SELECT follow_target FROM follows
		WHERE follow_source = $1 AND follow_target = ANY($2)
	`

	rows, err := r.pool.Query(ctx, query, sourceID, targetIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query following set: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var target uuid.UUID
		if err := rows.Scan(&target); err != nil {
			return nil, fmt.Errorf("failed to scan following set: %w", err)
		}
		set[target] = true
	}

	return set, rows.Err()
}
