package repository

import (
	"context"

	"github.com/google/uuid"
)

// FollowRepository manages the Follow relation. Uniqueness of the
// (source, target) pair is the store's job; duplicates come back as
// model.ErrAlreadyFollowing.
type FollowRepository interface {
	// IsFollowing reports whether the edge exists. A missing edge is a
	// false, never an error.
	IsFollowing(ctx context.Context, sourceID, targetID uuid.UUID) (bool, error)

	Follow(ctx context.Context, sourceID, targetID uuid.UUID) error

	// Unfollow removes the edge if present and reports whether a row was
	// removed.
	Unfollow(ctx context.Context, sourceID, targetID uuid.UUID) (bool, error)

	// FollowingSet returns the subset of targetIDs the source follows.
	// One query per collection page instead of one per row.
	FollowingSet(ctx context.Context, sourceID uuid.UUID, targetIDs []uuid.UUID) (map[uuid.UUID]bool, error)
}
