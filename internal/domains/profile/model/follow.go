package model

import (
	"time"

	"github.com/google/uuid"
)

// Follow is a directed edge in the user graph: source follows target. The
// store enforces uniqueness on the (source, target) pair; the service layer
// never re-derives it.
type Follow struct {
	ID           uuid.UUID `json:"id"`
	FollowSource uuid.UUID `json:"follow_source"`
	FollowTarget uuid.UUID `json:"follow_target"`

	CreatedAt time.Time `json:"created_at"`
}
