package shared

import "github.com/google/uuid"

// Viewer is the resolved identity of the caller for the current operation.
// Services take *Viewer; nil means the request is anonymous.
type Viewer struct {
	ID       uuid.UUID
	Username string
}
