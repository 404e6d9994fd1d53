package service

import (
	"context"

	"conduit-backend/internal/domains/profile/model"
	"conduit-backend/internal/shared"
)

type ServiceInterface interface {
	// GetProfile resolves a profile for an optional viewer; anonymous
	// viewers always see following=false.
	GetProfile(ctx context.Context, viewer *shared.Viewer, username string) (*model.ProfilePayload, error)

	FollowUser(ctx context.Context, viewer shared.Viewer, username string) (*model.ProfilePayload, error)
	UnfollowUser(ctx context.Context, viewer shared.Viewer, username string) (*model.ProfilePayload, error)
}
