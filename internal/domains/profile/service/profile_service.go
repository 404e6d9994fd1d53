package service

import (
	"context"
	"errors"

	"conduit-backend/internal/domains/profile/model"
	"conduit-backend/internal/domains/profile/repository"
	usermodel "conduit-backend/internal/domains/user/model"
	userrepo "conduit-backend/internal/domains/user/repository"
	"conduit-backend/internal/shared"
)

type profileService struct {
	followRepo repository.FollowRepository
	userRepo   userrepo.UserRepository
}

func NewProfileService(followRepo repository.FollowRepository, userRepo userrepo.UserRepository) ServiceInterface {
	return &profileService{followRepo: followRepo, userRepo: userRepo}
}

func (s *profileService) GetProfile(ctx context.Context, viewer *shared.Viewer, username string) (*model.ProfilePayload, error) {
	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	following := false
	if viewer != nil {
		following, err = s.followRepo.IsFollowing(ctx, viewer.ID, user.ID)
		if err != nil {
			return nil, err
		}
	}

	return model.NewProfilePayload(user, following), nil
}

func (s *profileService) FollowUser(ctx context.Context, viewer shared.Viewer, username string) (*model.ProfilePayload, error) {
	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	if user.ID == viewer.ID {
		return nil, model.ErrSelfFollow
	}

	if err := s.followRepo.Follow(ctx, viewer.ID, user.ID); err != nil {
		return nil, err
	}

	return model.NewProfilePayload(user, true), nil
}

func (s *profileService) UnfollowUser(ctx context.Context, viewer shared.Viewer, username string) (*model.ProfilePayload, error) {
	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	if user.ID == viewer.ID {
		return nil, model.ErrSelfFollow
	}

	// Removing an absent edge is a no-op; the payload reflects the final
	// state either way.
	if _, err := s.followRepo.Unfollow(ctx, viewer.ID, user.ID); err != nil {
		return nil, err
	}

	return model.NewProfilePayload(user, false), nil
}

func (s *profileService) resolveUser(ctx context.Context, username string) (*usermodel.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, usermodel.ErrUserNotFound) {
			return nil, model.ErrProfileNotFound
		}
		return nil, err
	}
	return user, nil
}
