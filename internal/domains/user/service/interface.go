package service

import (
	"context"

	"github.com/google/uuid"

	"conduit-backend/internal/domains/user/model"
)

type ServiceInterface interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.User, error)
	GetCurrent(ctx context.Context, userID uuid.UUID) (*model.User, error)
	Update(ctx context.Context, userID uuid.UUID, req model.UpdateUserRequest) (*model.User, error)
}
