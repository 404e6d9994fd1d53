package repository

import (
	"context"

	"github.com/google/uuid"

	"conduit-backend/internal/domains/user/model"
)

type UserRepository interface {
	// Create inserts a new user; a unique-column collision surfaces as
	// model.ErrUserExists.
	Create(ctx context.Context, user *model.User) error

	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)

	Update(ctx context.Context, user *model.User) error
}
