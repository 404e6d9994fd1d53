package model

import (
	"time"

	"github.com/google/uuid"
)

// User is the account entity. Password holds the bcrypt hash and is never
// projected into a payload.
type User struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
	Password string    `json:"-"`
	Bio      *string   `json:"bio"`
	Image    *string   `json:"image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserPayload is the authenticated-user view-model, returned from register,
// login, current-user and update flows.
type UserPayload struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
	Bio      *string   `json:"bio"`
	Image    *string   `json:"image"`
	Token    string    `json:"token"`
}

// NewUserPayload projects a user record into its view-model.
func NewUserPayload(u *User, token string) *UserPayload {
	return &UserPayload{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
		Bio:      u.Bio,
		Image:    u.Image,
		Token:    token,
	}
}
