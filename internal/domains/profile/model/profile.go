package model

import usermodel "conduit-backend/internal/domains/user/model"

// ProfilePayload is the public face of a user, with the viewer-scoped
// following flag attached.
type ProfilePayload struct {
	Username  string  `json:"username"`
	Bio       *string `json:"bio"`
	Image     *string `json:"image"`
	Following bool    `json:"following"`
}

// NewProfilePayload projects a user record into its profile view-model.
func NewProfilePayload(u *usermodel.User, following bool) *ProfilePayload {
	return &ProfilePayload{
		Username:  u.Username,
		Bio:       u.Bio,
		Image:     u.Image,
		Following: following,
	}
}
