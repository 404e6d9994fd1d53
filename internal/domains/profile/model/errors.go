package model

import "errors"

var (
	ErrProfileNotFound = errors.New("profile doesn't exist")

	// ErrSelfFollow is a domain error, not a storage error: the pair
	// uniqueness index would happily accept (u, u).
	ErrSelfFollow = errors.New("you cannot follow yourself")

	ErrAlreadyFollowing = errors.New("you are already following this user")
)
