package user

import "errors"

var (
	// ErrUserNotFound is returned when no user exists for the id or email.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidUser is returned when a user record fails validation.
	ErrInvalidUser = errors.New("invalid user")
	// ErrInvalidWorkHours is returned when the work-hour window is not a
	// same-day range within [0, 24).
	ErrInvalidWorkHours = errors.New("work hours must satisfy 0 <= start < end <= 24")
)
