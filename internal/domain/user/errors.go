package user

import "errors"

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("role does not permit this operation")
	ErrUserNotFound    = errors.New("user not found")
)
