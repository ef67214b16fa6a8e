package admin

import "errors"

// Domain-specific errors for the admin package.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserExists         = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrSelfDelete         = errors.New("cannot delete your own account")
	ErrForbidden          = errors.New("insufficient privileges")
	ErrInvalidRole        = errors.New("invalid role")
)
