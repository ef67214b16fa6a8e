package repository

import (
	"context"
	"errors"

	"eva-assistant/internal/model"
)

// ErrNotFound is returned when no account matches the username.
var ErrNotFound = errors.New("admin user not found")

// UserRepository persists dashboard accounts.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (model.AdminUser, error)
	Create(ctx context.Context, user model.AdminUser) (model.AdminUser, error)
	Delete(ctx context.Context, username string) error
	List(ctx context.Context) ([]model.AdminUser, error)
}
