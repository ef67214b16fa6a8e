package usecase

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"eva-assistant/internal/admin"
	"eva-assistant/internal/admin/repository"
	"eva-assistant/internal/model"
)

func (uc *implUseCase) CreateUser(ctx context.Context, sc model.Scope, input admin.CreateUserInput) (model.AdminUser, error) {
	if sc.Role != model.AdminRoleSuper {
		return model.AdminUser{}, admin.ErrForbidden
	}

	role := input.Role
	if role == "" {
		role = model.AdminRoleStaff
	}
	if role != model.AdminRoleSuper && role != model.AdminRoleStaff {
		return model.AdminUser{}, admin.ErrInvalidRole
	}

	if _, err := uc.users.GetByUsername(ctx, input.Username); err == nil {
		return model.AdminUser{}, admin.ErrUserExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return model.AdminUser{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.AdminUser{}, err
	}

	user, err := uc.users.Create(ctx, model.AdminUser{
		Username:     input.Username,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		uc.l.Errorf(ctx, "admin.CreateUser: %v", err)
		return model.AdminUser{}, err
	}

	uc.l.Infof(ctx, "admin.CreateUser: %s created %s (%s)", sc.Username, user.Username, user.Role)
	return user, nil
}

func (uc *implUseCase) DeleteUser(ctx context.Context, sc model.Scope, username string) error {
	if sc.Role != model.AdminRoleSuper {
		return admin.ErrForbidden
	}
	if username == sc.Username {
		return admin.ErrSelfDelete
	}

	err := uc.users.Delete(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return admin.ErrUserNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "admin.DeleteUser: %v", err)
		return err
	}

	uc.l.Infof(ctx, "admin.DeleteUser: %s deleted %s", sc.Username, username)
	return nil
}

func (uc *implUseCase) ListUsers(ctx context.Context, sc model.Scope) ([]model.AdminUser, error) {
	if sc.Role != model.AdminRoleSuper {
		return nil, admin.ErrForbidden
	}

	users, err := uc.users.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "admin.ListUsers: %v", err)
		return nil, err
	}
	return users, nil
}

// EnsureAdmin seeds the initial super admin account at startup when no
// account with that username exists yet.
func (uc *implUseCase) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		uc.l.Warnf(ctx, "admin.EnsureAdmin: no bootstrap credentials configured, skipping")
		return nil
	}

	_, err := uc.users.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if _, err := uc.users.Create(ctx, model.AdminUser{
		Username:     username,
		PasswordHash: string(hash),
		Role:         model.AdminRoleSuper,
	}); err != nil {
		return err
	}

	uc.l.Infof(ctx, "admin.EnsureAdmin: seeded super admin %s", username)
	return nil
}
