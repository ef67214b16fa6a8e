package admin

import (
	"context"

	"eva-assistant/internal/model"
)

// UseCase defines the business logic interface for the admin dashboard domain.
type UseCase interface {
	// Login verifies credentials and issues a signed session token.
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)

	// VerifyToken validates a bearer token and returns the caller's scope.
	VerifyToken(tokenString string) (model.Scope, error)

	// CreateUser adds a dashboard account. Only super admins may call it.
	CreateUser(ctx context.Context, sc model.Scope, input CreateUserInput) (model.AdminUser, error)

	// DeleteUser removes a dashboard account. Self-deletion is rejected.
	DeleteUser(ctx context.Context, sc model.Scope, username string) error

	// ListUsers returns all dashboard accounts.
	ListUsers(ctx context.Context, sc model.Scope) ([]model.AdminUser, error)

	// ListContacts returns every WhatsApp number with stored history.
	ListContacts(ctx context.Context, sc model.Scope) ([]string, error)

	// SessionHistory returns the full transcript for one contact.
	SessionHistory(ctx context.Context, sc model.Scope, sessionID string) ([]model.ChatMessage, error)
}
