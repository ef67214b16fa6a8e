package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"eva-assistant/internal/admin/repository"
	"eva-assistant/internal/model"
	pkgLog "eva-assistant/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS admin_users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Repository stores dashboard accounts in the same SQLite database as
// the conversation history.
type Repository struct {
	db *sql.DB
	l  pkgLog.Logger
}

func New(db *sql.DB, l pkgLog.Logger) (*Repository, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create admin_users table: %w", err)
	}
	return &Repository{db: db, l: l}, nil
}

func (r *Repository) GetByUsername(ctx context.Context, username string) (model.AdminUser, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, role, created_at FROM admin_users WHERE username = ?`,
		username,
	)

	var u model.AdminUser
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.AdminUser{}, repository.ErrNotFound
	}
	if err != nil {
		return model.AdminUser{}, fmt.Errorf("failed to query admin user: %w", err)
	}
	return u, nil
}

func (r *Repository) Create(ctx context.Context, user model.AdminUser) (model.AdminUser, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO admin_users (username, password_hash, role, created_at) VALUES (?, ?, ?, ?)`,
		user.Username, user.PasswordHash, user.Role, now,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return model.AdminUser{}, fmt.Errorf("username %q already exists", user.Username)
		}
		return model.AdminUser{}, fmt.Errorf("failed to insert admin user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.AdminUser{}, fmt.Errorf("failed to read inserted id: %w", err)
	}

	user.ID = id
	user.CreatedAt = now
	return user, nil
}

func (r *Repository) Delete(ctx context.Context, username string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM admin_users WHERE username = ?`, username)
	if err != nil {
		return fmt.Errorf("failed to delete admin user: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *Repository) List(ctx context.Context) ([]model.AdminUser, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, username, password_hash, role, created_at FROM admin_users ORDER BY username`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list admin users: %w", err)
	}
	defer rows.Close()

	var users []model.AdminUser
	for rows.Next() {
		var u model.AdminUser
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan admin user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
