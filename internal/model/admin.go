package model

import "time"

// AdminUser is a dashboard account. The password is stored as a bcrypt
// hash, never in plain text.
type AdminUser struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

const (
	AdminRoleSuper = "super"
	AdminRoleStaff = "staff"
)
