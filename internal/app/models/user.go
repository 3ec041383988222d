package models

import (
	"time"
)

// Role defines the user role type
type Role string

const (
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

// IsValid reports whether the role is one of the known roles
func (r Role) IsValid() bool {
	return r == RoleStaff || r == RoleAdmin
}

// User defines the user model based on the 'users' table.
// Users are created only through seeding or admin tooling and are
// immutable afterwards; this service never updates or deletes them.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"` // excluded from JSON
	Role         Role      `json:"role" db:"role"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
