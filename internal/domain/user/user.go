package user

import (
	"fmt"
	"strings"
	"time"

	"accesshub/internal/shared/authorization"
)

// User represents a portal account. Identity is opaque to the access
// workflow; only the ID and role matter to it.
type User struct {
	id           uint
	username     string
	email        string
	fullName     string
	role         authorization.UserRole
	passwordHash string
	lastLogin    *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username, email, fullName, passwordHash string, role authorization.UserRole) (*User, error) {
	username = strings.TrimSpace(username)
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if len(username) > 100 {
		return nil, fmt.Errorf("username exceeds maximum length of 100 characters")
	}
	email = strings.TrimSpace(email)
	if len(email) == 0 || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("a valid email is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now().UTC()
	return &User{
		username:     username,
		email:        email,
		fullName:     fullName,
		role:         role,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser reconstructs a user from persistence.
func ReconstructUser(
	id uint,
	username string,
	email string,
	fullName string,
	role authorization.UserRole,
	passwordHash string,
	lastLogin *time.Time,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		username:     username,
		email:        email,
		fullName:     fullName,
		role:         role,
		passwordHash: passwordHash,
		lastLogin:    lastLogin,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Email() string {
	return u.email
}

func (u *User) FullName() string {
	return u.fullName
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) LastLogin() *time.Time {
	return u.lastLogin
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) IsAdmin() bool {
	return u.role.IsAdmin()
}

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// RecordLogin stamps a successful login.
func (u *User) RecordLogin() {
	now := time.Now().UTC()
	u.lastLogin = &now
	u.updatedAt = now
}
