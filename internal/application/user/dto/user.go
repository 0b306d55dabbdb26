package dto

import (
	"time"

	"accesshub/internal/domain/user"
)

type UserDTO struct {
	ID        uint    `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FullName  string  `json:"full_name"`
	Role      string  `json:"role"`
	IsAdmin   bool    `json:"is_admin"`
	LastLogin *string `json:"last_login,omitempty"`
	CreatedAt string  `json:"created_at"`
}

func FromUser(u *user.User) UserDTO {
	d := UserDTO{
		ID:        u.ID(),
		Username:  u.Username(),
		Email:     u.Email(),
		FullName:  u.FullName(),
		Role:      u.Role().String(),
		IsAdmin:   u.IsAdmin(),
		CreatedAt: u.CreatedAt().Format(time.RFC3339),
	}
	if u.LastLogin() != nil {
		lastLogin := u.LastLogin().Format(time.RFC3339)
		d.LastLogin = &lastLogin
	}
	return d
}
