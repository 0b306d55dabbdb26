package user

import (
	"accesshub/internal/application/user/usecases"
	"accesshub/internal/shared/authorization"
)

type CreateUserRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name" binding:"max=200"`
	Password string `json:"password" binding:"required,min=8,max=200"`
	Role     string `json:"role" binding:"omitempty,oneof=admin user"`
}

func (r *CreateUserRequest) ToCommand() usecases.CreateUserCommand {
	return usecases.CreateUserCommand{
		Username: r.Username,
		Email:    r.Email,
		FullName: r.FullName,
		Password: r.Password,
		Role:     authorization.ParseUserRole(r.Role),
	}
}
