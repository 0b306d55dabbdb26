package auth

import (
	"accesshub/internal/application/user/usecases"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required,max=200"`
}

func (r *LoginRequest) ToCommand() usecases.LoginCommand {
	return usecases.LoginCommand{
		Username: r.Username,
		Password: r.Password,
	}
}

type LoginHintResponse struct {
	Username string `json:"username"`
}
