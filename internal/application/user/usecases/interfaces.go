package usecases

import (
	"context"

	"accesshub/internal/application/user/dto"
	"accesshub/internal/shared/authorization"
)

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) error
}

// TokenIssuer mints access tokens for authenticated users.
type TokenIssuer interface {
	Generate(userID uint, username string, role authorization.UserRole) (token string, expiresIn int64, err error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type CreateUserExecutor interface {
	Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) ([]dto.UserDTO, int64, error)
}

type GetUserExecutor interface {
	Execute(ctx context.Context, query GetUserQuery) (*dto.UserDTO, error)
}
