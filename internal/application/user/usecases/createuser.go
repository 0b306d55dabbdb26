package usecases

import (
	"context"

	"accesshub/internal/application/user/dto"
	"accesshub/internal/domain/user"
	"accesshub/internal/shared/authorization"
	"accesshub/internal/shared/errors"
	"accesshub/internal/shared/logger"
)

type CreateUserCommand struct {
	Username string
	Email    string
	FullName string
	Password string
	Role     authorization.UserRole
}

type CreateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing create user use case", "username", cmd.Username)

	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to check username", "username", cmd.Username, "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}
	if exists {
		return nil, errors.NewConflictError("username is already taken")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}

	newUser, err := user.NewUser(cmd.Username, cmd.Email, cmd.FullName, hash, cmd.Role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("username is already taken")
		}
		uc.logger.Errorw("failed to create user", "username", cmd.Username, "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}

	uc.logger.Infow("user created", "user_id", newUser.ID(), "username", newUser.Username(), "role", newUser.Role())

	result := dto.FromUser(newUser)
	return &result, nil
}
