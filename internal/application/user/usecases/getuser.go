package usecases

import (
	"context"
	"fmt"

	"accesshub/internal/application/user/dto"
	"accesshub/internal/domain/user"
	"accesshub/internal/shared/errors"
	"accesshub/internal/shared/logger"
)

type GetUserQuery struct {
	UserID uint
}

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, query GetUserQuery) (*dto.UserDTO, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	u, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", query.UserID))
	}

	result := dto.FromUser(u)
	return &result, nil
}
