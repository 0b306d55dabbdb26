package usecases

import (
	"context"

	"accesshub/internal/application/user/dto"
	"accesshub/internal/domain/user"
	"accesshub/internal/shared/errors"
	"accesshub/internal/shared/logger"
	"accesshub/internal/shared/utils"
)

type ListUsersQuery struct {
	Pagination utils.Pagination
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) ([]dto.UserDTO, int64, error) {
	p := utils.ValidatePagination(query.Pagination.Page, query.Pagination.PageSize)

	users, total, err := uc.userRepo.List(ctx, p.Offset(), p.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, 0, errors.NewInternalError("failed to list users")
	}

	result := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		result = append(result, dto.FromUser(u))
	}

	return result, total, nil
}
