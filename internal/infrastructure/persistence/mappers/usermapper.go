package mappers

import (
	"time"

	"accesshub/internal/domain/user"
	"accesshub/internal/infrastructure/persistence/models"
	"accesshub/internal/shared/authorization"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	model := &models.UserModel{
		ID:           u.ID(),
		Username:     u.Username(),
		Email:        u.Email(),
		FullName:     u.FullName(),
		Role:         u.Role().String(),
		PasswordHash: u.PasswordHash(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}

	if u.LastLogin() != nil {
		lastLogin := u.LastLogin().UnixMilli()
		model.LastLogin = &lastLogin
	}

	return model
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	var lastLogin *time.Time
	if model.LastLogin != nil {
		t := convertMillisToTime(*model.LastLogin)
		lastLogin = &t
	}

	return user.ReconstructUser(
		model.ID,
		model.Username,
		model.Email,
		model.FullName,
		authorization.ParseUserRole(model.Role),
		model.PasswordHash,
		lastLogin,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}

func convertMillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
