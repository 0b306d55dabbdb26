package usecases

import (
	"context"

	"accesshub/internal/application/user/dto"
	"accesshub/internal/domain/user"
	"accesshub/internal/shared/errors"
	"accesshub/internal/shared/logger"
)

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	User        dto.UserDTO
	AccessToken string
	ExpiresIn   int64
}

// LoginUseCase authenticates a user by username and password and mints an
// access token. Lookup and verification failures collapse into one generic
// error so the response does not reveal which usernames exist.
type LoginUseCase struct {
	userRepo    user.Repository
	hasher      PasswordHasher
	tokenIssuer TokenIssuer
	logger      logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokenIssuer TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:    userRepo,
		hasher:      hasher,
		tokenIssuer: tokenIssuer,
		logger:      logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Username == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("username and password are required")
	}

	existingUser, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil || existingUser == nil {
		uc.logger.Warnw("login failed, unknown username", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	if err := uc.hasher.Verify(existingUser.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("login failed, password mismatch", "user_id", existingUser.ID())
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	token, expiresIn, err := uc.tokenIssuer.Generate(existingUser.ID(), existingUser.Username(), existingUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "user_id", existingUser.ID(), "error", err)
		return nil, errors.NewInternalError("failed to generate access token")
	}

	existingUser.RecordLogin()
	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		// last login is informational; the login itself already succeeded
		uc.logger.Warnw("failed to record last login", "user_id", existingUser.ID(), "error", err)
	}

	uc.logger.Infow("user logged in", "user_id", existingUser.ID(), "username", existingUser.Username())

	return &LoginResult{
		User:        dto.FromUser(existingUser),
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}
