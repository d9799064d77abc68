package services

import (
	"context"

	"github.com/TFDAdonis/adonis/internal/pkg/logger"
	"github.com/TFDAdonis/adonis/internal/repos"
	"github.com/TFDAdonis/adonis/internal/types"
)

type UserService interface {
	Register(ctx context.Context, username, password string) (*types.User, error)
}

type userService struct {
	store repos.Store
	log   *logger.Logger
}

func NewUserService(store repos.Store, baseLog *logger.Logger) UserService {
	return &userService{store: store, log: baseLog.With("service", "UserService")}
}

// Register enforces the username uniqueness invariant before hitting the
// store; the store itself never dedupes.
func (us *userService) Register(ctx context.Context, username, password string) (*types.User, error) {
	existing, err := us.store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateUsername
	}

	user, err := us.store.CreateUser(ctx, types.User{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	us.log.Info("Registered user", "user_id", user.ID, "username", user.Username)
	return user, nil
}
