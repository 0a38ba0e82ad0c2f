package usecase

import (
	"errors"
	"fmt"

	"github.com/enaszrekat/reuse-market-app/internal/entity"
	"github.com/enaszrekat/reuse-market-app/internal/repo/persistent"
	"github.com/enaszrekat/reuse-market-app/pkg/logger"

	"gorm.io/gorm"
)

type UserUseCase interface {
	GetUser(id int64) (*entity.User, error)
}

type userUseCase struct {
	userRepo persistent.UserRepository
	logger   *logger.Logger
}

func NewUserUseCase(userRepo persistent.UserRepository, logger *logger.Logger) UserUseCase {
	return &userUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *userUseCase) GetUser(id int64) (*entity.User, error) {
	if id <= 0 {
		return nil, ErrInvalidUser
	}

	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user %d: %w", id, err)
	}
	return user, nil
}
