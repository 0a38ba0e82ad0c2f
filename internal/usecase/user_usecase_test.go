package usecase

import (
	"testing"

	"github.com/enaszrekat/reuse-market-app/internal/entity"
	"github.com/enaszrekat/reuse-market-app/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestGetUser_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	user := &entity.User{ID: 7, Name: "Alice", Username: "alice", AccountType: "Regular User"}
	mockRepo.On("GetByID", int64(7)).Return(user, nil)

	uc := NewUserUseCase(mockRepo, logger.New())

	got, err := uc.GetUser(7)
	assert.NoError(t, err)
	assert.Equal(t, user, got)
	mockRepo.AssertExpectations(t)
}

func TestGetUser_InvalidID(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewUserUseCase(mockRepo, logger.New())

	_, err := uc.GetUser(0)
	assert.ErrorIs(t, err, ErrInvalidUser)
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestGetUser_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("GetByID", int64(999)).Return(nil, gorm.ErrRecordNotFound)

	uc := NewUserUseCase(mockRepo, logger.New())

	_, err := uc.GetUser(999)
	assert.ErrorIs(t, err, ErrUserNotFound)
	mockRepo.AssertExpectations(t)
}
