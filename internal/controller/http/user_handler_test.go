package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/enaszrekat/reuse-market-app/internal/entity"
	"github.com/enaszrekat/reuse-market-app/internal/usecase"
	"github.com/enaszrekat/reuse-market-app/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUserUseCase is a mock implementation of UserUseCase
type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) GetUser(id int64) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

var _ usecase.UserUseCase = (*MockUserUseCase)(nil)

func TestGetUser(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	handler := NewUserHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/users/:id", handler.GetUser)

	user := &entity.User{
		ID:          7,
		Name:        "Alice",
		Username:    "alice",
		Email:       "alice@example.com",
		Country:     "DE",
		AccountType: "Regular User",
	}
	mockUseCase.On("GetUser", int64(7)).Return(user, nil)

	w := get(router, "/users/7")

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])

	payload := body["user"].(map[string]interface{})
	assert.Equal(t, float64(7), payload["id"])
	assert.Equal(t, "Alice", payload["name"])
	assert.Equal(t, "Regular User", payload["account_type"])
	// The blocked flag is not part of the lookup payload
	assert.NotContains(t, payload, "blocked")

	mockUseCase.AssertExpectations(t)
}

func TestGetUser_NotFound(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	handler := NewUserHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/users/:id", handler.GetUser)

	mockUseCase.On("GetUser", int64(404)).Return(nil, usecase.ErrUserNotFound)

	w := get(router, "/users/404")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "User not found", body["message"])
}

func TestGetUser_BadID(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	handler := NewUserHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/users/:id", handler.GetUser)

	w := get(router, "/users/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "GetUser", mock.Anything)
}
