package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/enaszrekat/reuse-market-app/internal/usecase"
	"github.com/enaszrekat/reuse-market-app/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAdminUseCase is a mock implementation of AdminUseCase
type MockAdminUseCase struct {
	mock.Mock
}

func (m *MockAdminUseCase) GetStats() (map[string]interface{}, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]interface{}), args.Error(1)
}

func (m *MockAdminUseCase) GetRecentActivity() (map[string]interface{}, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]interface{}), args.Error(1)
}

func (m *MockAdminUseCase) SetUserBlocked(userID int64, blocked bool) error {
	args := m.Called(userID, blocked)
	return args.Error(0)
}

var _ usecase.AdminUseCase = (*MockAdminUseCase)(nil)

func TestGetStats(t *testing.T) {
	mockUseCase := new(MockAdminUseCase)
	handler := NewAdminHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/admin/stats", handler.GetStats)

	mockUseCase.On("GetStats").Return(map[string]interface{}{
		"total_users":     int64(120),
		"new_users_today": int64(3),
	}, nil)

	w := get(router, "/admin/stats")

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])

	stats := body["stats"].(map[string]interface{})
	assert.Equal(t, float64(120), stats["total_users"])
	mockUseCase.AssertExpectations(t)
}

func TestGetStats_Failure(t *testing.T) {
	mockUseCase := new(MockAdminUseCase)
	handler := NewAdminHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/admin/stats", handler.GetStats)

	mockUseCase.On("GetStats").Return(nil, assert.AnError)

	w := get(router, "/admin/stats")

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Failed to fetch statistics", body["message"])
}

func TestGetRecentActivity(t *testing.T) {
	mockUseCase := new(MockAdminUseCase)
	handler := NewAdminHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/admin/activity", handler.GetRecentActivity)

	mockUseCase.On("GetRecentActivity").Return(map[string]interface{}{
		"recent_users":    []interface{}{},
		"recent_messages": []interface{}{},
	}, nil)

	w := get(router, "/admin/activity")

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotNil(t, body["activity"])
	mockUseCase.AssertExpectations(t)
}

func TestBlockUser(t *testing.T) {
	mockUseCase := new(MockAdminUseCase)
	handler := NewAdminHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/admin/users/:id/block", handler.BlockUser)

	mockUseCase.On("SetUserBlocked", int64(7), true).Return(nil)

	w := postJSON(router, "/admin/users/7/block", gin.H{"blocked": true})

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "User blocked successfully", body["message"])
	mockUseCase.AssertExpectations(t)
}

func TestBlockUser_Unblock(t *testing.T) {
	mockUseCase := new(MockAdminUseCase)
	handler := NewAdminHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/admin/users/:id/block", handler.BlockUser)

	mockUseCase.On("SetUserBlocked", int64(7), false).Return(nil)

	w := postJSON(router, "/admin/users/7/block", gin.H{"blocked": false})

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "User unblocked successfully", body["message"])
}

func TestBlockUser_NotFound(t *testing.T) {
	mockUseCase := new(MockAdminUseCase)
	handler := NewAdminHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/admin/users/:id/block", handler.BlockUser)

	mockUseCase.On("SetUserBlocked", int64(404), true).Return(usecase.ErrUserNotFound)

	w := postJSON(router, "/admin/users/404/block", gin.H{"blocked": true})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBlockUser_BadID(t *testing.T) {
	mockUseCase := new(MockAdminUseCase)
	handler := NewAdminHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/admin/users/:id/block", handler.BlockUser)

	w := postJSON(router, "/admin/users/abc/block", gin.H{"blocked": true})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "SetUserBlocked", mock.Anything, mock.Anything)
}
