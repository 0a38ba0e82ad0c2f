package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/enaszrekat/reuse-market-app/internal/usecase"
	"github.com/enaszrekat/reuse-market-app/pkg/logger"
	"github.com/enaszrekat/reuse-market-app/pkg/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      *logger.Logger
}

func NewUserHandler(userUseCase usecase.UserUseCase, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// GetUser godoc
// @Summary      Get user by ID
// @Tags         users
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid user_id")
		return
	}

	user, err := h.userUseCase.GetUser(userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidUser):
			response.Error(c, http.StatusBadRequest, "Invalid user_id")
		case errors.Is(err, usecase.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "User not found")
		default:
			h.logger.Error("Failed to get user %d: %v", userID, err)
			response.Error(c, http.StatusInternalServerError, "Failed to fetch user")
		}
		return
	}

	response.Success(c, gin.H{"user": user})
}
