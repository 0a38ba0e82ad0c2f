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

type AdminHandler struct {
	adminUseCase usecase.AdminUseCase
	logger       *logger.Logger
}

func NewAdminHandler(adminUseCase usecase.AdminUseCase, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
		logger:       logger,
	}
}

// GetStats godoc
// @Summary      Dashboard statistics
// @Description  Counts of users, products and today's messages/notifications
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /admin/stats [get]
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminUseCase.GetStats()
	if err != nil {
		h.logger.Error("Failed to fetch admin stats: %v", err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch statistics")
		return
	}

	response.Success(c, gin.H{"stats": stats})
}

// GetRecentActivity godoc
// @Summary      Recent registrations and message volume
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /admin/activity [get]
func (h *AdminHandler) GetRecentActivity(c *gin.Context) {
	activity, err := h.adminUseCase.GetRecentActivity()
	if err != nil {
		h.logger.Error("Failed to fetch admin activity: %v", err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch activity")
		return
	}

	response.Success(c, gin.H{"activity": activity})
}

type BlockUserRequest struct {
	Blocked bool `form:"blocked" json:"blocked"`
}

// BlockUser godoc
// @Summary      Block or unblock a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id path int true "User ID"
// @Param        request body BlockUserRequest true "Blocked flag"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /admin/users/{id}/block [post]
func (h *AdminHandler) BlockUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req BlockUserRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.adminUseCase.SetUserBlocked(userID, req.Blocked); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidUser):
			response.Error(c, http.StatusBadRequest, "Invalid user ID")
		case errors.Is(err, usecase.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "User not found")
		default:
			h.logger.Error("Failed to update blocked flag for user %d: %v", userID, err)
			response.Error(c, http.StatusInternalServerError, "Failed to update user status")
		}
		return
	}

	message := "User unblocked successfully"
	if req.Blocked {
		message = "User blocked successfully"
	}
	response.Success(c, gin.H{"message": message})
}
