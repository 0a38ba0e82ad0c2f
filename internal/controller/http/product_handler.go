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

type ProductHandler struct {
	productUseCase usecase.ProductUseCase
	logger         *logger.Logger
}

func NewProductHandler(productUseCase usecase.ProductUseCase, logger *logger.Logger) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
		logger:         logger,
	}
}

// ListProducts godoc
// @Summary      List approved products
// @Description  Returns all approved products with owner info and normalized image lists, newest first
// @Tags         products
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productUseCase.ListProducts()
	if err != nil {
		h.logger.Error("Failed to list products: %v", err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	response.Success(c, gin.H{"products": products})
}

// ListUserProducts godoc
// @Summary      List a user's approved products
// @Tags         products
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /users/{id}/products [get]
func (h *ProductHandler) ListUserProducts(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid user_id")
		return
	}

	products, err := h.productUseCase.ListUserProducts(userID)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidUser) {
			response.Error(c, http.StatusBadRequest, "Invalid user_id")
			return
		}
		h.logger.Error("Failed to list products for user %d: %v", userID, err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	response.Success(c, gin.H{"products": products})
}
