package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	catalogdomain "github.com/wyfcoding/petstore/internal/catalog/domain"
	"github.com/wyfcoding/petstore/internal/wishlist/application"
	"github.com/wyfcoding/petstore/internal/wishlist/domain"
	"github.com/wyfcoding/petstore/pkg/logger"
	"github.com/wyfcoding/petstore/pkg/middleware"
	"github.com/wyfcoding/petstore/pkg/response"
)

// WishlistHandler 心愿单 HTTP 处理器
type WishlistHandler struct {
	service *application.WishlistService
}

// NewWishlistHandler 创建 HTTP 处理器实例
func NewWishlistHandler(service *application.WishlistService) *WishlistHandler {
	return &WishlistHandler{service: service}
}

// RegisterRoutes 注册路由，心愿单全部操作都要求认证
func (h *WishlistHandler) RegisterRoutes(authed *gin.RouterGroup) {
	api := authed.Group("/v1/api")
	{
		api.GET("/wish", h.ListWishes)                // 心愿单列表
		api.POST("/wish/:productId", h.AddWish)       // 收藏商品
		api.DELETE("/wish/:productId", h.RemoveWish)  // 取消收藏
	}
}

// AddWish 收藏商品
func (h *WishlistHandler) AddWish(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "authentication required")
		return
	}

	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.service.AddWish(c.Request.Context(), userID, uint(productID)); err != nil {
		switch {
		case errors.Is(err, catalogdomain.ErrProductNotFound):
			response.ErrorWithStatus(c, http.StatusNotFound, "product not found")
		case errors.Is(err, domain.ErrWishAlreadyExists):
			response.ErrorWithStatus(c, http.StatusConflict, "product already in wishlist")
		default:
			logger.Error(c.Request.Context(), "Failed to add wish", "user_id", userID, "product_id", productID, "error", err)
			response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	response.Success(c, gin.H{"product_id": productID})
}

// RemoveWish 取消收藏
func (h *WishlistHandler) RemoveWish(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "authentication required")
		return
	}

	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.service.RemoveWish(c.Request.Context(), userID, uint(productID)); err != nil {
		switch {
		case errors.Is(err, catalogdomain.ErrProductNotFound):
			response.ErrorWithStatus(c, http.StatusNotFound, "product not found")
		case errors.Is(err, domain.ErrWishNotFound):
			response.ErrorWithStatus(c, http.StatusNotFound, "wish not found")
		default:
			logger.Error(c.Request.Context(), "Failed to remove wish", "user_id", userID, "product_id", productID, "error", err)
			response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	response.Success(c, gin.H{"product_id": productID})
}

// ListWishes 心愿单列表
func (h *WishlistHandler) ListWishes(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "authentication required")
		return
	}

	rows, err := h.service.ListWishes(c.Request.Context(), userID)
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to list wishes", "user_id", userID, "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, rows)
}
