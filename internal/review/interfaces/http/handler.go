package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	catalogdomain "github.com/wyfcoding/petstore/internal/catalog/domain"
	"github.com/wyfcoding/petstore/internal/review/application"
	"github.com/wyfcoding/petstore/internal/review/domain"
	userdomain "github.com/wyfcoding/petstore/internal/user/domain"
	"github.com/wyfcoding/petstore/pkg/logger"
	"github.com/wyfcoding/petstore/pkg/middleware"
	"github.com/wyfcoding/petstore/pkg/response"
)

// ReviewHandler 评价 HTTP 处理器
type ReviewHandler struct {
	service *application.ReviewService
}

// NewReviewHandler 创建 HTTP 处理器实例
func NewReviewHandler(service *application.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// RegisterRoutes 注册路由。写操作要求认证，authed 分组已挂认证中间件。
func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup, authed *gin.RouterGroup) {
	api := router.Group("/v1/api")
	{
		api.GET("/reviews/:productId", h.ListProductReviews) // 商品评价列表
	}

	authedAPI := authed.Group("/v1/api")
	{
		authedAPI.POST("/reviews", h.CreateReview)          // 创建评价
		authedAPI.PUT("/reviews/:reviewId", h.ModifyReview) // 修改评价
	}
}

// CreateReviewRequest 创建评价请求
type CreateReviewRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content"`
}

// CreateReview 创建评价
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := application.CreateReviewCommand{
		UserID:    userID,
		ProductID: req.ProductID,
		Title:     req.Title,
		Content:   req.Content,
	}

	dto, err := h.service.CreateReview(c.Request.Context(), cmd)
	if err != nil {
		h.writeError(c, err, "Failed to create review")
		return
	}

	response.Success(c, dto)
}

// ModifyReviewRequest 修改评价请求
type ModifyReviewRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

// ModifyReview 修改评价
func (h *ReviewHandler) ModifyReview(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "authentication required")
		return
	}

	reviewID, err := strconv.ParseUint(c.Param("reviewId"), 10, 64)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid review id")
		return
	}

	var req ModifyReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := application.ModifyReviewCommand{
		UserID:   userID,
		ReviewID: uint(reviewID),
		Title:    req.Title,
		Content:  req.Content,
	}

	dto, err := h.service.ModifyReview(c.Request.Context(), cmd)
	if err != nil {
		h.writeError(c, err, "Failed to modify review")
		return
	}

	response.Success(c, dto)
}

// ListProductReviews 商品评价列表
func (h *ReviewHandler) ListProductReviews(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid product id")
		return
	}

	page := 1
	if raw := c.Query("page"); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil && p > 0 {
			page = p
		}
	}

	dtos, err := h.service.ListProductReviews(c.Request.Context(), uint(productID), page)
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to list reviews", "product_id", productID, "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, dtos)
}

func (h *ReviewHandler) writeError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, userdomain.ErrUserNotFound):
		response.ErrorWithStatus(c, http.StatusNotFound, "user not found")
	case errors.Is(err, catalogdomain.ErrProductNotFound):
		response.ErrorWithStatus(c, http.StatusNotFound, "product not found")
	case errors.Is(err, domain.ErrReviewDoesNotExist):
		response.ErrorWithStatus(c, http.StatusNotFound, "review does not exist")
	case errors.Is(err, domain.ErrReviewPermissionDenied):
		response.ErrorWithStatus(c, http.StatusForbidden, "permission denied")
	case errors.Is(err, domain.ErrReviewAlreadyExists):
		response.ErrorWithStatus(c, http.StatusConflict, "review already exists")
	default:
		logger.Error(c.Request.Context(), logMsg, "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
	}
}
