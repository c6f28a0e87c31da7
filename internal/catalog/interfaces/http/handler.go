package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/wyfcoding/petstore/internal/catalog/application"
	"github.com/wyfcoding/petstore/internal/catalog/domain"
	"github.com/wyfcoding/petstore/pkg/logger"
	"github.com/wyfcoding/petstore/pkg/response"
)

// CatalogHandler 商品目录 HTTP 处理器
type CatalogHandler struct {
	query *application.CatalogQueryService
	cmd   *application.CatalogCommandService
}

// NewCatalogHandler 创建 HTTP 处理器实例
func NewCatalogHandler(query *application.CatalogQueryService, cmd *application.CatalogCommandService) *CatalogHandler {
	return &CatalogHandler{query: query, cmd: cmd}
}

// RegisterRoutes 注册路由
func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/v1/api")
	{
		api.GET("/product/detail/:productId", h.GetProduct)            // 商品详情
		api.GET("/product/:animalCategory/:productCategory", h.ListProducts) // 类目商品列表
		api.GET("/total", h.SearchProducts)                            // 全量搜索
		api.GET("/popular/:animalCategory/:productCategory", h.ListPopular)  // 人气 Top10
		api.GET("/recommend/:animalCategory/:productCategory", h.ListRecommended) // 推荐 3 种
		api.POST("/products", h.CreateProduct)                         // 创建商品
		api.PUT("/products/:id", h.UpdateProduct)                      // 更新商品
		api.POST("/products/seed", h.SeedProducts)                     // 批量灌入
	}
}

// GetProduct 商品详情
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid product id")
		return
	}

	dto, err := h.query.GetProduct(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			response.ErrorWithStatus(c, http.StatusNotFound, "product not found")
			return
		}
		logger.Error(c.Request.Context(), "Failed to get product", "product_id", id, "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, dto)
}

// ListProducts 类目商品列表，支持 sortBy/searchWord/page 查询参数
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	query := domain.ProductQuery{
		AnimalCategory:  c.Param("animalCategory"),
		ProductCategory: c.Param("productCategory"),
		SearchWord:      c.Query("searchWord"),
		Sort:            domain.ParseSortKey(c.Query("sortBy")),
		Page:            parsePage(c.Query("page")),
	}

	dtos, err := h.query.ListProducts(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryRequired) {
			response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error(c.Request.Context(), "Failed to list products", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, dtos)
}

// SearchProducts 全量搜索
func (h *CatalogHandler) SearchProducts(c *gin.Context) {
	dtos, err := h.query.SearchProducts(
		c.Request.Context(),
		c.Query("searchWord"),
		domain.ParseSortKey(c.Query("sortBy")),
		parsePage(c.Query("page")),
	)
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to search products", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, dtos)
}

// ListPopular 人气 Top10
func (h *CatalogHandler) ListPopular(c *gin.Context) {
	dtos, err := h.query.ListPopular(c.Request.Context(), c.Param("animalCategory"), c.Param("productCategory"))
	if err != nil {
		if errors.Is(err, domain.ErrCategoryRequired) {
			response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error(c.Request.Context(), "Failed to list popular products", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, dtos)
}

// ListRecommended 推荐 3 种
func (h *CatalogHandler) ListRecommended(c *gin.Context) {
	dtos, err := h.query.ListRecommended(c.Request.Context(), c.Param("animalCategory"), c.Param("productCategory"))
	if err != nil {
		if errors.Is(err, domain.ErrCategoryRequired) {
			response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error(c.Request.Context(), "Failed to list recommended products", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, dtos)
}

// CreateProductRequest 创建商品请求
type CreateProductRequest struct {
	AnimalCategory  string          `json:"animal_category" binding:"required"`
	ProductCategory string          `json:"product_category" binding:"required"`
	Name            string          `json:"name" binding:"required"`
	Price           decimal.Decimal `json:"price"`
	Stock           int             `json:"stock"`
	Description     string          `json:"description"`
	ImageURL        string          `json:"image_url"`
}

// CreateProduct 创建商品
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := application.CreateProductCommand{
		AnimalCategory:  req.AnimalCategory,
		ProductCategory: req.ProductCategory,
		Name:            req.Name,
		Price:           req.Price,
		Stock:           req.Stock,
		Description:     req.Description,
		ImageURL:        req.ImageURL,
	}

	productID, err := h.cmd.CreateProduct(c.Request.Context(), cmd)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryRequired) || errors.Is(err, domain.ErrInvalidPrice) || errors.Is(err, domain.ErrInvalidStock) {
			response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error(c.Request.Context(), "Failed to create product", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, gin.H{"product_id": productID})
}

// UpdateProduct 更新商品
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid product id")
		return
	}

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := application.UpdateProductCommand{
		ID:              uint(id),
		AnimalCategory:  req.AnimalCategory,
		ProductCategory: req.ProductCategory,
		Name:            req.Name,
		Price:           req.Price,
		Stock:           req.Stock,
		Description:     req.Description,
		ImageURL:        req.ImageURL,
	}

	if err := h.cmd.UpdateProduct(c.Request.Context(), cmd); err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			response.ErrorWithStatus(c, http.StatusNotFound, "product not found")
		case errors.Is(err, domain.ErrCategoryRequired), errors.Is(err, domain.ErrInvalidPrice), errors.Is(err, domain.ErrInvalidStock):
			response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		default:
			logger.Error(c.Request.Context(), "Failed to update product", "product_id", id, "error", err)
			response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	response.Success(c, gin.H{"product_id": id})
}

// SeedProductsRequest 批量灌入请求
type SeedProductsRequest struct {
	Template CreateProductRequest `json:"template" binding:"required"`
	Count    int                  `json:"count"`
}

// SeedProducts 批量灌入模板商品
func (h *CatalogHandler) SeedProducts(c *gin.Context) {
	var req SeedProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := application.SeedProductsCommand{
		Template: application.CreateProductCommand{
			AnimalCategory:  req.Template.AnimalCategory,
			ProductCategory: req.Template.ProductCategory,
			Name:            req.Template.Name,
			Price:           req.Template.Price,
			Stock:           req.Template.Stock,
			Description:     req.Template.Description,
			ImageURL:        req.Template.ImageURL,
		},
		Count: req.Count,
	}

	count, err := h.cmd.SeedProducts(c.Request.Context(), cmd)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryRequired) || errors.Is(err, domain.ErrInvalidPrice) || errors.Is(err, domain.ErrInvalidStock) {
			response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error(c.Request.Context(), "Failed to seed products", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, gin.H{"seeded": count})
}

func parsePage(raw string) int {
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
