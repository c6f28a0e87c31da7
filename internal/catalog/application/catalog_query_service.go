package application

import (
	"context"
	"fmt"
	"time"

	"github.com/wyfcoding/petstore/internal/catalog/domain"
	"github.com/wyfcoding/petstore/pkg/logger"
	"github.com/wyfcoding/petstore/pkg/metrics"
)

// popularCacheTTL 人气榜缓存有效期，收藏事件到达时提前失效
const popularCacheTTL = 5 * time.Minute

// ListCache 人气榜缓存接口，由 Redis 实现
type ListCache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// CatalogQueryService 商品目录查询服务，只读、无副作用
type CatalogQueryService struct {
	repo    domain.ProductRepository
	cache   ListCache
	metrics *metrics.Metrics
}

// NewCatalogQueryService 创建商品目录查询服务实例
func NewCatalogQueryService(repo domain.ProductRepository, cache ListCache, m *metrics.Metrics) *CatalogQueryService {
	return &CatalogQueryService{
		repo:    repo,
		cache:   cache,
		metrics: m,
	}
}

// GetProduct 根据 ID 获取商品，不存在时返回 domain.ErrProductNotFound
func (s *CatalogQueryService) GetProduct(ctx context.Context, id uint) (*ProductDTO, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toProductDTO(product)
	return &dto, nil
}

// ListProducts 按类目对分页列出商品，类目对不完整时返回 domain.ErrCategoryRequired
func (s *CatalogQueryService) ListProducts(ctx context.Context, query domain.ProductQuery) ([]ProductDTO, error) {
	if !query.HasCategories() {
		return nil, domain.ErrCategoryRequired
	}

	products, err := s.repo.FindByQuery(ctx, query)
	if err != nil {
		return nil, err
	}
	return toProductDTOs(products), nil
}

// SearchProducts 全量搜索，不限类目
func (s *CatalogQueryService) SearchProducts(ctx context.Context, searchWord string, sort domain.SortKey, page int) ([]ProductDTO, error) {
	query := domain.ProductQuery{
		SearchWord: searchWord,
		Sort:       sort,
		Page:       page,
	}

	products, err := s.repo.FindByQuery(ctx, query)
	if err != nil {
		return nil, err
	}
	return toProductDTOs(products), nil
}

// ListPopular 类目下收藏数最高的前 10 个商品，结果短暂缓存
func (s *CatalogQueryService) ListPopular(ctx context.Context, animalCategory, productCategory string) ([]ProductDTO, error) {
	if animalCategory == "" || productCategory == "" {
		return nil, domain.ErrCategoryRequired
	}

	key := PopularCacheKey(animalCategory, productCategory)
	if s.cache != nil {
		var cached []ProductDTO
		hit, err := s.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			logger.Warn(ctx, "Popular cache lookup failed", "key", key, "error", err)
		} else if hit {
			s.recordCache("hit")
			return cached, nil
		}
		s.recordCache("miss")
	}

	products, err := s.repo.FindTop(ctx, animalCategory, productCategory, domain.SortByWishCount, domain.PopularLimit)
	if err != nil {
		return nil, err
	}

	dtos := toProductDTOs(products)
	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, dtos, popularCacheTTL); err != nil {
			logger.Warn(ctx, "Popular cache store failed", "key", key, "error", err)
		}
	}
	return dtos, nil
}

// ListRecommended 类目下库存最高的前 3 个商品，库存高作为推荐信号
func (s *CatalogQueryService) ListRecommended(ctx context.Context, animalCategory, productCategory string) ([]ProductDTO, error) {
	if animalCategory == "" || productCategory == "" {
		return nil, domain.ErrCategoryRequired
	}

	products, err := s.repo.FindTop(ctx, animalCategory, productCategory, domain.SortByStock, domain.RecommendLimit)
	if err != nil {
		return nil, err
	}
	return toProductDTOs(products), nil
}

func (s *CatalogQueryService) recordCache(result string) {
	if s.metrics != nil {
		s.metrics.PopularCacheTotal.WithLabelValues(result).Inc()
	}
}

// PopularCacheKey 人气榜缓存 key
func PopularCacheKey(animalCategory, productCategory string) string {
	return fmt.Sprintf("popular:%s:%s", animalCategory, productCategory)
}
