package application

import (
	"context"
	"strconv"
	"time"

	catalogdomain "github.com/wyfcoding/petstore/internal/catalog/domain"
	"github.com/wyfcoding/petstore/internal/wishlist/domain"
	"github.com/wyfcoding/petstore/pkg/logger"
	"github.com/wyfcoding/petstore/pkg/metrics"
)

// WishlistService 心愿单应用服务
type WishlistService struct {
	wishes    domain.WishRepository
	products  catalogdomain.ProductRepository
	publisher domain.EventPublisher
	metrics   *metrics.Metrics
}

// NewWishlistService 创建心愿单应用服务实例
func NewWishlistService(
	wishes domain.WishRepository,
	products catalogdomain.ProductRepository,
	publisher domain.EventPublisher,
	m *metrics.Metrics,
) *WishlistService {
	return &WishlistService{
		wishes:    wishes,
		products:  products,
		publisher: publisher,
		metrics:   m,
	}
}

// AddWish 收藏商品。商品人气计数同步加一，并广播变更事件。
func (s *WishlistService) AddWish(ctx context.Context, userID, productID uint) error {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}

	wish := &domain.Wish{UserID: userID, ProductID: productID}
	if err := s.wishes.Add(ctx, wish); err != nil {
		return err
	}

	logger.Info(ctx, "wish added", "user_id", userID, "product_id", productID)
	s.recordWishEvent(domain.WishActionAdded)
	s.publishChange(ctx, userID, product, domain.WishActionAdded)
	return nil
}

// RemoveWish 取消收藏。商品人气计数同步减一，并广播变更事件。
func (s *WishlistService) RemoveWish(ctx context.Context, userID, productID uint) error {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}

	if err := s.wishes.Remove(ctx, userID, productID); err != nil {
		return err
	}

	logger.Info(ctx, "wish removed", "user_id", userID, "product_id", productID)
	s.recordWishEvent(domain.WishActionRemoved)
	s.publishChange(ctx, userID, product, domain.WishActionRemoved)
	return nil
}

// ListWishes 列出用户心愿单
func (s *WishlistService) ListWishes(ctx context.Context, userID uint) ([]*domain.WishProduct, error) {
	return s.wishes.ListByUser(ctx, userID)
}

func (s *WishlistService) recordWishEvent(action string) {
	if s.metrics != nil {
		s.metrics.WishEventsTotal.WithLabelValues(action).Inc()
	}
}

func (s *WishlistService) publishChange(ctx context.Context, userID uint, product *catalogdomain.Product, action string) {
	if s.publisher == nil {
		return
	}
	event := domain.WishChangedEvent{
		UserID:          userID,
		ProductID:       product.ID,
		AnimalCategory:  product.AnimalCategory,
		ProductCategory: product.ProductCategory,
		Action:          action,
		Timestamp:       time.Now(),
	}
	key := strconv.FormatUint(uint64(product.ID), 10)
	if err := s.publisher.Publish(ctx, domain.TopicWishChanged, key, event); err != nil {
		logger.Warn(ctx, "failed to publish wish changed event",
			"user_id", userID, "product_id", product.ID, "action", action, "error", err)
	}
}
