package application

import (
	"context"
	"strconv"
	"time"

	catalogdomain "github.com/wyfcoding/petstore/internal/catalog/domain"
	orderdomain "github.com/wyfcoding/petstore/internal/order/domain"
	"github.com/wyfcoding/petstore/internal/review/domain"
	userdomain "github.com/wyfcoding/petstore/internal/user/domain"
	"github.com/wyfcoding/petstore/pkg/logger"
	"github.com/wyfcoding/petstore/pkg/metrics"
)

// CreateReviewCommand 创建评价命令
type CreateReviewCommand struct {
	UserID    uint   `json:"userId"`
	ProductID uint   `json:"productId" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content"`
}

// ModifyReviewCommand 修改评价命令
type ModifyReviewCommand struct {
	UserID   uint   `json:"userId"`
	ReviewID uint   `json:"reviewId" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content"`
}

// ReviewService 评价应用服务。
// 创建评价的校验顺序固定：用户 -> 商品 -> 购买资格 -> 重复评价。
type ReviewService struct {
	reviews   domain.ReviewRepository
	users     userdomain.UserRepository
	products  catalogdomain.ProductRepository
	orders    orderdomain.OrderRepository
	publisher domain.EventPublisher
	metrics   *metrics.Metrics
}

// NewReviewService 创建评价应用服务实例
func NewReviewService(
	reviews domain.ReviewRepository,
	users userdomain.UserRepository,
	products catalogdomain.ProductRepository,
	orders orderdomain.OrderRepository,
	publisher domain.EventPublisher,
	m *metrics.Metrics,
) *ReviewService {
	return &ReviewService{
		reviews:   reviews,
		users:     users,
		products:  products,
		orders:    orders,
		publisher: publisher,
		metrics:   m,
	}
}

// CreateReview 创建评价。仅购买过该商品的用户可评价，且一人一商品一条。
func (s *ReviewService) CreateReview(ctx context.Context, cmd CreateReviewCommand) (*ReviewDTO, error) {
	if _, err := s.users.GetByID(ctx, cmd.UserID); err != nil {
		return nil, err
	}
	if _, err := s.products.GetByID(ctx, cmd.ProductID); err != nil {
		return nil, err
	}

	purchased, err := s.orders.CountByUserAndProduct(ctx, cmd.UserID, cmd.ProductID)
	if err != nil {
		return nil, err
	}
	if purchased == 0 {
		return nil, domain.ErrReviewPermissionDenied
	}

	review := &domain.Review{
		UserID:    cmd.UserID,
		ProductID: cmd.ProductID,
		Title:     cmd.Title,
		Content:   cmd.Content,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	logger.Info(ctx, "review created",
		"review_id", review.ID, "user_id", cmd.UserID, "product_id", cmd.ProductID)
	if s.metrics != nil {
		s.metrics.ReviewsTotal.Inc()
	}

	if s.publisher != nil {
		event := domain.ReviewCreatedEvent{
			ReviewID:  review.ID,
			UserID:    review.UserID,
			ProductID: review.ProductID,
			Title:     review.Title,
			Timestamp: time.Now(),
		}
		key := strconv.FormatUint(uint64(review.ProductID), 10)
		if err := s.publisher.Publish(ctx, domain.TopicReviewCreated, key, event); err != nil {
			logger.Warn(ctx, "failed to publish review created event",
				"review_id", review.ID, "error", err)
		}
	}
	return toReviewDTO(review), nil
}

// ModifyReview 修改评价。仅作者本人可改，创建时间保持不变。
func (s *ReviewService) ModifyReview(ctx context.Context, cmd ModifyReviewCommand) (*ReviewDTO, error) {
	if _, err := s.users.GetByID(ctx, cmd.UserID); err != nil {
		return nil, err
	}

	review, err := s.reviews.GetByID(ctx, cmd.ReviewID)
	if err != nil {
		return nil, err
	}
	if !review.IsAuthoredBy(cmd.UserID) {
		return nil, domain.ErrReviewPermissionDenied
	}

	updated, err := s.reviews.UpdateContent(ctx, cmd.ReviewID, cmd.Title, cmd.Content)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "review modified",
		"review_id", cmd.ReviewID, "user_id", cmd.UserID)
	return toReviewDTO(updated), nil
}

// ListProductReviews 分页列出商品评价
func (s *ReviewService) ListProductReviews(ctx context.Context, productID uint, page int) ([]*ReviewDTO, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * domain.PageSize
	reviews, err := s.reviews.ListByProduct(ctx, productID, offset, domain.PageSize)
	if err != nil {
		return nil, err
	}
	return toReviewDTOs(reviews), nil
}
