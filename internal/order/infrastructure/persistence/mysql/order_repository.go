package mysql

import (
	"context"

	"github.com/wyfcoding/petstore/internal/order/domain"
	"gorm.io/gorm"
)

type orderRepository struct{ db *gorm.DB }

// NewOrderRepository 创建订单仓储实例
func NewOrderRepository(db *gorm.DB) domain.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CountByUserAndProduct(ctx context.Context, userID, productID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Order{}).
		Where("user_id = ? AND product_id = ? AND is_deleted = ?", userID, productID, false).
		Count(&count).Error
	return count, err
}
