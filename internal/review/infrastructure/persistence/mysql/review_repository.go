package mysql

import (
	"context"
	"errors"

	"github.com/wyfcoding/petstore/internal/review/domain"
	"github.com/wyfcoding/petstore/pkg/db"
	"gorm.io/gorm"
)

type reviewRepository struct {
	database *db.DB
}

// NewReviewRepository 创建评价仓储实例
func NewReviewRepository(database *db.DB) domain.ReviewRepository {
	return &reviewRepository{database: database}
}

// Create 查重与插入在同一事务内执行；并发下未被查重拦住的
// 第二条插入会触发唯一索引冲突，同样映射为 ErrReviewAlreadyExists。
func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	err := r.database.WithTx(ctx, func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.Review{}).
			Where("user_id = ? AND product_id = ? AND is_deleted = ?", review.UserID, review.ProductID, false).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrReviewAlreadyExists
		}
		return tx.Create(review).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrReviewAlreadyExists
	}
	return err
}

func (r *reviewRepository) GetByID(ctx context.Context, id uint) (*domain.Review, error) {
	var review domain.Review
	err := r.database.DB.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrReviewDoesNotExist
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// UpdateContent 只覆盖标题与内容，created_at 不变
func (r *reviewRepository) UpdateContent(ctx context.Context, id uint, title, content string) (*domain.Review, error) {
	result := r.database.DB.WithContext(ctx).Model(&domain.Review{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]any{"title": title, "content": content})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrReviewDoesNotExist
	}
	return r.GetByID(ctx, id)
}

func (r *reviewRepository) ListByProduct(ctx context.Context, productID uint, offset, limit int) ([]*domain.Review, error) {
	var reviews []*domain.Review
	err := r.database.DB.WithContext(ctx).
		Where("product_id = ? AND is_deleted = ?", productID, false).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
