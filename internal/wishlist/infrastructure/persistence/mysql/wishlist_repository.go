package mysql

import (
	"context"
	"errors"

	catalogdomain "github.com/wyfcoding/petstore/internal/catalog/domain"
	"github.com/wyfcoding/petstore/internal/wishlist/domain"
	"github.com/wyfcoding/petstore/pkg/db"
	"gorm.io/gorm"
)

type wishRepository struct {
	database *db.DB
}

// NewWishRepository 创建心愿单仓储实例
func NewWishRepository(database *db.DB) domain.WishRepository {
	return &wishRepository{database: database}
}

// Add 插入条目并在同一事务内将商品 wish_count 加一
func (r *wishRepository) Add(ctx context.Context, wish *domain.Wish) error {
	err := r.database.WithTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(wish).Error; err != nil {
			return err
		}
		return tx.Model(&catalogdomain.Product{}).
			Where("id = ?", wish.ProductID).
			UpdateColumn("wish_count", gorm.Expr("wish_count + 1")).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrWishAlreadyExists
	}
	return err
}

// Remove 删除条目并在同一事务内将商品 wish_count 减一，计数不下穿零
func (r *wishRepository) Remove(ctx context.Context, userID, productID uint) error {
	return r.database.WithTx(ctx, func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND product_id = ?", userID, productID).
			Delete(&domain.Wish{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrWishNotFound
		}
		return tx.Model(&catalogdomain.Product{}).
			Where("id = ?", productID).
			UpdateColumn("wish_count", gorm.Expr("GREATEST(wish_count - 1, 0)")).Error
	})
}

func (r *wishRepository) ListByUser(ctx context.Context, userID uint) ([]*domain.WishProduct, error) {
	var rows []*domain.WishProduct
	err := r.database.DB.WithContext(ctx).
		Table("wishes").
		Select(`wishes.id AS wish_id, products.id AS product_id,
			products.animal_category, products.product_category,
			products.name, products.price, products.image_url,
			wishes.created_at AS wished_at`).
		Joins("JOIN products ON products.id = wishes.product_id").
		Where("wishes.user_id = ?", userID).
		Order("wishes.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
