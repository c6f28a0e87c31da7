package domain

import (
	"context"

	"gorm.io/gorm"
)

// Order 订单记录，本服务只作为购买凭证读取
type Order struct {
	gorm.Model
	UserID    uint `gorm:"column:user_id;not null;index:idx_user_product,priority:1"`
	ProductID uint `gorm:"column:product_id;not null;index:idx_user_product,priority:2"`
	Quantity  int  `gorm:"column:quantity;not null;default:1"`
	IsDeleted bool `gorm:"column:is_deleted;not null;default:false"`
}

func (Order) TableName() string { return "orders" }

// OrderRepository 订单仓储，评价资格校验的读侧
type OrderRepository interface {
	// CountByUserAndProduct 统计用户对某商品的有效订单数，软删除订单不计入
	CountByUserAndProduct(ctx context.Context, userID, productID uint) (int64, error)
}
