package domain

import (
	"errors"
	"time"
)

var (
	// ErrReviewAlreadyExists 同一用户对同一商品已存在未删除的评价
	ErrReviewAlreadyExists = errors.New("review already exists for this product")
	// ErrReviewDoesNotExist 评价不存在或已被软删除
	ErrReviewDoesNotExist = errors.New("review does not exist")
	// ErrReviewPermissionDenied 未购买该商品，或不是评价的作者
	ErrReviewPermissionDenied = errors.New("review permission denied")
)

// 评价列表的固定页大小
const PageSize = 15

// Review 商品评价。唯一索引保证同一 (user_id, product_id) 至多
// 一条未删除评价：并发写入时第二个事务命中冲突并映射为 ErrReviewAlreadyExists。
type Review struct {
	ID        uint      `gorm:"primarykey"`
	UserID    uint      `gorm:"column:user_id;not null;uniqueIndex:idx_user_product_live,priority:1"`
	ProductID uint      `gorm:"column:product_id;not null;uniqueIndex:idx_user_product_live,priority:2"`
	Title     string    `gorm:"column:title;type:varchar(255);not null"`
	Content   string    `gorm:"column:content;type:text"`
	IsDeleted bool      `gorm:"column:is_deleted;not null;default:false;uniqueIndex:idx_user_product_live,priority:3"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Review) TableName() string { return "reviews" }

// IsAuthoredBy 报告评价是否由指定用户撰写
func (r *Review) IsAuthoredBy(userID uint) bool {
	return r.UserID == userID
}
