package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrWishAlreadyExists 商品已在心愿单中
	ErrWishAlreadyExists = errors.New("product already in wishlist")
	// ErrWishNotFound 心愿单中没有该商品
	ErrWishNotFound = errors.New("wish not found")
)

// Wish 心愿单条目。唯一索引保证同一用户对同一商品至多收藏一次。
type Wish struct {
	ID        uint      `gorm:"primarykey"`
	UserID    uint      `gorm:"column:user_id;not null;uniqueIndex:idx_user_product,priority:1"`
	ProductID uint      `gorm:"column:product_id;not null;uniqueIndex:idx_user_product,priority:2"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Wish) TableName() string { return "wishes" }

// WishProduct 心愿单列表的读模型行，关联商品信息
type WishProduct struct {
	WishID          uint            `json:"wishId"`
	ProductID       uint            `json:"productId"`
	AnimalCategory  string          `json:"animalCategory"`
	ProductCategory string          `json:"productCategory"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	ImageURL        string          `json:"imageUrl"`
	WishedAt        time.Time       `json:"wishedAt"`
}

// WishRepository 心愿单仓储。增删与商品人气计数的更新在同一事务内完成。
type WishRepository interface {
	// Add 收藏商品并将商品 wish_count 加一；重复收藏返回 ErrWishAlreadyExists
	Add(ctx context.Context, wish *Wish) error
	// Remove 取消收藏并将商品 wish_count 减一（不低于零）；
	// 未收藏时返回 ErrWishNotFound
	Remove(ctx context.Context, userID, productID uint) error
	// ListByUser 列出用户的心愿单，关联商品信息，收藏时间倒序
	ListByUser(ctx context.Context, userID uint) ([]*WishProduct, error)
}
