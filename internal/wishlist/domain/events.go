package domain

import (
	"context"
	"time"
)

// TopicWishChanged 心愿单变更事件主题
const TopicWishChanged = "petstore.wish.changed"

// 心愿单变更动作
const (
	WishActionAdded   = "added"
	WishActionRemoved = "removed"
)

// EventPublisher 领域事件发布者
type EventPublisher interface {
	Publish(ctx context.Context, topic string, key string, event any) error
}

// WishChangedEvent 心愿单变更事件，携带商品类目供下游失效人气缓存
type WishChangedEvent struct {
	UserID          uint      `json:"user_id"`
	ProductID       uint      `json:"product_id"`
	AnimalCategory  string    `json:"animal_category"`
	ProductCategory string    `json:"product_category"`
	Action          string    `json:"action"`
	Timestamp       time.Time `json:"timestamp"`
}
