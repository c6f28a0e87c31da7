package domain

import (
	"context"
	"time"
)

// TopicReviewCreated 评价创建事件主题
const TopicReviewCreated = "petstore.review.created"

// EventPublisher 领域事件发布者
type EventPublisher interface {
	Publish(ctx context.Context, topic string, key string, event any) error
}

// ReviewCreatedEvent 评价创建事件
type ReviewCreatedEvent struct {
	ReviewID  uint      `json:"review_id"`
	UserID    uint      `json:"user_id"`
	ProductID uint      `json:"product_id"`
	Title     string    `json:"title"`
	Timestamp time.Time `json:"timestamp"`
}
