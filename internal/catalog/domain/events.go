package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// 商品事件主题
const (
	TopicProductCreated = "petstore.product.created"
	TopicProductUpdated = "petstore.product.updated"
)

// EventPublisher 领域事件发布者
type EventPublisher interface {
	Publish(ctx context.Context, topic string, key string, event any) error
}

// ProductCreatedEvent 商品创建事件
type ProductCreatedEvent struct {
	ProductID       uint            `json:"product_id"`
	AnimalCategory  string          `json:"animal_category"`
	ProductCategory string          `json:"product_category"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	Stock           int             `json:"stock"`
	Timestamp       time.Time       `json:"timestamp"`
}

// ProductUpdatedEvent 商品更新事件
type ProductUpdatedEvent struct {
	ProductID       uint            `json:"product_id"`
	AnimalCategory  string          `json:"animal_category"`
	ProductCategory string          `json:"product_category"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	Stock           int             `json:"stock"`
	Timestamp       time.Time       `json:"timestamp"`
}
