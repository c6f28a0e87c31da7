package events

import (
	"context"
	"errors"

	"github.com/wyfcoding/petstore/internal/catalog/application"
	"github.com/wyfcoding/petstore/pkg/logger"
	"github.com/wyfcoding/petstore/pkg/mq"
)

// wishChangedEvent 心愿单变更事件的本地视图，只取失效缓存所需字段
type wishChangedEvent struct {
	ProductID       uint   `json:"product_id"`
	AnimalCategory  string `json:"animal_category"`
	ProductCategory string `json:"product_category"`
	Action          string `json:"action"`
}

// WishListener 消费心愿单变更事件，失效对应类目的人气榜缓存
type WishListener struct {
	cache application.ListCache
}

// NewWishListener 创建监听器实例
func NewWishListener(cache application.ListCache) *WishListener {
	return &WishListener{cache: cache}
}

// HandleMessage 处理单条事件
func (l *WishListener) HandleMessage(ctx context.Context, msg *mq.Message) error {
	var event wishChangedEvent
	if err := msg.UnmarshalPayload(&event); err != nil {
		logger.Error(ctx, "Failed to decode wish changed event",
			"topic", msg.Topic, "offset", msg.Offset, "error", err)
		return err
	}

	key := application.PopularCacheKey(event.AnimalCategory, event.ProductCategory)
	if err := l.cache.Delete(ctx, key); err != nil {
		logger.Warn(ctx, "Failed to invalidate popular cache",
			"key", key, "product_id", event.ProductID, "error", err)
		return err
	}

	logger.Debug(ctx, "Popular cache invalidated",
		"key", key, "product_id", event.ProductID, "action", event.Action)
	return nil
}

// Run 持续消费直到 ctx 取消
func (l *WishListener) Run(ctx context.Context, consumer *mq.KafkaConsumer) {
	for {
		msg, err := consumer.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				logger.Info(ctx, "Wish listener stopped")
				return
			}
			logger.Error(ctx, "Failed to read wish changed event", "error", err)
			continue
		}
		// 失效失败不阻塞消费，缓存会在 TTL 到期后自愈
		_ = l.HandleMessage(ctx, msg)
	}
}
