package messaging

import (
	"context"

	"github.com/wyfcoding/petstore/internal/review/domain"
	"github.com/wyfcoding/petstore/pkg/mq"
)

// kafkaPublisher 评价事件的 Kafka 发布者实现
type kafkaPublisher struct {
	producer *mq.KafkaProducer
}

// NewKafkaPublisher 创建评价事件发布者
func NewKafkaPublisher(producer *mq.KafkaProducer) domain.EventPublisher {
	return &kafkaPublisher{producer: producer}
}

func (p *kafkaPublisher) Publish(ctx context.Context, topic string, key string, event any) error {
	return p.producer.SendMessage(ctx, topic, key, event)
}
