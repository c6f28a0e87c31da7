package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/wyfcoding/petstore/internal/catalog/application"
	"github.com/wyfcoding/petstore/pkg/mq"
)

type recordingCache struct {
	deleted []string
}

func (c *recordingCache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}

func (c *recordingCache) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return nil
}

func (c *recordingCache) Delete(ctx context.Context, keys ...string) error {
	c.deleted = append(c.deleted, keys...)
	return nil
}

func TestWishListenerHandleMessage(t *testing.T) {
	t.Run("invalidates the category cache key", func(t *testing.T) {
		cache := &recordingCache{}
		listener := NewWishListener(cache)

		payload, err := json.Marshal(map[string]any{
			"user_id":          1,
			"product_id":       10,
			"animal_category":  "cat",
			"product_category": "food",
			"action":           "added",
		})
		require.NoError(t, err)

		err = listener.HandleMessage(context.Background(), &mq.Message{
			Topic: "petstore.wish.changed",
			Value: payload,
		})
		require.NoError(t, err)
		require.Equal(t, []string{application.PopularCacheKey("cat", "food")}, cache.deleted)
	})

	t.Run("malformed payload is an error", func(t *testing.T) {
		cache := &recordingCache{}
		listener := NewWishListener(cache)

		err := listener.HandleMessage(context.Background(), &mq.Message{
			Topic: "petstore.wish.changed",
			Value: []byte("{not json"),
		})
		require.Error(t, err)
		require.Empty(t, cache.deleted)
	})
}
