package mq

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConsumer_Subscribe_AlreadyStarted(t *testing.T) {
	t.Run("subscribe when already started returns nil", func(t *testing.T) {
		c := &Consumer{
			started: true,
		}

		err := c.Subscribe()
		assert.NoError(t, err)
	})
}

func TestConsumer_Close(t *testing.T) {
	t.Run("nil consumer close returns nil", func(t *testing.T) {
		var c *Consumer
		err := c.Close()
		assert.NoError(t, err)
	})

	t.Run("consumer with nil client close returns nil", func(t *testing.T) {
		c := &Consumer{
			client: nil,
		}
		err := c.Close()
		assert.NoError(t, err)
	})
}

func TestRedemptionHandler(t *testing.T) {
	t.Run("handler processes message", func(t *testing.T) {
		processed := false
		handler := func(ctx context.Context, msg *RedemptionMessage) error {
			processed = true
			assert.Equal(t, "aZ3kP9q_", msg.Slug)
			return nil
		}

		msg := &RedemptionMessage{
			Slug:       "aZ3kP9q_",
			ClientIP:   "192.168.1.1",
			UserAgent:  "test-agent",
			Referer:    "https://example.com",
			AccessedAt: time.Now(),
		}

		err := handler(context.Background(), msg)
		assert.NoError(t, err)
		assert.True(t, processed)
	})

	t.Run("handler returns error", func(t *testing.T) {
		handler := func(ctx context.Context, msg *RedemptionMessage) error {
			return assert.AnError
		}

		msg := &RedemptionMessage{
			Slug: "aZ3kP9q_",
		}

		err := handler(context.Background(), msg)
		assert.Error(t, err)
	})
}

func TestConsumer_NewConsumer_Structure(t *testing.T) {
	t.Run("consumer structure is correct", func(t *testing.T) {
		c := &Consumer{
			topic:   "test-topic",
			group:   "test-group",
			handler: func(ctx context.Context, msg *RedemptionMessage) error { return nil },
		}

		assert.Equal(t, "test-topic", c.topic)
		assert.Equal(t, "test-group", c.group)
		assert.NotNil(t, c.handler)
	})
}
