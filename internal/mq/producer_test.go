package mq

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProducer_SendRedemption_NilProducer(t *testing.T) {
	t.Run("nil producer returns nil", func(t *testing.T) {
		var p *Producer
		msg := &RedemptionMessage{
			Slug:       "aZ3kP9q_",
			ClientIP:   "192.168.1.1",
			UserAgent:  "test-agent",
			Referer:    "https://example.com",
			AccessedAt: time.Now(),
		}

		err := p.SendRedemption(context.Background(), msg)
		assert.NoError(t, err)
	})
}

func TestProducer_Close(t *testing.T) {
	t.Run("nil producer close returns nil", func(t *testing.T) {
		var p *Producer
		err := p.Close()
		assert.NoError(t, err)
	})
}

func TestRedemptionMessage(t *testing.T) {
	t.Run("marshal and unmarshal", func(t *testing.T) {
		now := time.Now()
		msg := &RedemptionMessage{
			Slug:       "aZ3kP9q_",
			ClientIP:   "192.168.1.1",
			UserAgent:  "test-agent",
			Referer:    "https://example.com",
			AccessedAt: now,
		}

		data, err := json.Marshal(msg)
		assert.NoError(t, err)
		assert.NotEmpty(t, data)

		var unmarshaled RedemptionMessage
		err = json.Unmarshal(data, &unmarshaled)
		assert.NoError(t, err)
		assert.Equal(t, msg.Slug, unmarshaled.Slug)
		assert.Equal(t, msg.ClientIP, unmarshaled.ClientIP)
		assert.Equal(t, msg.UserAgent, unmarshaled.UserAgent)
		assert.Equal(t, msg.Referer, unmarshaled.Referer)
	})

	t.Run("empty message", func(t *testing.T) {
		msg := &RedemptionMessage{}
		data, err := json.Marshal(msg)
		assert.NoError(t, err)
		assert.NotEmpty(t, data)
	})
}
