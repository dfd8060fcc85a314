package mq

import (
	"context"

	"github.com/Teknetic/templink/internal/model"
)

// EventStore is the narrow store surface the consumer-side writer needs
type EventStore interface {
	SaveAnalyticsEvent(ctx context.Context, event *model.AnalyticsEvent) error
}

// ProducerEventSink publishes redemption events through RocketMQ instead of
// writing them inline; the consumer persists them
type ProducerEventSink struct {
	producer ProducerInterface
}

// NewProducerEventSink creates a ProducerEventSink
func NewProducerEventSink(producer ProducerInterface) *ProducerEventSink {
	return &ProducerEventSink{producer: producer}
}

// Record publishes the event to the queue
func (s *ProducerEventSink) Record(ctx context.Context, event *model.AnalyticsEvent) error {
	return s.producer.SendRedemption(ctx, &RedemptionMessage{
		Slug:       event.Slug,
		ClientIP:   event.IPAddress,
		UserAgent:  event.UserAgent,
		Referer:    event.Referer,
		AccessedAt: event.AccessedAt,
	})
}

// NewPersistHandler returns the consumer handler that writes queued
// redemptions into the durable event store
func NewPersistHandler(store EventStore) RedemptionHandler {
	return func(ctx context.Context, msg *RedemptionMessage) error {
		return store.SaveAnalyticsEvent(ctx, &model.AnalyticsEvent{
			Slug:       msg.Slug,
			IPAddress:  msg.ClientIP,
			UserAgent:  msg.UserAgent,
			Referer:    msg.Referer,
			AccessedAt: msg.AccessedAt,
		})
	}
}
