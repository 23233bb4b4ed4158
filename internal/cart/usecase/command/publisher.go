package command

import (
	"context"

	"github.com/aslanbek/storefront/kafka"
	"github.com/aslanbek/storefront/pkg/logger"
)

// CartEventPublisher publishes cart activity events. The Kafka publisher
// satisfies it; a nil publisher disables eventing entirely.
type CartEventPublisher interface {
	PublishCartActivity(ctx context.Context, event kafka.CartActivityEvent) error
}

// publishEvent emits a cart activity event best-effort. Cart mutations never
// fail because the broker is down; publish errors are logged and dropped.
func publishEvent(ctx context.Context, publisher CartEventPublisher, event kafka.CartActivityEvent) {
	if publisher == nil {
		return
	}
	if err := publisher.PublishCartActivity(ctx, event); err != nil {
		logger.Warn(ctx).Err(err).Str("event_type", event.EventType).Msg("Failed to publish cart event")
	}
}
