package login

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/storefront/internal/pubsub"
)

// SubscribeAudit logs every submission lifecycle event published on sub.
func SubscribeAudit(ctx context.Context, sub pubsub.Subscriber, logger *slog.Logger) error {
	for _, event := range Events() {
		event := event
		err := sub.Subscribe(ctx, event.Name(), func(ctx context.Context, msg pubsub.Message) error {
			payload, err := pubsub.Decode(event, msg)
			if err != nil {
				return err
			}
			logger.Info("login event",
				"topic", msg.Topic,
				"email", payload.Email,
				"message", payload.Message,
				"errors", len(payload.Errors),
			)
			return nil
		})
		if err != nil {
			return fmt.Errorf("login: subscribe %s: %w", event.Name(), err)
		}
	}
	return nil
}
