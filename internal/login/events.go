package login

import (
	"context"

	"github.com/nfrund/storefront/internal/pubsub"
)

// Topics for submission lifecycle events.
const (
	TopicSubmitStarted   = "login.submit.started"
	TopicSubmitSucceeded = "login.submit.succeeded"
	TopicSubmitFailed    = "login.submit.failed"
)

// SubmitEvent is the payload of every lifecycle event. It never carries the password.
type SubmitEvent struct {
	Email   string          `json:"email"`
	Message string          `json:"message,omitempty"`
	Errors  []ErrorResponse `json:"errors,omitempty"`
}

var (
	submitStarted   = pubsub.NewEvent[SubmitEvent](TopicSubmitStarted)
	submitSucceeded = pubsub.NewEvent[SubmitEvent](TopicSubmitSucceeded)
	submitFailed    = pubsub.NewEvent[SubmitEvent](TopicSubmitFailed)
)

// Events lists the lifecycle events so subscribers can attach to all of them.
func Events() []pubsub.Event[SubmitEvent] {
	return []pubsub.Event[SubmitEvent]{submitStarted, submitSucceeded, submitFailed}
}

func (c *Controller) publish(ctx context.Context, event pubsub.Event[SubmitEvent], payload SubmitEvent) {
	if c.publisher == nil {
		return
	}
	if err := pubsub.Publish(ctx, c.publisher, event, payload, nil); err != nil {
		c.logger.Warn("failed to publish login event", "topic", event.Name(), "error", err)
	}
}
