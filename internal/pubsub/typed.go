package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
)

// Event[T] binds a topic name to a payload type so publishers and
// subscribers agree on the shape of the message.
type Event[T any] struct {
	topicName string
}

// NewEvent declares a typed event on the given topic.
func NewEvent[T any](name string) Event[T] {
	return Event[T]{topicName: name}
}

// Name returns the topic name.
func (e Event[T]) Name() string {
	return e.topicName
}

// Publish sends a typed event. The compiler ensures 'payload' matches 'T'.
func Publish[T any](ctx context.Context, p Publisher, event Event[T], payload T, metadata map[string]string) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("pubsub: encode %s: %w", event.Name(), err)
	}

	return p.Publish(ctx, Message{
		Topic:    event.Name(),
		Payload:  data,
		Metadata: metadata,
	})
}

// Decode unmarshals a message published for event back into its payload type.
func Decode[T any](event Event[T], msg Message) (T, error) {
	var payload T
	if msg.Topic != event.Name() {
		return payload, fmt.Errorf("pubsub: message topic %q does not match event %q", msg.Topic, event.Name())
	}
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("pubsub: decode %s: %w", event.Name(), err)
	}
	return payload, nil
}
