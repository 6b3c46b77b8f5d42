package pubsub

import (
	"context"
)

// Message is the structure passed between components on the bus.
type Message struct {
	// Topic identifies the channel the message belongs to (e.g., "theme.toggled").
	Topic string
	// Payload contains the JSON-encoded event.
	Payload []byte
	// Metadata carries arbitrary key-value pairs (request ID, page view ID).
	Metadata map[string]string
}

// Handler defines the function signature for processing a received message.
type Handler func(ctx context.Context, msg Message) error

// Publisher defines the contract for sending messages to the bus.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber defines the contract for receiving messages from the bus.
type Subscriber interface {
	// Subscribe starts listening to the given topic, processing messages with
	// the handler until ctx is cancelled or the subscriber is closed.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}

// PubSub is satisfied by buses that both publish and subscribe.
type PubSub interface {
	Publisher
	Subscriber
}

// Discard is a Publisher that drops every message. It is used where events
// have no audience, such as static export.
var Discard Publisher = discard{}

type discard struct{}

func (discard) Publish(context.Context, Message) error { return nil }
func (discard) Close() error                           { return nil }
