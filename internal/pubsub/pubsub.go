// Package pubsub is the in-process event bus used to announce storefront
// outcomes (logins, signups, new products) to interested subscribers.
package pubsub

import (
	"context"
)

// Message is the structure passed between components on the bus.
type Message struct {
	// Topic identifies the channel the message belongs to (e.g., "storefront.product.created").
	Topic string
	// Actor identifies who caused the message, usually an email address.
	Actor string
	// Payload contains the JSON encoded event.
	Payload []byte
	// Metadata carries arbitrary key-value pairs such as the request id.
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
	// Subscribe starts consuming topic in the background and returns once the
	// subscription is active. Consumption stops when ctx is cancelled or the
	// bus is closed.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
