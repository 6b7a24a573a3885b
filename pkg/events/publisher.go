package events

import (
	"context"
)

// Publisher publishes lifecycle events to consumers outside the bot.
type Publisher interface {
	// Publish publishes an event.
	Publish(ctx context.Context, e *Event) error

	// Close releases the publisher's resources.
	Close() error
}

type nopPublisher struct{}

// NewNopPublisher creates a publisher that drops every event.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, *Event) error { return nil }

func (nopPublisher) Close() error { return nil }
