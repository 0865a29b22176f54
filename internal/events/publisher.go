// Package events publishes storefront domain events to a message broker.
package events

import (
	"context"

	"go-storefront/internal/models"
)

// Publisher emits an event once an order has been fully persisted and the
// inventory updated. Publishing is best effort; callers log failures and
// never fail a checkout over them.
type Publisher interface {
	OrderPlaced(ctx context.Context, order *models.Order) error
	Close() error
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

var _ Publisher = NoopPublisher{}

func (NoopPublisher) OrderPlaced(ctx context.Context, order *models.Order) error { return nil }

func (NoopPublisher) Close() error { return nil }
