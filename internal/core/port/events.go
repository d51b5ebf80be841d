package port

import (
	"clipshare/internal/core/domain"
	"context"
)

// EventConsumer is an interface to define an event consumer (kafka, nats, ...)
type EventConsumer interface {
	Subscribe(ctx context.Context, handler MessageService) error
	Close() error
}

// MessageService is an interface to define message handling
type MessageService interface {
	HandleMessage(ctx context.Context, data []byte) error
}

// EventPublisher announces orphaned assets to the reconciler
type EventPublisher interface {
	PublishOrphanedAsset(ctx context.Context, event domain.OrphanedAsset) error
}
