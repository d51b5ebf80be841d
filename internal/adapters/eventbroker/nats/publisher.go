package nats

import (
	"clipshare/internal/config"
	"clipshare/internal/core/domain"
	"clipshare/internal/core/port"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

var (
	_ port.EventPublisher = (*Publisher)(nil)
	_ port.EventPublisher = (*NoopPublisher)(nil)
)

// Publisher writes orphaned asset events to JetStream
type Publisher struct {
	logger *slog.Logger
	conn   *nats.Conn
	js     jetstream.JetStream
	config config.NATSConfig
}

// NewNATSPublisher connects and makes sure the stream exists
func NewNATSPublisher(ctx context.Context, cfg config.NATSConfig, logger *slog.Logger) (*Publisher, error) {
	conn, js, err := connect(cfg, cfg.ConsumerName+"-publisher", logger)
	if err != nil {
		return nil, err
	}
	if err := ensureStream(ctx, js, cfg); err != nil {
		conn.Close()
		return nil, err
	}
	return &Publisher{
		logger: logger,
		conn:   conn,
		js:     js,
		config: cfg,
	}, nil
}

// PublishOrphanedAsset publishes event, deduplicated on its publicId
func (p *Publisher) PublishOrphanedAsset(ctx context.Context, event domain.OrphanedAsset) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not marshal orphaned asset event: %w", err)
	}

	ack, err := p.js.Publish(ctx, p.config.Subject, data, jetstream.WithMsgID(event.PublicID))
	if err != nil {
		return fmt.Errorf("failed to publish orphaned asset %s: %w", event.PublicID, err)
	}
	p.logger.Debug("orphaned asset published", "public_id", event.PublicID, "stream", ack.Stream, "sequence", ack.Sequence)
	return nil
}

// Close drains pending publishes then closes the connection
func (p *Publisher) Close() error {
	if p.conn == nil {
		return nil
	}
	return p.conn.Drain()
}

// NoopPublisher drops events. It is used when no NATS URL is configured.
type NoopPublisher struct {
	logger *slog.Logger
}

// NewNoopPublisher returns NoopPublisher
func NewNoopPublisher(logger *slog.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger}
}

// PublishOrphanedAsset only logs the event
func (n *NoopPublisher) PublishOrphanedAsset(_ context.Context, event domain.OrphanedAsset) error {
	n.logger.Warn("orphaned asset not announced, NATS is disabled", "public_id", event.PublicID, "reason", event.Reason)
	return nil
}
