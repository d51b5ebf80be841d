package nats

import (
	"clipshare/internal/config"
	"clipshare/internal/core/port"
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

var _ port.EventConsumer = (*Consumer)(nil)

var receiveRetryDelay = time.Second

// Consumer is a struct to interact with nats
type Consumer struct {
	logger *slog.Logger
	conn   *nats.Conn
	js     jetstream.JetStream
	config config.NATSConfig
	iter   jetstream.MessagesContext
	wg     sync.WaitGroup
}

// NewNATSConsumer creates a new consumer
func NewNATSConsumer(cfg config.NATSConfig, logger *slog.Logger) (*Consumer, error) {
	conn, js, err := connect(cfg, cfg.ConsumerName, logger)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		conn:   conn,
		js:     js,
		config: cfg,
		logger: logger,
	}, nil
}

// Subscribe ensures the stream, binds the durable consumer and hands every message to handler.
// Messages are acked on success and nacked for redelivery on error, up to five deliveries.
func (n *Consumer) Subscribe(ctx context.Context, handler port.MessageService) error {
	if err := ensureStream(ctx, n.js, n.config); err != nil {
		return err
	}

	consumerCfg := jetstream.ConsumerConfig{
		Durable:       n.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		FilterSubject: n.config.Subject,
		AckWait:       30 * time.Second,
		MaxDeliver:    5,
		BackOff:       []time.Duration{time.Second, 5 * time.Second, 30 * time.Second},
	}

	cons, err := n.js.CreateOrUpdateConsumer(ctx, n.config.StreamName, consumerCfg)
	if err != nil {
		return err
	}

	iter, err := cons.Messages()
	if err != nil {
		return err
	}
	n.iter = iter
	context.AfterFunc(ctx, iter.Stop)

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		n.logger.Info("NATS subscription started", "stream", n.config.StreamName, "subject", n.config.Subject)
		n.consume(ctx, func() (jetstream.Msg, error) { return iter.Next() }, handler)
		n.logger.Info("NATS subscription stopped")
	}()
	return nil
}

// consume pulls until the iterator closes or ctx is done.
// Receive errors are logged and retried after receiveRetryDelay.
func (n *Consumer) consume(ctx context.Context, next func() (jetstream.Msg, error), handler port.MessageService) {
	for {
		msg, err := next()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, jetstream.ErrMsgIteratorClosed) {
				return
			}
			n.logger.Error("failed to receive message", "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(receiveRetryDelay):
			}
			continue
		}

		if handleErr := handler.HandleMessage(ctx, msg.Data()); handleErr != nil {
			if errNak := msg.Nak(); errNak != nil {
				n.logger.Error("failed to nak message", "error", errNak)
			}
			n.logger.Warn("failed to handle message", "error", handleErr)
			continue
		}
		if ackErr := msg.Ack(); ackErr != nil {
			n.logger.Error("failed to ack message", "error", ackErr)
		}
	}
}

// Close graceful shutdown
func (n *Consumer) Close() error {
	if n.iter != nil {
		n.iter.Stop()
	}

	n.wg.Wait()

	if n.conn != nil {
		n.conn.Close()
	}
	return nil
}
