// Package queue_publisher publishes domain events to RabbitMQ.  Failures
// are logged and returned so callers can decide to ignore them without
// interrupting the request that produced the event.
package queue_publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/iliyamo/catalog-ticket-service/internal/queue"
)

// Publisher sends events to a single durable queue on the default
// exchange.  A connection is dialled per publish: ticket generation is
// low volume and this keeps the publisher free of reconnect state.
type Publisher struct {
	URL    string
	Queue  string
	Logger *slog.Logger
}

// PublishTicketGenerated publishes ev as a persistent JSON message.
func (p *Publisher) PublishTicketGenerated(ctx context.Context, ev q.TicketGeneratedEvent) error {
	conn, err := amqp.Dial(p.URL)
	if err != nil {
		p.Logger.Warn("rabbitmq: dial failed", "err", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.Logger.Warn("rabbitmq: channel open failed", "err", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Declaring is idempotent; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(p.Queue, true, false, false, false, nil); err != nil {
		p.Logger.Warn("rabbitmq: queue declare failed", "queue", p.Queue, "err", err)
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.Queue, false, false, pub); err != nil {
		p.Logger.Warn("rabbitmq: publish failed", "queue", p.Queue, "err", err)
		return err
	}
	return nil
}
